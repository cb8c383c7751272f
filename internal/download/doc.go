package download

// Package download implements the core download pipeline: one background
// worker drains the queued reel items, trying the preferred agent first and
// falling back to the other on failure, then runs the optional transcription
// post-step. All results flow back to the UI through callbacks; no UI state is
// touched from the worker goroutine.
