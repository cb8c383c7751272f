package model

// Package model defines domain data structures used across the app: reel queue
// items, download options, per-item results, and status enums. Structures are
// designed for direct binding in the UI and explicit state transitions.
