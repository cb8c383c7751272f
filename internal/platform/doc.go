package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, Instagram URL parsing, external binary probing, and OS
// open/reveal of completed download folders.
