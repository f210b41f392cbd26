package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // Usage error or runtime failure
	ExitConfigError = 2 // Config file unreadable or invalid
)
