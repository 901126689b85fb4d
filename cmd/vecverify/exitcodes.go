package main

// Exit codes returned by vecverify commands. Content-quality issues are a
// reported verdict, never an exit failure.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable or invalid config)
	ExitDataError   = 3 // Data error (missing or malformed embeddings file)
)
