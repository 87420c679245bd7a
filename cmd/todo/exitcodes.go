package main

// Exit codes for the CLI
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitNetworkError  = 2
	ExitConfigError   = 3
	ExitTaskNotFound  = 4
	ExitUnknownStatus = 5
	ExitDecodingError = 6
)
