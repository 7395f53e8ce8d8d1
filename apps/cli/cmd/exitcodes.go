package cmd

// Exit codes for the hitclient CLI
const (
	// ExitSuccess indicates the request completed
	ExitSuccess = 0

	// ExitHTTPError indicates an error status while --fail was set
	ExitHTTPError = 1

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitNetworkError indicates the request produced no response
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
