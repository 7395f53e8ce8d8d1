package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hitclient",
	Short: "Send preconfigured HTTP requests.",
	Long: `hitclient sends HTTP requests against a base URL with shared headers,
encodes bodies as JSON or form data, and decodes JSON or XML responses.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// exitError carries a process exit code out of a command. Silent errors
// have already been reported by the command itself.
type exitError struct {
	code   int
	err    error
	silent bool
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit code %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		code := ExitUsageError
		var ee *exitError
		if errors.As(err, &ee) {
			code = ee.code
			if ee.silent {
				os.Exit(code)
			}
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(code)
	}
}

func init() {
	rootCmd.AddCommand(requestCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
