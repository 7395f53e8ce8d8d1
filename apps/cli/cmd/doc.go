// Package cmd implements the hitclient CLI commands using Cobra.
//
// Available commands:
//   - request: Send one request relative to the base URL
//   - init: Write a client profile to the current directory
//   - version: Show hitclient version information
//
// Client settings come from a profile file (see packages/core/config),
// overridden by flags, which in turn default to HITCLIENT_* variables.
package cmd
