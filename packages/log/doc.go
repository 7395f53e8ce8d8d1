// Package log defines the structured logging collaborator used by hitclient.
//
// Clients never write to a global stream. They log through the Logger
// interface, which can be backed by zerolog, zap or discarded entirely:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	client := http.NewClient(http.WithLogger(logger))
//
// NewLogger builds one of the bundled adapters from configuration values,
// which is what the command line tool does.
package log
