// Package cli constructs the mongo-migrate command-line interface, wiring the
// Cobra root command, the configuration loader, and structured logging around
// the interactive migration command.
package cli
