// Package ui provides helpers for rendering operator-facing console output.
//
// StyledConsole writes colorized lines for prompts and status messages, while
// the command event observers translate execshell lifecycle notifications into
// concise progress lines so operators can follow each export and import as it
// runs. Detailed telemetry continues to flow through structured loggers.
package ui
