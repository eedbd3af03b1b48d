package execshell

import (
	"errors"
	"fmt"
	"strings"
)

const (
	loggerNotConfiguredMessageConstant        = "shell executor logger not configured"
	commandRunnerNotConfiguredMessageConstant = "shell executor command runner not configured"
	commandFailedTemplateConstant             = "%s exited with code %d"
	commandFailedWithDetailsTemplateConstant  = "%s exited with code %d: %s"
	commandExecutionFailedTemplateConstant    = "%s could not be executed: %v"
)

var (
	// ErrLoggerNotConfigured indicates a ShellExecutor was constructed without a logger.
	ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)
	// ErrCommandRunnerNotConfigured indicates a ShellExecutor was constructed without a runner.
	ErrCommandRunnerNotConfigured = errors.New(commandRunnerNotConfiguredMessageConstant)
)

// CommandFailedError reports a command that ran to completion with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error returns the exit code together with the command diagnostics.
func (failure CommandFailedError) Error() string {
	diagnostics := strings.TrimSpace(failure.Result.StandardError)
	if len(diagnostics) == 0 {
		diagnostics = strings.TrimSpace(failure.Result.StandardOutput)
	}
	if len(diagnostics) == 0 {
		return fmt.Sprintf(commandFailedTemplateConstant, failure.Command.ExecutableName(), failure.Result.ExitCode)
	}
	return fmt.Sprintf(commandFailedWithDetailsTemplateConstant, failure.Command.ExecutableName(), failure.Result.ExitCode, diagnostics)
}

// CommandExecutionError reports a command that could not be launched.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the launch failure.
func (failure CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionFailedTemplateConstant, failure.Command.ExecutableName(), failure.Cause)
}

// Unwrap exposes the underlying launch failure.
func (failure CommandExecutionError) Unwrap() error {
	return failure.Cause
}
