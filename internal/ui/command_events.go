package ui

import (
	"go.uber.org/zap"

	"github.com/temirov/mongo-migrate/internal/execshell"
)

// LineWriter renders styled operator lines.
type LineWriter interface {
	WriteLine(text string, style Style) error
}

// ConsoleCommandEventLogger renders command lifecycle events using a zap logger configured for human-readable output.
type ConsoleCommandEventLogger struct {
	logger    *zap.Logger
	formatter execshell.CommandMessageFormatter
}

// NewConsoleCommandEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleCommandEventLogger(logger *zap.Logger) *ConsoleCommandEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleCommandEventLogger{logger: logger, formatter: execshell.CommandMessageFormatter{}}
}

// CommandStarted implements execshell.CommandEventObserver by logging command start notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(command execshell.ShellCommand) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.formatter.BuildStartedMessage(command))
}

// CommandCompleted implements execshell.CommandEventObserver by logging command completion notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if eventLogger == nil {
		return
	}
	if result.ExitCode == 0 {
		eventLogger.logger.Info(eventLogger.formatter.BuildSuccessMessage(command))
		return
	}
	eventLogger.logger.Warn(eventLogger.formatter.BuildFailureMessage(command, result))
}

// CommandExecutionFailed implements execshell.CommandEventObserver by logging unexpected execution failures.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Error(eventLogger.formatter.BuildExecutionFailureMessage(command, failure))
}

// OperatorCommandReporter echoes each command line to the operator before it runs and surfaces failure diagnostics.
type OperatorCommandReporter struct {
	writer    LineWriter
	formatter execshell.CommandMessageFormatter
}

// NewOperatorCommandReporter constructs a reporter writing to the provided line writer.
func NewOperatorCommandReporter(writer LineWriter) *OperatorCommandReporter {
	return &OperatorCommandReporter{writer: writer, formatter: execshell.CommandMessageFormatter{}}
}

// CommandStarted prints the masked command line.
func (reporter *OperatorCommandReporter) CommandStarted(command execshell.ShellCommand) {
	if reporter == nil || reporter.writer == nil {
		return
	}
	_ = reporter.writer.WriteLine(execshell.FormatCommandLine(command), StylePlain)
}

// CommandCompleted prints the failure description for non-zero exit codes.
func (reporter *OperatorCommandReporter) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if reporter == nil || reporter.writer == nil {
		return
	}
	if result.ExitCode == 0 {
		return
	}
	_ = reporter.writer.WriteLine(reporter.formatter.BuildFailureMessage(command, result), StyleError)
}

// CommandExecutionFailed prints the launch failure description.
func (reporter *OperatorCommandReporter) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	if reporter == nil || reporter.writer == nil {
		return
	}
	_ = reporter.writer.WriteLine(reporter.formatter.BuildExecutionFailureMessage(command, failure), StyleError)
}
