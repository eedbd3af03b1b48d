package execshell

import (
	"context"

	"go.uber.org/zap"
)

const (
	commandStartedLogMessageConstant         = "Command started"
	commandCompletedLogMessageConstant       = "Command completed"
	commandFailedLogMessageConstant          = "Command failed"
	commandExecutionFailedLogMessageConstant = "Command execution failed"
	logFieldCommandNameConstant              = "command"
	logFieldCommandLineConstant              = "command_line"
	logFieldExitCodeConstant                 = "exit_code"
	logFieldStandardErrorConstant            = "stderr"
	logFieldDescriptionConstant              = "description"
)

// ShellExecutor runs external commands through a CommandRunner, logging and reporting each lifecycle stage.
type ShellExecutor struct {
	logger           *zap.Logger
	runner           CommandRunner
	observer         CommandEventObserver
	formatter        CommandMessageFormatter
	exportExecutable string
	importExecutable string
}

// NewShellExecutor constructs a ShellExecutor. Observers are notified in registration order.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner, observers ...CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	return &ShellExecutor{
		logger:    logger,
		runner:    runner,
		observer:  newCompositeCommandEventObserver(observers),
		formatter: CommandMessageFormatter{},
	}, nil
}

// WithExecutables overrides the binaries launched for export and import commands. Empty values keep the defaults.
func (executor *ShellExecutor) WithExecutables(exportExecutable string, importExecutable string) *ShellExecutor {
	executor.exportExecutable = exportExecutable
	executor.importExecutable = importExecutable
	return executor
}

// ExecuteExport runs the export tool with the provided details.
func (executor *ShellExecutor) ExecuteExport(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandMongoExport, Executable: executor.exportExecutable, Details: details})
}

// ExecuteImport runs the import tool with the provided details.
func (executor *ShellExecutor) ExecuteImport(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandMongoImport, Executable: executor.importExecutable, Details: details})
}

// Execute runs an arbitrary command. Non-zero exit codes yield CommandFailedError; launch failures yield CommandExecutionError.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	commandLine := FormatCommandLine(command)

	executor.logger.Info(
		commandStartedLogMessageConstant,
		zap.String(logFieldCommandNameConstant, string(command.Name)),
		zap.String(logFieldCommandLineConstant, commandLine),
		zap.String(logFieldDescriptionConstant, executor.formatter.BuildStartedMessage(command)),
	)
	executor.observer.CommandStarted(command)

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executor.logger.Error(
			commandExecutionFailedLogMessageConstant,
			zap.String(logFieldCommandNameConstant, string(command.Name)),
			zap.String(logFieldCommandLineConstant, commandLine),
			zap.Error(runError),
		)
		executor.observer.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.observer.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		executor.logger.Warn(
			commandFailedLogMessageConstant,
			zap.String(logFieldCommandNameConstant, string(command.Name)),
			zap.String(logFieldCommandLineConstant, commandLine),
			zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
			zap.String(logFieldStandardErrorConstant, executionResult.StandardError),
		)
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Info(
		commandCompletedLogMessageConstant,
		zap.String(logFieldCommandNameConstant, string(command.Name)),
		zap.String(logFieldDescriptionConstant, executor.formatter.BuildSuccessMessage(command)),
	)

	return executionResult, nil
}
