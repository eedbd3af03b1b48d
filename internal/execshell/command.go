package execshell

import "context"

const (
	commandMongoExportStringConstant = "mongoexport"
	commandMongoImportStringConstant = "mongoimport"
)

// CommandName identifies a supported external tool.
type CommandName string

// Supported command names.
const (
	CommandMongoExport CommandName = CommandName(commandMongoExportStringConstant)
	CommandMongoImport CommandName = CommandName(commandMongoImportStringConstant)
)

// CommandDetails describes a tool invocation. Arguments are passed to the executable verbatim, one element per argv entry.
type CommandDetails struct {
	Arguments []string
}

// ShellCommand combines a CommandName with specific invocation details.
// Executable overrides the binary resolved from Name when it is non-empty.
type ShellCommand struct {
	Name       CommandName
	Executable string
	Details    CommandDetails
}

// ExecutableName returns the binary that should be launched for the command.
func (command ShellCommand) ExecutableName() string {
	if len(command.Executable) > 0 {
		return command.Executable
	}
	return string(command.Name)
}

// ExecutionResult captures the observable results of executing a command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner represents the ability to run shell commands.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}
