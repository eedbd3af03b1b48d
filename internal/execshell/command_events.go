package execshell

// CommandEventObserver receives lifecycle notifications for shell command execution.
type CommandEventObserver interface {
	// CommandStarted notifies observers that command execution is beginning.
	CommandStarted(command ShellCommand)
	// CommandCompleted notifies observers that command execution finished and supplies the result.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed reports failures to launch the command before an execution result exists.
	CommandExecutionFailed(command ShellCommand, failure error)
}

type noopCommandEventObserver struct{}

func (noopCommandEventObserver) CommandStarted(ShellCommand) {}

func (noopCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (noopCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}

type compositeCommandEventObserver []CommandEventObserver

func newCompositeCommandEventObserver(observers []CommandEventObserver) CommandEventObserver {
	var filtered compositeCommandEventObserver
	for _, observer := range observers {
		if observer == nil {
			continue
		}
		filtered = append(filtered, observer)
	}
	if len(filtered) == 0 {
		return noopCommandEventObserver{}
	}
	return filtered
}

func (observers compositeCommandEventObserver) CommandStarted(command ShellCommand) {
	for _, observer := range observers {
		observer.CommandStarted(command)
	}
}

func (observers compositeCommandEventObserver) CommandCompleted(command ShellCommand, result ExecutionResult) {
	for _, observer := range observers {
		observer.CommandCompleted(command, result)
	}
}

func (observers compositeCommandEventObserver) CommandExecutionFailed(command ShellCommand, failure error) {
	for _, observer := range observers {
		observer.CommandExecutionFailed(command, failure)
	}
}
