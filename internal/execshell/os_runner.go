package execshell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"
)

const (
	interruptGracePeriodConstant = 5 * time.Second
)

// OSCommandRunner launches the migration tools as child processes and blocks until they exit.
// Cancelling the context interrupts the child and kills it if it has not exited after a grace period.
type OSCommandRunner struct {
	gracePeriod time.Duration
}

// NewOSCommandRunner constructs a runner backed by os/exec.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{gracePeriod: interruptGracePeriodConstant}
}

// Run executes command and captures both output streams. A non-zero exit is reported through ExecutionResult.ExitCode,
// while failures to launch or wait for the process are returned as errors.
func (runner *OSCommandRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	process := exec.CommandContext(executionContext, command.ExecutableName(), command.Details.Arguments...)
	process.Cancel = func() error {
		return process.Process.Signal(os.Interrupt)
	}
	process.WaitDelay = interruptGracePeriodConstant
	if runner != nil && runner.gracePeriod > 0 {
		process.WaitDelay = runner.gracePeriod
	}

	var standardOutput bytes.Buffer
	var standardError bytes.Buffer
	process.Stdout = &standardOutput
	process.Stderr = &standardError

	runError := process.Run()

	result := ExecutionResult{
		StandardOutput: standardOutput.String(),
		StandardError:  standardError.String(),
	}

	var exitError *exec.ExitError
	switch {
	case runError == nil:
		return result, nil
	case executionContext.Err() != nil:
		return ExecutionResult{}, executionContext.Err()
	case errors.As(runError, &exitError):
		result.ExitCode = exitError.ExitCode()
		return result, nil
	default:
		return ExecutionResult{}, runError
	}
}
