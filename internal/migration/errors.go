package migration

import (
	"errors"
	"fmt"
)

const (
	phasePromptingStringConstant      = "prompting"
	phaseExportingStringConstant      = "exporting"
	phaseImportingStringConstant      = "importing"
	phaseCleanupStringConstant        = "cleanup"
	phaseDoneStringConstant           = "done"
	unknownPhaseTemplateConstant      = "unknown(%d)"
	subprocessFailureTemplateConstant = "%s %s failed: %v"
	cleanupFailureTemplateConstant    = "unable to remove temporary artifact %s: %v"
	temporaryDirectoryErrorTemplate   = "unable to prepare temporary directory %s: %w"
	promptingFailureTemplateConstant  = "unable to collect migration answers: %w"
	questionRunnerMissingMessage      = "migration question runner not configured"
	commandExecutorMissingMessage     = "migration command executor not configured"
	consoleMissingMessageConstant     = "migration console not configured"
	fileSystemMissingMessageConstant  = "migration filesystem not configured"
	phaseVerbExportStringConstant     = "export of"
	phaseVerbImportStringConstant     = "import of"
	phaseVerbUnknownStringConstant    = "step for"
)

var (
	// ErrQuestionRunnerNotConfigured indicates a Service without a prompt engine.
	ErrQuestionRunnerNotConfigured = errors.New(questionRunnerMissingMessage)
	// ErrCommandExecutorNotConfigured indicates a Service without an export/import executor.
	ErrCommandExecutorNotConfigured = errors.New(commandExecutorMissingMessage)
	// ErrConsoleNotConfigured indicates a Service without an operator console.
	ErrConsoleNotConfigured = errors.New(consoleMissingMessageConstant)
	// ErrFileSystemNotConfigured indicates a Service without a filesystem.
	ErrFileSystemNotConfigured = errors.New(fileSystemMissingMessageConstant)
)

// Phase identifies a state of the migration run.
type Phase int

// Migration phases in the order they are entered.
const (
	PhasePrompting Phase = iota
	PhaseExporting
	PhaseImporting
	PhaseCleanup
	PhaseDone
)

// String returns the lowercase phase label used in logs and errors.
func (phase Phase) String() string {
	switch phase {
	case PhasePrompting:
		return phasePromptingStringConstant
	case PhaseExporting:
		return phaseExportingStringConstant
	case PhaseImporting:
		return phaseImportingStringConstant
	case PhaseCleanup:
		return phaseCleanupStringConstant
	case PhaseDone:
		return phaseDoneStringConstant
	default:
		return fmt.Sprintf(unknownPhaseTemplateConstant, int(phase))
	}
}

// SubprocessFailure reports an export or import command that exited non-zero or could not be launched.
// It aborts the remaining steps of its phase and every later phase.
type SubprocessFailure struct {
	Phase      Phase
	Collection string
	Cause      error
}

// Error describes the failed step including the tool diagnostics.
func (failure SubprocessFailure) Error() string {
	return fmt.Sprintf(subprocessFailureTemplateConstant, phaseVerb(failure.Phase), failure.Collection, failure.Cause)
}

// Unwrap exposes the execshell error.
func (failure SubprocessFailure) Unwrap() error {
	return failure.Cause
}

// CleanupFailure reports an artifact that could not be removed. It never changes the run verdict.
type CleanupFailure struct {
	Path  string
	Cause error
}

// Error describes the artifact that remains on disk.
func (failure CleanupFailure) Error() string {
	return fmt.Sprintf(cleanupFailureTemplateConstant, failure.Path, failure.Cause)
}

// Unwrap exposes the filesystem error.
func (failure CleanupFailure) Unwrap() error {
	return failure.Cause
}

func phaseVerb(phase Phase) string {
	switch phase {
	case PhaseExporting:
		return phaseVerbExportStringConstant
	case PhaseImporting:
		return phaseVerbImportStringConstant
	default:
		return phaseVerbUnknownStringConstant
	}
}
