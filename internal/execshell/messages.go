package execshell

import (
	"fmt"
	"strconv"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	fallbackUnknownValueLabelConstant       = "unknown"
	maskedSecretConstant                    = "****"
	whitespaceCharactersConstant            = " \t\n\r"
	hostPortTemplateConstant                = "%s:%s"
)

// Argument flags understood by the export and import tools.
const (
	FlagHost       = "--host"
	FlagPort       = "--port"
	FlagDatabase   = "--db"
	FlagCollection = "--collection"
	FlagUsername   = "--username"
	FlagPassword   = "--password"
	FlagOut        = "--out"
	FlagFile       = "--file"
)

const (
	exportStartTemplateConstant            = "Exporting %s.%s from %s to %s"
	exportSuccessTemplateConstant          = "Exported %s.%s from %s to %s"
	exportFailureTemplateConstant          = "Failed to export %s.%s from %s (exit code %d%s)"
	exportExecutionFailureTemplateConstant = "Unable to export %s.%s from %s: %s"
	importStartTemplateConstant            = "Importing %s into %s.%s on %s"
	importSuccessTemplateConstant          = "Imported %s into %s.%s on %s"
	importFailureTemplateConstant          = "Failed to import %s into %s.%s on %s (exit code %d%s)"
	importExecutionFailureTemplateConstant = "Unable to import %s into %s.%s on %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing a command that could not be launched.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch command.Name {
	case CommandMongoExport:
		return formatter.describeExportMessage(command, result, failure, stage)
	case CommandMongoImport:
		return formatter.describeImportMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeExportMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	database := formatter.ensureValue(findFlagValue(arguments, FlagDatabase))
	collection := formatter.ensureValue(findFlagValue(arguments, FlagCollection))
	server := formatter.describeServer(arguments)
	artifact := formatter.ensureValue(findFlagValue(arguments, FlagOut))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(exportStartTemplateConstant, database, collection, server, artifact)
	case messageStageSuccess:
		return fmt.Sprintf(exportSuccessTemplateConstant, database, collection, server, artifact)
	case messageStageFailure:
		return fmt.Sprintf(exportFailureTemplateConstant, database, collection, server, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(exportExecutionFailureTemplateConstant, database, collection, server, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) describeImportMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	database := formatter.ensureValue(findFlagValue(arguments, FlagDatabase))
	collection := formatter.ensureValue(findFlagValue(arguments, FlagCollection))
	server := formatter.describeServer(arguments)
	artifact := formatter.ensureValue(findFlagValue(arguments, FlagFile))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(importStartTemplateConstant, artifact, database, collection, server)
	case messageStageSuccess:
		return fmt.Sprintf(importSuccessTemplateConstant, artifact, database, collection, server)
	case messageStageFailure:
		return fmt.Sprintf(importFailureTemplateConstant, artifact, database, collection, server, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(importExecutionFailureTemplateConstant, artifact, database, collection, server, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := FormatCommandLine(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) describeServer(arguments []string) string {
	return fmt.Sprintf(hostPortTemplateConstant, formatter.ensureValue(findFlagValue(arguments, FlagHost)), formatter.ensureValue(findFlagValue(arguments, FlagPort)))
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

// FormatCommandLine renders the command for display. Arguments containing whitespace are
// quoted and the value following --password is masked.
func FormatCommandLine(command ShellCommand) string {
	renderedParts := []string{command.ExecutableName()}
	for _, argument := range MaskArguments(command.Details.Arguments) {
		if len(argument) == 0 || strings.ContainsAny(argument, whitespaceCharactersConstant) {
			argument = strconv.Quote(argument)
		}
		renderedParts = append(renderedParts, argument)
	}
	return strings.Join(renderedParts, commandArgumentsJoinSeparatorConstant)
}

// MaskArguments returns a copy of arguments with password values replaced.
func MaskArguments(arguments []string) []string {
	masked := append([]string{}, arguments...)
	for argumentIndex := 0; argumentIndex < len(masked)-1; argumentIndex++ {
		if masked[argumentIndex] == FlagPassword {
			masked[argumentIndex+1] = maskedSecretConstant
			argumentIndex++
		}
	}
	return masked
}

func findFlagValue(arguments []string, flag string) string {
	for argumentIndex := 0; argumentIndex < len(arguments)-1; argumentIndex++ {
		if strings.TrimSpace(arguments[argumentIndex]) == flag {
			return arguments[argumentIndex+1]
		}
	}
	return emptyStringConstant
}
