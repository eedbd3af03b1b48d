package migration_test

import (
	"context"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/temirov/mongo-migrate/internal/answers"
	"github.com/temirov/mongo-migrate/internal/execshell"
	"github.com/temirov/mongo-migrate/internal/prompt"
	"github.com/temirov/mongo-migrate/internal/ui"
)

const (
	testClockStartMillisecondsConstant = int64(1700000000000)
	testExportedDocumentConstant       = "{\"_id\":1}\n"
	testArtifactPermissionsConstant    = os.FileMode(0o644)
)

type recordedInvocation struct {
	name      execshell.CommandName
	arguments []string
}

// recordingMigrationExecutor mimics the export tool by writing the --out artifact into the filesystem.
type recordingMigrationExecutor struct {
	fileSystem  afero.Fs
	invocations []recordedInvocation
	failures    map[int]error
}

func newRecordingMigrationExecutor(fileSystem afero.Fs) *recordingMigrationExecutor {
	return &recordingMigrationExecutor{fileSystem: fileSystem, failures: map[int]error{}}
}

func (executor *recordingMigrationExecutor) failOnInvocation(invocationNumber int, failure error) *recordingMigrationExecutor {
	executor.failures[invocationNumber] = failure
	return executor
}

func (executor *recordingMigrationExecutor) ExecuteExport(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	if failure := executor.record(execshell.CommandMongoExport, details); failure != nil {
		return execshell.ExecutionResult{}, failure
	}
	outputPath := argumentValue(details.Arguments, execshell.FlagOut)
	if writeError := afero.WriteFile(executor.fileSystem, outputPath, []byte(testExportedDocumentConstant), testArtifactPermissionsConstant); writeError != nil {
		return execshell.ExecutionResult{}, writeError
	}
	return execshell.ExecutionResult{}, nil
}

func (executor *recordingMigrationExecutor) ExecuteImport(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	if failure := executor.record(execshell.CommandMongoImport, details); failure != nil {
		return execshell.ExecutionResult{}, failure
	}
	return execshell.ExecutionResult{}, nil
}

func (executor *recordingMigrationExecutor) record(name execshell.CommandName, details execshell.CommandDetails) error {
	executor.invocations = append(executor.invocations, recordedInvocation{name: name, arguments: append([]string(nil), details.Arguments...)})
	return executor.failures[len(executor.invocations)]
}

func (executor *recordingMigrationExecutor) invocationsNamed(name execshell.CommandName) []recordedInvocation {
	var matching []recordedInvocation
	for _, invocation := range executor.invocations {
		if invocation.name == name {
			matching = append(matching, invocation)
		}
	}
	return matching
}

type stubQuestionRunner struct {
	answerSet answers.AnswerSet
	runError  error
	calls     int
}

func (runner *stubQuestionRunner) RunAll(context.Context, []prompt.Question) (answers.AnswerSet, error) {
	runner.calls++
	return runner.answerSet, runner.runError
}

type consoleLine struct {
	text  string
	style ui.Style
}

type recordingConsole struct {
	lines []consoleLine
}

func (console *recordingConsole) WriteLine(text string, style ui.Style) error {
	console.lines = append(console.lines, consoleLine{text: text, style: style})
	return nil
}

func (console *recordingConsole) containsLine(text string, style ui.Style) bool {
	for _, line := range console.lines {
		if line.text == text && line.style == style {
			return true
		}
	}
	return false
}

// removalFailingFs refuses every removal while delegating all other operations.
type removalFailingFs struct {
	afero.Fs
	removalError error
}

func (fileSystem removalFailingFs) Remove(string) error {
	return fileSystem.removalError
}

func steppingClock() func() time.Time {
	currentMilliseconds := testClockStartMillisecondsConstant
	return func() time.Time {
		current := time.UnixMilli(currentMilliseconds)
		currentMilliseconds++
		return current
	}
}

func answerSetFromDomains(origin map[answers.Key]string, destination map[answers.Key]string, global map[answers.Key]string) answers.AnswerSet {
	answerSet := answers.NewAnswerSet()
	for key, value := range origin {
		answerSet.Record(answers.DomainOrigin, key, value)
	}
	for key, value := range destination {
		answerSet.Record(answers.DomainDestination, key, value)
	}
	for key, value := range global {
		answerSet.Record(answers.DomainGlobal, key, value)
	}
	return answerSet
}

func argumentValue(arguments []string, flag string) string {
	for argumentIndex := 0; argumentIndex < len(arguments)-1; argumentIndex++ {
		if arguments[argumentIndex] == flag {
			return arguments[argumentIndex+1]
		}
	}
	return ""
}
