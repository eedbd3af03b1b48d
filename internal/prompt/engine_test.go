package prompt_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/mongo-migrate/internal/answers"
	"github.com/temirov/mongo-migrate/internal/prompt"
	"github.com/temirov/mongo-migrate/internal/ui"
)

const (
	testOriginDatabasePromptConstant     = "Origin database?"
	testWillImportPromptConstant         = "Import?"
	testDestinationHostPromptConstant    = "Destination host?"
	testDestinationDbPromptTemplate      = "Destination database? (Defaults to '%s')"
	testKeepBackupPromptConstant         = "Keep backup?"
	testOriginDatabaseAnswerConstant     = "inventory"
	testDestinationHostAnswerConstant    = "replica.internal"
	testDestinationDbPromptExpectation   = "Destination database? (Defaults to 'inventory')"
	testReadFailureMessageConstant       = "terminal detached"
	testRenderFailureMessageConstant     = "broken pipe"
	testMissingReaderCaseNameConstant    = "missing_reader"
	testMissingWriterCaseNameConstant    = "missing_writer"
	testConfiguredEngineCaseNameConstant = "configured"
)

type writtenLine struct {
	text  string
	style ui.Style
}

type recordingLineWriter struct {
	lines      []writtenLine
	writeError error
}

func (writer *recordingLineWriter) WriteLine(text string, style ui.Style) error {
	if writer.writeError != nil {
		return writer.writeError
	}
	writer.lines = append(writer.lines, writtenLine{text: text, style: style})
	return nil
}

type scriptedLineReader struct {
	responses []string
	failAfter int
	readError error
	prompts   []string
}

func (reader *scriptedLineReader) ReadLine(promptText string) (string, error) {
	reader.prompts = append(reader.prompts, promptText)
	if reader.readError != nil && len(reader.prompts) > reader.failAfter {
		return "", reader.readError
	}
	if len(reader.responses) == 0 {
		return "", prompt.ErrInputStreamClosed
	}
	response := reader.responses[0]
	reader.responses = reader.responses[1:]
	return response, nil
}

func testQuestions() []prompt.Question {
	return []prompt.Question{
		{Domain: answers.DomainOrigin, Key: answers.KeyDatabase, Prompt: prompt.Literal(testOriginDatabasePromptConstant), Style: ui.StyleOrigin},
		{Domain: answers.DomainGlobal, Key: answers.KeyWillImport, Prompt: prompt.Literal(testWillImportPromptConstant), Style: ui.StyleGlobal},
		{Domain: answers.DomainDestination, Key: answers.KeyHost, Prompt: prompt.Literal(testDestinationHostPromptConstant), Style: ui.StyleDestination},
		{
			Domain: answers.DomainDestination,
			Key:    answers.KeyDatabase,
			Prompt: func(recorded answers.AnswerSet) string {
				return fmt.Sprintf(testDestinationDbPromptTemplate, recorded.Origin().Get(answers.KeyDatabase))
			},
			Style: ui.StyleDestination,
		},
		{Domain: answers.DomainGlobal, Key: answers.KeyKeepBackup, Prompt: prompt.Literal(testKeepBackupPromptConstant), Style: ui.StyleGlobal},
	}
}

func TestNewEngineValidation(testInstance *testing.T) {
	testCases := []struct {
		name          string
		reader        prompt.LineReader
		writer        ui.LineWriter
		expectedError error
	}{
		{name: testMissingReaderCaseNameConstant, writer: &recordingLineWriter{}, expectedError: prompt.ErrLineReaderNotConfigured},
		{name: testMissingWriterCaseNameConstant, reader: &scriptedLineReader{}, expectedError: prompt.ErrLineWriterNotConfigured},
		{name: testConfiguredEngineCaseNameConstant, reader: &scriptedLineReader{}, writer: &recordingLineWriter{}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			engine, creationError := prompt.NewEngine(testCase.reader, testCase.writer, nil)
			if testCase.expectedError != nil {
				require.ErrorIs(testInstance, creationError, testCase.expectedError)
				require.Nil(testInstance, engine)
				return
			}
			require.NoError(testInstance, creationError)
			require.NotNil(testInstance, engine)
		})
	}
}

func TestEngineRunAllScenarios(testInstance *testing.T) {
	testCases := []struct {
		name                  string
		responses             []string
		expectedPrompts       []writtenLine
		expectedDestination   answers.DomainAnswers
		expectedGlobal        answers.DomainAnswers
		expectDestinationSkip bool
	}{
		{
			name:      "asks_destination_when_import_accepted",
			responses: []string{testOriginDatabaseAnswerConstant, "", testDestinationHostAnswerConstant, "", "no"},
			expectedPrompts: []writtenLine{
				{text: testOriginDatabasePromptConstant, style: ui.StyleOrigin},
				{text: testWillImportPromptConstant, style: ui.StyleGlobal},
				{text: testDestinationHostPromptConstant, style: ui.StyleDestination},
				{text: testDestinationDbPromptExpectation, style: ui.StyleDestination},
				{text: testKeepBackupPromptConstant, style: ui.StyleGlobal},
			},
			expectedDestination: answers.DomainAnswers{answers.KeyHost: testDestinationHostAnswerConstant, answers.KeyDatabase: ""},
			expectedGlobal:      answers.DomainAnswers{answers.KeyWillImport: "", answers.KeyKeepBackup: "no"},
		},
		{
			name:      "skips_destination_when_import_declined",
			responses: []string{testOriginDatabaseAnswerConstant, "N", "yes"},
			expectedPrompts: []writtenLine{
				{text: testOriginDatabasePromptConstant, style: ui.StyleOrigin},
				{text: testWillImportPromptConstant, style: ui.StyleGlobal},
				{text: testKeepBackupPromptConstant, style: ui.StyleGlobal},
			},
			expectedDestination: answers.DomainAnswers{},
			expectedGlobal:      answers.DomainAnswers{answers.KeyWillImport: "N", answers.KeyKeepBackup: "yes"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			lineReader := &scriptedLineReader{responses: append([]string{}, testCase.responses...)}
			lineWriter := &recordingLineWriter{}

			engine, creationError := prompt.NewEngine(lineReader, lineWriter, zap.NewNop())
			require.NoError(testInstance, creationError)

			recorded, runError := engine.RunAll(context.Background(), testQuestions())
			require.NoError(testInstance, runError)

			require.Equal(testInstance, testCase.expectedPrompts, lineWriter.lines)
			require.Len(testInstance, lineReader.prompts, len(testCase.expectedPrompts))
			require.Equal(testInstance, testOriginDatabaseAnswerConstant, recorded.Origin().Get(answers.KeyDatabase))
			require.Equal(testInstance, testCase.expectedDestination, recorded.Destination())
			require.Equal(testInstance, testCase.expectedGlobal, recorded.Global())
			require.Empty(testInstance, lineReader.responses)
		})
	}
}

func TestEngineRunAllPropagatesReadFailure(testInstance *testing.T) {
	readFailure := errors.New(testReadFailureMessageConstant)
	lineReader := &scriptedLineReader{responses: []string{testOriginDatabaseAnswerConstant}, failAfter: 1, readError: readFailure}
	lineWriter := &recordingLineWriter{}

	engine, creationError := prompt.NewEngine(lineReader, lineWriter, zap.NewNop())
	require.NoError(testInstance, creationError)

	recorded, runError := engine.RunAll(context.Background(), testQuestions())
	require.Error(testInstance, runError)
	require.ErrorIs(testInstance, runError, readFailure)

	var inputError prompt.InputStreamError
	require.ErrorAs(testInstance, runError, &inputError)
	require.Equal(testInstance, answers.DomainGlobal, inputError.Domain)
	require.Equal(testInstance, answers.KeyWillImport, inputError.Key)

	require.Equal(testInstance, testOriginDatabaseAnswerConstant, recorded.Origin().Get(answers.KeyDatabase))
	require.Len(testInstance, lineReader.prompts, 2)
}

func TestEngineRunAllReportsClosedStream(testInstance *testing.T) {
	engine, creationError := prompt.NewEngine(prompt.NewIOLineReader(strings.NewReader(""), nil), &recordingLineWriter{}, zap.NewNop())
	require.NoError(testInstance, creationError)

	_, runError := engine.RunAll(context.Background(), testQuestions())
	require.ErrorIs(testInstance, runError, prompt.ErrInputStreamClosed)
}

func TestEngineRunAllPropagatesRenderFailure(testInstance *testing.T) {
	renderFailure := errors.New(testRenderFailureMessageConstant)
	lineReader := &scriptedLineReader{responses: []string{testOriginDatabaseAnswerConstant}}

	engine, creationError := prompt.NewEngine(lineReader, &recordingLineWriter{writeError: renderFailure}, zap.NewNop())
	require.NoError(testInstance, creationError)

	_, runError := engine.RunAll(context.Background(), testQuestions())
	require.ErrorIs(testInstance, runError, renderFailure)
	require.Empty(testInstance, lineReader.prompts)
}

func TestEngineRunAllStopsOnCancelledContext(testInstance *testing.T) {
	lineReader := &scriptedLineReader{responses: []string{testOriginDatabaseAnswerConstant}}
	engine, creationError := prompt.NewEngine(lineReader, &recordingLineWriter{}, zap.NewNop())
	require.NoError(testInstance, creationError)

	cancelledContext, cancel := context.WithCancel(context.Background())
	cancel()

	_, runError := engine.RunAll(cancelledContext, testQuestions())
	require.ErrorIs(testInstance, runError, context.Canceled)
	require.Empty(testInstance, lineReader.prompts)
}

func TestEngineRunAllWithStyledConsoleAndIOReader(testInstance *testing.T) {
	input := strings.NewReader("inventory\r\nno\n  keep  ")
	outputBuffer := &bytes.Buffer{}

	engine, creationError := prompt.NewEngine(prompt.NewIOLineReader(input, outputBuffer), ui.NewStyledConsole(outputBuffer, false), zap.NewNop())
	require.NoError(testInstance, creationError)

	recorded, runError := engine.RunAll(context.Background(), testQuestions())
	require.NoError(testInstance, runError)

	require.Equal(testInstance, testOriginDatabaseAnswerConstant, recorded.Origin().Get(answers.KeyDatabase))
	require.False(testInstance, recorded.WillImport())
	require.Equal(testInstance, "  keep  ", recorded.Global().Get(answers.KeyKeepBackup))
	require.Equal(testInstance, testOriginDatabasePromptConstant+"\n> "+testWillImportPromptConstant+"\n> "+testKeepBackupPromptConstant+"\n> ", outputBuffer.String())
}
