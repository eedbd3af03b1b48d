package prompt

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/mongo-migrate/internal/answers"
	"github.com/temirov/mongo-migrate/internal/ui"
)

const (
	lineReaderNotConfiguredMessageConstant = "prompt line reader not configured"
	lineWriterNotConfiguredMessageConstant = "prompt line writer not configured"
	inputStreamErrorTemplateConstant       = "unable to read answer for %s %s: %v"
	questionRenderErrorTemplateConstant    = "unable to display question for %s %s: %w"
	answerPromptMarkerConstant             = "> "
	questionAskedLogMessageConstant        = "Question answered"
	questionSkippedLogMessageConstant      = "Question skipped"
	logFieldDomainConstant                 = "domain"
	logFieldKeyConstant                    = "key"
	logFieldAnswerProvidedConstant         = "answer_provided"
)

var (
	// ErrLineReaderNotConfigured indicates an Engine without an input collaborator.
	ErrLineReaderNotConfigured = errors.New(lineReaderNotConfiguredMessageConstant)
	// ErrLineWriterNotConfigured indicates an Engine without an output collaborator.
	ErrLineWriterNotConfigured = errors.New(lineWriterNotConfiguredMessageConstant)
)

// LineReader blocks until one line of operator input is available.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// InputStreamError reports a failure to read an answer. It aborts the question flow.
type InputStreamError struct {
	Domain answers.Domain
	Key    answers.Key
	Cause  error
}

// Error describes the failed read.
func (inputError InputStreamError) Error() string {
	return fmt.Sprintf(inputStreamErrorTemplateConstant, inputError.Domain, inputError.Key, inputError.Cause)
}

// Unwrap exposes the underlying read failure.
func (inputError InputStreamError) Unwrap() error {
	return inputError.Cause
}

// Engine asks questions in order and accumulates the answers.
type Engine struct {
	reader LineReader
	writer ui.LineWriter
	logger *zap.Logger
}

// NewEngine constructs an Engine around the terminal collaborators.
func NewEngine(reader LineReader, writer ui.LineWriter, logger *zap.Logger) (*Engine, error) {
	if reader == nil {
		return nil, ErrLineReaderNotConfigured
	}
	if writer == nil {
		return nil, ErrLineWriterNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{reader: reader, writer: writer, logger: logger}, nil
}

// RunAll asks every question once, front to back. Destination questions are skipped when the
// will-import gate recorded earlier in the sequence evaluates false, so the will-import question
// must precede them.
func (engine *Engine) RunAll(executionContext context.Context, questions []Question) (answers.AnswerSet, error) {
	recorded := answers.NewAnswerSet()

	for _, question := range questions {
		if executionContext != nil {
			if contextError := executionContext.Err(); contextError != nil {
				return recorded, contextError
			}
		}

		if engine.shouldSkip(question, recorded) {
			engine.logger.Debug(
				questionSkippedLogMessageConstant,
				zap.Stringer(logFieldDomainConstant, question.Domain),
				zap.String(logFieldKeyConstant, string(question.Key)),
			)
			continue
		}

		questionText := question.ResolveText(recorded)
		if writeError := engine.writer.WriteLine(questionText, question.Style); writeError != nil {
			return recorded, fmt.Errorf(questionRenderErrorTemplateConstant, question.Domain, question.Key, writeError)
		}

		answer, readError := engine.reader.ReadLine(answerPromptMarkerConstant)
		if readError != nil {
			return recorded, InputStreamError{Domain: question.Domain, Key: question.Key, Cause: readError}
		}

		recorded.Record(question.Domain, question.Key, answer)

		engine.logger.Debug(
			questionAskedLogMessageConstant,
			zap.Stringer(logFieldDomainConstant, question.Domain),
			zap.String(logFieldKeyConstant, string(question.Key)),
			zap.Bool(logFieldAnswerProvidedConstant, len(answer) > 0),
		)
	}

	return recorded, nil
}

func (engine *Engine) shouldSkip(question Question, recorded answers.AnswerSet) bool {
	if question.Domain != answers.DomainDestination {
		return false
	}
	return !recorded.WillImport()
}
