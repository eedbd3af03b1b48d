package prompt

import (
	"github.com/temirov/mongo-migrate/internal/answers"
	"github.com/temirov/mongo-migrate/internal/ui"
)

// TextProducer computes prompt text from the answers recorded so far.
type TextProducer func(recorded answers.AnswerSet) string

// Question describes a single interactive prompt.
type Question struct {
	Domain answers.Domain
	Key    answers.Key
	Prompt TextProducer
	Style  ui.Style
}

// Literal returns a TextProducer that always yields text.
func Literal(text string) TextProducer {
	return func(answers.AnswerSet) string {
		return text
	}
}

// ResolveText evaluates the question prompt against the recorded answers.
func (question Question) ResolveText(recorded answers.AnswerSet) string {
	if question.Prompt == nil {
		return string(question.Key)
	}
	return question.Prompt(recorded)
}
