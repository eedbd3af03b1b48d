package migration

import (
	"fmt"

	"github.com/temirov/mongo-migrate/internal/answers"
	"github.com/temirov/mongo-migrate/internal/prompt"
	"github.com/temirov/mongo-migrate/internal/ui"
)

const (
	originHostPromptConstant            = "What is the host of the origin server? (Defaults to 'localhost')"
	originPortPromptConstant            = "What is the port of the origin server? (Defaults to '27017')"
	originUsernamePromptConstant        = "What is the username of the origin server? (Defaults to 'none')"
	originPasswordPromptConstant        = "What is the password of the origin server? (Defaults to 'none')"
	originDatabasePromptConstant        = "What database should we export the data from? [Mandatory]"
	originCollectionPromptConstant      = "What collections should we export the data from? Separate several with commas. [Mandatory]"
	willImportPromptConstant            = "An import operation should be performed? (Defaults to 'Yes')"
	destinationHostPromptConstant       = "What is the host of the destination server? (Defaults to 'localhost')"
	destinationPortPromptConstant       = "What is the port of the destination server? (Defaults to '27017')"
	destinationUsernamePromptConstant   = "What is the username of the destination server? (Defaults to 'none')"
	destinationPasswordPromptConstant   = "What is the password of the destination server? (Defaults to 'none')"
	destinationDatabasePromptTemplate   = "What database should we import the data to? (Defaults to '%s')"
	destinationCollectionPromptTemplate = "What collections should we import the data to? Separate several with commas. (Defaults to '%s')"
	keepBackupPromptConstant            = "Should the temporary export files be kept as a backup? (Defaults to 'Yes')"
)

// DefaultQuestions returns the question sequence used by the migrate command.
// The will-import question precedes every destination question because its answer gates them.
func DefaultQuestions() []prompt.Question {
	return []prompt.Question{
		{Domain: answers.DomainOrigin, Key: answers.KeyHost, Prompt: prompt.Literal(originHostPromptConstant), Style: ui.StyleOrigin},
		{Domain: answers.DomainOrigin, Key: answers.KeyPort, Prompt: prompt.Literal(originPortPromptConstant), Style: ui.StyleOrigin},
		{Domain: answers.DomainOrigin, Key: answers.KeyUsername, Prompt: prompt.Literal(originUsernamePromptConstant), Style: ui.StyleOrigin},
		{Domain: answers.DomainOrigin, Key: answers.KeyPassword, Prompt: prompt.Literal(originPasswordPromptConstant), Style: ui.StyleOrigin},
		{Domain: answers.DomainOrigin, Key: answers.KeyDatabase, Prompt: prompt.Literal(originDatabasePromptConstant), Style: ui.StyleOrigin},
		{Domain: answers.DomainOrigin, Key: answers.KeyCollection, Prompt: prompt.Literal(originCollectionPromptConstant), Style: ui.StyleOrigin},
		{Domain: answers.DomainGlobal, Key: answers.KeyWillImport, Prompt: prompt.Literal(willImportPromptConstant), Style: ui.StyleGlobal},
		{Domain: answers.DomainDestination, Key: answers.KeyHost, Prompt: prompt.Literal(destinationHostPromptConstant), Style: ui.StyleDestination},
		{Domain: answers.DomainDestination, Key: answers.KeyPort, Prompt: prompt.Literal(destinationPortPromptConstant), Style: ui.StyleDestination},
		{Domain: answers.DomainDestination, Key: answers.KeyUsername, Prompt: prompt.Literal(destinationUsernamePromptConstant), Style: ui.StyleDestination},
		{Domain: answers.DomainDestination, Key: answers.KeyPassword, Prompt: prompt.Literal(destinationPasswordPromptConstant), Style: ui.StyleDestination},
		{Domain: answers.DomainDestination, Key: answers.KeyDatabase, Prompt: originDefaultPrompt(destinationDatabasePromptTemplate, answers.KeyDatabase), Style: ui.StyleDestination},
		{Domain: answers.DomainDestination, Key: answers.KeyCollection, Prompt: originDefaultPrompt(destinationCollectionPromptTemplate, answers.KeyCollection), Style: ui.StyleDestination},
		{Domain: answers.DomainGlobal, Key: answers.KeyKeepBackup, Prompt: prompt.Literal(keepBackupPromptConstant), Style: ui.StyleGlobal},
	}
}

func originDefaultPrompt(template string, key answers.Key) prompt.TextProducer {
	return func(recorded answers.AnswerSet) string {
		originValue, _ := recorded.Value(answers.DomainOrigin, key)
		return fmt.Sprintf(template, originValue)
	}
}
