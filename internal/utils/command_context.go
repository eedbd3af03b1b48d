package utils

import (
	"context"
	"strings"
)

type commandContextKey struct{}

type commandContextValues struct {
	configurationFilePath string
}

// CommandContextAccessor stores CLI metadata, such as the configuration file that was loaded, on command contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath returns a context carrying configurationFilePath. Blank paths leave the parent unchanged.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	trimmedPath := strings.TrimSpace(configurationFilePath)
	if len(trimmedPath) == 0 {
		return parentContext
	}
	return context.WithValue(parentContext, commandContextKey{}, commandContextValues{configurationFilePath: trimmedPath})
}

// ConfigurationFilePath reports the configuration file recorded on executionContext.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	values, available := executionContext.Value(commandContextKey{}).(commandContextValues)
	if !available {
		return "", false
	}
	return values.configurationFilePath, true
}
