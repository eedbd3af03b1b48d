package migration

import (
	"strings"

	"github.com/temirov/mongo-migrate/internal/execshell"
	pathutils "github.com/temirov/mongo-migrate/internal/utils/path"
)

const (
	defaultConfigurationTemporaryDirectoryConstant = "./temp"
	temporaryDirectoryConfigurationKeyConstant     = "temp_directory"
	exportExecutableConfigurationKeyConstant       = "export_executable"
	importExecutableConfigurationKeyConstant       = "import_executable"
	colorConfigurationKeyConstant                  = "color"
	configurationKeySeparatorConstant              = "."
)

var migrationConfigurationDirectorySanitizer = pathutils.NewDirectoryPathSanitizer()

// CommandConfiguration captures persisted settings for the migrate command. Answers are never persisted.
type CommandConfiguration struct {
	TemporaryDirectory string `mapstructure:"temp_directory"`
	ExportExecutable   string `mapstructure:"export_executable"`
	ImportExecutable   string `mapstructure:"import_executable"`
	Color              bool   `mapstructure:"color"`
}

// DefaultCommandConfiguration returns baseline configuration values for the migrate command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		TemporaryDirectory: defaultConfigurationTemporaryDirectoryConstant,
		ExportExecutable:   string(execshell.CommandMongoExport),
		ImportExecutable:   string(execshell.CommandMongoImport),
		Color:              true,
	}
}

// DefaultConfigurationValues returns the viper defaults for the migrate command rooted at prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		prefixedConfigurationKey(prefix, temporaryDirectoryConfigurationKeyConstant): defaults.TemporaryDirectory,
		prefixedConfigurationKey(prefix, exportExecutableConfigurationKeyConstant):   defaults.ExportExecutable,
		prefixedConfigurationKey(prefix, importExecutableConfigurationKeyConstant):   defaults.ImportExecutable,
		prefixedConfigurationKey(prefix, colorConfigurationKeyConstant):              defaults.Color,
	}
}

// Sanitize trims configured values, expands the home directory, and restores defaults for empty entries.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration

	sanitized.TemporaryDirectory = migrationConfigurationDirectorySanitizer.Sanitize(configuration.TemporaryDirectory)
	if len(sanitized.TemporaryDirectory) == 0 {
		sanitized.TemporaryDirectory = migrationConfigurationDirectorySanitizer.Sanitize(defaults.TemporaryDirectory)
	}

	sanitized.ExportExecutable = strings.TrimSpace(configuration.ExportExecutable)
	if len(sanitized.ExportExecutable) == 0 {
		sanitized.ExportExecutable = defaults.ExportExecutable
	}

	sanitized.ImportExecutable = strings.TrimSpace(configuration.ImportExecutable)
	if len(sanitized.ImportExecutable) == 0 {
		sanitized.ImportExecutable = defaults.ImportExecutable
	}

	return sanitized
}

func prefixedConfigurationKey(prefix string, key string) string {
	trimmedPrefix := strings.TrimSpace(prefix)
	if len(trimmedPrefix) == 0 {
		return key
	}
	return trimmedPrefix + configurationKeySeparatorConstant + key
}
