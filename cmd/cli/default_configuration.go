package cli

import (
	"bytes"
	_ "embed"
)

// defaultConfigurationContent holds the settings applied before any configuration file or MONGOMIGRATE_ variable.
//
//go:embed default_config.yaml
var defaultConfigurationContent []byte

// EmbeddedDefaultConfiguration returns a copy of the built-in YAML defaults along with their Viper config type.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return bytes.Clone(defaultConfigurationContent), configurationTypeConstant
}
