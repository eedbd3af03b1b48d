package utils

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	environmentKeySeparatorOldConstant              = "."
	environmentKeySeparatorNewConstant              = "_"
	configurationReadErrorTemplateConstant          = "failed to read configuration: %w"
	configurationUnmarshalErrorTemplateConstant     = "failed to parse configuration: %w"
	embeddedConfigurationMergeErrorTemplateConstant = "failed to merge embedded configuration: %w"
)

// ConfigurationLoader layers embedded defaults, a configuration file, and prefixed environment variables with Viper.
// Later layers win: defaults, embedded data, the configuration file, then the environment.
type ConfigurationLoader struct {
	configurationName         string
	configurationType         string
	environmentPrefix         string
	searchPaths               []string
	embeddedConfiguration     []byte
	embeddedConfigurationType string
}

// LoadedConfiguration surfaces metadata about the resolved configuration.
type LoadedConfiguration struct {
	ConfigFileUsed          string
	EmbeddedDefaultsApplied bool
}

// NewConfigurationLoader creates a loader that searches searchPaths for configurationName and reads environmentPrefix overrides.
func NewConfigurationLoader(configurationName string, configurationType string, environmentPrefix string, searchPaths []string) *ConfigurationLoader {
	return &ConfigurationLoader{
		configurationName: configurationName,
		configurationType: configurationType,
		environmentPrefix: environmentPrefix,
		searchPaths:       append([]string(nil), searchPaths...),
	}
}

// SetEmbeddedConfiguration stores configuration data merged underneath any configuration file.
func (loader *ConfigurationLoader) SetEmbeddedConfiguration(configurationData []byte, configurationType string) {
	if loader == nil {
		return
	}
	loader.embeddedConfigurationType = strings.TrimSpace(configurationType)
	loader.embeddedConfiguration = nil
	if len(configurationData) > 0 {
		loader.embeddedConfiguration = append([]byte(nil), configurationData...)
	}
}

// LoadConfiguration decodes the layered configuration into targetConfiguration.
// A configuration file missing from every search path is not an error; an explicit configurationFilePath that cannot be read is.
func (loader *ConfigurationLoader) LoadConfiguration(configurationFilePath string, defaultValues map[string]any, targetConfiguration any) (LoadedConfiguration, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigName(loader.configurationName)
	viperInstance.SetConfigType(loader.configurationType)

	for defaultKey, defaultValue := range defaultValues {
		viperInstance.SetDefault(defaultKey, defaultValue)
	}

	embeddedApplied, embeddedError := loader.mergeEmbeddedConfiguration(viperInstance)
	if embeddedError != nil {
		return LoadedConfiguration{}, embeddedError
	}

	for _, searchPath := range loader.searchPaths {
		viperInstance.AddConfigPath(searchPath)
	}
	if len(configurationFilePath) > 0 {
		viperInstance.SetConfigFile(configurationFilePath)
	}

	viperInstance.SetEnvPrefix(loader.environmentPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(environmentKeySeparatorOldConstant, environmentKeySeparatorNewConstant))
	viperInstance.AutomaticEnv()

	if readError := viperInstance.MergeInConfig(); readError != nil {
		var notFoundError viper.ConfigFileNotFoundError
		if !errors.As(readError, &notFoundError) {
			return LoadedConfiguration{}, fmt.Errorf(configurationReadErrorTemplateConstant, readError)
		}
	}

	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		trimStringValuesHook,
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if unmarshalError := viperInstance.Unmarshal(targetConfiguration, decodeHook); unmarshalError != nil {
		return LoadedConfiguration{}, fmt.Errorf(configurationUnmarshalErrorTemplateConstant, unmarshalError)
	}

	return LoadedConfiguration{
		ConfigFileUsed:          viperInstance.ConfigFileUsed(),
		EmbeddedDefaultsApplied: embeddedApplied,
	}, nil
}

func (loader *ConfigurationLoader) mergeEmbeddedConfiguration(viperInstance *viper.Viper) (bool, error) {
	if len(loader.embeddedConfiguration) == 0 {
		return false, nil
	}

	embeddedType := loader.embeddedConfigurationType
	if len(embeddedType) == 0 {
		embeddedType = loader.configurationType
	}

	viperInstance.SetConfigType(embeddedType)
	defer viperInstance.SetConfigType(loader.configurationType)

	if mergeError := viperInstance.MergeConfig(bytes.NewReader(loader.embeddedConfiguration)); mergeError != nil {
		return false, fmt.Errorf(embeddedConfigurationMergeErrorTemplateConstant, mergeError)
	}
	return true, nil
}

// trimStringValuesHook strips surrounding whitespace from string values bound to string fields.
func trimStringValuesHook(sourceType reflect.Type, targetType reflect.Type, data any) (any, error) {
	if sourceType.Kind() != reflect.String || targetType.Kind() != reflect.String {
		return data, nil
	}
	stringValue, isString := data.(string)
	if !isString {
		return data, nil
	}
	return strings.TrimSpace(stringValue), nil
}
