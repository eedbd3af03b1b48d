package synthesis

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/temirov/mongo-migrate/internal/answers"
	"github.com/temirov/mongo-migrate/internal/execshell"
)

const (
	// DefaultHost is used when the operator leaves the host unanswered.
	DefaultHost = "localhost"
	// DefaultPort is used when the operator leaves the port unanswered.
	DefaultPort = "27017"

	artifactFileNameTemplateConstant       = "%s-%s.json"
	configurationErrorTemplateConstant     = "configuration error: %s"
	missingDatabaseMessageConstant         = "you must specify a database to export the data from"
	missingCollectionMessageConstant       = "you must specify at least one collection to export the data from"
	missingExportCollectionMessageConstant = "export collection name must not be empty"
)

var (
	// ErrMissingDatabase indicates the origin database was not provided.
	ErrMissingDatabase = errors.New(missingDatabaseMessageConstant)
	// ErrMissingCollection indicates the origin collection scope is empty.
	ErrMissingCollection = errors.New(missingCollectionMessageConstant)
)

// ConfigurationError reports a mandatory origin field that is missing. It is raised before any subprocess runs.
type ConfigurationError struct {
	Cause error
}

// Error describes the missing configuration.
func (configurationError ConfigurationError) Error() string {
	return fmt.Sprintf(configurationErrorTemplateConstant, configurationError.Cause)
}

// Unwrap exposes the specific missing field.
func (configurationError ConfigurationError) Unwrap() error {
	return configurationError.Cause
}

// CollectionPair links an origin collection to the destination collection it is imported into.
// An empty Destination falls back to Origin.
type CollectionPair struct {
	Origin      string
	Destination string
}

// TargetCollection returns the collection the import writes to.
func (pair CollectionPair) TargetCollection() string {
	trimmedDestination := strings.TrimSpace(pair.Destination)
	if len(trimmedDestination) > 0 {
		return trimmedDestination
	}
	return strings.TrimSpace(pair.Origin)
}

// ValidateOrigin ensures the origin database and at least one collection are present.
func ValidateOrigin(origin answers.DomainAnswers) error {
	if len(origin.Trimmed(answers.KeyDatabase)) == 0 {
		return ConfigurationError{Cause: ErrMissingDatabase}
	}
	if len(answers.ParseCollections(origin.Get(answers.KeyCollection))) == 0 {
		return ConfigurationError{Cause: ErrMissingCollection}
	}
	return nil
}

// SynthesizeExport builds the export tool arguments for a single collection.
func SynthesizeExport(origin answers.DomainAnswers, collection string, artifactPath string) ([]string, error) {
	database := origin.Trimmed(answers.KeyDatabase)
	if len(database) == 0 {
		return nil, ConfigurationError{Cause: ErrMissingDatabase}
	}
	trimmedCollection := strings.TrimSpace(collection)
	if len(trimmedCollection) == 0 {
		return nil, ConfigurationError{Cause: errors.New(missingExportCollectionMessageConstant)}
	}

	arguments := connectionArguments(origin)
	arguments = append(arguments,
		execshell.FlagDatabase, database,
		execshell.FlagCollection, trimmedCollection,
	)
	arguments = append(arguments, credentialArguments(origin)...)
	arguments = append(arguments, execshell.FlagOut, artifactPath)
	return arguments, nil
}

// SynthesizeImport builds the import tool arguments. Empty destination values fall back to the origin values;
// no validation is performed, so a missing database surfaces as an import tool failure.
func SynthesizeImport(destination answers.DomainAnswers, origin answers.DomainAnswers, pair CollectionPair, artifactPath string) []string {
	database := destination.Trimmed(answers.KeyDatabase)
	if len(database) == 0 {
		database = origin.Trimmed(answers.KeyDatabase)
	}

	arguments := connectionArguments(destination)
	arguments = append(arguments,
		execshell.FlagDatabase, database,
		execshell.FlagCollection, pair.TargetCollection(),
	)
	arguments = append(arguments, credentialArguments(destination)...)
	arguments = append(arguments, execshell.FlagFile, artifactPath)
	return arguments
}

// ArtifactPath names the interchange file for collection exported at timestamp.
func ArtifactPath(temporaryDirectory string, collection string, timestamp time.Time) string {
	fileName := fmt.Sprintf(artifactFileNameTemplateConstant, strings.TrimSpace(collection), strconv.FormatInt(timestamp.UnixMilli(), 10))
	return filepath.Join(temporaryDirectory, fileName)
}

func connectionArguments(domainAnswers answers.DomainAnswers) []string {
	host := domainAnswers.Trimmed(answers.KeyHost)
	if len(host) == 0 {
		host = DefaultHost
	}
	port := domainAnswers.Trimmed(answers.KeyPort)
	if len(port) == 0 {
		port = DefaultPort
	}
	return []string{execshell.FlagHost, host, execshell.FlagPort, port}
}

// credentialArguments passes the password as a single argv element so embedded whitespace survives intact.
func credentialArguments(domainAnswers answers.DomainAnswers) []string {
	var arguments []string
	if username := domainAnswers.Trimmed(answers.KeyUsername); len(username) > 0 {
		arguments = append(arguments, execshell.FlagUsername, username)
	}
	if password := domainAnswers.Get(answers.KeyPassword); len(password) > 0 {
		arguments = append(arguments, execshell.FlagPassword, password)
	}
	return arguments
}
