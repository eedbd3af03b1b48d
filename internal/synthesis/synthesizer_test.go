package synthesis_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/mongo-migrate/internal/answers"
	"github.com/temirov/mongo-migrate/internal/synthesis"
)

const (
	testArtifactPathConstant   = "temp/c1-1700000000000.json"
	testOriginDatabaseConstant = "mydb"
)

func TestSynthesizeExport(testInstance *testing.T) {
	testCases := []struct {
		name              string
		origin            answers.DomainAnswers
		collection        string
		expectedArguments []string
		expectedError     error
	}{
		{
			name:       "applies_default_host_and_port_without_credentials",
			origin:     answers.DomainAnswers{answers.KeyHost: "", answers.KeyPort: "", answers.KeyDatabase: testOriginDatabaseConstant, answers.KeyCollection: "c1"},
			collection: "c1",
			expectedArguments: []string{
				"--host", "localhost",
				"--port", "27017",
				"--db", testOriginDatabaseConstant,
				"--collection", "c1",
				"--out", testArtifactPathConstant,
			},
		},
		{
			name: "includes_credentials_and_keeps_password_as_single_argument",
			origin: answers.DomainAnswers{
				answers.KeyHost:       "origin.internal",
				answers.KeyPort:       "27018",
				answers.KeyUsername:   "reporter",
				answers.KeyPassword:   "pa ss\"word",
				answers.KeyDatabase:   testOriginDatabaseConstant,
				answers.KeyCollection: "c1,c2",
			},
			collection: "c1",
			expectedArguments: []string{
				"--host", "origin.internal",
				"--port", "27018",
				"--db", testOriginDatabaseConstant,
				"--collection", "c1",
				"--username", "reporter",
				"--password", "pa ss\"word",
				"--out", testArtifactPathConstant,
			},
		},
		{
			name:          "rejects_missing_database",
			origin:        answers.DomainAnswers{answers.KeyDatabase: "  ", answers.KeyCollection: "c1"},
			collection:    "c1",
			expectedError: synthesis.ErrMissingDatabase,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			arguments, synthesisError := synthesis.SynthesizeExport(testCase.origin, testCase.collection, testArtifactPathConstant)
			if testCase.expectedError != nil {
				require.ErrorIs(testInstance, synthesisError, testCase.expectedError)
				var configurationError synthesis.ConfigurationError
				require.ErrorAs(testInstance, synthesisError, &configurationError)
				require.Nil(testInstance, arguments)
				return
			}
			require.NoError(testInstance, synthesisError)
			require.Equal(testInstance, testCase.expectedArguments, arguments)
		})
	}
}

func TestSynthesizeExportRejectsEmptyCollection(testInstance *testing.T) {
	origin := answers.DomainAnswers{answers.KeyDatabase: testOriginDatabaseConstant}

	_, synthesisError := synthesis.SynthesizeExport(origin, " ", testArtifactPathConstant)

	var configurationError synthesis.ConfigurationError
	require.ErrorAs(testInstance, synthesisError, &configurationError)
}

func TestSynthesizeImport(testInstance *testing.T) {
	origin := answers.DomainAnswers{answers.KeyDatabase: testOriginDatabaseConstant, answers.KeyCollection: "c1,c2", answers.KeyPassword: "origin-secret"}

	testCases := []struct {
		name              string
		destination       answers.DomainAnswers
		origin            answers.DomainAnswers
		pair              synthesis.CollectionPair
		expectedArguments []string
	}{
		{
			name:        "falls_back_to_origin_database_and_collection",
			destination: answers.DomainAnswers{answers.KeyDatabase: "", answers.KeyCollection: ""},
			origin:      origin,
			pair:        synthesis.CollectionPair{Origin: "c1"},
			expectedArguments: []string{
				"--host", "localhost",
				"--port", "27017",
				"--db", testOriginDatabaseConstant,
				"--collection", "c1",
				"--file", testArtifactPathConstant,
			},
		},
		{
			name: "uses_destination_values_and_credentials",
			destination: answers.DomainAnswers{
				answers.KeyHost:     "replica.internal",
				answers.KeyPort:     "27019",
				answers.KeyUsername: "writer",
				answers.KeyPassword: "dest secret",
				answers.KeyDatabase: "archive",
			},
			origin: origin,
			pair:   synthesis.CollectionPair{Origin: "c1", Destination: "c1_archive"},
			expectedArguments: []string{
				"--host", "replica.internal",
				"--port", "27019",
				"--db", "archive",
				"--collection", "c1_archive",
				"--username", "writer",
				"--password", "dest secret",
				"--file", testArtifactPathConstant,
			},
		},
		{
			name:        "missing_destination_answers_use_defaults",
			destination: nil,
			origin:      answers.DomainAnswers{},
			pair:        synthesis.CollectionPair{},
			expectedArguments: []string{
				"--host", "localhost",
				"--port", "27017",
				"--db", "",
				"--collection", "",
				"--file", testArtifactPathConstant,
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			arguments := synthesis.SynthesizeImport(testCase.destination, testCase.origin, testCase.pair, testArtifactPathConstant)
			require.Equal(testInstance, testCase.expectedArguments, arguments)
		})
	}
}

func TestValidateOrigin(testInstance *testing.T) {
	testCases := []struct {
		name          string
		origin        answers.DomainAnswers
		expectedError error
	}{
		{name: "valid", origin: answers.DomainAnswers{answers.KeyDatabase: testOriginDatabaseConstant, answers.KeyCollection: "a, b"}},
		{name: "missing_database", origin: answers.DomainAnswers{answers.KeyCollection: "a"}, expectedError: synthesis.ErrMissingDatabase},
		{name: "missing_collection", origin: answers.DomainAnswers{answers.KeyDatabase: testOriginDatabaseConstant, answers.KeyCollection: " , "}, expectedError: synthesis.ErrMissingCollection},
		{name: "unanswered", origin: nil, expectedError: synthesis.ErrMissingDatabase},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			validationError := synthesis.ValidateOrigin(testCase.origin)
			if testCase.expectedError == nil {
				require.NoError(testInstance, validationError)
				return
			}
			require.ErrorIs(testInstance, validationError, testCase.expectedError)
		})
	}
}

func TestArtifactPath(testInstance *testing.T) {
	timestamp := time.UnixMilli(1700000000123)

	require.Equal(testInstance, filepath.Join("temp", "orders-1700000000123.json"), synthesis.ArtifactPath("temp", "orders", timestamp))
	require.Equal(testInstance, filepath.Join("/var/tmp/migrate", "orders-1700000000123.json"), synthesis.ArtifactPath("/var/tmp/migrate/", " orders ", timestamp))
}

func TestCollectionPairTargetCollection(testInstance *testing.T) {
	require.Equal(testInstance, "users", synthesis.CollectionPair{Origin: "users"}.TargetCollection())
	require.Equal(testInstance, "people", synthesis.CollectionPair{Origin: "users", Destination: " people "}.TargetCollection())
}
