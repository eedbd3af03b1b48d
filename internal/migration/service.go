package migration

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/mongo-migrate/internal/answers"
	"github.com/temirov/mongo-migrate/internal/execshell"
	"github.com/temirov/mongo-migrate/internal/prompt"
	"github.com/temirov/mongo-migrate/internal/synthesis"
	"github.com/temirov/mongo-migrate/internal/ui"
)

const (
	defaultTemporaryDirectoryConstant       = "temp"
	temporaryDirectoryPermissionsConstant   = os.FileMode(0o755)
	migrationSucceededMessageConstant       = "Data migration was successfully performed!"
	migrationAbortedTemplateConstant        = "Data migration aborted during %s: %v"
	removingArtifactTemplateConstant        = "Removing temporary export file %s"
	keepingArtifactsTemplateConstant        = "Keeping %d temporary export file(s) in %s"
	logMessageMigrationStartedConstant      = "Migration started"
	logMessageCollectionsResolvedConstant   = "Collections resolved"
	logMessageCollectionExportedConstant    = "Collection exported"
	logMessageCollectionImportedConstant    = "Collection imported"
	logMessageArtifactRemovedConstant       = "Temporary artifact removed"
	logMessageArtifactRemovalFailedConstant = "Temporary artifact removal failed"
	logMessageMigrationCompletedConstant    = "Migration completed"
	logMessageMigrationAbortedConstant      = "Migration aborted"
	logFieldTemporaryDirectoryConstant      = "temporary_directory"
	logFieldCollectionsConstant             = "collections"
	logFieldCollectionConstant              = "collection"
	logFieldTargetCollectionConstant        = "target_collection"
	logFieldArtifactConstant                = "artifact"
	logFieldWillImportConstant              = "will_import"
	logFieldKeepBackupConstant              = "keep_backup"
	logFieldPhaseConstant                   = "phase"
	logFieldExportedCountConstant           = "exported"
	logFieldImportedCountConstant           = "imported"
)

// QuestionRunner collects operator answers for an ordered question list.
type QuestionRunner interface {
	RunAll(executionContext context.Context, questions []prompt.Question) (answers.AnswerSet, error)
}

// CommandExecutor launches the export and import tools.
type CommandExecutor interface {
	ExecuteExport(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
	ExecuteImport(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Clock reports the current time. It names export artifacts.
type Clock func() time.Time

// ServiceDependencies describes required collaborators for a migration.
type ServiceDependencies struct {
	Logger         *zap.Logger
	QuestionRunner QuestionRunner
	Executor       CommandExecutor
	FileSystem     afero.Fs
	Console        ui.LineWriter
	Clock          Clock
}

// MigrationOptions configures a single run.
type MigrationOptions struct {
	TemporaryDirectory string
	Questions          []prompt.Question
}

// Artifact links an exported collection to its interchange file.
type Artifact struct {
	Collection string
	Path       string
}

// Result captures the observable outcome of a run. Phase is the last phase entered; Completed is false when the run aborted.
type Result struct {
	Phase            Phase
	Completed        bool
	Answers          answers.AnswerSet
	Collections      []string
	Artifacts        []Artifact
	Imported         []synthesis.CollectionPair
	RemovedArtifacts []string
	CleanupFailures  []CleanupFailure
}

// Service orchestrates the prompt, export, import, and cleanup phases.
type Service struct {
	logger         *zap.Logger
	questionRunner QuestionRunner
	executor       CommandExecutor
	fileSystem     afero.Fs
	console        ui.LineWriter
	clock          Clock
}

// NewService validates dependencies and constructs a Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.QuestionRunner == nil {
		return nil, ErrQuestionRunnerNotConfigured
	}
	if dependencies.Executor == nil {
		return nil, ErrCommandExecutorNotConfigured
	}
	if dependencies.FileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	if dependencies.Console == nil {
		return nil, ErrConsoleNotConfigured
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	clock := dependencies.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Service{
		logger:         logger,
		questionRunner: dependencies.QuestionRunner,
		executor:       dependencies.Executor,
		fileSystem:     dependencies.FileSystem,
		console:        dependencies.Console,
		clock:          clock,
	}, nil
}

// Run executes the migration: Prompting, Exporting, optionally Importing, optionally Cleanup.
// Every step runs sequentially and the first fatal error aborts all remaining steps.
func (service *Service) Run(executionContext context.Context, options MigrationOptions) (Result, error) {
	result := Result{Phase: PhasePrompting}

	questions := options.Questions
	if len(questions) == 0 {
		questions = DefaultQuestions()
	}

	temporaryDirectory := strings.TrimSpace(options.TemporaryDirectory)
	if len(temporaryDirectory) == 0 {
		temporaryDirectory = defaultTemporaryDirectoryConstant
	}

	service.logger.Info(logMessageMigrationStartedConstant, zap.String(logFieldTemporaryDirectoryConstant, temporaryDirectory))

	recorded, promptError := service.questionRunner.RunAll(executionContext, questions)
	result.Answers = recorded
	if promptError != nil {
		return service.abort(result, fmt.Errorf(promptingFailureTemplateConstant, promptError))
	}

	origin := recorded.Origin()
	if validationError := synthesis.ValidateOrigin(origin); validationError != nil {
		return service.abort(result, validationError)
	}

	result.Collections = answers.ParseCollections(origin.Get(answers.KeyCollection))
	willImport := recorded.WillImport()
	keepBackup := recorded.KeepBackup()

	service.logger.Info(
		logMessageCollectionsResolvedConstant,
		zap.Strings(logFieldCollectionsConstant, result.Collections),
		zap.Bool(logFieldWillImportConstant, willImport),
		zap.Bool(logFieldKeepBackupConstant, keepBackup),
	)

	result.Phase = PhaseExporting
	if directoryError := service.fileSystem.MkdirAll(temporaryDirectory, temporaryDirectoryPermissionsConstant); directoryError != nil {
		return service.abort(result, fmt.Errorf(temporaryDirectoryErrorTemplate, temporaryDirectory, directoryError))
	}

	if exportError := service.exportCollections(executionContext, origin, temporaryDirectory, &result); exportError != nil {
		return service.finishAborted(result, exportError, keepBackup, temporaryDirectory)
	}

	if willImport {
		result.Phase = PhaseImporting
		destination := recorded.Destination()
		pairs := PairCollections(result.Collections, answers.ParseCollections(destination.Get(answers.KeyCollection)))
		if importError := service.importCollections(executionContext, destination, origin, pairs, &result); importError != nil {
			return service.finishAborted(result, importError, keepBackup, temporaryDirectory)
		}
	}

	service.writeLine(migrationSucceededMessageConstant, ui.StyleSuccess)
	service.finishArtifacts(&result, keepBackup, temporaryDirectory)

	result.Phase = PhaseDone
	result.Completed = true

	service.logger.Info(
		logMessageMigrationCompletedConstant,
		zap.Int(logFieldExportedCountConstant, len(result.Artifacts)),
		zap.Int(logFieldImportedCountConstant, len(result.Imported)),
	)

	return result, nil
}

func (service *Service) exportCollections(executionContext context.Context, origin answers.DomainAnswers, temporaryDirectory string, result *Result) error {
	for _, collection := range result.Collections {
		if contextError := contextFailure(executionContext); contextError != nil {
			return contextError
		}

		artifactPath := synthesis.ArtifactPath(temporaryDirectory, collection, service.clock())
		arguments, synthesisError := synthesis.SynthesizeExport(origin, collection, artifactPath)
		if synthesisError != nil {
			return synthesisError
		}

		if _, executionError := service.executor.ExecuteExport(executionContext, execshell.CommandDetails{Arguments: arguments}); executionError != nil {
			return SubprocessFailure{Phase: PhaseExporting, Collection: collection, Cause: executionError}
		}

		result.Artifacts = append(result.Artifacts, Artifact{Collection: collection, Path: artifactPath})
		service.logger.Info(
			logMessageCollectionExportedConstant,
			zap.String(logFieldCollectionConstant, collection),
			zap.String(logFieldArtifactConstant, artifactPath),
		)
	}
	return nil
}

func (service *Service) importCollections(executionContext context.Context, destination answers.DomainAnswers, origin answers.DomainAnswers, pairs []synthesis.CollectionPair, result *Result) error {
	for pairIndex, pair := range pairs {
		if contextError := contextFailure(executionContext); contextError != nil {
			return contextError
		}

		artifactPath := result.Artifacts[pairIndex].Path
		arguments := synthesis.SynthesizeImport(destination, origin, pair, artifactPath)

		if _, executionError := service.executor.ExecuteImport(executionContext, execshell.CommandDetails{Arguments: arguments}); executionError != nil {
			return SubprocessFailure{Phase: PhaseImporting, Collection: pair.Origin, Cause: executionError}
		}

		result.Imported = append(result.Imported, pair)
		service.logger.Info(
			logMessageCollectionImportedConstant,
			zap.String(logFieldCollectionConstant, pair.Origin),
			zap.String(logFieldTargetCollectionConstant, pair.TargetCollection()),
			zap.String(logFieldArtifactConstant, artifactPath),
		)
	}
	return nil
}

func (service *Service) finishAborted(result Result, failure error, keepBackup bool, temporaryDirectory string) (Result, error) {
	abortedPhase := result.Phase
	service.finishArtifacts(&result, keepBackup, temporaryDirectory)
	result.Phase = abortedPhase
	return service.abort(result, failure)
}

// finishArtifacts removes every created artifact unless the operator keeps backups. Removal failures are recorded only.
func (service *Service) finishArtifacts(result *Result, keepBackup bool, temporaryDirectory string) {
	if len(result.Artifacts) == 0 {
		return
	}

	if keepBackup {
		service.writeLine(fmt.Sprintf(keepingArtifactsTemplateConstant, len(result.Artifacts), temporaryDirectory), ui.StylePlain)
		return
	}

	result.Phase = PhaseCleanup
	for _, artifact := range result.Artifacts {
		service.writeLine(fmt.Sprintf(removingArtifactTemplateConstant, artifact.Path), ui.StylePlain)

		if removalError := service.fileSystem.Remove(artifact.Path); removalError != nil {
			failure := CleanupFailure{Path: artifact.Path, Cause: removalError}
			result.CleanupFailures = append(result.CleanupFailures, failure)
			service.logger.Warn(
				logMessageArtifactRemovalFailedConstant,
				zap.String(logFieldArtifactConstant, artifact.Path),
				zap.Error(removalError),
			)
			service.writeLine(failure.Error(), ui.StyleWarning)
			continue
		}

		result.RemovedArtifacts = append(result.RemovedArtifacts, artifact.Path)
		service.logger.Debug(logMessageArtifactRemovedConstant, zap.String(logFieldArtifactConstant, artifact.Path))
	}
}

func (service *Service) abort(result Result, failure error) (Result, error) {
	result.Completed = false
	service.logger.Error(
		logMessageMigrationAbortedConstant,
		zap.Stringer(logFieldPhaseConstant, result.Phase),
		zap.Error(failure),
	)
	service.writeLine(fmt.Sprintf(migrationAbortedTemplateConstant, result.Phase, failure), ui.StyleError)
	return result, failure
}

func (service *Service) writeLine(text string, style ui.Style) {
	if writeError := service.console.WriteLine(text, style); writeError != nil {
		service.logger.Debug(text, zap.Error(writeError))
	}
}

func contextFailure(executionContext context.Context) error {
	if executionContext == nil {
		return nil
	}
	return executionContext.Err()
}
