package migration

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/mongo-migrate/internal/execshell"
	"github.com/temirov/mongo-migrate/internal/prompt"
	"github.com/temirov/mongo-migrate/internal/ui"
	"github.com/temirov/mongo-migrate/internal/utils"
)

const (
	commandUseConstant                      = "migrate"
	commandShortDescriptionConstant         = "Interactively migrate collections between MongoDB servers"
	commandLongDescriptionConstant          = "migrate asks for the origin and destination connection details, exports every requested collection with mongoexport, optionally imports the exported files with mongoimport, and removes the temporary files unless they are kept as a backup."
	temporaryDirectoryFlagNameConstant      = "temp-dir"
	temporaryDirectoryFlagUsageConstant     = "Directory receiving the temporary export files."
	noColorFlagNameConstant                 = "no-color"
	noColorFlagUsageConstant                = "Disable colored operator output."
	migrationFailedErrorTemplateConstant    = "migration failed: %w"
	executorCreationErrorTemplateConstant   = "unable to construct command executor: %w"
	promptCreationErrorTemplateConstant     = "unable to construct prompt engine: %w"
	serviceCreationErrorTemplateConstant    = "unable to construct migration service: %w"
	logMessageMigrationSummaryConstant      = "Migration summary"
	logFieldCompletedConstant               = "completed"
	logFieldRemovedArtifactsConstant        = "removed_artifacts"
	logFieldCleanupFailureCountConstant     = "cleanup_failures"
	logFieldConfiguredTemporaryDirectory    = "configured_temporary_directory"
	logFieldConfigurationFileConstant       = "config_file"
	logMessageConfigurationResolvedConstant = "Migration configuration resolved"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the migrate Cobra command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	Executor                     CommandExecutor
	QuestionRunner               QuestionRunner
	FileSystem                   afero.Fs
	Clock                        Clock
}

// Build constructs the migrate command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          builder.Run,
	}

	builder.BindFlags(command.Flags())

	return command, nil
}

// BindFlags registers the migrate flags on flagSet so another command can run the migration directly.
func (builder *CommandBuilder) BindFlags(flagSet *pflag.FlagSet) {
	if flagSet == nil {
		return
	}
	flagSet.String(temporaryDirectoryFlagNameConstant, "", temporaryDirectoryFlagUsageConstant)
	flagSet.Bool(noColorFlagNameConstant, false, noColorFlagUsageConstant)
}

// Run executes one interactive migration using the command streams.
func (builder *CommandBuilder) Run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration(command)
	logger := builder.resolveLogger()

	configurationFilePath, _ := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context())
	logger.Debug(
		logMessageConfigurationResolvedConstant,
		zap.String(logFieldConfiguredTemporaryDirectory, configuration.TemporaryDirectory),
		zap.Bool(colorConfigurationKeyConstant, configuration.Color),
		zap.String(logFieldConfigurationFileConstant, configurationFilePath),
	)

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	console := ui.NewStyledConsole(outputWriter, configuration.Color)

	executor, executorError := builder.resolveExecutor(logger, console, configuration)
	if executorError != nil {
		return fmt.Errorf(executorCreationErrorTemplateConstant, executorError)
	}

	questionRunner, questionRunnerError := builder.resolveQuestionRunner(command.InOrStdin(), outputWriter, console, logger)
	if questionRunnerError != nil {
		return fmt.Errorf(promptCreationErrorTemplateConstant, questionRunnerError)
	}

	service, serviceError := NewService(ServiceDependencies{
		Logger:         logger,
		QuestionRunner: questionRunner,
		Executor:       executor,
		FileSystem:     builder.resolveFileSystem(),
		Console:        console,
		Clock:          builder.Clock,
	})
	if serviceError != nil {
		return fmt.Errorf(serviceCreationErrorTemplateConstant, serviceError)
	}

	result, runError := service.Run(command.Context(), MigrationOptions{TemporaryDirectory: configuration.TemporaryDirectory})

	logger.Info(
		logMessageMigrationSummaryConstant,
		zap.Bool(logFieldCompletedConstant, result.Completed),
		zap.Stringer(logFieldPhaseConstant, result.Phase),
		zap.Strings(logFieldRemovedArtifactsConstant, result.RemovedArtifacts),
		zap.Int(logFieldCleanupFailureCountConstant, len(result.CleanupFailures)),
	)

	if runError != nil {
		return fmt.Errorf(migrationFailedErrorTemplateConstant, runError)
	}
	return nil
}

func (builder *CommandBuilder) resolveConfiguration(command *cobra.Command) CommandConfiguration {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}

	if command != nil {
		flagSet := command.Flags()
		if flagSet.Changed(temporaryDirectoryFlagNameConstant) {
			temporaryDirectory, _ := flagSet.GetString(temporaryDirectoryFlagNameConstant)
			configuration.TemporaryDirectory = temporaryDirectory
		}
		if flagSet.Changed(noColorFlagNameConstant) {
			noColor, _ := flagSet.GetBool(noColorFlagNameConstant)
			configuration.Color = !noColor
		}
	}

	return configuration.Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	var logger *zap.Logger
	if builder.LoggerProvider != nil {
		logger = builder.LoggerProvider()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveExecutor(logger *zap.Logger, console ui.LineWriter, configuration CommandConfiguration) (CommandExecutor, error) {
	if builder.Executor != nil {
		return builder.Executor, nil
	}

	observers := []execshell.CommandEventObserver{ui.NewOperatorCommandReporter(console)}
	humanReadableLogging := false
	if builder.HumanReadableLoggingProvider != nil {
		humanReadableLogging = builder.HumanReadableLoggingProvider()
	}
	if humanReadableLogging {
		observers = append(observers, ui.NewConsoleCommandEventLogger(logger))
	}

	shellExecutor, creationError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner(), observers...)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor.WithExecutables(configuration.ExportExecutable, configuration.ImportExecutable), nil
}

func (builder *CommandBuilder) resolveQuestionRunner(input io.Reader, output io.Writer, console ui.LineWriter, logger *zap.Logger) (QuestionRunner, error) {
	if builder.QuestionRunner != nil {
		return builder.QuestionRunner, nil
	}
	engine, engineError := prompt.NewEngine(prompt.NewIOLineReader(input, output), console, logger)
	if engineError != nil {
		return nil, engineError
	}
	return engine, nil
}

func (builder *CommandBuilder) resolveFileSystem() afero.Fs {
	if builder.FileSystem != nil {
		return builder.FileSystem
	}
	return afero.NewOsFs()
}
