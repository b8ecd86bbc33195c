package restructure

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/postlayout/internal/filesystem"
	"github.com/temirov/postlayout/internal/reporting"
	"github.com/temirov/postlayout/internal/utils"
	"github.com/temirov/postlayout/internal/utils/flags"
	pathutils "github.com/temirov/postlayout/internal/utils/path"
)

const (
	commandUseConstant                        = "restructure [posts-directory]"
	commandShortDescriptionConstant           = "Move post wrappers inside the main content element"
	commandLongDescriptionConstant            = "restructure rewrites every post in the posts directory so that the main-content element wraps the layout wrapper, closes the wrapper before the sidebar include, and removes duplicated </article> tags. Excluded posts and posts already using the new layout are left untouched."
	restructureExecutionErrorTemplateConstant = "post restructure failed: %w"
	serviceCreationErrorTemplateConstant      = "unable to construct restructure service: %w"
	restructureCompletedMessageConstant       = "Post restructure completed"
	restructureFailedMessageConstant          = "Post restructure failed"
	logFieldUpdatedPostsConstant              = "updated"
	logFieldSkippedPostsConstant              = "skipped"
	logFieldUnchangedPostsConstant            = "unchanged"
	logFieldPlannedPostsConstant              = "planned"
	logFieldFailedPostsConstant               = "failed"
	logFieldExcludedPostsConstant             = "excluded_posts"
	logFieldConfigurationFileConstant         = "config_file"
	logFieldPostsDirectoryConstant            = "posts_directory"
	logFieldLogLevelConstant                  = "log_level"
	postsDirectoryArgumentIndexConstant       = 0
	maximumPositionalArgumentCountConstant    = 1
)

// ServiceProvider constructs a restructure executor from dependencies.
type ServiceProvider func(dependencies ServiceDependencies) (Executor, error)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the restructure Cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	FileSystem            filesystem.FileSystem
	ServiceProvider       ServiceProvider
	Output                io.Writer
}

type commandOptions struct {
	postsDirectory  string
	excludedFiles   []string
	dryRun          bool
	continueOnError bool
}

// Build constructs the restructure command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.MaximumNArgs(maximumPositionalArgumentCountConstant),
		RunE:          builder.Run,
	}

	return command, nil
}

// Run executes a restructure pass using configuration, positional arguments, and execution flags.
func (builder *CommandBuilder) Run(command *cobra.Command, arguments []string) error {
	options := builder.parseOptions(command, arguments)
	logger := builder.resolveLogger()

	service, serviceError := builder.resolveService(ServiceDependencies{
		Logger:     logger,
		FileSystem: builder.resolveFileSystem(),
		Reporter:   reporting.NewWriterReporter(builder.resolveOutput(command)),
	})
	if serviceError != nil {
		return fmt.Errorf(serviceCreationErrorTemplateConstant, serviceError)
	}

	result, executionError := service.Execute(command.Context(), Options{
		PostsDirectory:  options.postsDirectory,
		ExcludedFiles:   options.excludedFiles,
		DryRun:          options.dryRun,
		ContinueOnError: options.continueOnError,
	})

	builder.logSummary(command, logger, options, result, executionError)

	if executionError != nil {
		return fmt.Errorf(restructureExecutionErrorTemplateConstant, executionError)
	}
	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) commandOptions {
	configuration := builder.resolveConfiguration()

	postsDirectory := configuration.PostsDirectory
	if len(arguments) > postsDirectoryArgumentIndexConstant {
		postsDirectory = pathutils.NewPathSanitizer().Directory(arguments[postsDirectoryArgumentIndexConstant], configuration.PostsDirectory)
	}

	options := commandOptions{
		postsDirectory:  postsDirectory,
		excludedFiles:   configuration.ExcludedFiles,
		dryRun:          configuration.DryRun,
		continueOnError: configuration.ContinueOnError,
	}

	flagValues := flags.ResolveExecutionFlags(command)
	if flagValues.DryRunSet {
		options.dryRun = flagValues.DryRun
	}
	if flagValues.ContinueOnErrorSet {
		options.continueOnError = flagValues.ContinueOnError
	}

	return options
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration().Sanitize()
	}

	provided := builder.ConfigurationProvider()
	return provided.Sanitize()
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

func (builder *CommandBuilder) resolveFileSystem() filesystem.FileSystem {
	if builder.FileSystem != nil {
		return builder.FileSystem
	}
	return filesystem.OSFileSystem{}
}

func (builder *CommandBuilder) resolveOutput(command *cobra.Command) io.Writer {
	if builder.Output != nil {
		return builder.Output
	}
	if command != nil {
		return command.OutOrStdout()
	}
	return nil
}

func (builder *CommandBuilder) resolveService(dependencies ServiceDependencies) (Executor, error) {
	if builder.ServiceProvider != nil {
		return builder.ServiceProvider(dependencies)
	}
	return NewService(dependencies)
}

func (builder *CommandBuilder) logSummary(command *cobra.Command, logger *zap.Logger, options commandOptions, result Result, executionError error) {
	configurationFile := ""
	logLevel := ""
	if command != nil {
		contextAccessor := utils.NewCommandContextAccessor()
		configurationFile, _ = contextAccessor.ConfigurationFilePath(command.Context())
		logLevel, _ = contextAccessor.LogLevel(command.Context())
	}

	fields := []zap.Field{
		zap.String(logFieldPostsDirectoryConstant, options.postsDirectory),
		zap.String(logFieldConfigurationFileConstant, configurationFile),
		zap.String(logFieldLogLevelConstant, logLevel),
		zap.Strings(logFieldUpdatedPostsConstant, result.Paths(OutcomeUpdated)),
		zap.Strings(logFieldSkippedPostsConstant, result.Paths(OutcomeSkipped)),
		zap.Int(logFieldUnchangedPostsConstant, result.Count(OutcomeUnchanged)),
		zap.Int(logFieldPlannedPostsConstant, result.Count(OutcomePlanned)),
		zap.Int(logFieldFailedPostsConstant, result.Count(OutcomeFailed)),
		zap.Int(logFieldExcludedPostsConstant, result.Count(OutcomeExcluded)),
	}

	if executionError != nil {
		var inputError InvalidInputError
		if errors.As(executionError, &inputError) {
			logger.Error(restructureFailedMessageConstant, append(fields, zap.Error(executionError))...)
			return
		}
		logger.Warn(restructureFailedMessageConstant, append(fields, zap.Error(executionError))...)
		return
	}

	logger.Info(restructureCompletedMessageConstant, fields...)
}
