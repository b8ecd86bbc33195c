package restructure

import (
	pathutils "github.com/temirov/postlayout/internal/utils/path"
)

const (
	// DefaultPostsDirectory is the posts directory used when none is configured.
	DefaultPostsDirectory = "posts"
	// ManuallyMigratedPostName names the post whose layout was migrated by hand.
	ManuallyMigratedPostName = "11395.html"
	// ManifestFileName names the posts manifest kept next to the post files.
	ManifestFileName = "manifest.json"

	postsDirectoryConfigurationKeyConstant  = "posts_directory"
	excludedFilesConfigurationKeyConstant   = "excluded_files"
	dryRunConfigurationKeyConstant          = "dry_run"
	continueOnErrorConfigurationKeyConstant = "continue_on_error"
	configurationKeySeparatorConstant       = "."
)

var restructureConfigurationPathSanitizer = pathutils.NewPathSanitizer()

// CommandConfiguration captures persisted configuration for the restructure command.
type CommandConfiguration struct {
	PostsDirectory  string   `mapstructure:"posts_directory"`
	ExcludedFiles   []string `mapstructure:"excluded_files"`
	DryRun          bool     `mapstructure:"dry_run"`
	ContinueOnError bool     `mapstructure:"continue_on_error"`
}

// DefaultCommandConfiguration returns baseline configuration values for the restructure command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		PostsDirectory:  DefaultPostsDirectory,
		ExcludedFiles:   DefaultExcludedFiles(),
		DryRun:          false,
		ContinueOnError: false,
	}
}

// DefaultExcludedFiles returns the base names that are never migrated.
func DefaultExcludedFiles() []string {
	return []string{ManuallyMigratedPostName, ManifestFileName}
}

// DefaultConfigurationValues exposes default configuration keyed beneath the provided prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		joinConfigurationKey(prefix, postsDirectoryConfigurationKeyConstant):  defaults.PostsDirectory,
		joinConfigurationKey(prefix, excludedFilesConfigurationKeyConstant):   defaults.ExcludedFiles,
		joinConfigurationKey(prefix, dryRunConfigurationKeyConstant):          defaults.DryRun,
		joinConfigurationKey(prefix, continueOnErrorConfigurationKeyConstant): defaults.ContinueOnError,
	}
}

// Sanitize normalizes the posts directory and reduces exclusions to unique base names.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.PostsDirectory = restructureConfigurationPathSanitizer.Directory(configuration.PostsDirectory, DefaultPostsDirectory)
	sanitized.ExcludedFiles = restructureConfigurationPathSanitizer.BaseNames(configuration.ExcludedFiles)
	return sanitized
}

func joinConfigurationKey(prefix string, key string) string {
	if len(prefix) == 0 {
		return key
	}
	return prefix + configurationKeySeparatorConstant + key
}
