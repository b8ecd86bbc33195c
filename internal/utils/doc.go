// Package utils exposes reusable helpers consumed by the postlayout commands.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper, environment variables, and zap logging for the CLI, along
// with the command context accessor shared by the commands.
package utils
