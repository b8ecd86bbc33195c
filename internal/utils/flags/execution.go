// Package flags provides helpers for binding standardized execution flags to Cobra commands.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// DryRunFlagName exposes the shared dry-run flag name.
	DryRunFlagName = "dry-run"
	// DryRunFlagUsage describes the shared dry-run flag purpose.
	DryRunFlagUsage = "Report the files that would change without writing them"
	// ContinueOnErrorFlagName exposes the shared continue-on-error flag name.
	ContinueOnErrorFlagName = "continue-on-error"
	// ContinueOnErrorFlagUsage describes the shared continue-on-error flag purpose.
	ContinueOnErrorFlagUsage = "Keep processing remaining files after a file fails"
)

// ExecutionDefaults describes default flag values shared across commands.
type ExecutionDefaults struct {
	DryRun          bool
	ContinueOnError bool
}

// ExecutionFlagDefinition captures a single flag's configuration.
type ExecutionFlagDefinition struct {
	Name      string
	Usage     string
	Shorthand string
	Enabled   bool
}

// ExecutionFlagDefinitions groups execution flag definitions.
type ExecutionFlagDefinitions struct {
	DryRun          ExecutionFlagDefinition
	ContinueOnError ExecutionFlagDefinition
}

// ExecutionFlagValues reports execution flag values resolved from a command.
type ExecutionFlagValues struct {
	DryRun             bool
	DryRunSet          bool
	ContinueOnError    bool
	ContinueOnErrorSet bool
}

// DefaultExecutionFlagDefinitions returns the standard execution flag definitions.
func DefaultExecutionFlagDefinitions() ExecutionFlagDefinitions {
	return ExecutionFlagDefinitions{
		DryRun:          ExecutionFlagDefinition{Name: DryRunFlagName, Usage: DryRunFlagUsage, Enabled: true},
		ContinueOnError: ExecutionFlagDefinition{Name: ContinueOnErrorFlagName, Usage: ContinueOnErrorFlagUsage, Enabled: true},
	}
}

// BindExecutionFlags attaches standardized execution flags to the provided command using persistent scope.
func BindExecutionFlags(command *cobra.Command, defaults ExecutionDefaults, definitions ExecutionFlagDefinitions) {
	if command == nil {
		return
	}

	persistentFlagSet := command.PersistentFlags()

	bindBoolFlag(persistentFlagSet, definitions.DryRun, defaults.DryRun)
	bindBoolFlag(persistentFlagSet, definitions.ContinueOnError, defaults.ContinueOnError)
}

// ResolveExecutionFlags reads execution flag values from the command, including flags inherited from parents.
func ResolveExecutionFlags(command *cobra.Command) ExecutionFlagValues {
	values := ExecutionFlagValues{}
	if command == nil {
		return values
	}

	values.DryRun, values.DryRunSet = lookupBoolFlag(command, DryRunFlagName)
	values.ContinueOnError, values.ContinueOnErrorSet = lookupBoolFlag(command, ContinueOnErrorFlagName)

	return values
}

func bindBoolFlag(flagSet *pflag.FlagSet, definition ExecutionFlagDefinition, defaultValue bool) {
	if flagSet == nil {
		return
	}
	if !definition.Enabled {
		return
	}
	if len(definition.Name) == 0 {
		return
	}

	if len(definition.Shorthand) > 0 {
		flagSet.BoolP(definition.Name, definition.Shorthand, defaultValue, definition.Usage)
		return
	}

	flagSet.Bool(definition.Name, defaultValue, definition.Usage)
}

func lookupBoolFlag(command *cobra.Command, flagName string) (bool, bool) {
	flagSetsToInspect := []*pflag.FlagSet{
		command.Flags(),
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}
		flag := flagSet.Lookup(flagName)
		if flag == nil {
			continue
		}
		value, parseError := flagSet.GetBool(flagName)
		if parseError != nil {
			return false, false
		}
		return value, flag.Changed
	}

	return false, false
}
