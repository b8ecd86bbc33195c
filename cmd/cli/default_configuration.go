package cli

import (
	"bytes"
	_ "embed"
)

// defaultConfigurationContent seeds every configuration load before user files and environment overrides.
//
//go:embed default_config.yaml
var defaultConfigurationContent []byte

// EmbeddedDefaultConfiguration returns a copy of the bundled default configuration and its format.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return bytes.Clone(defaultConfigurationContent), configurationTypeConstant
}
