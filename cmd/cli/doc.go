// Package cli constructs the postlayout command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// primitives around the post restructure command.
package cli
