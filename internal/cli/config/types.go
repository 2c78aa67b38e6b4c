// Package config loads archlint configuration from file, environment
// variables, and CLI flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Pedantic promotes missing optimization and debug-level options
	// from silently tolerated to reported.
	Pedantic bool `koanf:"pedantic"`

	// ForceCubeIDE treats the archive root itself as an STM32CubeIDE
	// project directory, for archives without IDE marker folders.
	ForceCubeIDE bool `koanf:"force_cubeide"`

	// SysmemReference points to a sysmem.c file whose fingerprint
	// replaces the built-in reference.
	SysmemReference string `koanf:"sysmem_reference"`

	// ExcludeCodes suppresses the listed rule codes entirely.
	ExcludeCodes []string `koanf:"exclude_codes"`

	// SkipPatterns removes matching virtual paths from discovery.
	// Patterns are anchored regular expressions.
	SkipPatterns []string `koanf:"skip_patterns"`

	StatePath    string `koanf:"state_path"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`

	// Watch re-runs validation when a source directory changes.
	Watch bool `koanf:"watch"`

	// ServeAddr, when set, serves the HTML report on this address.
	ServeAddr string `koanf:"serve_addr"`
}

// Default configuration values.
const (
	DefaultStateFile = ".archlint/state.db"
	DefaultOutput    = "auto" // auto-detect: TTY gets styled text
)
