package config

import (
	"fmt"
	"regexp"

	"github.com/embedtools/archlint/internal/cli/output"
	"github.com/embedtools/archlint/pkg/rules"
)

// Validate rejects configuration values that would only fail later,
// deep inside a run.
func Validate(cfg *Config) error {
	if !output.Mode(cfg.OutputFormat).Valid() {
		return fmt.Errorf("invalid output format %q (valid: auto, text, json, yaml)", cfg.OutputFormat)
	}
	for _, code := range cfg.ExcludeCodes {
		if !rules.Known(code) {
			return fmt.Errorf("unknown rule code in exclude_codes: %q", code)
		}
	}
	for _, pat := range cfg.SkipPatterns {
		if _, err := regexp.Compile(pat); err != nil {
			return fmt.Errorf("invalid skip pattern %q: %w", pat, err)
		}
	}
	return nil
}
