// Package rules defines the validation finding type and the fixed
// rule-code taxonomy applied to archive projects and scripts.
package rules

import "fmt"

// Severity indicates the weight of a finding.
type Severity int

// Severity levels. Errors fail the run; warnings fail it too but flag
// fixable hygiene; info marks checks that could not be completed, kept
// visible so tooling can filter false positives by code.
const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Finding is one rule violation. Findings are immutable values; the
// engine only ever appends to its finding list.
type Finding struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Severity returns the finding's severity from the code registry.
func (f Finding) Severity() Severity {
	if def, ok := GetByCode(f.Code); ok {
		return def.Severity
	}
	return SeverityError
}

// Advisory reports whether the finding's code is advisory-only, meaning
// it does not mark the owning project as failed.
func (f Finding) Advisory() bool {
	def, ok := GetByCode(f.Code)
	return ok && def.Advisory
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Code, f.Path, f.Message)
}
