package engine

import (
	"strings"

	"github.com/embedtools/archlint/pkg/rules"
	"github.com/embedtools/archlint/pkg/vfs"
)

// validateSW4Project applies the legacy SW4STM32 leg of the rulebook.
// The legacy build descriptors keep tool options under a second
// configuration tree, so ownership is checked on the managed-build
// configurations while options are scanned across every configuration
// element.
func (e *Engine) validateSW4Project(proj string) {
	if !e.natures(proj)[rules.NatureC] {
		e.report(rules.CodeExpectedCNatureSW4, proj, "expected C nature")
	}

	doc := e.cproject(proj)
	if doc == nil {
		e.report(rules.CodeCProjectMissingSW4, proj, ".cproject file missing")
		return
	}

	e.validateSysmem(proj)

	for _, cfg := range doc.BuildConfigs() {
		if !strings.HasPrefix(cfg.Parent, rules.SW4ConfigParentPrefix) {
			e.report(rules.CodeUnexpectedConfigOwner, proj,
				"unexpected build configuration %q with parent %s", cfg.Name, cfg.Parent)
		}
	}

	for _, cfg := range doc.AllConfigs() {
		buildDir := vfs.Join(proj, nameOrDummy(cfg.Name))
		for _, opt := range cfg.Options() {
			switch opt.Attr("superClass") {
			case rules.SW4OptASMIncludes:
				e.validateIncludePaths(proj, buildDir, opt, "ASM")
			case rules.SW4OptCIncludes:
				e.validateIncludePaths(proj, buildDir, opt, "C")
			case rules.SW4OptCPPIncludes:
				e.validateIncludePaths(proj, buildDir, opt, "CPP")
			case rules.SW4OptCLinkerScript:
				e.validateLinkerScript(proj, buildDir, opt, "C")
			case rules.SW4OptCPPLinkerScript:
				e.validateLinkerScript(proj, buildDir, opt, "CPP")
			}
		}
	}
}
