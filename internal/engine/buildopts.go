package engine

import (
	"strings"

	"github.com/embedtools/archlint/pkg/descriptor"
	"github.com/embedtools/archlint/pkg/resolve"
	"github.com/embedtools/archlint/pkg/rules"
	"github.com/embedtools/archlint/pkg/vfs"
)

// validateIncludePaths resolves every entry of an include-path option
// and checks it against the archive. Distinct codes separate empty
// entries, unverifiable workspace variables, case collisions and plain
// misses.
func (e *Engine) validateIncludePaths(proj, buildDir string, opt *descriptor.Node, tool string) {
	for _, value := range descriptor.ListValues(opt) {
		if value == "" {
			e.report(rules.CodeEmptyIncludePath, proj, `%s include path "" should not be listed`, tool)
			continue
		}

		resolved, ok := resolve.Option(proj, buildDir, value)
		if !ok {
			e.report(rules.CodeIncludeUnverifiable, proj, "%s include path %s cannot be verified", tool, value)
			continue
		}

		resolved = vfs.EnsureDirSlash(resolved)
		switch res := e.det.Check(resolved); res.Verdict {
		case resolve.VerdictCollision:
			e.report(rules.CodeIncludeWrongCase, resolved,
				"%s include path has wrong case in archive at %s", tool, res.Offender)
		case resolve.VerdictMissing:
			e.report(rules.CodeIncludeMissing, resolved, "%s include path missing from archive", tool)
		}
	}
}

// validateLinkerScript resolves a linker-script option value and checks
// it against the archive.
func (e *Engine) validateLinkerScript(proj, buildDir string, opt *descriptor.Node, tool string) {
	value := opt.Attr("value")
	resolved, ok := resolve.Option(proj, buildDir, value)
	if !ok {
		e.report(rules.CodeLinkerUnverifiable, proj, "%s linker script %s cannot be verified", tool, value)
		return
	}

	switch res := e.det.Check(resolved); res.Verdict {
	case resolve.VerdictCollision:
		e.report(rules.CodeLinkerWrongCase, resolved,
			"%s linker script has wrong case in archive at %s", tool, res.Offender)
	case resolve.VerdictMissing:
		e.report(rules.CodeLinkerMissing, resolved, "%s linker script missing from archive", tool)
	}
}

// validateSysmem fingerprints every sysmem.c below the project against
// the reference hash.
func (e *Engine) validateSysmem(proj string) {
	for _, f := range sortedList(e.ns, proj, func(p string) bool {
		return strings.ToLower(vfs.Base(p)) == "sysmem.c" && !vfs.IsDir(p)
	}) {
		content, err := e.ns.Read(f)
		if err != nil {
			continue
		}
		if descriptor.SysmemHash(content) != e.cfg.SysmemHash {
			e.report(rules.CodeSysmemContent, f, "unexpected sysmem.c content")
		}
	}
}
