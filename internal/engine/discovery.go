package engine

import (
	"regexp"
	"sort"
	"strings"

	"github.com/embedtools/archlint/pkg/rules"
	"github.com/embedtools/archlint/pkg/vfs"
)

var scriptSuffixes = []string{".py", ".sh", ".bat"}

// Projects returns the candidate project roots: parents of the known IDE
// marker directories, sorted and deduplicated. In forced mode every
// directory carrying a .project descriptor counts instead.
func (e *Engine) Projects() []string {
	if e.cfg.ForceCubeIDE {
		return e.EclipseProjects("")
	}

	isMarker := func(p string) bool {
		base := vfs.Base(p)
		for _, name := range rules.IDEMarkerDirs {
			if base == name {
				return true
			}
		}
		return false
	}

	seen := make(map[string]struct{})
	var out []string
	for p := range e.ns.List("", isMarker) {
		parent := vfs.Parent(p)
		if _, ok := seen[parent]; ok {
			continue
		}
		seen[parent] = struct{}{}
		out = append(out, parent)
	}
	sort.Strings(out)
	return out
}

// EclipseProjects returns every directory below root carrying a .project
// descriptor, sorted and deduplicated. An empty root scans the whole
// namespace.
func (e *Engine) EclipseProjects(root string) []string {
	seen := make(map[string]struct{})
	var out []string
	for p := range e.ns.List(root, func(p string) bool { return vfs.Base(p) == ".project" }) {
		parent := vfs.Parent(p)
		if _, ok := seen[parent]; ok {
			continue
		}
		seen[parent] = struct{}{}
		out = append(out, parent)
	}
	sort.Strings(out)
	return out
}

// Scripts returns every script file in the namespace, sorted.
func (e *Engine) Scripts() []string {
	var out []string
	for p := range e.ns.List("", func(p string) bool {
		for _, suffix := range scriptSuffixes {
			if strings.HasSuffix(p, suffix) {
				return true
			}
		}
		return false
	}) {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// isEclipseBasedIDE reports whether the project root contains at least
// one Eclipse-based IDE project with a readable name. Forced mode treats
// every root as Eclipse-based.
func (e *Engine) isEclipseBasedIDE(projRoot string) bool {
	if e.cfg.ForceCubeIDE {
		return true
	}

	pattern := regexp.MustCompile(
		"^" + regexp.QuoteMeta(vfs.EnsureDirSlash(projRoot)) +
			"(" + strings.Join(rules.EclipseIDEDirs, "|") + `)(/.+)*/\.project$`)
	for p := range e.ns.List(projRoot, pattern.MatchString) {
		if e.projectName(vfs.Parent(p)) != "" {
			return true
		}
	}
	return false
}
