package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/embedtools/archlint/pkg/descriptor"
	"github.com/embedtools/archlint/pkg/resolve"
	"github.com/embedtools/archlint/pkg/rules"
	"github.com/embedtools/archlint/pkg/vfs"
)

// validateProject runs the full rulebook against one Eclipse project
// directory. proj carries a trailing slash. Structural failures
// short-circuit only the checks that depend on the missing document.
func (e *Engine) validateProject(proj string) {
	if strings.HasSuffix(vfs.EnsureDirSlash(proj), "RemoteSystemsTempFiles/") {
		e.report(rules.CodeStaleSubProject, proj, "sub-project should be removed")
		return
	}

	doc := e.project(proj)
	if doc == nil {
		e.report(rules.CodeProjectMissing, proj, ".project file missing")
		return
	}

	// Board-configuration files always live in the project's parent
	// directory; each must be covered by a linked resource.
	parent := vfs.Parent(proj)
	iocFiles := make(map[string]struct{})
	for p := range e.ns.List(parent, func(p string) bool {
		return strings.HasSuffix(p, ".ioc") && !strings.Contains(strings.TrimPrefix(p, parent), "/")
	}) {
		iocFiles[p] = struct{}{}
	}
	for _, iocFile := range sortedKeys(iocFiles) {
		e.validateIOC(iocFile)
	}

	for _, link := range doc.Links {
		switch {
		case link.Empty():
			e.report(rules.CodeEmptyLinkNode, vfs.Join(proj, ".project"), "empty link node detected")
		case link.Type != nil && *link.Type == descriptor.LinkTypeFile:
			e.validateFileLink(proj, link.Source(), link.Dest())
			delete(iocFiles, resolve.Link(proj, link.Source()))
		case link.Type != nil && *link.Type == descriptor.LinkTypeDirectory:
			e.validateDirLink(proj, link.Source(), link.Dest())
			if link.Source() != descriptor.VirtualDirLocation {
				resolved := resolve.Link(proj, link.Source())
				for p := range iocFiles {
					if strings.HasPrefix(p, resolved) {
						delete(iocFiles, p)
					}
				}
			}
		default:
			e.report(rules.CodeLinkTypeUnvalidated, proj, "link type %s not validated", linkTypeLabel(link))
		}
	}

	if len(iocFiles) > 0 {
		e.report(rules.CodeIOCUnlinked, proj,
			"board-configuration files not referenced by project: %s",
			strings.Join(sortedKeys(iocFiles), ", "))
	}

	segments := strings.Split(strings.Trim(proj, "/"), "/")
	hasSW4 := containsSegment(segments, "SW4STM32")
	hasCube := containsSegment(segments, "STM32CubeIDE")

	if hasSW4 && hasCube {
		e.report(rules.CodeMixedIDETree, proj, "SW4STM32 and STM32CubeIDE mixed in one project tree")
	}
	if hasSW4 {
		e.validateSW4Project(proj)
	}
	if hasCube || e.cfg.ForceCubeIDE {
		e.validateCubeProject(proj)
	}
}

// validateIOC checks a board-configuration file's self-describing
// attributes against its file name.
func (e *Engine) validateIOC(iocFile string) {
	content, err := e.ns.Read(iocFile)
	if err != nil {
		return
	}
	ioc := descriptor.ParseIOC(content)
	basename := vfs.Base(iocFile)

	if v, ok := ioc.Get(descriptor.IOCKeyProjectFileName); ok && v != basename {
		e.report(rules.CodeIOCFileNameAttr, iocFile, "wrong file name attribute: %s", v)
	}
	if v, ok := ioc.Get(descriptor.IOCKeyProjectName); ok && v != strings.TrimSuffix(basename, ".ioc") {
		e.report(rules.CodeIOCProjectNameAttr, iocFile, "wrong project name attribute: %s", v)
	}
}

// validateFileLink checks that a file link's source resolves into the
// archive and that its destination does not case-hide other resources.
func (e *Engine) validateFileLink(proj, src, dest string) {
	resolved := resolve.Link(proj, src)
	switch res := e.det.Check(resolved); res.Verdict {
	case resolve.VerdictCollision:
		e.report(rules.CodeLinkWrongCase, resolved, "wrong case in archive at %s", res.Offender)
	case resolve.VerdictMissing:
		e.report(rules.CodeLinkMissing, resolved, "missing from archive")
	}

	e.checkLinkDest(vfs.Join(proj, dest))
}

// validateDirLink is the directory-link variant: virtual directories
// have no backing source to check.
func (e *Engine) validateDirLink(proj, src, dest string) {
	if src != descriptor.VirtualDirLocation {
		resolved := vfs.EnsureDirSlash(resolve.Link(proj, src))
		switch res := e.det.Check(resolved); res.Verdict {
		case resolve.VerdictCollision:
			e.report(rules.CodeLinkWrongCase, resolved, "wrong case in archive at %s", res.Offender)
		case resolve.VerdictMissing:
			e.report(rules.CodeLinkMissing, resolved, "missing from archive")
		}
	}

	e.checkLinkDest(vfs.EnsureDirSlash(vfs.Join(proj, dest)))
}

// checkLinkDest flags a link destination whose ancestor chain case-hides
// resources present in the archive under a different case. The
// destination itself not existing is fine; only collisions matter here.
func (e *Engine) checkLinkDest(dest string) {
	if res := e.det.Check(dest); res.Verdict == resolve.VerdictCollision {
		e.report(rules.CodeLinkHidesResources, dest, "hides other resources at %s", res.Offender)
	}
}

func linkTypeLabel(link descriptor.Link) string {
	if link.Type == nil {
		return "<none>"
	}
	return strconv.Itoa(*link.Type)
}

func containsSegment(segments []string, name string) bool {
	for _, s := range segments {
		if s == name {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
