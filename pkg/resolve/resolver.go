// Package resolve turns IDE-declared symbolic path expressions into
// canonical virtual paths and classifies candidate paths against the
// archive namespace (exact hit, case collision, missing).
package resolve

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/embedtools/archlint/pkg/vfs"
)

// The symbolic grammar is small but irregular, so each form gets its own
// matcher tried in priority order. A matcher either produces a resolved
// path or declines; declining falls through to the next form.

var (
	// ${workspace_loc:/${ProjName}/rest}suffix is the only workspace
	// variable form that can be verified against the archive: it is
	// anchored to the referencing project's own root.
	workspaceOwnProjRe = regexp.MustCompile(`^"?\$\{workspace_loc:/\$\{ProjName\}/(.*)}(.*?)"?$`)

	// Any other workspace variable references a resource outside the
	// archive's knowable layout.
	workspaceOtherRe = regexp.MustCompile(`^"?\$\{(workspace_loc:|ProjName)`)

	// PARENT-n-PROJECT_LOC/rest, optionally percent-encoded as emitted by
	// some descriptor writers ($%7B ... %7D).
	parentLocRe = regexp.MustCompile(`^(?:\$%7B)?PARENT-([0-9]+)-PROJECT_LOC(?:%7D)?/(.*)$`)
)

// Option resolves a build-configuration option value (include path,
// linker script) into a canonical virtual path. projRoot is the owning
// project's directory, buildDir the configuration's working directory.
// ok is false when the value cannot be verified: it uses a workspace
// variable not anchored to the project itself.
func Option(projRoot, buildDir, value string) (path string, ok bool) {
	if m := workspaceOwnProjRe.FindStringSubmatch(value); m != nil {
		return Relative(projRoot, m[1]+m[2]), true
	}
	if workspaceOtherRe.MatchString(value) {
		return "", false
	}
	return Relative(buildDir, Unquote(value)), true
}

// Link resolves a linked-resource location. PARENT-n-PROJECT_LOC walks n
// directory levels up from the link-owning project before joining the
// remainder. Any other location is returned unchanged: the descriptor
// format also allows plain paths and opaque URIs, and the caller decides
// what existence means for those.
func Link(projRoot, location string) string {
	m := parentLocRe.FindStringSubmatch(location)
	if m == nil {
		return location
	}
	n, _ := strconv.Atoi(m[1])
	dir := projRoot
	for i := 0; i < n; i++ {
		dir = vfs.Parent(dir)
	}
	return vfs.Join(dir, m[2])
}

// Relative joins rel onto base with permissive IDE semantics: "."
// segments are dropped and ".." pops the most recent segment unless the
// result is already at the namespace root, where popping is a no-op
// rather than an error.
func Relative(base, rel string) string {
	res := base
	for _, seg := range strings.Split(rel, "/") {
		switch seg {
		case ".":
		case "..":
			if res != "/" && !atPoppedRoot(res) {
				res = vfs.Parent(res)
			}
		default:
			res = vfs.Join(res, seg)
		}
	}
	return res
}

// atPoppedRoot reports whether res consists only of unresolvable ".."
// segments, i.e. popping already ran past the root.
func atPoppedRoot(res string) bool {
	trimmed := strings.TrimRight(res, "/")
	if trimmed == "" {
		return true
	}
	for _, seg := range strings.Split(strings.TrimPrefix(trimmed, "/"), "/") {
		if seg != ".." {
			return false
		}
	}
	return true
}

// Unquote strips one layer of surrounding double quotes.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
