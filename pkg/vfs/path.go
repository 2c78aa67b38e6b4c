package vfs

import "strings"

// Join joins path segments with "/" and collapses doubled separators.
// Virtual paths are always "/"-separated regardless of host platform.
func Join(parts ...string) string {
	joined := strings.Join(parts, "/")
	for strings.Contains(joined, "//") {
		joined = strings.ReplaceAll(joined, "//", "/")
	}
	return joined
}

// EnsureDirSlash appends a trailing slash if the path is non-empty and
// does not already end with one. Directory entries are identified by the
// trailing separator.
func EnsureDirSlash(p string) string {
	if p != "" && !strings.HasSuffix(p, "/") {
		return p + "/"
	}
	return p
}

// IsDir reports whether a virtual path denotes a directory entry.
func IsDir(p string) bool {
	return strings.HasSuffix(p, "/")
}

// Parent returns the parent directory of p, with a trailing slash.
// The root has no parent; Parent("/") returns "".
func Parent(p string) string {
	p = strings.TrimRight(p, "/")
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return ""
	}
	return EnsureDirSlash(p[:idx+1])
}

// Base returns the final segment of p, ignoring any trailing slash.
func Base(p string) string {
	p = strings.TrimRight(p, "/")
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return p
	}
	return p[idx+1:]
}
