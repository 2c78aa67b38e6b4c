// Package vfs builds a uniform, case-sensitive virtual namespace over
// physical archive sources (directory trees and zip files) and composes
// multiple sources into one layered view with override priority.
package vfs

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// opener retrieves the byte content of a file entry. Directory entries
// carry a nil opener.
type opener func() (io.ReadCloser, error)

// Namespace maps absolute virtual paths to their content handles.
// All paths start with "/" and directories end with "/". Every entry's
// ancestor directories are guaranteed to be present.
type Namespace struct {
	entries map[string]opener
	origin  string
	closer  io.Closer
}

// Close releases the underlying archive handle, if any. Directory-backed
// namespaces have nothing to release.
func (n *Namespace) Close() error {
	if n.closer != nil {
		return n.closer.Close()
	}
	return nil
}

// Origin returns the filesystem path or archive identifier this
// namespace was built from.
func (n *Namespace) Origin() string { return n.origin }

// Contains reports whether the exact-cased path is present.
func (n *Namespace) Contains(p string) bool {
	_, ok := n.entries[p]
	return ok
}

// Paths returns every virtual path in the namespace, in unspecified order.
func (n *Namespace) Paths() []string {
	out := make([]string, 0, len(n.entries))
	for p := range n.entries {
		out = append(out, p)
	}
	return out
}

// Read returns the content of a file entry.
func (n *Namespace) Read(p string) ([]byte, error) {
	open, ok := n.entries[p]
	if !ok || open == nil {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotReadable, p)
	}
	rc, err := open()
	if err != nil {
		return nil, fmt.Errorf("reading %s from %s: %w", p, n.origin, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Open builds a namespace from path: a directory tree if path is a
// directory, otherwise a zip archive.
func Open(path string) (*Namespace, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive source: %w", err)
	}
	if info.IsDir() {
		return OpenDir(path)
	}
	return OpenZip(path)
}

// OpenDir scans a directory tree into a namespace. Every path below root
// becomes root-relative with a leading "/"; directories get a trailing "/".
//
// Refused on Windows: the filesystem there cannot distinguish entries that
// differ only by case, so collision hazards would go undetected. Callers
// must supply a zip archive instead.
func OpenDir(root string) (*Namespace, error) {
	if runtime.GOOS == "windows" {
		return nil, fmt.Errorf("%w: directory scanning cannot detect case collisions on Windows, use a zip archive", ErrUnsupportedSource)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving archive root: %w", err)
	}

	ns := &Namespace{entries: make(map[string]opener), origin: abs}
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(path, abs)
		if rel == "" {
			return nil // the root itself is implicit
		}
		rel = filepath.ToSlash(rel)
		if !strings.HasPrefix(rel, "/") {
			rel = "/" + rel
		}
		if d.IsDir() {
			ns.entries[EnsureDirSlash(rel)] = nil
			return nil
		}
		phys := path
		ns.entries[rel] = func() (io.ReadCloser, error) { return os.Open(phys) }
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", abs, err)
	}
	return ns, nil
}

// OpenZip reads a zip archive's table of contents into a namespace.
// Ancestor directories implied by deep entry names are synthesized as
// directory entries so the ancestor-presence invariant holds.
func OpenZip(path string) (*Namespace, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening zip %s: %w", path, err)
	}

	ns := &Namespace{entries: make(map[string]opener), origin: path, closer: zr}
	for _, f := range zr.File {
		name := f.Name
		if !strings.HasPrefix(name, "/") {
			name = "/" + name
		}
		if f.FileInfo().IsDir() {
			ns.entries[EnsureDirSlash(name)] = nil
		} else {
			zf := f
			ns.entries[name] = func() (io.ReadCloser, error) { return zf.Open() }
		}

		// Synthesize missing parents.
		for p := Parent(name); p != "" && p != "/"; p = Parent(p) {
			if _, ok := ns.entries[p]; ok {
				break
			}
			ns.entries[p] = nil
		}
		if _, ok := ns.entries["/"]; !ok {
			ns.entries["/"] = nil
		}
	}
	return ns, nil
}
