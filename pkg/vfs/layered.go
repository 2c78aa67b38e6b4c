package vfs

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/text/cases"
)

// Layered composes several namespaces into one logical view. Sources are
// held highest-priority first: content lookups return the first layer that
// contains the exact path. Existence checks run against the union of all
// layers, kept as a separate structure from the content-resolution order.
type Layered struct {
	sources []*Namespace

	// union is the merged set of exact-cased paths across all layers.
	// folded additionally indexes the case-folded form of every path so
	// collision checks need no per-query scan.
	union  map[string]struct{}
	folded map[string]struct{}

	fold cases.Caser
}

// NewLayered builds a layered view over the given sources, highest
// priority first.
func NewLayered(sources ...*Namespace) *Layered {
	l := &Layered{
		sources: sources,
		union:   make(map[string]struct{}),
		folded:  make(map[string]struct{}),
		fold:    cases.Fold(),
	}
	for _, src := range sources {
		for _, p := range src.Paths() {
			l.union[p] = struct{}{}
			l.folded[l.fold.String(p)] = struct{}{}
		}
	}
	return l
}

// Exists reports whether any layer contains the exact-cased path.
func (l *Layered) Exists(p string) bool {
	_, ok := l.union[p]
	return ok
}

// ExistsFold reports whether any layer contains the path under
// case-insensitive comparison. A differently-cased entry is a distinct
// path for content purposes but still counts here.
func (l *Layered) ExistsFold(p string) bool {
	_, ok := l.folded[l.fold.String(p)]
	return ok
}

// Read returns the content of p from the highest-priority layer that
// contains it. Case must match exactly.
func (l *Layered) Read(p string) ([]byte, error) {
	for _, src := range l.sources {
		if src.Contains(p) {
			return src.Read(p)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
}

// List yields every path strictly below prefix that satisfies pred, in
// unspecified order. The sequence is restartable; callers sort when
// determinism matters. A nil pred accepts everything; an empty prefix
// ranges over the whole namespace.
func (l *Layered) List(prefix string, pred func(string) bool) iter.Seq[string] {
	prefix = EnsureDirSlash(prefix)
	return func(yield func(string) bool) {
		for p := range l.union {
			if prefix != "" && (!strings.HasPrefix(p, prefix) || p == prefix) {
				continue
			}
			if pred != nil && !pred(p) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Close releases all layer handles.
func (l *Layered) Close() error {
	var first error
	for _, src := range l.sources {
		if err := src.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
