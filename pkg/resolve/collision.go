package resolve

import "github.com/embedtools/archlint/pkg/vfs"

// Verdict classifies a candidate path against the namespace.
type Verdict int

const (
	// VerdictOK means the path exists with exact case.
	VerdictOK Verdict = iota
	// VerdictCollision means the path or one of its ancestors exists only
	// under a different case, a hazard on case-insensitive filesystems.
	VerdictCollision
	// VerdictMissing means nothing matches, even case-insensitively.
	VerdictMissing
)

func (v Verdict) String() string {
	switch v {
	case VerdictOK:
		return "ok"
	case VerdictCollision:
		return "case-collision"
	case VerdictMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Result carries the verdict and, for collisions, the offending path.
type Result struct {
	Verdict  Verdict
	Offender string
}

// Detector answers exists/collides/missing queries against a layered
// namespace, memoizing ancestors already found clean so sibling queries
// sharing a directory chain do not re-walk it. The cache lives for one
// validation run; the namespace is read-only for that run so entries are
// never invalidated.
type Detector struct {
	ns    *vfs.Layered
	clean map[string]struct{}
}

// NewDetector creates a detector over ns with an empty ancestor cache.
func NewDetector(ns *vfs.Layered) *Detector {
	return &Detector{ns: ns, clean: make(map[string]struct{})}
}

// Check walks p and each ancestor upward. The first node whose
// case-folded form matches a namespace entry while its exact form does
// not is reported as the collision offender. A clean walk yields OK when
// p itself exists, Missing otherwise.
//
// Only the cleanliness of visited nodes is cached, never the verdict for
// p: a later query may legitimately reach a cached ancestor from a
// different subtree.
func (d *Detector) Check(p string) Result {
	cur := p
	for {
		if _, ok := d.clean[cur]; ok {
			break
		}
		if d.ns.ExistsFold(cur) && !d.ns.Exists(cur) {
			return Result{Verdict: VerdictCollision, Offender: cur}
		}
		if cur == "" || cur == "/" {
			break
		}
		d.clean[cur] = struct{}{}
		cur = vfs.Parent(cur)
	}

	if d.ns.Exists(p) {
		return Result{Verdict: VerdictOK}
	}
	return Result{Verdict: VerdictMissing}
}
