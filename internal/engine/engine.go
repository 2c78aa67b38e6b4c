// Package engine orchestrates one validation run: it discovers projects
// and scripts in a layered archive namespace, applies the rulebook to
// each and collects the resulting findings.
package engine

import (
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/embedtools/archlint/pkg/descriptor"
	"github.com/embedtools/archlint/pkg/resolve"
	"github.com/embedtools/archlint/pkg/rules"
	"github.com/embedtools/archlint/pkg/vfs"
)

// Config carries the per-run validation options.
type Config struct {
	// Pedantic turns absent optimization/debug-level declarations into
	// findings instead of silently passing them.
	Pedantic bool

	// ForceCubeIDE treats every descriptor-bearing directory as a managed
	// IDE project and applies the managed-IDE rulebook unconditionally.
	ForceCubeIDE bool

	// SysmemHash overrides the reference sysmem.c fingerprint. Empty
	// selects the built-in default.
	SysmemHash string

	// ExcludeCodes suppresses findings with these rule codes. A
	// suppressed finding neither appears in the output nor fails its
	// unit.
	ExcludeCodes []string

	// SkipPatterns removes projects and scripts whose path matches any of
	// these anchored regular expressions from validation entirely.
	SkipPatterns []string
}

// Summary aggregates the outcome of one run.
type Summary struct {
	Projects       int           `json:"projects"`
	FailedProjects int           `json:"failed_projects"`
	SubProjects    int           `json:"sub_projects"`
	FailedSubProj  int           `json:"failed_sub_projects"`
	Scripts        int           `json:"scripts"`
	FailedScripts  int           `json:"failed_scripts"`
	Elapsed        time.Duration `json:"elapsed"`
}

// Passed reports whether the run produced no failing unit.
func (s Summary) Passed() bool {
	return s.FailedProjects == 0 && s.FailedSubProj == 0 && s.FailedScripts == 0
}

// Result is the complete outcome of one validation run.
type Result struct {
	Findings []rules.Finding `json:"findings"`
	Summary  Summary         `json:"summary"`
}

// Engine validates one layered namespace. It is single-use: build, Run
// once, discard. The namespace is read-only for the run; the finding
// list and the caches are the only mutable state.
type Engine struct {
	ns  *vfs.Layered
	det *resolve.Detector
	cfg Config
	log *slog.Logger

	skip    []*regexp.Regexp
	exclude map[string]struct{}

	findings []rules.Finding

	// Descriptor caches with negative entries: a key mapped to nil means
	// the document is known missing or unparsable.
	projects  map[string]*descriptor.Project
	cprojects map[string]*descriptor.CProject
}

// New builds an engine over ns. A nil logger discards.
func New(ns *vfs.Layered, cfg Config, log *slog.Logger) (*Engine, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.SysmemHash == "" {
		cfg.SysmemHash = descriptor.DefaultSysmemHash
	}

	e := &Engine{
		ns:        ns,
		det:       resolve.NewDetector(ns),
		cfg:       cfg,
		log:       log,
		exclude:   make(map[string]struct{}, len(cfg.ExcludeCodes)),
		projects:  make(map[string]*descriptor.Project),
		cprojects: make(map[string]*descriptor.CProject),
	}

	for _, code := range cfg.ExcludeCodes {
		if !rules.Known(code) {
			return nil, fmt.Errorf("unknown rule code in exclude list: %s", code)
		}
		e.exclude[code] = struct{}{}
	}
	for _, pat := range cfg.SkipPatterns {
		// Anchored at the start; skip patterns describe path prefixes.
		re, err := regexp.Compile("^(?:" + pat + ")")
		if err != nil {
			return nil, fmt.Errorf("invalid skip pattern %q: %w", pat, err)
		}
		e.skip = append(e.skip, re)
	}
	return e, nil
}

// BuildNamespace opens every archive path (zip file or directory) and
// composes them into a layered view. Later paths override earlier ones,
// so the layer order is the reverse of the argument order.
func BuildNamespace(paths []string) (*vfs.Layered, error) {
	sources := make([]*vfs.Namespace, 0, len(paths))
	for i := len(paths) - 1; i >= 0; i-- {
		ns, err := vfs.Open(paths[i])
		if err != nil {
			for _, src := range sources {
				src.Close()
			}
			return nil, fmt.Errorf("opening %s: %w", paths[i], err)
		}
		sources = append(sources, ns)
	}
	return vfs.NewLayered(sources...), nil
}

// Run performs the full validation pass and returns every finding that
// survives the exclude filter, plus the run summary. Findings come out
// in a deterministic order: projects first, then scripts, each sorted
// by path.
func (e *Engine) Run() Result {
	start := time.Now()
	var sum Summary

	for _, proj := range e.skipped(e.Projects()) {
		sum.Projects++
		if !e.isEclipseBasedIDE(proj) {
			e.report(rules.CodeIDEProjectMissing, proj, "no managed IDE project found")
			sum.FailedProjects++
			continue
		}
		for _, sub := range e.EclipseProjects(proj) {
			sum.SubProjects++
			mark := len(e.findings)
			e.validateProject(sub)
			if e.failedSince(mark) {
				sum.FailedSubProj++
				e.log.Debug("project failed validation", "project", sub)
			} else {
				e.log.Debug("project passed validation", "project", sub)
			}
		}
	}

	for _, script := range e.skipped(e.Scripts()) {
		sum.Scripts++
		mark := len(e.findings)
		e.validateScript(script)
		if e.failedSince(mark) {
			sum.FailedScripts++
		}
	}

	sum.Elapsed = time.Since(start)
	return Result{Findings: e.findings, Summary: sum}
}

// report appends a finding unless its code is excluded.
func (e *Engine) report(code, path, format string, args ...any) {
	if _, ok := e.exclude[code]; ok {
		return
	}
	e.findings = append(e.findings, rules.Finding{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Path:    path,
	})
}

// failedSince reports whether any non-advisory finding was appended
// after the checkpoint.
func (e *Engine) failedSince(mark int) bool {
	for _, f := range e.findings[mark:] {
		if !f.Advisory() {
			return true
		}
	}
	return false
}

// skipped filters out paths matching any skip pattern.
func (e *Engine) skipped(paths []string) []string {
	if len(e.skip) == 0 {
		return paths
	}
	var out []string
next:
	for _, p := range paths {
		for _, re := range e.skip {
			if re.MatchString(p) {
				e.log.Debug("skipping path", "path", p)
				continue next
			}
		}
		out = append(out, p)
	}
	return out
}

// project returns the parsed .project descriptor for a project
// directory, or nil when it is missing or unparsable.
func (e *Engine) project(projDir string) *descriptor.Project {
	if doc, ok := e.projects[projDir]; ok {
		return doc
	}
	var doc *descriptor.Project
	if content, err := e.ns.Read(vfs.Join(projDir, ".project")); err == nil {
		if parsed, err := descriptor.ParseProject(content); err == nil {
			doc = parsed
		} else {
			e.log.Debug("unparsable project descriptor", "project", projDir, "error", err)
		}
	}
	e.projects[projDir] = doc
	return doc
}

// cproject returns the parsed .cproject descriptor for a project
// directory, or nil when it is missing or unparsable.
func (e *Engine) cproject(projDir string) *descriptor.CProject {
	if doc, ok := e.cprojects[projDir]; ok {
		return doc
	}
	var doc *descriptor.CProject
	if content, err := e.ns.Read(vfs.Join(projDir, ".cproject")); err == nil {
		if parsed, err := descriptor.ParseCProject(content); err == nil {
			doc = parsed
		} else {
			e.log.Debug("unparsable build descriptor", "project", projDir, "error", err)
		}
	}
	e.cprojects[projDir] = doc
	return doc
}

// projectName returns the declared project name, or "".
func (e *Engine) projectName(projDir string) string {
	if doc := e.project(projDir); doc != nil {
		return doc.Name
	}
	return ""
}

// natures returns the declared nature set, or nil when the directory is
// not a parsable project.
func (e *Engine) natures(projDir string) map[string]bool {
	if doc := e.project(projDir); doc != nil {
		return doc.Natures()
	}
	return nil
}
