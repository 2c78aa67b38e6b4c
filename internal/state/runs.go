package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/embedtools/archlint/internal/engine"
	"github.com/embedtools/archlint/pkg/rules"
)

// Run is one recorded validation run.
type Run struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed"`
	Archives  []string      `json:"archives"`
	Passed    bool          `json:"passed"`

	Projects       int `json:"projects"`
	FailedProjects int `json:"failed_projects"`
	SubProjects    int `json:"sub_projects"`
	FailedSubProj  int `json:"failed_sub_projects"`
	Scripts        int `json:"scripts"`
	FailedScripts  int `json:"failed_scripts"`

	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
}

// RecordRun stores the outcome of a validation run and returns its
// generated id.
func (s *Store) RecordRun(startedAt time.Time, archives []string, result engine.Result) (string, error) {
	id := uuid.New().String()

	var errors, warnings, infos int
	for _, f := range result.Findings {
		switch f.Severity() {
		case rules.SeverityError:
			errors++
		case rules.SeverityWarning:
			warnings++
		case rules.SeverityInfo:
			infos++
		}
	}

	sum := result.Summary
	_, err := s.db.Exec(`
		INSERT INTO runs (
			id, started_at, elapsed_ms, archives, passed,
			projects, failed_projects, sub_projects, failed_sub_projects,
			scripts, failed_scripts, errors, warnings, infos
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, startedAt.UTC(), sum.Elapsed.Milliseconds(), strings.Join(archives, "\n"),
		boolToInt(sum.Passed()),
		sum.Projects, sum.FailedProjects, sum.SubProjects, sum.FailedSubProj,
		sum.Scripts, sum.FailedScripts, errors, warnings, infos)
	if err != nil {
		return "", fmt.Errorf("recording run: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, started_at, elapsed_ms, archives, passed,
		       projects, failed_projects, sub_projects, failed_sub_projects,
		       scripts, failed_scripts, errors, warnings, infos
		FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			elapsedMS int64
			archives  string
			passed    int
		)
		if err := rows.Scan(&r.ID, &r.StartedAt, &elapsedMS, &archives, &passed,
			&r.Projects, &r.FailedProjects, &r.SubProjects, &r.FailedSubProj,
			&r.Scripts, &r.FailedScripts, &r.Errors, &r.Warnings, &r.Infos); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		if archives != "" {
			r.Archives = strings.Split(archives, "\n")
		}
		r.Passed = passed != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
