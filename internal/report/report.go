// Package report renders validation results as terminal text and as a
// standalone HTML page for serve mode.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/embedtools/archlint/internal/cli/output"
	"github.com/embedtools/archlint/internal/engine"
	"github.com/embedtools/archlint/pkg/rules"
)

// Report bundles a validation result with the run context needed to
// render it.
type Report struct {
	GeneratedAt time.Time     `json:"generated_at"`
	Archives    []string      `json:"archives"`
	Result      engine.Result `json:"result"`
}

// New builds a report for the given archives and result.
func New(archives []string, res engine.Result) Report {
	return Report{
		GeneratedAt: time.Now().UTC(),
		Archives:    archives,
		Result:      res,
	}
}

// WriteText renders the report as a findings table followed by a run
// summary. Severity labels are colored when styles are active.
func WriteText(w io.Writer, rep Report, styles *output.Styles) {
	findings := rep.Result.Findings
	if len(findings) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Code", "Severity", "Path", "Message"})
		for _, f := range findings {
			t.AppendRow(table.Row{
				f.Code,
				severityLabel(f, styles),
				styles.Path.Render(f.Path),
				f.Message,
			})
		}
		t.Render()
	}
	writeSummary(w, rep.Result.Summary, styles)
}

func severityLabel(f rules.Finding, styles *output.Styles) string {
	sev := f.Severity()
	label := sev.String()
	if f.Advisory() {
		label += " (advisory)"
	}
	return severityStyle(styles, sev).Render(label)
}

func severityStyle(styles *output.Styles, sev rules.Severity) lipgloss.Style {
	switch sev {
	case rules.SeverityError:
		return styles.Error
	case rules.SeverityWarning:
		return styles.Warning
	case rules.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

func writeSummary(w io.Writer, s engine.Summary, styles *output.Styles) {
	fmt.Fprintf(w, "Projects:     %d checked, %d failed\n", s.Projects, s.FailedProjects)
	if s.SubProjects > 0 {
		fmt.Fprintf(w, "Sub-projects: %d checked, %d failed\n", s.SubProjects, s.FailedSubProj)
	}
	fmt.Fprintf(w, "Scripts:      %d checked, %d failed\n", s.Scripts, s.FailedScripts)
	fmt.Fprintf(w, "Elapsed:      %s\n", s.Elapsed.Round(time.Millisecond))

	verdict := styles.Success.Render("PASSED")
	if !s.Passed() {
		verdict = styles.Error.Render("FAILED")
	}
	fmt.Fprintf(w, "Result:       %s\n", verdict)
}
