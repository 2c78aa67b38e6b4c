package report

import (
	"bytes"
	"html/template"
	"time"

	"github.com/embedtools/archlint/pkg/rules"
)

// pageTemplate is the self-contained HTML page produced for serve mode.
// It carries its own styling so the report can be saved and viewed
// offline.
var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Archive Validation Report</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 72rem; color: #1f2328; }
h1 { font-size: 1.4rem; }
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #d0d7de; padding: 0.4rem 0.6rem; text-align: left; font-size: 0.9rem; }
th { background: #f6f8fa; }
td.path { font-family: monospace; }
.error { color: #cf222e; font-weight: 600; }
.warning { color: #9a6700; }
.info { color: #0969da; }
.passed { color: #1a7f37; font-weight: 700; }
.failed { color: #cf222e; font-weight: 700; }
.meta { color: #656d76; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>Archive Validation Report: <span class="{{.VerdictClass}}">{{.Verdict}}</span></h1>
<p class="meta">Generated {{.GeneratedAt}} · {{range $i, $a := .Archives}}{{if $i}}, {{end}}{{$a}}{{end}}</p>
<table>
<tr><th>Projects</th><th>Failed</th><th>Sub-projects</th><th>Failed</th><th>Scripts</th><th>Failed</th><th>Elapsed</th></tr>
<tr><td>{{.Summary.Projects}}</td><td>{{.Summary.FailedProjects}}</td><td>{{.Summary.SubProjects}}</td><td>{{.Summary.FailedSubProj}}</td><td>{{.Summary.Scripts}}</td><td>{{.Summary.FailedScripts}}</td><td>{{.Elapsed}}</td></tr>
</table>
{{if .Findings}}
<h2>Findings ({{len .Findings}})</h2>
<table>
<tr><th>Code</th><th>Severity</th><th>Path</th><th>Message</th></tr>
{{range .Findings}}
<tr><td>{{.Code}}</td><td class="{{.SeverityClass}}">{{.Severity}}</td><td class="path">{{.Path}}</td><td>{{.Message}}</td></tr>
{{end}}
</table>
{{else}}
<p>No findings.</p>
{{end}}
</body>
</html>
`))

type htmlFinding struct {
	Code          string
	Severity      string
	SeverityClass string
	Path          string
	Message       string
}

type htmlPage struct {
	GeneratedAt  string
	Archives     []string
	Verdict      string
	VerdictClass string
	Summary      struct {
		Projects       int
		FailedProjects int
		SubProjects    int
		FailedSubProj  int
		Scripts        int
		FailedScripts  int
	}
	Elapsed  string
	Findings []htmlFinding
}

// HTML renders the report as a self-contained page.
func HTML(rep Report) []byte {
	page := htmlPage{
		GeneratedAt:  rep.GeneratedAt.Format(time.RFC3339),
		Archives:     rep.Archives,
		Verdict:      "PASSED",
		VerdictClass: "passed",
		Elapsed:      rep.Result.Summary.Elapsed.Round(time.Millisecond).String(),
	}
	if !rep.Result.Summary.Passed() {
		page.Verdict = "FAILED"
		page.VerdictClass = "failed"
	}
	page.Summary.Projects = rep.Result.Summary.Projects
	page.Summary.FailedProjects = rep.Result.Summary.FailedProjects
	page.Summary.SubProjects = rep.Result.Summary.SubProjects
	page.Summary.FailedSubProj = rep.Result.Summary.FailedSubProj
	page.Summary.Scripts = rep.Result.Summary.Scripts
	page.Summary.FailedScripts = rep.Result.Summary.FailedScripts

	for _, f := range rep.Result.Findings {
		sev := f.Severity()
		label := sev.String()
		if f.Advisory() {
			label += " (advisory)"
		}
		page.Findings = append(page.Findings, htmlFinding{
			Code:          f.Code,
			Severity:      label,
			SeverityClass: severityClass(sev),
			Path:          f.Path,
			Message:       f.Message,
		})
	}

	var buf bytes.Buffer
	// Template is static and the page struct has no unexported fields,
	// so execution cannot fail at runtime.
	_ = pageTemplate.Execute(&buf, page)
	return buf.Bytes()
}

func severityClass(sev rules.Severity) string {
	switch sev {
	case rules.SeverityError:
		return "error"
	case rules.SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}
