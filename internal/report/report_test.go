package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/embedtools/archlint/internal/cli/output"
	"github.com/embedtools/archlint/internal/engine"
	"github.com/embedtools/archlint/pkg/rules"
)

func sampleResult() engine.Result {
	return engine.Result{
		Findings: []rules.Finding{
			{Code: "ER053", Path: "/Blinky/Core/main.c", Message: "linked resource does not exist"},
			{Code: "ER005", Path: "/Blinky/.project", Message: "link type 3 not handled"},
		},
		Summary: engine.Summary{
			Projects:       2,
			FailedProjects: 1,
			Scripts:        1,
			Elapsed:        1530 * time.Millisecond,
		},
	}
}

func plainStyles() *output.Styles {
	r := output.NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, false, output.ModeText)
	return r.Styles()
}

func TestWriteTextFindingsAndSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteText(&buf, New([]string{"fw.zip"}, sampleResult()), plainStyles())

	out := buf.String()
	assert.Contains(t, out, "ER053")
	assert.Contains(t, out, "/Blinky/Core/main.c")
	assert.Contains(t, out, "warning (advisory)")
	assert.Contains(t, out, "Projects:     2 checked, 1 failed")
	assert.Contains(t, out, "Result:       FAILED")
	// No sub-projects ran, so the line is omitted.
	assert.NotContains(t, out, "Sub-projects")
}

func TestWriteTextPassed(t *testing.T) {
	var buf bytes.Buffer
	res := engine.Result{Summary: engine.Summary{Projects: 1, Scripts: 2}}
	WriteText(&buf, New(nil, res), plainStyles())

	out := buf.String()
	assert.Contains(t, out, "Result:       PASSED")
	assert.NotContains(t, out, "│") // no findings table
}

func TestHTMLEscapesAndClassifies(t *testing.T) {
	res := sampleResult()
	res.Findings = append(res.Findings, rules.Finding{
		Code:    "ER044",
		Path:    "/scripts/<evil>.sh",
		Message: "unknown interpreter \"<script>\"",
	})
	page := string(HTML(New([]string{"fw.zip"}, res)))

	assert.Contains(t, page, "FAILED")
	assert.Contains(t, page, `class="error"`)
	assert.Contains(t, page, `class="warning"`)
	assert.Contains(t, page, "&lt;evil&gt;.sh")
	assert.False(t, strings.Contains(page, "<evil>"), "paths must be escaped")
	assert.Contains(t, page, "fw.zip")
}

func TestHTMLNoFindings(t *testing.T) {
	res := engine.Result{Summary: engine.Summary{Projects: 1}}
	page := string(HTML(New([]string{"fw"}, res)))
	assert.Contains(t, page, "PASSED")
	assert.Contains(t, page, "No findings.")
}
