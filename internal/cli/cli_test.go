package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedtools/archlint/internal/cli/config"
	"github.com/embedtools/archlint/internal/cli/testutil"
)

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestValidateCommandPasses(t *testing.T) {
	arch := testutil.SetupTestArchive(t)
	statePath := filepath.Join(t.TempDir(), "runs.db")

	out, _, err := runCommand(t, "validate", arch, "-o", "json", "--state", statePath)
	require.NoError(t, err)
	assert.Contains(t, out, `"projects": 1`)
	assert.Contains(t, out, `"failed_projects": 0`)

	// The run was recorded in the history database.
	histOut, _, err := runCommand(t, "history", "-o", "json", "--state", statePath)
	require.NoError(t, err)
	assert.Contains(t, histOut, `"passed": true`)
	assert.Contains(t, histOut, filepath.Base(arch))
}

func TestValidateCommandFailsOnFindings(t *testing.T) {
	root := filepath.Join(t.TempDir(), "archive")
	testutil.WriteArchiveFiles(t, root, map[string]string{
		// .cproject missing entirely
		"App/STM32CubeIDE/.project": `<?xml version="1.0" encoding="UTF-8"?>
<projectDescription>
  <name>App</name>
  <natures>
    <nature>org.eclipse.cdt.core.cnature</nature>
  </natures>
</projectDescription>`,
	})
	statePath := filepath.Join(t.TempDir(), "runs.db")

	out, _, err := runCommand(t, "validate", root, "-o", "text", "--state", statePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, out, "ER011")
	assert.Contains(t, out, "FAILED")
}

func TestValidateExcludeCodesFlag(t *testing.T) {
	root := filepath.Join(t.TempDir(), "archive")
	testutil.WriteArchiveFiles(t, root, map[string]string{
		"notes.txt": "no projects here",
	})
	statePath := filepath.Join(t.TempDir(), "runs.db")

	// Without projects the run reports nothing and passes.
	_, _, err := runCommand(t, "validate", root, "--state", statePath, "--exclude-codes", "ER005")
	require.NoError(t, err)

	// Unknown codes are rejected before any validation happens.
	_, _, err = runCommand(t, "validate", root, "--state", statePath, "--exclude-codes", "ER998")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rule code")
}

func TestRulesCommandList(t *testing.T) {
	out, _, err := runCommand(t, "rules", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"ER001"`)
	assert.Contains(t, out, `"ER100"`)
}

func TestRulesCommandShow(t *testing.T) {
	out, _, err := runCommand(t, "rules", "ER027")
	require.NoError(t, err)
	assert.Contains(t, out, "ER027")
	assert.Contains(t, out, "Severity: error")

	_, _, err = runCommand(t, "rules", "ER998")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rule code")
}

func TestRulesCommandGroupFilter(t *testing.T) {
	out, _, err := runCommand(t, "rules", "--group", "script", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"ER039"`)
	assert.NotContains(t, out, `"ER001"`)

	_, _, err = runCommand(t, "rules", "--group", "nonsense")
	require.Error(t, err)
}

func TestHistoryCommandEmpty(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "runs.db")
	out, _, err := runCommand(t, "history", "--state", statePath)
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "archlint v")
}

func TestInvalidOutputFormatRejected(t *testing.T) {
	_, _, err := runCommand(t, "rules", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
