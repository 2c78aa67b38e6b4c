package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.False(t, cfg.Pedantic)
	assert.False(t, cfg.ForceCubeIDE)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, filepath.Join(dir, DefaultStateFile), cfg.StatePath)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	content := `
pedantic: true
exclude_codes: [ER005, ER046]
skip_patterns: ["/Drivers/.*"]
output: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "archlint.yaml"), []byte(content), 0o644))
	chdir(t, dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.True(t, cfg.Pedantic)
	assert.Equal(t, []string{"ER005", "ER046"}, cfg.ExcludeCodes)
	assert.Equal(t, []string{"/Drivers/.*"}, cfg.SkipPatterns)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, filepath.Join(dir, "archlint.yaml"), GetConfigFileUsed())
}

func TestLoadConfigUpwardSearch(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "archlint.yml"), []byte("verbose: true\n"), 0o644))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	// State path resolves against the directory that holds the config.
	assert.Equal(t, filepath.Join(root, DefaultStateFile), cfg.StatePath)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "archlint.yaml"), []byte("output: text\n"), 0o644))
	chdir(t, dir)
	t.Setenv("ARCHLINT_OUTPUT", "yaml")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.OutputFormat)
}

func TestLoadConfigFlagsWin(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())
	t.Setenv("ARCHLINT_PEDANTIC", "false")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("pedantic", false, "")
	flags.String("state", "", "")
	flags.String("serve", "", "")
	require.NoError(t, flags.Parse([]string{"--pedantic", "--state", "runs.db", "--serve", ":8080"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.True(t, cfg.Pedantic)
	assert.Equal(t, ":8080", cfg.ServeAddr)
	// --state maps to state_path and resolves relative to the root.
	assert.Equal(t, "runs.db", filepath.Base(cfg.StatePath))
	assert.True(t, filepath.IsAbs(cfg.StatePath))
}

func TestLoadConfigExplicitFileSetsRoot(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("state_path: data/runs.db\n"), 0o644))
	chdir(t, t.TempDir())

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "runs.db"), cfg.StatePath)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"bad output", Config{OutputFormat: "xml"}, "invalid output format"},
		{"unknown code", Config{OutputFormat: "auto", ExcludeCodes: []string{"ER999"}}, "unknown rule code"},
		{"bad pattern", Config{OutputFormat: "auto", SkipPatterns: []string{"("}}, "invalid skip pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
