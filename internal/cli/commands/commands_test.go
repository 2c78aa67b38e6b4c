package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedtools/archlint/internal/cli/config"
	"github.com/embedtools/archlint/pkg/descriptor"
)

func TestWatchDirs(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "fw.zip")
	require.NoError(t, os.WriteFile(zipPath, []byte("PK"), 0o644))
	sub := filepath.Join(dir, "extracted")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	// Directories are watched directly; zip files map to their parent.
	// Duplicates collapse.
	got := watchDirs([]string{sub, zipPath, filepath.Join(dir, "other.zip")})
	assert.Equal(t, []string{sub, dir}, got)
}

func TestEngineConfigSysmemReference(t *testing.T) {
	source := "void *_sbrk(ptrdiff_t incr) { return 0; }\n"
	path := filepath.Join(t.TempDir(), "sysmem.c")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	engCfg, err := engineConfig(&config.Config{SysmemReference: path})
	require.NoError(t, err)
	assert.Equal(t, descriptor.SysmemHash([]byte(source)), engCfg.SysmemHash)

	_, err = engineConfig(&config.Config{SysmemReference: filepath.Join(t.TempDir(), "absent.c")})
	require.Error(t, err)
}

func TestCountCell(t *testing.T) {
	assert.Equal(t, "3", countCell(3, 0))
	assert.Equal(t, "3 (1 failed)", countCell(3, 1))
}
