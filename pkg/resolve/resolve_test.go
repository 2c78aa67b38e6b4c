package resolve

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedtools/archlint/pkg/vfs"
)

func layeredFromEntries(t *testing.T, names []string) *vfs.Layered {
	t.Helper()

	path := filepath.Join(t.TempDir(), "a.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for _, name := range names {
		_, err := zw.Create(name)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	ns, err := vfs.OpenZip(path)
	require.NoError(t, err)
	t.Cleanup(func() { ns.Close() })
	return vfs.NewLayered(ns)
}

func TestOption(t *testing.T) {
	tests := []struct {
		name     string
		projRoot string
		buildDir string
		value    string
		want     string
		wantOK   bool
	}{
		{
			name:     "workspace variable anchored to own project",
			projRoot: "/Proj/STM32CubeIDE/",
			buildDir: "/Proj/STM32CubeIDE/Debug/",
			value:    "${workspace_loc:/${ProjName}/Inc}",
			want:     "/Proj/STM32CubeIDE/Inc",
			wantOK:   true,
		},
		{
			name:     "quoted workspace variable with suffix",
			projRoot: "/Proj/",
			buildDir: "/Proj/Debug/",
			value:    `"${workspace_loc:/${ProjName}/Src}/gen"`,
			want:     "/Proj/Src/gen",
			wantOK:   true,
		},
		{
			name:     "foreign workspace variable is unverifiable",
			projRoot: "/Proj/",
			buildDir: "/Proj/Debug/",
			value:    "${workspace_loc:/OtherProj/Inc}",
			wantOK:   false,
		},
		{
			name:     "bare ProjName variable is unverifiable",
			projRoot: "/Proj/",
			buildDir: "/Proj/Debug/",
			value:    "${ProjName}/Inc",
			wantOK:   false,
		},
		{
			name:     "plain relative path against build dir",
			projRoot: "/Proj/",
			buildDir: "/Proj/Debug/",
			value:    "../../Inc/foo.h",
			want:     "/Inc/foo.h",
			wantOK:   true,
		},
		{
			name:     "quoted relative path",
			projRoot: "/Proj/",
			buildDir: "/Proj/Debug/",
			value:    `"../Src"`,
			want:     "/Proj/Src",
			wantOK:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Option(tt.projRoot, tt.buildDir, tt.value)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLink(t *testing.T) {
	assert.Equal(t, "/Common/Src/main.c",
		Link("/Proj/STM32CubeIDE/", "PARENT-2-PROJECT_LOC/Common/Src/main.c"))
	assert.Equal(t, "/Proj/Src/main.c",
		Link("/Proj/STM32CubeIDE/", "PARENT-1-PROJECT_LOC/Src/main.c"))
	assert.Equal(t, "/Proj/Src/main.c",
		Link("/Proj/STM32CubeIDE/", "$%7BPARENT-1-PROJECT_LOC%7D/Src/main.c"))
	// Non-symbolic locations pass through untouched.
	assert.Equal(t, "virtual:/virtual", Link("/Proj/", "virtual:/virtual"))
	assert.Equal(t, "/abs/path.c", Link("/Proj/", "/abs/path.c"))
}

func TestRelative(t *testing.T) {
	assert.Equal(t, "/Inc/foo.h", Relative("/Proj/Debug/", "../../Inc/foo.h"))
	assert.Equal(t, "/Proj/Src", Relative("/Proj/Debug/", "../Src"))
	assert.Equal(t, "/Proj/Debug/x", Relative("/Proj/Debug/", "./x"))

	// Popping past the root is a no-op, never an error.
	assert.Equal(t, "/Inc/foo.h", Relative("/foo.h", "../../Inc/foo.h"))
	assert.Equal(t, "/", Relative("/", "../.."))
}

func TestDetectorExact(t *testing.T) {
	l := layeredFromEntries(t, []string{"Inc/foo.h"})
	d := NewDetector(l)

	assert.Equal(t, VerdictOK, d.Check("/Inc/foo.h").Verdict)
	assert.Equal(t, VerdictOK, d.Check("/Inc/").Verdict)
}

func TestDetectorCollisionShallowestAncestor(t *testing.T) {
	l := layeredFromEntries(t, []string{"Inc/bar.h"})
	d := NewDetector(l)

	// /inc/Foo.h does not exist under any case, but /Inc/ exists with
	// different case at the first segment: blame /inc/, not the leaf.
	res := d.Check("/inc/Foo.h")
	assert.Equal(t, VerdictCollision, res.Verdict)
	assert.Equal(t, "/inc/", res.Offender)
}

func TestDetectorCollisionAtLeaf(t *testing.T) {
	l := layeredFromEntries(t, []string{"Inc/foo.h"})
	d := NewDetector(l)

	res := d.Check("/Inc/Foo.h")
	assert.Equal(t, VerdictCollision, res.Verdict)
	assert.Equal(t, "/Inc/Foo.h", res.Offender)
}

func TestDetectorMissing(t *testing.T) {
	l := layeredFromEntries(t, []string{"Inc/foo.h"})
	d := NewDetector(l)

	assert.Equal(t, VerdictMissing, d.Check("/Src/main.c").Verdict)
}

func TestDetectorCacheDoesNotLeakVerdicts(t *testing.T) {
	l := layeredFromEntries(t, []string{"Inc/foo.h"})
	d := NewDetector(l)

	// First query marks /Inc/ and the root clean.
	assert.Equal(t, VerdictOK, d.Check("/Inc/foo.h").Verdict)
	// A second query sharing the ancestor chain must still get its own
	// verdict rather than the cached walk's.
	assert.Equal(t, VerdictMissing, d.Check("/Inc/other.h").Verdict)
	assert.Equal(t, VerdictOK, d.Check("/Inc/foo.h").Verdict)
}
