package vfs

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "archive.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestPathHelpers(t *testing.T) {
	assert.Equal(t, "/Proj/Debug", Join("/Proj/", "Debug"))
	assert.Equal(t, "/a/b/", EnsureDirSlash("/a/b"))
	assert.Equal(t, "/a/b/", EnsureDirSlash("/a/b/"))
	assert.Equal(t, "/a/", Parent("/a/b/"))
	assert.Equal(t, "/a/", Parent("/a/b"))
	assert.Equal(t, "/", Parent("/a/"))
	assert.Equal(t, "b", Base("/a/b/"))
	assert.Equal(t, "b.c", Base("/a/b.c"))
	assert.True(t, IsDir("/a/"))
	assert.False(t, IsDir("/a"))
}

func TestOpenZipSynthesizesAncestors(t *testing.T) {
	path := writeZip(t, map[string]string{"x/y/z.c": "int main;"})

	ns, err := OpenZip(path)
	require.NoError(t, err)
	defer ns.Close()

	assert.True(t, ns.Contains("/x/y/z.c"))
	assert.True(t, ns.Contains("/x/y/"), "implied parent should be synthesized")
	assert.True(t, ns.Contains("/x/"), "implied grandparent should be synthesized")

	content, err := ns.Read("/x/y/z.c")
	require.NoError(t, err)
	assert.Equal(t, "int main;", string(content))

	_, err = ns.Read("/x/y/")
	assert.ErrorIs(t, err, ErrEntryNotReadable)
	_, err = ns.Read("/nope")
	assert.ErrorIs(t, err, ErrEntryNotReadable)
}

func TestOpenDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Inc"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Inc", "foo.h"), []byte("#pragma once"), 0o644))

	ns, err := OpenDir(root)
	require.NoError(t, err)
	defer ns.Close()

	assert.True(t, ns.Contains("/Inc/"))
	assert.True(t, ns.Contains("/Inc/foo.h"))

	content, err := ns.Read("/Inc/foo.h")
	require.NoError(t, err)
	assert.Equal(t, "#pragma once", string(content))
}

func TestLayeredPrecedence(t *testing.T) {
	older := writeZip(t, map[string]string{"a/b.txt": "old"})
	newer := writeZip(t, map[string]string{"a/b.txt": "new"})

	lower, err := OpenZip(older)
	require.NoError(t, err)
	upper, err := OpenZip(newer)
	require.NoError(t, err)

	l := NewLayered(upper, lower)
	defer l.Close()

	content, err := l.Read("/a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "new", string(content), "highest-priority layer wins content")
	assert.True(t, l.Exists("/a/b.txt"))
}

func TestLayeredUnionAndFallthrough(t *testing.T) {
	one := writeZip(t, map[string]string{"only/in/one.txt": "1"})
	two := writeZip(t, map[string]string{"only/in/two.txt": "2"})

	upper, err := OpenZip(two)
	require.NoError(t, err)
	lower, err := OpenZip(one)
	require.NoError(t, err)

	l := NewLayered(upper, lower)
	defer l.Close()

	assert.True(t, l.Exists("/only/in/one.txt"))
	assert.True(t, l.Exists("/only/in/two.txt"))

	content, err := l.Read("/only/in/one.txt")
	require.NoError(t, err)
	assert.Equal(t, "1", string(content))

	_, err = l.Read("/only/in/none.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLayeredCaseSemantics(t *testing.T) {
	path := writeZip(t, map[string]string{"Inc/Foo.h": "x"})
	ns, err := OpenZip(path)
	require.NoError(t, err)

	l := NewLayered(ns)
	defer l.Close()

	assert.True(t, l.Exists("/Inc/Foo.h"))
	assert.False(t, l.Exists("/inc/foo.h"), "content identity is case-sensitive")
	assert.True(t, l.ExistsFold("/inc/foo.h"))
	assert.True(t, l.ExistsFold("/INC/"))

	_, err = l.Read("/inc/foo.h")
	assert.ErrorIs(t, err, ErrNotFound, "differently-cased copy is not a content match")
}

func TestLayeredList(t *testing.T) {
	path := writeZip(t, map[string]string{
		"proj/.project":    "x",
		"proj/src/main.c":  "x",
		"other/readme.txt": "x",
	})
	ns, err := OpenZip(path)
	require.NoError(t, err)

	l := NewLayered(ns)
	defer l.Close()

	var got []string
	for p := range l.List("/proj", nil) {
		got = append(got, p)
	}
	sort.Strings(got)
	assert.Equal(t, []string{"/proj/.project", "/proj/src/", "/proj/src/main.c"}, got)

	// Restartable: a second pass over the same sequence sees the same paths.
	seq := l.List("", func(p string) bool { return strings.HasSuffix(p, ".c") })
	count := 0
	for range seq {
		count++
	}
	for range seq {
		count++
	}
	assert.Equal(t, 2, count)
}
