package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates empty marker-style files (plus parent directories) under
// root from slash-relative paths.
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		writeFileContent(t, root, f, "<!DOCTYPE html>")
	}
}

func writeFileContent(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestScanFindsMarkersAtAnyDepth(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"draw/Sketchpad/index.html",
		"draw/Paintbrush/index.html",
		"logo/MakeabilityLabLogo/index.html",
		"logo/MakeabilityLabLogo/nested/deeper/index.html",
	)

	markers, err := Scan(root, "index.html")
	require.NoError(t, err)
	assert.Len(t, markers, 4)
}

func TestScanSortsByFullPath(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"zeta/One/index.html",
		"alpha/Two/index.html",
		"alpha/Apple/index.html",
	)

	markers, err := Scan(root, "index.html")
	require.NoError(t, err)

	expected := []string{
		filepath.Join(root, "alpha", "Apple", "index.html"),
		filepath.Join(root, "alpha", "Two", "index.html"),
		filepath.Join(root, "zeta", "One", "index.html"),
	}
	assert.Equal(t, expected, markers)
}

func TestScanIgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"draw/Sketchpad/index.html",
		"draw/Sketchpad/sketch.js",
		"draw/Sketchpad/style.css",
		"draw/README.md",
	)

	markers, err := Scan(root, "index.html")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "draw", "Sketchpad", "index.html")}, markers)
}

func TestScanMissingRootIsEmptyNotError(t *testing.T) {
	markers, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"), "index.html")
	require.NoError(t, err)
	assert.Empty(t, markers)
}

func TestScanIsDeterministic(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"b/Demo/index.html",
		"a/Demo/index.html",
		"c/Demo/index.html",
	)

	first, err := Scan(root, "index.html")
	require.NoError(t, err)
	second, err := Scan(root, "index.html")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
