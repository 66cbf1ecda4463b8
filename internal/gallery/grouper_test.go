package gallery

import (
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupDerivesNameCategoryAndPath(t *testing.T) {
	root := "src/apps"
	markers := []string{
		filepath.FromSlash("src/apps/draw/Sketchpad/index.html"),
	}

	categories := Group(root, markers)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].Demos, 1)

	demo := categories[0].Demos[0]
	assert.Equal(t, "Sketchpad", demo.Name)
	assert.Equal(t, "draw", demo.Category)
	assert.Equal(t, "src/apps/draw/Sketchpad", demo.Path)
	assert.Equal(t, "draw", categories[0].Name)
}

func TestGroupSortsCategoriesButKeepsScanOrderWithin(t *testing.T) {
	markers := []string{
		"src/apps/draw/Paintbrush/index.html",
		"src/apps/draw/Sketchpad/index.html",
		"src/apps/audio/Theremin/index.html",
	}

	categories := Group("src/apps", markers)
	require.Len(t, categories, 2)

	// Categories come back sorted even though "draw" was scanned first.
	assert.Equal(t, "audio", categories[0].Name)
	assert.Equal(t, "draw", categories[1].Name)

	// Within a category, demos stay in scan order.
	require.Len(t, categories[1].Demos, 2)
	assert.Equal(t, "Paintbrush", categories[1].Demos[0].Name)
	assert.Equal(t, "Sketchpad", categories[1].Demos[1].Name)
}

func TestGroupEveryMarkerProducesExactlyOneDemo(t *testing.T) {
	markers := []string{
		"src/apps/a/One/index.html",
		"src/apps/a/Two/index.html",
		"src/apps/b/Three/index.html",
		"src/apps/c/Four/index.html",
	}

	categories := Group("src/apps", markers)

	seen := map[string]bool{}
	total := 0
	for _, cat := range categories {
		require.NotEmpty(t, cat.Demos, "no category section may be empty")
		for _, d := range cat.Demos {
			assert.False(t, seen[d.Path], "demo %s appeared twice", d.Path)
			seen[d.Path] = true
			total++
		}
	}
	assert.Equal(t, len(markers), total)
}

func TestGroupShallowMarkersFallBackToUncategorized(t *testing.T) {
	markers := []string{
		// Marker directly in the scan root.
		"src/apps/index.html",
		// Demo directory sits directly under the root, so the category
		// segment would be the root itself.
		"src/apps/Standalone/index.html",
		// Regular two-level demo for contrast.
		"src/apps/draw/Sketchpad/index.html",
	}

	categories := Group("src/apps", markers)
	require.Len(t, categories, 2)

	assert.Equal(t, "draw", categories[0].Name)
	assert.Equal(t, "uncategorized", categories[1].Name)
	require.Len(t, categories[1].Demos, 2)
	assert.Equal(t, "apps", categories[1].Demos[0].Name)
	assert.Equal(t, "Standalone", categories[1].Demos[1].Name)
}

func TestGroupNormalizesPathsToSlashes(t *testing.T) {
	markers := []string{
		filepath.Join("src", "apps", "draw", "Sketchpad", "index.html"),
	}

	categories := Group(filepath.Join("src", "apps"), markers)
	require.Len(t, categories, 1)

	demo := categories[0].Demos[0]
	assert.Equal(t, path.Clean("src/apps/draw/Sketchpad"), demo.Path)
}

func TestGroupEmptyInput(t *testing.T) {
	assert.Empty(t, Group("src/apps", nil))
}
