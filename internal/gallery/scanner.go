package gallery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Scan returns every file named marker at any depth under root, sorted by
// full path string so two scans of an unchanged tree yield the same order.
// A missing root is not an error; the gallery is simply empty.
func Scan(root, marker string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var markers []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", path, err)
		}
		if d.IsDir() || d.Name() != marker {
			return nil
		}
		markers = append(markers, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during demo scan of '%s': %w", root, err)
	}

	sort.Strings(markers)
	return markers, nil
}
