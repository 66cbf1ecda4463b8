package gallery

import (
	"path"
	"path/filepath"
	"sort"

	"github.com/makeabilitylab/gallery/internal/model"
)

// fallbackCategory labels demos sitting too close to the scan root for a
// category segment to exist inside the tree.
const fallbackCategory = "uncategorized"

// Group derives one demo per marker path and buckets the demos by parent
// directory name. Demos keep scan order inside each category; the categories
// themselves come back sorted by name.
func Group(root string, markers []string) []model.Category {
	rootDir := path.Clean(filepath.ToSlash(root))

	grouped := make(map[string][]model.Demo)
	for _, m := range markers {
		appPath := path.Dir(path.Clean(filepath.ToSlash(m)))
		parent := path.Dir(appPath)

		category := fallbackCategory
		if appPath != rootDir && parent != rootDir {
			category = path.Base(parent)
		}

		grouped[category] = append(grouped[category], model.Demo{
			Name:     path.Base(appPath),
			Category: category,
			Path:     appPath,
		})
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]model.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, model.Category{Name: name, Demos: grouped[name]})
	}
	return categories
}
