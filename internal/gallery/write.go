package gallery

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile overwrites path with the rendered document. The gallery is an
// idempotent regeneration artifact, so no temp-file swap is involved.
func WriteFile(path, doc string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create output directory '%s': %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write gallery file '%s': %w", path, err)
	}
	return nil
}
