// cmd/build.go
package cmd

import (
	"fmt"
	"os"

	"github.com/makeabilitylab/gallery/internal/config"
	"github.com/makeabilitylab/gallery/internal/gallery"
	"github.com/makeabilitylab/gallery/internal/model"

	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Regenerates the static HTML demo gallery",
	Long: `The build command scans the apps directory for demo entry points,
groups the demos by their parent directory name, and overwrites the
output file with a single gallery page linking to every demo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(appConfig)
	},
}

func runBuildProcess(cfg config.Config) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	_, statErr := os.Stat(cfg.AppsDir)
	appsExists := !os.IsNotExist(statErr)

	markers, err := gallery.Scan(cfg.AppsDir, cfg.Marker)
	if err != nil {
		return err
	}
	fmt.Printf("CWD: %s, apps exists: %t, files: %v\n", cwd, appsExists, markers)

	categories := gallery.Group(cfg.AppsDir, markers)
	categories = gallery.ApplyMetadata(categories)

	count := 0
	for _, cat := range categories {
		count += len(cat.Demos)
	}

	doc, err := gallery.Render(model.Gallery{
		SiteTitle:  cfg.SiteTitle,
		BaseURL:    cfg.BaseURL,
		Categories: categories,
	})
	if err != nil {
		return err
	}

	if err := gallery.WriteFile(cfg.OutputFile, doc); err != nil {
		return err
	}

	fmt.Printf("Generated gallery with %d apps.\n", count)
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
