package gallery

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/makeabilitylab/gallery/internal/model"
)

const (
	metaFileName   = "demo.yaml"
	readmeFileName = "README.md"
)

// demoMeta is the optional per-demo metadata, read either from a demo.yaml
// file or from README.md frontmatter. demo.yaml values win.
type demoMeta struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Hidden  bool   `yaml:"hidden"`
}

var blurbMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// ApplyMetadata overlays per-demo metadata onto the grouped demos. Demos
// marked hidden are dropped, along with any category left empty. Demos with
// no metadata files pass through untouched.
func ApplyMetadata(categories []model.Category) []model.Category {
	result := make([]model.Category, 0, len(categories))
	for _, cat := range categories {
		kept := make([]model.Demo, 0, len(cat.Demos))
		for _, d := range cat.Demos {
			demo, hidden := decorate(d)
			if hidden {
				continue
			}
			kept = append(kept, demo)
		}
		if len(kept) == 0 {
			continue
		}
		cat.Demos = kept
		result = append(result, cat)
	}
	return result
}

func decorate(d model.Demo) (model.Demo, bool) {
	dir := filepath.FromSlash(d.Path)

	var meta demoMeta
	if body, ok := readReadme(filepath.Join(dir, readmeFileName), &meta); ok {
		if meta.Title == "" {
			meta.Title = titleFromDirName(d.Name)
		}
		if meta.Summary == "" {
			d.Description = renderBlurb(body)
		}
	}

	var overlay demoMeta
	if raw, err := os.ReadFile(filepath.Join(dir, metaFileName)); err == nil {
		if err := yaml.Unmarshal(raw, &overlay); err != nil {
			fmt.Printf("Warning: could not parse %s in '%s': %v. Ignoring it.\n", metaFileName, dir, err)
			overlay = demoMeta{}
		}
	}
	if overlay.Title != "" {
		meta.Title = overlay.Title
	}
	if overlay.Summary != "" {
		meta.Summary = overlay.Summary
		d.Description = ""
	}

	if meta.Title != "" {
		d.Name = meta.Title
	}
	d.Summary = meta.Summary
	return d, meta.Hidden || overlay.Hidden
}

// readReadme parses frontmatter out of the demo's README into meta and
// returns the markdown body. A README with broken frontmatter is still
// usable as a pure markdown body.
func readReadme(path string, meta *demoMeta) ([]byte, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	body, err := frontmatter.Parse(bytes.NewReader(raw), meta)
	if err != nil {
		fmt.Printf("Warning: could not parse frontmatter for %s: %v. Treating as pure markdown.\n", path, err)
		*meta = demoMeta{}
		return raw, true
	}
	return body, true
}

// renderBlurb converts the first prose paragraph of a README body into an
// HTML snippet for the demo's card.
func renderBlurb(body []byte) template.HTML {
	para := firstParagraph(body)
	if para == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := blurbMarkdown.Convert([]byte(para), &buf); err != nil {
		return ""
	}
	return template.HTML(strings.TrimSpace(buf.String()))
}

func firstParagraph(body []byte) string {
	text := strings.ReplaceAll(string(body), "\r\n", "\n")
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" || strings.HasPrefix(block, "#") {
			continue
		}
		return block
	}
	return ""
}

// titleFromDirName turns separator-style directory names like "color-picker"
// into "Color Picker". Names without separators (CamelCase and friends) are
// kept verbatim.
func titleFromDirName(name string) string {
	if !strings.ContainsAny(name, "-_") {
		return name
	}
	spaced := strings.ReplaceAll(strings.ReplaceAll(name, "-", " "), "_", " ")
	titleCaser := cases.Title(language.English)
	return titleCaser.String(spaced)
}
