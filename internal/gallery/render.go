package gallery

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/makeabilitylab/gallery/internal/model"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{ .SiteTitle }}</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 960px; margin: 0 auto; padding: 2rem; }
    h1 { font-size: 1.8rem; margin-bottom: 0.25rem; }
    h2 { font-size: 1.1rem; color: #555; border-bottom: 1px solid #ddd; padding-bottom: 0.25rem; }
    .grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(180px, 1fr)); gap: 1rem; margin: 1rem 0 2rem; }
    .card { display: block; padding: 1rem; border: 1px solid #ddd; border-radius: 8px; text-decoration: none; color: inherit; transition: box-shadow 0.15s; }
    .card:hover { box-shadow: 0 2px 8px rgba(0,0,0,0.15); }
    .card-name { font-weight: 600; font-size: 0.95rem; }
    .card-category { font-size: 0.75rem; color: #888; margin-top: 0.25rem; }
    .card-summary { font-size: 0.8rem; color: #666; margin-top: 0.5rem; }
  </style>
</head>
<body>
  <h1>{{ .SiteTitle }}</h1>
{{- range .Categories }}
  <section>
    <h2>{{ .Name }}</h2>
    <div class="grid">
{{- range .Demos }}
      <a class="card" href="{{ $.BaseURL }}{{ .Path }}/">
        <div class="card-name">{{ .Name }}</div>
        <div class="card-category">{{ .Category }}</div>
{{- if .Summary }}
        <div class="card-summary">{{ .Summary }}</div>
{{- else if .Description }}
        <div class="card-summary">{{ .Description }}</div>
{{- end }}
      </a>
{{- end }}
    </div>
  </section>
{{- end }}
</body>
</html>
`

var pageTpl = template.Must(template.New("gallery").Parse(pageTemplate))

// Render produces the full gallery document. Names, categories, and paths
// pass through html/template and are escaped on the way out.
func Render(g model.Gallery) (string, error) {
	var buf bytes.Buffer
	if err := pageTpl.Execute(&buf, g); err != nil {
		return "", fmt.Errorf("failed to execute gallery template: %w", err)
	}
	return buf.String(), nil
}
