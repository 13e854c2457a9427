package docs

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { display: flex; font-family: sans-serif; margin: 0; }
nav { min-width: 14rem; padding: 1rem; background: #f4f4f4; }
nav a { display: block; padding: 0.2rem 0; color: #333; text-decoration: none; }
nav a.active { font-weight: bold; color: #ff8c00; }
main { padding: 1rem 2rem; max-width: 50rem; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ddd; padding: 0.3rem 0.6rem; text-align: left; }
</style>
</head>
<body>
<nav>
{{- range .Nav}}
<a href="{{.Path}}"{{if .Active}} class="active"{{end}}>{{.Title}}</a>
{{- end}}
</nav>
<main>
{{.Content}}
</main>
</body>
</html>
`

type navItem struct {
	Title  string
	Path   string
	Active bool
}

type pageData struct {
	Title   string
	Nav     []navItem
	Content template.HTML
}

// Renderer turns reference pages into standalone HTML documents.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewRenderer returns a Renderer with tables and highlighted code blocks.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
	return &Renderer{
		md:   md,
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Render returns the HTML document for pages[i], with every page in the
// navigation.
func (r *Renderer) Render(pages []Page, i int) ([]byte, error) {
	if i < 0 || i >= len(pages) {
		return nil, fmt.Errorf("page %d out of range", i)
	}
	page := pages[i]

	var content bytes.Buffer
	if err := r.md.Convert([]byte(page.Markdown), &content); err != nil {
		return nil, fmt.Errorf("converting %s: %w", page.Title, err)
	}

	nav := make([]navItem, len(pages))
	for j, p := range pages {
		nav[j] = navItem{Title: p.Title, Path: p.Path, Active: j == i}
	}

	var out bytes.Buffer
	err := r.tmpl.Execute(&out, pageData{
		Title:   page.Title,
		Nav:     nav,
		Content: template.HTML(content.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", page.Title, err)
	}
	return out.Bytes(), nil
}
