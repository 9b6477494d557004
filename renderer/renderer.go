// Package renderer turns inventory data into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// funcs are available in every template.
var funcs = template.FuncMap{
	// cell escapes a value so that it fits in a markdown table cell.
	"cell": func(v any) string {
		return strings.NewReplacer("|", `\|`, "\n", " ").Replace(fmt.Sprint(v))
	},
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// StockRenderOptions holds configuration for rendering the stock report.
type StockRenderOptions struct {
	HideTotal bool // Do not render the total value line.
}

// RenderStock renders the Stock struct to a markdown string.
func RenderStock(s *Stock, opts StockRenderOptions) string {
	partials := map[string]string{
		"stock_title": "stock_title.md",
		"stock_items": "stock_items.md",
		"stock_total": "stock_total.md",
	}
	if opts.HideTotal {
		partials["stock_total"] = ""
	}
	return renderTemplate("stock", "stock.md", partials, s)
}

// RenderLog renders the Log struct to a markdown string.
func RenderLog(l *Log) string {
	return renderTemplate("log", "log.md", nil, l)
}
