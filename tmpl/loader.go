package tmpl

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// Templates holds all page templates, keyed by page name.
type Templates struct {
	pages map[string]*template.Template
}

// ExecuteTemplate renders a page template by name via the layout.
func (t *Templates) ExecuteTemplate(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

// Load parses all templates under dir. Each page template gets its own clone
// of the layout so {{define "content"}} doesn't collide.
func Load(dir string) *Templates {
	funcMap := template.FuncMap{
		// Formatting
		"pct":    func(f float64) string { return fmt.Sprintf("%.2f%%", f) },
		"weight": func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },

		// Strings
		"lower":     strings.ToLower,
		"upper":     strings.ToUpper,
		"trimSpace": strings.TrimSpace,

		// Colors
		"hexToRGBA": hexToRGBA,
		"catTint":   func(hex string) string { return hexToRGBA(hex, 0.18) },
		"catBorder": func(hex string) string { return hexToRGBA(hex, 0.7) },

		// Safe CSS for inline style values built from category colors
		"safeCSS": func(s string) template.CSS { return template.CSS(s) },
	}

	base := template.Must(
		template.New("base").Funcs(funcMap).ParseFiles(filepath.Join(dir, "layout.html")),
	)

	pages := map[string]*template.Template{}
	pageFiles, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		panic("failed to glob page templates: " + err.Error())
	}

	for _, f := range pageFiles {
		name := filepath.Base(f)
		if name == "layout.html" {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			panic("failed to clone base template: " + err.Error())
		}
		template.Must(clone.ParseFiles(f))
		pages[name] = clone
	}

	return &Templates{pages: pages}
}

func hexToRGBA(hex string, alpha float64) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return fmt.Sprintf("rgba(156, 163, 175, %.2f)", alpha)
	}
	r, _ := strconv.ParseInt(hex[0:2], 16, 64)
	g, _ := strconv.ParseInt(hex[2:4], 16, 64)
	b, _ := strconv.ParseInt(hex[4:6], 16, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, alpha)
}
