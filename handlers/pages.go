package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"litholog/view"
)

// IndexPageData is the template data for the catalog page.
type IndexPageData struct {
	Page view.Page
	Mode string // "table" or "strip"
}

// HandleIndex renders the catalog. Load failures surface as the page's error
// state rather than a bare 500, so the status line always explains what
// happened.
func (d *Deps) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	mode := r.URL.Query().Get("view")
	if mode != "strip" {
		mode = "table"
	}

	var page view.Page
	entries, err := d.Entries.Load()
	if err != nil {
		d.Log.Error("failed to load entries", zap.Error(err))
		page = view.ErrorPage(err)
	} else {
		page = view.BuildPage(entries)
	}

	d.render(w, "index.html", IndexPageData{Page: page, Mode: mode})
}

func (d *Deps) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.Templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}
