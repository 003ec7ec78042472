package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// HandlePDF serves a PDF listed in the lithology data set. The filename must
// be a bare name (no directory traversal), must be referenced by an entry, and
// must actually be a PDF on disk.
func (d *Deps) HandlePDF(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		http.NotFound(w, r)
		return
	}

	if !d.Entries.HasPDF(name) {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(d.PDFDir, name)
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		http.NotFound(w, r)
		return
	}
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}
