package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"litholog/models"
)

// HandleLithology returns the full entry collection as JSON. Sections are
// always present (possibly empty); filtering is the consumer's job.
func (d *Deps) HandleLithology(w http.ResponseWriter, r *http.Request) {
	entries, err := d.Entries.Load()
	if err != nil {
		d.Log.Error("failed to load entries", zap.Error(err))
		jsonError(w, "Failed to load lithology data", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	jsonOK(w, entries)
}

// --- JSON helpers ---

func jsonOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
