package handlers

import (
	"go.uber.org/zap"

	"litholog/storage"
	"litholog/tmpl"
)

// Deps holds all handler dependencies.
type Deps struct {
	Entries   *storage.EntryStore
	Templates *tmpl.Templates
	PDFDir    string
	Log       *zap.Logger
}
