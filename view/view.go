// Package view builds the renderable view model for the lithology catalog.
// It is a pure transform from entries to cards: filtering, classification and
// depth formatting happen here, so templates and the CLI table printer stay
// presentation-only.
package view

import (
	"fmt"
	"net/url"

	"litholog/models"
)

// State is the outcome of one load attempt.
type State string

const (
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateEmpty   State = "empty"
	StateError   State = "error"
)

// Row is one rendered section: formatted depths, category and proportional
// share of the entry's strip.
type Row struct {
	From        string
	To          string
	Description string
	Category    models.Category
	Weight      float64
	SharePct    float64
}

// Card is one rendered entry.
type Card struct {
	Title       string
	TabName     string
	Description string
	PDFName     string
	PDFURL      string
	Rows        []Row
	TotalWeight float64
}

// Page is the full view model: a state, a human-readable status line, and the
// cards to display (success only).
type Page struct {
	State  State
	Status string
	Cards  []Card
}

// BuildPage filters and renders the fetched entries. Sections without usable
// data are dropped, then entries left with no sections. The status line
// distinguishes "nothing served" from "nothing displayable".
func BuildPage(entries []models.Entry) Page {
	if len(entries) == 0 {
		return Page{State: StateEmpty, Status: "No logs available."}
	}

	var cards []Card
	for _, e := range entries {
		sections := e.UsableSections()
		if len(sections) == 0 {
			continue
		}
		cards = append(cards, buildCard(e, sections))
	}

	if len(cards) == 0 {
		return Page{State: StateEmpty, Status: "No logs with interval data."}
	}
	return Page{State: StateSuccess, Status: summaryStatus(len(cards)), Cards: cards}
}

// ErrorPage wraps a load failure into the error state.
func ErrorPage(err error) Page {
	return Page{State: StateError, Status: "Failed to load logs: " + err.Error()}
}

func summaryStatus(n int) string {
	if n == 1 {
		return "Showing 1 log"
	}
	return fmt.Sprintf("Showing %d logs", n)
}

func buildCard(e models.Entry, sections []models.Section) Card {
	rows := make([]Row, len(sections))
	total := 0.0
	for i, s := range sections {
		w := models.SectionWeight(s.FromDepth, s.ToDepth)
		rows[i] = Row{
			From:        s.FromDepth.Format(),
			To:          s.ToDepth.Format(),
			Description: s.Description,
			Category:    models.Classify(s.Description),
			Weight:      w,
		}
		total += w
	}
	if total == 0 {
		total = float64(len(rows))
	}
	for i := range rows {
		rows[i].SharePct = rows[i].Weight / total * 100
	}

	card := Card{
		Title:       e.Title,
		TabName:     e.TabName,
		Description: e.Description,
		PDFName:     e.PDFFilename,
		Rows:        rows,
		TotalWeight: total,
	}
	if e.PDFFilename != "" {
		card.PDFURL = "/pdfs/" + url.PathEscape(e.PDFFilename)
	}
	return card
}
