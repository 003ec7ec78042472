package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litholog/models"
)

func entryWithSections(title string, sections ...models.Section) models.Entry {
	return models.Entry{
		Title:       title,
		TabName:     "B1",
		Description: "Borehole near the east field",
		PDFFilename: "profile 1.pdf",
		Sections:    sections,
	}
}

func TestBuildPageSuccess(t *testing.T) {
	entry := entryWithSections("Profile 1",
		models.Section{FromDepth: "1", ToDepth: "5", Description: "Ler, brunt"},
		models.Section{FromDepth: "", ToDepth: "", Description: "  "},
	)

	page := BuildPage([]models.Entry{entry})

	require.Equal(t, StateSuccess, page.State)
	assert.Equal(t, "Showing 1 log", page.Status)
	require.Len(t, page.Cards, 1)

	card := page.Cards[0]
	assert.Equal(t, "Profile 1", card.Title)
	assert.Equal(t, "/pdfs/profile%201.pdf", card.PDFURL)

	// The blank section is dropped; exactly one row survives.
	require.Len(t, card.Rows, 1)
	row := card.Rows[0]
	assert.Equal(t, "1 m", row.From)
	assert.Equal(t, "5 m", row.To)
	assert.Equal(t, "Clay", row.Category.Label)
	assert.Equal(t, 4.0, row.Weight)
	assert.InDelta(t, 100.0, row.SharePct, 0.001)
}

func TestBuildPagePluralStatus(t *testing.T) {
	entries := []models.Entry{
		entryWithSections("A", models.Section{Description: "Sand"}),
		entryWithSections("B", models.Section{Description: "Grus"}),
	}
	page := BuildPage(entries)
	assert.Equal(t, "Showing 2 logs", page.Status)
}

func TestBuildPageNoEntries(t *testing.T) {
	page := BuildPage(nil)
	assert.Equal(t, StateEmpty, page.State)
	assert.Equal(t, "No logs available.", page.Status)
	assert.Empty(t, page.Cards)
}

func TestBuildPageNoUsableSections(t *testing.T) {
	entry := entryWithSections("Empty", models.Section{Description: "   "})
	page := BuildPage([]models.Entry{entry})
	assert.Equal(t, StateEmpty, page.State)
	assert.Equal(t, "No logs with interval data.", page.Status)
}

func TestBuildPageShares(t *testing.T) {
	entry := entryWithSections("Shares",
		models.Section{FromDepth: "0", ToDepth: "4", Description: "Sand"},
		models.Section{FromDepth: "4", ToDepth: "6", Description: "Ler"},
	)
	page := BuildPage([]models.Entry{entry})

	require.Len(t, page.Cards, 1)
	card := page.Cards[0]
	require.Len(t, card.Rows, 2)
	assert.Equal(t, 6.0, card.TotalWeight)
	assert.InDelta(t, 66.667, card.Rows[0].SharePct, 0.01)
	assert.InDelta(t, 33.333, card.Rows[1].SharePct, 0.01)
}

// Sections without parseable depths still get a default weight, so every row
// has a visible share.
func TestBuildPageDefaultWeights(t *testing.T) {
	entry := entryWithSections("Defaults",
		models.Section{FromDepth: "ca. 2", ToDepth: "", Description: "Gytje"},
		models.Section{FromDepth: "3", ToDepth: "3", Description: "Silt"},
	)
	page := BuildPage([]models.Entry{entry})

	require.Len(t, page.Cards, 1)
	rows := page.Cards[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, 1.0, rows[0].Weight)
	assert.Equal(t, 0.5, rows[1].Weight)
	assert.Equal(t, 1.5, page.Cards[0].TotalWeight)
}

func TestBuildPageMissingDepthsRenderPlaceholder(t *testing.T) {
	entry := entryWithSections("Placeholder",
		models.Section{FromDepth: "", ToDepth: "2", Description: "Sand"},
	)
	page := BuildPage([]models.Entry{entry})

	require.Len(t, page.Cards, 1)
	assert.Equal(t, "—", page.Cards[0].Rows[0].From)
	assert.Equal(t, "2 m", page.Cards[0].Rows[0].To)
}

func TestBuildPageNoPDF(t *testing.T) {
	entry := models.Entry{
		Title:    "No file",
		Sections: []models.Section{{Description: "Sand"}},
	}
	page := BuildPage([]models.Entry{entry})
	require.Len(t, page.Cards, 1)
	assert.Empty(t, page.Cards[0].PDFURL)
}

func TestErrorPage(t *testing.T) {
	page := ErrorPage(errors.New("connection refused"))
	assert.Equal(t, StateError, page.State)
	assert.Contains(t, page.Status, "connection refused")
	assert.Contains(t, page.Status, "Failed to load logs")
}
