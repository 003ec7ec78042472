package storage

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"litholog/models"
)

// loadSectionTables parses the workbook into section lists keyed by sheet
// name. Each sheet is additionally keyed with a ".pdf" suffix so entries can
// look up sections by their PDF filename. A missing workbook yields an empty
// map; an unreadable one is an error.
func loadSectionTables(path string, log *zap.Logger) (map[string][]models.Section, error) {
	tables := map[string][]models.Section{}
	if path == "" {
		return tables, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Warn("workbook not found, serving entries without sections", zap.String("file", path))
		return tables, nil
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	for _, sheet := range wb.GetSheetList() {
		name := strings.TrimSpace(sheet)
		if name == "" {
			continue
		}
		rows, err := wb.GetRows(sheet)
		if err != nil {
			log.Warn("skipping unreadable sheet", zap.String("sheet", sheet), zap.Error(err))
			continue
		}
		sections := parseSheetSections(rows)
		if len(sections) == 0 {
			continue
		}
		tables[name] = sections
		if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			tables[name+".pdf"] = sections
		}
	}
	return tables, nil
}

// parseSheetSections reads columns A/B/C (from, to, description) below the
// header row. Rows without a description are skipped.
func parseSheetSections(rows [][]string) []models.Section {
	var sections []models.Section
	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}
		description := strings.TrimSpace(cellAt(row, 2))
		if description == "" {
			continue
		}
		sections = append(sections, models.Section{
			FromDepth:   models.Depth(formatCell(cellAt(row, 0))),
			ToDepth:     models.Depth(formatCell(cellAt(row, 1))),
			Description: description,
		})
	}
	return sections
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// formatCell normalizes a depth cell: numeric values get at most two decimals
// with trailing zeros trimmed, anything else is kept verbatim (trimmed).
func formatCell(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return models.FormatNumber(v)
}
