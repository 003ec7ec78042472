package main

import (
	"context"
	"fmt"
	"os"

	"litholog/client"
	"litholog/models"
	"litholog/view"
)

// runFetch is the terminal rendering of the catalog: one request, then one
// table per log.
func runFetch(ctx context.Context, server string) error {
	c := client.New(server)

	entries, err := c.FetchEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to load logs: %w", err)
	}

	page := view.BuildPage(entries)
	fmt.Println(page.Status)

	for _, card := range page.Cards {
		printCard(card)
	}
	return nil
}

func printCard(card view.Card) {
	fmt.Println()
	if card.TabName != "" {
		fmt.Printf("%s [%s]\n", card.Title, card.TabName)
	} else {
		fmt.Println(card.Title)
	}
	if card.Description != "" {
		fmt.Println(card.Description)
	}

	headers := []string{"From", "To", "Lithology", "Description"}
	var rows [][]string
	for _, row := range card.Rows {
		rows = append(rows, []string{row.From, row.To, row.Category.Label, row.Description})
	}
	footers := []string{"", "", "Total:", models.FormatNumber(card.TotalWeight)}
	printTable(headers, rows, footers)
}

func printTable(headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	// print header
	for i, header := range headers {
		fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], header)
	}
	fmt.Fprintln(os.Stdout)

	// print rows
	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], cell)
		}
		fmt.Fprintln(os.Stdout)
	}

	// print footer
	for i, footer := range footers {
		fmt.Fprintf(os.Stdout, "%-*s\t", colWidths[i], footer)
	}
	fmt.Fprintln(os.Stdout)
}
