package models

import "strings"

// Category is a named lithology classification with a display color.
type Category struct {
	Label    string
	Color    string
	keywords []string
}

// Categories is the ordered classification table. Earlier categories win ties,
// so Clay beats Sand when a description mentions both. Keywords are lowercase
// stems matched as substrings; Danish field vocabulary with English fallbacks.
var Categories = []Category{
	{Label: "Clay", Color: "#b08968", keywords: []string{"ler", "clay"}},
	{Label: "Sand", Color: "#e9c46a", keywords: []string{"sand"}},
	{Label: "Silt", Color: "#a3b18a", keywords: []string{"silt"}},
	{Label: "Gravel", Color: "#e76f51", keywords: []string{"grus", "gravel"}},
	{Label: "Organic material", Color: "#5e503f", keywords: []string{"gytje", "tørv", "muld", "organisk", "organic", "peat"}},
	{Label: "Marl", Color: "#81b29a", keywords: []string{"mergel", "marl"}},
}

// Unknown is returned when no keyword matches.
var Unknown = Category{Label: "Unknown lithology", Color: "#9ca3af"}

// Classify maps a free-text description to a lithology category. Matching is
// case-insensitive substring, first match wins. Every input yields a category;
// a blank description classifies as Unknown.
func Classify(description string) Category {
	desc := strings.ToLower(description)
	if strings.TrimSpace(desc) == "" {
		return Unknown
	}
	for _, cat := range Categories {
		for _, kw := range cat.keywords {
			if strings.Contains(desc, kw) {
				return cat
			}
		}
	}
	return Unknown
}
