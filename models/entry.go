package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Depth is a depth value as it appears on the wire: usually a string, but
// tolerated as a JSON number or null. It is kept verbatim; parsing and
// formatting happen on demand.
type Depth string

// UnmarshalJSON accepts string, number, or null.
func (d *Depth) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = Depth(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = Depth(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// MarshalJSON always emits a string, matching what the workbook loader produces.
func (d Depth) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

// IsBlank reports whether the depth carries no value at all. A depth of "0" is
// not blank: a section starting at the surface is a real observation.
func (d Depth) IsBlank() bool {
	return strings.TrimSpace(string(d)) == ""
}

// Section is one depth-bounded lithology observation within an entry.
type Section struct {
	FromDepth   Depth  `json:"from_depth"`
	ToDepth     Depth  `json:"to_depth"`
	Description string `json:"description"`
}

// Usable reports whether the section carries any displayable data: a non-blank
// description, or at least one depth bound.
func (s Section) Usable() bool {
	return strings.TrimSpace(s.Description) != "" || !s.FromDepth.IsBlank() || !s.ToDepth.IsBlank()
}

// Entry is one well log: metadata plus its ordered depth sections.
type Entry struct {
	TabName     string    `json:"tab_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PDFFilename string    `json:"pdf_filename"`
	Sections    []Section `json:"sections"`
}

// UsableSections returns the sections worth displaying, in their original
// order. No dedup, no merge of adjacent identical sections.
func (e Entry) UsableSections() []Section {
	var out []Section
	for _, s := range e.Sections {
		if s.Usable() {
			out = append(out, s)
		}
	}
	return out
}
