package models

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"Ler, gråbrunt, kalkholdigt", "Clay"},
		{"Brown CLAY with stones", "Clay"},
		{"Sand, fint, gulligt", "Sand"},
		{"SANDET materiale", "Sand"},
		{"Silt, gråt", "Silt"},
		{"Grus og sten", "Gravel"},
		{"coarse gravel", "Gravel"},
		{"Gytje, mørkbrun", "Organic material"},
		{"Tørv", "Organic material"},
		{"Mergel, lysegråt", "Marl"},
		{"Kalksten", "Unknown lithology"},
		{"", "Unknown lithology"},
		{"   ", "Unknown lithology"},
	}

	for _, tt := range tests {
		got := Classify(tt.desc)
		if got.Label != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.desc, got.Label, tt.want)
		}
	}
}

// Earlier categories win ties: sandy clay mentions both stems but classifies
// as Clay because Clay precedes Sand in the table.
func TestClassifyPrecedence(t *testing.T) {
	got := Classify("Sandet ler, brunt")
	if got.Label != "Clay" {
		t.Errorf("expected Clay to win over Sand, got %q", got.Label)
	}
}

func TestClassifyAlwaysHasColor(t *testing.T) {
	for _, desc := range []string{"ler", "sand", "granit", ""} {
		if c := Classify(desc); c.Color == "" {
			t.Errorf("Classify(%q) returned empty color", desc)
		}
	}
}

func TestCategoriesOrderFixed(t *testing.T) {
	want := []string{"Clay", "Sand", "Silt", "Gravel", "Organic material", "Marl"}
	if len(Categories) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(Categories))
	}
	for i, label := range want {
		if Categories[i].Label != label {
			t.Errorf("category %d = %q, want %q", i, Categories[i].Label, label)
		}
	}
}
