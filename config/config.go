// Package config holds the server configuration: defaults, an optional YAML
// file, and LITHOLOG_* environment overrides, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all litholog settings.
type Config struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string `yaml:"addr"`

	// DataFile is the JSON catalog of lithology entries.
	DataFile string `yaml:"data_file"`

	// WorkbookFile is the xlsx workbook with per-sheet depth sections.
	// Optional; entries are served without sections when it is absent.
	WorkbookFile string `yaml:"workbook_file"`

	// PDFDir holds the profile PDFs referenced by the entries.
	PDFDir string `yaml:"pdf_dir"`

	// WatchFiles reloads the catalog when the data file or workbook changes.
	WatchFiles bool `yaml:"watch_files"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:         ":8000",
		DataFile:     "data/lithology_entries.json",
		WorkbookFile: "data/Geological Profiles.xlsx",
		PDFDir:       "data/pdfs",
		WatchFiles:   false,
	}
}

// Load reads the config file at path (when non-empty) over the defaults, then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnv() {
	c.Addr = envOr("LITHOLOG_ADDR", c.Addr)
	c.DataFile = envOr("LITHOLOG_DATA_FILE", c.DataFile)
	c.WorkbookFile = envOr("LITHOLOG_WORKBOOK_FILE", c.WorkbookFile)
	c.PDFDir = envOr("LITHOLOG_PDF_DIR", c.PDFDir)
	if v := os.Getenv("LITHOLOG_WATCH_FILES"); v != "" {
		c.WatchFiles = v == "1" || v == "true"
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
