package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"litholog/models"
)

// EntryStore assembles the lithology catalog from two files: a JSON list of
// entries and an xlsx workbook holding the per-sheet depth sections. The
// result is cached until Invalidate is called (or a watched file changes).
type EntryStore struct {
	dataFile     string
	workbookFile string
	log          *zap.Logger

	mu      sync.RWMutex
	entries []models.Entry
	loaded  bool
}

func NewEntryStore(dataFile, workbookFile string, log *zap.Logger) *EntryStore {
	return &EntryStore{dataFile: dataFile, workbookFile: workbookFile, log: log}
}

// Load returns the full entry collection, reading the data file and workbook
// on first use.
func (s *EntryStore) Load() ([]models.Entry, error) {
	s.mu.RLock()
	if s.loaded {
		entries := s.entries
		s.mu.RUnlock()
		return entries, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.entries, nil
	}

	entries, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	s.entries = entries
	s.loaded = true
	return entries, nil
}

// Invalidate drops the cached catalog; the next Load re-reads both files.
func (s *EntryStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.loaded = false
}

// HasPDF reports whether the given filename is listed by any entry. The PDF
// handler uses this so only files referenced by the data set are served.
func (s *EntryStore) HasPDF(name string) bool {
	entries, err := s.Load()
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.PDFFilename == name {
			return true
		}
	}
	return false
}

func (s *EntryStore) loadAll() ([]models.Entry, error) {
	data, err := os.ReadFile(s.dataFile)
	if err != nil {
		return nil, fmt.Errorf("read lithology data: %w", err)
	}

	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse lithology data: %w", err)
	}

	tables, err := loadSectionTables(s.workbookFile, s.log)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		sections, ok := tables[entries[i].PDFFilename]
		if !ok {
			// Fall back to the tab name if the PDF name is not present.
			sections, ok = tables[entries[i].TabName]
		}
		if ok {
			entries[i].Sections = append([]models.Section{}, sections...)
		} else if entries[i].Sections == nil {
			// No sheet for this entry: keep whatever the data file carried,
			// but never serve null sections.
			entries[i].Sections = []models.Section{}
		}
	}

	s.log.Info("lithology catalog loaded",
		zap.Int("entries", len(entries)),
		zap.Int("sheets", len(tables)))
	return entries, nil
}

// Watch invalidates the cache whenever the data file or workbook changes on
// disk. The watcher runs until ctx is cancelled.
func (s *EntryStore) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	targets := map[string]struct{}{}
	dirs := map[string]struct{}{}
	for _, f := range []string{s.dataFile, s.workbookFile} {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for d := range dirs {
		if err := watcher.Add(d); err != nil {
			watcher.Close()
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				abs, err := filepath.Abs(ev.Name)
				if err != nil {
					continue
				}
				if _, watched := targets[abs]; !watched {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				s.log.Info("data file changed, cache invalidated", zap.String("file", ev.Name))
				s.Invalidate()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("file watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}
