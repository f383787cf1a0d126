package overrides

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/pecoelho01/portfolio/internal/domain/model"
	"github.com/pecoelho01/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.OverrideSource = (*Store)(nil)

// Store holds the current override table and swaps it atomically on reload.
// Readers never observe a partially loaded table.
type Store struct {
	path   string
	table  atomic.Pointer[model.OverrideTable]
	logger *slog.Logger
}

// NewStore loads the override file at path. An empty path yields a store with
// an empty table that never reloads.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	s := &Store{path: path, logger: logger}

	empty := model.OverrideTable{}
	s.table.Store(&empty)

	if path == "" {
		return s, nil
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Overrides returns the current table.
func (s *Store) Overrides() model.OverrideTable {
	return *s.table.Load()
}

// Reload re-reads the file. On error the previous table stays in place.
func (s *Store) Reload() error {
	table, err := Load(s.path)
	if err != nil {
		return err
	}

	s.table.Store(&table)
	s.logger.Info("overrides loaded", "path", s.path, "count", len(table))
	return nil
}

// Watch reloads the table whenever the file is written or recreated. It blocks
// until ctx is canceled. Watching the parent directory keeps working across
// editors that save by rename.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create overrides watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(s.path), err)
	}

	filename := filepath.Base(s.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := s.Reload(); err != nil {
					s.logger.Warn("failed to reload overrides", "path", s.path, "error", err)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("overrides watcher error", "error", err)
		}
	}
}
