package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Manager serves the current catalog and reloads it when its file changes.
type Manager struct {
	path     string
	current  atomic.Pointer[Site]
	onChange func(*Site)
}

// NewManager loads the catalog at path, or the embedded default when path is empty.
// PRE: path is empty or names a readable JSON catalog
// POST: Site() returns a valid catalog
func NewManager(path string) (*Manager, error) {
	m := &Manager{path: path}
	if path == "" {
		m.current.Store(Default())
		return m, nil
	}
	s, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	m.current.Store(s)
	return m, nil
}

// Site returns the current catalog. Callers must not modify it.
func (m *Manager) Site() *Site {
	return m.current.Load()
}

// SetOnChange registers a callback run after each successful reload.
// Call it before Watch.
func (m *Manager) SetOnChange(fn func(*Site)) {
	m.onChange = fn
}

// Reload re-reads the file. A bad file leaves the previous catalog in place.
func (m *Manager) Reload() error {
	if m.path == "" {
		return nil
	}
	s, err := LoadFile(m.path)
	if err != nil {
		return err
	}
	m.current.Store(s)
	if m.onChange != nil {
		m.onChange(s)
	}
	return nil
}

// Watch reloads the catalog on every write to its file until ctx is done.
// The parent directory is watched so editors that replace the file by rename are seen.
// PRE: the manager was created with a file path
// POST: returns once the watcher is running; it stops when ctx is cancelled
func (m *Manager) Watch(ctx context.Context) error {
	if m.path == "" {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(m.path)); err != nil {
		w.Close()
		return fmt.Errorf("watch content dir: %w", err)
	}

	target := filepath.Clean(m.path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				if err := m.Reload(); err != nil {
					slog.Warn("content_reload_failed", "path", m.path, "error", err)
					continue
				}
				slog.Info("content_reloaded", "path", m.path)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("content_watch_error", "error", err)
			}
		}
	}()
	return nil
}
