// Package session persists the editor session snapshot as a JSON file
// under the user's config directory, and migrates snapshots written by the
// V1 schema.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/marcus/notetab/internal/editor"
	"github.com/marcus/notetab/internal/filestore"
)

const fileName = "session.json"

// Store reads and writes the session snapshot at a fixed path.
type Store struct {
	path string
}

// DefaultDir returns the per-user config directory for notetab.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "notetab"), nil
}

// NewStore creates a store over dir/session.json.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, fileName)}
}

// Path returns the snapshot file location.
func (s *Store) Path() string { return s.path }

// Load reads the snapshot. A missing file or an unparseable one yields the
// empty snapshot rather than an error: the session is a convenience, not
// data the app should refuse to start without. Local tabs and recents
// whose files have vanished since the last run are dropped.
func (s *Store) Load() (editor.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return editor.EmptySnapshot(), nil
	}
	if err != nil {
		return editor.Snapshot{}, fmt.Errorf("read session %s: %w", s.path, err)
	}

	var snap editor.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil || snap.SchemaVersion != editor.SchemaVersionV2 {
		return editor.EmptySnapshot(), nil
	}
	if snap.RecentFiles == nil {
		snap.RecentFiles = make(map[string]editor.RecentFile)
	}
	validateLocalFiles(&snap)
	return snap, nil
}

// Save writes the snapshot atomically.
func (s *Store) Save(snap editor.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return filestore.AtomicWrite(s.path, data)
}

// validateLocalFiles drops references to files that no longer exist. All
// stat calls run concurrently so startup is not serialized on a slow or
// network-mounted disk.
func validateLocalFiles(snap *editor.Snapshot) {
	seen := make(map[string]struct{})
	var paths []string
	for _, tab := range snap.Session.Tabs {
		if tab.Path != "" {
			if _, ok := seen[tab.Path]; !ok {
				seen[tab.Path] = struct{}{}
				paths = append(paths, tab.Path)
			}
		}
	}
	for path := range snap.RecentFiles {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return
	}

	var (
		mu    sync.Mutex
		valid = make(map[string]bool, len(paths))
		wg    sync.WaitGroup
	)
	for _, path := range paths {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			_, err := os.Stat(p)
			mu.Lock()
			valid[p] = err == nil
			mu.Unlock()
		}(path)
	}
	wg.Wait()

	tabs := snap.Session.Tabs[:0]
	for _, tab := range snap.Session.Tabs {
		if tab.Path == "" || valid[tab.Path] {
			tabs = append(tabs, tab)
		}
	}
	snap.Session.Tabs = tabs

	for path := range snap.RecentFiles {
		if !valid[path] {
			delete(snap.RecentFiles, path)
		}
	}

	current := snap.Session.CurrentTabID
	if current != "" {
		found := false
		for _, tab := range snap.Session.Tabs {
			if tab.ID == current {
				found = true
				break
			}
		}
		if !found {
			snap.Session.CurrentTabID = ""
		}
	}
	if snap.Session.CurrentTabID == "" && len(snap.Session.Tabs) > 0 {
		snap.Session.CurrentTabID = snap.Session.Tabs[0].ID
	}
}
