package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/notetab/internal/editor"
)

// noteV1 is one entry of the flat note index the V1 schema kept instead of
// a session snapshot. Note files lived next to the index, named by tag.
type noteV1 struct {
	Title         string `json:"title"`
	Tag           string `json:"tag"`
	CreatedAt     int64  `json:"createdAt"`
	UpdatedAt     int64  `json:"updatedAt"`
	FileExtension string `json:"fileExtension"`
}

// NeedsMigration reports whether the snapshot file exists but does not
// carry the V2 schema marker.
func (s *Store) NeedsMigration() (bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read session %s: %w", s.path, err)
	}

	var probe struct {
		SchemaVersion string `json:"schemaVersion"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		// A V1 file is a JSON array, which does not unmarshal into an
		// object probe at all.
		return true, nil
	}
	return probe.SchemaVersion != editor.SchemaVersionV2, nil
}

// MigrateV1ToV2 converts a V1 note index into a V2 snapshot. Each note's
// file is renamed from its tag to a human-readable name derived from the
// title, and recorded as a recent file; the V1 schema had no tabs, so the
// migrated session starts empty. notesDir is the directory the note files
// live in.
func (s *Store) MigrateV1ToV2(notesDir string) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read v1 index %s: %w", s.path, err)
	}
	var notes []noteV1
	if err := json.Unmarshal(data, &notes); err != nil {
		return fmt.Errorf("parse v1 index: %w", err)
	}

	snap := editor.EmptySnapshot()
	for _, note := range notes {
		src := filepath.Join(notesDir, note.Tag+"."+note.FileExtension)
		if _, err := os.Stat(src); err != nil {
			continue // note file already gone, nothing to carry over
		}
		filename := sanitizeFilename(note.Title) + "." + note.FileExtension
		dest := filepath.Join(notesDir, filename)
		if err := os.Rename(src, dest); err != nil {
			return fmt.Errorf("move note %s -> %s: %w", src, dest, err)
		}

		var modified int64
		if fi, err := os.Stat(dest); err == nil {
			modified = fi.ModTime().UnixMilli()
		}
		snap.RecentFiles[dest] = editor.RecentFile{
			ID:       note.Tag,
			Filename: filename,
			Path:     dest,
			Modified: modified,
		}
	}

	return s.Save(snap)
}

// sanitizeFilename replaces characters that are unsafe in filenames and
// trims surrounding whitespace and dots.
func sanitizeFilename(input string) string {
	out := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '_'
		}
		return r
	}, input)
	out = strings.Trim(out, " \t\n\r.")
	if out == "" {
		return editor.UntitledName
	}
	return out
}
