// Package filestore reads and writes note files on the local disk. It is
// the single place that touches file content: reads come back with derived
// metadata, writes go through a temp file so a crash mid-write never
// leaves a half-written note behind.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/marcus/notetab/internal/editor"
)

// MaxFileSize caps how large a file Open will read. Opening a multi-GB
// file by accident would stall the UI for the whole read.
const MaxFileSize = 10 * 1024 * 1024

// Store implements editor.FileStore against the local filesystem.
type Store struct{}

// New returns a filesystem-backed store.
func New() Store { return Store{} }

// Open reads the file at path and derives its metadata in one pass.
func (Store) Open(path string) (string, editor.FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", editor.FileInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.Size() > MaxFileSize {
		return "", editor.FileInfo{}, fmt.Errorf(
			"file is too large (%.1f MB), the maximum supported size is %.0f MB",
			float64(fi.Size())/(1024*1024), float64(MaxFileSize)/(1024*1024))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", editor.FileInfo{}, fmt.Errorf("read %s: %w", path, err)
	}
	content := string(data)

	info := editor.FileInfo{
		LineEnding: editor.DetectLineEnding(content),
		Encoding:   "UTF-8",
		FileSize:   fi.Size(),
		Extension:  editor.ExtensionOf(path),
	}
	return content, info, nil
}

// Save writes content to path atomically: the bytes land in a temp file in
// the same directory, which is then renamed over the target. Readers see
// either the old content or the new, never a partial write.
func (Store) Save(path, content string) error {
	return AtomicWrite(path, []byte(content))
}

// AtomicWrite replaces the file at path with data via temp-file-and-rename.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".notetab-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s -> %s: %w", tmpName, path, err)
	}
	return nil
}
