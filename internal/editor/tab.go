// Package editor implements the tab-management and session state machine
// at the heart of notetab: which documents are open, which one is active,
// what content is unsaved, and how all of that round-trips to disk as a
// session snapshot.
package editor

import (
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// TabKind distinguishes tabs backed by a file on disk from scratch tabs.
type TabKind int

const (
	// KindUntitled is a tab with no backing file yet.
	KindUntitled TabKind = iota
	// KindLocal is a tab backed by a filesystem path.
	KindLocal
)

// UntitledName is the display name for tabs that have no backing file.
const UntitledName = "untitled"

// Tab is the metadata for one open document. Content is deliberately not
// part of Tab: it lives either in the controller's active slot or in the
// content cache, never here. Keeping metadata and content apart is what
// lets a keystroke update a single string instead of cloning the tab list.
type Tab struct {
	ID       string
	Kind     TabKind
	Filename string
	Path     string // empty unless Kind == KindLocal
	Dirty    bool
}

// FileInfo describes the backing file of the active tab. It is derived at
// read/save time and never persisted.
type FileInfo struct {
	LineEnding string // "CRLF", "LF", "Mixed", or "N/A"
	Encoding   string // always "UTF-8" for now
	FileSize   int64  // bytes on disk (or of the last written content)
	Extension  string // without the leading dot, "" when none
}

// DefaultFileInfo is the metadata attached to a fresh blank tab.
func DefaultFileInfo() FileInfo {
	return FileInfo{
		LineEnding: "N/A",
		Encoding:   "UTF-8",
	}
}

// DetectLineEnding scans content for the dominant line-ending style.
// Returns early with "Mixed" as soon as both styles have been seen.
func DetectLineEnding(content string) string {
	var hasCRLF, hasLF bool
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		if i > 0 && content[i-1] == '\r' {
			hasCRLF = true
		} else {
			hasLF = true
		}
		if hasCRLF && hasLF {
			return "Mixed"
		}
	}
	switch {
	case hasCRLF:
		return "CRLF"
	case hasLF:
		return "LF"
	default:
		return "N/A"
	}
}

// ExtensionOf returns the file extension of name without the dot.
func ExtensionOf(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimPrefix(ext, ".")
}

// Fingerprint hashes content for change detection. Fingerprints are taken
// whenever the active tab's content is synced with disk (load or save) and
// compared when the file watcher reports an external write.
func Fingerprint(content string) uint64 {
	return xxhash.Sum64String(content)
}
