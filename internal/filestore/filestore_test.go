package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenReturnsContentAndInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	if err := os.WriteFile(path, []byte("line one\nline two\n"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	content, info, err := New().Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if content != "line one\nline two\n" {
		t.Errorf("content = %q", content)
	}
	if info.LineEnding != "LF" {
		t.Errorf("LineEnding = %q, want LF", info.LineEnding)
	}
	if info.Encoding != "UTF-8" {
		t.Errorf("Encoding = %q", info.Encoding)
	}
	if info.FileSize != int64(len(content)) {
		t.Errorf("FileSize = %d, want %d", info.FileSize, len(content))
	}
	if info.Extension != "md" {
		t.Errorf("Extension = %q, want md", info.Extension)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, _, err := New().Open(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Open of a missing file should fail")
	}
}

func TestOpenRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	// Sparse file: over the limit without writing 10 MB of data.
	if err := f.Truncate(MaxFileSize + 1); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	f.Close()

	_, _, err = New().Open(path)
	if err == nil {
		t.Fatal("oversized file should be rejected")
	}
	if !strings.Contains(err.Error(), "too large") {
		t.Errorf("err = %v, want a size message", err)
	}
}

func TestSaveCreatesAndReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	s := New()

	if err := s.Save(path, "first"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save(path, "second"); err != nil {
		t.Fatalf("Save over existing failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want second", data)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := New().Save(filepath.Join(dir, "note.txt"), "content"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "note.txt" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("directory contents = %v, want only note.txt", names)
	}
}

func TestSaveToMissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "note.txt")
	if err := New().Save(path, "content"); err == nil {
		t.Fatal("Save into a missing directory should fail")
	}
}
