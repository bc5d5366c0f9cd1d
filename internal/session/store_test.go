package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/marcus/notetab/internal/editor"
)

func writeSessionFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(content), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	s := NewStore(t.TempDir())
	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snap.Session.Tabs) != 0 || len(snap.RecentFiles) != 0 {
		t.Errorf("snapshot = %+v, want empty", snap)
	}
	if snap.SchemaVersion != editor.SchemaVersionV2 {
		t.Errorf("schema = %q", snap.SchemaVersion)
	}
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeSessionFile(t, dir, "{not json")

	snap, err := NewStore(dir).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snap.Session.Tabs) != 0 {
		t.Error("corrupt file should yield an empty snapshot")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	notePath := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(notePath, []byte("A"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	draft := "draft"
	want := editor.Snapshot{
		RecentFiles: map[string]editor.RecentFile{
			notePath: {ID: "t1", Filename: "a.txt", Path: notePath, Modified: 123},
		},
		Session: editor.SessionState{
			Tabs: []editor.SessionTab{
				{ID: "t1", Path: notePath, Filename: "a.txt"},
				{ID: "t2", Filename: "untitled", Dirty: true, Content: &draft},
			},
			CurrentTabID: "t2",
		},
		SchemaVersion: editor.SchemaVersionV2,
	}

	s := NewStore(dir)
	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(got.Session.Tabs) != 2 {
		t.Fatalf("tabs = %d, want 2", len(got.Session.Tabs))
	}
	if got.Session.CurrentTabID != "t2" {
		t.Errorf("current = %q, want t2", got.Session.CurrentTabID)
	}
	if got.Session.Tabs[1].Content == nil || *got.Session.Tabs[1].Content != "draft" {
		t.Error("embedded content should round-trip")
	}
	if rf := got.RecentFiles[notePath]; rf.Modified != 123 {
		t.Errorf("recent = %+v", rf)
	}
}

func TestSaveCreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "notetab")
	s := NewStore(dir)
	if err := s.Save(editor.EmptySnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(s.Path()); err != nil {
		t.Errorf("session file missing: %v", err)
	}
}

func TestLoadDropsVanishedLocalFiles(t *testing.T) {
	dir := t.TempDir()
	keepPath := filepath.Join(dir, "keep.txt")
	if err := os.WriteFile(keepPath, []byte("K"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	gonePath := filepath.Join(dir, "gone.txt")

	snap := editor.EmptySnapshot()
	snap.Session.Tabs = []editor.SessionTab{
		{ID: "keep", Path: keepPath, Filename: "keep.txt"},
		{ID: "gone", Path: gonePath, Filename: "gone.txt"},
		{ID: "scratch", Filename: "untitled"},
	}
	snap.Session.CurrentTabID = "gone"
	snap.RecentFiles[keepPath] = editor.RecentFile{ID: "keep", Path: keepPath, Filename: "keep.txt"}
	snap.RecentFiles[gonePath] = editor.RecentFile{ID: "gone", Path: gonePath, Filename: "gone.txt"}

	s := NewStore(dir)
	if err := s.Save(snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(got.Session.Tabs) != 2 {
		t.Fatalf("tabs = %+v, want keep + scratch", got.Session.Tabs)
	}
	for _, tab := range got.Session.Tabs {
		if tab.ID == "gone" {
			t.Error("tab for a vanished file should be dropped")
		}
	}
	if _, ok := got.RecentFiles[gonePath]; ok {
		t.Error("recent entry for a vanished file should be dropped")
	}
	if _, ok := got.RecentFiles[keepPath]; !ok {
		t.Error("recent entry for an existing file should survive")
	}
	// The dropped current tab falls back to the first remaining one.
	if got.Session.CurrentTabID != "keep" {
		t.Errorf("current = %q, want keep", got.Session.CurrentTabID)
	}
}

func TestNeedsMigration(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		need, err := NewStore(t.TempDir()).NeedsMigration()
		if err != nil || need {
			t.Errorf("NeedsMigration = %v, %v; want false, nil", need, err)
		}
	})

	t.Run("v2 file", func(t *testing.T) {
		dir := t.TempDir()
		s := NewStore(dir)
		if err := s.Save(editor.EmptySnapshot()); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		need, err := s.NeedsMigration()
		if err != nil || need {
			t.Errorf("NeedsMigration = %v, %v; want false, nil", need, err)
		}
	})

	t.Run("v1 array", func(t *testing.T) {
		dir := t.TempDir()
		writeSessionFile(t, dir, `[{"title":"My Note","tag":"abc","createdAt":1,"updatedAt":2,"fileExtension":"txt"}]`)
		need, err := NewStore(dir).NeedsMigration()
		if err != nil || !need {
			t.Errorf("NeedsMigration = %v, %v; want true, nil", need, err)
		}
	})
}

func TestMigrateV1ToV2(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "abc.txt"), []byte("note body"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	writeSessionFile(t, dir,
		`[{"title":"My: Note","tag":"abc","createdAt":1,"updatedAt":2,"fileExtension":"txt"},`+
			`{"title":"Lost","tag":"zzz","createdAt":1,"updatedAt":2,"fileExtension":"txt"}]`)

	s := NewStore(dir)
	if err := s.MigrateV1ToV2(dir); err != nil {
		t.Fatalf("MigrateV1ToV2 failed: %v", err)
	}

	// The note file is renamed from its tag to the sanitized title.
	wantPath := filepath.Join(dir, "My_ Note.txt")
	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("migrated note missing: %v", err)
	}
	if string(data) != "note body" {
		t.Errorf("note content = %q", data)
	}

	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load after migration failed: %v", err)
	}
	if snap.SchemaVersion != editor.SchemaVersionV2 {
		t.Errorf("schema = %q", snap.SchemaVersion)
	}
	rf, ok := snap.RecentFiles[wantPath]
	if !ok {
		t.Fatalf("recents = %+v, want entry for %s", snap.RecentFiles, wantPath)
	}
	if rf.ID != "abc" || rf.Filename != "My_ Note.txt" {
		t.Errorf("recent = %+v", rf)
	}
	if len(snap.RecentFiles) != 1 {
		t.Error("note with a missing file must not be migrated")
	}
	if len(snap.Session.Tabs) != 0 {
		t.Error("migrated session starts with no tabs")
	}

	need, err := s.NeedsMigration()
	if err != nil || need {
		t.Errorf("NeedsMigration after migration = %v, %v; want false, nil", need, err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a/b\\c", "a_b_c"},
		{"  .dotty.  ", "dotty"},
		{"***", "___"},
		{"", "untitled"},
		{" . ", "untitled"},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSnapshotJSONShape(t *testing.T) {
	draft := "d"
	snap := editor.Snapshot{
		RecentFiles: map[string]editor.RecentFile{},
		Session: editor.SessionState{
			Tabs: []editor.SessionTab{
				{ID: "u", Filename: "untitled", Dirty: true, Content: &draft},
				{ID: "c", Path: "/b.md", Filename: "b.md"},
			},
			CurrentTabID: "u",
		},
		SchemaVersion: editor.SchemaVersionV2,
	}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if raw["schemaVersion"] != "V2" {
		t.Errorf("schemaVersion = %v", raw["schemaVersion"])
	}
	session := raw["session"].(map[string]any)
	if session["currentTabId"] != "u" {
		t.Errorf("currentTabId = %v", session["currentTabId"])
	}
	tabs := session["tabs"].([]any)
	first := tabs[0].(map[string]any)
	if first["isDirty"] != true || first["content"] != "d" {
		t.Errorf("untitled tab json = %v", first)
	}
	if _, ok := first["path"]; ok {
		t.Error("untitled tab must omit path")
	}
	second := tabs[1].(map[string]any)
	if _, ok := second["content"]; ok {
		t.Error("clean local tab must omit content")
	}
	if second["path"] != "/b.md" {
		t.Errorf("local tab json = %v", second)
	}
}
