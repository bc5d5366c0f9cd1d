package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Editor.DefaultSaveName = "scratch.md"
	cfg.Editor.ConfirmOnClose = false
	cfg.Editor.AutosaveInterval = 90 * time.Second
	cfg.UI.ShowStatusBar = false
	cfg.Keymap.Overrides["quit"] = "ctrl+d"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got.Editor.DefaultSaveName != "scratch.md" {
		t.Errorf("DefaultSaveName = %q", got.Editor.DefaultSaveName)
	}
	if got.Editor.ConfirmOnClose {
		t.Error("ConfirmOnClose = true, want false")
	}
	if got.Editor.AutosaveInterval != 90*time.Second {
		t.Errorf("AutosaveInterval = %v", got.Editor.AutosaveInterval)
	}
	if got.UI.ShowStatusBar {
		t.Error("ShowStatusBar = true, want false")
	}
	if got.Keymap.Overrides["quit"] != "ctrl+d" {
		t.Errorf("Overrides = %v", got.Keymap.Overrides)
	}
}
