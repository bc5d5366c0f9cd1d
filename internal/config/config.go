package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Editor EditorConfig `json:"editor"`
	UI     UIConfig     `json:"ui"`
	Keymap KeymapConfig `json:"keymap"`
}

// EditorConfig configures editing and file handling behavior.
type EditorConfig struct {
	// DefaultSaveName seeds the save dialog for untitled tabs.
	DefaultSaveName string `json:"defaultSaveName"`
	// OpenFilters / SaveFilters restrict the file dialogs to these
	// extensions (without the dot). Empty means no filtering.
	OpenFilters []string `json:"openFilters"`
	SaveFilters []string `json:"saveFilters"`
	// ConfirmOnClose asks before closing a tab with unsaved changes.
	ConfirmOnClose bool `json:"confirmOnClose"`
	// AutosaveInterval periodically persists the session snapshot.
	// Zero disables the timer; the session is still saved on quit.
	AutosaveInterval time.Duration `json:"autosaveInterval"`
	// WatchFiles reloads the active tab when its file changes on disk.
	WatchFiles bool `json:"watchFiles"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowStatusBar bool `json:"showStatusBar"`
	// PreviewStyle is the markdown rendering style: "auto", "dark",
	// "light", or "notty".
	PreviewStyle string `json:"previewStyle"`
	// TabLabelWidth caps how many cells a tab label may occupy.
	TabLabelWidth int `json:"tabLabelWidth"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			DefaultSaveName:  "untitled.txt",
			OpenFilters:      []string{"txt", "md"},
			SaveFilters:      []string{"txt", "md"},
			ConfirmOnClose:   true,
			AutosaveInterval: 30 * time.Second,
			WatchFiles:       true,
		},
		UI: UIConfig{
			ShowStatusBar: true,
			PreviewStyle:  "auto",
			TabLabelWidth: 20,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Editor.AutosaveInterval < 0 {
		c.Editor.AutosaveInterval = 30 * time.Second
	}
	if c.Editor.DefaultSaveName == "" {
		c.Editor.DefaultSaveName = "untitled.txt"
	}
	if c.UI.TabLabelWidth <= 0 {
		c.UI.TabLabelWidth = 20
	}
	switch c.UI.PreviewStyle {
	case "auto", "dark", "light", "notty":
	default:
		c.UI.PreviewStyle = "auto"
	}
	return nil
}
