package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Editor saveEditorConfig `json:"editor"`
	UI     saveUIConfig     `json:"ui"`
	Keymap KeymapConfig     `json:"keymap"`
}

type saveEditorConfig struct {
	DefaultSaveName  string   `json:"defaultSaveName,omitempty"`
	OpenFilters      []string `json:"openFilters,omitempty"`
	SaveFilters      []string `json:"saveFilters,omitempty"`
	ConfirmOnClose   *bool    `json:"confirmOnClose,omitempty"`
	AutosaveInterval string   `json:"autosaveInterval,omitempty"`
	WatchFiles       *bool    `json:"watchFiles,omitempty"`
}

type saveUIConfig struct {
	ShowStatusBar *bool  `json:"showStatusBar,omitempty"`
	PreviewStyle  string `json:"previewStyle,omitempty"`
	TabLabelWidth *int   `json:"tabLabelWidth,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Editor: saveEditorConfig{
			DefaultSaveName:  cfg.Editor.DefaultSaveName,
			OpenFilters:      cfg.Editor.OpenFilters,
			SaveFilters:      cfg.Editor.SaveFilters,
			ConfirmOnClose:   &cfg.Editor.ConfirmOnClose,
			AutosaveInterval: cfg.Editor.AutosaveInterval.String(),
			WatchFiles:       &cfg.Editor.WatchFiles,
		},
		UI: saveUIConfig{
			ShowStatusBar: &cfg.UI.ShowStatusBar,
			PreviewStyle:  cfg.UI.PreviewStyle,
			TabLabelWidth: &cfg.UI.TabLabelWidth,
		},
		Keymap: cfg.Keymap,
	}
}

// Save writes the config to ~/.config/notetab/config.json
func Save(cfg *Config) error {
	return SaveTo(cfg, ConfigPath())
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	sc := toSaveConfig(cfg)
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
