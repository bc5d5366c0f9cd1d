package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/notetab"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	Editor rawEditorConfig `json:"editor"`
	UI     rawUIConfig     `json:"ui"`
	Keymap KeymapConfig    `json:"keymap"`
}

type rawEditorConfig struct {
	DefaultSaveName  string   `json:"defaultSaveName"`
	OpenFilters      []string `json:"openFilters"`
	SaveFilters      []string `json:"saveFilters"`
	ConfirmOnClose   *bool    `json:"confirmOnClose"`
	AutosaveInterval string   `json:"autosaveInterval"`
	WatchFiles       *bool    `json:"watchFiles"`
}

type rawUIConfig struct {
	ShowStatusBar *bool  `json:"showStatusBar"`
	PreviewStyle  string `json:"previewStyle"`
	TabLabelWidth *int   `json:"tabLabelWidth"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/notetab/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil // no home dir, run on defaults
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	// Merge raw config into defaults
	mergeConfig(cfg, &raw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Editor
	if raw.Editor.DefaultSaveName != "" {
		cfg.Editor.DefaultSaveName = raw.Editor.DefaultSaveName
	}
	if raw.Editor.OpenFilters != nil {
		cfg.Editor.OpenFilters = raw.Editor.OpenFilters
	}
	if raw.Editor.SaveFilters != nil {
		cfg.Editor.SaveFilters = raw.Editor.SaveFilters
	}
	if raw.Editor.ConfirmOnClose != nil {
		cfg.Editor.ConfirmOnClose = *raw.Editor.ConfirmOnClose
	}
	if raw.Editor.AutosaveInterval != "" {
		if d, err := time.ParseDuration(raw.Editor.AutosaveInterval); err == nil {
			cfg.Editor.AutosaveInterval = d
		}
	}
	if raw.Editor.WatchFiles != nil {
		cfg.Editor.WatchFiles = *raw.Editor.WatchFiles
	}

	// UI
	if raw.UI.ShowStatusBar != nil {
		cfg.UI.ShowStatusBar = *raw.UI.ShowStatusBar
	}
	if raw.UI.PreviewStyle != "" {
		cfg.UI.PreviewStyle = raw.UI.PreviewStyle
	}
	if raw.UI.TabLabelWidth != nil {
		cfg.UI.TabLabelWidth = *raw.UI.TabLabelWidth
	}

	// Keymap
	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
