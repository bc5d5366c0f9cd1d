package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/notetab/internal/app"
	"github.com/marcus/notetab/internal/config"
	"github.com/marcus/notetab/internal/editor"
	"github.com/marcus/notetab/internal/filestore"
	"github.com/marcus/notetab/internal/keymap"
	"github.com/marcus/notetab/internal/session"
	"github.com/marcus/notetab/internal/watcher"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath  = flag.String("config", "", "path to config file")
	debugFlag   = flag.Bool("debug", false, "enable debug logging")
	versionFlag = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("notetab version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// First run: materialize the defaults so users have a file to edit.
	if *configPath == "" {
		if p := config.ConfigPath(); p != "" {
			if _, err := os.Stat(p); os.IsNotExist(err) {
				if err := config.Save(cfg); err != nil {
					logger.Warn("could not write default config", "path", p, "err", err)
				}
			}
		}
	}

	// Session store, with one-time schema migration
	sessionDir, err := session.DefaultDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to locate config dir: %v\n", err)
		os.Exit(1)
	}
	store := session.NewStore(sessionDir)
	if need, err := store.NeedsMigration(); err == nil && need {
		if err := store.MigrateV1ToV2(sessionDir); err != nil {
			logger.Warn("session migration failed, starting fresh", "err", err)
		}
	}

	// File watcher (optional)
	var fsWatcher *watcher.Watcher
	if cfg.Editor.WatchFiles {
		fsWatcher, err = watcher.New()
		if err != nil {
			logger.Warn("file watcher unavailable", "err", err)
		}
	}

	// Editor controller behind the dialog bridge
	bridge := app.NewDialogBridge()
	ctrl := editor.New(editor.Params{
		FileStore:       filestore.New(),
		Dialog:          bridge,
		Store:           store,
		Logger:          logger,
		DefaultSaveName: cfg.Editor.DefaultSaveName,
		OpenFilters:     cfg.Editor.OpenFilters,
		SaveFilters:     cfg.Editor.SaveFilters,
	})
	ctrl.Initialize()

	// Files named on the command line open as tabs, last one active.
	for _, arg := range flag.Args() {
		path, err := filepath.Abs(arg)
		if err != nil {
			logger.Warn("skipping argument", "arg", arg, "err", err)
			continue
		}
		if err := ctrl.OpenByPath(path); err != nil {
			logger.Warn("could not open file", "path", path, "err", err)
		}
	}

	// Keymap with user overrides
	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)
	km.ApplyOverrides(cfg.Keymap.Overrides)

	model := app.NewModel(app.Params{
		Controller: ctrl,
		Bridge:     bridge,
		Keymap:     km,
		Config:     cfg,
		Logger:     logger,
		Watcher:    fsWatcher,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			rev := setting.Value
			if len(rev) > 12 {
				rev = rev[:12]
			}
			return "devel+" + rev
		}
	}
	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: notetab [options] [file ...]\n\n")
		fmt.Fprintf(os.Stderr, "A tabbed TUI note editor with session restore.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
