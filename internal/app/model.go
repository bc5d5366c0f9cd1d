// Package app wires the editor session controller into a bubbletea UI:
// tab bar, textarea, status bar, markdown preview, and the modal dialogs
// the controller's operations can raise.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/notetab/internal/config"
	"github.com/marcus/notetab/internal/editor"
	"github.com/marcus/notetab/internal/keymap"
	"github.com/marcus/notetab/internal/preview"
	"github.com/marcus/notetab/internal/ui"
	"github.com/marcus/notetab/internal/watcher"
)

// toastDuration is how long status-bar toasts stay visible.
const toastDuration = 3 * time.Second

// mode is the current input focus of the UI.
type mode int

const (
	modeEditor mode = iota
	modePreview
	modeRecents
	modeConfirm
	modePrompt
)

// Model is the root bubbletea model.
type Model struct {
	ctrl   *editor.Controller
	bridge *DialogBridge
	keys   *keymap.Registry
	cfg    *config.Config
	log    *slog.Logger
	watch  *watcher.Watcher // nil when file watching is disabled

	textarea textarea.Model
	renderer *preview.Renderer

	mode    mode
	confirm *ui.ConfirmClose
	prompt  *ui.PathPrompt
	recents *ui.RecentsList
	pending *dialogRequest // dialog request the current modal answers

	previewBody   string
	previewScroll int

	// busy blocks new controller operations while one is in flight.
	// Dialog answers are exempt: they complete the running operation.
	busy bool
	// quitRequested defers a quit issued while busy until the running
	// operation's opDoneMsg lands.
	quitRequested bool

	toast      string
	toastError bool

	width  int
	height int
}

// Params bundles the model's collaborators.
type Params struct {
	Controller *editor.Controller
	Bridge     *DialogBridge
	Keymap     *keymap.Registry
	Config     *config.Config
	Logger     *slog.Logger
	Watcher    *watcher.Watcher
}

// NewModel creates the root model. The controller must already be
// initialized.
func NewModel(p Params) *Model {
	ta := textarea.New()
	ta.Placeholder = "Start typing, or ctrl+o to open a file"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	m := &Model{
		ctrl:     p.Controller,
		bridge:   p.Bridge,
		keys:     p.Keymap,
		cfg:      p.Config,
		log:      p.Logger,
		watch:    p.Watcher,
		textarea: ta,
		renderer: preview.New(p.Config.UI.PreviewStyle),
	}
	m.syncFromController()
	return m
}

// Init starts the background listeners.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textarea.Blink,
		m.listenDialogs(),
	}
	if m.watch != nil {
		cmds = append(cmds, m.listenWatcher())
	}
	if m.cfg.Editor.AutosaveInterval > 0 {
		cmds = append(cmds, autosaveTick(m.cfg.Editor.AutosaveInterval))
	}
	return tea.Batch(cmds...)
}

// syncFromController mirrors the controller's active document into the
// textarea and points the file watcher at the active tab's path.
func (m *Model) syncFromController() {
	if content, ok := m.ctrl.ActiveContent(); ok {
		if m.textarea.Value() != content {
			m.textarea.SetValue(content)
		}
		m.textarea.Focus()
	} else {
		m.textarea.SetValue("")
		m.textarea.Blur()
	}

	if m.watch == nil {
		return
	}
	path := ""
	if tab, ok := m.ctrl.Current(); ok && tab.Kind == editor.KindLocal {
		path = tab.Path
	}
	if err := m.watch.Watch(path); err != nil {
		m.log.Warn("file watch failed", "path", path, "err", err)
	}
}

// Messages

type dialogReqMsg struct{ req dialogRequest }

// opDoneMsg reports a finished controller operation.
type opDoneMsg struct {
	err   error
	toast string // success toast, "" for none
}

type watcherEventMsg struct{}

type autosaveTickMsg struct{}

type toastExpiredMsg struct{}

// Commands

// listenDialogs waits for the next dialog request from a blocked
// controller goroutine. Re-armed after every request.
func (m *Model) listenDialogs() tea.Cmd {
	return func() tea.Msg {
		req, ok := <-m.bridge.Requests()
		if !ok {
			return nil
		}
		return dialogReqMsg{req: req}
	}
}

func (m *Model) listenWatcher() tea.Cmd {
	return func() tea.Msg {
		_, ok := <-m.watch.Events()
		if !ok {
			return nil
		}
		return watcherEventMsg{}
	}
}

func autosaveTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return autosaveTickMsg{}
	})
}

func expireToast(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

// runOp executes a controller operation on a goroutine so that any dialog
// it raises can be serviced by the update loop.
func runOp(toast string, op func() error) tea.Cmd {
	return func() tea.Msg {
		if err := op(); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{toast: toast}
	}
}
