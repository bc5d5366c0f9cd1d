package app

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/notetab/internal/editor"
	"github.com/marcus/notetab/internal/msg"
	"github.com/marcus/notetab/internal/ui"
)

// Update is the bubbletea update loop.
//
// Concurrency contract: the controller is not goroutine-safe. While busy
// is set a controller operation owns it from a command goroutine, and the
// update loop must not touch the controller until opDoneMsg lands. Modal
// answers are safe: the owning goroutine is parked inside the bridge.
func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.textarea.SetWidth(v.Width)
		m.textarea.SetHeight(max(1, v.Height-2)) // tab bar + status bar
		return m, nil

	case dialogReqMsg:
		m.openDialog(v.req)
		return m, m.listenDialogs()

	case opDoneMsg:
		m.busy = false
		m.syncFromController()
		if m.quitRequested {
			return m.quit()
		}
		if v.err != nil {
			m.log.Error("operation failed", "err", v.err)
			return m, msg.ShowError(v.err.Error(), toastDuration)
		}
		if v.toast != "" {
			return m, msg.ShowToast(v.toast, toastDuration)
		}
		return m, nil

	case watcherEventMsg:
		cmds := []tea.Cmd{m.listenWatcher()}
		if !m.busy {
			changed, err := m.ctrl.RefreshActiveFromDisk()
			switch {
			case err != nil:
				m.log.Warn("reload after external change failed", "err", err)
			case changed:
				m.syncFromController()
				cmds = append(cmds, msg.ShowToast("Reloaded from disk", toastDuration))
			}
		}
		return m, tea.Batch(cmds...)

	case autosaveTickMsg:
		if !m.busy {
			m.ctrl.PersistSession()
		}
		return m, autosaveTick(m.cfg.Editor.AutosaveInterval)

	case msg.ToastMsg:
		m.toast = v.Message
		m.toastError = v.IsError
		return m, expireToast(v.Duration)

	case toastExpiredMsg:
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(v)
	}

	return m, nil
}

// openDialog puts the UI into the modal state the request calls for.
func (m *Model) openDialog(req dialogRequest) {
	r := req
	m.pending = &r
	switch req.kind {
	case dialogConfirmClose:
		m.confirm = ui.NewConfirmClose(req.filename)
		m.mode = modeConfirm
	case dialogSavePath:
		m.prompt = ui.NewPathPrompt("Save as", req.defaultName, req.filters)
		m.mode = modePrompt
	case dialogOpenPath:
		m.prompt = ui.NewPathPrompt("Open file", "", req.filters)
		m.mode = modePrompt
	}
}

// closeDialog answers the pending request and returns to the editor. The
// blocked operation resumes; busy stays set until its opDoneMsg.
func (m *Model) closeDialog(resp dialogResponse) {
	if m.pending != nil {
		m.pending.answer(resp)
		m.pending = nil
	}
	m.confirm = nil
	m.prompt = nil
	m.mode = modeEditor
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeConfirm:
		return m.handleConfirmKey(key)
	case modePrompt:
		return m.handlePromptKey(key)
	case modeRecents:
		return m.handleRecentsKey(key)
	case modePreview:
		return m.handlePreviewKey(key)
	default:
		return m.handleEditorKey(key)
	}
}

func (m *Model) handleConfirmKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch cmd, _ := m.keys.Resolve("confirm", key.String()); cmd {
	case "cancel":
		m.closeDialog(dialogResponse{choice: editor.ChoiceCancel})
	case "confirm":
		m.closeDialog(dialogResponse{choice: m.confirm.Choice()})
	case "cursor-left":
		m.confirm.MoveFocus(-1)
	case "cursor-right":
		m.confirm.MoveFocus(1)
	}
	return m, nil
}

func (m *Model) handlePromptKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch cmd, _ := m.keys.Resolve("prompt", key.String()); cmd {
	case "cancel":
		m.closeDialog(dialogResponse{ok: false})
		return m, nil
	case "confirm":
		path := m.prompt.Value()
		m.closeDialog(dialogResponse{path: path, ok: path != ""})
		return m, nil
	}
	return m, m.prompt.Update(key)
}

func (m *Model) handleRecentsKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch cmd, _ := m.keys.Resolve("recents", key.String()); cmd {
	case "cancel":
		m.recents = nil
		m.mode = modeEditor
	case "cursor-up":
		m.recents.MoveCursor(-1)
	case "cursor-down":
		m.recents.MoveCursor(1)
	case "select":
		if file, ok := m.recents.Selected(); ok {
			m.recents = nil
			m.mode = modeEditor
			m.busy = true
			return m, runOp("", func() error { return m.ctrl.OpenByPath(file.Path) })
		}
	case "quit":
		return m.quit()
	}
	return m, nil
}

func (m *Model) handlePreviewKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch cmd, _ := m.keys.Resolve("preview", key.String()); cmd {
	case "toggle-preview":
		m.previewBody = ""
		m.mode = modeEditor
	case "scroll-up":
		m.scrollPreview(-1)
	case "scroll-down":
		m.scrollPreview(1)
	case "page-up":
		m.scrollPreview(-(m.height - 2))
	case "page-down":
		m.scrollPreview(m.height - 2)
	case "quit":
		return m.quit()
	}
	return m, nil
}

func (m *Model) handleEditorKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	command, bound := m.keys.Resolve("editor", key.String())
	if !bound {
		if m.busy {
			return m, nil // an operation owns the controller
		}
		var taCmd tea.Cmd
		m.textarea, taCmd = m.textarea.Update(key)
		m.ctrl.SetContent(m.textarea.Value())
		return m, taCmd
	}

	if command == "quit" {
		return m.quit()
	}
	if m.busy {
		return m, nil
	}

	switch command {
	case "new-tab":
		m.ctrl.AddBlank()
		m.syncFromController()
	case "open-file":
		m.busy = true
		return m, runOp("", m.ctrl.OpenLocalFile)
	case "save":
		m.busy = true
		return m, runOp("Saved", m.ctrl.SaveCurrentFileOnDisk)
	case "close-tab":
		m.busy = true
		skip := !m.cfg.Editor.ConfirmOnClose
		return m, runOp("", func() error {
			_, err := m.ctrl.CloseCurrentTab(skip)
			return err
		})
	case "next-tab":
		m.switchTab(1)
	case "prev-tab":
		m.switchTab(-1)
	case "move-tab-right":
		m.moveTab(1)
	case "move-tab-left":
		m.moveTab(-1)
	case "recent-files":
		list := ui.NewRecentsList(m.ctrl.RecentFiles())
		if list.Empty() {
			return m, msg.ShowToast("No recent files yet", toastDuration)
		}
		m.recents = list
		m.mode = modeRecents
	case "toggle-preview":
		m.showPreview()
	case "copy-content":
		if content, ok := m.ctrl.ActiveContent(); ok {
			if err := clipboard.WriteAll(content); err != nil {
				return m, msg.ShowError("Clipboard unavailable", toastDuration)
			}
			return m, msg.ShowToast("Copied to clipboard", toastDuration)
		}
	}
	return m, nil
}

// quit persists the session and exits. While an operation owns the
// controller the quit is deferred; opDoneMsg picks it back up.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.busy {
		m.quitRequested = true
		return m, nil
	}
	m.ctrl.PersistSession()
	if m.watch != nil {
		m.watch.Close()
	}
	return m, tea.Quit
}

// switchTab activates the neighbor delta tabs away, wrapping around.
func (m *Model) switchTab(delta int) {
	tabs := m.ctrl.Tabs()
	if len(tabs) < 2 {
		return
	}
	current, ok := m.ctrl.Current()
	if !ok {
		return
	}
	idx := 0
	for i, tab := range tabs {
		if tab.ID == current.ID {
			idx = i
			break
		}
	}
	next := tabs[(idx+delta+len(tabs))%len(tabs)]
	if err := m.ctrl.OpenTab(next.ID); err != nil {
		m.log.Warn("tab switch failed", "err", err)
		return
	}
	m.syncFromController()
}

// moveTab swaps the current tab with its neighbor in display order.
func (m *Model) moveTab(delta int) {
	tabs := m.ctrl.Tabs()
	current, ok := m.ctrl.Current()
	if !ok {
		return
	}
	idx := -1
	for i, tab := range tabs {
		if tab.ID == current.ID {
			idx = i
			break
		}
	}
	target := idx + delta
	if idx < 0 || target < 0 || target >= len(tabs) {
		return
	}
	ids := make([]string, len(tabs))
	for i, tab := range tabs {
		ids[i] = tab.ID
	}
	ids[idx], ids[target] = ids[target], ids[idx]
	if err := m.ctrl.ReorderTabs(ids); err != nil {
		m.log.Warn("tab reorder failed", "err", err)
	}
}

func (m *Model) showPreview() {
	content, ok := m.ctrl.ActiveContent()
	if !ok {
		return
	}
	ext := ""
	if info, ok := m.ctrl.ActiveFileInfo(); ok {
		ext = info.Extension
	}
	m.previewBody = m.renderer.Render(content, ext, max(20, m.width-2))
	m.previewScroll = 0
	m.mode = modePreview
}

func (m *Model) scrollPreview(delta int) {
	m.previewScroll += delta
	if m.previewScroll < 0 {
		m.previewScroll = 0
	}
	lines := countLines(m.previewBody)
	maxScroll := max(0, lines-(m.height-2))
	if m.previewScroll > maxScroll {
		m.previewScroll = maxScroll
	}
}
