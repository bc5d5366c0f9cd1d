package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/notetab/internal/styles"
	"github.com/marcus/notetab/internal/ui"
)

// View renders the full frame: tab bar, content, status bar, and any
// modal composited on top.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	currentID := ""
	if tab, ok := m.ctrl.Current(); ok {
		currentID = tab.ID
	}
	tabBar := renderTabBar(m.ctrl.Tabs(), currentID, m.width, m.cfg.UI.TabLabelWidth)

	var content string
	switch {
	case m.mode == modePreview:
		content = m.previewView()
	case len(m.ctrl.Tabs()) == 0:
		content = lipgloss.Place(m.width, max(1, m.height-2),
			lipgloss.Center, lipgloss.Center, m.emptyHint())
	default:
		content = m.textarea.View()
	}

	rows := []string{tabBar, content}
	if m.cfg.UI.ShowStatusBar {
		rows = append(rows, m.statusView())
	}
	frame := lipgloss.JoinVertical(lipgloss.Left, rows...)

	switch m.mode {
	case modeConfirm:
		return ui.Overlay(frame, m.confirm.View(), m.width, m.height)
	case modePrompt:
		return ui.Overlay(frame, m.prompt.View(), m.width, m.height)
	case modeRecents:
		return ui.Overlay(frame, m.recents.View(), m.width, m.height)
	}
	return frame
}

// previewView shows the rendered preview window at the current scroll.
func (m *Model) previewView() string {
	lines := strings.Split(m.previewBody, "\n")
	visible := max(1, m.height-2)
	start := m.previewScroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[start:end], "\n")
	for i := end - start; i < visible; i++ {
		body += "\n"
	}
	return body
}

// emptyHint lists the bindings that get a first tab open, shown in place
// of the editor when no tabs exist.
func (m *Model) emptyHint() string {
	keyFor := make(map[string]string)
	for _, b := range m.keys.BindingsFor("editor") {
		if cur, ok := keyFor[b.Command]; !ok || b.Key < cur {
			keyFor[b.Command] = b.Key
		}
	}
	var parts []string
	for _, item := range []struct{ command, label string }{
		{"new-tab", "new tab"},
		{"open-file", "open file"},
		{"recent-files", "recent files"},
		{"quit", "quit"},
	} {
		if key, ok := keyFor[item.command]; ok {
			parts = append(parts,
				styles.StatusValue.Render(key)+" "+styles.StatusKey.Render(item.label))
		}
	}
	return strings.Join(parts, "   ")
}

// statusView renders the bottom bar: file metadata on the left, session
// info on the right, toast overriding the right side when present.
func (m *Model) statusView() string {
	left := "no tab"
	if tab, ok := m.ctrl.Current(); ok {
		parts := []string{styles.StatusValue.Render(tab.Filename)}
		if tab.Dirty {
			parts = append(parts, styles.DirtyMarker.Render("●"))
		}
		if info, ok := m.ctrl.ActiveFileInfo(); ok {
			parts = append(parts,
				styles.StatusKey.Render(info.LineEnding),
				styles.StatusKey.Render(info.Encoding),
				styles.StatusKey.Render(formatSize(info.FileSize)))
			if info.Extension != "" {
				parts = append(parts, styles.StatusKey.Render("."+info.Extension))
			}
		}
		left = strings.Join(parts, "  ")
	}

	right := styles.StatusKey.Render(fmt.Sprintf("%d tabs", len(m.ctrl.Tabs())))
	if m.toast != "" {
		if m.toastError {
			right = styles.ToastError.Render(m.toast)
		} else {
			right = styles.ToastSuccess.Render(m.toast)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBar.Width(m.width).Render(
		left + strings.Repeat(" ", gap) + right)
}

// formatSize renders a byte count compactly.
func formatSize(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1fMB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1fKB", float64(n)/1024)
	default:
		return fmt.Sprintf("%dB", n)
	}
}

func countLines(s string) int {
	return strings.Count(s, "\n") + 1
}
