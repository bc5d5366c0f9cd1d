package app

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/notetab/internal/editor"
	"github.com/marcus/notetab/internal/styles"
	"github.com/mattn/go-runewidth"
)

// tabLabels builds the display label for each tab. Tabs sharing a filename
// are disambiguated with their parent directory; labels wider than
// maxWidth are truncated with an ellipsis. Dirty tabs carry a marker.
func tabLabels(tabs []editor.Tab, maxWidth int) []string {
	nameCount := make(map[string]int)
	for _, tab := range tabs {
		nameCount[tab.Filename]++
	}

	labels := make([]string, len(tabs))
	for i, tab := range tabs {
		label := tab.Filename
		if nameCount[tab.Filename] > 1 && tab.Path != "" {
			label = filepath.Join(filepath.Base(filepath.Dir(tab.Path)), tab.Filename)
		}
		label = runewidth.Truncate(label, maxWidth, "…")
		if tab.Dirty {
			label = "● " + label
		}
		labels[i] = label
	}
	return labels
}

// renderTabBar renders the full tab row, highlighting the current tab.
func renderTabBar(tabs []editor.Tab, currentID string, width, labelWidth int) string {
	if len(tabs) == 0 {
		return styles.TabBar.Width(width).Render(
			styles.TabInactive.Render("no open tabs"))
	}

	labels := tabLabels(tabs, labelWidth)
	cells := make([]string, len(tabs))
	for i, tab := range tabs {
		if tab.ID == currentID {
			cells[i] = styles.TabActive.Render(labels[i])
		} else {
			cells[i] = styles.TabInactive.Render(labels[i])
		}
	}

	row := strings.Join(cells, " ")
	if ansi.StringWidth(row) > width {
		row = lipgloss.NewStyle().MaxWidth(width).Render(row)
	}
	return styles.TabBar.Width(width).Render(row)
}
