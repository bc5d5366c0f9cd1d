package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/notetab/internal/editor"
	"github.com/marcus/notetab/internal/styles"
)

// RecentsList is the recent-files picker modal.
type RecentsList struct {
	files  []editor.RecentFile
	cursor int
}

// NewRecentsList creates the picker over files, which must already be
// sorted most recent first.
func NewRecentsList(files []editor.RecentFile) *RecentsList {
	return &RecentsList{files: files}
}

// Empty reports whether there is nothing to pick.
func (r *RecentsList) Empty() bool { return len(r.files) == 0 }

// MoveCursor shifts the selection by delta, clamped to the list.
func (r *RecentsList) MoveCursor(delta int) {
	if len(r.files) == 0 {
		return
	}
	r.cursor += delta
	if r.cursor < 0 {
		r.cursor = 0
	}
	if r.cursor >= len(r.files) {
		r.cursor = len(r.files) - 1
	}
}

// Selected returns the file under the cursor.
func (r *RecentsList) Selected() (editor.RecentFile, bool) {
	if len(r.files) == 0 {
		return editor.RecentFile{}, false
	}
	return r.files[r.cursor], true
}

// View renders the picker box.
func (r *RecentsList) View() string {
	title := styles.ModalTitle.Render("Recent files")
	rows := []string{title, ""}
	if len(r.files) == 0 {
		rows = append(rows, styles.ModalText.Render("No recent files yet"))
	}
	const maxVisible = 10
	start := 0
	if r.cursor >= maxVisible {
		start = r.cursor - maxVisible + 1
	}
	for i := start; i < len(r.files) && i < start+maxVisible; i++ {
		f := r.files[i]
		label := f.Filename + "  " + styles.ListDetail.Render(relativeAge(f.Modified))
		if i == r.cursor {
			rows = append(rows, styles.ListItemSelected.Render(label))
		} else {
			rows = append(rows, styles.ListItem.Render(label))
		}
	}
	return styles.ModalBorder.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// relativeAge formats an epoch-milliseconds timestamp as a rough age.
func relativeAge(modified int64) string {
	age := time.Since(time.UnixMilli(modified))
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return time.Duration(age.Truncate(time.Minute)).String() + " ago"
	case age < 24*time.Hour:
		return time.Duration(age.Truncate(time.Hour)).String() + " ago"
	default:
		return time.UnixMilli(modified).Format("2006-01-02")
	}
}
