package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/notetab/internal/styles"
)

// PathPrompt is a single-line path input used for save-as and open-by-path.
type PathPrompt struct {
	Title   string
	filters []string
	input   textinput.Model
}

// NewPathPrompt creates a prompt pre-filled with initial. filters are shown
// as a hint; they are enforced by the caller, not the input.
func NewPathPrompt(title, initial string, filters []string) *PathPrompt {
	ti := textinput.New()
	ti.Placeholder = "path/to/file"
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 48
	return &PathPrompt{Title: title, filters: filters, input: ti}
}

// Update forwards key events to the text input.
func (p *PathPrompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// Value returns the entered path, trimmed.
func (p *PathPrompt) Value() string {
	return strings.TrimSpace(p.input.Value())
}

// View renders the prompt box.
func (p *PathPrompt) View() string {
	title := styles.ModalTitle.Render(p.Title)
	parts := []string{title, "", p.input.View()}
	if len(p.filters) > 0 {
		hint := styles.ListDetail.Render("formats: " + strings.Join(p.filters, ", "))
		parts = append(parts, "", hint)
	}
	return styles.ModalBorder.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
