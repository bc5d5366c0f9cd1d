package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/notetab/internal/editor"
	"github.com/marcus/notetab/internal/styles"
)

// ConfirmClose is the unsaved-changes dialog shown before a dirty tab is
// closed. Three buttons: Save, Don't Save, Cancel. Esc always cancels.
type ConfirmClose struct {
	Filename string
	focus    int
}

// Button order mirrors the rendered row.
var confirmChoices = []editor.Choice{
	editor.ChoiceSave,
	editor.ChoiceDiscard,
	editor.ChoiceCancel,
}

var confirmLabels = []string{" Save ", " Don't Save ", " Cancel "}

// NewConfirmClose creates the dialog for the named tab, with Save focused.
func NewConfirmClose(filename string) *ConfirmClose {
	return &ConfirmClose{Filename: filename}
}

// MoveFocus shifts button focus by delta, wrapping around.
func (c *ConfirmClose) MoveFocus(delta int) {
	n := len(confirmChoices)
	c.focus = (c.focus + delta + n) % n
}

// Choice returns the currently focused choice.
func (c *ConfirmClose) Choice() editor.Choice {
	return confirmChoices[c.focus]
}

// View renders the dialog box.
func (c *ConfirmClose) View() string {
	title := styles.ModalTitle.Render("Unsaved changes")
	message := styles.ModalText.Render(
		fmt.Sprintf("%q has unsaved changes. Save before closing?", c.Filename))

	buttons := make([]string, len(confirmLabels))
	for i, label := range confirmLabels {
		if i == c.focus {
			buttons[i] = styles.ButtonFocused.Render(label)
		} else {
			buttons[i] = styles.ButtonBlurred.Render(label)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons[0], " ", buttons[1], " ", buttons[2])

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", message, "", row)
	return styles.ModalBorder.Render(body)
}
