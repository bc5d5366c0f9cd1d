// Package ui provides the modal dialogs and overlay compositing for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// dimStyle is applied to background content behind modals. Existing ANSI
// codes are stripped first: SGR faint does not combine reliably with color
// codes already present in the line.
var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// Overlay composites a centered modal on top of a dimmed background,
// producing a full width x height frame.
func Overlay(background, modal string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	modalLines := strings.Split(modal, "\n")

	modalWidth := widestLine(modalLines)
	modalHeight := len(modalLines)
	startX := (width - modalWidth) / 2
	startY := (height - modalHeight) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bgLine := ""
		if y < len(bgLines) {
			bgLine = bgLines[y]
		}
		row := y - startY
		if row >= 0 && row < modalHeight {
			rows = append(rows, overlayRow(bgLine, modalLines[row], startX, modalWidth, width))
		} else {
			rows = append(rows, dimStyle.Render(ansi.Strip(bgLine)))
		}
	}
	return strings.Join(rows, "\n")
}

// overlayRow splices modalLine into bgLine at startX: dimmed background on
// the left, the modal content untouched, dimmed background on the right.
func overlayRow(bgLine, modalLine string, startX, modalWidth, totalWidth int) string {
	var b strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if startX > 0 {
		left := ansi.Truncate(stripped, startX, "")
		leftWidth := ansi.StringWidth(left)
		b.WriteString(dimStyle.Render(left))
		if leftWidth < startX {
			b.WriteString(strings.Repeat(" ", startX-leftWidth))
		}
	}

	b.WriteString(modalLine)

	rightStart := startX + modalWidth
	if rightStart < totalWidth && bgWidth > rightStart {
		right := ansi.Cut(stripped, rightStart, bgWidth)
		b.WriteString(dimStyle.Render(right))
	}

	return b.String()
}

// widestLine returns the maximum visual width of the given lines.
func widestLine(lines []string) int {
	width := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > width {
			width = w
		}
	}
	return width
}
