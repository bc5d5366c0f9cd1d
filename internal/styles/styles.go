// Package styles holds the shared lipgloss styles and color palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - dark theme
var (
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Accent    = lipgloss.Color("#F59E0B") // Amber

	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red

	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	BgPrimary   = lipgloss.Color("#111827")
	BgSecondary = lipgloss.Color("#1F2937")
	BgTertiary  = lipgloss.Color("#374151")

	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")
)

// Tab bar styles
var (
	TabActive = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Background(BgSecondary).
			Padding(0, 1)

	// DirtyMarker flags tabs with unsaved changes.
	DirtyMarker = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	TabBar = lipgloss.NewStyle().
		Background(BgPrimary)
)

// Status bar styles
var (
	StatusBar = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Background(BgSecondary).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Foreground(TextMuted)

	StatusValue = lipgloss.NewStyle().
			Foreground(TextPrimary)
)

// Modal styles
var (
	ModalBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderActive).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextPrimary)

	ModalText = lipgloss.NewStyle().
			Foreground(TextSecondary)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	ButtonBlurred = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Background(BgTertiary).
			Padding(0, 2)
)

// List styles (recent files modal)
var (
	ListItem = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Padding(0, 1)

	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(BgTertiary).
				Bold(true).
				Padding(0, 1)

	ListDetail = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// Toast styles
var (
	ToastSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(Success).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Error).
			Bold(true).
			Padding(0, 1)
)
