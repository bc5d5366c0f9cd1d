package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+q", Command: "quit", Context: "global"},
		{Key: "ctrl+c", Command: "quit", Context: "global"},

		// Editor context. Plain letters stay with the textarea; commands
		// ride on control and alt chords.
		{Key: "ctrl+n", Command: "new-tab", Context: "editor"},
		{Key: "ctrl+o", Command: "open-file", Context: "editor"},
		{Key: "ctrl+s", Command: "save", Context: "editor"},
		{Key: "ctrl+w", Command: "close-tab", Context: "editor"},
		{Key: "ctrl+right", Command: "next-tab", Context: "editor"},
		{Key: "ctrl+left", Command: "prev-tab", Context: "editor"},
		{Key: "alt+right", Command: "move-tab-right", Context: "editor"},
		{Key: "alt+left", Command: "move-tab-left", Context: "editor"},
		{Key: "ctrl+r", Command: "recent-files", Context: "editor"},
		{Key: "ctrl+p", Command: "toggle-preview", Context: "editor"},
		{Key: "ctrl+y", Command: "copy-content", Context: "editor"},

		// Markdown preview context
		{Key: "esc", Command: "toggle-preview", Context: "preview"},
		{Key: "ctrl+p", Command: "toggle-preview", Context: "preview"},
		{Key: "up", Command: "scroll-up", Context: "preview"},
		{Key: "down", Command: "scroll-down", Context: "preview"},
		{Key: "pgup", Command: "page-up", Context: "preview"},
		{Key: "pgdown", Command: "page-down", Context: "preview"},

		// Recent files modal
		{Key: "esc", Command: "cancel", Context: "recents"},
		{Key: "enter", Command: "select", Context: "recents"},
		{Key: "up", Command: "cursor-up", Context: "recents"},
		{Key: "down", Command: "cursor-down", Context: "recents"},
		{Key: "ctrl+p", Command: "cursor-up", Context: "recents"},
		{Key: "ctrl+n", Command: "cursor-down", Context: "recents"},

		// Close confirmation dialog
		{Key: "esc", Command: "cancel", Context: "confirm"},
		{Key: "enter", Command: "confirm", Context: "confirm"},
		{Key: "left", Command: "cursor-left", Context: "confirm"},
		{Key: "right", Command: "cursor-right", Context: "confirm"},
		{Key: "tab", Command: "cursor-right", Context: "confirm"},

		// Path prompt (save-as / open-by-path)
		{Key: "esc", Command: "cancel", Context: "prompt"},
		{Key: "enter", Command: "confirm", Context: "prompt"},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
