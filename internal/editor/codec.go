package editor

// SchemaVersionV2 identifies the current snapshot schema.
const SchemaVersionV2 = "V2"

// SessionTab is the persisted form of one tab. Content is present iff the
// tab was dirty or untitled at serialization time; clean local tabs are
// reloaded from disk on restore instead of being duplicated into the
// snapshot.
type SessionTab struct {
	ID       string  `json:"id"`
	Path     string  `json:"path,omitempty"`
	Filename string  `json:"filename"`
	Dirty    bool    `json:"isDirty"`
	Content  *string `json:"content,omitempty"`
}

// SessionState is the open-tab portion of the snapshot.
type SessionState struct {
	Tabs         []SessionTab `json:"tabs"`
	CurrentTabID string       `json:"currentTabId,omitempty"`
}

// RecentFile records a file the user saved or opened, keyed by path in the
// snapshot's recents map.
type RecentFile struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Modified int64  `json:"modified"` // unix epoch milliseconds
}

// Snapshot is the persisted session: recents, open tabs, and the active
// tab id.
type Snapshot struct {
	RecentFiles   map[string]RecentFile `json:"recentFiles"`
	Session       SessionState          `json:"session"`
	SchemaVersion string                `json:"schemaVersion"`
}

// EmptySnapshot returns a V2 snapshot with no tabs and no recents.
func EmptySnapshot() Snapshot {
	return Snapshot{
		RecentFiles:   make(map[string]RecentFile),
		Session:       SessionState{Tabs: []SessionTab{}},
		SchemaVersion: SchemaVersionV2,
	}
}

// SerializeTabs converts tab metadata plus an id → content map into the
// persisted form. Content is embedded only for tabs that need it: dirty
// tabs (unsaved changes unrecoverable from disk) and untitled tabs (no
// backing file at all).
func SerializeTabs(tabs []Tab, contents map[string]string) []SessionTab {
	out := make([]SessionTab, 0, len(tabs))
	for _, tab := range tabs {
		st := SessionTab{
			ID:       tab.ID,
			Filename: tab.Filename,
			Dirty:    tab.Dirty,
		}
		if tab.Kind == KindLocal {
			st.Path = tab.Path
		}
		if tab.Dirty || tab.Kind == KindUntitled {
			content := contents[tab.ID]
			st.Content = &content
		}
		out = append(out, st)
	}
	return out
}

// DeserializeTabs restores persisted tabs into the runtime representation:
// metadata-only tabs for the registry and an id → content seed map for
// every tab that carried embedded content. Kind is derived from the
// presence of a path.
func DeserializeTabs(sessionTabs []SessionTab) ([]Tab, map[string]string) {
	tabs := make([]Tab, 0, len(sessionTabs))
	contents := make(map[string]string)
	for _, st := range sessionTabs {
		kind := KindUntitled
		if st.Path != "" {
			kind = KindLocal
		}
		tabs = append(tabs, Tab{
			ID:       st.ID,
			Kind:     kind,
			Filename: st.Filename,
			Path:     st.Path,
			Dirty:    st.Dirty,
		})
		if st.Content != nil {
			contents[st.ID] = *st.Content
		}
	}
	return tabs, contents
}
