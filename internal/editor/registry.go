package editor

import "fmt"

// Registry is the ordered collection of open tab metadata. It holds no
// content and is mutated only through targeted, single-tab updates so that
// hot-path edits never touch unrelated tabs.
type Registry struct {
	tabs []Tab
}

// Len returns the number of open tabs.
func (r *Registry) Len() int { return len(r.tabs) }

// Tabs returns a copy of the tab metadata in display order.
func (r *Registry) Tabs() []Tab {
	out := make([]Tab, len(r.tabs))
	copy(out, r.tabs)
	return out
}

// Append adds tab at the end of the order. A duplicate id is a programmer
// error (ids are generated fresh per tab) and is rejected.
func (r *Registry) Append(tab Tab) error {
	if r.indexOf(tab.ID) >= 0 {
		return fmt.Errorf("registry: duplicate tab id %s", tab.ID)
	}
	r.tabs = append(r.tabs, tab)
	return nil
}

// Remove deletes the tab with the given id, preserving the order of the
// remaining tabs. Reports whether the tab was present.
func (r *Registry) Remove(id string) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.tabs = append(r.tabs[:i], r.tabs[i+1:]...)
	return true
}

// Find returns the tab with the given id.
func (r *Registry) Find(id string) (Tab, bool) {
	if i := r.indexOf(id); i >= 0 {
		return r.tabs[i], true
	}
	return Tab{}, false
}

// IndexOf returns the position of id in the current order, or -1.
func (r *Registry) IndexOf(id string) int { return r.indexOf(id) }

// MarkDirty sets the dirty flag on a single tab. Reports whether the tab
// was found. No other tab's data is touched.
func (r *Registry) MarkDirty(id string, dirty bool) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.tabs[i].Dirty = dirty
	return true
}

// Replace swaps the stored metadata for tab.ID in place (used when a save
// promotes an untitled tab to a local one). Reports whether the tab was
// found.
func (r *Registry) Replace(tab Tab) bool {
	i := r.indexOf(tab.ID)
	if i < 0 {
		return false
	}
	r.tabs[i] = tab
	return true
}

// Reorder replaces the tab order wholesale (drag-and-drop). ids must be a
// permutation of the current id set; anything else is rejected and the
// order is left unchanged.
func (r *Registry) Reorder(ids []string) error {
	if len(ids) != len(r.tabs) {
		return fmt.Errorf("registry: reorder with %d ids, have %d tabs", len(ids), len(r.tabs))
	}
	reordered := make([]Tab, 0, len(r.tabs))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("registry: reorder with duplicate id %s", id)
		}
		seen[id] = true
		i := r.indexOf(id)
		if i < 0 {
			return fmt.Errorf("registry: reorder with unknown id %s", id)
		}
		reordered = append(reordered, r.tabs[i])
	}
	r.tabs = reordered
	return nil
}

func (r *Registry) indexOf(id string) int {
	for i := range r.tabs {
		if r.tabs[i].ID == id {
			return i
		}
	}
	return -1
}
