package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ErrConfirmPending is returned by CloseTab when another close
// confirmation is already waiting on the user. Only one confirmation flow
// may be in flight at a time.
var ErrConfirmPending = errors.New("editor: a close confirmation is already pending")

// activeDoc is the "active slot": the one document whose content is held
// in memory for editing. A nil activeDoc means no tab is active.
type activeDoc struct {
	tabID       string
	content     string
	dirty       bool // mirrors the registry flag so the hot path skips lookups
	info        FileInfo
	fingerprint uint64 // content hash at last disk sync
}

// Params configures a Controller. FileStore, Dialog and Store are
// required; the rest default sensibly.
type Params struct {
	FileStore FileStore
	Dialog    Dialog
	Store     SessionStore
	Logger    *slog.Logger

	// DefaultSaveName seeds the save dialog for untitled tabs.
	DefaultSaveName string
	// OpenFilters / SaveFilters are extension filters passed through to
	// the dialogs.
	OpenFilters []string
	SaveFilters []string
}

// Controller owns the editor session: the tab registry, the content cache
// and the active slot. All mutations go through its methods; the UI reads
// state only through the accessor methods.
//
// The invariant maintained everywhere: a tab's content lives in exactly
// one place: the active slot iff the tab is current, the cache iff it is
// dirty or untitled and not current, nowhere otherwise.
type Controller struct {
	fs     FileStore
	dialog Dialog
	store  SessionStore
	log    *slog.Logger

	defaultSaveName string
	openFilters     []string
	saveFilters     []string

	registry Registry
	cache    *Cache
	active   *activeDoc
	recents  map[string]RecentFile

	confirming bool // single-flight guard for close confirmations

	now   func() time.Time
	newID func() string
}

// New creates a Controller in the Empty state. Call Initialize exactly
// once at startup to restore the previous session.
func New(p Params) *Controller {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	name := p.DefaultSaveName
	if name == "" {
		name = UntitledName + ".txt"
	}
	return &Controller{
		fs:              p.FileStore,
		dialog:          p.Dialog,
		store:           p.Store,
		log:             logger,
		defaultSaveName: name,
		openFilters:     p.OpenFilters,
		saveFilters:     p.SaveFilters,
		cache:           NewCache(),
		recents:         make(map[string]RecentFile),
		now:             time.Now,
		newID:           uuid.NewString,
	}
}

// Initialize restores the session snapshot: registry from the persisted
// tabs, cache seeded with every embedded content, and, if the snapshot
// names a current tab, that tab's content promoted into the active slot
// (from the cache when present, from disk for clean local tabs).
//
// Load and disk failures are logged and leave the controller in a smaller
// but consistent state; startup never fails because of a bad snapshot.
func (c *Controller) Initialize() {
	snap, err := c.store.Load()
	if err != nil {
		c.log.Warn("session load failed, starting empty", "err", err)
		return
	}

	tabs, seed := DeserializeTabs(snap.Session.Tabs)
	for _, tab := range tabs {
		if err := c.registry.Append(tab); err != nil {
			c.log.Warn("skipping tab from snapshot", "err", err)
		}
	}
	for id, content := range seed {
		if _, ok := c.registry.Find(id); ok {
			c.cache.Put(id, content)
		}
	}
	if snap.RecentFiles != nil {
		c.recents = snap.RecentFiles
	}

	currentID := snap.Session.CurrentTabID
	if currentID == "" {
		return
	}
	tab, ok := c.registry.Find(currentID)
	if !ok {
		return
	}
	if content, ok := c.cache.Take(currentID); ok {
		c.active = &activeDoc{
			tabID:       currentID,
			content:     content,
			dirty:       tab.Dirty,
			info:        restoredFileInfo(tab, content),
			fingerprint: Fingerprint(content),
		}
		return
	}
	if tab.Kind != KindLocal {
		// An uncached untitled tab in the snapshot should not happen
		// (untitled tabs always embed content); recover with empty.
		c.active = &activeDoc{tabID: currentID, info: DefaultFileInfo()}
		return
	}
	content, info, err := c.fs.Open(tab.Path)
	if err != nil {
		c.log.Warn("could not reload current tab content", "path", tab.Path, "err", err)
		return
	}
	c.active = &activeDoc{
		tabID:       currentID,
		content:     content,
		info:        info,
		fingerprint: Fingerprint(content),
	}
}

// PersistSession writes the current session to the store. Best effort:
// failures are logged and swallowed so that shutdown is never blocked.
func (c *Controller) PersistSession() {
	contents := c.cache.Contents()
	var currentID string
	if c.active != nil {
		currentID = c.active.tabID
		contents[c.active.tabID] = c.active.content
	}
	snap := Snapshot{
		RecentFiles: c.recents,
		Session: SessionState{
			Tabs:         SerializeTabs(c.registry.Tabs(), contents),
			CurrentTabID: currentID,
		},
		SchemaVersion: SchemaVersionV2,
	}
	if err := c.store.Save(snap); err != nil {
		c.log.Warn("session persist failed", "err", err)
	}
}

// AddBlank opens a fresh untitled tab and makes it active. The previously
// active tab is flushed to the cache per policy.
func (c *Controller) AddBlank() Tab {
	tab := Tab{
		ID:       c.newID(),
		Kind:     KindUntitled,
		Filename: UntitledName,
	}
	c.flushActive()
	// Append cannot fail: the id is freshly generated.
	if err := c.registry.Append(tab); err != nil {
		c.log.Error("blank tab append failed", "err", err)
		return tab
	}
	c.active = &activeDoc{tabID: tab.ID, info: DefaultFileInfo()}
	return tab
}

// SetContent records an edit to the active tab. This is the hot path, run
// once per keystroke: when the tab is already dirty only the active slot's
// string changes and the registry is not touched at all. The first edit
// after a load or save additionally flips the tab's dirty flag with a
// single targeted registry update.
func (c *Controller) SetContent(content string) {
	if c.active == nil {
		return
	}
	if !c.active.dirty {
		c.registry.MarkDirty(c.active.tabID, true)
		c.active.dirty = true
	}
	c.active.content = content
}

// SaveCurrentFileOnDisk writes the active tab's content to its backing
// path, prompting for a destination first when the tab is untitled. On
// success the tab is (now) local, clean, with refreshed file metadata and
// a recents entry. A cancelled dialog is a silent no-op; a write failure
// leaves all state unchanged.
func (c *Controller) SaveCurrentFileOnDisk() error {
	if c.active == nil {
		return nil
	}
	tab, ok := c.registry.Find(c.active.tabID)
	if !ok {
		return nil
	}

	path := tab.Path
	if tab.Kind == KindUntitled {
		picked, ok := c.dialog.PickSavePath(c.defaultSaveName, c.saveFilters)
		if !ok {
			return nil
		}
		path = picked
	} else if !c.active.dirty && Fingerprint(c.active.content) == c.active.fingerprint {
		// Clean local tab with unchanged content: nothing to write.
		return nil
	}

	content := c.active.content
	if err := c.fs.Save(path, content); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	filename := filepath.Base(path)
	tab.Kind = KindLocal
	tab.Path = path
	tab.Filename = filename
	tab.Dirty = false
	c.registry.Replace(tab)

	c.active.dirty = false
	c.active.fingerprint = Fingerprint(content)
	c.active.info = FileInfo{
		LineEnding: DetectLineEnding(content),
		Encoding:   "UTF-8",
		FileSize:   int64(len(content)),
		Extension:  ExtensionOf(filename),
	}
	c.cache.Remove(tab.ID)
	c.touchRecent(tab.ID, path, filename)
	return nil
}

// OpenLocalFile prompts for a file and opens it. A cancelled dialog is a
// silent no-op.
func (c *Controller) OpenLocalFile() error {
	path, ok := c.dialog.PickOpenPath(c.openFilters)
	if !ok {
		return nil
	}
	return c.OpenByPath(path)
}

// OpenByPath opens the file at path, reusing an existing tab for that
// path when there is one. A read failure aborts with the registry, cache
// and active slot left exactly as they were.
func (c *Controller) OpenByPath(path string) error {
	for _, tab := range c.registry.Tabs() {
		if tab.Kind == KindLocal && tab.Path == path {
			return c.OpenTab(tab.ID)
		}
	}

	// New tab: all fallible steps happen before any state changes.
	content, info, err := c.fs.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	tab := Tab{
		ID:       c.newID(),
		Kind:     KindLocal,
		Filename: filepath.Base(path),
		Path:     path,
	}
	c.flushActive()
	if err := c.registry.Append(tab); err != nil {
		c.log.Error("tab append failed", "err", err)
		return err
	}
	c.active = &activeDoc{
		tabID:       tab.ID,
		content:     content,
		info:        info,
		fingerprint: Fingerprint(content),
	}
	c.touchRecent(tab.ID, path, tab.Filename)
	return nil
}

// OpenTab makes the tab with the given id active. No-op when it already
// is, or when the id is unknown. Content comes from the cache when the
// tab was dirty or untitled, otherwise fresh from disk (the file may have
// changed since it was last shown). A read failure aborts without
// changing which tab is active.
func (c *Controller) OpenTab(id string) error {
	if c.active != nil && c.active.tabID == id {
		return nil
	}
	tab, ok := c.registry.Find(id)
	if !ok {
		return nil
	}

	doc, err := c.loadDoc(tab)
	if err != nil {
		return err
	}
	c.flushActive()
	c.active = doc
	return nil
}

// loadDoc resolves a tab's content into a fresh active slot: cache first,
// then disk for local tabs, then empty. The cache entry, if any, is
// consumed; once active, the content must not also live in the cache.
func (c *Controller) loadDoc(tab Tab) (*activeDoc, error) {
	if content, ok := c.cache.Take(tab.ID); ok {
		return &activeDoc{
			tabID:       tab.ID,
			content:     content,
			dirty:       tab.Dirty,
			info:        restoredFileInfo(tab, content),
			fingerprint: Fingerprint(content),
		}, nil
	}
	if tab.Kind == KindLocal {
		content, info, err := c.fs.Open(tab.Path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", tab.Path, err)
		}
		return &activeDoc{
			tabID:       tab.ID,
			content:     content,
			info:        info,
			fingerprint: Fingerprint(content),
		}, nil
	}
	// Uncached untitled tab: nothing to restore.
	return &activeDoc{tabID: tab.ID, dirty: tab.Dirty, info: DefaultFileInfo()}, nil
}

// CloseTab closes the tab with the given id, asking about unsaved changes
// unless skipConfirmation is set. The returned bool reports whether the
// tab was actually closed (false when the user cancelled, or when a save
// was requested but did not complete).
//
// When the closed tab was active, the tab to its left becomes active, or
// failing that the one that was to its right, or none. A non-nil error
// alongside closed == true means the tab is gone but the replacement's
// content could not be loaded.
func (c *Controller) CloseTab(id string, skipConfirmation bool) (bool, error) {
	tab, ok := c.registry.Find(id)
	if !ok {
		return true, nil
	}

	if tab.Dirty && !skipConfirmation {
		if c.confirming {
			return false, ErrConfirmPending
		}
		c.confirming = true
		choice := c.dialog.ConfirmClose(tab.Filename)
		c.confirming = false

		// The prompt suspended us; re-read the authoritative state
		// rather than trusting the snapshot taken before it.
		tab, ok = c.registry.Find(id)
		if !ok {
			return true, nil
		}

		switch choice {
		case ChoiceCancel:
			return false, nil
		case ChoiceSave:
			if err := c.saveForClose(tab); err != nil {
				return false, err
			}
			// A cancelled save-as leaves the tab dirty; closing now
			// would silently drop the content the user asked to keep.
			if t, ok := c.registry.Find(id); ok && t.Dirty {
				return false, nil
			}
		}
	}

	return true, c.removeTab(id)
}

// saveForClose writes a dirty tab's content on the way out. The active
// tab goes through the regular save flow; a non-active local tab is
// written directly from the cache; a non-active untitled tab is made
// active first so the save-as dialog flow applies.
func (c *Controller) saveForClose(tab Tab) error {
	if c.active != nil && c.active.tabID == tab.ID {
		return c.SaveCurrentFileOnDisk()
	}
	if tab.Kind == KindLocal {
		content, ok := c.cache.Get(tab.ID)
		if !ok {
			// Dirty non-active tabs are always cached; treat a miss as
			// nothing to write rather than clobbering the file.
			c.log.Warn("dirty tab missing from cache", "id", tab.ID)
			return nil
		}
		if err := c.fs.Save(tab.Path, content); err != nil {
			return fmt.Errorf("save %s: %w", tab.Path, err)
		}
		c.registry.MarkDirty(tab.ID, false)
		c.cache.Remove(tab.ID)
		c.touchRecent(tab.ID, tab.Path, tab.Filename)
		return nil
	}
	if err := c.OpenTab(tab.ID); err != nil {
		return err
	}
	return c.SaveCurrentFileOnDisk()
}

// removeTab deletes id from the registry and cache and, when it was the
// active tab, activates its neighbor.
func (c *Controller) removeTab(id string) error {
	idx := c.registry.IndexOf(id)
	wasActive := c.active != nil && c.active.tabID == id

	c.registry.Remove(id)
	c.cache.Remove(id)

	if !wasActive {
		return nil
	}
	c.active = nil

	tabs := c.registry.Tabs()
	if len(tabs) == 0 {
		return nil
	}
	// Prefer the left neighbor, else the tab that slid into this index.
	replIdx := idx - 1
	if replIdx < 0 {
		replIdx = 0
	}
	if replIdx >= len(tabs) {
		replIdx = len(tabs) - 1
	}
	doc, err := c.loadDoc(tabs[replIdx])
	if err != nil {
		return err
	}
	c.active = doc
	return nil
}

// CloseCurrentTab closes the active tab; no-op success when there is none.
func (c *Controller) CloseCurrentTab(skipConfirmation bool) (bool, error) {
	if c.active == nil {
		return true, nil
	}
	return c.CloseTab(c.active.tabID, skipConfirmation)
}

// ResetCurrent deactivates the active tab without closing it: its content
// is flushed to the cache per policy and the active slot empties. Used
// when the UI navigates away from the editor without closing anything.
func (c *Controller) ResetCurrent() {
	c.flushActive()
}

// ReorderTabs replaces the tab order (drag-and-drop). ids must be a
// permutation of the open tab ids.
func (c *Controller) ReorderTabs(ids []string) error {
	return c.registry.Reorder(ids)
}

// flushActive empties the active slot, caching its content when the tab
// is dirty or untitled. A clean local tab's content is recoverable from
// disk, so caching it would only waste memory and risk staleness.
func (c *Controller) flushActive() {
	if c.active == nil {
		return
	}
	if tab, ok := c.registry.Find(c.active.tabID); ok {
		if tab.Dirty || tab.Kind == KindUntitled {
			c.cache.Put(tab.ID, c.active.content)
		}
	}
	c.active = nil
}

// RefreshActiveFromDisk re-reads the active tab's backing file after the
// watcher reports an external write. A clean tab is updated in place; a
// dirty tab is left alone (the caller decides how to surface the
// conflict). Reports whether the content was replaced.
func (c *Controller) RefreshActiveFromDisk() (bool, error) {
	if c.active == nil {
		return false, nil
	}
	tab, ok := c.registry.Find(c.active.tabID)
	if !ok || tab.Kind != KindLocal {
		return false, nil
	}
	if c.active.dirty {
		return false, nil
	}
	content, info, err := c.fs.Open(tab.Path)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", tab.Path, err)
	}
	if Fingerprint(content) == c.active.fingerprint {
		return false, nil
	}
	c.active.content = content
	c.active.info = info
	c.active.fingerprint = Fingerprint(content)
	return true, nil
}

// touchRecent inserts or refreshes the recents entry for path.
func (c *Controller) touchRecent(id, path, filename string) {
	c.recents[path] = RecentFile{
		ID:       id,
		Filename: filename,
		Path:     path,
		Modified: c.now().UnixMilli(),
	}
}

// restoredFileInfo derives what metadata it can for content that came out
// of the cache or snapshot rather than a disk read.
func restoredFileInfo(tab Tab, content string) FileInfo {
	info := FileInfo{
		LineEnding: DetectLineEnding(content),
		Encoding:   "UTF-8",
		FileSize:   int64(len(content)),
	}
	if tab.Kind == KindLocal {
		info.Extension = ExtensionOf(tab.Filename)
	}
	return info
}

// Tabs returns the open tab metadata in display order.
func (c *Controller) Tabs() []Tab { return c.registry.Tabs() }

// Current returns the active tab's metadata.
func (c *Controller) Current() (Tab, bool) {
	if c.active == nil {
		return Tab{}, false
	}
	return c.registry.Find(c.active.tabID)
}

// ActiveContent returns the active tab's content.
func (c *Controller) ActiveContent() (string, bool) {
	if c.active == nil {
		return "", false
	}
	return c.active.content, true
}

// ActiveFileInfo returns the file metadata of the active tab.
func (c *Controller) ActiveFileInfo() (FileInfo, bool) {
	if c.active == nil {
		return FileInfo{}, false
	}
	return c.active.info, true
}

// Dirty reports whether the tab with the given id has unsaved changes.
func (c *Controller) Dirty(id string) bool {
	tab, ok := c.registry.Find(id)
	return ok && tab.Dirty
}

// RecentFiles returns the recents, most recently touched first.
func (c *Controller) RecentFiles() []RecentFile {
	out := make([]RecentFile, 0, len(c.recents))
	for _, rf := range c.recents {
		out = append(out, rf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Modified > out[j].Modified })
	return out
}
