// Package watcher reports external writes to the file behind the active
// tab, so the editor can reload clean content that changed on disk.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the watched file was modified outside the editor.
type Event struct {
	Path string
}

// Watcher follows at most one file at a time: the active tab's. Watching
// the parent directory instead of the file itself survives atomic saves,
// which replace the inode via rename.
type Watcher struct {
	fw     *fsnotify.Watcher
	events chan Event

	mu     sync.Mutex
	path   string // currently watched file, "" when idle
	dir    string // its parent, registered with fsnotify
	closed bool   // set before events closes; gates late timer sends
}

// New creates a watcher. Close it when done.
func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:     fw,
		events: make(chan Event, 8),
	}
	go w.run()
	return w, nil
}

// Events delivers debounced change notifications for the watched file.
func (w *Watcher) Events() <-chan Event { return w.events }

// Watch switches the watcher to path. An empty path stops watching.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	dir := ""
	if path != "" {
		dir = filepath.Dir(path)
	}
	if dir != w.dir {
		if w.dir != "" {
			w.fw.Remove(w.dir) // best effort, dir may be gone
		}
		if dir != "" {
			if err := w.fw.Add(dir); err != nil {
				w.dir, w.path = "", ""
				return err
			}
		}
		w.dir = dir
	}
	w.path = path
	return nil
}

// Close stops the watcher and its event channel.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

// emit delivers a debounced notification. The timer can fire after run
// has shut down, so the closed check and the send hold the same mutex
// that run flips closed under.
func (w *Watcher) emit(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.events <- Event{Path: path}:
	default:
		// Channel full, drop; the reload reads latest anyway.
	}
}

func (w *Watcher) run() {
	// Debounce timer: editors and atomic saves emit bursts of events.
	var debounce *time.Timer
	const debounceDelay = 100 * time.Millisecond

	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
		// A stopped timer may already be mid-fire; emit checks closed
		// under the same mutex, so flipping it here makes the close safe.
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()
		close(w.events)
	}()

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.mu.Lock()
			watched := w.path
			w.mu.Unlock()
			if watched == "" || event.Name != watched {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				w.emit(watched)
			})

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Keep watching; a transient error is not fatal.
		}
	}
}
