package editor

// FileStore is the filesystem boundary the controller reads and writes
// documents through. The production implementation lives in
// internal/filestore; tests substitute an in-memory fake.
type FileStore interface {
	// Open reads the file at path and returns its content plus the
	// metadata detected at read time.
	Open(path string) (string, FileInfo, error)
	// Save writes content to path, replacing any existing file.
	Save(path, content string) error
}

// Choice is the outcome of an unsaved-changes confirmation.
type Choice int

const (
	// ChoiceCancel aborts the close; nothing changes.
	ChoiceCancel Choice = iota
	// ChoiceDiscard closes without writing.
	ChoiceDiscard
	// ChoiceSave writes the tab's content before closing.
	ChoiceSave
)

// Dialog is the user-interaction boundary. Calls block until the user
// answers; the UI layer is responsible for presenting them as modals and
// for disabling re-entrant triggers while one is pending.
type Dialog interface {
	// PickSavePath asks for a destination path. ok is false when the
	// user cancelled.
	PickSavePath(defaultName string, filters []string) (path string, ok bool)
	// PickOpenPath asks for an existing file to open. ok is false when
	// the user cancelled.
	PickOpenPath(filters []string) (path string, ok bool)
	// ConfirmClose asks whether to save filename's unsaved changes
	// before closing its tab.
	ConfirmClose(filename string) Choice
}

// SessionStore persists the session snapshot between runs. Save failures
// are treated as best-effort by the controller: logged, never propagated.
type SessionStore interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
}
