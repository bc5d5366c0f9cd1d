package app

import (
	"github.com/marcus/notetab/internal/editor"
)

// dialogKind discriminates bridge requests.
type dialogKind int

const (
	dialogConfirmClose dialogKind = iota
	dialogSavePath
	dialogOpenPath
)

// dialogRequest is one pending question for the user. The controller
// goroutine blocks on resp until the UI answers.
type dialogRequest struct {
	kind        dialogKind
	filename    string   // confirm: tab being closed
	defaultName string   // save: suggested filename
	filters     []string // save/open: extension hints
	resp        chan dialogResponse
}

type dialogResponse struct {
	choice editor.Choice // confirm
	path   string        // save/open
	ok     bool          // save/open: false when cancelled
}

// DialogBridge implements editor.Dialog by forwarding each call into the
// bubbletea event loop and blocking until the user answers. Controller
// operations that can prompt must therefore run inside tea.Cmd goroutines,
// never on the update loop itself.
type DialogBridge struct {
	requests chan dialogRequest
}

// NewDialogBridge creates a bridge. The model drains Requests via a
// re-armed listen command.
func NewDialogBridge() *DialogBridge {
	return &DialogBridge{requests: make(chan dialogRequest)}
}

// Requests exposes the pending-question channel to the model.
func (b *DialogBridge) Requests() <-chan dialogRequest { return b.requests }

// ConfirmClose asks about unsaved changes in filename.
func (b *DialogBridge) ConfirmClose(filename string) editor.Choice {
	resp := b.send(dialogRequest{kind: dialogConfirmClose, filename: filename})
	return resp.choice
}

// PickSavePath asks for a destination path.
func (b *DialogBridge) PickSavePath(defaultName string, filters []string) (string, bool) {
	resp := b.send(dialogRequest{kind: dialogSavePath, defaultName: defaultName, filters: filters})
	return resp.path, resp.ok
}

// PickOpenPath asks for a file to open.
func (b *DialogBridge) PickOpenPath(filters []string) (string, bool) {
	resp := b.send(dialogRequest{kind: dialogOpenPath, filters: filters})
	return resp.path, resp.ok
}

func (b *DialogBridge) send(req dialogRequest) dialogResponse {
	req.resp = make(chan dialogResponse, 1)
	b.requests <- req
	return <-req.resp
}

// answer resolves a pending request. Buffered channel: never blocks the
// update loop.
func (req dialogRequest) answer(resp dialogResponse) {
	req.resp <- resp
}
