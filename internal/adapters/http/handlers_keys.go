package web

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"colloque/internal/domain/secretseq"
	"colloque/internal/domain/view"
)

// maxKeyLength bounds a key name; the longest keydown names are words like "ArrowRight".
const maxKeyLength = 32

// keyRequest is one keydown. Seq numbers the page's keys from 1 so keys
// served out of order still reach the detector in the order they were typed.
type keyRequest struct {
	Listener string `json:"listener"`
	Seq      uint64 `json:"seq"`
	Key      string `json:"key"`
}

type keyResponse struct {
	Triggered bool `json:"triggered"`
	Admin     bool `json:"admin"`
}

type releaseRequest struct {
	Listener string `json:"listener"`
}

// handleViewKeys handles POST /api/view/keys: one keydown from the public
// page, forwarded to that page's detector in Seq order. A replayed or far
// ahead Seq gets 409. Keys are never logged.
func handleViewKeys(w http.ResponseWriter, r *http.Request) {
	if opts.Entry != view.EntrySequence {
		http.NotFound(w, r)
		return
	}
	sess, ok := currentView(w, r)
	if !ok {
		return
	}

	var req keyRequest
	if err := strictDecode(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Seq == 0 || req.Key == "" || utf8.RuneCountInString(req.Key) > maxKeyLength {
		http.Error(w, "invalid key", http.StatusBadRequest)
		return
	}

	listener, ok := sess.Listener(req.Listener)
	if !ok {
		http.Error(w, "listener released", http.StatusGone)
		return
	}
	triggered, err := listener.KeyAt(req.Seq, req.Key)
	switch {
	case errors.Is(err, secretseq.ErrReleased):
		http.Error(w, "listener released", http.StatusGone)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	perfMetrics.KeyReceived()

	if triggered {
		sess.ReleaseListener(req.Listener)
	}
	writeJSON(w, http.StatusOK, keyResponse{
		Triggered: triggered,
		Admin:     sess.Controller.Snapshot().AdminVisible,
	})
}

// handleViewRelease handles POST /api/view/release, sent when the page is
// left. Releasing a stale or unknown listener is a no-op.
func handleViewRelease(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentView(w, r)
	if !ok {
		return
	}
	var req releaseRequest
	if err := strictDecode(w, r, &req); err != nil || req.Listener == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sess.ReleaseListener(req.Listener)
	w.WriteHeader(http.StatusNoContent)
}
