package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	g "maragu.dev/gomponents"

	"colloque/internal/adapters/http/middleware"
	"colloque/internal/adapters/http/views"
	"colloque/internal/application/projections"
	"colloque/internal/domain/i18n"
	"colloque/internal/domain/secretseq"
	"colloque/internal/domain/view"
)

// timeNow is a variable for testability.
var timeNow = time.Now

var errNoView = errors.New("request has no view session")

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// maxJSONBody bounds API request bodies; key and release payloads are tiny.
const maxJSONBody = 4 << 10

// strictDecode decodes JSON from the request body, rejecting unknown fields
// and bodies over maxJSONBody.
func strictDecode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// render writes a full HTML document. Nothing is sent if rendering fails.
func render(w http.ResponseWriter, n g.Node) {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	buf.WriteTo(w)
}

// currentView returns the request's view session, answering 500 when the
// Views middleware did not run.
func currentView(w http.ResponseWriter, r *http.Request) (*middleware.ViewSession, bool) {
	sess, ok := middleware.ViewFromContext(r.Context())
	if !ok {
		internalError(w, errNoView)
	}
	return sess, ok
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleHome handles GET /: it renders whichever tree the view selects.
// ?lang= switches the language first; ?confirm= opens the delete dialog.
func handleHome(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentView(w, r)
	if !ok {
		return
	}
	c := sess.Controller

	if raw := r.URL.Query().Get("lang"); raw != "" {
		if lang, err := i18n.Parse(raw); err == nil {
			c.SelectLanguage(lang)
		}
	}
	state := c.Snapshot()

	page, err := projections.QueryGetPage(r.Context(), projections.GetPageInput{
		Admin:     state.AdminVisible,
		ConfirmID: r.URL.Query().Get("confirm"),
	}, projections.GetPageDeps{
		ProgramStore: stores.ProgramStore,
		ContactStore: stores.ContactStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	data := views.PageData{
		State:     state,
		Site:      siteContent(),
		Program:   page.Program,
		CSRFToken: csrf.Token(r),
		Year:      timeNow().Year(),
	}

	if state.AdminVisible {
		// The public tree is gone, and with it the key listener.
		sess.ReleaseListener("")
		data.Admin = views.AdminData{
			Messages:     page.Messages,
			LockRequired: opts.AdminPasswordHash != "",
			Unlocked:     sess.Unlocked(),
			Notice:       sess.TakeNotice(),
			Confirm:      page.Confirm,
		}
	} else {
		if state.Entry == view.EntrySequence {
			d := secretseq.New(opts.Detector, secretseq.Options{
				OnTrigger: func() { enterAdmin(c, view.EntrySequence) },
			})
			data.ListenerID = sess.Relisten(secretseq.Listen(d))
		}
		data.Contact = views.ContactForm(sess.TakeDraft())
	}

	render(w, views.Page(data))
	perfMetrics.PageRendered(state.Lang.String(), state.Tree().String())
}

// handleHealthz handles GET /healthz
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	if _, err := stores.ProgramStore.Count(r.Context()); err != nil {
		slog.Error("health_check_failed", "error", err.Error())
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte("ok"))
}
