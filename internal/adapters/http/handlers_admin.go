package web

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"colloque/internal/adapters/http/middleware"
	"colloque/internal/adapters/http/views"
	"colloque/internal/application/orchestrators"
	"colloque/internal/domain/program"
	"colloque/internal/domain/view"
)

// enterAdmin switches c to the dashboard and records how it got there.
func enterAdmin(c *view.Controller, via view.AdminEntry) {
	c.EnterAdmin()
	perfMetrics.AdminEntered(string(via))
	slog.Info("admin_event", "event", "entered", "via", string(via))
}

// requireAdminView answers 404 unless the dashboard is showing.
func requireAdminView(w http.ResponseWriter, r *http.Request) (*middleware.ViewSession, bool) {
	sess, ok := currentView(w, r)
	if !ok {
		return nil, false
	}
	if !sess.Controller.Snapshot().AdminVisible {
		http.NotFound(w, r)
		return nil, false
	}
	return sess, true
}

// requireMutable answers 404 outside the dashboard and 403 while it is locked.
func requireMutable(w http.ResponseWriter, r *http.Request) (*middleware.ViewSession, bool) {
	sess, ok := requireAdminView(w, r)
	if !ok {
		return nil, false
	}
	if opts.AdminPasswordHash != "" && !sess.Unlocked() {
		http.Error(w, "forbidden", http.StatusForbidden)
		return nil, false
	}
	return sess, true
}

// handleAdminEnter handles POST /admin/enter, the button entry point.
// Only the button variant offers it; the sequence variant answers 404.
func handleAdminEnter(w http.ResponseWriter, r *http.Request) {
	if opts.Entry == view.EntrySequence {
		http.NotFound(w, r)
		return
	}
	sess, ok := currentView(w, r)
	if !ok {
		return
	}
	enterAdmin(sess.Controller, view.EntryButton)
	redirectHome(w, r)
}

// handleAdminExit handles POST /admin/exit
func handleAdminExit(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentView(w, r)
	if !ok {
		return
	}
	sess.Controller.ExitAdmin()
	slog.Info("admin_event", "event", "exited")
	redirectHome(w, r)
}

// handleAdminUnlock handles POST /admin/unlock
func handleAdminUnlock(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireAdminView(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteUnlockAdmin(orchestrators.UnlockAdminInput{
		Password: r.FormValue("password"),
	}, orchestrators.UnlockAdminDeps{
		PasswordHash: opts.AdminPasswordHash,
	})
	switch {
	case err == nil:
		sess.Unlock()
	case errors.Is(err, orchestrators.ErrUnlockDisabled):
		// nothing to unlock
	default:
		sess.SetNotice("admin.unlock.failed")
	}
	redirectHome(w, r)
}

// handleAddProgramEntry handles POST /admin/programs
func handleAddProgramEntry(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireMutable(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SaveProgramEntryInput{
		Day:     r.FormValue("day"),
		Start:   r.FormValue("start"),
		End:     r.FormValue("end"),
		TitleFR: r.FormValue("title_fr"),
		TitleEN: r.FormValue("title_en"),
		Speaker: r.FormValue("speaker"),
		Room:    r.FormValue("room"),
		Kind:    r.FormValue("kind"),
	}
	deps := orchestrators.SaveProgramEntryDeps{
		ProgramStore: stores.ProgramStore,
		GenerateID:   generateID,
	}

	if _, err := orchestrators.ExecuteSaveProgramEntry(r.Context(), input, deps); err != nil {
		if !isEntryValidationError(err) {
			internalError(w, err)
			return
		}
		sess.SetNotice("admin.invalid")
	}
	redirectHome(w, r)
}

// handleDeleteProgramEntry handles POST /admin/programs/{id}/delete, the
// delete confirmation dialog's decision.
func handleDeleteProgramEntry(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireMutable(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	entry, err := stores.ProgramStore.GetByID(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	lang := sess.Controller.Snapshot().Lang
	var deleteErr error
	dialog := views.DeleteConfirm{
		IsOpen:      true,
		ProgramName: entry.Title(lang),
		Action:      views.DeletePath(id),
		Lang:        lang,
		OnCancel: func() {
			slog.Info("program_event", "event", "delete_cancelled", "entry_id", id)
		},
		OnConfirm: func() {
			_, deleteErr = orchestrators.ExecuteDeleteProgramEntry(r.Context(),
				orchestrators.DeleteProgramEntryInput{ID: id},
				orchestrators.DeleteProgramEntryDeps{ProgramStore: stores.ProgramStore},
			)
		},
	}
	dialog.Decide(r.FormValue("decision"))

	if deleteErr != nil && !errors.Is(deleteErr, sql.ErrNoRows) {
		internalError(w, deleteErr)
		return
	}
	redirectHome(w, r)
}

func isEntryValidationError(err error) bool {
	for _, target := range []error{
		program.ErrEmptyTitle,
		program.ErrInvalidKind,
		program.ErrInvalidDay,
		program.ErrInvalidClock,
		program.ErrEndNotAfter,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
