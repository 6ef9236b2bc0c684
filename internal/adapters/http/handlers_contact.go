package web

import (
	"errors"
	"log/slog"
	"net/http"

	"colloque/internal/adapters/http/middleware"
	"colloque/internal/adapters/http/views"
	"colloque/internal/application/orchestrators"
	"colloque/internal/domain/contact"
)

// handleContact handles POST /contact. The outcome is kept on the view and
// shown by the next render of the public tree.
func handleContact(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentView(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := orchestrators.SubmitContactInput{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Body:  r.FormValue("body"),
		Lang:  sess.Controller.Snapshot().Lang.String(),
	}
	deps := orchestrators.SubmitContactDeps{
		ContactStore: stores.ContactStore,
		Sender:       emailSender,
		NotifyTo:     opts.NotifyTo,
		GenerateID:   generateID,
		Now:          timeNow,
	}

	_, err := orchestrators.ExecuteSubmitContact(r.Context(), input, deps)
	switch {
	case err == nil:
		sess.SetDraft(middleware.ContactDraft{Status: views.ContactSent})
		perfMetrics.ContactSubmitted("sent")
	case isContactValidationError(err):
		sess.SetDraft(middleware.ContactDraft{
			Status: views.ContactError,
			Name:   input.Name,
			Email:  input.Email,
			Body:   input.Body,
		})
		slog.Debug("contact_rejected", "reason", err.Error())
		perfMetrics.ContactSubmitted("invalid")
	default:
		internalError(w, err)
		perfMetrics.ContactSubmitted("failed")
		return
	}
	http.Redirect(w, r, "/#contact", http.StatusSeeOther)
}

func isContactValidationError(err error) bool {
	return errors.Is(err, contact.ErrEmptyName) ||
		errors.Is(err, contact.ErrNameTooLong) ||
		errors.Is(err, contact.ErrInvalidEmail) ||
		errors.Is(err, contact.ErrEmptyBody) ||
		errors.Is(err, contact.ErrBodyTooLong)
}
