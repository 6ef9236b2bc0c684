package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"colloque/internal/adapters/email"
	"colloque/internal/domain/contact"
)

// ContactStoreForSubmit defines the store interface needed by SubmitContact.
type ContactStoreForSubmit interface {
	Save(ctx context.Context, m contact.Message) error
}

// SubmitContactInput carries the contact form fields.
type SubmitContactInput struct {
	Name  string
	Email string
	Body  string
	Lang  string
}

// SubmitContactDeps holds dependencies for SubmitContact.
type SubmitContactDeps struct {
	ContactStore ContactStoreForSubmit
	Sender       email.Sender // nil disables notifications
	NotifyTo     []string
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSubmitContact stores a visitor's message and notifies the organisers.
// PRE: input comes from the public contact form
// POST: message persisted; a failed notification is logged but does not fail the submission
func ExecuteSubmitContact(ctx context.Context, input SubmitContactInput, deps SubmitContactDeps) (contact.Message, error) {
	m := contact.Message{
		ID:        deps.GenerateID(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Body:      strings.TrimSpace(input.Body),
		Lang:      input.Lang,
		CreatedAt: deps.Now(),
	}
	if err := m.Validate(); err != nil {
		return contact.Message{}, err
	}
	if err := deps.ContactStore.Save(ctx, m); err != nil {
		return contact.Message{}, fmt.Errorf("save contact message: %w", err)
	}

	slog.Info("contact_submitted", "message_id", m.ID, "lang", m.Lang)

	if deps.Sender != nil && len(deps.NotifyTo) > 0 {
		if err := notify(ctx, deps.Sender, m, deps.NotifyTo); err != nil {
			slog.Warn("contact_notify_failed", "message_id", m.ID, "error", err)
		}
	}
	return m, nil
}

func notify(ctx context.Context, sender email.Sender, m contact.Message, to []string) error {
	req, err := email.ContactNotice(m, to)
	if err != nil {
		return err
	}
	_, err = sender.Send(ctx, req)
	return err
}
