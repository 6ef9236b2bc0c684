package contact

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxBodyLength caps a message body, in bytes.
const MaxBodyLength = 5000

// MaxNameLength caps a sender name, in runes. The name ends up in the
// notification subject.
const MaxNameLength = 200

// Domain errors
var (
	ErrEmptyName    = errors.New("name is required")
	ErrNameTooLong  = errors.New("name is too long")
	ErrInvalidEmail = errors.New("a valid email address is required")
	ErrEmptyBody    = errors.New("message is required")
	ErrBodyTooLong  = errors.New("message is too long")
)

// Message is a question sent through the site's contact form.
type Message struct {
	ID        string
	Name      string
	Email     string
	Body      string
	Lang      string
	CreatedAt time.Time
}

// Validate checks if the Message has valid data.
// PRE: fields have been trimmed by the caller
// POST: Returns nil if valid, error otherwise
func (m *Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(m.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	addr, err := mail.ParseAddress(m.Email)
	if err != nil || addr.Address != m.Email {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(m.Body) == "" {
		return ErrEmptyBody
	}
	if len(m.Body) > MaxBodyLength {
		return ErrBodyTooLong
	}
	return nil
}
