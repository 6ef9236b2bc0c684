// Package email sends organiser notifications.
package email

import (
	"context"
	"time"
)

var timeNow = time.Now

// SendRequest is one outgoing message.
type SendRequest struct {
	To       []string
	From     string // empty means the sender's default address
	Subject  string
	HTML     string
	Text     string // plain-text alternative
	ReplyTo  string
	Category string // e.g. "contact"; used for provider-side filtering
}

// SendResult is what the provider reports for an accepted message.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers messages through an external provider.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}
