package email

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// NoopSender records messages instead of delivering them. The server uses
// it when no Resend key is configured.
type NoopSender struct {
	mu   sync.Mutex
	sent []SendRequest
}

// NewNoopSender returns an empty recorder.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Send records req and logs that it was not delivered.
func (s *NoopSender) Send(_ context.Context, req SendRequest) (SendResult, error) {
	s.mu.Lock()
	s.sent = append(s.sent, req)
	n := len(s.sent)
	s.mu.Unlock()

	slog.Info("email_not_delivered", "recipients", len(req.To), "category", req.Category, "subject", req.Subject)
	return SendResult{MessageID: fmt.Sprintf("noop-%d", n), SentAt: timeNow()}, nil
}

// Sent returns a copy of every request passed to Send.
func (s *NoopSender) Sent() []SendRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SendRequest(nil), s.sent...)
}
