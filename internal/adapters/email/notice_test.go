package email

import (
	"context"
	"strings"
	"testing"
	"time"

	"colloque/internal/domain/contact"
)

func TestContactNotice(t *testing.T) {
	m := contact.Message{
		Name:      "Ada",
		Email:     "ada@example.org",
		Body:      "<script>alert(1)</script>",
		Lang:      "en",
		CreatedAt: time.Date(2027, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	req, err := ContactNotice(m, []string{"orga@colloque.example"})
	if err != nil {
		t.Fatalf("ContactNotice: %v", err)
	}

	if req.ReplyTo != "ada@example.org" {
		t.Errorf("ReplyTo = %q, want visitor address", req.ReplyTo)
	}
	if !strings.Contains(req.Subject, "Ada") {
		t.Errorf("Subject = %q, want sender name", req.Subject)
	}
	if !strings.Contains(req.HTML, "<blockquote>") {
		t.Errorf("HTML body lacks the quoted message: %s", req.HTML)
	}
	if strings.Contains(req.HTML, "<script>") {
		t.Errorf("HTML body was not escaped: %s", req.HTML)
	}
	if req.Category != "contact" {
		t.Errorf("Category = %q, want contact", req.Category)
	}
	if !strings.Contains(req.Text, m.Body) {
		t.Errorf("Text body missing message: %q", req.Text)
	}
}

func TestNoopSender_RecordsRequests(t *testing.T) {
	s := NewNoopSender()
	if _, err := s.Send(context.Background(), SendRequest{To: []string{"a@b.c"}, Subject: "x"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got := s.Sent(); len(got) != 1 || got[0].Subject != "x" {
		t.Errorf("Sent() = %+v", got)
	}
}

func TestResendSender_Params(t *testing.T) {
	s := NewResendSender("re_test", "Colloque <noreply@colloque.example>")

	p := s.params(SendRequest{To: []string{"a@b.c"}, Subject: "x", Category: "contact", ReplyTo: "v@b.c"})
	if p.From != "Colloque <noreply@colloque.example>" {
		t.Errorf("From = %q, want default sender", p.From)
	}
	if p.ReplyTo != "v@b.c" {
		t.Errorf("ReplyTo = %q", p.ReplyTo)
	}
	if len(p.Tags) != 1 || p.Tags[0].Name != "category" || p.Tags[0].Value != "contact" {
		t.Errorf("Tags = %+v", p.Tags)
	}

	p = s.params(SendRequest{To: []string{"a@b.c"}, From: "Other <o@b.c>"})
	if p.From != "Other <o@b.c>" || len(p.Tags) != 0 {
		t.Errorf("From/Tags = %q/%+v", p.From, p.Tags)
	}
}
