package email

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"colloque/internal/domain/contact"
)

// ContactNotice builds the notification sent to the organisers when a
// visitor submits the contact form. Replies go straight to the visitor.
func ContactNotice(m contact.Message, to []string) (SendRequest, error) {
	subject := fmt.Sprintf("[colloque] Message de %s", m.Name)

	var html strings.Builder
	err := h.Div(
		h.P(g.Textf("%s <%s> (%s) a écrit :", m.Name, m.Email, m.Lang)),
		h.BlockQuote(h.Pre(g.Text(m.Body))),
		h.P(h.Small(g.Text(m.CreatedAt.Format("2006-01-02 15:04 MST")))),
	).Render(&html)
	if err != nil {
		return SendRequest{}, fmt.Errorf("render contact notice: %w", err)
	}

	text := fmt.Sprintf("%s <%s> (%s) a écrit :\n\n%s\n", m.Name, m.Email, m.Lang, m.Body)

	return SendRequest{
		To:       to,
		Subject:  subject,
		HTML:     html.String(),
		Text:     text,
		ReplyTo:  m.Email,
		Category: "contact",
	}, nil
}
