// Package views renders the site with gomponents. Every renderer is a pure
// function of the language and the data it is handed.
package views

import (
	"bytes"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"colloque/internal/content"
	"colloque/internal/domain/contact"
	"colloque/internal/domain/i18n"
	"colloque/internal/domain/program"
	"colloque/internal/domain/view"
)

// CSRFFieldName is the form field gorilla/csrf reads the token from.
const CSRFFieldName = "gorilla.csrf.Token"

// Contact form outcomes shown above the form.
const (
	ContactSent  = "sent"
	ContactError = "error"
)

// PageData is everything a full page render needs.
type PageData struct {
	State     view.State
	Site      *content.Site
	Program   []program.Entry
	CSRFToken string
	Year      int
	Contact   ContactForm
	Admin     AdminData

	// ListenerID names the key listener the page's script feeds. Empty
	// outside sequence mode.
	ListenerID string
}

// ContactForm carries the contact form's last outcome and the values to refill.
type ContactForm struct {
	Status string
	Name   string
	Email  string
	Body   string
}

// AdminData is the dashboard's view of the store.
type AdminData struct {
	Messages     []contact.Message
	LockRequired bool
	Unlocked     bool
	Notice       string         // translation key of a one-off notice
	Confirm      *program.Entry // entry awaiting delete confirmation
}

// Mutable reports whether the dashboard may change data.
func (a AdminData) Mutable() bool {
	return !a.LockRequired || a.Unlocked
}

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Markdown renders trusted-layout, untrusted-content markdown.
func Markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return h.P(g.Text(src))
	}
	return g.Raw(buf.String())
}

// langAttrs tags a section with the language it was rendered in.
func langAttrs(lang i18n.Lang) g.Node {
	return g.Group([]g.Node{
		g.Attr("lang", lang.String()),
		g.Attr("data-lang", lang.String()),
	})
}

func csrfField(token string) g.Node {
	return h.Input(h.Type("hidden"), h.Name(CSRFFieldName), h.Value(token))
}

func field(label, name, typ, value string, required bool) g.Node {
	return h.Label(
		h.Span(g.Text(label)),
		h.Input(h.Type(typ), h.Name(name), h.Value(value), g.If(required, h.Required())),
	)
}
