package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"colloque/internal/domain/contact"
	"colloque/internal/domain/i18n"
	"colloque/internal/domain/program"
	"colloque/internal/domain/view"
)

// AdminEntry renders the way into the dashboard that the public tree offers:
// a low-emphasis button, or only the key listener script bound to listenerID.
func AdminEntry(lang i18n.Lang, entry view.AdminEntry, listenerID, csrfToken string) g.Node {
	if entry == view.EntrySequence {
		if listenerID == "" {
			return g.Group(nil)
		}
		return h.Script(h.Src("/static/keys.js"), h.Defer(), g.Attr("data-listener", listenerID))
	}
	t := i18n.T(lang)
	return h.Form(h.Method("post"), h.Action("/admin/enter"), h.Class("admin-entry"), langAttrs(lang),
		csrfField(csrfToken),
		h.Button(h.Type("submit"), h.Class("btn-quiet"), g.Text(t.Get("admin.enter"))),
	)
}

// DeletePath is where the dialog posts its decision for entry id.
func DeletePath(id string) string {
	return "/admin/programs/" + id + "/delete"
}

// AdminTree renders the dashboard that replaces the public site.
func AdminTree(d PageData) g.Node {
	lang := d.State.Lang
	t := i18n.T(lang)
	a := d.Admin

	dialog := DeleteConfirm{Lang: lang, CSRFToken: d.CSRFToken}
	if a.Confirm != nil && a.Mutable() {
		dialog.IsOpen = true
		dialog.ProgramName = a.Confirm.Title(lang)
		dialog.Action = DeletePath(a.Confirm.ID)
	}

	return h.Main(h.ID("admin"), langAttrs(lang),
		h.H1(g.Text(t.Get("admin.title"))),
		g.If(a.Notice != "", h.P(h.Class("flash flash-error"), g.Attr("role", "alert"), g.Text(t.Get(a.Notice)))),
		g.If(!a.Mutable(), unlockForm(t, d.CSRFToken)),

		h.Section(h.ID("admin-program"),
			h.H2(g.Text(t.Get("admin.program"))),
			programTable(lang, d.Program, a.Mutable()),
		),
		g.If(a.Mutable(), addEntryForm(t, d.CSRFToken)),
		g.If(a.Mutable(), messageList(t, a.Messages)),

		h.Form(h.Method("post"), h.Action("/admin/exit"), h.Class("admin-exit"),
			csrfField(d.CSRFToken),
			h.Button(h.Type("submit"), h.Class("btn"), g.Text(t.Get("admin.exit"))),
		),
		dialog,
	)
}

func unlockForm(t i18n.Translations, csrfToken string) g.Node {
	return h.Form(h.Method("post"), h.Action("/admin/unlock"), h.Class("admin-unlock"),
		h.P(g.Text(t.Get("admin.locked"))),
		csrfField(csrfToken),
		field(t.Get("admin.password"), "password", "password", "", true),
		h.Button(h.Type("submit"), g.Text(t.Get("admin.unlock"))),
	)
}

func programTable(lang i18n.Lang, entries []program.Entry, mutable bool) g.Node {
	t := i18n.T(lang)
	return h.Table(h.Class("admin-table"),
		h.THead(h.Tr(
			h.Th(g.Text(t.Get("program.day"))),
			h.Th(g.Text(t.Get("field.start"))),
			h.Th(g.Text(t.Get("field.title_fr"))),
			h.Th(g.Text(t.Get("field.kind"))),
			g.If(mutable, h.Th()),
		)),
		h.TBody(g.Map(entries, func(e program.Entry) g.Node {
			return h.Tr(h.ID("entry-"+e.ID),
				h.Td(g.Text(e.Day)),
				h.Td(g.Textf("%s - %s", e.Start, e.End)),
				h.Td(g.Text(e.Title(lang))),
				h.Td(g.Text(t.Get("kind."+e.Kind))),
				g.If(mutable, h.Td(h.A(h.Class("delete"), h.Href("/?confirm="+e.ID), g.Text(t.Get("admin.delete"))))),
			)
		})),
	)
}

func addEntryForm(t i18n.Translations, csrfToken string) g.Node {
	return h.Form(h.Method("post"), h.Action("/admin/programs"), h.Class("admin-add"),
		h.H2(g.Text(t.Get("admin.add"))),
		csrfField(csrfToken),
		field(t.Get("field.day"), "day", "date", "", true),
		field(t.Get("field.start"), "start", "time", "", true),
		field(t.Get("field.end"), "end", "time", "", true),
		field(t.Get("field.title_fr"), "title_fr", "text", "", true),
		field(t.Get("field.title_en"), "title_en", "text", "", true),
		field(t.Get("field.speaker"), "speaker", "text", "", false),
		field(t.Get("field.room"), "room", "text", "", false),
		h.Label(
			h.Span(g.Text(t.Get("field.kind"))),
			h.Select(h.Name("kind"),
				g.Map(program.ValidKinds, func(k string) g.Node {
					return h.Option(h.Value(k), g.Text(t.Get("kind."+k)))
				}),
			),
		),
		h.Button(h.Type("submit"), g.Text(t.Get("admin.add.submit"))),
	)
}

func messageList(t i18n.Translations, messages []contact.Message) g.Node {
	if len(messages) == 0 {
		return h.Section(h.ID("admin-messages"),
			h.H2(g.Text(t.Get("admin.messages"))),
			h.P(g.Text(t.Get("admin.messages.empty"))),
		)
	}
	return h.Section(h.ID("admin-messages"),
		h.H2(g.Text(t.Get("admin.messages"))),
		h.Ul(g.Map(messages, func(m contact.Message) g.Node {
			return h.Li(
				h.P(h.Strong(g.Text(m.Name)), g.Textf(" <%s> ", m.Email),
					h.Small(g.Text(m.CreatedAt.Format("2006-01-02 15:04")))),
				h.P(g.Text(m.Body)),
			)
		})),
	)
}
