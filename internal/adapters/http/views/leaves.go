package views

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"colloque/internal/content"
	"colloque/internal/domain/i18n"
	"colloque/internal/domain/program"
)

// Header renders the site title, section navigation and the language switch.
func Header(lang i18n.Lang, site *content.Site) g.Node {
	t := i18n.T(lang)
	return h.Header(h.ID("top"), h.Class("site-header"), langAttrs(lang),
		h.A(h.Href("/"), h.Class("brand"), g.Text(site.Name.In(lang))),
		h.Nav(g.Attr("aria-label", "main"),
			h.Ul(
				h.Li(h.A(h.Href("#about"), g.Text(t.Get("nav.about")))),
				h.Li(h.A(h.Href("#speakers"), g.Text(t.Get("nav.speakers")))),
				h.Li(h.A(h.Href("#program"), g.Text(t.Get("nav.program")))),
				h.Li(h.A(h.Href("#gallery"), g.Text(t.Get("nav.gallery")))),
				h.Li(h.A(h.Href("#contact"), g.Text(t.Get("nav.contact")))),
			),
		),
		h.Nav(h.Class("lang-switch"), g.Attr("aria-label", t.Get("nav.lang")),
			g.Map(i18n.Supported, func(l i18n.Lang) g.Node {
				return h.A(
					h.Href("/?lang="+l.String()),
					g.Attr("hreflang", l.String()),
					g.If(l == lang, g.Attr("aria-current", "true")),
					g.Text(t.Get("lang."+l.String())),
				)
			}),
		),
	)
}

// Partners renders the sponsor logos.
func Partners(lang i18n.Lang, partners []content.Partner) g.Node {
	t := i18n.T(lang)
	return h.Section(h.ID("partners"), langAttrs(lang),
		h.H2(g.Text(t.Get("partners.title"))),
		h.Ul(h.Class("partners"),
			g.Map(partners, func(p content.Partner) g.Node {
				return h.Li(h.A(h.Href(p.URL), h.Rel("noopener"),
					h.Img(h.Src(p.Logo), h.Alt(p.Name)),
				))
			}),
		),
	)
}

// Hero renders the headline banner.
func Hero(lang i18n.Lang, site *content.Site) g.Node {
	t := i18n.T(lang)
	return h.Section(h.ID("hero"), langAttrs(lang),
		h.H1(g.Text(site.Hero.Title.In(lang))),
		h.P(h.Class("subtitle"), g.Text(site.Hero.Subtitle.In(lang))),
		h.P(h.Class("when-where"), g.Textf("%s · %s", site.Dates.In(lang), site.Venue.In(lang))),
		h.Div(h.Class("actions"),
			g.If(site.Hero.RegisterURL != "",
				h.A(h.Class("btn btn-primary"), h.Href(site.Hero.RegisterURL), g.Text(t.Get("hero.register")))),
			h.A(h.Class("btn"), h.Href("#program"), g.Text(t.Get("hero.program"))),
		),
	)
}

// About renders the conference description.
func About(lang i18n.Lang, site *content.Site) g.Node {
	t := i18n.T(lang)
	return h.Section(h.ID("about"), langAttrs(lang),
		h.H2(g.Text(t.Get("about.title"))),
		h.Div(h.Class("prose"), Markdown(site.About.In(lang))),
	)
}

// Speakers renders the invited speakers.
func Speakers(lang i18n.Lang, speakers []content.Speaker) g.Node {
	t := i18n.T(lang)
	return h.Section(h.ID("speakers"), langAttrs(lang),
		h.H2(g.Text(t.Get("speakers.title"))),
		h.Ul(h.Class("speakers"),
			g.Map(speakers, func(s content.Speaker) g.Node {
				return h.Li(h.Class("speaker"),
					g.If(s.Photo != "", h.Img(h.Src(s.Photo), h.Alt(s.Name))),
					h.H3(g.Text(s.Name)),
					h.P(h.Class("affiliation"), g.Text(s.Affiliation.In(lang))),
					h.Div(h.Class("bio"), Markdown(s.Bio.In(lang))),
				)
			}),
		),
	)
}

// Program renders the schedule grouped by day.
func Program(lang i18n.Lang, entries []program.Entry) g.Node {
	t := i18n.T(lang)
	if len(entries) == 0 {
		return h.Section(h.ID("program"), langAttrs(lang),
			h.H2(g.Text(t.Get("program.title"))),
			h.P(h.Class("empty"), g.Text(t.Get("program.empty"))),
		)
	}

	sorted := append([]program.Entry(nil), entries...)
	program.Sort(sorted)

	return h.Section(h.ID("program"), langAttrs(lang),
		h.H2(g.Text(t.Get("program.title"))),
		g.Map(program.GroupByDay(sorted), func(day []program.Entry) g.Node {
			return h.Div(h.Class("program-day"),
				h.H3(g.Text(i18n.FormatDay(lang, day[0].Date()))),
				h.Table(
					h.TBody(g.Map(day, func(e program.Entry) g.Node {
						return h.Tr(g.Attr("data-kind", e.Kind),
							h.Td(h.Class("time"), g.Textf("%s - %s", e.Start, e.End)),
							h.Td(h.Strong(g.Text(e.Title(lang))),
								g.If(e.Speaker != "", h.Span(h.Class("speaker"), g.Text(" "+e.Speaker)))),
							h.Td(g.If(e.Room != "", g.Textf("%s %s", t.Get("program.room"), e.Room))),
							h.Td(h.Class("kind"), g.Text(t.Get("kind."+e.Kind))),
						)
					})),
				),
			)
		}),
	)
}

// Gallery renders the photo gallery.
func Gallery(lang i18n.Lang, images []content.Image) g.Node {
	t := i18n.T(lang)
	return h.Section(h.ID("gallery"), langAttrs(lang),
		h.H2(g.Text(t.Get("gallery.title"))),
		h.Div(h.Class("gallery"),
			g.Map(images, func(img content.Image) g.Node {
				return h.Figure(
					h.Img(h.Src(img.Src), h.Alt(img.Alt.In(lang)), g.Attr("loading", "lazy")),
					h.FigCaption(g.Text(img.Alt.In(lang))),
				)
			}),
		),
	)
}

// Contact renders the organisers' details and the contact form.
func Contact(lang i18n.Lang, c content.Contact, form ContactForm, csrfToken string) g.Node {
	t := i18n.T(lang)
	status := g.Group(nil)
	switch form.Status {
	case ContactSent:
		status = g.Group([]g.Node{h.P(h.Class("flash flash-ok"), g.Attr("role", "status"), g.Text(t.Get("contact.sent")))})
	case ContactError:
		status = g.Group([]g.Node{h.P(h.Class("flash flash-error"), g.Attr("role", "alert"), g.Text(t.Get("contact.error")))})
	}

	return h.Section(h.ID("contact"), langAttrs(lang),
		h.H2(g.Text(t.Get("contact.title"))),
		h.P(g.Text(t.Get("contact.intro"))),
		status,
		h.Form(h.Method("post"), h.Action("/contact"), h.Class("contact-form"),
			csrfField(csrfToken),
			h.Input(h.Type("hidden"), h.Name("lang"), h.Value(lang.String())),
			field(t.Get("contact.name"), "name", "text", form.Name, true),
			field(t.Get("contact.email"), "email", "email", form.Email, true),
			h.Label(
				h.Span(g.Text(t.Get("contact.body"))),
				h.Textarea(h.Name("body"), g.Attr("rows", "5"), h.Required(), g.Text(form.Body)),
			),
			h.Button(h.Type("submit"), g.Text(t.Get("contact.send"))),
		),
		g.El("address",
			g.Text(c.Address.In(lang)),
			h.Br(),
			h.A(h.Href(fmt.Sprintf("mailto:%s", c.Email)), g.Text(c.Email)),
		),
	)
}

// Footer renders the copyright line.
func Footer(lang i18n.Lang, site *content.Site, year int) g.Node {
	t := i18n.T(lang)
	return h.Footer(h.Class("site-footer"), langAttrs(lang),
		h.P(g.Textf("© %d %s. %s", year, site.Organiser, t.Get("footer.rights"))),
		h.P(h.Small(g.Text(site.Name.In(lang)))),
	)
}
