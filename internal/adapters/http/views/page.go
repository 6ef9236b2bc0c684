package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"colloque/internal/domain/view"
)

// PublicTree composes every leaf section plus the admin entry point.
func PublicTree(d PageData) g.Node {
	lang := d.State.Lang
	return g.Group([]g.Node{
		Header(lang, d.Site),
		h.Main(
			Hero(lang, d.Site),
			Partners(lang, d.Site.Partners),
			About(lang, d.Site),
			Speakers(lang, d.Site.Speakers),
			Program(lang, d.Program),
			Gallery(lang, d.Site.Gallery),
			Contact(lang, d.Site.Contact, d.Contact, d.CSRFToken),
		),
		Footer(lang, d.Site, d.Year),
		AdminEntry(lang, d.State.Entry, d.ListenerID, d.CSRFToken),
	})
}

// Page renders the full document for the tree the state selects.
func Page(d PageData) g.Node {
	lang := d.State.Lang
	tree := PublicTree(d)
	if d.State.Tree() == view.TreeAdmin {
		tree = g.Group([]g.Node{Header(lang, d.Site), AdminTree(d)})
	}

	return h.Doctype(
		h.HTML(g.Attr("lang", lang.String()),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(d.Site.Name.In(lang))),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
			),
			h.Body(g.Attr("data-tree", d.State.Tree().String()),
				tree,
			),
		),
	)
}
