package views

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"colloque/internal/domain/i18n"
)

// Decisions posted by the dialog's two buttons.
const (
	DecisionCancel  = "cancel"
	DecisionConfirm = "confirm"
)

// DeleteConfirm asks the admin to confirm deleting one program entry.
// It owns no state: the caller decides whether it is open and what the
// two callbacks do.
type DeleteConfirm struct {
	IsOpen      bool
	ProgramName string
	Action      string // form target receiving the decision
	CSRFToken   string
	Lang        i18n.Lang
	OnCancel    func()
	OnConfirm   func()
}

// Cancel runs OnCancel and nothing else.
func (d DeleteConfirm) Cancel() {
	if d.OnCancel != nil {
		d.OnCancel()
	}
}

// Confirm runs OnConfirm and nothing else.
func (d DeleteConfirm) Confirm() {
	if d.OnConfirm != nil {
		d.OnConfirm()
	}
}

// Decide dispatches a posted decision to Cancel or Confirm.
// Anything other than DecisionConfirm counts as a cancel.
func (d DeleteConfirm) Decide(decision string) {
	if decision == DecisionConfirm {
		d.Confirm()
		return
	}
	d.Cancel()
}

// Render implements g.Node. A closed dialog renders nothing.
func (d DeleteConfirm) Render(w io.Writer) error {
	if !d.IsOpen {
		return nil
	}
	t := i18n.T(d.Lang)
	return g.El("dialog",
		g.Attr("open"),
		h.ID("delete-confirm"),
		h.Class("dialog"),
		g.Attr("role", "alertdialog"),
		g.Attr("aria-labelledby", "delete-confirm-title"),
		langAttrs(d.Lang),
		h.H2(h.ID("delete-confirm-title"), g.Text(t.Get("dialog.delete.title"))),
		h.P(g.Text(t.Get("dialog.delete.body"))),
		h.P(h.Strong(h.Class("target"), g.Text(d.ProgramName))),
		h.Form(h.Method("post"), h.Action(d.Action),
			csrfField(d.CSRFToken),
			h.Button(h.Type("submit"), h.Name("decision"), h.Value(DecisionCancel), h.Class("btn"),
				g.Text(t.Get("dialog.delete.cancel"))),
			h.Button(h.Type("submit"), h.Name("decision"), h.Value(DecisionConfirm), h.Class("btn btn-danger"),
				g.Text(t.Get("dialog.delete.confirm"))),
		),
	).Render(w)
}
