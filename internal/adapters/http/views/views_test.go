package views

import (
	"strings"
	"testing"
	"time"

	g "maragu.dev/gomponents"

	"colloque/internal/content"
	"colloque/internal/domain/contact"
	"colloque/internal/domain/i18n"
	"colloque/internal/domain/program"
	"colloque/internal/domain/view"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return b.String()
}

func sampleProgram() []program.Entry {
	return []program.Entry{
		{ID: "w", Day: "2027-05-13", Start: "09:30", End: "12:00", Kind: program.KindWorkshop,
			TitleFR: "Atelier A", TitleEN: "Workshop A"},
		{ID: "k", Day: "2027-05-12", Start: "09:15", End: "10:30", Kind: program.KindKeynote,
			TitleFR: "Conférence d'ouverture", TitleEN: "Opening keynote", Room: "Amphi A"},
	}
}

func pageData(state view.State) PageData {
	return PageData{
		State:     state,
		Site:      content.Default(),
		Program:   sampleProgram(),
		CSRFToken: "tok",
		Year:      2027,
	}
}

func TestLeaves_CarryLanguage(t *testing.T) {
	site := content.Default()
	for _, lang := range i18n.Supported {
		leaves := map[string]g.Node{
			"header":   Header(lang, site),
			"partners": Partners(lang, site.Partners),
			"hero":     Hero(lang, site),
			"about":    About(lang, site),
			"speakers": Speakers(lang, site.Speakers),
			"program":  Program(lang, sampleProgram()),
			"gallery":  Gallery(lang, site.Gallery),
			"contact":  Contact(lang, site.Contact, ContactForm{}, "tok"),
			"footer":   Footer(lang, site, 2027),
		}
		want := `lang="` + lang.String() + `" data-lang="` + lang.String() + `"`
		for name, leaf := range leaves {
			if got := render(t, leaf); !strings.Contains(got, want) {
				t.Errorf("%s(%s) missing %s", name, lang, want)
			}
		}
	}
}

func TestLeaves_TranslatedCopy(t *testing.T) {
	site := content.Default()
	fr := render(t, Hero(i18n.FR, site))
	en := render(t, Hero(i18n.EN, site))
	if !strings.Contains(fr, site.Hero.Title.FR) || strings.Contains(fr, site.Hero.Title.EN) {
		t.Error("French hero should carry only the French title")
	}
	if !strings.Contains(en, site.Hero.Title.EN) {
		t.Error("English hero should carry the English title")
	}
}

func TestProgram_SortedAndGrouped(t *testing.T) {
	out := render(t, Program(i18n.EN, sampleProgram()))
	keynote := strings.Index(out, "Opening keynote")
	workshop := strings.Index(out, "Workshop A")
	if keynote < 0 || workshop < 0 || keynote > workshop {
		t.Errorf("program not in schedule order: keynote@%d workshop@%d", keynote, workshop)
	}
	if !strings.Contains(out, "Wednesday, May 12, 2027") || !strings.Contains(out, "Thursday, May 13, 2027") {
		t.Error("program missing day headings")
	}
}

func TestProgram_Empty(t *testing.T) {
	out := render(t, Program(i18n.FR, nil))
	if !strings.Contains(out, i18n.T(i18n.FR).Get("program.empty")) {
		t.Errorf("empty program should say so, got %s", out)
	}
}

func TestMarkdown_EscapesRawHTML(t *testing.T) {
	out := render(t, Markdown("**bold** <script>alert(1)</script>"))
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("markdown not rendered: %s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("raw HTML passed through: %s", out)
	}
}

func TestDeleteConfirm_ClosedRendersNothing(t *testing.T) {
	d := DeleteConfirm{IsOpen: false, ProgramName: "Workshop A", Lang: i18n.EN}
	if got := render(t, d); got != "" {
		t.Errorf("closed dialog rendered %q", got)
	}
}

func TestDeleteConfirm_OpenShowsTargetAndControls(t *testing.T) {
	d := DeleteConfirm{IsOpen: true, ProgramName: "Workshop A", Action: DeletePath("w"), CSRFToken: "tok", Lang: i18n.EN}
	out := render(t, d)
	for _, want := range []string{
		"Workshop A",
		`value="cancel"`,
		`value="confirm"`,
		`action="/admin/programs/w/delete"`,
		`data-lang="en"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("open dialog missing %s", want)
		}
	}
}

func TestDeleteConfirm_CallbacksAreExclusive(t *testing.T) {
	tests := []struct {
		name        string
		act         func(d DeleteConfirm)
		wantCancel  int
		wantConfirm int
	}{
		{name: "cancel", act: DeleteConfirm.Cancel, wantCancel: 1},
		{name: "confirm", act: DeleteConfirm.Confirm, wantConfirm: 1},
		{name: "decide confirm", act: func(d DeleteConfirm) { d.Decide(DecisionConfirm) }, wantConfirm: 1},
		{name: "decide cancel", act: func(d DeleteConfirm) { d.Decide(DecisionCancel) }, wantCancel: 1},
		{name: "decide garbage", act: func(d DeleteConfirm) { d.Decide("maybe") }, wantCancel: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cancels, confirms int
			d := DeleteConfirm{
				IsOpen:    true,
				OnCancel:  func() { cancels++ },
				OnConfirm: func() { confirms++ },
			}
			tt.act(d)
			if cancels != tt.wantCancel || confirms != tt.wantConfirm {
				t.Errorf("cancel=%d confirm=%d, want %d/%d", cancels, confirms, tt.wantCancel, tt.wantConfirm)
			}
		})
	}
}

func TestDeleteConfirm_NilCallbacks(t *testing.T) {
	d := DeleteConfirm{IsOpen: true}
	d.Cancel()
	d.Confirm()
}

func TestPage_AdminRoundTripRestoresPublicTree(t *testing.T) {
	for _, entry := range []view.AdminEntry{view.EntryButton, view.EntrySequence} {
		c := view.NewController(i18n.EN, entry)
		before := render(t, Page(pageData(c.Snapshot())))

		c.EnterAdmin()
		during := render(t, Page(pageData(c.Snapshot())))
		if during == before {
			t.Fatalf("%s: admin tree rendered the same as public tree", entry)
		}
		if !strings.Contains(during, `data-tree="admin"`) {
			t.Errorf("%s: admin page not tagged admin", entry)
		}

		c.ExitAdmin()
		after := render(t, Page(pageData(c.Snapshot())))
		if after != before {
			t.Errorf("%s: round trip changed the public page", entry)
		}
	}
}

func TestPage_LanguageSelectionRetagsEveryLeaf(t *testing.T) {
	c := view.NewController(i18n.FR, view.EntryButton)
	c.SelectLanguage(i18n.EN)
	out := render(t, Page(pageData(c.Snapshot())))
	if strings.Contains(out, `data-lang="fr"`) {
		t.Error("a leaf is still tagged fr after selecting en")
	}
	if strings.Count(out, `data-lang="en"`) < 9 {
		t.Errorf("expected every leaf tagged en, got %d", strings.Count(out, `data-lang="en"`))
	}
	if !strings.Contains(out, `<html lang="en">`) {
		t.Error("document language not switched")
	}
}

func TestPublicTree_AdminEntryVariants(t *testing.T) {
	button := render(t, Page(pageData(view.State{Lang: i18n.FR, Entry: view.EntryButton})))
	if !strings.Contains(button, `action="/admin/enter"`) {
		t.Error("button variant lacks the admin control")
	}
	if strings.Contains(button, "keys.js") {
		t.Error("button variant should not listen for keys")
	}

	sd := pageData(view.State{Lang: i18n.FR, Entry: view.EntrySequence})
	sd.ListenerID = "l-1"
	seq := render(t, Page(sd))
	if strings.Contains(seq, `action="/admin/enter"`) {
		t.Error("sequence variant must not show an admin control")
	}
	if !strings.Contains(seq, `src="/static/keys.js"`) || !strings.Contains(seq, `data-listener="l-1"`) {
		t.Error("sequence variant lacks the key listener")
	}
}

func TestAdminTree_Locked(t *testing.T) {
	d := pageData(view.State{Lang: i18n.EN, AdminVisible: true})
	d.Admin = AdminData{
		LockRequired: true,
		Confirm:      &d.Program[0],
		Messages:     []contact.Message{{Name: "Ada", Email: "ada@example.org", Body: "secret", CreatedAt: time.Now()}},
	}
	out := render(t, AdminTree(d))
	if !strings.Contains(out, `action="/admin/unlock"`) {
		t.Error("locked dashboard lacks the unlock form")
	}
	for _, unwanted := range []string{`action="/admin/programs"`, "secret", "<dialog", "?confirm="} {
		if strings.Contains(out, unwanted) {
			t.Errorf("locked dashboard exposes %q", unwanted)
		}
	}
	if !strings.Contains(out, `action="/admin/exit"`) {
		t.Error("dashboard lacks the exit control")
	}
}

func TestAdminTree_UnlockedWithConfirm(t *testing.T) {
	d := pageData(view.State{Lang: i18n.EN, AdminVisible: true})
	d.Admin = AdminData{LockRequired: true, Unlocked: true, Confirm: &d.Program[0]}
	out := render(t, AdminTree(d))
	if !strings.Contains(out, "<dialog") || !strings.Contains(out, "Workshop A") {
		t.Error("dialog should be open for the entry awaiting confirmation")
	}
	if !strings.Contains(out, `href="/?confirm=k"`) {
		t.Error("delete links missing")
	}
	if !strings.Contains(out, i18n.T(i18n.EN).Get("admin.messages.empty")) {
		t.Error("empty message list not shown")
	}
}
