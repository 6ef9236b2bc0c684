// Package tui previews the site in a terminal. Real keystrokes drive the
// same view controller and secret-sequence detector the web pages use.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"colloque/internal/content"
	"colloque/internal/domain/i18n"
	"colloque/internal/domain/program"
	"colloque/internal/domain/secretseq"
	"colloque/internal/domain/view"
)

// Model is the bubbletea model of one preview session.
type Model struct {
	Controller *view.Controller
	Width      int
	Height     int

	site     *content.Site
	program  [][]program.Entry
	matcher  secretseq.Matcher
	listener *secretseq.Listener
	styles   styles
}

// NewModel starts a preview on the public tree. In sequence mode a key
// listener is attached right away.
func NewModel(site *content.Site, entries []program.Entry, c *view.Controller, m secretseq.Matcher) Model {
	sorted := make([]program.Entry, len(entries))
	copy(sorted, entries)
	program.Sort(sorted)

	model := Model{
		Controller: c,
		site:       site,
		program:    program.GroupByDay(sorted),
		matcher:    m,
		styles:     newStyles(DefaultTheme),
	}
	model.syncListener()
	return model
}

// Listening reports whether keys currently reach a detector.
func (m Model) Listening() bool {
	return m.listener != nil && m.listener.Active()
}

// syncListener keeps exactly one live listener while the public tree of a
// sequence-mode view is shown, and none otherwise.
func (m *Model) syncListener() {
	state := m.Controller.Snapshot()
	want := state.Entry == view.EntrySequence && !state.AdminVisible
	if want && !m.Listening() {
		d := secretseq.New(m.matcher, secretseq.Options{OnTrigger: m.Controller.EnterAdmin})
		m.listener = secretseq.Listen(d)
		return
	}
	if !want && m.listener != nil {
		m.listener.Release()
		m.listener = nil
	}
}

// ContentMsg swaps the site copy shown by the preview.
type ContentMsg struct {
	Site *content.Site
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.site.Name.In(m.Controller.Snapshot().Lang))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		return m, nil

	case ContentMsg:
		if msg.Site != nil {
			m.site = msg.Site
		}
		return m, nil

	case tea.KeyMsg:
		state := m.Controller.Snapshot()
		switch msg.String() {
		case "ctrl+c":
			if m.listener != nil {
				m.listener.Release()
				m.listener = nil
			}
			return m, tea.Quit
		case "ctrl+l":
			m.Controller.SelectLanguage(state.Lang.Other())
			return m, tea.SetWindowTitle(m.site.Name.In(state.Lang.Other()))
		}

		if state.AdminVisible {
			if msg.Type == tea.KeyEsc {
				m.Controller.ExitAdmin()
			}
		} else if state.Entry == view.EntryButton {
			if msg.String() == "ctrl+a" {
				m.Controller.EnterAdmin()
			}
		} else if m.listener != nil {
			for _, k := range keyNames(msg) {
				if triggered, _ := m.listener.Key(k); triggered {
					break
				}
			}
		}
		m.syncListener()
		return m, nil
	}
	return m, nil
}

// keyNames maps a key press to the names a browser keydown would report,
// so both front ends feed detectors the same way. Pasted or batched runes
// become one key each.
func keyNames(msg tea.KeyMsg) []string {
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]string, len(msg.Runes))
		for i, r := range msg.Runes {
			keys[i] = string(r)
		}
		return keys
	case tea.KeySpace:
		return []string{" "}
	case tea.KeyEnter:
		return []string{"Enter"}
	case tea.KeyTab:
		return []string{"Tab"}
	case tea.KeyBackspace:
		return []string{"Backspace"}
	}
	return []string{msg.String()}
}

// View implements tea.Model.
func (m Model) View() string {
	state := m.Controller.Snapshot()
	if state.AdminVisible {
		return m.adminView(state.Lang)
	}
	return m.publicView(state)
}

func (m Model) publicView(state view.State) string {
	lang := state.Lang
	t := i18n.T(lang)
	s := m.styles

	var b strings.Builder
	b.WriteString(s.title.Render(m.site.Name.In(lang)) + "\n")
	b.WriteString(s.tagline.Render(m.site.Tagline.In(lang)) + "\n")
	b.WriteString(s.muted.Render(m.site.Dates.In(lang)+" · "+m.site.Venue.In(lang)) + "\n")

	b.WriteString(s.section.Render(t.Get("speakers.title")) + "\n")
	for _, sp := range m.site.Speakers {
		fmt.Fprintf(&b, "  %s %s\n", sp.Name, s.muted.Render("("+sp.Affiliation.In(lang)+")"))
	}

	b.WriteString(s.section.Render(t.Get("program.title")) + "\n")
	b.WriteString(m.programLines(lang))

	hint := t.Get("tui.hint.public")
	if state.Entry == view.EntryButton {
		hint = t.Get("tui.hint.button") + " · " + hint
	}
	b.WriteString("\n" + s.muted.Render(hint))
	return m.frame(b.String())
}

func (m Model) adminView(lang i18n.Lang) string {
	t := i18n.T(lang)
	s := m.styles

	var b strings.Builder
	b.WriteString(s.banner.Render(t.Get("admin.title")) + "\n")
	b.WriteString(s.section.Render(t.Get("admin.program")) + "\n")
	b.WriteString(m.programLines(lang))
	b.WriteString("\n" + s.muted.Render(t.Get("tui.hint.admin")+" · "+t.Get("tui.hint.public")))
	return m.frame(b.String())
}

func (m Model) programLines(lang i18n.Lang) string {
	if len(m.program) == 0 {
		return "  " + m.styles.muted.Render(i18n.T(lang).Get("program.empty")) + "\n"
	}
	var b strings.Builder
	for _, day := range m.program {
		b.WriteString("  " + m.styles.day.Render(i18n.FormatDay(lang, day[0].Date())) + "\n")
		for _, e := range day {
			fmt.Fprintf(&b, "    %s-%s  %s\n", e.Start, e.End, e.Title(lang))
		}
	}
	return b.String()
}

func (m Model) frame(body string) string {
	if m.Width > 4 {
		return m.styles.frame.Width(m.Width - 2).Render(body)
	}
	return m.styles.frame.Render(body)
}
