package view_test

import (
	"sync"
	"testing"

	"colloque/internal/domain/i18n"
	"colloque/internal/domain/secretseq"
	"colloque/internal/domain/view"
)

func TestNewController_Defaults(t *testing.T) {
	c := view.NewController("", "")
	got := c.Snapshot()
	want := view.State{Lang: i18n.FR, AdminVisible: false, Entry: view.EntryButton}
	if got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
	if c.Tree() != view.TreePublic {
		t.Errorf("Tree() = %s, want public", c.Tree())
	}
}

func TestController_SelectLanguageChangesOnlyLanguage(t *testing.T) {
	for _, lang := range i18n.Supported {
		t.Run(lang.String(), func(t *testing.T) {
			c := view.NewController(i18n.FR, view.EntrySequence)
			c.EnterAdmin()
			before := c.Snapshot()

			c.SelectLanguage(lang)
			after := c.Snapshot()

			if after.Lang != lang {
				t.Errorf("Lang = %s, want %s", after.Lang, lang)
			}
			before.Lang = lang
			if after != before {
				t.Errorf("state besides Lang changed: %+v -> %+v", before, after)
			}
		})
	}
}

func TestController_SelectLanguageIgnoresUnsupported(t *testing.T) {
	c := view.NewController(i18n.EN, view.EntryButton)
	c.SelectLanguage("de")
	if c.Snapshot().Lang != i18n.EN {
		t.Errorf("Lang = %s, want en", c.Snapshot().Lang)
	}
}

func TestController_AdminRoundTrip(t *testing.T) {
	c := view.NewController(i18n.EN, view.EntryButton)
	before := c.Snapshot()

	c.EnterAdmin()
	if c.Tree() != view.TreeAdmin {
		t.Fatalf("Tree() = %s after EnterAdmin", c.Tree())
	}
	c.ExitAdmin()

	if got := c.Snapshot(); got != before {
		t.Errorf("round trip state = %+v, want %+v", got, before)
	}
}

func TestController_DetectorTriggerEntersAdmin(t *testing.T) {
	c := view.NewController(i18n.FR, view.EntrySequence)
	d := secretseq.NewBufferDetector(secretseq.Options{OnTrigger: c.EnterAdmin})

	for _, k := range []string{"a", "d", "m", "i", "n"} {
		d.Feed(k)
	}
	if !c.Snapshot().AdminVisible {
		t.Error("AdminVisible = false after typing the token")
	}
	if d.Pending() != "" {
		t.Errorf("Pending() = %q, want empty", d.Pending())
	}
}

func TestController_ConcurrentAccess(t *testing.T) {
	c := view.NewController(i18n.FR, view.EntryButton)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); c.EnterAdmin() }()
		go func() { defer wg.Done(); c.SelectLanguage(i18n.EN) }()
		go func() { defer wg.Done(); _ = c.Snapshot() }()
	}
	wg.Wait()
	if got := c.Snapshot(); got.Lang != i18n.EN || !got.AdminVisible {
		t.Errorf("Snapshot() = %+v", got)
	}
}

func TestParseAdminEntry(t *testing.T) {
	tests := []struct {
		in      string
		want    view.AdminEntry
		wantErr bool
	}{
		{in: "button", want: view.EntryButton},
		{in: " Sequence ", want: view.EntrySequence},
		{in: "hidden", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := view.ParseAdminEntry(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAdminEntry(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAdminEntry(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
