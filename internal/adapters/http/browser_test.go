//go:build browser

package web_test

import (
	"context"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	web "colloque/internal/adapters/http"
	"colloque/internal/adapters/http/middleware"
	"colloque/internal/adapters/storage"
	contactStore "colloque/internal/adapters/storage/contact"
	programStore "colloque/internal/adapters/storage/program"
	"colloque/internal/application/orchestrators"
	"colloque/internal/domain/secretseq"
	"colloque/internal/domain/view"
)

// testApp holds the running test server and Playwright handles.
type testApp struct {
	BaseURL string
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// newTestApp wires the site over a temp SQLite database and starts a browser.
func newTestApp(t *testing.T, entry view.AdminEntry) *testApp {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	progStore := programStore.NewSQLiteStore(db)
	if err := orchestrators.ExecuteSeedProgram(context.Background(), orchestrators.SeedProgramDeps{
		ProgramStore: progStore,
		GenerateID:   uuid.NewString,
	}); err != nil {
		t.Fatalf("failed to seed program: %v", err)
	}

	key := make([]byte, 32)
	rand.Read(key)
	handler := web.NewMux(&web.Stores{
		ProgramStore: progStore,
		ContactStore: contactStore.NewSQLiteStore(db),
	}, web.Options{
		Entry:     entry,
		Detector:  secretseq.MatchSequence,
		CSRFKey:   key,
		RateLimit: 10000,
		Views:     middleware.NewViewStore(middleware.DefaultViewTTL),
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}
	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
	})

	return &testApp{BaseURL: srv.URL, PW: pw, Browser: browser}
}

// newPage opens a tab in a fresh browser context, so each page is a new visitor.
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	ctx, err := a.Browser.NewContext()
	if err != nil {
		t.Fatalf("failed to create context: %v", err)
	}
	page, err := ctx.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { ctx.Close() })
	return page
}

func (a *testApp) open(t *testing.T, page playwright.Page, path string) {
	t.Helper()
	resp, err := page.Goto(a.BaseURL + path)
	if err != nil {
		t.Fatalf("goto %s: %v", path, err)
	}
	if resp.Status() != http.StatusOK {
		t.Fatalf("goto %s: status %d", path, resp.Status())
	}
}

func treeOf(t *testing.T, page playwright.Page) string {
	t.Helper()
	tree, err := page.Locator("body").GetAttribute("data-tree")
	if err != nil {
		t.Fatalf("read data-tree: %v", err)
	}
	return tree
}

func TestBrowser_SecretWordRevealsDashboard(t *testing.T) {
	app := newTestApp(t, view.EntrySequence)
	page := app.newPage(t)
	app.open(t, page, "/")

	if n, _ := page.Locator("form.admin-entry").Count(); n != 0 {
		t.Fatal("sequence variant shows an admin control")
	}

	if err := page.Keyboard().Type("admin"); err != nil {
		t.Fatalf("type: %v", err)
	}
	if err := page.Locator(`body[data-tree="admin"]`).WaitFor(); err != nil {
		t.Fatalf("dashboard never appeared: %v", err)
	}

	if err := page.Locator("form.admin-exit button").Click(); err != nil {
		t.Fatalf("exit: %v", err)
	}
	if tree := treeOf(t, page); tree != "public" {
		t.Errorf("tree after exit = %q, want public", tree)
	}
}

func TestBrowser_TypingInFormsIsIgnored(t *testing.T) {
	app := newTestApp(t, view.EntrySequence)
	page := app.newPage(t)
	app.open(t, page, "/")

	if err := page.Locator(`#contact input[name="name"]`).PressSequentially("admin"); err != nil {
		t.Fatalf("type: %v", err)
	}
	page.WaitForTimeout(300)
	app.open(t, page, "/")
	if tree := treeOf(t, page); tree != "public" {
		t.Errorf("tree = %q, want public", tree)
	}
}

func TestBrowser_LanguageSwitchAndDeleteDialog(t *testing.T) {
	app := newTestApp(t, view.EntryButton)
	page := app.newPage(t)
	app.open(t, page, "/?lang=fr")

	if err := page.Locator(`.lang-switch a[hreflang="en"]`).Click(); err != nil {
		t.Fatalf("switch language: %v", err)
	}
	if lang, _ := page.Locator("html").GetAttribute("lang"); lang != "en" {
		t.Fatalf("html lang = %q, want en", lang)
	}

	if err := page.Locator("form.admin-entry button").Click(); err != nil {
		t.Fatalf("enter admin: %v", err)
	}
	rows := page.Locator(".admin-table tbody tr")
	before, _ := rows.Count()
	if before == 0 {
		t.Fatal("seeded program missing from the dashboard")
	}

	if err := rows.First().Locator("a.delete").Click(); err != nil {
		t.Fatalf("open dialog: %v", err)
	}
	if err := page.Locator(`#delete-confirm button[value="cancel"]`).Click(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if n, _ := rows.Count(); n != before {
		t.Fatalf("rows after cancel = %d, want %d", n, before)
	}

	if err := rows.First().Locator("a.delete").Click(); err != nil {
		t.Fatalf("reopen dialog: %v", err)
	}
	if err := page.Locator(`#delete-confirm button[value="confirm"]`).Click(); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if n, _ := rows.Count(); n != before-1 {
		t.Errorf("rows after confirm = %d, want %d", n, before-1)
	}
}
