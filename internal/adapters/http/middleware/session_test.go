package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"colloque/internal/domain/i18n"
	"colloque/internal/domain/secretseq"
	"colloque/internal/domain/view"
)

func newController(*http.Request) *view.Controller {
	return view.NewController(i18n.FR, view.EntrySequence)
}

func newListener(c *view.Controller) *secretseq.Listener {
	return secretseq.Listen(secretseq.NewSequenceDetector(secretseq.Options{OnTrigger: c.EnterAdmin}))
}

func TestViews_CreatesSessionAndReusesIt(t *testing.T) {
	store := NewViewStore(time.Minute)
	var seen *ViewSession
	handler := Views(store, newController)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := ViewFromContext(r.Context())
		if !ok {
			t.Fatal("no view session in context")
		}
		seen = s
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != viewCookieName {
		t.Fatalf("cookies = %v, want one %s cookie", cookies, viewCookieName)
	}
	if cookies[0].MaxAge != 0 || !cookies[0].HttpOnly {
		t.Errorf("view cookie should be an HttpOnly browser-session cookie: %+v", cookies[0])
	}
	first := seen

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if seen != first {
		t.Error("second request got a different session")
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Error("existing session should not be re-issued")
	}
	if store.Len() != 1 {
		t.Errorf("store.Len() = %d, want 1", store.Len())
	}
}

func TestViews_UnknownCookieStartsFresh(t *testing.T) {
	store := NewViewStore(time.Minute)
	handler := Views(store, newController)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: viewCookieName, Value: "forged"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if len(rr.Result().Cookies()) != 1 {
		t.Error("unknown token should get a new session cookie")
	}
}

func TestViewStore_SweepReleasesIdleSessions(t *testing.T) {
	store := NewViewStore(time.Minute)
	now := time.Date(2027, 5, 12, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	c := view.NewController(i18n.FR, view.EntrySequence)
	s, err := store.Create(c)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	l := newListener(c)
	s.Relisten(l)

	now = now.Add(30 * time.Second)
	if n := store.Sweep(); n != 0 {
		t.Fatalf("Sweep() before TTL removed %d", n)
	}

	now = now.Add(2 * time.Minute)
	if n := store.Sweep(); n != 1 {
		t.Fatalf("Sweep() after TTL removed %d, want 1", n)
	}
	if l.Active() {
		t.Error("listener still active after its session was swept")
	}
	if _, ok := store.Get(s.ID); ok {
		t.Error("swept session still retrievable")
	}
}

func TestViewStore_GetExpires(t *testing.T) {
	store := NewViewStore(time.Minute)
	now := time.Date(2027, 5, 12, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	s, _ := store.Create(view.NewController(i18n.FR, view.EntryButton))
	now = now.Add(50 * time.Second)
	if _, ok := store.Get(s.ID); !ok {
		t.Fatal("session expired early")
	}
	// Get refreshed lastSeen, so another 50s is still inside the TTL.
	now = now.Add(50 * time.Second)
	if _, ok := store.Get(s.ID); !ok {
		t.Fatal("activity did not extend the session")
	}
	now = now.Add(61 * time.Second)
	if _, ok := store.Get(s.ID); ok {
		t.Error("idle session was not expired")
	}
}

func TestViewSession_RelistenScopesKeysToPage(t *testing.T) {
	c := view.NewController(i18n.FR, view.EntrySequence)
	s := &ViewSession{Controller: c}

	first := newListener(c)
	id1 := s.Relisten(first)
	second := newListener(c)
	id2 := s.Relisten(second)

	if first.Active() {
		t.Error("a new page must release the previous page's listener")
	}
	if _, ok := s.Listener(id1); ok {
		t.Error("stale listener id still resolves")
	}
	if l, ok := s.Listener(id2); !ok || l != second {
		t.Error("current listener id does not resolve")
	}

	// A late release from the old page must not tear down the new one.
	if s.ReleaseListener(id1) {
		t.Error("stale release accepted")
	}
	if !second.Active() {
		t.Error("stale release tore down the current listener")
	}
	if !s.ReleaseListener(id2) || second.Active() {
		t.Error("release of the current listener failed")
	}
}

func TestViewSession_Flashes(t *testing.T) {
	s := &ViewSession{}
	s.SetNotice("admin.invalid")
	if got := s.TakeNotice(); got != "admin.invalid" {
		t.Errorf("TakeNotice() = %q", got)
	}
	if got := s.TakeNotice(); got != "" {
		t.Errorf("notice not cleared: %q", got)
	}

	s.SetDraft(ContactDraft{Status: "error", Name: "Ada"})
	if d := s.TakeDraft(); d.Name != "Ada" {
		t.Errorf("TakeDraft() = %+v", d)
	}
	if d := s.TakeDraft(); d != (ContactDraft{}) {
		t.Errorf("draft not cleared: %+v", d)
	}

	if s.Unlocked() {
		t.Error("new session should be locked")
	}
	s.Unlock()
	if !s.Unlocked() {
		t.Error("Unlock() had no effect")
	}
}
