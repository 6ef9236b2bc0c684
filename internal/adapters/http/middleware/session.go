package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"colloque/internal/domain/secretseq"
	"colloque/internal/domain/view"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const viewContextKey contextKey = "view"

// ContactDraft is the contact form outcome carried across the post/redirect.
type ContactDraft struct {
	Status string
	Name   string
	Email  string
	Body   string
}

// ViewSession is one visitor's page session: the view controller plus the
// key listener of the page currently shown, if any.
type ViewSession struct {
	ID         string
	Controller *view.Controller

	mu         sync.Mutex
	listener   *secretseq.Listener
	listenerID string
	unlocked   bool
	notice     string
	draft      ContactDraft
	lastSeen   time.Time
}

// Relisten releases the current listener and attaches l for a new page.
// POST: returns the id the page must send with its keys
func (s *ViewSession) Relisten(l *secretseq.Listener) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		s.listener.Release()
	}
	s.listener = l
	s.listenerID = uuid.NewString()
	return s.listenerID
}

// Listener returns the listener registered under id.
// ok is false for a stale or unknown id.
func (s *ViewSession) Listener(id string) (*secretseq.Listener, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil || id == "" || id != s.listenerID {
		return nil, false
	}
	return s.listener, true
}

// ReleaseListener tears down the listener registered under id. An empty id
// releases whatever listener is attached.
// POST: returns false if id did not name the current listener
func (s *ViewSession) ReleaseListener(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil || (id != "" && id != s.listenerID) {
		return false
	}
	s.listener.Release()
	s.listener = nil
	s.listenerID = ""
	return true
}

// Unlock records a successful admin password check.
func (s *ViewSession) Unlock() {
	s.mu.Lock()
	s.unlocked = true
	s.mu.Unlock()
}

// Unlocked reports whether the admin password was accepted in this session.
func (s *ViewSession) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlocked
}

// SetNotice stores a one-off dashboard notice (a translation key).
func (s *ViewSession) SetNotice(key string) {
	s.mu.Lock()
	s.notice = key
	s.mu.Unlock()
}

// TakeNotice returns and clears the pending notice.
func (s *ViewSession) TakeNotice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.notice
	s.notice = ""
	return n
}

// SetDraft stores the contact form outcome for the next render.
func (s *ViewSession) SetDraft(d ContactDraft) {
	s.mu.Lock()
	s.draft = d
	s.mu.Unlock()
}

// TakeDraft returns and clears the stored contact form outcome.
func (s *ViewSession) TakeDraft() ContactDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draft
	s.draft = ContactDraft{}
	return d
}

func (s *ViewSession) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *ViewSession) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// ViewStore is an in-memory store of view sessions. Nothing in it is persisted.
type ViewStore struct {
	mu       sync.RWMutex
	sessions map[string]*ViewSession
	ttl      time.Duration
	now      func() time.Time
}

// DefaultViewTTL is how long an idle view session is kept.
const DefaultViewTTL = 30 * time.Minute

// NewViewStore creates a store whose sessions expire after ttl without requests.
func NewViewStore(ttl time.Duration) *ViewStore {
	if ttl <= 0 {
		ttl = DefaultViewTTL
	}
	return &ViewStore{
		sessions: make(map[string]*ViewSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create stores a new session around c and returns it.
// PRE: c is non-nil
// POST: session is retrievable by its ID
func (vs *ViewStore) Create(c *view.Controller) (*ViewSession, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	s := &ViewSession{ID: token, Controller: c, lastSeen: vs.now()}
	vs.mu.Lock()
	vs.sessions[token] = s
	vs.mu.Unlock()
	return s, nil
}

// Get retrieves a live session by token and marks it active.
// PRE: token is non-empty
// POST: Returns the session if it exists and has not idled out
func (vs *ViewStore) Get(token string) (*ViewSession, bool) {
	vs.mu.RLock()
	s, ok := vs.sessions[token]
	vs.mu.RUnlock()
	if !ok {
		return nil, false
	}
	now := vs.now()
	if now.Sub(s.idleSince()) > vs.ttl {
		vs.Delete(token)
		return nil, false
	}
	s.touch(now)
	return s, true
}

// Delete ends a session and releases its listener.
func (vs *ViewStore) Delete(token string) {
	vs.mu.Lock()
	s, ok := vs.sessions[token]
	delete(vs.sessions, token)
	vs.mu.Unlock()
	if ok {
		s.ReleaseListener("")
	}
}

// Len returns the number of live sessions.
func (vs *ViewStore) Len() int {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return len(vs.sessions)
}

// Sweep ends every session idle for longer than the TTL.
// POST: returns the number of sessions removed
func (vs *ViewStore) Sweep() int {
	cutoff := vs.now().Add(-vs.ttl)
	var stale []string
	vs.mu.RLock()
	for token, s := range vs.sessions {
		if s.idleSince().Before(cutoff) {
			stale = append(stale, token)
		}
	}
	vs.mu.RUnlock()
	for _, token := range stale {
		vs.Delete(token)
	}
	return len(stale)
}

// StartSweeper runs Sweep every interval until ctx is done.
func (vs *ViewStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := vs.Sweep(); n > 0 {
					slog.Debug("view_sessions_swept", "count", n, "live", vs.Len())
				}
			}
		}
	}()
}

const viewCookieName = "colloque_view"

// SecureCookies marks cookies Secure. Set it in production.
var SecureCookies = false

// Views returns middleware that attaches the visitor's view session to the
// request context, creating one with newController when the cookie is
// missing or stale.
func Views(store *ViewStore, newController func(r *http.Request) *view.Controller) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *ViewSession
			if cookie, err := r.Cookie(viewCookieName); err == nil && cookie.Value != "" {
				sess, _ = store.Get(cookie.Value)
			}
			if sess == nil {
				created, err := store.Create(newController(r))
				if err != nil {
					slog.Error("internal_error", "error", err.Error())
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				sess = created
				setViewCookie(w, sess.ID)
			}
			next.ServeHTTP(w, r.WithContext(ContextWithView(r.Context(), sess)))
		})
	}
}

// ViewFromContext extracts the view session from the request context.
func ViewFromContext(ctx context.Context) (*ViewSession, bool) {
	s, ok := ctx.Value(viewContextKey).(*ViewSession)
	return s, ok
}

// ContextWithView returns a context carrying s.
// Handlers under test use it to skip the cookie round trip.
func ContextWithView(ctx context.Context, s *ViewSession) context.Context {
	return context.WithValue(ctx, viewContextKey, s)
}

// setViewCookie sets a browser-session cookie: closing the browser ends the view.
func setViewCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     viewCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
