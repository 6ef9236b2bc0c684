package web

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"colloque/internal/adapters/email"
	"colloque/internal/adapters/http/middleware"
	"colloque/internal/adapters/http/perf"
	contactStore "colloque/internal/adapters/storage/contact"
	programStore "colloque/internal/adapters/storage/program"
	"colloque/internal/content"
	"colloque/internal/domain/secretseq"
	"colloque/internal/domain/view"
)

//go:embed static
var staticFS embed.FS

// Stores holds all storage dependencies.
type Stores struct {
	ProgramStore programStore.Store
	ContactStore contactStore.Store
}

// Options configures the site's behaviour.
type Options struct {
	Entry             view.AdminEntry
	Detector          secretseq.Matcher
	AdminPasswordHash string // bcrypt; empty leaves the dashboard unlocked
	CSRFKey           []byte
	Production        bool
	RateLimit         int // requests per minute per client
	SlowRequest       time.Duration
	NotifyTo          []string

	Metrics *perf.Metrics         // nil records nothing
	Views   *middleware.ViewStore // nil gets a store with the default TTL
	Content func() *content.Site  // nil serves the embedded catalog
}

// keystrokeAllowance multiplies the page rate limit for /api/view/keys.
const keystrokeAllowance = 10

// Global stores instance (set by NewMux)
var stores *Stores

// Global view sessions (set by NewMux)
var viewStore *middleware.ViewStore

// Global metrics (set by NewMux)
var perfMetrics *perf.Metrics

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// siteContent returns the catalog to render. Tests may replace it.
var siteContent = content.Default

// Global options (set by NewMux)
var opts Options

// SetEmailSender sets the sender used to notify organisers of contact messages.
func SetEmailSender(sender email.Sender) {
	emailSender = sender
}

// NewMux wires HTTP handlers for the site.
func NewMux(s *Stores, o Options) http.Handler {
	stores = s
	opts = o
	perfMetrics = o.Metrics
	viewStore = o.Views
	if viewStore == nil {
		viewStore = middleware.NewViewStore(middleware.DefaultViewTTL)
	}
	if o.Content != nil {
		siteContent = o.Content
	}
	middleware.SecureCookies = o.Production

	pages := http.NewServeMux()
	registerRoutes(pages)

	mux := http.NewServeMux()
	static, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	mux.Handle("GET /metrics", perfMetrics.Handler())
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.Handle("/", middleware.Views(viewStore, newController)(pages))

	// Keystrokes arrive one request each, so they get their own budget.
	pageLimiter := middleware.NewRateLimiter(o.RateLimit, time.Minute)
	keyLimiter := middleware.NewRateLimiter(o.RateLimit*keystrokeAllowance, time.Minute)

	// Apply middleware: Timing -> RateLimit -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(o.CSRFKey, o.Production),
		middleware.RateLimit(pageLimiter, map[string]*middleware.RateLimiter{"/api/view/keys": keyLimiter}),
		middleware.Timing(perfMetrics, o.SlowRequest),
	)
}

// registerRoutes lists every route that runs inside a view session.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleHome)
	mux.HandleFunc("POST /contact", handleContact)

	mux.HandleFunc("POST /admin/enter", handleAdminEnter)
	mux.HandleFunc("POST /admin/exit", handleAdminExit)
	mux.HandleFunc("POST /admin/unlock", handleAdminUnlock)
	mux.HandleFunc("POST /admin/programs", handleAddProgramEntry)
	mux.HandleFunc("POST /admin/programs/{id}/delete", handleDeleteProgramEntry)

	mux.HandleFunc("POST /api/view/keys", handleViewKeys)
	mux.HandleFunc("POST /api/view/release", handleViewRelease)
}

// newController starts a view for a visitor without a session cookie.
func newController(r *http.Request) *view.Controller {
	return view.NewController(negotiateLanguage(r), opts.Entry)
}
