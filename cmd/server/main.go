package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	emailPkg "colloque/internal/adapters/email"
	web "colloque/internal/adapters/http"
	"colloque/internal/adapters/http/middleware"
	"colloque/internal/adapters/http/perf"
	"colloque/internal/adapters/storage"
	contactStore "colloque/internal/adapters/storage/contact"
	programStore "colloque/internal/adapters/storage/program"
	"colloque/internal/application/orchestrators"
	"colloque/internal/config"
	"colloque/internal/content"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	level := slog.LevelDebug
	if cfg.IsProduction() {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database with WAL mode, foreign keys, and busy timeout
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Performance instrumentation: wrap DB with timing
	metrics := perf.NewMetrics()
	timedDB := storage.NewTimedDB(db, metrics, cfg.SlowQuery())

	progStore := programStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		ProgramStore: progStore,
		ContactStore: contactStore.NewSQLiteStore(timedDB),
	}

	// Seed the default program on an empty database
	seedDeps := orchestrators.SeedProgramDeps{ProgramStore: progStore, GenerateID: uuid.NewString}
	if err := orchestrators.ExecuteSeedProgram(ctx, seedDeps); err != nil {
		log.Fatalf("failed to seed program: %v", err)
	}

	// Site copy: embedded catalog, or a JSON file reloaded on change
	site, err := content.NewManager(cfg.ContentFile)
	if err != nil {
		log.Fatalf("failed to load content: %v", err)
	}
	if err := site.Watch(ctx); err != nil {
		slog.Error("content_watch_failed", "error", err.Error())
	}

	// Configure email sender
	if cfg.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendKey, cfg.MailFrom))
		slog.Info("email_configured", "sender", "resend")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender())
		if cfg.IsProduction() {
			slog.Warn("email_configured", "sender", "noop", "note", "COLLOQUE_RESEND_KEY is not set; organisers get no notifications")
		} else {
			slog.Info("email_configured", "sender", "noop")
		}
	}

	csrfKey := cfg.CSRFKeyBytes()
	if csrfKey == nil {
		csrfKey = randomKey()
		slog.Warn("csrf_key_generated", "note", "forms break across restarts; set COLLOQUE_CSRF_KEY")
	}

	views := middleware.NewViewStore(cfg.ViewTTL)
	views.StartSweeper(ctx, time.Minute)

	handler := web.NewMux(stores, web.Options{
		Entry:             cfg.Entry,
		Detector:          cfg.Detector,
		AdminPasswordHash: cfg.AdminPasswordHash,
		CSRFKey:           csrfKey,
		Production:        cfg.IsProduction(),
		RateLimit:         cfg.RateLimit,
		SlowRequest:       cfg.SlowRequest(),
		NotifyTo:          cfg.MailTo,
		Metrics:           metrics,
		Views:             views,
		Content:           site.Site,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown_failed", "error", err.Error())
		}
	}()

	slog.Info("server_starting",
		"version", version,
		"addr", cfg.Addr,
		"env", cfg.Env,
		"admin_entry", string(cfg.Entry),
		"detector", string(cfg.Detector),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
	slog.Info("server_stopped")
}

// randomKey generates a per-process CSRF key for development.
func randomKey() []byte {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	return key
}
