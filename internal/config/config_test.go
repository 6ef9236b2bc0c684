package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"colloque/internal/domain/secretseq"
	"colloque/internal/domain/view"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":8080" || cfg.DBPath != "colloque.db" {
		t.Errorf("Addr/DBPath = %q/%q", cfg.Addr, cfg.DBPath)
	}
	if cfg.Entry != view.EntryButton {
		t.Errorf("Entry = %q, want button", cfg.Entry)
	}
	if cfg.Detector != secretseq.MatchSequence {
		t.Errorf("Detector = %q, want sequence", cfg.Detector)
	}
	if cfg.ViewTTL != 30*time.Minute {
		t.Errorf("ViewTTL = %v, want 30m", cfg.ViewTTL)
	}
	if cfg.IsProduction() {
		t.Error("default env should be development")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("COLLOQUE_ADMIN_ENTRY", "Sequence")
	t.Setenv("COLLOQUE_ADMIN_DETECTOR", "buffer")
	t.Setenv("COLLOQUE_MAIL_TO", "a@colloque.example,b@colloque.example")
	t.Setenv("COLLOQUE_SLOW_REQUEST_MS", "500")
	t.Setenv("COLLOQUE_VIEW_TTL", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Entry != view.EntrySequence {
		t.Errorf("Entry = %q, want sequence", cfg.Entry)
	}
	if cfg.Detector != secretseq.MatchBuffer {
		t.Errorf("Detector = %q, want buffer", cfg.Detector)
	}
	if len(cfg.MailTo) != 2 || cfg.MailTo[1] != "b@colloque.example" {
		t.Errorf("MailTo = %v", cfg.MailTo)
	}
	if cfg.SlowRequest() != 500*time.Millisecond {
		t.Errorf("SlowRequest = %v", cfg.SlowRequest())
	}
	if cfg.ViewTTL != 5*time.Minute {
		t.Errorf("ViewTTL = %v", cfg.ViewTTL)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{name: "unknown env", env: map[string]string{"COLLOQUE_ENV": "staging"}, wantErr: ErrInvalidEnv},
		{name: "unknown admin entry", env: map[string]string{"COLLOQUE_ADMIN_ENTRY": "konami"}, wantErr: view.ErrInvalidEntry},
		{name: "unknown detector", env: map[string]string{"COLLOQUE_ADMIN_DETECTOR": "regex"}, wantErr: secretseq.ErrUnknownMatcher},
		{name: "production without csrf key", env: map[string]string{"COLLOQUE_ENV": "production"}, wantErr: ErrMissingCSRFKey},
		{name: "short csrf key", env: map[string]string{"COLLOQUE_CSRF_KEY": "abcd"}, wantErr: ErrInvalidCSRFKey},
		{name: "non-hex csrf key", env: map[string]string{"COLLOQUE_CSRF_KEY": strings.Repeat("zz", 32)}, wantErr: ErrInvalidCSRFKey},
		{name: "zero rate limit", env: map[string]string{"COLLOQUE_RATE_LIMIT": "0"}, wantErr: ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_ProductionWithKey(t *testing.T) {
	t.Setenv("COLLOQUE_ENV", "production")
	t.Setenv("COLLOQUE_CSRF_KEY", strings.Repeat("ab", 32))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false")
	}
	if len(cfg.CSRFKeyBytes()) != 32 {
		t.Errorf("CSRFKeyBytes() len = %d, want 32", len(cfg.CSRFKeyBytes()))
	}
}
