// Command preview renders the site in a terminal and drives the admin entry
// with real keystrokes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"colloque/internal/adapters/storage"
	programStore "colloque/internal/adapters/storage/program"
	"colloque/internal/adapters/tui"
	"colloque/internal/application/orchestrators"
	"colloque/internal/config"
	"colloque/internal/content"
	"colloque/internal/domain/i18n"
	"colloque/internal/domain/program"
	"colloque/internal/domain/view"
)

func main() {
	var langTag string
	var logFile string
	flag.StringVar(&langTag, "lang", "fr", "initial language (fr or en)")
	flag.StringVar(&logFile, "log", "", "write debug logs to this file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	lang, err := i18n.Parse(langTag)
	if err != nil {
		log.Fatalf("invalid -lang: %v", err)
	}

	entries, err := loadProgram(context.Background(), cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to load program: %v", err)
	}

	site, err := content.NewManager(cfg.ContentFile)
	if err != nil {
		log.Fatalf("failed to load content: %v", err)
	}

	// The alt screen owns the terminal; logs go to a file or nowhere.
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "preview")
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	model := tui.NewModel(site.Site(), entries, view.NewController(lang, cfg.Entry), cfg.Detector)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Edits to the content file show up without restarting the preview.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	site.SetOnChange(func(s *content.Site) { p.Send(tui.ContentMsg{Site: s}) })
	if err := site.Watch(ctx); err != nil {
		slog.Warn("content_watch_failed", "error", err.Error())
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "preview failed: %v\n", err)
		os.Exit(1)
	}
}

// loadProgram reads the program from an existing database, or falls back to
// the default program when no database file exists yet.
func loadProgram(ctx context.Context, path string) ([]program.Entry, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return orchestrators.DefaultProgram(), nil
	}
	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return programStore.NewSQLiteStore(db).List(ctx)
}
