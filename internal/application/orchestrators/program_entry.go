package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"colloque/internal/domain/program"
)

// ProgramStoreForOrchestrator defines the store interface needed by program entry orchestrators.
type ProgramStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (program.Entry, error)
	Save(ctx context.Context, e program.Entry) error
	Delete(ctx context.Context, id string) error
}

// --- Save Program Entry ---

// SaveProgramEntryInput carries input for the save orchestrator.
// An empty ID creates a new entry.
type SaveProgramEntryInput struct {
	ID      string
	Day     string
	Start   string
	End     string
	TitleFR string
	TitleEN string
	Speaker string
	Room    string
	Kind    string
}

// SaveProgramEntryDeps holds dependencies for SaveProgramEntry.
type SaveProgramEntryDeps struct {
	ProgramStore ProgramStoreForOrchestrator
	GenerateID   func() string
}

// ExecuteSaveProgramEntry validates and stores a program entry.
// PRE: input comes from the admin dashboard form
// POST: entry persisted with trimmed fields; a domain error is returned for invalid input
func ExecuteSaveProgramEntry(ctx context.Context, input SaveProgramEntryInput, deps SaveProgramEntryDeps) (program.Entry, error) {
	e := program.Entry{
		ID:      strings.TrimSpace(input.ID),
		Day:     strings.TrimSpace(input.Day),
		Start:   strings.TrimSpace(input.Start),
		End:     strings.TrimSpace(input.End),
		TitleFR: strings.TrimSpace(input.TitleFR),
		TitleEN: strings.TrimSpace(input.TitleEN),
		Speaker: strings.TrimSpace(input.Speaker),
		Room:    strings.TrimSpace(input.Room),
		Kind:    strings.TrimSpace(input.Kind),
	}
	if e.ID == "" {
		e.ID = deps.GenerateID()
	}

	if err := e.Validate(); err != nil {
		return program.Entry{}, err
	}
	if err := deps.ProgramStore.Save(ctx, e); err != nil {
		return program.Entry{}, fmt.Errorf("save program entry: %w", err)
	}

	slog.Info("program_event", "event", "entry_saved", "entry_id", e.ID, "day", e.Day, "start", e.Start)
	return e, nil
}

// --- Delete Program Entry ---

// DeleteProgramEntryInput carries input for the delete orchestrator.
type DeleteProgramEntryInput struct {
	ID string
}

// DeleteProgramEntryDeps holds dependencies for DeleteProgramEntry.
type DeleteProgramEntryDeps struct {
	ProgramStore ProgramStoreForOrchestrator
}

// ExecuteDeleteProgramEntry removes one entry after the admin confirmed it.
// PRE: ID names an existing entry
// POST: entry is gone; the deleted entry is returned for logging and display
func ExecuteDeleteProgramEntry(ctx context.Context, input DeleteProgramEntryInput, deps DeleteProgramEntryDeps) (program.Entry, error) {
	e, err := deps.ProgramStore.GetByID(ctx, input.ID)
	if err != nil {
		return program.Entry{}, err
	}
	if err := deps.ProgramStore.Delete(ctx, e.ID); err != nil {
		return program.Entry{}, fmt.Errorf("delete program entry: %w", err)
	}

	slog.Info("program_event", "event", "entry_deleted", "entry_id", e.ID, "title", e.TitleFR)
	return e, nil
}
