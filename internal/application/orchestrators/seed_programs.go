package orchestrators

import (
	"context"
	"log/slog"

	"colloque/internal/domain/program"
)

// ProgramStoreForSeed defines the store interface needed by SeedProgram.
type ProgramStoreForSeed interface {
	Save(ctx context.Context, e program.Entry) error
	Count(ctx context.Context) (int, error)
}

// SeedProgramDeps holds dependencies for SeedProgram.
type SeedProgramDeps struct {
	ProgramStore ProgramStoreForSeed
	GenerateID   func() string
}

// DefaultProgram is the schedule written on first start.
func DefaultProgram() []program.Entry {
	return []program.Entry{
		{Day: "2027-05-12", Start: "08:30", End: "09:15", Kind: program.KindBreak,
			TitleFR: "Accueil et café", TitleEN: "Registration and coffee", Room: "Hall"},
		{Day: "2027-05-12", Start: "09:15", End: "10:30", Kind: program.KindKeynote,
			TitleFR: "Conférence d'ouverture", TitleEN: "Opening keynote",
			Speaker: "Claire Moreau", Room: "Amphi A"},
		{Day: "2027-05-12", Start: "11:00", End: "12:30", Kind: program.KindSession,
			TitleFR: "Session 1 : méthodes", TitleEN: "Session 1: methods", Room: "Salle 101"},
		{Day: "2027-05-12", Start: "14:00", End: "15:30", Kind: program.KindPanel,
			TitleFR: "Table ronde : la science ouverte", TitleEN: "Panel: open science", Room: "Amphi A"},
		{Day: "2027-05-13", Start: "09:30", End: "12:00", Kind: program.KindWorkshop,
			TitleFR: "Atelier A", TitleEN: "Workshop A", Speaker: "Jonas Becker", Room: "Salle 204"},
		{Day: "2027-05-13", Start: "14:00", End: "15:00", Kind: program.KindKeynote,
			TitleFR: "Conférence de clôture", TitleEN: "Closing keynote",
			Speaker: "Amina Diallo", Room: "Amphi A"},
	}
}

// ExecuteSeedProgram writes the default schedule if the store is empty.
// PRE: store is reachable
// POST: store holds at least the default schedule; an existing schedule is left alone
func ExecuteSeedProgram(ctx context.Context, deps SeedProgramDeps) error {
	n, err := deps.ProgramStore.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil // Already seeded
	}

	entries := DefaultProgram()
	for _, e := range entries {
		e.ID = deps.GenerateID()
		if err := e.Validate(); err != nil {
			return err
		}
		if err := deps.ProgramStore.Save(ctx, e); err != nil {
			return err
		}
	}

	slog.Info("seed_event", "event", "program_seeded", "entries", len(entries))
	return nil
}
