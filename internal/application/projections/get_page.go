package projections

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"colloque/internal/domain/contact"
	"colloque/internal/domain/program"
)

// DefaultMessageLimit is how many contact messages the dashboard lists.
const DefaultMessageLimit = 50

// PageProgramStore defines the store interface needed by this projection.
type PageProgramStore interface {
	List(ctx context.Context) ([]program.Entry, error)
}

// PageContactStore defines the store interface needed by this projection.
type PageContactStore interface {
	ListRecent(ctx context.Context, limit int) ([]contact.Message, error)
}

// GetPageInput selects what a page render needs beyond the program.
type GetPageInput struct {
	Admin        bool   // dashboard tree: load messages and the confirm target
	ConfirmID    string // entry awaiting delete confirmation, if any
	MessageLimit int
}

// GetPageDeps holds dependencies for the projection.
type GetPageDeps struct {
	ProgramStore PageProgramStore
	ContactStore PageContactStore
}

// PageResult is the stored data behind one page.
type PageResult struct {
	Program  []program.Entry
	Messages []contact.Message
	Confirm  *program.Entry
}

// QueryGetPage loads the program and, for the dashboard, recent messages.
// PRE: deps are non-nil
// POST: Program is sorted; Confirm is nil when ConfirmID names no entry
func QueryGetPage(ctx context.Context, input GetPageInput, deps GetPageDeps) (PageResult, error) {
	entries, err := deps.ProgramStore.List(ctx)
	if err != nil {
		return PageResult{}, fmt.Errorf("list program: %w", err)
	}
	program.Sort(entries)
	result := PageResult{Program: entries}

	if !input.Admin {
		return result, nil
	}

	limit := input.MessageLimit
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	result.Messages, err = deps.ContactStore.ListRecent(ctx, limit)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return PageResult{}, fmt.Errorf("list messages: %w", err)
	}

	if input.ConfirmID != "" {
		for i := range entries {
			if entries[i].ID == input.ConfirmID {
				e := entries[i]
				result.Confirm = &e
				break
			}
		}
	}
	return result, nil
}
