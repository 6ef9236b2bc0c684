package program

import (
	"context"

	domain "colloque/internal/domain/program"
)

// Store persists program entries.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Entry, error)
	Save(ctx context.Context, value domain.Entry) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Entry, error)
	Count(ctx context.Context) (int, error)
}
