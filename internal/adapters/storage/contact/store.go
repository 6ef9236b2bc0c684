package contact

import (
	"context"

	domain "colloque/internal/domain/contact"
)

// Store persists contact form submissions.
type Store interface {
	Save(ctx context.Context, value domain.Message) error
	Delete(ctx context.Context, id string) error
	ListRecent(ctx context.Context, limit int) ([]domain.Message, error)
}
