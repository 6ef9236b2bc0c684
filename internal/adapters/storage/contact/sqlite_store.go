package contact

import (
	"context"
	"time"

	"colloque/internal/adapters/storage"
	domain "colloque/internal/domain/contact"
)

const timeLayout = time.RFC3339

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Message to the database.
// PRE: entity has been validated
// POST: Message is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, m domain.Message) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_message (id, name, email, body, lang, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, email=excluded.email, body=excluded.body,
		   lang=excluded.lang, created_at=excluded.created_at`,
		m.ID, m.Name, m.Email, m.Body, m.Lang, m.CreatedAt.UTC().Format(timeLayout))
	return err
}

// Delete removes a Message from the database.
// PRE: id is non-empty
// POST: Message with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM contact_message WHERE id = ?`, id)
	return err
}

// ListRecent retrieves the newest messages first.
// PRE: limit > 0
// POST: Returns at most limit messages
func (s *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, body, lang, created_at
		 FROM contact_message ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Lang, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
