package program

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"colloque/internal/adapters/storage"
	domain "colloque/internal/domain/program"
)

const entryColumns = "id, day, start_time, end_time, title_fr, title_en, speaker, room, kind"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new program entry store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (domain.Entry, error) {
	var e domain.Entry
	err := row.Scan(&e.ID, &e.Day, &e.Start, &e.End, &e.TitleFR, &e.TitleEN, &e.Speaker, &e.Room, &e.Kind)
	return e, err
}

// GetByID retrieves an Entry by its ID.
// PRE: id is non-empty
// POST: Returns the entry or an error wrapping sql.ErrNoRows if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Entry, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+entryColumns+" FROM program_entry WHERE id = ?", id)
	entity, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Entry{}, fmt.Errorf("program entry not found: %w", err)
	}
	return entity, err
}

// Save persists an Entry to the database.
// PRE: entity has been validated
// POST: Entry is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO program_entry (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET day=excluded.day, start_time=excluded.start_time,
			end_time=excluded.end_time, title_fr=excluded.title_fr, title_en=excluded.title_en,
			speaker=excluded.speaker, room=excluded.room, kind=excluded.kind`,
		entity.ID, entity.Day, entity.Start, entity.End, entity.TitleFR, entity.TitleEN,
		entity.Speaker, entity.Room, entity.Kind,
	)
	return err
}

// Delete removes an Entry from the database.
// PRE: id is non-empty
// POST: Entry is removed; an error wrapping sql.ErrNoRows if nothing matched
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM program_entry WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("program entry not found: %w", sql.ErrNoRows)
	}
	return nil
}

// List retrieves all entries in schedule order.
// POST: Returns entries ordered by day, start time and French title
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM program_entry ORDER BY day, start_time, title_fr")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Entry
	for rows.Next() {
		entity, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the number of stored entries.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM program_entry").Scan(&n)
	return n, err
}
