package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DSN returns the modernc sqlite connection string for a database file,
// with WAL, a busy timeout and foreign keys enabled.
func DSN(path string) string {
	return path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
}

// Open opens and pings the database at path.
// PRE: path is a writable file path or ":memory:"
// POST: Returns a live pool with the schema in place
func Open(path string) (*sql.DB, error) {
	dsn := DSN(path)
	if path == ":memory:" {
		dsn = path
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(8)
		db.SetMaxIdleConns(8)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	if err := InitDB(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables and indexes exist
func InitDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS program_entry (
		id TEXT PRIMARY KEY,
		day TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		title_fr TEXT NOT NULL,
		title_en TEXT NOT NULL,
		speaker TEXT NOT NULL DEFAULT '',
		room TEXT NOT NULL DEFAULT '',
		kind TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_program_entry_day ON program_entry(day, start_time);

	CREATE TABLE IF NOT EXISTS contact_message (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		body TEXT NOT NULL,
		lang TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_contact_message_created ON contact_message(created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
