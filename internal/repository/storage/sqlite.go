package storage

import (
	"context"
	"database/sql"
	"fmt"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

func (that *Storage) Init(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS words (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			word       TEXT NOT NULL,
			hint       TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			category   TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS words_difficulty_category ON words (difficulty, category)`,
	}

	for _, query := range queries {
		if _, err := that.Connection.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("can't create table: %w", err)
		}
	}

	return nil
}

// Seed - fills an empty word bank with the built-in list. A non-empty table is left alone.
func (that *Storage) Seed(ctx context.Context) (int, error) {
	var count int
	if err := that.Connection.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count); err != nil {
		return 0, fmt.Errorf("can't count words: %w", err)
	}

	if count > 0 {
		return 0, nil
	}

	tx, err := that.Connection.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("can't begin seed: %w", err)
	}
	defer tx.Rollback() //nolint: errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (word, hint, difficulty, category) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("can't prepare seed: %w", err)
	}
	defer stmt.Close()

	for _, word := range seedWords {
		if _, err = stmt.ExecContext(ctx, word.Text, word.Hint, string(word.Difficulty), string(word.Category)); err != nil {
			return 0, fmt.Errorf("can't seed word %q: %w", word.Text, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("can't commit seed: %w", err)
	}

	return len(seedWords), nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
