package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

type WordRepository interface {
	FetchRandomWord(ctx context.Context, difficulty entity.Difficulty, category entity.Category) (entity.Word, error)
	ListByConfig(ctx context.Context, config entity.RoundConfig) ([]entity.Word, error)
	Count(ctx context.Context, config entity.RoundConfig) (int, error)
	Save(ctx context.Context, word entity.Word) error
}

type dbWord struct {
	conn *sql.DB
}

func NewWordRepository(conn *sql.DB) WordRepository {
	return &dbWord{
		conn: conn,
	}
}

func (that *dbWord) FetchRandomWord(ctx context.Context, difficulty entity.Difficulty, category entity.Category) (entity.Word, error) {
	query := `SELECT word, hint FROM words WHERE difficulty = ? AND category = ? ORDER BY RANDOM() LIMIT 1`

	word := entity.Word{Difficulty: difficulty, Category: category}

	err := that.conn.QueryRowContext(ctx, query, string(difficulty), string(category)).Scan(&word.Text, &word.Hint)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Word{}, fmt.Errorf("%w: %s / %s", apperror.ErrWordNotFound, difficulty, category)
	}
	if err != nil {
		return entity.Word{}, fmt.Errorf("%w: can't fetch word: %w", apperror.ErrRepositoryUnavailable, err)
	}

	return word.Normalize(), nil
}

func (that *dbWord) ListByConfig(ctx context.Context, config entity.RoundConfig) ([]entity.Word, error) {
	query := `SELECT word, hint FROM words WHERE difficulty = ? AND category = ? ORDER BY id`

	rows, err := that.conn.QueryContext(ctx, query, string(config.Difficulty), string(config.Category))
	if err != nil {
		return nil, fmt.Errorf("%w: can't list words: %w", apperror.ErrRepositoryUnavailable, err)
	}
	defer rows.Close()

	var words []entity.Word
	for rows.Next() {
		word := entity.Word{Difficulty: config.Difficulty, Category: config.Category}
		if err = rows.Scan(&word.Text, &word.Hint); err != nil {
			return nil, fmt.Errorf("%w: can't scan word: %w", apperror.ErrRepositoryUnavailable, err)
		}

		words = append(words, word.Normalize())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: can't list words: %w", apperror.ErrRepositoryUnavailable, err)
	}

	return words, nil
}

func (that *dbWord) Count(ctx context.Context, config entity.RoundConfig) (int, error) {
	query := `SELECT COUNT(*) FROM words WHERE difficulty = ? AND category = ?`

	var count int
	if err := that.conn.QueryRowContext(ctx, query, string(config.Difficulty), string(config.Category)).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: can't count words: %w", apperror.ErrRepositoryUnavailable, err)
	}

	return count, nil
}

func (that *dbWord) Save(ctx context.Context, word entity.Word) error {
	word = word.Normalize()
	if err := word.Validate(); err != nil {
		return err
	}

	query := `INSERT INTO words (word, hint, difficulty, category) VALUES (?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, word.Text, word.Hint, string(word.Difficulty), string(word.Category))
	if err != nil {
		return fmt.Errorf("%w: can't save word: %w", apperror.ErrRepositoryUnavailable, err)
	}

	return nil
}
