package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hangman/internal/entity"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	st, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Init(context.Background()))

	return st
}

func TestStorage_Init(t *testing.T) {
	// Given: an initialized storage
	st := newTestStorage(t)

	// When: Init runs again
	err := st.Init(context.Background())

	// Then: it is a no-op
	require.NoError(t, err)
}

func TestStorage_Seed(t *testing.T) {
	t.Run("Seeds every difficulty and category", func(t *testing.T) {
		ctx := context.Background()
		st := newTestStorage(t)

		// When: an empty word bank is seeded
		inserted, err := st.Seed(ctx)

		// Then: every config has words
		require.NoError(t, err)
		assert.Equal(t, len(seedWords), inserted)

		for _, difficulty := range entity.Difficulties {
			for _, category := range entity.Categories {
				var count int
				err = st.Connection.QueryRowContext(ctx,
					`SELECT COUNT(*) FROM words WHERE difficulty = ? AND category = ?`,
					string(difficulty), string(category),
				).Scan(&count)
				require.NoError(t, err)
				assert.Positive(t, count, "%s / %s", difficulty, category)
			}
		}
	})

	t.Run("Leaves a populated word bank alone", func(t *testing.T) {
		ctx := context.Background()
		st := newTestStorage(t)

		// Given: a seeded word bank
		_, err := st.Seed(ctx)
		require.NoError(t, err)

		// When: it is seeded again
		inserted, err := st.Seed(ctx)

		// Then: nothing is inserted
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})

	t.Run("Seed words are valid", func(t *testing.T) {
		for _, word := range seedWords {
			normalized := word.Normalize()
			require.NoError(t, normalized.Validate(), word.Text)
			assert.Equal(t, word.Text, normalized.Text)
		}
	})
}
