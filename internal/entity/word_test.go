package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

func TestParseDifficulty(t *testing.T) {
	difficulty, err := ParseDifficulty(" hard ")
	require.NoError(t, err)
	assert.Equal(t, Hard, difficulty)

	_, err = ParseDifficulty("Insane")
	require.ErrorIs(t, err, apperror.ErrInvalidDifficulty)
}

func TestParseCategory(t *testing.T) {
	category, err := ParseCategory("COUNTRIES")
	require.NoError(t, err)
	assert.Equal(t, Countries, category)

	_, err = ParseCategory("Plants")
	require.ErrorIs(t, err, apperror.ErrInvalidCategory)
}

func TestDifficulty_TimeLimit(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		seconds    int
		timed      bool
	}{
		{Easy, 0, false},
		{Medium, 45, true},
		{Hard, 30, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			seconds, timed := tt.difficulty.TimeLimit()

			assert.Equal(t, tt.seconds, seconds)
			assert.Equal(t, tt.timed, timed)
		})
	}
}

func TestWord_NormalizeAndValidate(t *testing.T) {
	t.Run("Normalize", func(t *testing.T) {
		// Given: a loosely typed entry
		word := Word{Text: "  new   york ", Hint: " The big apple ", Difficulty: "medium", Category: "countries"}

		// When: it is normalized
		normalized := word.Normalize()

		// Then: it is canonical and valid
		assert.Equal(t, Word{Text: "NEW YORK", Hint: "The big apple", Difficulty: Medium, Category: Countries}, normalized)
		require.NoError(t, normalized.Validate())
	})

	t.Run("Validate rejects bad entries", func(t *testing.T) {
		tests := []Word{
			{Text: "", Hint: "Nothing", Difficulty: Easy, Category: Movies},
			{Text: "CAT", Hint: "", Difficulty: Easy, Category: Animals},
			{Text: "WALL-E", Hint: "A robot", Difficulty: Easy, Category: Movies},
			{Text: "CAT", Hint: "A pet", Difficulty: "Extreme", Category: Animals},
			{Text: "CAT", Hint: "A pet", Difficulty: Easy, Category: "Plants"},
		}

		for _, word := range tests {
			assert.Error(t, word.Validate(), word.Text)
		}
	})
}

func TestRoundConfig_String(t *testing.T) {
	assert.Equal(t, "Easy / Movies", DefaultRoundConfig().String())
}
