package repository

import (
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/testing/suite"
)

var easyAnimals = entity.RoundConfig{Difficulty: entity.Easy, Category: entity.Animals}

func TestCachedWordRepository_FetchRandomWord(t *testing.T) {
	t.Run("FetchRandomWord_FillsCache", func(t *testing.T) {
		ctx, st := suite.New(t)

		source := NewWordRepository(st.Database.Connection)
		wordRepo := NewCachedWordRepository(st.Logger, st.Storage, source, time.Minute)

		// Given: one word in the word bank
		saveWords(ctx, t, source, entity.Word{Text: "CAT", Hint: "A pet", Difficulty: entity.Easy, Category: entity.Animals})

		// When: FetchRandomWord is called
		word, err := wordRepo.FetchRandomWord(ctx, entity.Easy, entity.Animals)

		// Then: the word is returned and its list is cached with a TTL
		require.NoError(t, err)
		assert.Equal(t, "CAT", word.Text)
		assert.Equal(t, "A pet", word.Hint)

		ttl, err := st.Storage.TTL(ctx, wordsKey(easyAnimals)).Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
	})

	t.Run("FetchRandomWord_ServesFromCache", func(t *testing.T) {
		ctx, st := suite.New(t)

		source := NewWordRepository(st.Database.Connection)
		wordRepo := NewCachedWordRepository(st.Logger, st.Storage, source, time.Minute)

		// Given: a cached list
		saveWords(ctx, t, source, entity.Word{Text: "CAT", Hint: "A pet", Difficulty: entity.Easy, Category: entity.Animals})
		_, err := wordRepo.FetchRandomWord(ctx, entity.Easy, entity.Animals)
		require.NoError(t, err)

		// When: the word bank goes away
		require.NoError(t, st.Database.Close())
		word, err := wordRepo.FetchRandomWord(ctx, entity.Easy, entity.Animals)

		// Then: the cached list still serves the word
		require.NoError(t, err)
		assert.Equal(t, "CAT", word.Text)
	})

	t.Run("FetchRandomWord_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		wordRepo := NewCachedWordRepository(st.Logger, st.Storage, NewWordRepository(st.Database.Connection), time.Minute)

		// When: FetchRandomWord is called on an empty word bank
		_, err := wordRepo.FetchRandomWord(ctx, entity.Hard, entity.Movies)

		// Then: an ErrWordNotFound error should be returned and nothing is cached
		require.ErrorIs(t, err, apperror.ErrWordNotFound)

		exists, err := st.Storage.Exists(ctx, wordsKey(entity.RoundConfig{Difficulty: entity.Hard, Category: entity.Movies})).Result()
		require.NoError(t, err)
		assert.Zero(t, exists)
	})
}

func TestCachedWordRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	source := NewWordRepository(st.Database.Connection)
	wordRepo := NewCachedWordRepository(st.Logger, st.Storage, source, time.Minute)

	// Given: a cached list with one word
	require.NoError(t, wordRepo.Save(ctx, entity.Word{Text: "CAT", Hint: "A pet", Difficulty: entity.Easy, Category: entity.Animals}))
	words, err := wordRepo.ListByConfig(ctx, easyAnimals)
	require.NoError(t, err)
	require.Len(t, words, 1)

	// When: another word is saved for the same config
	require.NoError(t, wordRepo.Save(ctx, entity.Word{Text: "dog", Hint: "A loyal companion", Difficulty: "easy", Category: "animals"}))

	// Then: the cache was invalidated and the next list sees both
	words, err = wordRepo.ListByConfig(ctx, easyAnimals)
	require.NoError(t, err)
	assert.Len(t, words, 2)

	count, err := wordRepo.Count(ctx, easyAnimals)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

// unreachableRedis - returns a client for an address nothing listens on.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestCachedWordRepository_RedisDown(t *testing.T) {
	t.Run("FetchRandomWord_FallsBackToWordBank", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		source := NewWordRepository(st.Database.Connection)
		wordRepo := NewCachedWordRepository(st.Logger, unreachableRedis(t), source, time.Minute)

		// Given: one word in the word bank and no Redis
		saveWords(ctx, t, source, entity.Word{Text: "CAT", Hint: "A pet", Difficulty: entity.Easy, Category: entity.Animals})

		// When: FetchRandomWord is called
		word, err := wordRepo.FetchRandomWord(ctx, entity.Easy, entity.Animals)

		// Then: the word comes straight from SQLite
		require.NoError(t, err)
		assert.Equal(t, "CAT", word.Text)
		assert.Equal(t, "A pet", word.Hint)
	})

	t.Run("FetchRandomWord_NotFound", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		wordRepo := NewCachedWordRepository(st.Logger, unreachableRedis(t), NewWordRepository(st.Database.Connection), time.Minute)

		// When: FetchRandomWord is called on an empty word bank
		_, err := wordRepo.FetchRandomWord(ctx, entity.Hard, entity.Movies)

		// Then: an ErrWordNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrWordNotFound)
	})

	t.Run("Save_StillStoresWord", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		wordRepo := NewCachedWordRepository(st.Logger, unreachableRedis(t), NewWordRepository(st.Database.Connection), time.Minute)

		// When: a word is saved while the cache cannot be invalidated
		err := wordRepo.Save(ctx, entity.Word{Text: "DOG", Hint: "A loyal companion", Difficulty: entity.Easy, Category: entity.Animals})

		// Then: the save succeeds and the word is counted
		require.NoError(t, err)

		count, err := wordRepo.Count(ctx, easyAnimals)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
