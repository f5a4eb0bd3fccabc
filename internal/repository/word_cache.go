package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

const DefaultCacheTTL = 10 * time.Minute

// cachedWord - keeps the word list of every (difficulty, category) pair in Redis, so
// repeating the same selection does not query the word bank again. A pick is uniform
// over the cached list, which holds every matching row.
type cachedWord struct {
	logger *slog.Logger
	client *redis.Client
	source WordRepository
	ttl    time.Duration
}

func NewCachedWordRepository(logger *slog.Logger, client *redis.Client, source WordRepository, ttl time.Duration) WordRepository {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &cachedWord{
		logger: logger.With("component", "word_cache"),
		client: client,
		source: source,
		ttl:    ttl,
	}
}

func wordsKey(config entity.RoundConfig) string {
	return fmt.Sprintf("words:%s:%s", config.Difficulty, config.Category)
}

func (that *cachedWord) FetchRandomWord(ctx context.Context, difficulty entity.Difficulty, category entity.Category) (entity.Word, error) {
	words, err := that.ListByConfig(ctx, entity.RoundConfig{Difficulty: difficulty, Category: category})
	if err != nil {
		return entity.Word{}, err
	}

	if len(words) == 0 {
		return entity.Word{}, fmt.Errorf("%w: %s / %s", apperror.ErrWordNotFound, difficulty, category)
	}

	return words[rand.IntN(len(words))], nil //nolint: gosec // it's ok
}

func (that *cachedWord) ListByConfig(ctx context.Context, config entity.RoundConfig) ([]entity.Word, error) {
	log := that.logger.With("method", "ListByConfig", "key", wordsKey(config))

	words, err := that.get(ctx, config)
	switch {
	case err == nil:
		return words, nil
	case errors.Is(err, redis.Nil):
		log.Debug("cache miss")
	default:
		log.Warn("cache read failed, using word bank", "error", err)
	}

	words, err = that.source.ListByConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}

	if len(words) == 0 {
		return words, nil
	}

	if err = that.set(ctx, config, words); err != nil {
		log.Warn("cache write failed", "error", err)
	}

	return words, nil
}

func (that *cachedWord) Count(ctx context.Context, config entity.RoundConfig) (int, error) {
	count, err := that.source.Count(ctx, config)
	if err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}

	return count, nil
}

func (that *cachedWord) Save(ctx context.Context, word entity.Word) error {
	if err := that.source.Save(ctx, word); err != nil {
		return fmt.Errorf("failed to save word: %w", err)
	}

	key := wordsKey(word.Normalize().Config())
	if err := that.client.Del(ctx, key).Err(); err != nil {
		that.logger.Warn("failed to invalidate cached words", "key", key, "error", err)
	}

	return nil
}

func (that *cachedWord) get(ctx context.Context, config entity.RoundConfig) ([]entity.Word, error) {
	response, err := that.client.Get(ctx, wordsKey(config)).Result()
	if err != nil {
		return nil, err //nolint: wrapcheck // redis.Nil is checked by the caller
	}

	var words []entity.Word
	if err = json.Unmarshal([]byte(response), &words); err != nil {
		return nil, fmt.Errorf("failed to unmarshal words: %w", err)
	}

	return words, nil
}

func (that *cachedWord) set(ctx context.Context, config entity.RoundConfig, words []entity.Word) error {
	wordsJSON, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("could not marshal words: %w", err)
	}

	if err = that.client.Set(ctx, wordsKey(config), wordsJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set words: %w", err)
	}

	return nil
}
