package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

type wordRepo interface {
	Count(ctx context.Context, config entity.RoundConfig) (int, error)
	Save(ctx context.Context, word entity.Word) error
}

type WordHandlers struct {
	logger *slog.Logger
	words  wordRepo
}

func NewWordHandlers(logger *slog.Logger, words wordRepo) *WordHandlers {
	return &WordHandlers{
		logger: logger.With("component", "rest"),
		words:  words,
	}
}

type countResponse struct {
	Difficulty entity.Difficulty `json:"difficulty"`
	Category   entity.Category   `json:"category"`
	Count      int               `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Count - GET /words/count?difficulty=Easy&category=Movies.
func (that *WordHandlers) Count(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Count")

	difficulty, err := entity.ParseDifficulty(r.URL.Query().Get("difficulty"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	category, err := entity.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	count, err := that.words.Count(r.Context(), entity.RoundConfig{Difficulty: difficulty, Category: category})
	if err != nil {
		log.Error("failed to count words", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, countResponse{Difficulty: difficulty, Category: category, Count: count})
}

// Create - POST /words with a JSON word entry.
func (that *WordHandlers) Create(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Create")

	var word entity.Word
	if err := json.NewDecoder(r.Body).Decode(&word); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	word = word.Normalize()
	if err := word.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := that.words.Save(r.Context(), word); err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		log.Error("failed to save word", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
		return
	}

	log.Info("word added", "config", word.Config().String())
	writeJSON(w, http.StatusCreated, word)
}

func isValidationError(err error) bool {
	return errors.Is(err, apperror.ErrInvalidWord) ||
		errors.Is(err, apperror.ErrInvalidDifficulty) ||
		errors.Is(err, apperror.ErrInvalidCategory)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
