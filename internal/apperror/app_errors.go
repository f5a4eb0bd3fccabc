package apperror

import "errors"

var (
	ErrWordNotFound          = errors.New("no word found for difficulty and category")
	ErrRepositoryUnavailable = errors.New("word repository unavailable")
	ErrNoWordAvailable       = errors.New("no word available")

	ErrRoundInProgress = errors.New("round is already in progress")
	ErrRoundNotActive  = errors.New("round is not active")
	ErrRoundNotEnded   = errors.New("round has not ended")

	ErrInvalidLetter     = errors.New("invalid letter")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidWord       = errors.New("invalid word")
	ErrUnknownCommand    = errors.New("unknown command")
)
