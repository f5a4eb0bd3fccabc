package entity

import (
	"strings"
)

const (
	ReasonSolved          = "solved"
	ReasonOutOfAttempts   = "out of attempts"
	ReasonTimeExpired     = "time expired"
	maskedLetterCharacter = '_'
)

type KeyState int

const (
	KeyUntouched KeyState = iota
	KeyCorrect
	KeyIncorrect
)

type Outcome struct {
	Won    bool   `json:"won"`
	Reason string `json:"reason"`
	Word   string `json:"word"`
}

// Round - is the mutable state of a single word. It is discarded when the round ends.
type Round struct {
	Seq    uint64      `json:"seq"`
	Word   string      `json:"word"`
	Hint   string      `json:"hint"`
	Config RoundConfig `json:"config"`

	Guessed map[rune]bool `json:"-"`
	Missed  map[rune]bool `json:"-"`

	WrongAttempts int  `json:"wrong_attempts"`
	TimeRemaining int  `json:"time_remaining"`
	Timed         bool `json:"timed"`
}

func NewRound(seq uint64, word Word) *Round {
	word = word.Normalize()

	round := &Round{
		Seq:     seq,
		Word:    word.Text,
		Hint:    word.Hint,
		Config:  word.Config(),
		Guessed: make(map[rune]bool),
		Missed:  make(map[rune]bool),
	}

	// spaces are separators, never something to guess
	for _, r := range round.Word {
		if r == ' ' {
			round.Guessed[r] = true
		}
	}

	round.TimeRemaining, round.Timed = word.Difficulty.TimeLimit()

	return round
}

func (that *Round) Contains(letter rune) bool {
	return strings.ContainsRune(that.Word, letter)
}

func (that *Round) HasGuessed(letter rune) bool {
	return that.Guessed[letter] || that.Missed[letter]
}

// IsSolved - reports whether every non-space character has been guessed.
func (that *Round) IsSolved() bool {
	for _, r := range that.Word {
		if !that.Guessed[r] {
			return false
		}
	}

	return true
}

// Masked - shows guessed letters, underscores for hidden ones and keeps spaces.
func (that *Round) Masked() string {
	var sb strings.Builder
	sb.Grow(len(that.Word))

	for _, r := range that.Word {
		switch {
		case r == ' ':
			sb.WriteRune(' ')
		case that.Guessed[r]:
			sb.WriteRune(r)
		default:
			sb.WriteRune(maskedLetterCharacter)
		}
	}

	return sb.String()
}

func (that *Round) KeyState(letter rune) KeyState {
	switch {
	case that.Missed[letter]:
		return KeyIncorrect
	case letter != ' ' && that.Guessed[letter]:
		return KeyCorrect
	default:
		return KeyUntouched
	}
}

// Session - holds the counters that live for the whole process run.
type Session struct {
	Score     int `json:"score"`
	HighScore int `json:"high_score"`
	Streak    int `json:"streak"`
}

func (that *Session) RecordWin(points int) {
	that.Score += points
	that.Streak++
	that.HighScore = max(that.HighScore, that.Score)
}

func (that *Session) RecordLoss() {
	that.Streak = 0
	that.HighScore = max(that.HighScore, that.Score)
}
