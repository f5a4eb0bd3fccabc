package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/apperror"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

type Category string

const (
	Movies    Category = "Movies"
	Countries Category = "Countries"
	Animals   Category = "Animals"
)

var (
	Difficulties = []Difficulty{Easy, Medium, Hard}
	Categories   = []Category{Movies, Countries, Animals}
)

// ParseDifficulty - accepts the stored name in any letter case.
func ParseDifficulty(value string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(string(d), strings.TrimSpace(value)) {
			return d, nil
		}
	}

	return "", fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, value)
}

// ParseCategory - accepts the stored name in any letter case.
func ParseCategory(value string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(value)) {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q", apperror.ErrInvalidCategory, value)
}

// TimeLimit - returns the countdown in seconds, false for untimed rounds.
func (that Difficulty) TimeLimit() (int, bool) {
	switch that {
	case Medium:
		return 45, true
	case Hard:
		return 30, true
	default:
		return 0, false
	}
}

type RoundConfig struct {
	Difficulty Difficulty `json:"difficulty"`
	Category   Category   `json:"category"`
}

func DefaultRoundConfig() RoundConfig {
	return RoundConfig{Difficulty: Easy, Category: Movies}
}

func (that RoundConfig) String() string {
	return fmt.Sprintf("%s / %s", that.Difficulty, that.Category)
}

// Word - is one word bank entry.
type Word struct {
	Text       string     `json:"word"`
	Hint       string     `json:"hint"`
	Difficulty Difficulty `json:"difficulty"`
	Category   Category   `json:"category"`
}

func (that Word) Config() RoundConfig {
	return RoundConfig{Difficulty: that.Difficulty, Category: that.Category}
}

// Normalize - upper-cases the text, collapses runs of spaces and canonicalizes the
// difficulty and category names when they are recognized.
func (that Word) Normalize() Word {
	that.Text = strings.ToUpper(strings.Join(strings.Fields(that.Text), " "))
	that.Hint = strings.TrimSpace(that.Hint)

	if difficulty, err := ParseDifficulty(string(that.Difficulty)); err == nil {
		that.Difficulty = difficulty
	}

	if category, err := ParseCategory(string(that.Category)); err == nil {
		that.Category = category
	}

	return that
}

// Validate - checks a normalized entry before it goes into the word bank.
func (that Word) Validate() error {
	if _, err := ParseDifficulty(string(that.Difficulty)); err != nil {
		return err
	}

	if _, err := ParseCategory(string(that.Category)); err != nil {
		return err
	}

	if that.Text == "" {
		return fmt.Errorf("%w: empty word", apperror.ErrInvalidWord)
	}

	if that.Hint == "" {
		return fmt.Errorf("%w: empty hint", apperror.ErrInvalidWord)
	}

	for _, r := range that.Text {
		if r != ' ' && !IsLetter(r) {
			return fmt.Errorf("%w: unexpected character %q", apperror.ErrInvalidWord, r)
		}
	}

	return nil
}

// IsLetter - reports whether r is an upper-case letter A-Z.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
