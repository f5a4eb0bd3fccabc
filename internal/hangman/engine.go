package hangman

import (
	"context"
	"fmt"
	"unicode"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
)

const (
	MaxAttempts = 4
	WinPoints   = 10
)

type State int

const (
	StateIdle State = iota
	StateSelecting
	StateActive
	StateEnded
)

func (that State) String() string {
	switch that {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateActive:
		return "active"
	case StateEnded:
		return "ended"
	default:
		return fmt.Sprintf("state(%d)", int(that))
	}
}

type wordRepo interface {
	FetchRandomWord(ctx context.Context, difficulty entity.Difficulty, category entity.Category) (entity.Word, error)
}

// Timer - drives Tick for timed rounds. Stop must be safe to call repeatedly.
type Timer interface {
	Start(round uint64)
	Stop()
}

type GuessResult struct {
	Letter   rune
	Hit      bool
	Repeated bool
	Ended    bool
}

type Summary struct {
	Outcome entity.Outcome
	Session entity.Session
}

// Engine - is the round state machine. It is not safe for concurrent use; every call is
// expected to come from the single event loop that owns it.
type Engine struct {
	repo  wordRepo
	timer Timer

	state   State
	config  entity.RoundConfig
	round   *entity.Round
	outcome *entity.Outcome
	session entity.Session
	seq     uint64
}

func NewEngine(repo wordRepo, timer Timer) *Engine {
	if timer == nil {
		timer = noopTimer{}
	}

	return &Engine{
		repo:   repo,
		timer:  timer,
		state:  StateIdle,
		config: entity.DefaultRoundConfig(),
	}
}

func (that *Engine) State() State {
	return that.state
}

func (that *Engine) Config() entity.RoundConfig {
	return that.config
}

// Round - returns the current round, nil between rounds.
func (that *Engine) Round() *entity.Round {
	return that.round
}

func (that *Engine) Session() entity.Session {
	return that.session
}

func (that *Engine) SelectDifficulty(difficulty entity.Difficulty) error {
	if _, err := entity.ParseDifficulty(string(difficulty)); err != nil {
		return err
	}

	if err := that.confirmSelectable(); err != nil {
		return err
	}

	that.config.Difficulty = difficulty
	that.state = StateSelecting

	return nil
}

func (that *Engine) SelectCategory(category entity.Category) error {
	if _, err := entity.ParseCategory(string(category)); err != nil {
		return err
	}

	if err := that.confirmSelectable(); err != nil {
		return err
	}

	that.config.Category = category
	that.state = StateSelecting

	return nil
}

func (that *Engine) confirmSelectable() error {
	switch that.state {
	case StateActive, StateEnded:
		return apperror.ErrRoundInProgress
	default:
		return nil
	}
}

// StartRound - draws a word for config and makes the round active. A failed lookup leaves
// the engine in StateSelecting with the session untouched.
func (that *Engine) StartRound(ctx context.Context, config entity.RoundConfig) (*entity.Round, error) {
	if err := that.confirmSelectable(); err != nil {
		return nil, err
	}

	if _, err := entity.ParseDifficulty(string(config.Difficulty)); err != nil {
		return nil, err
	}

	if _, err := entity.ParseCategory(string(config.Category)); err != nil {
		return nil, err
	}

	that.config = config
	that.state = StateSelecting

	word, err := that.repo.FetchRandomWord(ctx, config.Difficulty, config.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrNoWordAvailable, err)
	}

	word.Difficulty = config.Difficulty
	word.Category = config.Category
	word = word.Normalize()

	if word.Text == "" {
		return nil, fmt.Errorf("%w: %w", apperror.ErrNoWordAvailable, apperror.ErrWordNotFound)
	}

	if err = word.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrNoWordAvailable, err)
	}

	that.seq++
	that.round = entity.NewRound(that.seq, word)
	that.outcome = nil
	that.state = StateActive

	if that.round.Timed {
		that.timer.Start(that.round.Seq)
	}

	return that.round, nil
}

// ApplyGuess - reveals letter or counts a wrong attempt. Guessing a letter twice changes nothing.
func (that *Engine) ApplyGuess(letter rune) (GuessResult, error) {
	letter = unicode.ToUpper(letter)
	if !entity.IsLetter(letter) {
		return GuessResult{}, fmt.Errorf("%w: %q", apperror.ErrInvalidLetter, letter)
	}

	if that.state != StateActive {
		return GuessResult{}, apperror.ErrRoundNotActive
	}

	result := GuessResult{Letter: letter}

	switch {
	case that.round.HasGuessed(letter):
		result.Hit = that.round.Guessed[letter]
		result.Repeated = true

		return result, nil
	case that.round.Contains(letter):
		that.round.Guessed[letter] = true
		result.Hit = true
	default:
		that.round.Missed[letter] = true
		that.round.WrongAttempts++
	}

	that.evaluate()
	result.Ended = that.state == StateEnded

	return result, nil
}

// Tick - counts one second off the round identified by seq. Ticks for other rounds, for
// untimed rounds and outside StateActive are ignored.
func (that *Engine) Tick(seq uint64) bool {
	if that.state != StateActive || !that.round.Timed || that.round.Seq != seq {
		return false
	}

	that.round.TimeRemaining--
	if that.round.TimeRemaining < 0 {
		that.round.TimeRemaining = 0
	}

	that.evaluate()

	return true
}

func (that *Engine) evaluate() {
	switch {
	case that.round.IsSolved():
		that.finish(true, entity.ReasonSolved)
	case that.round.WrongAttempts >= MaxAttempts:
		that.finish(false, entity.ReasonOutOfAttempts)
	case that.round.Timed && that.round.TimeRemaining == 0:
		that.finish(false, entity.ReasonTimeExpired)
	}
}

func (that *Engine) finish(won bool, reason string) {
	that.timer.Stop()

	if won {
		that.session.RecordWin(WinPoints)
	} else {
		that.session.RecordLoss()
	}

	that.outcome = &entity.Outcome{
		Won:    won,
		Reason: reason,
		Word:   that.round.Word,
	}
	that.state = StateEnded
}

// Outcome - returns the summary of the finished round without touching the countdown.
func (that *Engine) Outcome() (Summary, bool) {
	if that.state != StateEnded || that.outcome == nil {
		return Summary{}, false
	}

	return Summary{
		Outcome: *that.outcome,
		Session: that.session,
	}, true
}

// EndRound - returns the outcome of the finished round together with the session counters.
func (that *Engine) EndRound() (Summary, error) {
	that.timer.Stop()

	if that.state != StateEnded || that.outcome == nil {
		return Summary{}, apperror.ErrRoundNotEnded
	}

	return Summary{
		Outcome: *that.outcome,
		Session: that.session,
	}, nil
}

func (that *Engine) ResetForNewRound() {
	that.timer.Stop()

	that.round = nil
	that.outcome = nil
	that.state = StateSelecting
}

// Close - stops the countdown. The session is left as is.
func (that *Engine) Close() {
	that.timer.Stop()
}

type noopTimer struct{}

func (noopTimer) Start(uint64) {}
func (noopTimer) Stop()        {}
