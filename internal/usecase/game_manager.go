package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
)

const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// View - is everything a front end needs to draw the game.
type View struct {
	State   hangman.State
	Config  entity.RoundConfig
	Session entity.Session

	Round         uint64
	Masked        string
	Hint          string
	WrongAttempts int
	TimeRemaining int
	Timed         bool
	Figure        []entity.BodyPart
	Keys          map[rune]entity.KeyState

	Notice  string
	Summary *hangman.Summary
	Quit    bool
}

type GameManager struct {
	logger *slog.Logger
	engine *hangman.Engine
}

func NewGameManager(logger *slog.Logger, engine *hangman.Engine) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		engine: engine,
	}
}

// Dispatch - applies one command and returns the resulting view. The view is valid even
// when an error is returned.
func (that *GameManager) Dispatch(ctx context.Context, cmd hangman.Command) (View, error) {
	var (
		notice string
		quit   bool
		err    error
	)

	switch cmd.Kind {
	case hangman.CommandSelectDifficulty:
		err = that.engine.SelectDifficulty(cmd.Difficulty)
	case hangman.CommandSelectCategory:
		err = that.engine.SelectCategory(cmd.Category)
	case hangman.CommandStartGame:
		notice, err = that.startRound(ctx)
	case hangman.CommandGuessLetter:
		err = that.guess(cmd.Letter)
	case hangman.CommandTick:
		that.tick(cmd.Round)
	case hangman.CommandAnswerReplay:
		quit, err = that.answerReplay(cmd.Replay)
	default:
		err = fmt.Errorf("%w: %s", apperror.ErrUnknownCommand, cmd.Kind)
	}

	view := that.View()
	view.Notice = notice
	view.Quit = quit

	return view, err
}

func (that *GameManager) startRound(ctx context.Context) (string, error) {
	log := that.logger.With("method", "startRound")
	config := that.engine.Config()

	round, err := that.engine.StartRound(ctx, config)
	if err != nil {
		if errors.Is(err, apperror.ErrNoWordAvailable) {
			log.Warn("round not started", "config", config.String(), "error", err)
			return noticeFor(err, config), err
		}

		return "", fmt.Errorf("failed to start round: %w", err)
	}

	log.Info("round started", "round", round.Seq, "config", config.String(), "length", len(round.Word))

	return "", nil
}

func (that *GameManager) guess(letter rune) error {
	result, err := that.engine.ApplyGuess(letter)
	if err != nil {
		return fmt.Errorf("failed to apply guess: %w", err)
	}

	if result.Ended {
		that.logEnd()
	}

	return nil
}

func (that *GameManager) tick(round uint64) {
	if that.engine.Tick(round) && that.engine.State() == hangman.StateEnded {
		that.logEnd()
	}
}

func (that *GameManager) answerReplay(again bool) (bool, error) {
	if that.engine.State() != hangman.StateEnded {
		return false, apperror.ErrRoundNotEnded
	}

	if !again {
		that.engine.Close()
		return true, nil
	}

	that.engine.ResetForNewRound()

	return false, nil
}

func (that *GameManager) logEnd() {
	summary, err := that.engine.EndRound()
	if err != nil {
		that.logger.Error("failed to end round", "error", err)
		return
	}

	that.logger.Info("round ended",
		"won", summary.Outcome.Won,
		"reason", summary.Outcome.Reason,
		"score", summary.Session.Score,
		"high_score", summary.Session.HighScore,
		"streak", summary.Session.Streak,
	)
}

// Close - stops the countdown when the front end goes away.
func (that *GameManager) Close() {
	that.engine.Close()
}

func (that *GameManager) View() View {
	view := View{
		State:   that.engine.State(),
		Config:  that.engine.Config(),
		Session: that.engine.Session(),
		Figure:  hangman.Stage(0),
		Keys:    make(map[rune]entity.KeyState, len(Alphabet)),
	}

	for _, letter := range Alphabet {
		view.Keys[letter] = entity.KeyUntouched
	}

	round := that.engine.Round()
	if round == nil {
		return view
	}

	view.Round = round.Seq
	view.Masked = round.Masked()
	view.Hint = round.Hint
	view.WrongAttempts = round.WrongAttempts
	view.TimeRemaining = round.TimeRemaining
	view.Timed = round.Timed
	view.Figure = hangman.Stage(round.WrongAttempts)

	for _, letter := range Alphabet {
		view.Keys[letter] = round.KeyState(letter)
	}

	if view.State == hangman.StateEnded {
		if summary, ok := that.engine.Outcome(); ok {
			view.Summary = &summary
		}
	}

	return view
}

func noticeFor(err error, config entity.RoundConfig) string {
	if errors.Is(err, apperror.ErrWordNotFound) {
		return fmt.Sprintf("No words found for %s", config)
	}

	return "Word bank unavailable, try again"
}
