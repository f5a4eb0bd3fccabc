package hangman

import (
	"fmt"

	"github.com/rocketscienceinc/hangman/internal/entity"
)

type CommandKind int

const (
	CommandSelectDifficulty CommandKind = iota + 1
	CommandSelectCategory
	CommandStartGame
	CommandGuessLetter
	CommandTick
	CommandAnswerReplay
)

func (that CommandKind) String() string {
	switch that {
	case CommandSelectDifficulty:
		return "select_difficulty"
	case CommandSelectCategory:
		return "select_category"
	case CommandStartGame:
		return "start_game"
	case CommandGuessLetter:
		return "guess_letter"
	case CommandTick:
		return "tick"
	case CommandAnswerReplay:
		return "answer_replay"
	default:
		return fmt.Sprintf("command(%d)", int(that))
	}
}

// Command - is a user or timer event, independent of the input source.
type Command struct {
	Kind       CommandKind
	Difficulty entity.Difficulty
	Category   entity.Category
	Letter     rune
	Round      uint64
	Replay     bool
}

func SelectDifficulty(difficulty entity.Difficulty) Command {
	return Command{Kind: CommandSelectDifficulty, Difficulty: difficulty}
}

func SelectCategory(category entity.Category) Command {
	return Command{Kind: CommandSelectCategory, Category: category}
}

func StartGame() Command {
	return Command{Kind: CommandStartGame}
}

func GuessLetter(letter rune) Command {
	return Command{Kind: CommandGuessLetter, Letter: letter}
}

func Tick(round uint64) Command {
	return Command{Kind: CommandTick, Round: round}
}

func AnswerReplay(again bool) Command {
	return Command{Kind: CommandAnswerReplay, Replay: again}
}
