package terminal

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/usecase"
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

func headerLine(view usecase.View) string {
	return fmt.Sprintf("Score: %d   High Score: %d   Streak: %d", view.Session.Score, view.Session.HighScore, view.Session.Streak)
}

func timeLabel(view usecase.View) string {
	if !view.Timed {
		return "Time: -"
	}

	return fmt.Sprintf("Time: %d", view.TimeRemaining)
}

// spacedWord - puts a blank between letters and widens word gaps so they stay visible.
func spacedWord(masked string) string {
	var sb strings.Builder
	for _, r := range masked {
		if r == ' ' {
			sb.WriteString("  ")
			continue
		}

		sb.WriteRune(r)
		sb.WriteRune(' ')
	}

	return strings.TrimRight(sb.String(), " ")
}

// figureLines - draws the gallows with the given body parts.
func figureLines(parts []entity.BodyPart) []string {
	drawn := make(map[entity.BodyPart]bool, len(parts))
	for _, part := range parts {
		drawn[part] = true
	}

	pick := func(part entity.BodyPart, r rune) rune {
		if drawn[part] {
			return r
		}

		return ' '
	}

	return []string{
		"  +---+",
		"  |   |",
		fmt.Sprintf("  %c   |", pick(entity.Head, 'O')),
		fmt.Sprintf(" %c%c%c  |", pick(entity.LeftArm, '/'), pick(entity.Body, '|'), pick(entity.RightArm, '\\')),
		fmt.Sprintf(" %c %c  |", pick(entity.LeftLeg, '/'), pick(entity.RightLeg, '\\')),
		"      |",
		"=========",
	}
}

func outcomeMessage(summary entity.Outcome) string {
	if summary.Won {
		return "You won! Play again? (y/n)"
	}

	if summary.Reason == entity.ReasonTimeExpired {
		return fmt.Sprintf("Time's up! Word was: %s. Play again? (y/n)", summary.Word)
	}

	return fmt.Sprintf("Game Over! Word was: %s. Play again? (y/n)", summary.Word)
}

func selectionLines(config entity.RoundConfig) []string {
	difficulty := make([]string, 0, len(entity.Difficulties))
	for i, d := range entity.Difficulties {
		difficulty = append(difficulty, marked(fmt.Sprintf("%d %s", i+1, d), d == config.Difficulty))
	}

	category := make([]string, 0, len(entity.Categories))
	for _, c := range entity.Categories {
		label := fmt.Sprintf("%c %s", strings.ToLower(string(c))[0], c)
		category = append(category, marked(label, c == config.Category))
	}

	return []string{
		"Difficulty: " + strings.Join(difficulty, "  "),
		"Category:   " + strings.Join(category, "  "),
		"Press Enter to start, Esc to quit",
	}
}

func marked(label string, selected bool) string {
	if selected {
		return "[" + label + "]"
	}

	return " " + label + " "
}
