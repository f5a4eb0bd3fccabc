package terminal

import (
	"context"
	"errors"
	"log/slog"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/hangman/internal/apperror"
	"github.com/rocketscienceinc/hangman/internal/entity"
	"github.com/rocketscienceinc/hangman/internal/hangman"
	"github.com/rocketscienceinc/hangman/internal/usecase"
)

var (
	styleDefault   = tcell.StyleDefault
	styleHeader    = tcell.StyleDefault.Bold(true)
	styleHint      = tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true)
	styleCorrect   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen)
	styleIncorrect = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	styleNotice    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDialog    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

type gameManager interface {
	Dispatch(ctx context.Context, cmd hangman.Command) (usecase.View, error)
	View() usecase.View
	Close()
}

type roundTick uint64

type shutdown struct{}

type UI struct {
	logger  *slog.Logger
	manager gameManager
	screen  tcell.Screen

	view   usecase.View
	notice string
}

func New(logger *slog.Logger, manager gameManager, screen tcell.Screen) *UI {
	return &UI{
		logger:  logger.With("component", "terminal"),
		manager: manager,
		screen:  screen,
	}
}

// TickPoster - hands countdown ticks to the event loop of screen.
func TickPoster(screen tcell.Screen) func(round uint64) {
	return func(round uint64) {
		_ = screen.PostEvent(tcell.NewEventInterrupt(roundTick(round)))
	}
}

// Run - draws the game and processes events until the player quits or ctx is done.
// It owns the screen from Init to Fini.
func (that *UI) Run(ctx context.Context) error {
	if err := that.screen.Init(); err != nil {
		return err //nolint: wrapcheck // reported by the caller
	}
	defer that.screen.Fini()
	defer that.manager.Close()

	go func() {
		<-ctx.Done()
		_ = that.screen.PostEvent(tcell.NewEventInterrupt(shutdown{}))
	}()

	that.view = that.manager.View()

	for {
		that.draw()

		ev := that.screen.PollEvent()
		if ev == nil {
			return nil
		}

		if !that.handleEvent(ctx, ev) {
			return nil
		}
	}
}

func (that *UI) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		that.screen.Sync()
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case shutdown:
			return false
		case roundTick:
			return that.dispatch(ctx, hangman.Tick(uint64(data)))
		}
	case *tcell.EventKey:
		cmd, ok, quit := keyCommand(that.view.State, ev.Key(), ev.Rune())
		if quit {
			return false
		}

		if ok {
			return that.dispatch(ctx, cmd)
		}
	}

	return true
}

func (that *UI) dispatch(ctx context.Context, cmd hangman.Command) bool {
	view, err := that.manager.Dispatch(ctx, cmd)
	that.view = view
	that.notice = view.Notice

	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrNoWordAvailable):
		// already described by the notice
	case errors.Is(err, apperror.ErrRoundNotActive), errors.Is(err, apperror.ErrInvalidLetter):
		// stray keys
	default:
		that.logger.Error("command failed", "command", cmd.Kind.String(), "error", err)
	}

	return !view.Quit
}

// keyCommand - maps a key press to a command for the given state.
func keyCommand(state hangman.State, key tcell.Key, r rune) (hangman.Command, bool, bool) {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return hangman.Command{}, false, true
	}

	switch state {
	case hangman.StateIdle, hangman.StateSelecting:
		if key == tcell.KeyEnter {
			return hangman.StartGame(), true, false
		}

		if key != tcell.KeyRune {
			return hangman.Command{}, false, false
		}

		switch unicode.ToLower(r) {
		case '1':
			return hangman.SelectDifficulty(entity.Easy), true, false
		case '2':
			return hangman.SelectDifficulty(entity.Medium), true, false
		case '3':
			return hangman.SelectDifficulty(entity.Hard), true, false
		case 'm':
			return hangman.SelectCategory(entity.Movies), true, false
		case 'c':
			return hangman.SelectCategory(entity.Countries), true, false
		case 'a':
			return hangman.SelectCategory(entity.Animals), true, false
		}
	case hangman.StateActive:
		if key == tcell.KeyRune && entity.IsLetter(unicode.ToUpper(r)) {
			return hangman.GuessLetter(unicode.ToUpper(r)), true, false
		}
	case hangman.StateEnded:
		if key != tcell.KeyRune {
			return hangman.Command{}, false, false
		}

		switch unicode.ToLower(r) {
		case 'y':
			return hangman.AnswerReplay(true), true, false
		case 'n':
			return hangman.AnswerReplay(false), true, false
		}
	}

	return hangman.Command{}, false, false
}

func (that *UI) draw() {
	that.screen.Clear()

	width, _ := that.screen.Size()
	view := that.view

	that.text(2, 1, headerLine(view), styleHeader)
	clock := timeLabel(view)
	that.text(max(width-len(clock)-2, 2), 1, clock, styleHeader)

	y := 3
	if view.State == hangman.StateIdle || view.State == hangman.StateSelecting {
		for _, line := range selectionLines(view.Config) {
			that.text(2, y, line, styleDefault)
			y++
		}
	} else {
		that.text(2, y, "Playing: "+view.Config.String(), styleDefault)
		y++
		that.text(2, y, "Hint: "+view.Hint, styleHint)
		y += 2
	}

	y++
	for _, line := range figureLines(view.Figure) {
		that.text(4, y, line, styleDefault)
		y++
	}

	y++
	that.text(4, y, spacedWord(view.Masked), styleHeader)
	y += 2

	for i, row := range keyboardRows {
		x := 4 + i*2
		for _, letter := range row {
			style := styleDefault
			switch view.Keys[letter] {
			case entity.KeyCorrect:
				style = styleCorrect
			case entity.KeyIncorrect:
				style = styleIncorrect
			}

			that.text(x, y, " "+string(letter)+" ", style)
			x += 4
		}
		y++
	}

	y++
	if that.notice != "" {
		that.text(2, y, that.notice, styleNotice)
		y++
	}

	if view.Summary != nil {
		that.text(2, y, " "+outcomeMessage(view.Summary.Outcome)+" ", styleDialog)
	}

	that.screen.Show()
}

func (that *UI) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		that.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
