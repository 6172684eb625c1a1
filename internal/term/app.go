// Package term is a keyboard-driven terminal front end for a session.
package term

import (
	"errors"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/session"
)

// App owns the screen and the cursor for one terminal session.
type App struct {
	screen  tcell.Screen
	session *session.Session
	theme   Theme
	cursor  board.Square
	flipped bool
	msg     string
}

// New creates an App on an initialized screen.
func New(screen tcell.Screen, s *session.Session, flipped bool) *App {
	return &App{
		screen:  screen,
		session: s,
		theme:   DefaultTheme,
		cursor:  homeCursor(flipped),
		flipped: flipped,
	}
}

// homeCursor puts the cursor on the king's pawn of the side facing the player.
func homeCursor(flipped bool) board.Square {
	if flipped {
		return board.E7
	}
	return board.E2
}

// Run draws and handles events until the user quits.
func (a *App) Run() error {
	for {
		a.Draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !a.HandleEvent(ev) {
			return nil
		}
	}
}

// Draw renders the current frame.
func (a *App) Draw() {
	render(a.screen, view{
		session: a.session,
		theme:   a.theme,
		cursor:  a.cursor,
		flipped: a.flipped,
		msg:     a.msg,
	})
}

// Cursor returns the square under the cursor.
func (a *App) Cursor() board.Square {
	return a.cursor
}

// HandleEvent applies one event. It returns false when the app should exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	}
	return true
}

// action is what a key does.
type action int

const (
	actionNone action = iota
	actionQuit
	actionUp
	actionDown
	actionLeft
	actionRight
	actionSelect
	actionUndo
	actionRestart
	actionFlip
)

type keybinding struct {
	k tcell.Key
	r rune
	a action
}

var keybindings = []keybinding{
	{k: tcell.KeyEscape, a: actionQuit},
	{k: tcell.KeyCtrlC, a: actionQuit},
	{r: 'q', a: actionQuit},
	{k: tcell.KeyUp, a: actionUp},
	{r: 'k', a: actionUp},
	{k: tcell.KeyDown, a: actionDown},
	{r: 'j', a: actionDown},
	{k: tcell.KeyLeft, a: actionLeft},
	{r: 'h', a: actionLeft},
	{k: tcell.KeyRight, a: actionRight},
	{r: 'l', a: actionRight},
	{k: tcell.KeyEnter, a: actionSelect},
	{r: ' ', a: actionSelect},
	{r: 'u', a: actionUndo},
	{r: 'r', a: actionRestart},
	{r: 'f', a: actionFlip},
}

// lookup finds the action bound to a key press.
func lookup(ev *tcell.EventKey) action {
	for _, bind := range keybindings {
		if bind.k != 0 && bind.k == ev.Key() {
			return bind.a
		}
		if bind.r != 0 && ev.Key() == tcell.KeyRune && bind.r == ev.Rune() {
			return bind.a
		}
	}
	return actionNone
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch lookup(ev) {
	case actionQuit:
		return false
	case actionUp:
		a.moveCursor(-1, 0)
	case actionDown:
		a.moveCursor(1, 0)
	case actionLeft:
		a.moveCursor(0, -1)
	case actionRight:
		a.moveCursor(0, 1)
	case actionSelect:
		a.click()
	case actionUndo:
		a.undo()
	case actionRestart:
		a.session.Reset()
		a.cursor = homeCursor(a.flipped)
		a.msg = "new game " + a.session.ID()
	case actionFlip:
		a.flipped = !a.flipped
	}
	return true
}

// moveCursor shifts the cursor in screen directions, clamped to the board.
func (a *App) moveCursor(dr, dc int) {
	if a.flipped {
		dr, dc = -dr, -dc
	}
	row := clamp(a.cursor.Row()+dr, 0, 7)
	col := clamp(a.cursor.Col()+dc, 0, 7)
	a.cursor = board.NewSquare(row, col)
}

func (a *App) click() {
	first := a.session.Selected()
	if m, ok := a.session.Click(a.cursor); ok {
		san := a.session.SANHistory()
		a.msg = fmt.Sprintf("%s played %s", m.Moved.Color(), san[len(san)-1])
		if result := a.session.ResultText(); result != "" {
			a.msg = result
		}
		return
	}
	switch {
	case a.session.Over():
		a.msg = a.session.ResultText()
	case first != board.NoSquare && first != a.cursor:
		a.msg = fmt.Sprintf("illegal move %s%s", first, a.cursor)
	default:
		a.msg = ""
	}
}

func (a *App) undo() {
	err := a.session.Undo()
	switch {
	case errors.Is(err, session.ErrNothingToUndo):
		a.msg = "nothing to undo"
	case err != nil:
		log.Printf("Warning: undo failed: %v", err)
		a.msg = err.Error()
	default:
		a.msg = "move taken back"
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
