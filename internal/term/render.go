package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/hailam/chessrules/internal/board"
	"github.com/hailam/chessrules/internal/session"
)

const (
	leftMargin = 4
	topMargin  = 3
	moveRows   = 8
)

// glyphs are the solid figurines, colored by style rather than by shape.
var glyphs = [...]rune{'♟', '♞', '♝', '♜', '♛', '♚'}

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// cellOf returns the screen position of the left cell of a square.
func cellOf(sq board.Square, flipped bool) (x, y int) {
	row, col := sq.Row(), sq.Col()
	if flipped {
		row, col = 7-row, 7-col
	}
	return leftMargin + 2 + col*2, topMargin + row
}

// view is what a frame needs from the app.
type view struct {
	session *session.Session
	theme   Theme
	cursor  board.Square
	flipped bool
	msg     string
}

// render draws one full frame.
func render(s tcell.Screen, v view) {
	s.Clear()
	drawMoveLabel(s, v)
	drawBoard(s, v)
	drawMoves(s, v)
	drawStatus(s, v)
	s.Show()
}

// drawMoveLabel displays whose turn it is above the board
func drawMoveLabel(s tcell.Screen, v view) {
	label := fmt.Sprintf(" %s to Move ", v.session.SideToMove())
	style := tcell.StyleDefault.Background(v.theme.MoveLabelBg).Foreground(v.theme.MoveLabelFg)
	drawText(s, leftMargin+2, topMargin-2, style, label)
}

// squareBg picks the background for a square, strongest highlight last.
func squareBg(sq board.Square, v view, targets map[board.Square]bool, checked board.Square) tcell.Color {
	bg := v.theme.SquareLight
	if (sq.Row()+sq.Col())%2 == 1 {
		bg = v.theme.SquareDark
	}
	if last, ok := v.session.LastMove(); ok && (last.From == sq || last.To == sq) {
		bg = v.theme.SquareHigh
	}
	if targets[sq] {
		bg = v.theme.SquareTarget
	}
	if sq == v.session.Selected() {
		bg = v.theme.SquareSelect
	}
	if sq == checked {
		bg = v.theme.SquareCheck
	}
	if sq == v.cursor {
		bg = v.theme.SquareCursor
	}
	return bg
}

// drawBoard draws the squares, pieces and coordinates.
func drawBoard(s tcell.Screen, v view) {
	b := v.session.Board()

	targets := map[board.Square]bool{}
	for _, m := range v.session.LegalMovesFrom(v.session.Selected()) {
		targets[m.To] = true
	}

	checked := board.NoSquare
	if st := v.session.Status(); st == session.StatusCheck || st == session.StatusCheckmate {
		checked = v.session.KingSquare(v.session.SideToMove())
	}

	rankStyle := tcell.StyleDefault.Foreground(v.theme.Rank)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := board.NewSquare(row, col)
			x, y := cellOf(sq, v.flipped)
			bg := squareBg(sq, v, targets, checked)

			p := b.At(sq)
			if p.IsEmpty() {
				s.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg))
			} else {
				fg := v.theme.White
				if p.Color() == board.Black {
					fg = v.theme.Black
				}
				s.SetContent(x, y, glyphs[p.Type()], nil, tcell.StyleDefault.Background(bg).Foreground(fg))
			}
			s.SetContent(x+1, y, ' ', nil, tcell.StyleDefault.Background(bg))

			if col == 0 {
				s.SetContent(leftMargin, y, rune(sq.Rank()), nil, rankStyle)
			}
		}
	}

	files := "a b c d e f g h"
	if v.flipped {
		files = "h g f e d c b a"
	}
	drawText(s, leftMargin+2, topMargin+8, tcell.StyleDefault.Foreground(v.theme.File), files)
}

// drawMoves shows the most recent move pairs in a box to the right.
func drawMoves(s tcell.Screen, v view) {
	x := leftMargin + 22
	style := tcell.StyleDefault.Foreground(v.theme.MoveBox)
	drawText(s, x, topMargin-1, style, "┏━━━━━━━━━━━━━━━━━━━━━┓")

	san := v.session.SANHistory()
	pairs := (len(san) + 1) / 2
	first := 0
	if pairs > moveRows {
		first = pairs - moveRows
	}

	for i := 0; i < moveRows; i++ {
		idx, white, black := "", "", ""
		if p := first + i; p < pairs {
			idx = fmt.Sprintf("%d.", p+1)
			white = san[p*2]
			if p*2+1 < len(san) {
				black = san[p*2+1]
			}
		}
		drawText(s, x, topMargin+i, style, fmt.Sprintf("┃ %-4v %-7v %-7v┃", idx, white, black))
	}
	drawText(s, x, topMargin+moveRows, style, "┗━━━━━━━━━━━━━━━━━━━━━┛")
}

// drawStatus prints the result, the last message and key help.
func drawStatus(s tcell.Screen, v view) {
	y := topMargin + 10
	if result := v.session.ResultText(); result != "" {
		drawText(s, leftMargin, y, tcell.StyleDefault.Foreground(v.theme.Result).Bold(true), result)
	} else if v.session.Status() == session.StatusCheck {
		drawText(s, leftMargin, y, tcell.StyleDefault.Foreground(v.theme.Result), "Check")
	}

	drawText(s, leftMargin, y+1, tcell.StyleDefault.Foreground(v.theme.Msg), v.msg)

	help := "arrows/hjkl move  enter select  u undo  r restart  f flip  q quit"
	drawText(s, leftMargin, y+3, tcell.StyleDefault.Foreground(v.theme.Help), help)
	drawText(s, leftMargin, y+4, tcell.StyleDefault.Foreground(v.theme.Help), "game "+v.session.ID())
}
