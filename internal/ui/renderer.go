package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessrules/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
	ResultShadow   color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{70, 110, 230, 120},  // Blue selection
		LegalMoveColor: color.RGBA{90, 170, 90, 140},   // Green targets
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		Background:     color.RGBA{40, 44, 52, 255},
		TextColor:      color.RGBA{20, 20, 20, 255},
		ResultShadow:   color.RGBA{128, 128, 128, 255},
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// SetFlipped turns the board so row 7 is drawn at the top.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Flipped reports whether the board is drawn upside down.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v float64) float32 {
	return float32(v * r.scale)
}

// DrawBoard draws the chess board squares. Row 0 col 0 is light, as on a
// real board where a8 is a light square.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := r.s(float64(r.squareSize))
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := r.theme.LightSquare
			if (row+col)%2 == 1 {
				c = r.theme.DarkSquare
			}
			x, y := r.SquareToScreen(board.NewSquare(row, col))
			vector.DrawFilledRect(screen, r.s(float64(x)), r.s(float64(y)), size, size, c, false)
		}
	}
}

// squareColor returns the base color of a square.
func (r *Renderer) squareColor(sq board.Square) color.RGBA {
	if (sq.Row()+sq.Col())%2 == 1 {
		return r.theme.DarkSquare
	}
	return r.theme.LightSquare
}

// DrawHighlights draws the last move, the selected square and its legal
// destinations.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, targets []board.Move, lastMove board.Move, hasLast bool) {
	if hasLast {
		r.highlightSquare(screen, lastMove.From, r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To, r.theme.LastMoveColor)
	}

	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	for _, m := range targets {
		r.highlightSquare(screen, m.To, r.theme.LegalMoveColor)
	}
}

// DrawCheck highlights the king's square if in check.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq board.Square) {
	r.highlightSquare(screen, kingSq, r.theme.CheckColor)
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	size := r.s(float64(r.squareSize))
	vector.DrawFilledRect(screen, r.s(float64(x)), r.s(float64(y)), size, size, c, false)
}

// DrawPieces draws every piece on the board. shake, if set, returns a
// horizontal offset per square.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b *board.Board, shake func(board.Square) float64) {
	r.drawPiecesExcept(screen, b, board.NoSquare, shake)
}

func (r *Renderer) drawPiecesExcept(screen *ebiten.Image, b *board.Board, skip board.Square, shake func(board.Square) float64) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := board.NewSquare(row, col)
			if sq == skip {
				continue
			}
			x, y := r.SquareToScreen(sq)
			dx := 0.0
			if shake != nil {
				dx = shake(sq)
			}
			r.sprites.DrawPieceAt(screen, b.At(sq), float64(r.s(float64(x)+dx)), float64(r.s(float64(y))))
		}
	}
}

// DrawAnimatedMove draws the board mid-animation: the destination square is
// repainted with whatever was captured there and the moving piece is drawn
// at its interpolated position.
func (r *Renderer) DrawAnimatedMove(screen *ebiten.Image, b *board.Board, anim *MoveAnimation) {
	m := anim.Move
	r.drawPiecesExcept(screen, b, m.To, nil)

	x, y := r.SquareToScreen(m.To)
	size := r.s(float64(r.squareSize))
	vector.DrawFilledRect(screen, r.s(float64(x)), r.s(float64(y)), size, size, r.squareColor(m.To), false)

	if m.IsCapture() {
		capSq := m.To
		if m.IsEnPassant {
			capSq = board.NewSquare(m.From.Row(), m.To.Col())
		}
		cx, cy := r.SquareToScreen(capSq)
		r.sprites.DrawPieceAt(screen, m.Captured, float64(r.s(float64(cx))), float64(r.s(float64(cy))))
	}

	row, col := anim.Position()
	px, py := r.cellToScreen(row, col)
	r.sprites.DrawPieceAt(screen, m.Moved, float64(r.s(px)), float64(r.s(py)))
}

// cellToScreen maps fractional board coordinates to logical pixels.
func (r *Renderer) cellToScreen(row, col float64) (float64, float64) {
	if r.flipped {
		row, col = 7-row, 7-col
	}
	return col * float64(r.squareSize), row * float64(r.squareSize)
}

// SquareToScreen converts a board square to logical screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	x, y := r.cellToScreen(float64(sq.Row()), float64(sq.Col()))
	return int(x), int(y)
}

// ScreenToSquare converts logical screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	row, col := y/r.squareSize, x/r.squareSize
	if r.flipped {
		row, col = 7-row, 7-col
	}
	return board.NewSquare(row, col)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
