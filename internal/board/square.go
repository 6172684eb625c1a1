// Package board implements the chess rules: board representation, move
// generation, legality filtering and game state with make/undo.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Squares are numbered row-major from the top-left of the rendered board:
// A8=0, H8=7, A1=56, H1=63. Row 0 is rank 8 and column 0 is file a.
type Square uint8

// Square constants for all 64 squares.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	NoSquare Square = 64
)

// NewSquare creates a square from a board row and column (0-indexed).
// Coordinates outside 0-7 are a caller bug and panic.
func NewSquare(row, col int) Square {
	if !onBoard(row, col) {
		panic(fmt.Sprintf("board: coordinates out of range: (%d, %d)", row, col))
	}
	return Square(row*8 + col)
}

// onBoard reports whether row and col address a square.
func onBoard(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

// Row returns the board row (0 = rank 8, 7 = rank 1).
func (sq Square) Row() int {
	return int(sq) >> 3
}

// Col returns the board column (0 = file a, 7 = file h).
func (sq Square) Col() int {
	return int(sq) & 7
}

// File returns the file letter of the square.
func (sq Square) File() byte {
	return 'a' + byte(sq.Col())
}

// Rank returns the rank digit of the square.
func (sq Square) Rank() byte {
	return '8' - byte(sq.Row())
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return string([]byte{sq.File(), sq.Rank()})
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	col := int(s[0]) - 'a'
	row := '8' - int(s[1])

	if !onBoard(row, col) {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return NewSquare(row, col), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// offset returns the square dr rows and dc columns away, and false when
// that would leave the board.
func (sq Square) offset(dr, dc int) (Square, bool) {
	r, c := sq.Row()+dr, sq.Col()+dc
	if !onBoard(r, c) {
		return NoSquare, false
	}
	return Square(r*8 + c), true
}
