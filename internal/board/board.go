package board

import "strings"

// Board is the 8x8 grid of cells, indexed [row][col].
// Row 0 is black's back rank as rendered at the top of the screen.
type Board [8][8]Piece

// startingBoard is the template every new game copies from.
// Board is an array, so each GameState owns an independent copy.
var startingBoard = boardFromRanks(
	"rnbqkbnr",
	"pppppppp",
	"........",
	"........",
	"........",
	"........",
	"PPPPPPPP",
	"RNBQKBNR",
)

// boardFromRanks reads eight ranks of FEN letters, rank 8 first, with '.'
// for an empty cell. Any other character also leaves the cell empty.
func boardFromRanks(ranks ...string) Board {
	b := EmptyBoard()
	for r := 0; r < 8 && r < len(ranks); r++ {
		for c := 0; c < 8 && c < len(ranks[r]); c++ {
			b[r][c] = PieceFromChar(ranks[r][c])
		}
	}
	return b
}

// StartingBoard returns a fresh copy of the standard starting position.
func StartingBoard() Board {
	return startingBoard
}

// EmptyBoard returns a board with every cell empty.
func EmptyBoard() Board {
	var b Board
	for r := range b {
		for c := range b[r] {
			b[r][c] = NoPiece
		}
	}
	return b
}

// At returns the piece on sq, or NoPiece if empty.
func (b *Board) At(sq Square) Piece {
	return b[sq.Row()][sq.Col()]
}

// Put places p on sq, overwriting whatever was there.
func (b *Board) Put(sq Square, p Piece) {
	b[sq.Row()][sq.Col()] = p
}

// find returns the first square holding p in row-major order.
func (b *Board) find(p Piece) Square {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if b[r][c] == p {
				return Square(r*8 + c)
			}
		}
	}
	return NoSquare
}

// String returns a visual representation of the board, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for r := 0; r < 8; r++ {
		sb.WriteByte('8' - byte(r))
		sb.WriteString("  ")
		for c := 0; c < 8; c++ {
			p := b[r][c]
			if p == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(p.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
