package board

// Color is a side: White moves first.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other flips White and Black.
func (c Color) Other() Color {
	return c ^ 1
}

var colorNames = [...]string{"White", "Black", "NoColor"}

func (c Color) String() string {
	if c > NoColor {
		return colorNames[NoColor]
	}
	return colorNames[c]
}

// forward is the row delta of a pawn push; white pawns climb toward row 0.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// homeRow is where the color's king and rooks start.
func (c Color) homeRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PieceType is a piece kind without color.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

var kindNames = [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "None"}

func (pt PieceType) String() string {
	if pt > NoPieceType {
		return kindNames[NoPieceType]
	}
	return kindNames[pt]
}

// Piece is the content of one cell: kind + 6*color, or NoPiece.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece
)

// pieceLetters holds the FEN letter of each piece in Piece order.
const pieceLetters = "PNBRQKpnbrqk"

// NewPiece combines a kind and a color. Out-of-range input yields NoPiece.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*6
}

func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// IsEmpty reports whether the cell holds nothing.
func (p Piece) IsEmpty() bool {
	return p >= NoPiece
}

// String is the FEN letter, or a space for an empty cell.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	return pieceLetters[p : p+1]
}

// Code names the sprite for a piece: "wK", "bP", or "--" when empty.
func (p Piece) Code() string {
	if p >= NoPiece {
		return "--"
	}
	side := "w"
	if p.Color() == Black {
		side = "b"
	}
	return side + pieceLetters[p.Type():p.Type()+1]
}

// PieceFromChar maps a FEN letter back to a Piece; anything else is NoPiece.
func PieceFromChar(c byte) Piece {
	for i := 0; i < len(pieceLetters); i++ {
		if pieceLetters[i] == c {
			return Piece(i)
		}
	}
	return NoPiece
}
