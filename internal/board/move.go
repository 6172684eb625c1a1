package board

// Move describes one ply. Moves are built from the board they apply to and
// are never modified afterwards, so they can be shared freely.
type Move struct {
	From     Square
	To       Square
	Moved    Piece
	Captured Piece // NoPiece when the destination was empty

	IsPromotion bool
	IsEnPassant bool
	IsCastle    bool
}

// NoMove represents an invalid or null move.
var NoMove = Move{From: NoSquare, To: NoSquare, Moved: NoPiece, Captured: NoPiece}

// NewMove creates a move from the pieces currently on b.
// A pawn landing on its farthest rank is flagged as a promotion.
func NewMove(from, to Square, b *Board) Move {
	moved := b.At(from)
	m := Move{
		From:     from,
		To:       to,
		Moved:    moved,
		Captured: b.At(to),
	}
	m.IsPromotion = moved.Type() == Pawn && to.Row() == moved.Color().Other().homeRow()
	return m
}

// NewEnPassant creates an en passant capture. The captured piece is the
// opposing pawn even though it does not stand on the destination square.
func NewEnPassant(from, to Square, b *Board) Move {
	m := NewMove(from, to, b)
	m.IsEnPassant = true
	m.Captured = NewPiece(Pawn, m.Moved.Color().Other())
	return m
}

// NewCastling creates a castling move (the king's movement).
func NewCastling(from, to Square, b *Board) Move {
	m := NewMove(from, to, b)
	m.IsCastle = true
	return m
}

// ID returns the origin/destination key
// startRow*1000 + startCol*100 + endRow*10 + endCol.
func (m Move) ID() int {
	return m.From.Row()*1000 + m.From.Col()*100 + m.To.Row()*10 + m.To.Col()
}

// Equal reports whether two moves share origin and destination.
// Promotion, en passant and castle flags are not compared: a candidate
// built from two clicks matches the generated special move it names.
func (m Move) Equal(other Move) bool {
	return m.ID() == other.ID()
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// PromotedPiece returns the piece that lands on the destination square.
// Promotion always yields a queen.
func (m Move) PromotedPiece() Piece {
	if !m.IsPromotion {
		return m.Moved
	}
	return NewPiece(Queen, m.Moved.Color())
}

// String returns the origin and destination in algebraic form, e.g. "e2e4".
func (m Move) String() string {
	if m.From == NoSquare || m.To == NoSquare {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// UCI returns the move in UCI form, with a "q" suffix on promotions.
func (m Move) UCI() string {
	s := m.String()
	if m.IsPromotion {
		s += "q"
	}
	return s
}

// snapshot stores the per-ply state that undo restores.
// It is a plain value so history entries never alias the live rights.
type snapshot struct {
	Castling  CastlingRights
	EnPassant Square
}
