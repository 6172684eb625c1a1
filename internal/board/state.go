package board

// GameState is the authoritative state of one game: board, side to move,
// cached king squares, en passant target, castling rights and move log.
// It is mutated only through MakeMove and UndoMove and is not safe for
// concurrent use.
type GameState struct {
	board      Board
	sideToMove Color
	startSide  Color

	// King positions (cached for check detection)
	kingSquare [2]Square

	// Target square for en passant, NoSquare if none
	enPassant Square
	castling  CastlingRights

	// history holds the initial snapshot plus one entry per committed ply.
	history []snapshot
	moveLog []Move

	checkmate bool
	stalemate bool
}

// NewGameState creates a game at the standard starting position with full
// castling rights and white to move.
func NewGameState() *GameState {
	return NewFromBoard(StartingBoard(), White, AllCastling, NoSquare)
}

// NewFromBoard creates a game from an arbitrary board. The board is copied.
// No validation is performed: the board must hold exactly one king of each
// color and the rights and en passant target must be consistent with it.
func NewFromBoard(b Board, sideToMove Color, castling CastlingRights, enPassant Square) *GameState {
	s := &GameState{
		board:      b,
		sideToMove: sideToMove,
		startSide:  sideToMove,
		enPassant:  enPassant,
		castling:   castling,
	}
	s.kingSquare[White] = b.find(WhiteKing)
	s.kingSquare[Black] = b.find(BlackKing)
	s.history = []snapshot{{Castling: castling, EnPassant: enPassant}}
	return s
}

// Board returns a copy of the board grid.
func (s *GameState) Board() Board {
	return s.board
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (s *GameState) PieceAt(sq Square) Piece {
	return s.board.At(sq)
}

// SideToMove returns the color whose turn it is.
func (s *GameState) SideToMove() Color {
	return s.sideToMove
}

// KingSquare returns the cached king square for c.
func (s *GameState) KingSquare(c Color) Square {
	return s.kingSquare[c]
}

// EnPassant returns the en passant target, or NoSquare.
func (s *GameState) EnPassant() Square {
	return s.enPassant
}

// CastlingRights returns the current castling rights.
func (s *GameState) CastlingRights() CastlingRights {
	return s.castling
}

// CastlingHistory returns a copy of the rights recorded after each ply,
// preceded by the initial rights.
func (s *GameState) CastlingHistory() []CastlingRights {
	out := make([]CastlingRights, len(s.history))
	for i, h := range s.history {
		out[i] = h.Castling
	}
	return out
}

// MoveLog returns a copy of the committed moves, oldest first.
func (s *GameState) MoveLog() []Move {
	out := make([]Move, len(s.moveLog))
	copy(out, s.moveLog)
	return out
}

// Ply returns the number of committed moves.
func (s *GameState) Ply() int {
	return len(s.moveLog)
}

// LastMove returns the most recently committed move.
func (s *GameState) LastMove() (Move, bool) {
	if len(s.moveLog) == 0 {
		return NoMove, false
	}
	return s.moveLog[len(s.moveLog)-1], true
}

// IsCheckmate reports the result of the last LegalMoves call.
func (s *GameState) IsCheckmate() bool {
	return s.checkmate
}

// IsStalemate reports the result of the last LegalMoves call.
func (s *GameState) IsStalemate() bool {
	return s.stalemate
}

// InCheck returns true if the side to move is in check.
func (s *GameState) InCheck() bool {
	return s.kingAttacked(s.sideToMove)
}

func (s *GameState) kingAttacked(c Color) bool {
	return SquareAttacked(&s.board, c.Other(), s.kingSquare[c])
}

// MakeMove commits m. m must come from this state's move generation for
// the current position; nothing is checked.
func (s *GameState) MakeMove(m Move) {
	s.board.Put(m.From, NoPiece)
	s.board.Put(m.To, m.PromotedPiece())
	s.moveLog = append(s.moveLog, m)
	s.sideToMove = s.sideToMove.Other()

	if m.Moved.Type() == King {
		s.kingSquare[m.Moved.Color()] = m.To
	}

	// The captured pawn sits beside the origin, not on the destination.
	if m.IsEnPassant {
		s.board[m.From.Row()][m.To.Col()] = NoPiece
	}

	if m.Moved.Type() == Pawn && abs(m.From.Row()-m.To.Row()) == 2 {
		s.enPassant = NewSquare((m.From.Row()+m.To.Row())/2, m.From.Col())
	} else {
		s.enPassant = NoSquare
	}

	if m.IsCastle {
		rookFrom, rookTo := castleRookSquares(m)
		s.board.Put(rookTo, s.board.At(rookFrom))
		s.board.Put(rookFrom, NoPiece)
	}

	s.castling = s.castling.afterMove(m)
	s.history = append(s.history, snapshot{Castling: s.castling, EnPassant: s.enPassant})
}

// UndoMove reverts the last committed move. It returns false, and does
// nothing, when the log is empty.
func (s *GameState) UndoMove() bool {
	if len(s.moveLog) == 0 {
		return false
	}

	m := s.moveLog[len(s.moveLog)-1]
	s.moveLog = s.moveLog[:len(s.moveLog)-1]

	s.board.Put(m.From, m.Moved)
	s.board.Put(m.To, m.Captured)
	s.sideToMove = s.sideToMove.Other()

	if m.Moved.Type() == King {
		s.kingSquare[m.Moved.Color()] = m.From
	}

	if m.IsEnPassant {
		s.board.Put(m.To, NoPiece)
		s.board[m.From.Row()][m.To.Col()] = m.Captured
	}

	if m.IsCastle {
		rookFrom, rookTo := castleRookSquares(m)
		s.board.Put(rookFrom, s.board.At(rookTo))
		s.board.Put(rookTo, NoPiece)
	}

	s.history = s.history[:len(s.history)-1]
	prev := s.history[len(s.history)-1]
	s.castling = prev.Castling
	s.enPassant = prev.EnPassant

	return true
}

// castleRookSquares returns where the rook starts and lands for a castle.
func castleRookSquares(m Move) (from, to Square) {
	row, col := m.To.Row(), m.To.Col()
	if col > m.From.Col() {
		return NewSquare(row, col+1), NewSquare(row, col-1)
	}
	return NewSquare(row, col-2), NewSquare(row, col+1)
}

// String returns a visual representation of the game state.
func (s *GameState) String() string {
	str := s.board.String()
	str += "\nSide to move: " + s.sideToMove.String() + "\n"
	str += "Castling: " + s.castling.String() + "\n"
	str += "En passant: " + s.enPassant.String() + "\n"
	return str
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
