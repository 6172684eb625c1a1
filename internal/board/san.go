package board

import (
	"strings"
)

// SAN converts m, which must be legal in the current position, to Standard
// Algebraic Notation. The state and its terminal flags are left untouched.
func (s *GameState) SAN(m Move) string {
	if m.From == NoSquare {
		return "-"
	}

	var sb strings.Builder

	// Castling
	if m.IsCastle {
		if m.To.Col() > m.From.Col() {
			sb.WriteString("O-O") // Kingside
		} else {
			sb.WriteString("O-O-O") // Queenside
		}
	} else {
		pt := m.Moved.Type()

		// Piece letter and disambiguation (not for pawns)
		if pt != Pawn {
			sb.WriteByte("PNBRQK"[pt])
			sb.WriteString(s.disambiguation(m))
		}

		// Capture marker
		if m.IsCapture() {
			if pt == Pawn {
				// Pawn captures include the file of origin
				sb.WriteByte(m.From.File())
			}
			sb.WriteByte('x')
		}

		// Destination square
		sb.WriteString(m.To.String())

		// Promotion
		if m.IsPromotion {
			sb.WriteString("=Q")
		}
	}

	// Check/checkmate marker
	s.MakeMove(m)
	if s.InCheck() {
		if s.HasLegalMoves() {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	s.UndoMove()

	return sb.String()
}

// disambiguation returns the origin file, rank or square needed when
// another piece of the same kind can reach the same destination.
func (s *GameState) disambiguation(m Move) string {
	var candidates []Square
	for _, other := range s.legalMoves() {
		if other.To != m.To || other.From == m.From || other.Moved != m.Moved {
			continue
		}
		candidates = append(candidates, other.From)
	}

	// No ambiguity
	if len(candidates) == 0 {
		return ""
	}

	sameFile := false
	sameRank := false
	for _, sq := range candidates {
		if sq.Col() == m.From.Col() {
			sameFile = true
		}
		if sq.Row() == m.From.Row() {
			sameRank = true
		}
	}

	if !sameFile {
		return string(m.From.File())
	}
	if !sameRank {
		return string(m.From.Rank())
	}
	return m.From.String()
}

// MovesToSAN replays moves on a copy of the starting position of s and
// returns their SAN forms.
func (s *GameState) MovesToSAN() []string {
	replay := s.initial()
	result := make([]string, len(s.moveLog))
	for i, m := range s.moveLog {
		result[i] = replay.SAN(m)
		replay.MakeMove(m)
	}
	return result
}

// initial rebuilds the state this game started from by undoing a copy.
func (s *GameState) initial() *GameState {
	c := s.clone()
	for c.UndoMove() {
	}
	return c
}

// clone returns an independent copy of s.
func (s *GameState) clone() *GameState {
	c := *s
	c.history = append([]snapshot(nil), s.history...)
	c.moveLog = append([]Move(nil), s.moveLog...)
	return &c
}
