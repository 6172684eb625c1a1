package board

// Perft counts the leaf nodes of the legal move tree to the given depth.
// This is the standard way to verify move generation correctness.
// Promotions count once since they always yield a queen.
func (s *GameState) Perft(depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := s.legalMoves()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		s.MakeMove(m)
		nodes += s.Perft(depth - 1)
		s.UndoMove()
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes int64
}

// Divide runs Perft(depth-1) below each legal root move, in generation order.
func (s *GameState) Divide(depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := s.legalMoves()
	out := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		s.MakeMove(m)
		out = append(out, DivideEntry{Move: m, Nodes: s.Perft(depth - 1)})
		s.UndoMove()
	}
	return out
}
