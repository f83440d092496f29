package movegen

import "github.com/bjorling/corvid/pkg/board"

// LegalMoves returns every pseudo-legal move from PseudoLegalMoves that
// does not leave the mover's own king in check. This single filter covers
// pins, discovered checks and moving into check, at the cost of making and
// inspecting a full clone per candidate move.
func LegalMoves(pos *board.Position) []board.Move {
	us := pos.Turn()
	pseudo := PseudoLegalMoves(pos)

	legal := make([]board.Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := pos.MakeMove(m)
		if !InCheck(&next, us) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegal reports whether m, assumed pseudo-legal for pos, is also legal.
func IsLegal(pos *board.Position, m board.Move) bool {
	us := pos.Turn()
	next := pos.MakeMove(m)
	return !InCheck(&next, us)
}
