// Package movegen enumerates pseudo-legal and legal moves for a board
// position, answers attack queries, and classifies the state of a game
// (checkmate, stalemate, repetition, fifty-move rule, insufficient
// material). It operates entirely on *board.Position and owns no state of
// its own beyond the optional History used for repetition detection.
package movegen

import "github.com/bjorling/corvid/pkg/board"

// IsAttacked reports whether sq is attacked by any piece of color by on pos.
// It works backwards from the target square: a pawn of color by attacks sq
// iff sq is one of the squares that pawn's own attack pattern would reach,
// which is exactly the attack pattern of an opposing pawn standing on sq.
// The same reversal trick is unnecessary for the symmetric knight/king/ray
// patterns.
func IsAttacked(pos *board.Position, sq board.Square, by board.Color) bool {
	occ := pos.All()

	if board.KnightAttackboard(sq)&pos.Pieces(by, board.Knight) != 0 {
		return true
	}
	if board.KingAttackboard(sq)&pos.Pieces(by, board.King) != 0 {
		return true
	}
	if board.PawnCaptureboard(by.Opponent(), board.BitMask(sq))&pos.Pieces(by, board.Pawn) != 0 {
		return true
	}
	rookLike := pos.Pieces(by, board.Rook) | pos.Pieces(by, board.Queen)
	if board.RookAttackboard(occ, sq)&rookLike != 0 {
		return true
	}
	bishopLike := pos.Pieces(by, board.Bishop) | pos.Pieces(by, board.Queen)
	if board.BishopAttackboard(occ, sq)&bishopLike != 0 {
		return true
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func InCheck(pos *board.Position, c board.Color) bool {
	return IsAttacked(pos, pos.King(c), c.Opponent())
}

// AttackersTo returns every square occupied by a piece of color by that
// attacks sq.
func AttackersTo(pos *board.Position, sq board.Square, by board.Color) board.Bitboard {
	occ := pos.All()
	var ret board.Bitboard
	ret |= board.KnightAttackboard(sq) & pos.Pieces(by, board.Knight)
	ret |= board.KingAttackboard(sq) & pos.Pieces(by, board.King)
	ret |= board.PawnCaptureboard(by.Opponent(), board.BitMask(sq)) & pos.Pieces(by, board.Pawn)
	ret |= board.RookAttackboard(occ, sq) & (pos.Pieces(by, board.Rook) | pos.Pieces(by, board.Queen))
	ret |= board.BishopAttackboard(occ, sq) & (pos.Pieces(by, board.Bishop) | pos.Pieces(by, board.Queen))
	return ret
}
