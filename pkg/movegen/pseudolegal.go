package movegen

import "github.com/bjorling/corvid/pkg/board"

// PseudoLegalMoves enumerates every move available to the side to move on
// pos, ignoring whether the move leaves the mover's own king in check. Use
// LegalMoves to filter that out.
func PseudoLegalMoves(pos *board.Position) []board.Move {
	moves := make([]board.Move, 0, 48)
	us := pos.Turn()

	moves = appendPawnMoves(moves, pos, us)
	moves = appendPieceMoves(moves, pos, us, board.Knight)
	moves = appendPieceMoves(moves, pos, us, board.Bishop)
	moves = appendPieceMoves(moves, pos, us, board.Rook)
	moves = appendPieceMoves(moves, pos, us, board.Queen)
	moves = appendKingMoves(moves, pos, us)

	return moves
}

func appendPawnMoves(moves []board.Move, pos *board.Position, us board.Color) []board.Move {
	them := us.Opponent()
	occ := pos.All()
	promoRank := board.PawnPromotionRank(us)

	for _, from := range pos.Pieces(us, board.Pawn).ToSquares() {
		// Single and double push.
		pushRank := forwardRank(from, us, 1)
		if pushRank.IsValid() {
			push := board.NewSquare(from.File(), pushRank)
			if !occ.IsSet(push) {
				moves = appendPawnTarget(moves, from, push, board.NoPiece, promoRank)

				if from.Rank() == board.PawnHomeRank(us) {
					doubleRank := forwardRank(from, us, 2)
					double := board.NewSquare(from.File(), doubleRank)
					if !occ.IsSet(double) {
						moves = append(moves, board.Move{From: from, To: double, Piece: board.Pawn})
					}
				}
			}
		}

		// Diagonal captures, including en passant.
		for _, to := range diagTargets(from, us) {
			if capt, color, ok := pos.PieceAt(to); ok && color == them {
				moves = appendPawnTarget(moves, from, to, capt, promoRank)
				continue
			}
			if ep, ok := pos.EnPassant(); ok && to == ep {
				moves = append(moves, board.Move{
					From: from, To: to, Piece: board.Pawn, Captured: board.Pawn, IsEnPassant: true,
				})
			}
		}
	}
	return moves
}

// appendPawnTarget appends a quiet move or capture to `to`, expanding into
// the four promotion moves when `to` sits on the promotion rank.
func appendPawnTarget(moves []board.Move, from, to board.Square, captured board.Piece, promoRank board.Rank) []board.Move {
	if to.Rank() == promoRank {
		for _, promo := range board.Promotable {
			moves = append(moves, board.Move{From: from, To: to, Piece: board.Pawn, Captured: captured, Promotion: promo})
		}
		return moves
	}
	return append(moves, board.Move{From: from, To: to, Piece: board.Pawn, Captured: captured})
}

// forwardRank returns the rank reached by stepping n ranks forward (toward
// the opponent) for color c from sq, or an invalid Rank if that would fall
// off the board.
func forwardRank(sq board.Square, c board.Color, n int) board.Rank {
	r := int(sq.Rank())
	if c == board.White {
		r += n
	} else {
		r -= n
	}
	if r < 0 || r >= int(board.NumRanks) {
		return board.Rank(board.NumRanks) // invalid sentinel
	}
	return board.Rank(r)
}

func diagTargets(from board.Square, us board.Color) []board.Square {
	caps := board.PawnCaptureboard(us, board.BitMask(from))
	return caps.ToSquares()
}

func appendPieceMoves(moves []board.Move, pos *board.Position, us board.Color, piece board.Piece) []board.Move {
	them := us.Opponent()
	occ := pos.All()
	own := pos.Occupancy(us)

	for _, from := range pos.Pieces(us, piece).ToSquares() {
		var targets board.Bitboard
		switch piece {
		case board.Knight:
			targets = board.KnightAttackboard(from)
		case board.Bishop:
			targets = board.BishopAttackboard(occ, from)
		case board.Rook:
			targets = board.RookAttackboard(occ, from)
		case board.Queen:
			targets = board.QueenAttackboard(occ, from)
		}
		targets &^= own

		for _, to := range targets.ToSquares() {
			captured := board.NoPiece
			if capt, color, ok := pos.PieceAt(to); ok && color == them {
				captured = capt
			}
			moves = append(moves, board.Move{From: from, To: to, Piece: piece, Captured: captured})
		}
	}
	return moves
}

func appendKingMoves(moves []board.Move, pos *board.Position, us board.Color) []board.Move {
	them := us.Opponent()
	own := pos.Occupancy(us)
	from := pos.King(us)

	targets := board.KingAttackboard(from) &^ own
	for _, to := range targets.ToSquares() {
		captured := board.NoPiece
		if capt, color, ok := pos.PieceAt(to); ok && color == them {
			captured = capt
		}
		moves = append(moves, board.Move{From: from, To: to, Piece: board.King, Captured: captured})
	}

	moves = appendCastling(moves, pos, us)
	return moves
}

func appendCastling(moves []board.Move, pos *board.Position, us board.Color) []board.Move {
	rank := board.Rank1
	if us == board.Black {
		rank = board.Rank8
	}
	king := board.NewSquare(board.FileE, rank)
	if pos.King(us) != king {
		return moves
	}
	if IsAttacked(pos, king, us.Opponent()) {
		return moves
	}

	if canCastleKingSide(pos, us, rank) {
		to := board.NewSquare(board.FileG, rank)
		moves = append(moves, board.Move{From: king, To: to, Piece: board.King, IsCastling: true})
	}
	if canCastleQueenSide(pos, us, rank) {
		to := board.NewSquare(board.FileC, rank)
		moves = append(moves, board.Move{From: king, To: to, Piece: board.King, IsCastling: true})
	}
	return moves
}

func canCastleKingSide(pos *board.Position, us board.Color, rank board.Rank) bool {
	right := board.WhiteKingSide
	if us == board.Black {
		right = board.BlackKingSide
	}
	if !pos.Castling().IsAllowed(right) {
		return false
	}

	f, g, h := board.NewSquare(board.FileF, rank), board.NewSquare(board.FileG, rank), board.NewSquare(board.FileH, rank)
	rook, color, ok := pos.PieceAt(h)
	if !ok || rook != board.Rook || color != us {
		return false
	}
	if pos.All().IsSet(f) || pos.All().IsSet(g) {
		return false
	}
	them := us.Opponent()
	return !IsAttacked(pos, f, them) && !IsAttacked(pos, g, them)
}

func canCastleQueenSide(pos *board.Position, us board.Color, rank board.Rank) bool {
	right := board.WhiteQueenSide
	if us == board.Black {
		right = board.BlackQueenSide
	}
	if !pos.Castling().IsAllowed(right) {
		return false
	}

	b, c, d, a := board.NewSquare(board.FileB, rank), board.NewSquare(board.FileC, rank), board.NewSquare(board.FileD, rank), board.NewSquare(board.FileA, rank)
	rook, color, ok := pos.PieceAt(a)
	if !ok || rook != board.Rook || color != us {
		return false
	}
	if pos.All().IsSet(b) || pos.All().IsSet(c) || pos.All().IsSet(d) {
		return false
	}
	them := us.Opponent()
	return !IsAttacked(pos, c, them) && !IsAttacked(pos, d, them)
}
