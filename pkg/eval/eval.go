// Package eval computes a static, white-positive scalar score for a
// position: material plus piece-square placement, mobility, pawn structure,
// and king safety. Evaluate is total over legal positions and never panics.
package eval

import (
	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/movegen"
)

// Evaluate returns the static score of pos under w, positive favoring white
// regardless of whose turn it is. Search negates it per ply (negamax); the
// evaluator itself never looks at side to move except for the mobility
// term, which only counts moves for the player whose turn it is.
func Evaluate(pos *board.Position, w Weights) Score {
	var s Score
	s += materialAndPlacement(pos, w)
	s += mobility(pos, w)
	s += pawnStructure(pos, w)
	s += kingSafety(pos, w)
	return s
}

func materialAndPlacement(pos *board.Position, w Weights) Score {
	endgame := isEndgame(pos)

	var s Score
	for c := board.ZeroColor; c < board.NumColors; c++ {
		sign := Score(c.Unit())
		for p := board.Pawn; p < board.NumPieces; p++ {
			table := w.PST[p]
			if p == board.King && endgame {
				table = w.KingEndgamePST
			}
			for _, sq := range pos.Pieces(c, p).ToSquares() {
				s += sign * (w.Material[p] + placement(table, c, sq))
			}
		}
	}
	return s
}

// isEndgame reports whether the total count of queens plus rooks on the
// board is small enough to switch the king to its endgame table.
func isEndgame(pos *board.Position) bool {
	major := pos.Pieces(board.White, board.Queen).PopCount() +
		pos.Pieces(board.Black, board.Queen).PopCount() +
		pos.Pieces(board.White, board.Rook).PopCount() +
		pos.Pieces(board.Black, board.Rook).PopCount()
	return major <= 2
}

// placement looks up a piece-square bonus for color c on sq. The tables are
// authored from white's perspective; black mirrors the rank.
func placement(table pst, c board.Color, sq board.Square) Score {
	rank := int(sq.Rank())
	if c == board.Black {
		rank = 7 - rank
	}
	return table[rank][sq.File()]
}

// mobility counts legal moves per piece kind for the side to move only,
// weighted per piece kind and signed by side to move.
func mobility(pos *board.Position, w Weights) Score {
	us := pos.Turn()
	var counts [board.NumPieces]int
	for _, m := range movegen.LegalMoves(pos) {
		counts[m.Piece]++
	}

	var s Score
	for p := board.Pawn; p < board.NumPieces; p++ {
		s += w.Mobility[p] * Score(counts[p])
	}
	return s * Score(us.Unit())
}

func pawnStructure(pos *board.Position, w Weights) Score {
	var s Score
	for c := board.ZeroColor; c < board.NumColors; c++ {
		sign := Score(c.Unit())
		own := pos.Pieces(c, board.Pawn)

		var fileCount [8]int
		for _, sq := range own.ToSquares() {
			fileCount[sq.File()]++
		}

		for f := board.ZeroFile; f < board.NumFiles; f++ {
			count := fileCount[f]
			if count == 0 {
				continue
			}
			if count > 1 {
				s += sign * Score(count-1) * w.DoubledPawnPenalty
			}

			adjacent := adjacentFileCount(fileCount, f)
			if adjacent == 0 {
				s += sign * w.IsolatedPawnPenalty
			} else {
				s += sign * w.ConnectedPawnBonus
			}
		}

		for _, sq := range own.ToSquares() {
			if isPassedPawn(pos, c, sq) {
				s += sign * w.PassedPawnBonus
			}
		}
	}
	return s
}

func adjacentFileCount(fileCount [8]int, f board.File) int {
	n := 0
	if f > 0 {
		n += fileCount[f-1]
	}
	if f < board.NumFiles-1 {
		n += fileCount[f+1]
	}
	return n
}

// isPassedPawn reports whether no enemy pawn occupies the pawn's own file or
// an adjacent file on any rank ahead of it (toward promotion).
func isPassedPawn(pos *board.Position, c board.Color, sq board.Square) bool {
	enemy := pos.Pieces(c.Opponent(), board.Pawn)
	f := sq.File()

	for _, esq := range enemy.ToSquares() {
		df := int(esq.File()) - int(f)
		if df < -1 || df > 1 {
			continue
		}
		if isAhead(c, sq.Rank(), esq.Rank()) {
			return false
		}
	}
	return true
}

// isAhead reports whether rank `of` lies strictly ahead of `from` for color c.
func isAhead(c board.Color, from, of board.Rank) bool {
	if c == board.White {
		return of > from
	}
	return of < from
}

// kingSafety rewards a pawn shield directly in front of each king and
// penalizes open/half-open files around it.
func kingSafety(pos *board.Position, w Weights) Score {
	var s Score
	for c := board.ZeroColor; c < board.NumColors; c++ {
		sign := Score(c.Unit())
		king := pos.King(c)

		s += sign * Score(shieldPawns(pos, c, king)) * w.PawnShieldBonus
		s += sign * fileSafety(pos, c, king, w)
	}
	return s
}

// shieldPawns counts friendly pawns in the three squares directly in front
// of the king's square (one rank forward, file-1..file+1).
func shieldPawns(pos *board.Position, c board.Color, king board.Square) int {
	rank, ok := stepForward(c, king.Rank())
	if !ok {
		return 0
	}
	own := pos.Pieces(c, board.Pawn)

	n := 0
	kf := int(king.File())
	for df := -1; df <= 1; df++ {
		f := kf + df
		if f < 0 || f >= int(board.NumFiles) {
			continue
		}
		if own.IsSet(board.NewSquare(board.File(f), rank)) {
			n++
		}
	}
	return n
}

func stepForward(c board.Color, r board.Rank) (board.Rank, bool) {
	if c == board.White {
		if r >= board.Rank8 {
			return 0, false
		}
		return r + 1, true
	}
	if r <= board.Rank1 {
		return 0, false
	}
	return r - 1, true
}

// fileSafety penalizes open and half-open files among the king's own file
// and its immediate neighbors.
func fileSafety(pos *board.Position, c board.Color, king board.Square, w Weights) Score {
	white := pos.Pieces(board.White, board.Pawn)
	black := pos.Pieces(board.Black, board.Pawn)

	var s Score
	kf := int(king.File())
	for df := -1; df <= 1; df++ {
		f := kf + df
		if f < 0 || f >= int(board.NumFiles) {
			continue
		}
		fb := board.BitFile(board.File(f))
		hasWhite := white&fb != 0
		hasBlack := black&fb != 0

		switch {
		case !hasWhite && !hasBlack:
			s += w.OpenKingFilePenalty
		case c == board.White && !hasWhite && hasBlack:
			s += w.HalfOpenFilePenalty
		case c == board.Black && !hasBlack && hasWhite:
			s += w.HalfOpenFilePenalty
		}
	}
	return s
}
