package movegen

import "github.com/bjorling/corvid/pkg/board"

// Outcome classifies the state of a game after a ply.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	ThreefoldRepetition
	FiftyMoveRule
	InsufficientMaterial
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case ThreefoldRepetition:
		return "threefold-repetition"
	case FiftyMoveRule:
		return "fifty-move-rule"
	case InsufficientMaterial:
		return "insufficient-material"
	default:
		return "unknown"
	}
}

// GameState is the result of classifying a position.
type GameState struct {
	Outcome Outcome

	// Winner is only meaningful when Outcome == Checkmate.
	Winner board.Color
}

// History counts the Zobrist hashes of positions seen earlier in the game
// (occurrence counts only, not their order), so Classify can detect
// threefold repetition. The caller is
// responsible for pushing the hash of every position reached, including
// the starting one, before calling Classify on it.
type History struct {
	counts map[uint64]int
}

func NewHistory() *History {
	return &History{counts: make(map[uint64]int)}
}

// Push records that a position with the given hash has been reached.
func (h *History) Push(hash uint64) {
	h.counts[hash]++
}

// Pop undoes the most recent Push of hash, for callers that walk a search
// tree with an explicit undo rather than cloning positions.
func (h *History) Pop(hash uint64) {
	if n := h.counts[hash]; n <= 1 {
		delete(h.counts, hash)
	} else {
		h.counts[hash] = n - 1
	}
}

// Count returns how many times hash has been recorded.
func (h *History) Count(hash uint64) int {
	return h.counts[hash]
}

// Classify determines the GameState of pos. hist must already include pos's
// own hash (via Push) for repetition counting to be meaningful; a nil hist
// disables repetition detection (treated as never repeating).
func Classify(pos *board.Position, hist *History) GameState {
	if isInsufficientMaterial(pos) {
		return GameState{Outcome: InsufficientMaterial}
	}
	if pos.HalfmoveClock() >= 100 {
		return GameState{Outcome: FiftyMoveRule}
	}
	if hist != nil && hist.Count(pos.Hash()) >= 3 {
		return GameState{Outcome: ThreefoldRepetition}
	}
	if len(LegalMoves(pos)) == 0 {
		us := pos.Turn()
		if InCheck(pos, us) {
			return GameState{Outcome: Checkmate, Winner: us.Opponent()}
		}
		return GameState{Outcome: Stalemate}
	}
	return GameState{Outcome: Ongoing}
}

// isInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate by any sequence of legal moves: K vs K; K+minor vs
// K; K+B vs K+B with both bishops on same-colored squares.
func isInsufficientMaterial(pos *board.Position) bool {
	if pos.Pieces(board.White, board.Pawn) != 0 || pos.Pieces(board.Black, board.Pawn) != 0 {
		return false
	}
	if pos.Pieces(board.White, board.Rook) != 0 || pos.Pieces(board.Black, board.Rook) != 0 {
		return false
	}
	if pos.Pieces(board.White, board.Queen) != 0 || pos.Pieces(board.Black, board.Queen) != 0 {
		return false
	}

	wMinors := pos.Pieces(board.White, board.Knight).PopCount() + pos.Pieces(board.White, board.Bishop).PopCount()
	bMinors := pos.Pieces(board.Black, board.Knight).PopCount() + pos.Pieces(board.Black, board.Bishop).PopCount()

	if wMinors == 0 && bMinors == 0 {
		return true // K vs K
	}
	if wMinors+bMinors == 1 {
		return true // K+minor vs K (covers K+knight vs K)
	}
	if wMinors == 1 && bMinors == 1 {
		wb := pos.Pieces(board.White, board.Bishop)
		bb := pos.Pieces(board.Black, board.Bishop)
		if wb != 0 && bb != 0 {
			return squareColor(wb.FirstSquare()) == squareColor(bb.FirstSquare())
		}
	}
	return false
}

// squareColor returns 0 for a dark square (e.g. a1), 1 for a light square.
func squareColor(sq board.Square) int {
	return (int(sq.Rank()) + int(sq.File())) % 2
}
