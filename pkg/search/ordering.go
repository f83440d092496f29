package search

import (
	"sort"

	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/eval"
)

// maxPly bounds the killer-move table; quiescence does not add plies beyond
// this in any position a real game can reach.
const maxPly = 128

// priority is a single combined move-ordering key covering hash move,
// MVV-LVA, killers and history in one pass: higher moves first. Search
// consumes the entire ordered list up front rather than lazily.
type priority int32

const (
	hashMovePriority priority = 1_000_000
	captureBase      priority = 120_000
	promotionBase    priority = 90_000
)

var killerPriorities = [2]priority{80_000, 79_000}

// orderMoves sorts moves in place, highest priority first: hash move,
// MVV-LVA captures, promotions, killers, history.
func orderMoves(moves []board.Move, hashMove board.Move, hasHashMove bool, killers [2]board.Move, history *historyTable, w eval.Weights) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moveScore(moves[i], hashMove, hasHashMove, killers, history, w) >
			moveScore(moves[j], hashMove, hasHashMove, killers, history, w)
	})
}

func moveScore(m board.Move, hashMove board.Move, hasHashMove bool, killers [2]board.Move, history *historyTable, w eval.Weights) priority {
	if hasHashMove && m.Equals(hashMove) {
		return hashMovePriority
	}
	if m.IsCapture() {
		// MVV-LVA: descending by victim value, ties broken by ascending attacker value.
		return captureBase + priority(w.Material[m.Captured])*16 - priority(w.Material[m.Piece])
	}
	if m.IsPromotion() {
		return promotionBase + priority(w.Material[m.Promotion])
	}
	if killers[0].Equals(m) {
		return killerPriorities[0]
	}
	if killers[1].Equals(m) {
		return killerPriorities[1]
	}
	if history != nil {
		return priority(history[m.From][m.To])
	}
	return 0
}

// historyTable credits quiet moves that caused a beta cutoff, keyed by
// (from, to), weighted by depth^2. Counters saturate below the killer
// priorities so a long search cannot promote a history move past a killer.
type historyTable [board.NumSquares][board.NumSquares]priority

const historyLimit priority = 70_000

func (h *historyTable) credit(m board.Move, depth int) {
	if v := h[m.From][m.To] + priority(depth*depth); v < historyLimit {
		h[m.From][m.To] = v
	} else {
		h[m.From][m.To] = historyLimit
	}
}

// killerSet holds the two most-recently-cutting quiet moves per ply, most
// recent first.
type killerSet [maxPly][2]board.Move

func (k *killerSet) register(ply int, m board.Move) {
	if ply >= maxPly {
		return
	}
	if k[ply][0].Equals(m) {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = m
}

func (k *killerSet) at(ply int) [2]board.Move {
	if ply >= maxPly {
		return [2]board.Move{}
	}
	return k[ply]
}
