package search

import (
	"context"

	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/eval"
	"github.com/bjorling/corvid/pkg/movegen"
	"github.com/bjorling/corvid/pkg/tt"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// run holds the mutable state of a single root iteration: the node counter,
// and the killer/history tables that move ordering feeds from and writes to
// as cutoffs are discovered. A fresh run is created per iteration so that
// repeated searches from the same Search instance do not carry stale killer
// moves from an unrelated position or depth.
type run struct {
	table   *tt.Table
	weights eval.Weights

	killers killerSet
	history historyTable

	nodes uint64
}

// negamax returns the negamax score of pos from the mover's perspective,
// searched to at least depth plies unless pruned or cut short by the
// deadline. ply is the distance from the search root, used for killer-move
// bucketing and mate-distance scoring.
func (r *run) negamax(ctx context.Context, pos *board.Position, depth, ply int, alpha, beta eval.Score) eval.Score {
	r.nodes++

	hash := pos.Hash()
	origAlpha, origBeta := alpha, beta

	if score, ok := r.table.Probe(hash, depth, int32(alpha), int32(beta)); ok {
		return eval.Score(score)
	}

	legal := movegen.LegalMoves(pos)
	if len(legal) == 0 {
		if movegen.InCheck(pos, pos.Turn()) {
			return -eval.Mate + eval.Score(ply)
		}
		return 0 // stalemate
	}
	if depth == 0 {
		return r.quiescence(ctx, pos, alpha, beta, ply)
	}

	hashMove, hasHashMove := r.table.BestMoveHint(hash)
	killers := r.killers.at(ply)
	orderMoves(legal, hashMove, hasHashMove, killers, &r.history, r.weights)

	var bestMove board.Move
	bestScore := eval.NegInf

	for _, m := range legal {
		if contextx.IsCancelled(ctx) {
			// A deadline-aborted node has only a partial score. Return the
			// best-so-far, but never store it: the table outlives this
			// search, and a partial score recorded at full depth would
			// satisfy later probes it has no business satisfying.
			return bestScore
		}

		child := pos.MakeMove(m)
		score := -r.negamax(ctx, &child, depth-1, ply+1, -beta, -alpha)
		if contextx.IsCancelled(ctx) {
			// The recursion itself was cut short; its score is partial and
			// must not influence this node's result.
			return bestScore
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if m.IsQuiet() {
				r.killers.register(ply, m)
				r.history.credit(m, depth)
			}
			break
		}
	}

	var bound tt.Bound
	if bestScore > origAlpha && bestScore < origBeta {
		bound = tt.Exact
	} else if bestScore >= origBeta {
		bound = tt.Lower
	} else {
		bound = tt.Upper
	}

	r.table.Store(tt.Entry{
		Hash:    hash,
		Depth:   depth,
		Score:   int32(bestScore),
		Bound:   bound,
		HasMove: bestMove != (board.Move{}),
		Move:    bestMove.Pack(),
	})
	return bestScore
}
