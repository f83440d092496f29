package search

import (
	"context"

	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/eval"
	"github.com/bjorling/corvid/pkg/movegen"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// quiescence extends the search past the horizon along captures and
// promotions only, using the static evaluation as a stand-pat lower bound.
// It has no depth counter; the branching factor is bounded by the number of
// captures available, which shrinks toward zero as material is traded off.
func (r *run) quiescence(ctx context.Context, pos *board.Position, alpha, beta eval.Score, ply int) eval.Score {
	r.nodes++

	standPat := relativeEval(pos, r.weights)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	candidates := noisyMoves(pos)
	orderMoves(candidates, board.Move{}, false, [2]board.Move{}, nil, r.weights)

	for _, m := range candidates {
		if contextx.IsCancelled(ctx) {
			break
		}

		child := pos.MakeMove(m)
		score := -r.quiescence(ctx, &child, -beta, -alpha, ply+1)
		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// noisyMoves returns the legal captures and promotions available to the side
// to move, the only moves quiescence explores.
func noisyMoves(pos *board.Position) []board.Move {
	legal := movegen.LegalMoves(pos)
	noisy := legal[:0:0]
	for _, m := range legal {
		if m.IsCapture() || m.IsPromotion() {
			noisy = append(noisy, m)
		}
	}
	return noisy
}

// relativeEval returns the static evaluation from the mover's point of view,
// negating the evaluator's white-positive score for black to move.
func relativeEval(pos *board.Position, w eval.Weights) eval.Score {
	return eval.Evaluate(pos, w) * eval.Score(pos.Turn().Unit())
}
