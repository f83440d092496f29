// Package search implements depth-limited negamax with alpha-beta pruning,
// quiescence extension, transposition-table-assisted cutoffs, and move
// ordering (hash move, MVV-LVA, killers, history). It is single-threaded and
// synchronous: the only asynchrony is a wall-clock deadline, expressed as a
// context.Context deadline and polled between moves.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/eval"
	"github.com/bjorling/corvid/pkg/movegen"
	"github.com/bjorling/corvid/pkg/tt"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// PV (principal variation) describes the outcome of one completed or
// partial search: the best move found, its score from the perspective of the
// side to move at the root,
// the depth it was searched to, and how many nodes that took.
type PV struct {
	Move     board.Move
	HasMove  bool
	Score    eval.Score
	Depth    int
	Nodes    uint64
	Time     time.Duration
	Complete bool // false if the deadline cut this iteration short
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v move=%v complete=%v",
		p.Depth, p.Score, p.Nodes, p.Time, board.FormatMove(p.Move, p.HasMove), p.Complete)
}

// Search performs iterative-deepening negamax search from a Position,
// sharing a transposition table and evaluation weights across calls. Search
// is not safe for concurrent use: one search completes before the next
// command is accepted.
type Search struct {
	table   *tt.Table
	weights eval.Weights
}

// New returns a Search backed by table (for caching across positions within
// a game) and weights (the evaluator's tuning constants).
func New(table *tt.Table, weights eval.Weights) *Search {
	return &Search{table: table, weights: weights}
}

// FindBestMove searches pos to at most maxDepth plies, stopping no later
// than deadline, and returns the best move found along with whether any
// legal move exists. If maxDepth is <= 0, it is treated as unlimited up to
// an internal cap, relying entirely on the deadline to bound the search.
func (s *Search) FindBestMove(ctx context.Context, pos *board.Position, maxDepth int, deadline time.Time) (board.Move, bool) {
	pv := s.Search(ctx, pos, maxDepth, deadline)
	return pv.Move, pv.HasMove
}

// maxSearchDepth bounds iterative deepening when the caller passes a
// non-positive depth cap, since the killer table is ply-indexed and finite.
const maxSearchDepth = maxPly - 1

// Search is the full iterative-deepening driver, returning the principal
// variation of the deepest iteration it managed to complete (or a partial
// result if even the first iteration could not finish before the
// deadline).
func (s *Search) Search(ctx context.Context, pos *board.Position, maxDepth int, deadline time.Time) PV {
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	legal := movegen.LegalMoves(pos)
	if len(legal) == 0 {
		return PV{Complete: true}
	}

	limit := maxDepth
	if limit <= 0 || limit > maxSearchDepth {
		limit = maxSearchDepth
	}

	var best PV
	best.Move, best.HasMove = legal[0], true // safety net if even depth 1 cannot finish

	for depth := 1; depth <= limit; depth++ {
		start := time.Now()
		r := &run{table: s.table, weights: s.weights}

		move, score, completed := s.searchRoot(ctx, r, pos, legal, depth)
		elapsed := time.Since(start)

		if completed || !best.Complete {
			best = PV{
				Move: move, HasMove: true, Score: score,
				Depth: depth, Nodes: r.nodes, Time: elapsed, Complete: completed,
			}
		}

		logw.Debugf(ctx, "searched %v", best)

		if !completed || contextx.IsCancelled(ctx) {
			break
		}
	}
	return best
}

// searchRoot evaluates every legal move at depth and returns the
// highest-scoring one, plus whether every move was fully explored before the
// deadline.
func (s *Search) searchRoot(ctx context.Context, r *run, pos *board.Position, legal []board.Move, depth int) (board.Move, eval.Score, bool) {
	hashMove, hasHashMove := r.table.BestMoveHint(pos.Hash())

	moves := make([]board.Move, len(legal))
	copy(moves, legal)
	orderMoves(moves, hashMove, hasHashMove, [2]board.Move{}, nil, r.weights)

	alpha, beta := eval.NegInf, eval.Inf
	best := moves[0]
	bestScore := eval.NegInf
	completed := true

	for _, m := range moves {
		if contextx.IsCancelled(ctx) {
			completed = false
			break
		}

		child := pos.MakeMove(m)
		score := -r.negamax(ctx, &child, depth-1, 1, -beta, -alpha)
		if contextx.IsCancelled(ctx) {
			// The recursion was cut short; its partial score must not decide
			// the root move.
			completed = false
			break
		}

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}

	if contextx.IsCancelled(ctx) {
		completed = false
	}

	// Only a fully explored root iteration produces a trustworthy exact
	// entry; a deadline-aborted one is returned as provisional but not
	// recorded.
	if completed {
		r.table.Store(tt.Entry{
			Hash: pos.Hash(), Depth: depth, Score: int32(bestScore),
			Bound: tt.Exact, HasMove: true, Move: best.Pack(),
		})
	}
	return best, bestScore, completed
}
