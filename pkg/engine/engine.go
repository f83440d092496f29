// Package engine is the facade the external command handler talks to: a new
// start position, move application in long algebraic notation, best-move
// search under depth and time budgets, and game-state classification, over
// the move/evaluation/search machinery in the sibling packages. The
// canonical Position is owned by the caller, not the Engine; the Engine owns
// only the resources that are worth sharing across calls within one game —
// the transposition table and the evaluator's weights.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/eval"
	"github.com/bjorling/corvid/pkg/movegen"
	"github.com/bjorling/corvid/pkg/search"
	"github.com/bjorling/corvid/pkg/tt"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are default search limits used when a caller does not override
// them on a given FindBestMove call.
type Options struct {
	// DefaultDepth is used when FindBestMove is called with depthCap <= 0.
	DefaultDepth int
	// HashEntries sizes the transposition table, rounded down to a power of
	// two. Zero uses tt.DefaultCapacity.
	HashEntries int
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%v}", o.DefaultDepth, o.HashEntries)
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithOptions overrides the engine's default search limits.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithWeights overrides the evaluator weights used by the engine's search
// and its standalone Evaluate.
func WithWeights(w eval.Weights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithTable installs a caller-constructed transposition table instead of
// one sized from Options.HashEntries.
func WithTable(table *tt.Table) Option {
	return func(e *Engine) { e.table = table }
}

// Engine bundles the transposition table, evaluator weights and search
// driver that are worth keeping alive across a game, behind an otherwise
// stateless operation surface.
type Engine struct {
	name string
	opts Options

	weights eval.Weights
	table   *tt.Table
	search  *search.Search
}

// New constructs an Engine. name identifies it in logs and in Name().
func New(ctx context.Context, name string, opts ...Option) *Engine {
	e := &Engine{
		name:    name,
		opts:    Options{DefaultDepth: 6},
		weights: eval.DefaultWeights(),
	}
	for _, fn := range opts {
		fn(e)
	}
	if e.table == nil {
		capacity := e.opts.HashEntries
		if capacity <= 0 {
			capacity = tt.DefaultCapacity
		}
		e.table = tt.New(capacity)
	}
	e.search = search.New(e.table, e.weights)

	logw.Infof(ctx, "initialized engine %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine's name and version, e.g. "corvid 0.1.0".
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// NewStartPosition returns the standard chess starting position.
func (e *Engine) NewStartPosition() board.Position {
	return board.NewPosition()
}

// ApplyMove parses move in long algebraic notation, matches it against the
// legal moves available at pos, and returns the resulting position. If move
// is not legal, pos is returned unchanged alongside an error describing the
// rejection; this is the only user-visible failure surface of the engine's
// input path.
func (e *Engine) ApplyMove(ctx context.Context, pos board.Position, move string) (board.Position, error) {
	candidate, err := board.ParseMove(move)
	if err != nil {
		return pos, fmt.Errorf("reject %q: %w", move, err)
	}

	for _, m := range movegen.LegalMoves(&pos) {
		if !m.Equals(candidate) {
			continue
		}
		next := pos.MakeMove(m)
		logw.Infof(ctx, "applied %v: %v -> %v", m, pos.Hash(), next.Hash())
		return next, nil
	}
	return pos, fmt.Errorf("reject %q: illegal move in this position", move)
}

// FindBestMove searches pos to at most depthCap plies (DefaultDepth if
// depthCap <= 0) within timeBudgetMs milliseconds, and returns the chosen
// move in long algebraic notation, or the literal "(none)" if no legal move
// exists.
func (e *Engine) FindBestMove(ctx context.Context, pos board.Position, depthCap int, timeBudgetMs int) string {
	depth := depthCap
	if depth <= 0 {
		depth = e.opts.DefaultDepth
	}
	deadline := time.Now().Add(time.Duration(timeBudgetMs) * time.Millisecond)

	move, ok := e.search.FindBestMove(ctx, &pos, depth, deadline)
	logw.Infof(ctx, "bestmove %v (depth=%v, budget=%vms)", board.FormatMove(move, ok), depth, timeBudgetMs)
	return board.FormatMove(move, ok)
}

// Classify determines the game state of pos given the replay history hist
// (may be nil to disable repetition detection).
func (e *Engine) Classify(pos board.Position, hist *movegen.History) movegen.GameState {
	return movegen.Classify(&pos, hist)
}

// Evaluate exposes the static evaluator directly, e.g. for an "eval" debug
// command in the external handler.
func (e *Engine) Evaluate(pos board.Position) eval.Score {
	return eval.Evaluate(&pos, e.weights)
}

// Table returns the engine's transposition table, mainly for diagnostics
// (hash-full reporting) by the external handler.
func (e *Engine) Table() *tt.Table {
	return e.table
}
