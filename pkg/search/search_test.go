package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/eval"
	"github.com/bjorling/corvid/pkg/search"
	"github.com/bjorling/corvid/pkg/tt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_FindsMateInOne(t *testing.T) {
	pos := board.EmptyPosition()
	pos.Place(board.White, board.King, board.A1)
	pos.Place(board.White, board.Queen, board.E1)
	pos.Place(board.Black, board.King, board.H8)
	pos.Place(board.Black, board.Pawn, board.F7)
	pos.Place(board.Black, board.Pawn, board.G7)
	pos.Place(board.Black, board.Pawn, board.H7)

	s := search.New(tt.New(1024), eval.DefaultWeights())
	move, ok := s.FindBestMove(context.Background(), &pos, 2, time.Now().Add(2*time.Second))

	require.True(t, ok)
	assert.Equal(t, "e1e8", move.String())
}

func TestSearch_ReturnsLegalMoveFromStart(t *testing.T) {
	pos := board.NewPosition()
	s := search.New(tt.New(1024), eval.DefaultWeights())

	move, ok := s.FindBestMove(context.Background(), &pos, 2, time.Now().Add(2*time.Second))
	require.True(t, ok)
	assert.True(t, move.Piece.IsValid())
}

func TestSearch_NoLegalMovesAtRoot(t *testing.T) {
	// Checkmate position (scenario vignette 2): white king c1, white queen
	// b1, black king a1, black to move.
	pos := board.EmptyPosition()
	pos.Place(board.White, board.King, board.C1)
	pos.Place(board.White, board.Queen, board.B1)
	pos.Place(board.Black, board.King, board.A1)
	pos.SetTurn(board.Black)

	s := search.New(tt.New(1024), eval.DefaultWeights())
	_, ok := s.FindBestMove(context.Background(), &pos, 3, time.Now().Add(time.Second))
	assert.False(t, ok)
}

func TestSearch_RespectsDeadline(t *testing.T) {
	pos := board.NewPosition()
	s := search.New(tt.New(1<<16), eval.DefaultWeights())

	deadline := time.Now().Add(20 * time.Millisecond)
	start := time.Now()
	_, ok := s.FindBestMove(context.Background(), &pos, 0, deadline)
	elapsed := time.Since(start)

	require.True(t, ok)
	assert.Less(t, elapsed, 2*time.Second, "search should return shortly after its deadline")
}

func TestSearch_IterativeDeepeningReportsDeepestComplete(t *testing.T) {
	pos := board.NewPosition()
	s := search.New(tt.New(1<<16), eval.DefaultWeights())

	pv := s.Search(context.Background(), &pos, 2, time.Now().Add(5*time.Second))
	assert.True(t, pv.HasMove)
	assert.GreaterOrEqual(t, pv.Depth, 1)
}
