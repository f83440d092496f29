package movegen_test

import (
	"testing"

	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/movegen"
	"github.com/stretchr/testify/assert"
)

// perft counts leaf nodes reached by fully enumerating legal moves to the
// given depth, the standard move-generator correctness gate.
// See: https://www.chessprogramming.org/Perft_Results.
func perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range movegen.LegalMoves(pos) {
		next := pos.MakeMove(m)
		nodes += perft(&next, depth-1)
	}
	return nodes
}

func TestPerft_StandardInitialPosition(t *testing.T) {
	tests := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tt := range tests {
		pos := board.NewPosition()
		assert.Equal(t, tt.nodes, perft(&pos, tt.depth), "perft(%d)", tt.depth)
	}
}

func TestPerft_StandardInitialPosition_Depth5(t *testing.T) {
	if testing.Short() {
		t.Skip("depth-5 perft is expensive; skipped with -short")
	}

	pos := board.NewPosition()
	assert.Equal(t, uint64(4865609), perft(&pos, 5))
}
