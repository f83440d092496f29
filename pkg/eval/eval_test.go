package eval_test

import (
	"testing"

	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate_MaterialAdvantage(t *testing.T) {
	pos := board.EmptyPosition()
	pos.Place(board.White, board.King, board.E1)
	pos.Place(board.Black, board.King, board.E8)
	pos.Place(board.White, board.Queen, board.D4)

	score := eval.Evaluate(&pos, eval.DefaultWeights())
	assert.Greater(t, int(score), 800, "extra queen should dominate the score")
}

func TestEvaluate_SignFlipsWithColor(t *testing.T) {
	white := board.EmptyPosition()
	white.Place(board.White, board.King, board.E1)
	white.Place(board.Black, board.King, board.E8)
	white.Place(board.White, board.Rook, board.A1)
	white.SetTurn(board.White)

	black := board.EmptyPosition()
	black.Place(board.Black, board.King, board.E1)
	black.Place(board.White, board.King, board.E8)
	black.Place(board.Black, board.Rook, board.A1)
	black.SetTurn(board.White)

	ws := eval.Evaluate(&white, eval.DefaultWeights())
	bs := eval.Evaluate(&black, eval.DefaultWeights())
	assert.Positive(t, ws)
	assert.Negative(t, bs)
}

func TestEvaluate_DoubledPawnsPenalized(t *testing.T) {
	clean := board.EmptyPosition()
	clean.Place(board.White, board.King, board.E1)
	clean.Place(board.Black, board.King, board.E8)
	clean.Place(board.White, board.Pawn, board.A2)
	clean.Place(board.White, board.Pawn, board.B2)

	doubled := board.EmptyPosition()
	doubled.Place(board.White, board.King, board.E1)
	doubled.Place(board.Black, board.King, board.E8)
	doubled.Place(board.White, board.Pawn, board.A2)
	doubled.Place(board.White, board.Pawn, board.A3)

	w := eval.DefaultWeights()
	assert.Greater(t, eval.Evaluate(&clean, w), eval.Evaluate(&doubled, w))
}

func TestEvaluate_PassedPawnRewarded(t *testing.T) {
	w := eval.DefaultWeights()

	blocked := board.EmptyPosition()
	blocked.Place(board.White, board.King, board.E1)
	blocked.Place(board.Black, board.King, board.E8)
	blocked.Place(board.White, board.Pawn, board.A5)
	blocked.Place(board.Black, board.Pawn, board.A6)

	passed := board.EmptyPosition()
	passed.Place(board.White, board.King, board.E1)
	passed.Place(board.Black, board.King, board.E8)
	passed.Place(board.White, board.Pawn, board.A5)
	passed.Place(board.Black, board.Pawn, board.H6)

	assert.Greater(t, eval.Evaluate(&passed, w), eval.Evaluate(&blocked, w))
}

func TestEvaluate_KingShieldRewarded(t *testing.T) {
	w := eval.DefaultWeights()

	sheltered := board.EmptyPosition()
	sheltered.Place(board.White, board.King, board.G1)
	sheltered.Place(board.Black, board.King, board.E8)
	sheltered.Place(board.White, board.Pawn, board.F2)
	sheltered.Place(board.White, board.Pawn, board.G2)
	sheltered.Place(board.White, board.Pawn, board.H2)

	exposed := board.EmptyPosition()
	exposed.Place(board.White, board.King, board.G1)
	exposed.Place(board.Black, board.King, board.E8)

	assert.Greater(t, eval.Evaluate(&sheltered, w), eval.Evaluate(&exposed, w))
}
