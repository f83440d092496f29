package movegen_test

import (
	"testing"

	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/movegen"
	"github.com/stretchr/testify/assert"
)

func TestScenario_PromotionMenu(t *testing.T) {
	pos := board.EmptyPosition()
	pos.Place(board.White, board.King, board.H1)
	pos.Place(board.Black, board.King, board.H8)
	pos.Place(board.White, board.Pawn, board.A7)

	moves := movegen.LegalMoves(&pos)

	var promotions []board.Move
	for _, m := range moves {
		if m.From == board.A7 && m.To == board.A8 {
			promotions = append(promotions, m)
		}
	}
	assert.Len(t, promotions, 4)

	seen := map[board.Piece]bool{}
	for _, m := range promotions {
		seen[m.Promotion] = true
	}
	assert.True(t, seen[board.Queen])
	assert.True(t, seen[board.Rook])
	assert.True(t, seen[board.Bishop])
	assert.True(t, seen[board.Knight])
}

func TestScenario_Checkmate(t *testing.T) {
	pos := board.EmptyPosition()
	pos.Place(board.White, board.King, board.C1)
	pos.Place(board.White, board.Queen, board.B1)
	pos.Place(board.Black, board.King, board.A1)
	pos.SetTurn(board.Black)

	state := movegen.Classify(&pos, nil)
	assert.Equal(t, movegen.Checkmate, state.Outcome)
	assert.Equal(t, board.White, state.Winner)
	assert.Empty(t, movegen.LegalMoves(&pos))
}

func TestScenario_Stalemate(t *testing.T) {
	pos := board.EmptyPosition()
	pos.Place(board.White, board.King, board.A1)
	pos.Place(board.Black, board.King, board.C2)
	pos.Place(board.Black, board.Queen, board.B3)
	pos.SetTurn(board.White)

	state := movegen.Classify(&pos, nil)
	assert.Equal(t, movegen.Stalemate, state.Outcome)
	assert.Empty(t, movegen.LegalMoves(&pos))
	assert.False(t, movegen.InCheck(&pos, board.White))
}

func TestScenario_EnPassantAvailability(t *testing.T) {
	pos := board.NewPosition()
	pos = applyLAN(t, pos, "e2e4")
	pos = applyLAN(t, pos, "d7d5")
	pos = applyLAN(t, pos, "e4e5")
	pos = applyLAN(t, pos, "f7f5")

	var found *board.Move
	for _, m := range movegen.PseudoLegalMoves(&pos) {
		if m.From == board.E5 && m.To == board.F6 {
			m := m
			found = &m
		}
	}
	if assert.NotNil(t, found, "expected e5f6 en passant capture") {
		assert.True(t, found.IsEnPassant)
		assert.Equal(t, board.Pawn, found.Captured)
	}
}

func TestScenario_CastlingUnavailableUnderXrayCheck(t *testing.T) {
	pos := board.EmptyPosition()
	pos.Place(board.White, board.King, board.E1)
	pos.Place(board.White, board.Rook, board.A1)
	pos.Place(board.White, board.Rook, board.H1)
	pos.Place(board.Black, board.King, board.G8)
	pos.Place(board.Black, board.Rook, board.E8)
	pos.SetCastling(board.WhiteKingSide | board.WhiteQueenSide)

	for _, m := range movegen.LegalMoves(&pos) {
		assert.False(t, m.IsCastling, "king in check from an x-raying rook must not be able to castle")
	}
}

func TestScenario_InsufficientMaterial(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*board.Position)
		want  movegen.Outcome
	}{
		{"K vs K", func(p *board.Position) {}, movegen.InsufficientMaterial},
		{"K+B vs K", func(p *board.Position) { p.Place(board.White, board.Bishop, board.C1) }, movegen.InsufficientMaterial},
		{"K+N vs K", func(p *board.Position) { p.Place(board.White, board.Knight, board.B1) }, movegen.InsufficientMaterial},
		{"K+B vs K+B same color", func(p *board.Position) {
			p.Place(board.White, board.Bishop, board.C1)
			p.Place(board.Black, board.Bishop, board.F8)
		}, movegen.InsufficientMaterial},
		{"K+B vs K+B opposite color", func(p *board.Position) {
			p.Place(board.White, board.Bishop, board.C1)
			p.Place(board.Black, board.Bishop, board.F1)
		}, movegen.Ongoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := board.EmptyPosition()
			pos.Place(board.White, board.King, board.A1)
			pos.Place(board.Black, board.King, board.A8)
			tt.setup(&pos)

			state := movegen.Classify(&pos, nil)
			assert.Equal(t, tt.want, state.Outcome)
		})
	}
}

// applyLAN parses a long-algebraic move and matches it against the current
// position's pseudo-legal moves to recover its full metadata before
// applying it, as board.ParseMove's documentation requires.
func applyLAN(t *testing.T, pos board.Position, s string) board.Position {
	t.Helper()
	want, err := board.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	for _, m := range movegen.PseudoLegalMoves(&pos) {
		if m.Equals(want) {
			return pos.MakeMove(m)
		}
	}
	t.Fatalf("move %q not found among pseudo-legal moves", s)
	return pos
}
