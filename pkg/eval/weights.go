package eval

import "github.com/bjorling/corvid/pkg/board"

// pst is a piece-square table indexed [rank][file] from white's perspective
// (rank 0 = white's first rank). Black reads the same table mirrored:
// pst[7-rank][file].
type pst [8][8]Score

// Weights bundles every tunable constant the evaluator sums. The zero value
// is not usable; start from DefaultWeights and override fields as needed.
// Weights is a plain data structure so it can be loaded from a config file
// (see pkg/config) without touching the evaluator itself.
type Weights struct {
	Material [board.NumPieces]Score
	Mobility [board.NumPieces]Score

	PST            [board.NumPieces]pst
	KingEndgamePST pst

	DoubledPawnPenalty  Score
	IsolatedPawnPenalty Score
	PassedPawnBonus     Score
	ConnectedPawnBonus  Score

	PawnShieldBonus     Score
	OpenKingFilePenalty Score
	HalfOpenFilePenalty Score
}

// DefaultWeights returns the evaluator's built-in defaults: material values
// and piece-square tables in the traditional centipawn range, plus the
// mobility, pawn-structure and king-safety weights.
func DefaultWeights() Weights {
	return Weights{
		Material: [board.NumPieces]Score{
			board.Pawn:   100,
			board.Knight: 320,
			board.Bishop: 330,
			board.Rook:   500,
			board.Queen:  900,
			board.King:   20000,
		},
		Mobility: [board.NumPieces]Score{
			board.Pawn:   1,
			board.Knight: 2,
			board.Bishop: 3,
			board.Rook:   2,
			board.Queen:  1,
			board.King:   1,
		},
		PST: [board.NumPieces]pst{
			board.Pawn:   pawnPST,
			board.Knight: knightPST,
			board.Bishop: bishopPST,
			board.Rook:   rookPST,
			board.Queen:  queenPST,
			board.King:   kingMidgamePST,
		},
		KingEndgamePST: kingEndgamePST,

		DoubledPawnPenalty:  -10,
		IsolatedPawnPenalty: -20,
		PassedPawnBonus:     20,
		ConnectedPawnBonus:  10,

		PawnShieldBonus:     5,
		OpenKingFilePenalty: -15,
		HalfOpenFilePenalty: -10,
	}
}

var pawnPST = pst{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightPST = pst{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopPST = pst{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookPST = pst{
	{0, 0, 0, 5, 5, 0, 0, 0},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var queenPST = pst{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingMidgamePST = pst{
	{20, 30, 10, 0, 0, 10, 30, 20},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
}

var kingEndgamePST = pst{
	{-50, -30, -30, -30, -30, -30, -30, -50},
	{-30, -30, 0, 0, 0, 0, -30, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -20, -10, 0, 0, -10, -20, -30},
	{-50, -40, -30, -20, -20, -30, -40, -50},
}
