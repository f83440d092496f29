package movegen_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/bjorling/corvid/pkg/board"
	"github.com/bjorling/corvid/pkg/movegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProperty_RandomGameInvariants replays a set of pseudo-random games from
// the starting position and checks, at every ply, the structural invariants
// every legal move list must satisfy: no duplicates, self-describing moves
// (Piece and Captured match the board), promotions only on the back rank,
// no move leaves the mover's own king in check, castling rights only ever
// shrink, and the en passant target only exists on the rank a double push
// just crossed.
func TestProperty_RandomGameInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for game := 0; game < 20; game++ {
		pos := board.NewPosition()
		rights := pos.Castling()

		for ply := 0; ply < 120; ply++ {
			us := pos.Turn()
			legal := movegen.LegalMoves(&pos)
			if len(legal) == 0 {
				break
			}

			seen := map[string]bool{}
			for _, m := range legal {
				key := fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
				assert.False(t, seen[key], "duplicate move %v at game %d ply %d", m, game, ply)
				seen[key] = true

				piece, color, ok := pos.PieceAt(m.From)
				require.True(t, ok, "move %v from an empty square", m)
				assert.Equal(t, m.Piece, piece)
				assert.Equal(t, us, color)

				if m.IsCapture() {
					capSq := m.To
					if m.IsEnPassant {
						if us == board.White {
							capSq = board.NewSquare(m.To.File(), m.To.Rank()-1)
						} else {
							capSq = board.NewSquare(m.To.File(), m.To.Rank()+1)
						}
					}
					victim, victimColor, ok := pos.PieceAt(capSq)
					require.True(t, ok, "capture %v of an empty square", m)
					assert.Equal(t, m.Captured, victim)
					assert.Equal(t, us.Opponent(), victimColor)
				}

				if m.IsPromotion() {
					assert.Equal(t, board.PawnPromotionRank(us), m.To.Rank(), "promotion %v off the back rank", m)
				}

				next := pos.MakeMove(m)
				assert.False(t, movegen.InCheck(&next, us), "move %v leaves own king in check", m)
			}

			pos = pos.MakeMove(legal[r.Intn(len(legal))])

			assert.Zero(t, pos.Castling()&^rights, "castling rights regained at game %d ply %d", game, ply)
			rights = pos.Castling()

			if ep, ok := pos.EnPassant(); ok {
				assert.True(t, ep.Rank() == board.Rank3 || ep.Rank() == board.Rank6,
					"en passant target %v on an impossible rank", ep)
			}
		}
	}
}
