package board

import "fmt"

// Move represents an atomic transition from one Position to another. It is
// self-describing: applying it to a Position requires no lookup beyond
// From, To and (for en passant) the implied capture square.
type Move struct {
	From, To  Square
	Piece     Piece // moving piece kind, before any promotion
	Captured  Piece // captured piece kind (Pawn for en passant), NoPiece if none
	Promotion Piece // promoted-to piece kind, NoPiece if not a promotion

	IsEnPassant bool
	IsCastling  bool
}

// IsCapture reports whether the move captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// Equals compares moves by their externally visible identity: origin,
// destination and promotion kind. Two moves with the same From/To/Promotion
// are the same move even if internal bookkeeping (e.g. Piece, Captured)
// was populated by different callers.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// String renders the move in long algebraic notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// ParseMove parses a move in pure long algebraic coordinate notation, such as
// "a2a4" or "a7a8q". The parsed move carries no contextual metadata
// (Piece/Captured/IsCastling/IsEnPassant); callers must match it against a
// pseudo-legal move list to recover that information before applying it.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move %q: wrong length", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: from: %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: to: %w", str, err)
	}

	m := Move{From: from, To: to}
	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid move %q: promotion", str)
		}
		m.Promotion = promo
	}
	return m, nil
}

// PackedMove is a Move packed into a fixed-width integer: from and to
// squares (6 bits each), the moving, captured and promotion piece kinds
// (3 bits each), and the en passant and castling flags. It is the compact
// form a transposition table entry stores as its best-move hint.
type PackedMove uint32

// Pack encodes m into its fixed-width integer form.
func (m Move) Pack() PackedMove {
	v := PackedMove(m.From) |
		PackedMove(m.To)<<6 |
		PackedMove(m.Piece)<<12 |
		PackedMove(m.Captured)<<15 |
		PackedMove(m.Promotion)<<18
	if m.IsEnPassant {
		v |= 1 << 21
	}
	if m.IsCastling {
		v |= 1 << 22
	}
	return v
}

// Unpack decodes p back into the Move it was packed from.
func (p PackedMove) Unpack() Move {
	return Move{
		From:        Square(p & 0x3f),
		To:          Square(p >> 6 & 0x3f),
		Piece:       Piece(p >> 12 & 0x7),
		Captured:    Piece(p >> 15 & 0x7),
		Promotion:   Piece(p >> 18 & 0x7),
		IsEnPassant: p&(1<<21) != 0,
		IsCastling:  p&(1<<22) != 0,
	}
}

// NoMoveNotation is the literal "(none)" sentinel used at the external interface.
const NoMoveNotation = "(none)"

// FormatMove renders a move in long algebraic notation, or NoMoveNotation
// when ok is false, signaling "no legal move".
func FormatMove(m Move, ok bool) string {
	if !ok {
		return NoMoveNotation
	}
	return m.String()
}
