package board

import "math/rand"

// zobristSeed fixes the random keys used to compute position hashes so that
// hashes (and therefore perft/search traces) are reproducible across runs.
const zobristSeed = 0x5A5A5A5A5A5A5A5A

var zobrist struct {
	piece     [NumColors][NumPieces][NumSquares]uint64
	castling  [NumCastling]uint64
	enPassant [NumFiles]uint64
	turn      uint64
}

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for c := ZeroColor; c < NumColors; c++ {
		for p := Pawn; p < NumPieces; p++ {
			for sq := ZeroSquare; sq < NumSquares; sq++ {
				zobrist.piece[c][p][sq] = r.Uint64()
			}
		}
	}
	for c := Castling(0); c < NumCastling; c++ {
		zobrist.castling[c] = r.Uint64()
	}
	for f := ZeroFile; f < NumFiles; f++ {
		zobrist.enPassant[f] = r.Uint64()
	}
	zobrist.turn = r.Uint64()
}

func zobristPieceKey(c Color, p Piece, sq Square) uint64 {
	return zobrist.piece[c][p][sq]
}

func zobristCastlingKey(c Castling) uint64 {
	return zobrist.castling[c]
}

func zobristEnPassantKey(f File) uint64 {
	return zobrist.enPassant[f]
}

func zobristTurnKey() uint64 {
	return zobrist.turn
}

// computeHash derives the Zobrist hash of a position from scratch. It is used
// to seed a freshly built Position and, in tests, to cross-check the
// incremental updates MakeMove performs.
func computeHash(p *Position) uint64 {
	var h uint64
	for c := ZeroColor; c < NumColors; c++ {
		for pc := Pawn; pc < NumPieces; pc++ {
			for _, sq := range p.bitboards[c][pc].ToSquares() {
				h ^= zobristPieceKey(c, pc, sq)
			}
		}
	}
	h ^= zobristCastlingKey(p.castling)
	if p.enPassant.IsValid() {
		h ^= zobristEnPassantKey(p.enPassant.File())
	}
	if p.turn == Black {
		h ^= zobristTurnKey()
	}
	return h
}
