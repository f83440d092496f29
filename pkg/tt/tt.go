// Package tt implements a fixed-capacity transposition table keyed by
// Zobrist position hash, storing a depth, a bounded score and an optional
// packed best-move hint, as a flat array of slots addressed by hash mask.
// The search is single-threaded, so the table needs no locking; only the
// used-slot counter is atomic, for hash-full reporting from outside a
// running search.
package tt

import (
	"math/bits"

	"github.com/bjorling/corvid/pkg/board"
	"go.uber.org/atomic"
)

// Bound classifies how a stored score relates to the window it was searched
// with.
type Bound uint8

const (
	// Exact means the stored score is the true minimax value.
	Exact Bound = iota
	// Lower means the stored score is a lower bound (search failed high,
	// i.e. caused a beta cutoff).
	Lower
	// Upper means the stored score is an upper bound (search failed low,
	// no move raised alpha).
	Upper
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "exact"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "?"
	}
}

// Entry is a single transposition table record. The best-move hint is kept
// in its packed fixed-width form; BestMoveHint unpacks it for callers.
type Entry struct {
	Hash  uint64
	Depth int
	Score int32
	Bound Bound

	HasMove bool
	Move    board.PackedMove
}

// DefaultCapacity is the default number of entries the table holds.
const DefaultCapacity = 1_000_000

// Table is a fixed-capacity, flat hash table from Zobrist hash to Entry.
// Capacity is rounded down to a power of two so that indexing is a mask
// rather than a modulo. The replacement policy is depth-preferred: a store
// that would overwrite a deeper entry for a different position with a
// shallower one is skipped.
type Table struct {
	slots []slot
	mask  uint64
	used  atomic.Uint64
}

type slot struct {
	valid bool
	entry Entry
}

// New returns a Table sized from capacity: capacity is first raised to a
// minimum of 1024 and then rounded down to the nearest power of two, so the
// table may hold fewer entries than requested.
func New(capacity int) *Table {
	if capacity < 1024 {
		capacity = 1024
	}
	n := uint64(1) << (63 - bits.LeadingZeros64(uint64(capacity)))
	return &Table{
		slots: make([]slot, n),
		mask:  n - 1,
	}
}

func (t *Table) index(hash uint64) uint64 {
	return hash & t.mask
}

// Store inserts or overwrites the entry for hash. When the destination slot
// already holds a different, deeper search, the existing entry survives
// (depth-preferred replacement); otherwise the new entry replaces it.
func (t *Table) Store(e Entry) {
	s := &t.slots[t.index(e.Hash)]
	if !s.valid {
		t.used.Inc()
	} else if s.entry.Hash != e.Hash && s.entry.Depth > e.Depth {
		return
	}
	s.valid = true
	s.entry = e
}

// Probe returns a usable score for (hash, depth, alpha, beta): the matching
// entry must have been searched to at least depth, and its bound must make
// its score valid against the given window (exact always qualifies; a lower
// bound qualifies only if it already meets or beats beta; an upper bound
// qualifies only if it already fails at or below alpha). Otherwise Probe
// returns ok=false and the caller falls back to a full search, optionally
// using BestMoveHint for ordering.
func (t *Table) Probe(hash uint64, depth int, alpha, beta int32) (score int32, ok bool) {
	s := &t.slots[t.index(hash)]
	if !s.valid || s.entry.Hash != hash || s.entry.Depth < depth {
		return 0, false
	}

	e := s.entry
	switch e.Bound {
	case Exact:
		return e.Score, true
	case Lower:
		if e.Score >= beta {
			return e.Score, true
		}
	case Upper:
		if e.Score <= alpha {
			return e.Score, true
		}
	}
	return 0, false
}

// BestMoveHint returns the unpacked best-move hint recorded for hash, if
// any, regardless of whether the entry's depth or bound would satisfy
// Probe. It is used purely for move ordering, never for a cutoff; callers
// must still match the hint against their own legal move list.
func (t *Table) BestMoveHint(hash uint64) (board.Move, bool) {
	s := &t.slots[t.index(hash)]
	if !s.valid || s.entry.Hash != hash || !s.entry.HasMove {
		return board.Move{}, false
	}
	return s.entry.Move.Unpack(), true
}

// Lookup returns the raw entry for hash, regardless of depth/bound, mainly
// for diagnostics and tests.
func (t *Table) Lookup(hash uint64) (Entry, bool) {
	s := &t.slots[t.index(hash)]
	if !s.valid || s.entry.Hash != hash {
		return Entry{}, false
	}
	return s.entry, true
}

// Len returns the table's fixed capacity.
func (t *Table) Len() int {
	return len(t.slots)
}

// Used returns the fraction of slots currently occupied, in [0;1].
func (t *Table) Used() float64 {
	return float64(t.used.Load()) / float64(len(t.slots))
}

// Clear empties the table without reallocating it.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = slot{}
	}
	t.used.Store(0)
}
