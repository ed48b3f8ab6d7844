package store

import (
	"github.com/roach88/hilbert/internal/formula"
	"github.com/roach88/hilbert/internal/ir"
)

// Entry is one accepted formula.
type Entry struct {
	// Seq is the verdict sequence number that accepted the formula.
	Seq int64

	// Formula is the accepted formula. Shared read-only with the verifier.
	Formula *formula.Formula

	// ID is ir.FormulaID of the canonical rendering.
	ID string

	// Justification records the rule and premises used.
	Justification ir.Justification
}

// Store is the in-memory proof store for one session.
//
// Store is not safe for concurrent use; the verifier that owns it is
// single-threaded.
type Store struct {
	entries []Entry
	byID    map[string][]int // formula id -> entry indexes, ascending
}

// New creates an empty store.
func New() *Store {
	return &Store{byID: make(map[string][]int)}
}

// Len returns the number of stored entries, duplicates included.
func (s *Store) Len() int {
	return len(s.entries)
}
