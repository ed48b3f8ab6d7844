package store

import "github.com/roach88/hilbert/internal/formula"

// Entries returns a copy of all entries, oldest first.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Each calls fn for every entry oldest first until fn returns false.
func (s *Store) Each(fn func(Entry) bool) {
	for _, e := range s.entries {
		if !fn(e) {
			return
		}
	}
}

// FindEqual returns the oldest entry whose tree is structurally equal to n.
func (s *Store) FindEqual(n formula.Node) (Entry, bool) {
	for _, e := range s.entries {
		if formula.Equal(e.Formula.Root, n) {
			return e, true
		}
	}
	return Entry{}, false
}

// LookupID returns all entries with the given formula id, oldest first.
func (s *Store) LookupID(id string) []Entry {
	idx := s.byID[id]
	out := make([]Entry, len(idx))
	for i, j := range idx {
		out[i] = s.entries[j]
	}
	return out
}
