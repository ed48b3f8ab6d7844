package store

import (
	"bufio"
	"fmt"
	"io"
)

// Append adds an accepted formula at the end of the store.
//
// Seq must be strictly greater than the seq of the last entry; the verifier
// stamps entries from its logical clock so this holds by construction.
func (s *Store) Append(e Entry) error {
	if e.Formula == nil {
		return fmt.Errorf("store: entry %d has no formula", e.Seq)
	}
	if n := len(s.entries); n > 0 && e.Seq <= s.entries[n-1].Seq {
		return fmt.Errorf("store: seq %d is not after last seq %d", e.Seq, s.entries[n-1].Seq)
	}
	s.byID[e.ID] = append(s.byID[e.ID], len(s.entries))
	s.entries = append(s.entries, e)
	return nil
}

// WriteText writes the stored formulas, one per line, oldest first. The
// output can be fed back through the verifier's import.
func (s *Store) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range s.entries {
		if _, err := fmt.Fprintln(bw, e.Formula.Text); err != nil {
			return err
		}
	}
	return bw.Flush()
}
