// Package store holds the proof store: the append-only, ordered sequence of
// accepted formulas together with the justification of each.
//
// # Invariants
//
//   - Append-only: entries are never removed or rewritten
//   - Ordering: iteration is always oldest-first, by seq (logical clock),
//     never by wall time
//   - Only accepted formulas are stored; rejected submissions never reach
//     the store, so nothing can cite them
//   - Duplicates are allowed; resubmitting a theorem appends a second entry
//
// The store lives in memory for one session. Its flat-text form (one
// formula per line, see WriteText) is the only persisted representation.
package store
