// Package ir provides the record types shared by the verifier, the proof
// store, the CLI and the test harness.
//
// This package contains type definitions and their serialization only.
// It imports nothing internal, so every other package can depend on it.
//
// Key design constraints:
//   - Formulas appear as normalized text, never as trees
//   - All JSON tags use snake_case
//   - Records are ordered by a logical sequence number (seq), never by
//     wall-clock time
package ir
