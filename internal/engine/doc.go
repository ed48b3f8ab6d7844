// Package engine implements the proof checker: the matcher, the axiom
// schema set and the Verifier that decides each submitted formula.
//
// ARCHITECTURE:
//
// Single-threaded, synchronous evaluation:
// Each Submit call validates, parses and checks one formula to completion
// before returning. There is no queue, no goroutine and no cancellation;
// proof search always terminates because the proof store and the axiom set
// are finite and every check is a bounded tree walk.
//
// Decision order for a well-formed formula F:
//  1. Prior theorem: F is an instance of a stored formula T, with every
//     identifier of T free. Stored formulas are scanned oldest first.
//  2. Axiom: F is an instance of an axiom schema. Schemas with at most two
//     parameters are tried before larger ones, declaration order within
//     each group.
//  3. Modus Ponens: a stored A->F exists and A is either stored itself or
//     an instance of an axiom schema.
//
// The first success wins, even when a shorter derivation exists elsewhere.
// Accepted formulas are appended to the proof store; rejected ones never are.
//
// DETERMINISM:
// Verdicts are stamped with a monotonic logical clock (Clock.Next). The
// same input sequence always yields the same verdicts, justifications and
// bindings.
package engine
