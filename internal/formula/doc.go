// Package formula implements the syntax layer for implicational formulas.
//
// A formula is built from single-letter identifiers, parentheses and the
// two-character arrow "->". Implication is right-associative when
// unparenthesized, so "p->q->r" reads as "p->(q->r)".
//
// Grammar (after whitespace removal):
//
//	Formula    := Term | Term '->' Formula
//	Term       := Identifier | '(' Formula ')'
//	Identifier := one alphabetic rune
//
// The package exposes three operations that mirror each other:
//   - Validate / IsWellFormed check the grammar
//   - Parse builds the Node tree
//   - Render prints a tree back as canonical, fully parenthesized text
//
// Equality of trees is structural (Equal), never textual.
//
// This package imports nothing internal; engine and store build on it.
package formula
