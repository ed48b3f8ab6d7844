package formula

import (
	"errors"
	"fmt"
)

// SyntaxErrorCode categorizes malformed input.
type SyntaxErrorCode string

const (
	// ErrCodeEmpty indicates the input is empty after whitespace removal.
	ErrCodeEmpty SyntaxErrorCode = "EMPTY"

	// ErrCodeInvalidChar indicates a rune outside letters, parentheses and "->".
	ErrCodeInvalidChar SyntaxErrorCode = "INVALID_CHAR"

	// ErrCodeUnbalanced indicates the parentheses do not balance.
	ErrCodeUnbalanced SyntaxErrorCode = "UNBALANCED"

	// ErrCodeGrammar indicates balanced input that still does not derive
	// from the Formula production (e.g. "p->", "pq", "()").
	ErrCodeGrammar SyntaxErrorCode = "GRAMMAR"
)

// SyntaxError describes why a formula is not well-formed.
//
// Pos is a rune offset into the normalized text, or -1 when the error is
// not tied to one position.
type SyntaxError struct {
	Code    SyntaxErrorCode
	Pos     int
	Message string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s at %d: %s", e.Code, e.Pos, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsSyntaxError reports whether err is, or wraps, a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// SyntaxCode returns the code of a wrapped *SyntaxError, or "" if err is
// not a syntax error.
func SyntaxCode(err error) SyntaxErrorCode {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

func newSyntaxError(code SyntaxErrorCode, pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Code:    code,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}
