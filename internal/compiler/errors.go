package compiler

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// CompileError reports an axiom definition that could not be compiled.
type CompileError struct {
	Axiom   string    // axiom name; empty for errors outside one definition
	Field   string    // offending field, "cue" for evaluation errors
	Message string
	Pos     token.Pos
	Err     error // underlying CUE error, if any
}

func (e *CompileError) Error() string {
	var b strings.Builder
	if e.Pos.IsValid() {
		fmt.Fprintf(&b, "%s:%d:%d: ", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column())
	}
	if e.Axiom != "" {
		fmt.Fprintf(&b, "axiom %s: ", e.Axiom)
	}
	fmt.Fprintf(&b, "%s: %s", e.Field, e.Message)
	return b.String()
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// cueError wraps a CUE evaluation error, positioned at the first location
// CUE reports for it.
func cueError(axiom string, err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	ce := &CompileError{Axiom: axiom, Field: "cue", Message: first.Error(), Err: err}
	if positions := errors.Positions(first); len(positions) > 0 {
		ce.Pos = positions[0]
	}
	return ce
}
