package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/hilbert/internal/formula"
)

// AssertionError is returned when an assertion fails.
// It includes the export log to help debug the failure.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
	Export   string // Full verdict log for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if e.Export != "" {
		fmt.Fprintf(&buf, "\nVerdict log:\n")
		for i, line := range strings.Split(strings.TrimRight(e.Export, "\n"), "\n") {
			fmt.Fprintf(&buf, "  [%d] %s\n", i+1, line)
		}
	}

	return buf.String()
}

func assertTheoremCount(result *Result, assertion Assertion) error {
	if got := len(result.Theorems); got != *assertion.Count {
		return &AssertionError{
			Type:     AssertTheoremCount,
			Expected: fmt.Sprintf("%d stored theorems", *assertion.Count),
			Actual:   fmt.Sprintf("%d stored theorems", got),
			Export:   result.Export,
		}
	}
	return nil
}

func assertVerdictCount(result *Result, assertion Assertion) error {
	count := 0
	for _, v := range result.Verdicts {
		if string(v.Kind) == assertion.Kind {
			count++
		}
	}

	if count != *assertion.Count {
		return &AssertionError{
			Type:     AssertVerdictCount,
			Expected: fmt.Sprintf("%d %s verdicts", *assertion.Count, assertion.Kind),
			Actual:   fmt.Sprintf("%d %s verdicts", count, assertion.Kind),
			Export:   result.Export,
		}
	}
	return nil
}

// assertStoreContains compares structurally, so "p->q->p" finds a stored
// "p->(q->p)".
func assertStoreContains(result *Result, assertion Assertion) error {
	want, err := formula.Parse(assertion.Formula)
	if err != nil {
		return fmt.Errorf("store_contains: formula %q: %w", assertion.Formula, err)
	}

	for _, text := range result.Theorems {
		got, err := formula.Parse(text)
		if err == nil && formula.Equal(got, want) {
			return nil
		}
	}

	return &AssertionError{
		Type:     AssertStoreContains,
		Expected: fmt.Sprintf("store contains %s", assertion.Formula),
		Actual:   fmt.Sprintf("store holds %v", result.Theorems),
		Export:   result.Export,
	}
}

func assertExportContains(result *Result, assertion Assertion) error {
	for _, line := range strings.Split(result.Export, "\n") {
		if strings.Contains(line, assertion.Line) {
			return nil
		}
	}
	return &AssertionError{
		Type:     AssertExportContains,
		Expected: fmt.Sprintf("a verdict line containing %q", assertion.Line),
		Actual:   "no such line",
		Export:   result.Export,
	}
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns one message per failed assertion.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertTheoremCount, AssertVerdictCount:
			if assertion.Count == nil {
				err = fmt.Errorf("assertion[%d]: %s requires count", i, assertion.Type)
			} else if assertion.Type == AssertTheoremCount {
				err = assertTheoremCount(result, assertion)
			} else {
				err = assertVerdictCount(result, assertion)
			}
		case AssertStoreContains:
			err = assertStoreContains(result, assertion)
		case AssertExportContains:
			err = assertExportContains(result, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
