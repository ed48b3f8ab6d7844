package ir

import (
	"fmt"
	"strings"
)

// Message renders the verdict as one human-readable report line. The export
// log is these lines in submission order.
func (v Verdict) Message() string {
	switch v.Kind {
	case VerdictInvalid:
		subject := v.Formula
		if subject == "" {
			subject = fmt.Sprintf("%q", v.Input)
		}
		if v.Reason != "" {
			return fmt.Sprintf("Formula %s is invalid: %s", subject, v.Reason)
		}
		return fmt.Sprintf("Formula %s is invalid", subject)
	case VerdictUnprovable:
		return fmt.Sprintf("Formula %s is not derivable", v.Formula)
	case VerdictAccepted:
		if v.Justification == nil {
			return fmt.Sprintf("Formula %s is accepted", v.Formula)
		}
		return v.Justification.describe(v.Formula)
	default:
		return fmt.Sprintf("Formula %s: unknown verdict %q", v.Formula, v.Kind)
	}
}

func (j *Justification) describe(formula string) string {
	switch j.Rule {
	case RuleTheorem:
		return fmt.Sprintf("Formula %s is derivable from formula %s with substitution: %s",
			formula, j.Source, FormatBindings(j.Bindings))
	case RuleAxiom:
		return fmt.Sprintf("Formula %s is derivable from axiom %s with substitution: %s",
			formula, j.Axiom, FormatBindings(j.Bindings))
	case RuleModusPonens:
		return fmt.Sprintf("Formula %s is derivable from formulas %s and %s by modus ponens",
			formula, j.Minor, j.Source)
	case RuleModusPonensAxiom:
		return fmt.Sprintf("Formula %s is derivable from formula %s and an instance of axiom %s by modus ponens with substitution: %s",
			formula, j.Source, j.Axiom, FormatBindings(j.Bindings))
	default:
		return fmt.Sprintf("Formula %s is derivable by %s", formula, j.Rule)
	}
}

// FormatBindings renders bindings as "p -> a, q -> (b->c)" in binding order.
func FormatBindings(bindings []Binding) string {
	if len(bindings) == 0 {
		return "none"
	}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.Var + " -> " + b.Value
	}
	return strings.Join(parts, ", ")
}
