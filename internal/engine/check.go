package engine

import (
	"github.com/roach88/hilbert/internal/formula"
	"github.com/roach88/hilbert/internal/ir"
	"github.com/roach88/hilbert/internal/store"
)

// derive runs the three checks in their fixed order and returns the first
// justification found.
func (v *Verifier) derive(f *formula.Formula) (ir.Justification, bool) {
	if j, ok := v.checkTheorems(f); ok {
		return j, true
	}
	if j, ok := v.checkAxioms(f); ok {
		return j, true
	}
	return v.checkModusPonens(f)
}

// checkTheorems looks for a stored formula T, oldest first, such that f is
// an instance of T with every identifier of T free.
func (v *Verifier) checkTheorems(f *formula.Formula) (ir.Justification, bool) {
	var (
		j     ir.Justification
		found bool
	)
	v.store.Each(func(e store.Entry) bool {
		frees := Frees(e.Formula.Identifiers()...)
		b, ok := Match(e.Formula.Root, f.Root, frees)
		if !ok {
			return true
		}
		j = ir.Justification{
			Rule:     ir.RuleTheorem,
			Source:   e.Formula.Text,
			Bindings: b.Records(),
		}
		found = true
		return false
	})
	return j, found
}

// checkAxioms looks for an axiom schema that f instantiates.
func (v *Verifier) checkAxioms(f *formula.Formula) (ir.Justification, bool) {
	a, b, ok := v.axioms.FindInstance(f.Root)
	if !ok {
		return ir.Justification{}, false
	}
	return ir.Justification{
		Rule:     ir.RuleAxiom,
		Axiom:    a.Name,
		Bindings: b.Records(),
	}, true
}

// checkModusPonens looks for a stored implication A->F whose consequent is
// structurally equal to f. The antecedent A must itself be stored, or
// failing that be an instance of an axiom schema.
func (v *Verifier) checkModusPonens(f *formula.Formula) (ir.Justification, bool) {
	var (
		j     ir.Justification
		found bool
	)
	v.store.Each(func(major store.Entry) bool {
		imp, ok := major.Formula.Root.(*formula.Implication)
		if !ok || !formula.Equal(imp.Right, f.Root) {
			return true
		}

		if minor, ok := v.store.FindEqual(imp.Left); ok {
			j = ir.Justification{
				Rule:   ir.RuleModusPonens,
				Source: major.Formula.Text,
				Minor:  minor.Formula.Text,
			}
			found = true
			return false
		}

		if a, b, ok := v.axioms.FindInstance(imp.Left); ok {
			j = ir.Justification{
				Rule:     ir.RuleModusPonensAxiom,
				Source:   major.Formula.Text,
				Axiom:    a.Name,
				Bindings: b.Records(),
			}
			found = true
			return false
		}
		return true
	})
	return j, found
}
