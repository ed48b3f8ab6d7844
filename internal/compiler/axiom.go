// Package compiler turns CUE axiom definitions into ir.AxiomSpec values.
//
// An axiom file declares schemas under the top-level "axiom" struct:
//
//	axiom: K: {
//		template: "p->(q->p)"
//		params: ["p", "q"]
//	}
//
// params is optional; when omitted every identifier of the template is a
// schema variable.
package compiler

import (
	"cuelang.org/go/cue"

	"github.com/roach88/hilbert/internal/ir"
)

// CompileAxiom parses a CUE value into an AxiomSpec.
// Uses CUE SDK's Go API directly (not CLI subprocess).
//
// The CUE value should be the axiom struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`axiom: K: { template: "p->(q->p)" }`)
//	spec, err := CompileAxiom(v.LookupPath(cue.ParsePath("axiom.K")))
func CompileAxiom(v cue.Value) (*ir.AxiomSpec, error) {
	spec := &ir.AxiomSpec{}

	labels := v.Path().Selectors()
	if len(labels) > 0 {
		spec.Name = labels[len(labels)-1].String()
	}

	if err := v.Err(); err != nil {
		return nil, cueError(spec.Name, err)
	}

	templateVal := v.LookupPath(cue.ParsePath("template"))
	if !templateVal.Exists() {
		return nil, &CompileError{
			Axiom:   spec.Name,
			Field:   "template",
			Message: "template is required",
			Pos:     v.Pos(),
		}
	}
	template, err := templateVal.String()
	if err != nil {
		return nil, cueError(spec.Name, err)
	}
	spec.Template = template

	paramsVal := v.LookupPath(cue.ParsePath("params"))
	if paramsVal.Exists() {
		iter, err := paramsVal.List()
		if err != nil {
			return nil, cueError(spec.Name, err)
		}
		for iter.Next() {
			p, err := iter.Value().String()
			if err != nil {
				return nil, &CompileError{
					Axiom:   spec.Name,
					Field:   "params",
					Message: "params must be a list of strings",
					Pos:     iter.Value().Pos(),
				}
			}
			spec.Params = append(spec.Params, p)
		}
	}

	return spec, nil
}

// CompileAxioms compiles every schema under the top-level "axiom" struct of
// v, in source order. A missing "axiom" struct yields no specs.
func CompileAxioms(v cue.Value) ([]ir.AxiomSpec, error) {
	if err := v.Err(); err != nil {
		return nil, cueError("", err)
	}

	axiomsVal := v.LookupPath(cue.ParsePath("axiom"))
	if !axiomsVal.Exists() {
		return nil, nil
	}

	iter, err := axiomsVal.Fields()
	if err != nil {
		return nil, cueError("", err)
	}

	var specs []ir.AxiomSpec
	for iter.Next() {
		spec, err := CompileAxiom(iter.Value())
		if err != nil {
			return nil, err
		}
		specs = append(specs, *spec)
	}
	return specs, nil
}
