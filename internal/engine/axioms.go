package engine

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/roach88/hilbert/internal/formula"
	"github.com/roach88/hilbert/internal/ir"
)

// DefaultAxiomSpecs returns the three standard schemas in declaration order:
// K, S and E (double negation elimination written with implication only).
func DefaultAxiomSpecs() []ir.AxiomSpec {
	return []ir.AxiomSpec{
		{Name: "K", Template: "p->(q->p)", Params: []string{"p", "q"}},
		{Name: "S", Template: "(s->(p->q))->((s->p)->(s->q))", Params: []string{"s", "p", "q"}},
		{Name: "E", Template: "((p->f)->f)->p", Params: []string{"p", "f"}},
	}
}

// AxiomSchema is a named template formula whose parameters are schema
// variables.
type AxiomSchema struct {
	// Name identifies the schema in listings and justifications.
	Name string

	// Template is the normalized template text.
	Template string

	// Params are the schema variables, in declaration order.
	Params []string

	root  formula.Node
	frees FreeSet
}

// NewAxiomSchema parses template and builds a schema.
//
// When no params are given every identifier of the template is a schema
// variable. Each param must be a single identifier and appear at most once.
// A param that does not occur in the template is allowed; it simply never
// binds.
func NewAxiomSchema(name, template string, params ...string) (*AxiomSchema, error) {
	if name == "" {
		return nil, &AxiomError{Code: ErrCodeInvalidParam, Message: "axiom name is required"}
	}

	root, err := formula.Parse(template)
	if err != nil {
		return nil, &AxiomError{
			Code:    ErrCodeInvalidTemplate,
			Name:    name,
			Message: fmt.Sprintf("template %q is not a well-formed formula", template),
			Err:     err,
		}
	}

	if len(params) == 0 {
		params = formula.Identifiers(root)
	}
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if !isParamName(p) {
			return nil, &AxiomError{
				Code:    ErrCodeInvalidParam,
				Name:    name,
				Message: fmt.Sprintf("parameter %q must be a single letter", p),
			}
		}
		if _, dup := seen[p]; dup {
			return nil, &AxiomError{
				Code:    ErrCodeInvalidParam,
				Name:    name,
				Message: fmt.Sprintf("parameter %q declared twice", p),
			}
		}
		seen[p] = struct{}{}
	}

	ps := make([]string, len(params))
	copy(ps, params)
	return &AxiomSchema{
		Name:     name,
		Template: formula.Normalize(template),
		Params:   ps,
		root:     root,
		frees:    Frees(ps...),
	}, nil
}

// NewAxiomSchemaFromSpec builds a schema from a declaration.
func NewAxiomSchemaFromSpec(spec ir.AxiomSpec) (*AxiomSchema, error) {
	return NewAxiomSchema(spec.Name, spec.Template, spec.Params...)
}

func isParamName(p string) bool {
	r, size := utf8.DecodeRuneInString(p)
	return size > 0 && size == len(p) && unicode.IsLetter(r)
}

// Root returns the parsed template. Callers must not modify it.
func (a *AxiomSchema) Root() formula.Node {
	return a.root
}

// Arity returns the number of schema variables.
func (a *AxiomSchema) Arity() int {
	return len(a.Params)
}

// Match checks whether target is an instance of the schema.
func (a *AxiomSchema) Match(target formula.Node) (*Bindings, bool) {
	return Match(a.root, target, a.frees)
}

// Instantiate substitutes every parameter with the given subtree. All
// parameters that occur in the template must be supplied.
func (a *AxiomSchema) Instantiate(subst map[string]formula.Node) (formula.Node, error) {
	for _, id := range formula.Identifiers(a.root) {
		if !a.frees.Contains(id) {
			continue
		}
		if _, ok := subst[id]; !ok {
			return nil, fmt.Errorf("instantiate %s: no value for parameter %q", a.Name, id)
		}
	}
	return formula.Substitute(a.root, subst), nil
}

// Spec returns the declaration of the schema.
func (a *AxiomSchema) Spec() ir.AxiomSpec {
	ps := make([]string, len(a.Params))
	copy(ps, a.Params)
	return ir.AxiomSpec{Name: a.Name, Template: a.Template, Params: ps}
}

// AxiomSet is the ordered collection of active axiom schemas.
//
// Declaration order is preserved; Ordered derives the search order from it.
// AxiomSet is not safe for concurrent use.
type AxiomSet struct {
	schemas []*AxiomSchema
}

// NewAxiomSet creates a set from schemas in declaration order. Names must
// be unique.
func NewAxiomSet(schemas ...*AxiomSchema) (*AxiomSet, error) {
	s := &AxiomSet{}
	for _, a := range schemas {
		if err := s.Add(a); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewAxiomSetFromSpecs compiles declarations into a set.
func NewAxiomSetFromSpecs(specs []ir.AxiomSpec) (*AxiomSet, error) {
	s := &AxiomSet{}
	for _, spec := range specs {
		a, err := NewAxiomSchemaFromSpec(spec)
		if err != nil {
			return nil, err
		}
		if err := s.Add(a); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// DefaultAxioms returns a fresh set holding K, S and E.
func DefaultAxioms() *AxiomSet {
	s, err := NewAxiomSetFromSpecs(DefaultAxiomSpecs())
	if err != nil {
		panic(fmt.Sprintf("default axioms: %v", err))
	}
	return s
}

// Len returns the number of schemas.
func (s *AxiomSet) Len() int {
	return len(s.schemas)
}

// Add appends a schema. It fails if the name is already taken.
func (s *AxiomSet) Add(a *AxiomSchema) error {
	if a == nil {
		return &AxiomError{Code: ErrCodeInvalidParam, Message: "nil axiom"}
	}
	if _, ok := s.Get(a.Name); ok {
		return &AxiomError{
			Code:    ErrCodeDuplicateAxiom,
			Name:    a.Name,
			Message: "an axiom with this name already exists",
		}
	}
	s.schemas = append(s.schemas, a)
	return nil
}

// Get returns the schema with the given name.
func (s *AxiomSet) Get(name string) (*AxiomSchema, bool) {
	for _, a := range s.schemas {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// Remove retracts every schema identified by key and returns them in
// declaration order.
//
// key is compared against, in this order:
//  1. the schema name
//  2. the normalized template text
//  3. the template structure, when key parses as a formula
//
// The first criterion that matches anything decides; e.g. a name match
// never also removes schemas that merely share the template.
func (s *AxiomSet) Remove(key string) ([]*AxiomSchema, error) {
	match := s.removalMatcher(key)
	if match == nil {
		return nil, &AxiomError{
			Code:    ErrCodeAxiomNotFound,
			Name:    key,
			Message: "no axiom matches by name, text or structure",
		}
	}

	var removed []*AxiomSchema
	kept := s.schemas[:0:0]
	for _, a := range s.schemas {
		if match(a) {
			removed = append(removed, a)
			continue
		}
		kept = append(kept, a)
	}
	s.schemas = kept
	return removed, nil
}

func (s *AxiomSet) removalMatcher(key string) func(*AxiomSchema) bool {
	byName := func(a *AxiomSchema) bool { return a.Name == key }
	if s.any(byName) {
		return byName
	}

	text := formula.Normalize(key)
	byText := func(a *AxiomSchema) bool { return a.Template == text }
	if s.any(byText) {
		return byText
	}

	if root, err := formula.Parse(key); err == nil {
		byTree := func(a *AxiomSchema) bool { return formula.Equal(a.root, root) }
		if s.any(byTree) {
			return byTree
		}
	}
	return nil
}

func (s *AxiomSet) any(pred func(*AxiomSchema) bool) bool {
	for _, a := range s.schemas {
		if pred(a) {
			return true
		}
	}
	return false
}

// List returns the schemas in declaration order.
func (s *AxiomSet) List() []*AxiomSchema {
	out := make([]*AxiomSchema, len(s.schemas))
	copy(out, s.schemas)
	return out
}

// Ordered returns the schemas in search order: schemas with at most two
// parameters first, then the rest, each group in declaration order.
func (s *AxiomSet) Ordered() []*AxiomSchema {
	out := s.List()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Arity() <= 2 && out[j].Arity() > 2
	})
	return out
}

// FindInstance returns the first schema in search order that target
// instantiates, with its bindings.
func (s *AxiomSet) FindInstance(target formula.Node) (*AxiomSchema, *Bindings, bool) {
	for _, a := range s.Ordered() {
		if b, ok := a.Match(target); ok {
			return a, b, true
		}
	}
	return nil, nil, false
}
