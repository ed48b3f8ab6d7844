package engine

import (
	"github.com/roach88/hilbert/internal/formula"
	"github.com/roach88/hilbert/internal/ir"
)

// FreeSet holds the identifiers that act as schema variables in a pattern.
type FreeSet map[string]struct{}

// Frees builds a FreeSet from identifier names.
func Frees(names ...string) FreeSet {
	fs := make(FreeSet, len(names))
	for _, n := range names {
		fs[n] = struct{}{}
	}
	return fs
}

// Contains reports whether name is free.
func (fs FreeSet) Contains(name string) bool {
	_, ok := fs[name]
	return ok
}

// Bindings maps schema variables to the subtrees they matched.
//
// Iteration order is the order in which variables were first bound, which
// is the left-to-right order of their first occurrence in the pattern.
type Bindings struct {
	names  []string
	values map[string]formula.Node
}

func newBindings() *Bindings {
	return &Bindings{values: make(map[string]formula.Node)}
}

// Len returns the number of bound variables.
func (b *Bindings) Len() int {
	return len(b.names)
}

// Get returns the subtree bound to name.
func (b *Bindings) Get(name string) (formula.Node, bool) {
	n, ok := b.values[name]
	return n, ok
}

// Names returns the bound variables in binding order.
func (b *Bindings) Names() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Map returns a copy of the bindings suitable for formula.Substitute.
func (b *Bindings) Map() map[string]formula.Node {
	out := make(map[string]formula.Node, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}

// Records renders the bindings as ir.Binding values in binding order.
func (b *Bindings) Records() []ir.Binding {
	out := make([]ir.Binding, len(b.names))
	for i, name := range b.names {
		out[i] = ir.Binding{Var: name, Value: formula.Render(b.values[name])}
	}
	return out
}

// String renders the bindings as "p -> a, q -> (b->c)".
func (b *Bindings) String() string {
	return ir.FormatBindings(b.Records())
}

func (b *Bindings) bind(name string, n formula.Node) {
	b.names = append(b.names, name)
	b.values[name] = formula.Clone(n)
}

// Match checks whether target is an instance of pattern.
//
// The trees are walked in lock-step:
//   - a free pattern leaf binds the whole target subtree on its first
//     occurrence; later occurrences must meet a structurally equal subtree
//   - any other pattern leaf matches only a leaf with the same identifier
//   - an implication matches an implication whose left and right children
//     match, sharing one binding set
//   - every other shape combination fails
//
// Match is not symmetric: only pattern leaves can be free. With an empty
// FreeSet it is exactly formula.Equal. On failure the returned Bindings is
// nil; partial bindings are never exposed.
func Match(pattern, target formula.Node, frees FreeSet) (*Bindings, bool) {
	b := newBindings()
	if !matchNode(pattern, target, frees, b) {
		return nil, false
	}
	return b, true
}

// IsInstance reports whether target is an instance of pattern.
func IsInstance(pattern, target formula.Node, frees FreeSet) bool {
	_, ok := Match(pattern, target, frees)
	return ok
}

func matchNode(pattern, target formula.Node, frees FreeSet, b *Bindings) bool {
	switch p := pattern.(type) {
	case *formula.Leaf:
		if frees.Contains(p.Name) {
			if bound, ok := b.values[p.Name]; ok {
				return formula.Equal(bound, target)
			}
			b.bind(p.Name, target)
			return true
		}
		t, ok := target.(*formula.Leaf)
		return ok && t.Name == p.Name
	case *formula.Implication:
		t, ok := target.(*formula.Implication)
		if !ok {
			return false
		}
		return matchNode(p.Left, t.Left, frees, b) && matchNode(p.Right, t.Right, frees, b)
	default:
		return false
	}
}
