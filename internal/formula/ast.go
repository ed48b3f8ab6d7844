package formula

// Node is a formula syntax tree: either a *Leaf or an *Implication.
//
// Trees are never shared between formulas and never mutated after
// construction. Operations that need a different tree (Clone, Substitute)
// build a new one.
type Node interface {
	// nodeMarker restricts implementers to this package.
	nodeMarker()
}

// Leaf is an atomic propositional variable.
type Leaf struct {
	Name string
}

// Implication is Left -> Right. Both children are always non-nil.
type Implication struct {
	Left  Node
	Right Node
}

func (*Leaf) nodeMarker()        {}
func (*Implication) nodeMarker() {}

// String returns the canonical rendering of the leaf.
func (l *Leaf) String() string { return l.Name }

// String returns the canonical rendering of the implication.
func (i *Implication) String() string { return Render(i) }

// NewLeaf returns a leaf for the given identifier.
func NewLeaf(name string) *Leaf {
	return &Leaf{Name: name}
}

// Imp builds left -> right.
func Imp(left, right Node) *Implication {
	return &Implication{Left: left, Right: right}
}

// Equal reports whether a and b are structurally identical: both leaves with
// the same identifier, or both implications with equal children.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Leaf:
		y, ok := b.(*Leaf)
		return ok && x.Name == y.Name
	case *Implication:
		y, ok := b.(*Implication)
		if !ok {
			return false
		}
		return Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return false
	}
}

// Clone returns a deep copy of n.
func Clone(n Node) Node {
	switch x := n.(type) {
	case *Leaf:
		return &Leaf{Name: x.Name}
	case *Implication:
		return &Implication{Left: Clone(x.Left), Right: Clone(x.Right)}
	default:
		return nil
	}
}

// Identifiers returns the distinct leaf identifiers of n in order of first
// occurrence (left to right).
func Identifiers(n Node) []string {
	seen := make(map[string]struct{})
	var out []string
	var walk func(Node)
	walk = func(n Node) {
		switch x := n.(type) {
		case *Leaf:
			if _, ok := seen[x.Name]; !ok {
				seen[x.Name] = struct{}{}
				out = append(out, x.Name)
			}
		case *Implication:
			walk(x.Left)
			walk(x.Right)
		}
	}
	walk(n)
	return out
}

// Substitute returns a copy of n where every leaf named in subst is replaced
// by a copy of its mapped tree. Leaves not in subst are copied unchanged.
// Replacement is simultaneous: substituted subtrees are not rewritten again.
func Substitute(n Node, subst map[string]Node) Node {
	switch x := n.(type) {
	case *Leaf:
		if repl, ok := subst[x.Name]; ok {
			return Clone(repl)
		}
		return &Leaf{Name: x.Name}
	case *Implication:
		return &Implication{
			Left:  Substitute(x.Left, subst),
			Right: Substitute(x.Right, subst),
		}
	default:
		return nil
	}
}

// Size returns the number of nodes in n.
func Size(n Node) int {
	if imp, ok := n.(*Implication); ok {
		return 1 + Size(imp.Left) + Size(imp.Right)
	}
	if n == nil {
		return 0
	}
	return 1
}
