package formula

import "strings"

// Render returns the canonical text of n: a leaf renders as its identifier
// and an implication as "(" + left + "->" + right + ")".
//
// The result is accepted by Parse and parses back to a tree Equal to n.
func Render(n Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n Node) {
	switch x := n.(type) {
	case *Leaf:
		b.WriteString(x.Name)
	case *Implication:
		b.WriteByte('(')
		render(b, x.Left)
		b.WriteString("->")
		render(b, x.Right)
		b.WriteByte(')')
	}
}
