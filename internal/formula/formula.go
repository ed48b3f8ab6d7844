package formula

// Formula pairs the normalized source text with its syntax tree.
//
// A Formula is immutable once built. Root must not be modified by callers;
// use Clone or Substitute to derive new trees.
type Formula struct {
	// Text is the input with whitespace removed and NFC applied.
	Text string

	// Root is the parsed tree.
	Root Node
}

// New parses text into a Formula. It returns a *SyntaxError if the text is
// not well-formed.
func New(text string) (*Formula, error) {
	root, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return &Formula{Text: Normalize(text), Root: root}, nil
}

// MustNew is like New but panics on error.
func MustNew(text string) *Formula {
	f, err := New(text)
	if err != nil {
		panic(err)
	}
	return f
}

// FromNode wraps a tree as a Formula whose text is the canonical rendering.
func FromNode(n Node) *Formula {
	return &Formula{Text: Render(n), Root: n}
}

// String returns the normalized source text.
func (f *Formula) String() string {
	return f.Text
}

// Canonical returns the canonical rendering of the tree.
func (f *Formula) Canonical() string {
	return Render(f.Root)
}

// Identifiers returns the distinct identifiers of the formula in order of
// first occurrence.
func (f *Formula) Identifiers() []string {
	return Identifiers(f.Root)
}
