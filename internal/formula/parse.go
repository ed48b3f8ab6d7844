package formula

import "fmt"

// Parse normalizes text and builds its syntax tree.
//
// The text is split at the first "->" outside any parentheses; the left side
// must be a Term and the right side a Formula. Without a top-level arrow the
// text must be a single identifier or one parenthesized Formula.
//
// Parse never returns a partial tree: on malformed input the Node is nil and
// the error is a *SyntaxError.
func Parse(text string) (Node, error) {
	runes := []rune(Normalize(text))
	if err := scan(runes); err != nil {
		return nil, err
	}
	return parseRunes(runes, 0)
}

// MustParse is like Parse but panics on error.
// Use only in tests or for templates known to be valid.
func MustParse(text string) Node {
	n, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("formula.MustParse(%q): %v", text, err))
	}
	return n
}

// parseRunes parses an already scanned, balanced slice. offset is the
// position of runes[0] in the full input, for error reporting.
func parseRunes(runes []rune, offset int) (Node, error) {
	if len(runes) == 0 {
		return nil, newSyntaxError(ErrCodeGrammar, offset, "expected formula")
	}
	if len(runes) == 1 {
		if isIdentifier(runes[0]) {
			return &Leaf{Name: string(runes[0])}, nil
		}
		return nil, newSyntaxError(ErrCodeGrammar, offset, "unexpected %q", runes[0])
	}

	if i := topLevelArrow(runes); i >= 0 {
		left, err := parseTerm(runes[:i], offset)
		if err != nil {
			return nil, err
		}
		right, err := parseRunes(runes[i+2:], offset+i+2)
		if err != nil {
			return nil, err
		}
		return &Implication{Left: left, Right: right}, nil
	}

	if enclosed(runes) {
		return parseRunes(runes[1:len(runes)-1], offset+1)
	}
	return nil, newSyntaxError(ErrCodeGrammar, offset, "expected identifier, '(' or '->'")
}

// parseTerm parses the left operand of an arrow. Since the split happens at
// the first top-level arrow, the operand has none of its own and is
// therefore an identifier or a parenthesized formula.
func parseTerm(runes []rune, offset int) (Node, error) {
	if len(runes) == 0 {
		return nil, newSyntaxError(ErrCodeGrammar, offset, "missing left operand of '->'")
	}
	return parseRunes(runes, offset)
}

// topLevelArrow returns the index of the first "->" at parenthesis depth
// zero, or -1.
func topLevelArrow(runes []rune) int {
	depth := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '-':
			if depth == 0 && i+1 < len(runes) && runes[i+1] == '>' {
				return i
			}
		}
	}
	return -1
}

// enclosed reports whether runes is "(" ... ")" with the first and last
// parenthesis matching each other.
func enclosed(runes []rune) bool {
	n := len(runes)
	if n < 2 || runes[0] != '(' || runes[n-1] != ')' {
		return false
	}
	depth := 0
	for i, r := range runes {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != n-1 {
				return false
			}
		}
	}
	return depth == 0
}
