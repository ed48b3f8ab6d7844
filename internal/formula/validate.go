package formula

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares raw input for validation: the text is NFC normalized so
// composed and decomposed letters name the same identifier, and all
// whitespace is removed.
func Normalize(text string) string {
	normalized := norm.NFC.String(text)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, normalized)
}

// IsWellFormed reports whether text is a well-formed implicational formula.
func IsWellFormed(text string) bool {
	return Validate(text) == nil
}

// Validate checks text against the formula grammar and returns a
// *SyntaxError describing the first problem found, or nil.
func Validate(text string) error {
	_, err := Parse(text)
	return err
}

// isIdentifier reports whether r may be used as an atomic variable.
func isIdentifier(r rune) bool {
	return unicode.IsLetter(r)
}

// scan performs the character and parenthesis checks that precede the
// grammar check. Positions in returned errors are rune offsets.
func scan(runes []rune) error {
	if len(runes) == 0 {
		return newSyntaxError(ErrCodeEmpty, -1, "formula is empty")
	}

	balance := 0
	for i, r := range runes {
		switch {
		case isIdentifier(r):
		case r == '(':
			balance++
		case r == ')':
			balance--
			if balance < 0 {
				return newSyntaxError(ErrCodeUnbalanced, i, "unexpected ')'")
			}
		case r == '-':
			if i+1 >= len(runes) || runes[i+1] != '>' {
				return newSyntaxError(ErrCodeInvalidChar, i, "'-' must be followed by '>'")
			}
		case r == '>':
			if i == 0 || runes[i-1] != '-' {
				return newSyntaxError(ErrCodeInvalidChar, i, "'>' must be preceded by '-'")
			}
		default:
			return newSyntaxError(ErrCodeInvalidChar, i, "invalid character %q", r)
		}
	}

	if balance != 0 {
		return newSyntaxError(ErrCodeUnbalanced, -1, "%d unclosed '('", balance)
	}
	return nil
}
