package calculator

import (
	"unicode/utf8"
)

// isspace reports whether c is whitespace that may separate tokens.
func isspace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isdigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// scan checks that src contains only characters that can appear in an
// expression and that its parentheses are balanced. Expressions are ASCII,
// so positions are byte positions.
func scan(src string) error {
	// opens holds the positions of the currently unmatched open brackets.
	var opens []int
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case isdigit(c), c == '.', isspace(c), isop(c):
			// do nothing
		case c == '(':
			opens = append(opens, i)
		case c == ')':
			if len(opens) == 0 {
				return &BracketError{Col: i + 1, Open: false}
			}
			opens = opens[:len(opens)-1]
		default:
			// Report the whole rune so the message is readable.
			r, _ := utf8.DecodeRuneInString(src[i:])
			return &LexError{Col: i + 1, Text: string(r)}
		}
	}
	if len(opens) != 0 {
		// The outermost unmatched bracket is the most helpful one to report.
		return &BracketError{Col: opens[0] + 1, Open: true}
	}
	return nil
}

// trim narrows the span [i, j) of src to exclude surrounding whitespace.
func trim(src string, i, j int) (int, int) {
	for i < j && isspace(src[i]) {
		i++
	}
	for j > i && isspace(src[j-1]) {
		j--
	}
	return i, j
}

// wrapped reports whether the span [i, j) of src is entirely enclosed by one
// pair of matching parentheses. The span must be balanced.
func wrapped(src string, i, j int) bool {
	if j-i < 2 || src[i] != '(' || src[j-1] != ')' {
		return false
	}
	depth := 0
	for k := i; k < j; k++ {
		switch src[k] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return k == j-1
			}
		}
	}
	return false
}

// unary reports whether the sign at position k of src is a unary sign in the
// span starting at i, i.e. it is the first character of the span or follows
// an operator or open bracket.
func unary(src string, i, k int) bool {
	p := k - 1
	for p >= i && isspace(src[p]) {
		p--
	}
	if p < i {
		return true
	}
	return isop(src[p]) || src[p] == '('
}
