package calculator

import (
	"errors"
	"strconv"
)

// Eval evaluates an arithmetic expression. The result is never negative zero.
//
// Errors resulting from invalid input implement InputError and match
// ErrMalformedExpression. Division by zero results in an *ArithmeticError
// matching ErrDivisionByZero. A result too large for a float64 is a
// *RangeError.
func Eval(src string) (float64, error) {
	if err := scan(src); err != nil {
		return 0, err
	}
	return eval(src, 0, len(src))
}

// EvalString evaluates an expression and formats the result with Format.
func EvalString(src string) (string, error) {
	v, err := Eval(src)
	if err != nil {
		return "", err
	}
	return Format(v), nil
}

// Format formats a result as decimal text without an exponent, using the
// fewest digits that represent v exactly. Whole numbers have no fraction.
func Format(v float64) string {
	return strconv.FormatFloat(normzero(v), 'f', -1, 64)
}

// eval evaluates the span [i, j) of src. src must already be scanned.
func eval(src string, i, j int) (float64, error) {
	i, j = trim(src, i, j)
	if i == j {
		return 0, empty(src, j)
	}
	if wrapped(src, i, j) {
		return eval(src, i+1, j-1)
	}
	for rank := 0; rank < numRanks; rank++ {
		k := split(src, i, j, rank)
		if k < 0 {
			continue
		}
		op, _ := LookupOperator(rune(src[k]))
		l, err := eval(src, i, k)
		if err != nil {
			return 0, err
		}
		r, err := eval(src, k+1, j)
		if err != nil {
			return 0, err
		}
		v, err := op.Calculate(l, r)
		if err != nil {
			return 0, &ArithmeticError{Col: k + 1, Op: op.Symbol, Err: err}
		}
		return v, nil
	}
	return literal(src, i, j)
}

// split finds the position in [i, j) to split on for operators of the given
// rank, or -1 if there is none. Only operators outside brackets are
// candidates, and unary signs never are. The last candidate wins so that
// operators of equal rank group to the left: a-b-c is (a-b)-c. Each call
// scans the whole span, so a chain of n operators costs O(n²) over the
// recursion.
func split(src string, i, j, rank int) int {
	at := -1
	depth := 0
	for k := i; k < j; k++ {
		c := src[k]
		switch {
		case c == '(':
			depth++
		case c == ')':
			depth--
		case depth != 0, !isop(c):
			// do nothing
		default:
			op, _ := LookupOperator(rune(c))
			if op.Rank != rank {
				continue
			}
			if rank == rankSum && unary(src, i, k) {
				continue
			}
			at = k
		}
	}
	return at
}

// literal evaluates a span with no operators to split on. That is a number
// with an optional sign, or a sign applied to a bracketed expression.
func literal(src string, i, j int) (float64, error) {
	neg := false
	k := i
	if c := src[k]; c == '+' || c == '-' {
		neg = c == '-'
		k, _ = trim(src, k+1, j)
		if k == j {
			return 0, empty(src, j)
		}
		if src[k] == '(' {
			v, err := eval(src, k, j)
			if err != nil {
				return 0, err
			}
			if neg {
				v = -v
			}
			return normzero(v), nil
		}
	}
	text := src[k:j]
	if !isnum(text) {
		return 0, &LiteralError{Col: i + 1, Text: src[i:j]}
	}
	if neg {
		text = "-" + text
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &RangeError{Text: src[i:j]}
		}
		// isnum accepted something ParseFloat didn't.
		panic("calculator: invalid number: " + text + " (" + err.Error() + ")")
	}
	return normzero(v), nil
}

// isnum reports whether s is an unsigned decimal number: digits with at most
// one decimal point and at least one digit.
func isnum(s string) bool {
	dig, dot := false, false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isdigit(c):
			dig = true
		case c == '.':
			if dot {
				return false
			}
			dot = true
		default:
			return false
		}
	}
	return dig
}

// empty creates an error for an empty span ending at j.
func empty(src string, j int) error {
	if j >= len(src) {
		return &EmptyExpressionError{Col: len(src) + 1}
	}
	return &EmptyExpressionError{Col: j + 1, End: src[j : j+1]}
}
