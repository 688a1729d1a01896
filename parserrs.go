package calculator

import (
	"errors"
	"strconv"
)

var (
	// ErrMalformedExpression is the error that every error resulting from
	// invalid input matches with errors.Is.
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrDivisionByZero is returned when the divisor of a division is zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// LexError indicates a character that cannot appear in an expression. It
// implements InputError.
type LexError struct {
	// Col is the position of the character.
	Col int
	// Text is the invalid character.
	Text string
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Is(target error) bool {
	return target == ErrMalformedExpression
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Open is whether the unmatched parenthesis is an open parenthesis.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Is(target error) bool {
	return target == ErrMalformedExpression
}

// EmptyExpressionError is an error indicating an empty subexpression, e.g.
// an operand missing on one side of an operator.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression, or one
	// past the end of the input.
	Col int
	// End is the token that ended the subexpression. It is the empty string
	// if the subexpression ended at the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Is(target error) bool {
	return target == ErrMalformedExpression
}

// LiteralError indicates a span that is neither a number nor an expression
// built from operators. It implements InputError.
type LiteralError struct {
	// Col is the position of the start of the span.
	Col int
	// Text is the invalid span.
	Text string
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *LiteralError) Pos() int {
	return err.Col
}

func (err *LiteralError) Is(target error) bool {
	return target == ErrMalformedExpression
}

// ArithmeticError is an error from applying an operator during evaluation.
// It unwraps to the operator's error, e.g. ErrDivisionByZero.
type ArithmeticError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator symbol.
	Op rune
	// Err is the error returned by the operator.
	Err error
}

func (err *ArithmeticError) Error() string {
	return errpos(err.Col, "cannot evaluate "+strconv.QuoteRune(err.Op)+": "+err.Err.Error())
}

func (err *ArithmeticError) Pos() int {
	return err.Col
}

func (err *ArithmeticError) Unwrap() error {
	return err.Err
}

// RangeError is an error indicating a result that a float64 cannot hold.
type RangeError struct {
	// Op is the operator that overflowed, or 0 if a literal overflowed.
	Op rune
	// Left and Right are the operands, if Op is not 0.
	Left, Right float64
	// Text is the overflowing literal, if Op is 0.
	Text string
}

func (err *RangeError) Error() string {
	if err.Op == 0 {
		return "number out of range: " + strconv.Quote(err.Text)
	}
	l := strconv.FormatFloat(err.Left, 'g', -1, 64)
	r := strconv.FormatFloat(err.Right, 'g', -1, 64)
	return "result out of range: " + l + " " + string(err.Op) + " " + r
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based byte column of
	// the character that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*ArithmeticError)(nil)
)
