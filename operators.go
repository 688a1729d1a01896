package calculator

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Operator is a binary arithmetic operator. Operators are values; the set of
// operators is fixed.
type Operator struct {
	// Symbol is the rune that denotes the operator in expressions.
	Symbol rune
	// Rank is the precedence rank. Lower ranks bind more loosely, so the
	// evaluator splits expressions on them first.
	Rank int
	// Name is a short name for the operation, e.g. "add".
	Name string

	fn func(l, r float64) (float64, error)
}

// Ranks of the operator table.
const (
	rankSum = iota
	rankProduct
	rankPower

	numRanks
)

// table lists the operators from loosest to tightest binding. Within a rank,
// order does not affect evaluation.
var table = [...]Operator{
	{Symbol: '+', Rank: rankSum, Name: "add", fn: add},
	{Symbol: '-', Rank: rankSum, Name: "subtract", fn: sub},
	{Symbol: '*', Rank: rankProduct, Name: "multiply", fn: mul},
	{Symbol: '/', Rank: rankProduct, Name: "divide", fn: div},
	{Symbol: '^', Rank: rankPower, Name: "power", fn: pow},
}

// symbols contains the runes which are operators.
var symbols = func() string {
	var b strings.Builder
	for _, op := range table {
		b.WriteRune(op.Symbol)
	}
	return b.String()
}()

// oppat is a character class of every operator symbol. Each symbol is
// escaped individually; QuoteMeta leaves '-' alone, which would make it a
// range inside the class. All symbols are ASCII punctuation, so the escape
// always denotes the symbol itself.
var oppat = func() *regexp.Regexp {
	var b strings.Builder
	b.WriteByte('[')
	for _, op := range table {
		b.WriteByte('\\')
		b.WriteRune(op.Symbol)
	}
	b.WriteByte(']')
	return regexp.MustCompile(b.String())
}()

// Symbols returns the operator symbols in table order, e.g. "+-*/^".
func Symbols() string {
	return symbols
}

// Operators returns the operator table ordered from loosest to tightest
// binding.
func Operators() []Operator {
	return append([]Operator(nil), table[:]...)
}

// LookupOperator gets the operator denoted by sym.
func LookupOperator(sym rune) (Operator, bool) {
	for _, op := range table {
		if op.Symbol == sym {
			return op, true
		}
	}
	return Operator{}, false
}

// OperatorPattern returns a regular expression matching any single operator
// symbol. The result is shared and must not be modified with Longest.
func OperatorPattern() *regexp.Regexp {
	return oppat
}

// isop reports whether r is an operator symbol.
func isop(r byte) bool {
	return strings.IndexByte(symbols, r) >= 0
}

// Calculate applies the operator to its operands. The result is never
// negative zero. Division by zero returns ErrDivisionByZero, and a result
// outside the range of float64 returns a *RangeError.
func (op Operator) Calculate(l, r float64) (float64, error) {
	if op.fn == nil {
		panic("calculator: Calculate on zero Operator")
	}
	v, err := op.fn(l, r)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &RangeError{Op: op.Symbol, Left: l, Right: r}
	}
	return normzero(v), nil
}

// Precedence describes the operator's binding strength for listings.
func (op Operator) Precedence() string {
	switch op.Rank {
	case rankSum:
		return "lowest precedence"
	case rankProduct:
		return "medium precedence"
	case rankPower:
		return "highest precedence"
	default:
		panic("calculator: invalid operator rank")
	}
}

func (op Operator) String() string {
	return string(op.Symbol)
}

// normzero converts -0 to +0 so that comparisons and formatting are
// predictable.
func normzero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

func add(l, r float64) (float64, error) { return l + r, nil }
func sub(l, r float64) (float64, error) { return l - r, nil }
func mul(l, r float64) (float64, error) { return l * r, nil }

func div(l, r float64) (float64, error) {
	if normzero(r) == 0 {
		return 0, ErrDivisionByZero
	}
	return l / r, nil
}

// powprec is the precision of intermediate powers, the same as float64.
const powprec = 53

// pow computes sign(l) * |l|^r. This keeps results real for negative bases
// with fractional exponents; it is not the complex power.
func pow(l, r float64) (float64, error) {
	sign := 1.0
	if l < 0 {
		sign = -1
	}
	m := math.Abs(l)
	switch {
	case m == 0, m == 1, r == math.Trunc(r):
		// math.Pow multiplies out integer exponents.
		return sign * math.Pow(m, r), nil
	case math.Abs(r*math.Log2(m)) > 1100:
		// Far outside float64 in either direction.
		return sign * math.Pow(m, r), nil
	}
	return sign * bigpow(m, r), nil
}

// bigpow computes m^r for m > 0 using bigfloat, falling back to math.Pow if
// bigfloat rejects the arguments.
func bigpow(m, r float64) (v float64) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if err, ok := p.(error); !ok || !errors.As(err, &big.ErrNaN{}) {
			panic(p)
		}
		v = math.Pow(m, r)
	}()
	var x, y big.Float
	x.SetPrec(powprec).SetFloat64(m)
	y.SetPrec(powprec).SetFloat64(r)
	bigfloat.Pow(&x, &x, &y)
	v, _ = x.Float64()
	return v
}
