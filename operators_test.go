package calculator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/calculator"
)

func TestOperators(t *testing.T) {
	ops := calculator.Operators()
	want := "+-*/^"
	if len(ops) != len(want) {
		t.Fatalf("want %d operators, got %d", len(want), len(ops))
	}
	for i, op := range ops {
		if op.Symbol != rune(want[i]) {
			t.Errorf("operator %d: want %c, got %c", i, want[i], op.Symbol)
		}
		if i > 0 && op.Rank < ops[i-1].Rank {
			t.Errorf("operator %c ranks lower than %c", op.Symbol, ops[i-1].Symbol)
		}
	}
	if s := calculator.Symbols(); s != want {
		t.Errorf("wrong symbols: want %q, got %q", want, s)
	}
	// Modifying the result must not modify the table.
	ops[0].Rank = 100
	if calculator.Operators()[0].Rank == 100 {
		t.Error("Operators returned the table itself")
	}
}

func TestLookupOperator(t *testing.T) {
	cases := []struct {
		sym  rune
		name string
		rank int
		prec string
	}{
		{'+', "add", 0, "lowest precedence"},
		{'-', "subtract", 0, "lowest precedence"},
		{'*', "multiply", 1, "medium precedence"},
		{'/', "divide", 1, "medium precedence"},
		{'^', "power", 2, "highest precedence"},
	}
	for _, c := range cases {
		op, ok := calculator.LookupOperator(c.sym)
		if !ok {
			t.Errorf("no operator for %c", c.sym)
			continue
		}
		if op.Name != c.name || op.Rank != c.rank || op.Precedence() != c.prec {
			t.Errorf("wrong operator for %c: %+v (%s)", c.sym, op, op.Precedence())
		}
		if op.String() != string(c.sym) {
			t.Errorf("wrong string for %c: %q", c.sym, op.String())
		}
	}
	if op, ok := calculator.LookupOperator('%'); ok {
		t.Errorf("found operator for %%: %+v", op)
	}
}

func TestOperatorPattern(t *testing.T) {
	re := calculator.OperatorPattern()
	for _, s := range []string{"+", "-", "*", "/", "^", "1+1", "a^b"} {
		if !re.MatchString(s) {
			t.Errorf("pattern %v does not match %q", re, s)
		}
	}
	// Punctuation that sorts between operator symbols must not match, so the class
	// cannot contain a range.
	for _, s := range []string{"", "1", "()", "%", "history", "\\", ",", ".", "]", "[", "&", "_"} {
		if re.MatchString(s) {
			t.Errorf("pattern %v matches %q", re, s)
		}
	}
	for _, op := range calculator.Operators() {
		if loc := re.FindStringIndex("1 " + op.String() + " 2"); loc == nil || loc[0] != 2 {
			t.Errorf("pattern %v finds %c at %v", re, op.Symbol, loc)
		}
	}
	if got := re.FindAllString("1+2*(3-4)/5^6", -1); len(got) != 5 {
		t.Errorf("wrong operator matches: %q", got)
	}
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		sym  rune
		l, r float64
		v    float64
	}{
		{'+', 1, 2, 3},
		{'+', -1, 1, 0},
		{'-', 1, 2, -1},
		{'-', 0, 0, 0},
		{'*', 3, 4, 12},
		{'*', -1, 0, 0},
		{'/', 1, 4, 0.25},
		{'/', 0, -5, 0},
		{'^', 2, 10, 1024},
		{'^', -2, 2, -4},
		{'^', -2, 3, -8},
		{'^', 9, 0.5, 3},
		{'^', -9, 0.5, -3},
		{'^', 2, -2, 0.25},
		{'^', 0, 5, 0},
		{'^', 1, 1e300, 1},
	}
	for _, c := range cases {
		op, _ := calculator.LookupOperator(c.sym)
		v, err := op.Calculate(c.l, c.r)
		if err != nil {
			t.Errorf("%g %c %g: unexpected error %v", c.l, c.sym, c.r, err)
			continue
		}
		if math.Abs(v-c.v) > 1e-12 {
			t.Errorf("%g %c %g: want %g, got %g", c.l, c.sym, c.r, c.v, v)
		}
		if v == 0 && math.Signbit(v) {
			t.Errorf("%g %c %g: negative zero", c.l, c.sym, c.r)
		}
	}
}

func TestCalculateErrors(t *testing.T) {
	div, _ := calculator.LookupOperator('/')
	for _, z := range []float64{0, math.Copysign(0, -1)} {
		if _, err := div.Calculate(1, z); !errors.Is(err, calculator.ErrDivisionByZero) {
			t.Errorf("1/%g: want ErrDivisionByZero, got %v", z, err)
		}
	}
	mul, _ := calculator.LookupOperator('*')
	_, err := mul.Calculate(math.MaxFloat64, 2)
	var re *calculator.RangeError
	if !errors.As(err, &re) {
		t.Fatalf("overflow: want RangeError, got %v", err)
	}
	if re.Op != '*' || re.Left != math.MaxFloat64 || re.Right != 2 {
		t.Errorf("wrong RangeError: %+v", re)
	}
}
