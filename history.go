package calculator

// ResultPair is an evaluated expression and its formatted result.
type ResultPair struct {
	Key   string `json:"expression" yaml:"expression"`
	Value string `json:"result" yaml:"result"`
}

// Same reports whether p and q are pairs for the same expression, regardless
// of their results.
func (p ResultPair) Same(q ResultPair) bool {
	return p.Key == q.Key
}

func (p ResultPair) String() string {
	return p.Key + " = " + p.Value
}

// History is an append-only log of evaluations. The zero value is an empty
// history ready to use. It is not safe to use a History concurrently.
type History struct {
	pairs []ResultPair
}

// Record appends an evaluation to the history. Evaluations of expressions
// already in the history are appended again rather than replacing them.
func (h *History) Record(key, value string) {
	h.pairs = append(h.pairs, ResultPair{Key: key, Value: value})
}

// Lookup returns the result recorded for an expression. If the expression
// was recorded more than once, the result is the oldest one.
func (h *History) Lookup(key string) (string, bool) {
	want := ResultPair{Key: key}
	for _, p := range h.pairs {
		if p.Same(want) {
			return p.Value, true
		}
	}
	return "", false
}

// All returns every recorded evaluation in the order they were recorded.
func (h *History) All() []ResultPair {
	return append([]ResultPair(nil), h.pairs...)
}

// Unique returns the recorded evaluations in the order they were first
// recorded, with repeats of identical pairs removed. Pairs for the same
// expression with different results are all kept.
func (h *History) Unique() []ResultPair {
	seen := make(map[ResultPair]bool, len(h.pairs))
	r := make([]ResultPair, 0, len(h.pairs))
	for _, p := range h.pairs {
		if seen[p] {
			continue
		}
		seen[p] = true
		r = append(r, p)
	}
	return r
}

// Len returns the number of recorded evaluations.
func (h *History) Len() int {
	return len(h.pairs)
}
