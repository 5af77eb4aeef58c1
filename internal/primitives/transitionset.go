package primitives

// TransitionSet is the set of symbols labeling a single (from, to) arc.
// It is non-empty for as long as it exists: arcs are created with at least
// one symbol, and symbols are never removed. Merging a duplicate arc between
// the same state pair is modeled as inserting into the existing set.
type TransitionSet struct {
	symbols SymbolSet
}

// NewTransitionSet creates an arc label set seeded with first.
func NewTransitionSet(first Symbol) *TransitionSet {
	return &TransitionSet{symbols: NewSymbolSet(first)}
}

// Add inserts a symbol into the set. Inserting an existing symbol is a no-op.
func (ts *TransitionSet) Add(s Symbol) {
	ts.symbols.Add(s)
}

// Contains reports whether the arc is labeled with s.
func (ts *TransitionSet) Contains(s Symbol) bool {
	return ts.symbols.Contains(s)
}

// Symbols returns the labels in lexicographic order.
func (ts *TransitionSet) Symbols() []Symbol {
	return ts.symbols.Sorted()
}

// Len returns the number of labels on the arc.
func (ts *TransitionSet) Len() int {
	return len(ts.symbols)
}
