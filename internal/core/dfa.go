package core

import (
	"fmt"
	"iter"

	"github.com/comalice/automatax/internal/primitives"
)

// DFA is the deterministic variant: at most one initial state, enforced at
// the API boundary. Subset construction emits one arc per (state, symbol)
// pair; the type itself does not police arc multiplicity, only initial-state
// cardinality, matching the shared contract.
type DFA struct {
	graph
	initial   *primitives.StateID
	accepting primitives.StateSet
}

// NewDFA creates an empty deterministic automaton.
func NewDFA() *DFA {
	return &DFA{
		graph:     newGraph(),
		accepting: make(primitives.StateSet),
	}
}

// AddInitialStates records the single initial state. Fails with
// ErrUnsupportedOperation if one is already set, and with ErrIllegalArgument
// unless ids contains exactly one element.
func (d *DFA) AddInitialStates(ids []string) error {
	if d.initial != nil {
		return fmt.Errorf("%w: initial state already set; a DFA has exactly one initial state", primitives.ErrUnsupportedOperation)
	}
	if len(ids) != 1 {
		return fmt.Errorf("%w: got %d initial states, a DFA has exactly one", primitives.ErrIllegalArgument, len(ids))
	}
	sid := primitives.StateID(ids[0])
	d.initial = &sid
	d.ensureNode(sid)
	return nil
}

// AddAcceptingStates unions ids into the accepting set, synthesizing graph
// nodes as needed. Always succeeds.
func (d *DFA) AddAcceptingStates(ids []string) error {
	for _, id := range ids {
		sid := primitives.StateID(id)
		d.accepting.Add(sid)
		d.ensureNode(sid)
	}
	return nil
}

// AddTransition records from --input--> to. Total over well-formed string
// inputs.
func (d *DFA) AddTransition(from, input, to string) error {
	d.addArc(primitives.StateID(from), primitives.Symbol(input), primitives.StateID(to))
	return nil
}

// States yields all graph nodes in lexicographic order.
func (d *DFA) States() iter.Seq[primitives.StateID] { return d.states() }

// AcceptingStates yields the accepting graph nodes in lexicographic order.
func (d *DFA) AcceptingStates() iter.Seq[primitives.StateID] {
	return d.statesWhere(d.accepting.Contains)
}

// NonAcceptingStates yields the non-accepting graph nodes in lexicographic
// order.
func (d *DFA) NonAcceptingStates() iter.Seq[primitives.StateID] {
	return d.statesWhere(func(id primitives.StateID) bool { return !d.accepting.Contains(id) })
}

// Arcs yields every transition, ordered by (from, to).
func (d *DFA) Arcs() iter.Seq[Arc] { return d.arcs() }

// InitialStates returns the initial state as a zero- or one-element slice.
func (d *DFA) InitialStates() []primitives.StateID {
	if d.initial == nil {
		return nil
	}
	return []primitives.StateID{*d.initial}
}

// InitialState returns the initial state, if set.
func (d *DFA) InitialState() (primitives.StateID, bool) {
	if d.initial == nil {
		return "", false
	}
	return *d.initial, true
}

// IsAccepting reports whether id is an accepting state.
func (d *DFA) IsAccepting(id primitives.StateID) bool {
	return d.accepting.Contains(id)
}

// Alphabet returns the non-epsilon symbols in use, in lexicographic order.
func (d *DFA) Alphabet() []primitives.Symbol {
	return d.alphabetSorted()
}

// StateCount returns the number of graph nodes.
func (d *DFA) StateCount() int {
	return d.stateCount()
}
