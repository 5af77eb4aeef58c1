package core

import (
	"fmt"
	"iter"

	"github.com/comalice/automatax/internal/primitives"
)

// NFA is the nondeterministic variant: one or more initial states, any
// number of arcs per (state, symbol) pair, epsilon arcs allowed. It owns a
// cached epsilon-closure index which is invalidated by every transition
// addition.
type NFA struct {
	graph
	initial   primitives.StateSet
	accepting primitives.StateSet

	// closure is nil until BuildEpsilonClosure runs, and reset to nil on
	// every mutation of the transition graph.
	closure *ClosureIndex
}

// NewNFA creates an empty nondeterministic automaton.
func NewNFA() *NFA {
	return &NFA{
		graph:     newGraph(),
		initial:   make(primitives.StateSet),
		accepting: make(primitives.StateSet),
	}
}

// AddInitialStates unions ids into the initial set. Always succeeds.
func (n *NFA) AddInitialStates(ids []string) error {
	for _, id := range ids {
		sid := primitives.StateID(id)
		n.initial.Add(sid)
		n.ensureNode(sid)
	}
	return nil
}

// AddAcceptingStates unions ids into the accepting set, synthesizing graph
// nodes as needed. Always succeeds.
func (n *NFA) AddAcceptingStates(ids []string) error {
	for _, id := range ids {
		sid := primitives.StateID(id)
		n.accepting.Add(sid)
		n.ensureNode(sid)
	}
	return nil
}

// AddTransition records from --input--> to and invalidates the cached
// epsilon-closure index. Total over well-formed string inputs.
func (n *NFA) AddTransition(from, input, to string) error {
	n.addArc(primitives.StateID(from), primitives.Symbol(input), primitives.StateID(to))
	n.closure = nil
	return nil
}

// States yields all graph nodes in lexicographic order.
func (n *NFA) States() iter.Seq[primitives.StateID] { return n.states() }

// AcceptingStates yields the accepting graph nodes in lexicographic order.
func (n *NFA) AcceptingStates() iter.Seq[primitives.StateID] {
	return n.statesWhere(n.accepting.Contains)
}

// NonAcceptingStates yields the non-accepting graph nodes in lexicographic
// order.
func (n *NFA) NonAcceptingStates() iter.Seq[primitives.StateID] {
	return n.statesWhere(func(id primitives.StateID) bool { return !n.accepting.Contains(id) })
}

// Arcs yields every transition, ordered by (from, to).
func (n *NFA) Arcs() iter.Seq[Arc] { return n.arcs() }

// InitialStates returns the initial set in lexicographic order.
func (n *NFA) InitialStates() []primitives.StateID {
	return n.initial.Sorted()
}

// IsAccepting reports whether id is an accepting state.
func (n *NFA) IsAccepting(id primitives.StateID) bool {
	return n.accepting.Contains(id)
}

// Alphabet returns the non-epsilon symbols in use, in lexicographic order.
func (n *NFA) Alphabet() []primitives.Symbol {
	return n.alphabetSorted()
}

// StateCount returns the number of graph nodes.
func (n *NFA) StateCount() int {
	return n.stateCount()
}

// FromConfig constructs an NFA from a validated declarative definition.
func FromConfig(cfg *primitives.AutomatonConfig) (*NFA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("automaton %q: %w", cfg.ID, err)
	}
	n := NewNFA()
	if err := n.AddInitialStates(cfg.Initial); err != nil {
		return nil, err
	}
	if err := n.AddAcceptingStates(cfg.Accepting); err != nil {
		return nil, err
	}
	for _, t := range cfg.Transitions {
		if err := n.AddTransition(t.From, t.Input, t.To); err != nil {
			return nil, err
		}
	}
	return n, nil
}
