package automatax

import (
	"fmt"
)

// NFABuilder provides a fluent API for constructing NFAs, the programmatic
// counterpart to a declarative AutomatonConfig. Errors are collected and
// reported once from Build, so chains stay readable.
type NFABuilder struct {
	nfa  *NFA
	errs []error
}

// NewNFABuilder creates a builder around an empty NFA.
func NewNFABuilder() *NFABuilder {
	return &NFABuilder{nfa: NewNFA()}
}

// Initial adds initial states.
func (b *NFABuilder) Initial(ids ...string) *NFABuilder {
	if err := b.nfa.AddInitialStates(ids); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Accepting adds accepting states.
func (b *NFABuilder) Accepting(ids ...string) *NFABuilder {
	if err := b.nfa.AddAcceptingStates(ids); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Transition adds the arc from --input--> to.
func (b *NFABuilder) Transition(from, input, to string) *NFABuilder {
	if err := b.nfa.AddTransition(from, input, to); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Epsilon adds an epsilon arc between from and to.
func (b *NFABuilder) Epsilon(from, to string) *NFABuilder {
	return b.Transition(from, string(Epsilon), to)
}

// Build validates the accumulated automaton and returns it. An NFA needs at
// least one initial state.
func (b *NFABuilder) Build() (*NFA, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	if len(b.nfa.InitialStates()) == 0 {
		return nil, fmt.Errorf("%w: an NFA needs at least one initial state", ErrIllegalArgument)
	}
	return b.nfa, nil
}

// DFABuilder is the deterministic counterpart of NFABuilder. Cardinality
// violations (a second initial state, zero-or-many initial ids) surface
// from Build.
type DFABuilder struct {
	dfa  *DFA
	errs []error
}

// NewDFABuilder creates a builder around an empty DFA.
func NewDFABuilder() *DFABuilder {
	return &DFABuilder{dfa: NewDFA()}
}

// Initial sets the single initial state.
func (b *DFABuilder) Initial(id string) *DFABuilder {
	if err := b.dfa.AddInitialStates([]string{id}); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Accepting adds accepting states.
func (b *DFABuilder) Accepting(ids ...string) *DFABuilder {
	if err := b.dfa.AddAcceptingStates(ids); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Transition adds the arc from --input--> to.
func (b *DFABuilder) Transition(from, input, to string) *DFABuilder {
	if err := b.dfa.AddTransition(from, input, to); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Build returns the accumulated automaton, or the first construction error.
func (b *DFABuilder) Build() (*DFA, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	return b.dfa, nil
}
