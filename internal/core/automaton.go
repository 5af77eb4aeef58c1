// Package core implements the automaton data model and the NFA-to-DFA
// conversion: the shared finite-automaton contract, the NFA and DFA
// variants, the epsilon-closure index, and the subset construction.
//
// The core is single-threaded and synchronous. Mutation methods require
// exclusive access to the automaton; once construction is complete (and,
// for an NFA, the closure index is built) the automaton may be shared
// read-only.
package core

import (
	"iter"
	"sort"

	"github.com/comalice/automatax/internal/primitives"
)

// Arc is one labeled edge of the transition graph, reported by Arcs for
// read-only traversal and rendering.
type Arc struct {
	From    primitives.StateID
	To      primitives.StateID
	Symbols []primitives.Symbol
}

// FiniteAutomaton is the capability contract shared by the NFA and DFA
// variants. Each variant enforces its own initial-state cardinality rule;
// everything else behaves identically.
//
// The enumeration methods return lazy, restartable sequences ordered
// lexicographically by state identifier, so output derived from them is
// reproducible across runs regardless of insertion order.
type FiniteAutomaton interface {
	// AddInitialStates records ids as initial states. NFA unions them into
	// its initial set; DFA requires exactly one id and rejects a second call.
	AddInitialStates(ids []string) error
	// AddAcceptingStates unions ids into the accepting set, synthesizing
	// graph nodes for ids not seen before.
	AddAcceptingStates(ids []string) error
	// AddTransition adds the arc from --input--> to, creating endpoint nodes
	// as needed and merging into an existing arc between the same pair.
	// input may be the epsilon literal, which never enters the alphabet.
	AddTransition(from, input, to string) error

	States() iter.Seq[primitives.StateID]
	AcceptingStates() iter.Seq[primitives.StateID]
	NonAcceptingStates() iter.Seq[primitives.StateID]
	Arcs() iter.Seq[Arc]

	InitialStates() []primitives.StateID
	IsAccepting(id primitives.StateID) bool
	Alphabet() []primitives.Symbol
	StateCount() int
}

// graph is the adjacency structure shared by both variants: state -> state
// -> transition set, plus the derived alphabet. Maps are unordered; every
// order-sensitive consumer goes through the sorted accessors.
type graph struct {
	adjacency map[primitives.StateID]map[primitives.StateID]*primitives.TransitionSet
	alphabet  primitives.SymbolSet
}

func newGraph() graph {
	return graph{
		adjacency: make(map[primitives.StateID]map[primitives.StateID]*primitives.TransitionSet),
		alphabet:  make(primitives.SymbolSet),
	}
}

// ensureNode inserts id as a graph node with no outgoing arcs if absent.
// Every state that appears as an arc endpoint or as an initial/accepting
// state passes through here, which maintains the "every state is a graph
// node" invariant.
func (g *graph) ensureNode(id primitives.StateID) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[primitives.StateID]*primitives.TransitionSet)
	}
}

// addArc records from --input--> to, creating both endpoints and deriving
// the alphabet. Total: no error conditions.
func (g *graph) addArc(from primitives.StateID, input primitives.Symbol, to primitives.StateID) {
	g.ensureNode(from)
	g.ensureNode(to)
	if !input.IsEpsilon() {
		g.alphabet.Add(input)
	}
	if ts, ok := g.adjacency[from][to]; ok {
		ts.Add(input)
	} else {
		g.adjacency[from][to] = primitives.NewTransitionSet(input)
	}
}

func (g *graph) stateCount() int {
	return len(g.adjacency)
}

// sortedStates returns all graph nodes in lexicographic order.
func (g *graph) sortedStates() []primitives.StateID {
	ids := make([]primitives.StateID, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (g *graph) states() iter.Seq[primitives.StateID] {
	return func(yield func(primitives.StateID) bool) {
		for _, id := range g.sortedStates() {
			if !yield(id) {
				return
			}
		}
	}
}

// statesWhere yields the graph nodes satisfying keep, in canonical order.
func (g *graph) statesWhere(keep func(primitives.StateID) bool) iter.Seq[primitives.StateID] {
	return func(yield func(primitives.StateID) bool) {
		for _, id := range g.sortedStates() {
			if !keep(id) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// arcs yields every edge, ordered by (from, to).
func (g *graph) arcs() iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		for _, from := range g.sortedStates() {
			targets := g.adjacency[from]
			tos := make([]primitives.StateID, 0, len(targets))
			for to := range targets {
				tos = append(tos, to)
			}
			sort.Slice(tos, func(i, j int) bool { return tos[i] < tos[j] })
			for _, to := range tos {
				a := Arc{From: from, To: to, Symbols: targets[to].Symbols()}
				if !yield(a) {
					return
				}
			}
		}
	}
}

func (g *graph) alphabetSorted() []primitives.Symbol {
	return g.alphabet.Sorted()
}
