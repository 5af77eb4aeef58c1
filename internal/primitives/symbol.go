package primitives

import (
	"sort"
	"strings"
)

// Symbol is a transition input label. Equality and ordering are value-based.
type Symbol string

// Epsilon is the reserved symbol for a transition that consumes no input.
// It is a legal transition label but is never part of an automaton's alphabet.
const Epsilon Symbol = "ɛ"

// IsEpsilon reports whether the symbol is the reserved epsilon label.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

// StateID names a state. Uniqueness is scoped to the containing automaton.
type StateID string

// StateSet is an unordered set of state identifiers. Iteration-order-sensitive
// callers must go through Sorted or Key.
type StateSet map[StateID]struct{}

// NewStateSet builds a set containing the given identifiers.
func NewStateSet(ids ...StateID) StateSet {
	set := make(StateSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Add inserts id into the set.
func (ss StateSet) Add(id StateID) {
	ss[id] = struct{}{}
}

// Contains reports membership of id.
func (ss StateSet) Contains(id StateID) bool {
	_, ok := ss[id]
	return ok
}

// Union inserts every member of other into the set.
func (ss StateSet) Union(other StateSet) {
	for id := range other {
		ss[id] = struct{}{}
	}
}

// Intersects reports whether the two sets share at least one member.
func (ss StateSet) Intersects(other StateSet) bool {
	// Scan the smaller side.
	if len(other) < len(ss) {
		ss, other = other, ss
	}
	for id := range ss {
		if _, ok := other[id]; ok {
			return true
		}
	}
	return false
}

// Sorted returns the members in lexicographic order.
func (ss StateSet) Sorted() []StateID {
	ids := make([]StateID, 0, len(ss))
	for id := range ss {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Key returns a canonical string for the set: two sets produce the same key
// iff they contain the same members, regardless of insertion order. Used to
// deduplicate composite states during subset construction.
func (ss StateSet) Key() string {
	ids := ss.Sorted()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, "\x1f")
}

// Clone returns an independent copy of the set.
func (ss StateSet) Clone() StateSet {
	out := make(StateSet, len(ss))
	for id := range ss {
		out[id] = struct{}{}
	}
	return out
}

// SymbolSet is an unordered set of symbols; Sorted gives canonical order.
type SymbolSet map[Symbol]struct{}

// NewSymbolSet builds a set containing the given symbols.
func NewSymbolSet(symbols ...Symbol) SymbolSet {
	set := make(SymbolSet, len(symbols))
	for _, s := range symbols {
		set[s] = struct{}{}
	}
	return set
}

// Add inserts s into the set.
func (sy SymbolSet) Add(s Symbol) {
	sy[s] = struct{}{}
}

// Contains reports membership of s.
func (sy SymbolSet) Contains(s Symbol) bool {
	_, ok := sy[s]
	return ok
}

// Sorted returns the members in lexicographic order.
func (sy SymbolSet) Sorted() []Symbol {
	symbols := make([]Symbol, 0, len(sy))
	for s := range sy {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}
