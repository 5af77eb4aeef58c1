// Package testutil provides shared helpers for exercising automata in
// tests and demos. Running an input through a DFA lives here rather than in
// the library proper: the core models and converts automata, it does not
// execute them.
package testutil

import (
	"github.com/comalice/automatax"
)

// stepTable indexes a deterministic automaton's arcs by (from, symbol).
type stepTable map[automatax.StateID]map[automatax.Symbol]automatax.StateID

func buildStepTable(d *automatax.DFA) stepTable {
	table := make(stepTable)
	for arc := range d.Arcs() {
		row, ok := table[arc.From]
		if !ok {
			row = make(map[automatax.Symbol]automatax.StateID)
			table[arc.From] = row
		}
		for _, s := range arc.Symbols {
			row[s] = arc.To
		}
	}
	return table
}

// Run walks the DFA from its initial state over the given symbols. It
// returns the final state, or false if the DFA has no initial state or a
// symbol has no outgoing transition at some step.
func Run(d *automatax.DFA, input ...automatax.Symbol) (automatax.StateID, bool) {
	current, ok := d.InitialState()
	if !ok {
		return "", false
	}
	table := buildStepTable(d)
	for _, s := range input {
		next, ok := table[current][s]
		if !ok {
			return "", false
		}
		current = next
	}
	return current, true
}

// Accepts reports whether the DFA ends in an accepting state after reading
// the given symbols.
func Accepts(d *automatax.DFA, input ...automatax.Symbol) bool {
	final, ok := Run(d, input...)
	return ok && d.IsAccepting(final)
}

// Word splits a plain string into one Symbol per rune, for concise test
// inputs over single-character alphabets.
func Word(s string) []automatax.Symbol {
	symbols := make([]automatax.Symbol, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, automatax.Symbol(r))
	}
	return symbols
}
