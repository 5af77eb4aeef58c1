// Package primitives defines the foundational value types for the automata
// engine: transition symbols, state identifiers, ordered sets of both, the
// per-arc transition set, the declarative automaton configuration, and the
// error taxonomy shared by every layer above.
//
// Everything here is plain data with value semantics. The types carry no
// goroutines, no I/O, and no references back into the automata that use them.
package primitives
