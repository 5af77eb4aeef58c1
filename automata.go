// Package automatax models finite automata and converts nondeterministic
// automata (NFAs) into equivalent deterministic ones (DFAs) via subset
// construction with epsilon-closure resolution.
//
// The typical call sequence is: construct an NFA (directly, through
// NFABuilder, or from an AutomatonConfig), call BuildEpsilonClosure, then
// ToDFA. Querying closures or converting before the index is built fails
// with ErrUninitialized.
package automatax

import (
	"io"

	"github.com/comalice/automatax/internal/core"
	"github.com/comalice/automatax/internal/primitives"
	"github.com/comalice/automatax/internal/production"
)

// Re-exported core types. The implementations live in internal packages;
// these aliases are the supported public surface.
type (
	Symbol          = primitives.Symbol
	StateID         = primitives.StateID
	StateSet        = primitives.StateSet
	TransitionSet   = primitives.TransitionSet
	AutomatonConfig = primitives.AutomatonConfig

	FiniteAutomaton = core.FiniteAutomaton
	NFA             = core.NFA
	DFA             = core.DFA
	Arc             = core.Arc
	ClosureIndex    = core.ClosureIndex
)

// Epsilon is the reserved no-input transition label.
const Epsilon = primitives.Epsilon

// Contract-violation sentinels; match with errors.Is.
var (
	ErrIllegalArgument      = primitives.ErrIllegalArgument
	ErrUnsupportedOperation = primitives.ErrUnsupportedOperation
	ErrUninitialized        = primitives.ErrUninitialized
)

// NewNFA creates an empty nondeterministic automaton.
func NewNFA() *NFA { return core.NewNFA() }

// NewDFA creates an empty deterministic automaton.
func NewDFA() *DFA { return core.NewDFA() }

// ToDFA converts an NFA with a current epsilon-closure index into an
// equivalent deterministic automaton. See core.ToDFA.
func ToDFA(n *NFA) (*DFA, error) { return core.ToDFA(n) }

// FromConfig constructs an NFA from a declarative definition.
func FromConfig(cfg *AutomatonConfig) (*NFA, error) { return core.FromConfig(cfg) }

// LoadConfig decodes and validates a YAML automaton definition.
func LoadConfig(r io.Reader) (*AutomatonConfig, error) { return primitives.LoadConfig(r) }

// LoadConfigFile decodes and validates a YAML automaton definition on disk.
func LoadConfigFile(path string) (*AutomatonConfig, error) {
	return primitives.LoadConfigFile(path)
}

// RenderText returns the diagnostic text rendering of an automaton. Not a
// stable format; for human inspection only.
func RenderText(a FiniteAutomaton) string {
	r := &production.Renderer{}
	return r.RenderText(a)
}

// ExportDOT returns Graphviz DOT source for an automaton.
func ExportDOT(a FiniteAutomaton) string {
	r := &production.Renderer{}
	return r.ExportDOT(a)
}
