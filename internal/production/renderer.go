// Package production provides the human-facing integrations around the core
// automata: diagnostic text rendering and Graphviz DOT export.
package production

import (
	"bytes"
	"fmt"

	"github.com/comalice/automatax/internal/core"
)

// Renderer turns an automaton into human-oriented text. Neither output is a
// stable or parseable format; both exist for inspection only.
type Renderer struct{}

// RenderText renders the initial states, accepting states, and every arc as
// "from => [symbols] => to", one per line, in canonical order.
func (r *Renderer) RenderText(a core.FiniteAutomaton) string {
	var buf bytes.Buffer
	buf.WriteString("automaton {\n")
	buf.WriteString(fmt.Sprintf("    initial:   %v\n", a.InitialStates()))
	accepting := make([]string, 0)
	for id := range a.AcceptingStates() {
		accepting = append(accepting, string(id))
	}
	buf.WriteString(fmt.Sprintf("    accepting: %v\n", accepting))
	for arc := range a.Arcs() {
		buf.WriteString(fmt.Sprintf("    %s => %v => %s\n", arc.From, arc.Symbols, arc.To))
	}
	buf.WriteString("}\n")
	return buf.String()
}

// ExportDOT generates Graphviz DOT source for the automaton. Accepting
// states are drawn as double circles; each initial state gets an arrow from
// an invisible start node.
func (r *Renderer) ExportDOT(a core.FiniteAutomaton) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Automaton {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, fontsize=10];\n")
	buf.WriteString("  edge [fontsize=9];\n")

	for id := range a.AcceptingStates() {
		buf.WriteString(fmt.Sprintf("  %q [shape=doublecircle];\n", string(id)))
	}
	for i, id := range a.InitialStates() {
		startNode := fmt.Sprintf("__start%d", i)
		buf.WriteString(fmt.Sprintf("  %q [shape=point];\n", startNode))
		buf.WriteString(fmt.Sprintf("  %q -> %q;\n", startNode, string(id)))
	}
	for arc := range a.Arcs() {
		label := ""
		for i, s := range arc.Symbols {
			if i > 0 {
				label += ","
			}
			label += string(s)
		}
		buf.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n", string(arc.From), string(arc.To), label))
	}

	buf.WriteString("}\n")
	return buf.String()
}
