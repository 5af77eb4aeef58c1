package core

import (
	"reflect"
	"testing"

	"github.com/comalice/automatax/internal/primitives"
)

func collect(seq func(yield func(primitives.StateID) bool)) []primitives.StateID {
	var out []primitives.StateID
	seq(func(id primitives.StateID) bool {
		out = append(out, id)
		return true
	})
	return out
}

func TestNFAAlphabetDerivation(t *testing.T) {
	// The derived alphabet is the set of non-epsilon symbols in use,
	// independent of the order transitions were added.
	orders := [][][3]string{
		{{"p", "a", "q"}, {"q", "b", "r"}, {"p", "ɛ", "r"}, {"r", "a", "p"}},
		{{"r", "a", "p"}, {"p", "ɛ", "r"}, {"q", "b", "r"}, {"p", "a", "q"}},
	}
	want := []primitives.Symbol{"a", "b"}
	for i, order := range orders {
		n := NewNFA()
		for _, tr := range order {
			if err := n.AddTransition(tr[0], tr[1], tr[2]); err != nil {
				t.Fatalf("AddTransition(%v) error = %v", tr, err)
			}
		}
		if got := n.Alphabet(); !reflect.DeepEqual(got, want) {
			t.Errorf("order %d: Alphabet() = %v, want %v", i, got, want)
		}
	}
}

func TestNFANodeSynthesis(t *testing.T) {
	n := NewNFA()
	n.AddTransition("from", "a", "to")

	states := collect(n.States())
	want := []primitives.StateID{"from", "to"}
	if !reflect.DeepEqual(states, want) {
		t.Errorf("States() = %v, want %v", states, want)
	}

	// Accepting and initial ids become nodes too, even with no arcs.
	n.AddAcceptingStates([]string{"lonely"})
	n.AddInitialStates([]string{"entry"})
	if got := n.StateCount(); got != 4 {
		t.Errorf("StateCount() = %d, want 4", got)
	}
	if !n.IsAccepting("lonely") {
		t.Error(`IsAccepting("lonely") = false`)
	}
}

func TestNFAMergesDuplicateArcs(t *testing.T) {
	n := NewNFA()
	n.AddTransition("p", "a", "q")
	n.AddTransition("p", "b", "q")
	n.AddTransition("p", "a", "q")

	var arcs []Arc
	for a := range n.Arcs() {
		arcs = append(arcs, a)
	}
	if len(arcs) != 1 {
		t.Fatalf("got %d arcs, want 1 (merged)", len(arcs))
	}
	want := []primitives.Symbol{"a", "b"}
	if !reflect.DeepEqual(arcs[0].Symbols, want) {
		t.Errorf("arc symbols = %v, want %v", arcs[0].Symbols, want)
	}
}

func TestNFAStateEnumerationOrderAndComplement(t *testing.T) {
	n := NewNFA()
	n.AddInitialStates([]string{"m"})
	n.AddAcceptingStates([]string{"b", "z"})
	n.AddTransition("z", "x", "a")

	all := collect(n.States())
	wantAll := []primitives.StateID{"a", "b", "m", "z"}
	if !reflect.DeepEqual(all, wantAll) {
		t.Errorf("States() = %v, want %v", all, wantAll)
	}

	accepting := collect(n.AcceptingStates())
	if want := []primitives.StateID{"b", "z"}; !reflect.DeepEqual(accepting, want) {
		t.Errorf("AcceptingStates() = %v, want %v", accepting, want)
	}

	rest := collect(n.NonAcceptingStates())
	if want := []primitives.StateID{"a", "m"}; !reflect.DeepEqual(rest, want) {
		t.Errorf("NonAcceptingStates() = %v, want %v", rest, want)
	}
}

func TestNFASequencesAreRestartable(t *testing.T) {
	n := NewNFA()
	n.AddTransition("p", "a", "q")
	seq := n.States()
	first := collect(seq)
	second := collect(seq)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second iteration %v differs from first %v", second, first)
	}
}

func TestNFAInitialStatesUnion(t *testing.T) {
	n := NewNFA()
	if err := n.AddInitialStates([]string{"b"}); err != nil {
		t.Fatalf("AddInitialStates error = %v", err)
	}
	if err := n.AddInitialStates([]string{"a", "b"}); err != nil {
		t.Fatalf("second AddInitialStates error = %v", err)
	}
	want := []primitives.StateID{"a", "b"}
	if got := n.InitialStates(); !reflect.DeepEqual(got, want) {
		t.Errorf("InitialStates() = %v, want %v", got, want)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := &primitives.AutomatonConfig{
		ID:        "m",
		Initial:   []string{"X"},
		Accepting: []string{"Y"},
		Transitions: []primitives.TransitionConfig{
			{From: "X", Input: "a", To: "Y"},
			{From: "X", Input: "ɛ", To: "Y"},
		},
	}
	n, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	if got := n.StateCount(); got != 2 {
		t.Errorf("StateCount() = %d, want 2", got)
	}
	if want := []primitives.Symbol{"a"}; !reflect.DeepEqual(n.Alphabet(), want) {
		t.Errorf("Alphabet() = %v, want %v", n.Alphabet(), want)
	}

	if _, err := FromConfig(&primitives.AutomatonConfig{ID: "m"}); err == nil {
		t.Error("FromConfig with no initial states: error = nil, want error")
	}
}
