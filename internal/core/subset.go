package core

import (
	"strconv"

	"github.com/comalice/automatax/internal/primitives"
)

// ToDFA converts the NFA into an equivalent deterministic automaton via
// subset construction. Requires a current epsilon-closure index; fails with
// ErrUninitialized otherwise. The source NFA is read-only throughout, and
// the result shares no mutable state with it.
//
// Each output state stands for an epsilon-closed set of source states and
// gets a synthetic id: "0" for the start closure, then sequential ids in
// order of first discovery. Discovery is breadth-first with symbols taken
// in lexicographic alphabet order, so ids are reproducible across runs
// given identical construction order. An output state is accepting iff its
// underlying set intersects the source accepting set. The empty set is a
// composite state like any other (the dead state), which is what makes the
// output total: every state has exactly one arc per alphabet symbol.
func ToDFA(n *NFA) (*DFA, error) {
	start, err := n.EpsilonClosure(n.initial)
	if err != nil {
		return nil, err
	}

	dfa := NewDFA()
	if err := dfa.AddInitialStates([]string{"0"}); err != nil {
		return nil, err
	}
	if start.Intersects(n.accepting) {
		dfa.AddAcceptingStates([]string{"0"})
	}

	alphabet := n.alphabetSorted()
	known := map[string]string{start.Key(): "0"}
	queue := []primitives.StateSet{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		currentID := known[current.Key()]

		for _, input := range alphabet {
			direct := n.straightReachable(current, input)
			target, err := n.EpsilonClosure(direct)
			if err != nil {
				return nil, err
			}
			targetID, ok := known[target.Key()]
			if !ok {
				targetID = strconv.Itoa(len(known))
				known[target.Key()] = targetID
				queue = append(queue, target)
			}
			dfa.AddTransition(currentID, string(input), targetID)
			if target.Intersects(n.accepting) {
				dfa.AddAcceptingStates([]string{targetID})
			}
		}
	}
	return dfa, nil
}
