package core

import (
	"fmt"

	"github.com/comalice/automatax/internal/primitives"
)

// ClosureIndex maps every state of an NFA to the set of states reachable
// from it via zero or more epsilon arcs. It is a full fixed point: for every
// pair (s, t) with t epsilon-reachable from s, t is in closure(s).
type ClosureIndex struct {
	closure map[primitives.StateID]primitives.StateSet
}

// Of returns the closure of a single state. States unknown to the index
// (never added to the graph) have an empty closure.
func (ci *ClosureIndex) Of(id primitives.StateID) primitives.StateSet {
	set, ok := ci.closure[id]
	if !ok {
		return primitives.NewStateSet()
	}
	return set.Clone()
}

// BuildEpsilonClosure computes the epsilon-closure index for every state and
// caches it on the NFA. Total: it cannot fail, and rebuilding on an
// unmutated NFA yields identical closure sets.
//
// The computation seeds closure(s) with s itself plus its direct epsilon
// successors, then runs an all-pairs relational closure over states
// (Warshall): for every (k, i, j), if k is in closure(i) and j is in
// closure(k), j joins closure(i). Cubic in state count, which is fine at
// the automaton sizes this engine targets.
func (n *NFA) BuildEpsilonClosure() *ClosureIndex {
	states := n.sortedStates()
	closure := make(map[primitives.StateID]primitives.StateSet, len(states))
	for _, s := range states {
		set := primitives.NewStateSet(s)
		for to, ts := range n.adjacency[s] {
			if ts.Contains(primitives.Epsilon) {
				set.Add(to)
			}
		}
		closure[s] = set
	}

	for _, k := range states {
		for _, i := range states {
			if !closure[i].Contains(k) {
				continue
			}
			closure[i].Union(closure[k])
		}
	}

	n.closure = &ClosureIndex{closure: closure}
	return n.closure
}

// EpsilonClosure returns the union of closure(s) for each s in states.
// Fails with ErrUninitialized if BuildEpsilonClosure has not run since the
// last mutation of the transition graph.
func (n *NFA) EpsilonClosure(states primitives.StateSet) (primitives.StateSet, error) {
	if n.closure == nil {
		return nil, fmt.Errorf("%w: call BuildEpsilonClosure before querying closures", primitives.ErrUninitialized)
	}
	out := primitives.NewStateSet()
	for s := range states {
		out.Union(n.closure.closure[s])
	}
	return out, nil
}

// straightReachable returns every state reachable from a member of states
// via a single arc labeled with input. Epsilon arcs are not followed here.
func (n *NFA) straightReachable(states primitives.StateSet, input primitives.Symbol) primitives.StateSet {
	out := primitives.NewStateSet()
	for s := range states {
		for to, ts := range n.adjacency[s] {
			if ts.Contains(input) {
				out.Add(to)
			}
		}
	}
	return out
}
