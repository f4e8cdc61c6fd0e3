// Package eulertour: the opt-in cross-structure invariant walk.
//
// Enabled by WithInvariantChecks, run after every mutation. The
// reference for component membership is a throwaway union-find over
// the live edge set; the treaps must agree with it exactly.

package eulertour

import (
	"fmt"

	"github.com/katalvlaran/dynforest/treap"
)

// validate re-verifies anchor pairing, the shared treap of each
// vertex's anchors and of each edge's halves, even tour lengths, and
// the component partition, panicking on the first breach. Whether
// anchors are a vertex's extremal occurrences is not checked. No-op
// unless WithInvariantChecks was set.
// Complexity: O((V + E) log V) expected per call.
func (t *Tour) validate() {
	if !t.checkInvariants {
		return
	}

	// Reference partition: union-find over vertices and live edges.
	parent := make(map[string]string, len(t.vertices))
	for id := range t.vertices {
		parent[id] = id
	}
	var find func(string) string
	find = func(x string) string {
		for parent[x] != x {
			parent[x] = parent[parent[x]] // halve the path as we walk
			x = parent[x]
		}
		return x
	}
	for u, inner := range t.forward {
		for v := range inner {
			parent[find(u)] = find(v)
		}
	}

	components := 0
	for id := range t.vertices {
		if find(id) == id {
			components++
		}
	}
	if components != t.nComponents {
		panic(fmt.Sprintf("eulertour: component counter %d, edge set says %d",
			t.nComponents, components))
	}

	// Per-vertex anchor invariants, and the treap-side partition.
	treapGroup := make(map[string]*treap.Node[*HalfEdge], len(t.vertices))
	for id, v := range t.vertices {
		if v.IsSingleton() { // also traps half-anchored vertices
			continue
		}
		root := v.leftOut.node.Root()
		if v.rightIn.node.Root() != root {
			panic("eulertour: anchors of " + id + " in distinct treaps")
		}
		if sz := root.Size(); sz%2 != 0 {
			panic(fmt.Sprintf("eulertour: tour of %s has odd length %d", id, sz))
		}
		treapGroup[id] = root
	}

	// The two partitions must coincide: same union-find class iff same
	// treap (singletons: treapGroup nil, class of one).
	leader := make(map[string]string, len(t.vertices))
	for id := range t.vertices {
		r := find(id)
		first, seen := leader[r]
		if !seen {
			leader[r] = id
			continue
		}
		if treapGroup[id] != treapGroup[first] || treapGroup[id] == nil {
			panic(fmt.Sprintf("eulertour: %s and %s connected by edges but not by treaps",
				first, id))
		}
	}
	seenRoot := make(map[*treap.Node[*HalfEdge]]string, len(leader))
	for id, root := range treapGroup {
		if other, dup := seenRoot[root]; dup {
			if find(id) != find(other) {
				panic(fmt.Sprintf("eulertour: %s and %s share a treap but not a component",
					id, other))
			}
			continue
		}
		seenRoot[root] = id
	}

	// Per-edge invariants.
	for u, inner := range t.forward {
		for v, e := range inner {
			if !e.forward || e.inverse == nil || e.inverse.forward {
				panic(fmt.Sprintf("eulertour: malformed half-edge pair %s-%s", u, v))
			}
			if e.inverse.inverse != e {
				panic(fmt.Sprintf("eulertour: inverse of %s-%s is not an involution", u, v))
			}
			if e.node.Root() != e.inverse.node.Root() {
				panic(fmt.Sprintf("eulertour: halves of %s-%s in distinct treaps", u, v))
			}
		}
	}
}
