// Package eulertour: single-pass iteration over a component's tour.
//
// Both iterator kinds walk the treap in order from the tour root.
// They hold bare positions into the structure: any Link, Cut,
// MakeRoot or vertex removal invalidates them (results become
// undefined, though never unsafe).

package eulertour

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/dynforest/treap"
)

// Iterator walks the vertices of one component in tour order.
// Vertices of degree two or more occur at several tour positions and
// are yielded once per departure; use NodesInComponent for the
// deduplicated set.
type Iterator struct {
	cur  *treap.Node[*HalfEdge]
	last string
	done bool
}

// Iterator returns a vertex iterator over id's component, starting at
// the tour root. A singleton component yields id once; an absent id
// yields nothing.
// Complexity: O(log n) to construct, O(k log n) to drain.
func (t *Tour) Iterator(id string) *Iterator {
	if !t.HasVertex(id) {
		return &Iterator{done: true}
	}

	return &Iterator{cur: t.findRootNode(id), last: id}
}

// Next returns the next vertex of the tour, with ok false once the
// sequence is exhausted. The final vertex of the walk — the arrival
// side of the last traversal — is yielded exactly once after the
// traversals run out.
func (it *Iterator) Next() (string, bool) {
	if it.done {
		return "", false
	}
	if it.cur == nil {
		it.done = true
		return it.last, true
	}
	e := it.cur.Value()
	it.last = e.to.id
	it.cur = it.cur.Next()

	return e.from.id, true
}

// EdgeIterator walks the half-edges of one component in tour order;
// every undirected edge appears twice, once per direction.
type EdgeIterator struct {
	cur *treap.Node[*HalfEdge]
}

// EdgeIterator returns a half-edge iterator over id's component.
// A singleton or absent id yields nothing.
// Complexity: O(log n) to construct, O(k log n) to drain.
func (t *Tour) EdgeIterator(id string) *EdgeIterator {
	return &EdgeIterator{cur: t.findRootNode(id)}
}

// Next returns the next half-edge of the tour, with ok false once the
// sequence is exhausted.
func (it *EdgeIterator) Next() (*HalfEdge, bool) {
	if it.cur == nil {
		return nil, false
	}
	e := it.cur.Value()
	it.cur = it.cur.Next()

	return e, true
}

// NodesInComponent returns the set of vertex IDs reachable from id,
// including id itself. An absent id yields the empty set.
// Complexity: O(k log n) over the component's tour length.
func (t *Tour) NodesInComponent(id string) mapset.Set[string] {
	nodes := mapset.NewThreadUnsafeSet[string]()
	it := t.Iterator(id)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		nodes.Add(v)
	}

	return nodes
}

// TourString renders id's visit sequence space-separated, for logs and
// debugging. An absent id renders empty.
func (t *Tour) TourString(id string) string {
	var visits []string
	it := t.Iterator(id)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		visits = append(visits, v)
	}

	return strings.Join(visits, " ")
}
