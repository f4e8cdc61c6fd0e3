// Package eulertour: the two passive record types of the structure.
//
// A Vertex anchors a tour position range; a HalfEdge is one directed
// traversal of an undirected edge and exclusively owns the treap node
// holding it. All structural mutation happens in the Tour methods —
// these records are data.

package eulertour

import "github.com/katalvlaran/dynforest/treap"

// Vertex is a node of the forest.
//
// A vertex with no incident edges (a singleton) has both anchors nil
// and appears in no treap. A non-singleton vertex appears in exactly
// one tour; leftOut and rightIn are traversals of that tour.
type Vertex struct {
	id string

	// leftOut and rightIn anchor this vertex in its tour: Link and Cut
	// set them to traversals of that tour, and the tour engine finds
	// the treap through them. They are not kept at the first departure
	// and last return: Link(u, v) on a singleton v sets v's leftOut to
	// the arriving u→v traversal, and after later splices v may occur before
	// leftOut or after rightIn. Either both are set or neither is.
	leftOut, rightIn *HalfEdge

	// owner is the Tour this vertex belongs to; it is recorded at
	// construction and not read by any code path.
	owner *Tour
}

// ID returns the caller-supplied identifier of v.
func (v *Vertex) ID() string { return v.id }

// IsSingleton reports whether v has no incident edges.
func (v *Vertex) IsSingleton() bool {
	if (v.leftOut == nil) != (v.rightIn == nil) {
		panic("eulertour: vertex " + v.id + " has exactly one tour anchor")
	}

	return v.leftOut == nil
}

// incidentA returns the treap node of v's first-departure anchor, or
// nil for a singleton.
func (v *Vertex) incidentA() *treap.Node[*HalfEdge] {
	if v.leftOut == nil {
		return nil
	}

	return v.leftOut.node
}

// incidentB returns the treap node of v's last-return anchor, or nil
// for a singleton.
func (v *Vertex) incidentB() *treap.Node[*HalfEdge] {
	if v.rightIn == nil {
		return nil
	}

	return v.rightIn.node
}

// clearAnchors detaches v from its tour, making it a singleton.
func (v *Vertex) clearAnchors() {
	v.leftOut, v.rightIn = nil, nil
}

// connectedVertices reports whether a and b share a tree. Either may
// be nil (absent vertex), which never connects to anything.
// Complexity: O(log n) expected.
func connectedVertices(a, b *Vertex) bool {
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	an, bn := a.incidentA(), b.incidentA()
	if an == nil || bn == nil {
		return false
	}

	return an.Root() == bn.Root()
}

// HalfEdge is one directed traversal of an undirected forest edge.
// Exactly one half of each edge is forward; the other is its inverse.
type HalfEdge struct {
	from, to *Vertex
	inverse  *HalfEdge
	forward  bool

	// node is the treap position of this traversal in its tour. The
	// half-edge owns the node for its whole lifetime.
	node *treap.Node[*HalfEdge]
}

// newHalfEdge allocates a half-edge together with its treap node.
func newHalfEdge(from, to *Vertex, forward bool) *HalfEdge {
	e := &HalfEdge{from: from, to: to, forward: forward}
	e.node = treap.New(e)

	return e
}

// From returns the ID of the vertex this traversal departs.
func (e *HalfEdge) From() string { return e.from.id }

// To returns the ID of the vertex this traversal arrives at.
func (e *HalfEdge) To() string { return e.to.id }

// IsForward reports whether e is the forward half of its edge.
func (e *HalfEdge) IsForward() bool { return e.forward }

// Inverse returns the opposite traversal of the same undirected edge.
func (e *HalfEdge) Inverse() *HalfEdge { return e.inverse }

// Contains reports whether id is one of e's endpoints.
func (e *HalfEdge) Contains(id string) bool {
	return e.from.id == id || e.to.id == id
}

// contains is the pointer-level endpoint test used by the tour engine.
func (e *HalfEdge) contains(v *Vertex) bool {
	return e.from == v || e.to == v
}
