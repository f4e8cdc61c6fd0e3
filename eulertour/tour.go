// Package eulertour: the Tour aggregate — vertex table, edge index,
// component counter — and its constructors and queries.
//
// Structural mutation lives in link.go, cut.go and reroot.go; this
// file is allocation, lookup and O(log n) read paths.

package eulertour

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dynforest/treap"
)

// Tour is a dynamic forest of vertices identified by string IDs.
// The zero value is not usable — construct with New.
type Tour struct {
	vertices map[string]*Vertex

	// forward holds u→v halves keyed (u,v); backward holds v→u halves
	// keyed (v,u). Fetches try both orderings.
	forward, backward edgeSet

	nComponents int
	nEdges      int

	log             logrus.FieldLogger
	checkInvariants bool
}

// New creates an empty Tour: no vertices, no edges, no components.
// Complexity: O(1).
func New(opts ...Option) *Tour {
	t := &Tour{
		vertices: make(map[string]*Vertex),
		forward:  make(edgeSet),
		backward: make(edgeSet),
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// CreateVertex adds a new singleton vertex with the given ID and
// counts it as a fresh component.
// Returns ErrDuplicateVertex if the ID is already present.
// Complexity: O(1).
func (t *Tour) CreateVertex(id string) error {
	if _, exists := t.vertices[id]; exists {
		return fmt.Errorf("create %q: %w", id, ErrDuplicateVertex)
	}
	t.vertices[id] = &Vertex{id: id, owner: t}
	t.nComponents++
	t.validate()

	return nil
}

// RemoveVertex deletes a singleton vertex.
// Returns ErrVertexNotFound if the ID is absent and
// ErrVertexNotIsolated if the vertex still has incident edges — Cut
// them first; removal never cuts implicitly.
// Complexity: O(1).
func (t *Tour) RemoveVertex(id string) error {
	v, ok := t.vertices[id]
	if !ok {
		return fmt.Errorf("remove %q: %w", id, ErrVertexNotFound)
	}
	if !v.IsSingleton() {
		return fmt.Errorf("remove %q: %w", id, ErrVertexNotIsolated)
	}
	delete(t.vertices, id)
	t.nComponents--
	t.validate()

	return nil
}

// Vertex returns the vertex record for id, if present.
// Complexity: O(1).
func (t *Tour) Vertex(id string) (*Vertex, bool) {
	v, ok := t.vertices[id]

	return v, ok
}

// HasVertex reports whether id is present.
// Complexity: O(1).
func (t *Tour) HasVertex(id string) bool {
	_, ok := t.vertices[id]

	return ok
}

// HasEdge reports whether the undirected edge {u,v} is present.
// Complexity: O(1).
func (t *Tour) HasEdge(u, v string) bool {
	if _, ok := t.forward.get(u, v); ok {
		return true
	}
	_, ok := t.forward.get(v, u)

	return ok
}

// Connected reports whether u and v lie in the same component.
// Absent IDs are connected to nothing; a present ID is connected to
// itself.
// Complexity: O(log n) expected.
func (t *Tour) Connected(u, v string) bool {
	return connectedVertices(t.vertices[u], t.vertices[v])
}

// Size returns the number of vertices in the component containing id,
// or 0 if id is absent. A tour over k vertices holds 2(k−1) half-edge
// traversals, hence the size recovery below.
// Complexity: O(log n) expected.
func (t *Tour) Size(id string) int {
	v, ok := t.vertices[id]
	if !ok {
		return 0
	}
	if v.IsSingleton() {
		return 1
	}

	return v.leftOut.node.Size()/2 + 1
}

// findRootNode returns the treap node at the minimum of id's tour, or
// nil if id is absent or a singleton.
func (t *Tour) findRootNode(id string) *treap.Node[*HalfEdge] {
	v, ok := t.vertices[id]
	if !ok {
		t.log.WithField("vertex", id).Warn("eulertour: findRoot of unknown vertex")
		return nil
	}
	n := v.incidentA()
	if n == nil {
		return nil
	}

	return n.Min()
}

// FindRoot returns the ID of the vertex at which id's tour begins.
// ok is false if id is absent or a singleton — a singleton tour has
// no half-edges and therefore no distinguished first departure.
// Complexity: O(log n) expected.
func (t *Tour) FindRoot(id string) (string, bool) {
	n := t.findRootNode(id)
	if n == nil {
		return "", false
	}

	return n.Value().from.id, true
}

// ComponentCount returns the number of connected components, counting
// each singleton as its own component. Complexity: O(1).
func (t *Tour) ComponentCount() int { return t.nComponents }

// VertexCount returns the number of vertices present. Complexity: O(1).
func (t *Tour) VertexCount() int { return len(t.vertices) }

// EdgeCount returns the number of undirected edges present.
// Complexity: O(1).
func (t *Tour) EdgeCount() int { return t.nEdges }

// Stats returns a deterministic snapshot of the tour's sizes.
// Complexity: O(1).
func (t *Tour) Stats() *TourStats {
	return &TourStats{
		VertexCount:    len(t.vertices),
		EdgeCount:      t.nEdges,
		ComponentCount: t.nComponents,
	}
}
