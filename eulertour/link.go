// Package eulertour: joining two trees.

package eulertour

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dynforest/treap"
)

// Link adds the undirected edge {u,v}, joining their two components
// into one. The joined tour reads [u's tour] · u→v · [v's tour] · v→u,
// with both constituent tours first re-rooted by makeRoot (see
// MakeRoot for what that rotation does and does not guarantee).
// Returns ErrSelfLoop if u == v, ErrVertexNotFound if either ID is
// absent, and ErrAlreadyConnected if u and v already share a
// component (a forest admits no cycles).
// Complexity: O(log n) expected.
func (t *Tour) Link(u, v string) error {
	if u == v {
		return fmt.Errorf("link %q-%q: %w", u, v, ErrSelfLoop)
	}
	vu, ok := t.vertices[u]
	if !ok {
		return fmt.Errorf("link %q-%q: %w", u, v, ErrVertexNotFound)
	}
	vv, ok := t.vertices[v]
	if !ok {
		return fmt.Errorf("link %q-%q: %w", u, v, ErrVertexNotFound)
	}
	if connectedVertices(vu, vv) {
		return fmt.Errorf("link %q-%q: %w", u, v, ErrAlreadyConnected)
	}

	// Two components become one.
	t.nComponents--
	t.nEdges++

	// Allocate the traversal pair and cross-wire the inverses.
	fwd := newHalfEdge(vu, vv, true)
	bwd := newHalfEdge(vv, vu, false)
	fwd.inverse = bwd
	bwd.inverse = fwd

	t.forward.add(u, v, fwd)
	t.backward.add(v, u, bwd)

	// Rotate both tours so each opens at an occurrence of its endpoint
	// before splicing.
	t.makeRoot(vu)
	t.makeRoot(vv)

	// [u's tour] · fwd
	var first *treap.Node[*HalfEdge]
	if a := vu.incidentA(); a != nil {
		first = a.Min()
	}
	if first != nil {
		treap.Concat(first, fwd.node)
	} else {
		vu.leftOut = fwd
	}

	// · [v's tour]
	if vv.incidentA() != nil {
		treap.Concat(fwd.node, vv.leftOut.node)
	} else {
		vv.leftOut = fwd
	}

	// · bwd
	if vv.incidentB() != nil {
		treap.Concat(vv.rightIn.node, bwd.node)
	} else {
		vv.rightIn = bwd
		treap.Concat(vu.incidentA(), bwd.node)
	}

	// u's tour now closes on the new backward traversal.
	vu.rightIn = bwd

	t.log.WithFields(logrus.Fields{"u": u, "v": v}).Debug("eulertour: linked")
	t.validate()

	return nil
}
