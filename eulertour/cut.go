// Package eulertour: removing an edge, splitting one tree into two.
//
// A tour with the doomed edge in it reads
//
//	[tree1] f [interior] b [tree2]
//
// where f and b are the two traversals of the edge, tree1·tree2 is the
// tour of the component keeping the far side of the split, and the
// interior is the tour of the component beyond the edge. Cut excises
// f and b, rejoins tree1 with tree2, and repairs the four vertex
// anchors that may have pointed into the removed traversals.

package eulertour

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dynforest/treap"
)

// Cut removes the undirected edge {u,v}, splitting its component in
// two. Returns ErrEdgeNotFound if the edge is not present (either
// endpoint order is accepted).
// Complexity: O(log n) expected.
func (t *Tour) Cut(u, v string) error {
	// Fetch the two halves; the index is keyed by insertion order, so
	// try both orientations.
	f, ok := t.forward.get(u, v)
	if !ok {
		f, ok = t.forward.get(v, u)
	}
	if !ok {
		return ErrEdgeNotFound
	}
	b, ok := t.backward.get(u, v)
	if !ok {
		b, ok = t.backward.get(v, u)
	}
	if !ok {
		return ErrEdgeNotFound
	}

	// One component becomes two.
	t.nComponents++
	t.nEdges--

	from, to := f.from, f.to

	// Orient f as the half traversed first.
	if treap.Compare(f.node, b.node) > 0 {
		f, b = b, f
	}

	// The four tour neighbors bracketing the removed traversals.
	// p/n border the outer tour, pn/nn the interior; pn and nn always
	// exist because b follows f.
	p := f.node.Prev()
	n := b.node.Next()
	pn := f.node.Next()
	nn := b.node.Prev()

	// Detach the outer tour halves and rejoin them.
	tree1 := f.node.SplitBefore()
	tree2 := b.node.SplitAfter()
	if tree1 != nil && tree2 != nil {
		treap.Concat(tree1, tree2)
	}

	t.reanchorAfterCut(from, to, p, n, pn, nn)

	// Isolate f and b; whatever sits between them is the interior
	// tour, now a component of its own.
	f.node.SplitAfter()
	b.node.SplitBefore()

	// An endpoint whose remaining tour is a single traversal has lost
	// its last edge: demote it to a singleton.
	if a := from.incidentA(); a != nil && a.Size() == 1 {
		from.clearAnchors()
	}
	if a := to.incidentA(); a != nil && a.Size() == 1 {
		to.clearAnchors()
	}

	t.forward.remove(u, v)
	t.forward.remove(v, u)
	t.backward.remove(u, v)
	t.backward.remove(v, u)

	t.log.WithFields(logrus.Fields{"u": u, "v": v}).Debug("eulertour: cut")
	t.validate()

	return nil
}

// reanchorAfterCut repairs the anchors of the cut edge's endpoints
// from the four bracketing neighbors. Which neighbor serves which
// endpoint depends on where the removed traversals sat relative to
// each endpoint's occurrence range; the interior neighbors pn/nn serve
// the endpoint whose occurrences continue inside, the outer neighbors
// n/p the other one.
func (t *Tour) reanchorAfterCut(from, to *Vertex, p, n, pn, nn *treap.Node[*HalfEdge]) {
	pnEdge := pn.Value()

	switch {
	case pnEdge.contains(from) && pnEdge.contains(to):
		// pn is b itself: the traversals were adjacent, so the edge
		// led to a leaf and the interior is empty. One endpoint keeps
		// the outer tour, the other goes singleton.
		n, p = normalizeOuter(n, p)
		if n == nil {
			// No outer tour either: both endpoints are singletons.
			from.clearAnchors()
			to.clearAnchors()
			return
		}
		if n.Value().contains(from) {
			from.leftOut = n.Value()
			from.rightIn = p.Value()
			to.clearAnchors()
		} else {
			to.leftOut = n.Value()
			to.rightIn = p.Value()
			from.clearAnchors()
		}

	case pnEdge.contains(from):
		// from's occurrences continue into the interior.
		from.leftOut = pnEdge
		from.rightIn = nn.Value()
		n, p = normalizeOuter(n, p)
		if n == nil {
			to.clearAnchors()
			return
		}
		to.leftOut = n.Value()
		to.rightIn = p.Value()

	case pnEdge.contains(to):
		// Symmetric: to keeps the interior, from the outer tour.
		to.leftOut = pnEdge
		to.rightIn = nn.Value()
		n, p = normalizeOuter(n, p)
		if n == nil {
			from.clearAnchors()
			return
		}
		from.leftOut = n.Value()
		from.rightIn = p.Value()
	}
}

// normalizeOuter completes the outer-tour neighbor pair when exactly
// one of n, p exists: the removed segment touched one end of the
// linear tour order, so the missing neighbor is the far extremum of
// the (already rejoined) outer tree.
func normalizeOuter(n, p *treap.Node[*HalfEdge]) (*treap.Node[*HalfEdge], *treap.Node[*HalfEdge]) {
	if (n != nil) != (p != nil) {
		if n == nil {
			n = p.Min()
		} else {
			p = n.Max()
		}
	}

	return n, p
}
