// Package eulertour: tour re-rooting.

package eulertour

import "github.com/katalvlaran/dynforest/treap"

// MakeRoot rotates id's tour so that it opens at an occurrence of id
// (a no-op for a singleton). FindRoot(id) == id afterwards only when
// that opening traversal departs from id: a single-edge tour is left
// as it is, and on tours assembled by earlier splices the opening
// traversal may arrive at id instead. The edge set, component
// membership and Size are unchanged.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(log n) expected.
func (t *Tour) MakeRoot(id string) error {
	v, ok := t.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	t.makeRoot(v)
	t.validate()

	return nil
}

// makeRoot rotates the cyclic Euler tour containing v so that v's
// first occurrence lands at the treap minimum. The rotation is one
// SplitAfter at a pivot plus one Concat; all the work is choosing the
// pivot so the split falls just before v's first occurrence.
func (t *Tour) makeRoot(v *Vertex) {
	if v.IsSingleton() {
		return
	}
	// A two-traversal tour is a single edge; both rotations are valid
	// tours, so there is nothing to do.
	if v.leftOut.node.Size() == 2 {
		return
	}

	f, b := v.leftOut, v.rightIn
	// Orient f before b in tour order; the anchors may sit either way
	// around after earlier splices.
	if treap.Compare(f.node, b.node) > 0 {
		f, b = b, f
	}

	other := f.to
	if other == v {
		other = f.from
	}

	// next is the traversal right after f; it exists because b follows f.
	next := f.node.Next().Value()

	switch {
	case !next.contains(v):
		// f is the last traversal touching v before the tour moves on;
		// the cut point is the traversal before v's first occurrence.
		fprev := f.node.Prev()
		if fprev == nil {
			// v already opens the tour.
			return
		}
		f = fprev.Value()
	case next.contains(other):
		// next is the inverse of f: v bounced straight back, so either
		// v or other is a leaf here. Peek one step further to tell.
		nn := next.node.Next()
		if nn == nil {
			nn = f.node.Prev()
		}
		if nn != nil && nn.Value().contains(v) {
			// other is the leaf; the tour re-enters v right after the
			// bounce, so the pivot moves up to the bounce itself.
			f = next
		}
		// Otherwise v is the leaf and f is already the pivot.
	default:
		// next leaves from v; f already sits just before v's range.
	}

	// Rotate: everything after the pivot comes first, pivot's prefix last.
	right := f.node.SplitAfter()
	if right != nil {
		treap.Concat(right, f.node)
	}

	t.log.WithField("vertex", v.id).Debug("eulertour: re-rooted tour")
}
