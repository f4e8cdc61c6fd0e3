// Package treap implements an implicit-key treap: a randomized
// balanced binary search tree ordered by position rather than by a
// stored key, supporting split and concatenation of whole sequences.
//
// What:
//
//   - Node[V] carries an arbitrary payload and lives in exactly one
//     tree at a time; the caller keeps the *Node[V] handle and the
//     handle stays valid across every restructuring.
//   - Sequences are never addressed by index from the outside: all
//     operations take node handles (SplitBefore, SplitAfter, Concat,
//     Next, Prev, Compare), so a node's position is wherever the
//     surrounding splits and concats have put it.
//   - Subtree counts make Size and Rank O(log n); parent pointers make
//     Root, Next and Prev possible from any handle without external
//     context.
//
// Why:
//
//   - Euler tour trees and rope-like structures need to cut a sequence
//     immediately before or after a known element and to glue two
//     sequences end to end, in logarithmic time, while element handles
//     held elsewhere remain valid. Ordinary key-ordered containers
//     cannot express that.
//
// Key operations (expected time, n = sequence length):
//
//   - New(value)            O(1)    size-1 sequence
//   - n.Root/Min/Max        O(log n)
//   - n.Next/Prev           O(log n), amortized O(1) over a full scan
//   - n.Size/Rank           O(log n)
//   - Compare(a, b)         O(log n), a and b must share a tree
//   - n.SplitBefore/After   O(log n)
//   - Concat(a, b)          O(log n)
//
// Panics:
//
//   - Compare(a, b) with a and b in different trees — positional
//     comparison across sequences is meaningless.
//   - Concat(a, b) with a and b already in one tree — the sequence
//     cannot precede itself.
//
// Balance is probabilistic: every node draws a uniform priority at
// construction and the tree is a max-heap on priorities, giving
// O(log n) expected depth regardless of operation order.
package treap
