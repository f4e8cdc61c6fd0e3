// Package dynforest maintains an undirected forest under online edge
// insertions and deletions, answering connectivity questions in
// logarithmic expected time.
//
// 🚀 What is dynforest?
//
//	A dynamic-connectivity toolkit built on Euler Tour Trees:
//		• eulertour/ — the tour engine: Link, Cut, MakeRoot, Connected,
//		  Size, FindRoot, component iteration
//		• treap/     — the balanced sequence underneath: an implicit-key
//		  treap with split, concat and order navigation
//
// ✨ Why choose dynforest?
//
//   - O(log n) expected Link/Cut/Connected — no rebuild, no rescan
//   - Documented invariants, checkable at runtime via an option
//   - Minimal API, clear naming, sentinel errors per package
//
// An Euler tour writes a tree down as the sequence of directed
// half-edge traversals a depth-first walk performs, entering and
// leaving every edge exactly once in each direction:
//
//	    A───B          tour of {A,B,C,D} rooted at A:
//	    │              A→B B→A A→C C→D D→C C→A
//	    C───D
//
// Stored in a treap keyed by tour position, that sequence lets whole
// trees be re-rooted, joined and split with a handful of split/concat
// operations. The eulertour package keeps per-vertex anchors into the
// sequence and splices tours to serve Link and Cut; it is the
// foundation layer on which fully-dynamic graph connectivity
// (Holm–de Lichtenberg–Thorup style) is built.
//
// Dive into eulertour/doc.go and treap/doc.go for contracts,
// complexity tables and error semantics.
//
//	go get github.com/katalvlaran/dynforest
package dynforest
