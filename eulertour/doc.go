// Package eulertour maintains an undirected forest under online Link
// and Cut, answering connectivity, size and membership queries in
// logarithmic expected time via Euler Tour Trees.
//
// What:
//
//   - Tour owns a set of vertices (string IDs) and the forest edges
//     between them. Every tree's Euler tour — the cyclic sequence of
//     directed half-edge traversals a DFS performs — is stored in a
//     treap keyed by tour position (dynforest/treap).
//   - Link(u, v) joins two trees by re-rooting both tours and splicing
//     them around a fresh half-edge pair; Cut(u, v) removes an edge by
//     excising its bracketed segment and rejoining the outside.
//   - Each vertex keeps two anchors into its tour (leftOut, rightIn):
//     traversals of that tour through which its treap is found. They
//     are not kept at the vertex's first departure and last return.
//     Singletons have no anchors and live in no treap.
//   - MakeRoot(v) rotates a tour so it opens at an occurrence of v; it
//     is the mechanical primitive under Link. FindRoot reports the
//     departure vertex of the tour's first traversal, which is v after
//     MakeRoot(v) only when that traversal leaves v.
//
// Why:
//
//   - Connectivity over a changing forest: network membership, cluster
//     tracking, spanning-forest maintenance.
//   - The bottom layer of fully-dynamic graph connectivity
//     (Holm–de Lichtenberg–Thorup), which keeps a spanning forest in
//     structures exactly like this one.
//
// Complexity (n = vertices in the affected component):
//
//   - Link, Cut, MakeRoot:            O(log n) expected
//   - Connected, Size, FindRoot:      O(log n) expected
//   - Iterator, NodesInComponent:     O(k log n) over k tour positions
//   - CreateVertex, RemoveVertex:     O(1)
//
// Options:
//
//   - WithLogger(l): leveled diagnostics through a logrus logger;
//     structural operations trace at debug level.
//   - WithInvariantChecks(): after each mutation re-verify anchor
//     pairing, shared treaps of anchors and of edge halves, even tour
//     lengths, and the component partition; panics on the first
//     breach. Anchor extremality is not checked. Meant for tests and
//     debugging, not production paths.
//
// Errors:
//
//   - ErrVertexNotFound    referenced vertex ID is absent
//   - ErrDuplicateVertex   CreateVertex with an existing ID
//   - ErrSelfLoop          Link(v, v)
//   - ErrAlreadyConnected  Link within one component
//   - ErrEdgeNotFound      Cut of an edge that is not present
//   - ErrVertexNotIsolated RemoveVertex of a vertex with incident edges
//
// Pure queries never fail: an absent ID reads as "not connected",
// size 0, an exhausted iterator, an empty set.
//
// Concurrency: a Tour is a shared-mutable aggregate with no internal
// locking. Mutations require exclusive access; queries may share.
// Iterators are invalidated by any mutation.
package eulertour
