// Package eulertour: sentinel errors, construction options, and the
// Stats snapshot for the Tour aggregate declared in tour.go.

package eulertour

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for tour operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex ID
	// that is not present in the tour.
	ErrVertexNotFound = errors.New("eulertour: vertex not found")

	// ErrDuplicateVertex indicates CreateVertex was called with an ID
	// that already exists.
	ErrDuplicateVertex = errors.New("eulertour: vertex already exists")

	// ErrSelfLoop indicates Link was called with identical endpoints.
	ErrSelfLoop = errors.New("eulertour: self-loop not allowed")

	// ErrAlreadyConnected indicates Link was called on two vertices of
	// the same component; a forest admits no second path.
	ErrAlreadyConnected = errors.New("eulertour: vertices already connected")

	// ErrEdgeNotFound indicates Cut referenced an edge that is not
	// present.
	ErrEdgeNotFound = errors.New("eulertour: edge not found")

	// ErrVertexNotIsolated indicates RemoveVertex was called on a
	// vertex that still has incident edges; Cut them first.
	ErrVertexNotIsolated = errors.New("eulertour: vertex has incident edges")
)

// Option configures a Tour at construction. Use with New(opts...).
type Option func(*Tour)

// WithLogger routes the tour's diagnostics through l.
// Structural operations (Link, Cut, MakeRoot) log at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(t *Tour) { t.log = l }
}

// WithInvariantChecks makes every mutation re-verify the tour's
// cross-structure invariants (those listed on validate) before
// returning, panicking on the first breach. The walk is
// O((V+E) log V) expected per mutation; enable it in tests, not on
// production paths.
func WithInvariantChecks() Option {
	return func(t *Tour) { t.checkInvariants = true }
}

// TourStats is a deterministic, read-only snapshot of a Tour.
type TourStats struct {
	// VertexCount is the number of vertices currently present.
	VertexCount int

	// EdgeCount is the number of undirected forest edges present.
	EdgeCount int

	// ComponentCount is the number of connected components, counting
	// every singleton vertex as its own component.
	ComponentCount int
}
