package eulertour_test

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynforest/eulertour"
)

// forestOracle is a naïve reference model: an adjacency map queried by
// breadth-first search. Slow and obviously correct.
type forestOracle struct {
	ids []string
	adj map[string]map[string]bool
}

func newForestOracle(ids []string) *forestOracle {
	o := &forestOracle{ids: ids, adj: make(map[string]map[string]bool, len(ids))}
	for _, id := range ids {
		o.adj[id] = make(map[string]bool)
	}

	return o
}

func (o *forestOracle) link(u, v string) {
	o.adj[u][v] = true
	o.adj[v][u] = true
}

func (o *forestOracle) cut(u, v string) {
	delete(o.adj[u], v)
	delete(o.adj[v], u)
}

func (o *forestOracle) hasEdge(u, v string) bool { return o.adj[u][v] }

// component returns the set reachable from v.
func (o *forestOracle) component(v string) mapset.Set[string] {
	seen := mapset.NewThreadUnsafeSet(v)
	queue := []string{v}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for next := range o.adj[cur] {
			if seen.Add(next) {
				queue = append(queue, next)
			}
		}
	}

	return seen
}

func (o *forestOracle) connected(u, v string) bool {
	return o.component(u).Contains(v)
}

func (o *forestOracle) componentCount() int {
	seen := mapset.NewThreadUnsafeSet[string]()
	count := 0
	for _, id := range o.ids {
		if seen.Contains(id) {
			continue
		}
		seen = seen.Union(o.component(id))
		count++
	}

	return count
}

// crossCheck compares every observable of the tour against the oracle.
func crossCheck(t *testing.T, tour *eulertour.Tour, o *forestOracle) {
	t.Helper()
	require.Equal(t, o.componentCount(), tour.ComponentCount())
	for _, u := range o.ids {
		comp := o.component(u)
		require.Equal(t, comp.Cardinality(), tour.Size(u), "size of %s", u)
		require.True(t, tour.NodesInComponent(u).Equal(comp), "membership of %s", u)
		for _, v := range o.ids {
			require.Equal(t, o.connected(u, v), tour.Connected(u, v),
				"connectivity %s-%s", u, v)
		}
	}
}

// TestRandomized_LinkCutAgainstOracle drives a long random operation
// sequence with invariant checks enabled (every mutation re-verifies
// the cross-structure invariants) and periodically compares all
// queries against the BFS oracle.
func TestRandomized_LinkCutAgainstOracle(t *testing.T) {
	const nVertices, nOps = 16, 1500
	rng := rand.New(rand.NewSource(42))

	tour := eulertour.New(eulertour.WithInvariantChecks())
	ids := make([]string, nVertices)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
		require.NoError(t, tour.CreateVertex(ids[i]))
	}
	o := newForestOracle(ids)

	for op := 0; op < nOps; op++ {
		u := ids[rng.Intn(nVertices)]
		v := ids[rng.Intn(nVertices)]

		switch {
		case rng.Intn(10) == 0:
			require.NoError(t, tour.MakeRoot(u), "op %d: make-root %s", op, u)
		case o.hasEdge(u, v):
			require.NoError(t, tour.Cut(u, v), "op %d: cut %s-%s", op, u, v)
			o.cut(u, v)
		case u == v:
			require.ErrorIs(t, tour.Link(u, v), eulertour.ErrSelfLoop)
		case o.connected(u, v):
			require.ErrorIs(t, tour.Link(u, v), eulertour.ErrAlreadyConnected,
				"op %d: link %s-%s inside one component", op, u, v)
		default:
			require.NoError(t, tour.Link(u, v), "op %d: link %s-%s", op, u, v)
			o.link(u, v)
		}

		if op%25 == 0 {
			crossCheck(t, tour, o)
		}
	}
	crossCheck(t, tour, o)
}

// TestMakeRoot_PreservesStructure re-roots every vertex of a random
// forest in turn; the component count, membership, sizes and
// connectivity must be untouched by rotations.
func TestMakeRoot_PreservesStructure(t *testing.T) {
	const nVertices = 12
	rng := rand.New(rand.NewSource(7))

	tour := eulertour.New(eulertour.WithInvariantChecks())
	ids := make([]string, nVertices)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
		require.NoError(t, tour.CreateVertex(ids[i]))
	}
	o := newForestOracle(ids)
	for i := 0; i < nVertices*2; i++ {
		u, v := ids[rng.Intn(nVertices)], ids[rng.Intn(nVertices)]
		if u != v && !o.connected(u, v) {
			require.NoError(t, tour.Link(u, v))
			o.link(u, v)
		}
	}

	for _, id := range ids {
		require.NoError(t, tour.MakeRoot(id))
		crossCheck(t, tour, o)
	}
}

// TestErrorWrapping verifies the sentinel is reachable through the
// wrapped context.
func TestErrorWrapping(t *testing.T) {
	tour := eulertour.New()
	err := tour.Link("a", "b")
	require.Error(t, err)
	assert.True(t, errors.Is(err, eulertour.ErrVertexNotFound))
	assert.Contains(t, err.Error(), `"a"`)
}
