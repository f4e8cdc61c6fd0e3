package eulertour_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynforest/eulertour"
)

// buildChainTour links v0-v1-…-vN into one path.
func buildChainTour(n int) *eulertour.Tour {
	tour := eulertour.New()
	for i := 0; i <= n; i++ {
		_ = tour.CreateVertex(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < n; i++ {
		_ = tour.Link(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	return tour
}

// BenchmarkCutLink_Chain measures one cut plus the relink of a random
// chain edge.
func BenchmarkCutLink_Chain(b *testing.B) {
	const N = 1024
	tour := buildChainTour(N)
	rng := rand.New(rand.NewSource(3))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := rng.Intn(N)
		u, v := fmt.Sprintf("v%d", k), fmt.Sprintf("v%d", k+1)
		_ = tour.Cut(u, v)
		_ = tour.Link(u, v)
	}
}

// BenchmarkConnected_Chain measures connectivity queries across a
// chain of N edges.
func BenchmarkConnected_Chain(b *testing.B) {
	const N = 1024
	tour := buildChainTour(N)
	rng := rand.New(rand.NewSource(3))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := fmt.Sprintf("v%d", rng.Intn(N))
		v := fmt.Sprintf("v%d", rng.Intn(N))
		_ = tour.Connected(u, v)
	}
}

// BenchmarkMakeRoot_Chain measures re-rooting at random chain vertices.
func BenchmarkMakeRoot_Chain(b *testing.B) {
	const N = 1024
	tour := buildChainTour(N)
	rng := rand.New(rand.NewSource(3))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tour.MakeRoot(fmt.Sprintf("v%d", rng.Intn(N)))
	}
}
