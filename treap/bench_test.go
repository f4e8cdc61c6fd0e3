package treap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynforest/treap"
)

// BenchmarkSplitConcat_RoundTrip measures one random split plus the
// rejoin on a sequence of N nodes.
func BenchmarkSplitConcat_RoundTrip(b *testing.B) {
	const N = 1 << 14
	nodes := make([]*treap.Node[int], N)
	for i := range nodes {
		nodes[i] = treap.New(i)
		if i > 0 {
			treap.Concat(nodes[i-1], nodes[i])
		}
	}
	rng := rand.New(rand.NewSource(7))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pivot := nodes[rng.Intn(N)]
		if left := pivot.SplitBefore(); left != nil {
			treap.Concat(left, pivot)
		}
	}
}

// BenchmarkRank measures positional lookup on a sequence of N nodes.
func BenchmarkRank(b *testing.B) {
	const N = 1 << 14
	nodes := make([]*treap.Node[int], N)
	for i := range nodes {
		nodes[i] = treap.New(i)
		if i > 0 {
			treap.Concat(nodes[i-1], nodes[i])
		}
	}
	rng := rand.New(rand.NewSource(7))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = nodes[rng.Intn(N)].Rank()
	}
}
