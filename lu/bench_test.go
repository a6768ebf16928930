package lu_test

import (
	"math/rand"
	"testing"

	"github.com/davidhariprashad/lufact/lu"
)

// benchmarkDecompose factors a reproducible pseudo-random n×n system per
// iteration. Store construction and fill happen inside the loop because a
// Store is one-shot by design; the O(n²) setup is dwarfed by the O(n³)
// factorization for the sizes benchmarked here.
func benchmarkDecompose(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(1)) // fixed seed: stable workload
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	b.ResetTimer() // ignore value generation
	for i := 0; i < b.N; i++ {
		s, err := lu.New(n, lu.WithTolerance(1e-12))
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		if err = s.Fill(vals...); err != nil {
			b.Fatalf("Fill failed: %v", err)
		}
		if _, err = s.Decompose(); err != nil {
			b.Fatalf("Decompose failed: %v", err)
		}
	}
}

// BenchmarkDecompose_Small benchmarks a 16×16 factorization.
func BenchmarkDecompose_Small(b *testing.B) { benchmarkDecompose(b, 16) }

// BenchmarkDecompose_Medium benchmarks a 64×64 factorization.
func BenchmarkDecompose_Medium(b *testing.B) { benchmarkDecompose(b, 64) }

// BenchmarkDecompose_Large benchmarks a 256×256 factorization.
func BenchmarkDecompose_Large(b *testing.B) { benchmarkDecompose(b, 256) }
