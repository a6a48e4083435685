package search_test

import (
	"testing"

	"github.com/katalvlaran/bounds/search"
)

// benchmarkBound runs fn over a sorted sequence of n elements, cycling
// the key across the value range so branch patterns vary. Setup time is
// excluded; the loop itself allocates nothing.
func benchmarkBound(b *testing.B, n int, fn func([]int32, uint, int32) search.Result) {
	seq := make([]int32, n)
	for i := range seq {
		seq[i] = int32(i * 2) // even values; odd keys miss, even keys hit
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fn(seq, uint(n), int32(i%(2*n+1)))
	}
}

func BenchmarkLowerBound_1K(b *testing.B)   { benchmarkBound(b, 1_000, search.LowerBound) }
func BenchmarkLowerBound_1M(b *testing.B)   { benchmarkBound(b, 1_000_000, search.LowerBound) }
func BenchmarkUpperBound_1K(b *testing.B)   { benchmarkBound(b, 1_000, search.UpperBound) }
func BenchmarkUpperBound_1M(b *testing.B)   { benchmarkBound(b, 1_000_000, search.UpperBound) }
func BenchmarkBinarySearch_1K(b *testing.B) { benchmarkBound(b, 1_000, search.BinarySearch) }
func BenchmarkBinarySearch_1M(b *testing.B) { benchmarkBound(b, 1_000_000, search.BinarySearch) }

// BenchmarkEqualRange_1M measures the two-probe pair on a large run-free
// sequence.
func BenchmarkEqualRange_1M(b *testing.B) {
	const n = 1_000_000
	seq := make([]int32, n)
	for i := range seq {
		seq[i] = int32(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.EqualRange(seq, n, int32(i%n))
	}
}
