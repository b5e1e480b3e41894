package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pitchers/bfs"
	"github.com/katalvlaran/pitchers/pitcher"
)

// BenchmarkShortest_Unreachable measures a full sweep of a bounded space
// that does not contain the target.
func BenchmarkShortest_Unreachable(b *testing.B) {
	caps := pitcher.Capacities{4, 6, 10}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Shortest(caps, 51)
	}
}

// BenchmarkShortest_FourPitchers measures a reachable target.
func BenchmarkShortest_FourPitchers(b *testing.B) {
	caps := pitcher.Capacities{2, 5, 6, 72}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Shortest(caps, 143)
	}
}
