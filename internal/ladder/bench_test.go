package ladder_test

import (
	"testing"

	"github.com/pfrederiksen/wordladder/internal/ladder"
)

// BenchmarkShortestLadders searches across the dense {a,b,c}^3 universe,
// where corner to corner has many equal-length paths.
func BenchmarkShortestLadders(b *testing.B) {
	dict := mustDict(b, universe...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ladder.ShortestLadders(dict, "aaa", "ccc")
	}
}

func BenchmarkNeighbors(b *testing.B) {
	dict := mustDict(b, universe...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ladder.Neighbors("abc", dict)
	}
}
