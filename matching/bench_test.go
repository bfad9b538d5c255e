package matching_test

import (
	"testing"

	"github.com/katalvlaran/flowmatch/matching"
	"github.com/katalvlaran/flowmatch/netdef"
)

func BenchmarkMaximumCompleteBipartite(b *testing.B) {
	g := netdef.CompleteBipartite(20, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.Maximum(g)
	}
}
