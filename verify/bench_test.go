package verify_test

import (
	"testing"

	"github.com/katalvlaran/hexcube/cube"
	"github.com/katalvlaran/hexcube/verify"
)

// benchmarkVerify audits the canonical cube with the given options and
// fails on unexpected violations.
func benchmarkVerify(b *testing.B, opts verify.Options) {
	c := cube.New()

	b.ResetTimer() // ignore construction time
	for i := 0; i < b.N; i++ {
		if _, err := verify.Verify(c, &opts); err != nil {
			b.Fatalf("Verify failed: %v", err)
		}
	}
}

// BenchmarkVerify_Serial measures the default fail-fast serial audit.
func BenchmarkVerify_Serial(b *testing.B) {
	benchmarkVerify(b, verify.DefaultOptions())
}

// BenchmarkVerify_CollectAll measures the full serial audit with
// violation collection enabled.
func BenchmarkVerify_CollectAll(b *testing.B) {
	opts := verify.DefaultOptions()
	opts.CollectAll = true
	benchmarkVerify(b, opts)
}

// BenchmarkVerify_Workers8 measures the audit fanned out across eight
// goroutines.
func BenchmarkVerify_Workers8(b *testing.B) {
	opts := verify.DefaultOptions()
	opts.Workers = 8
	benchmarkVerify(b, opts)
}
