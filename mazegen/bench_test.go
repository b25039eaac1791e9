package mazegen_test

import (
	"testing"

	"github.com/katalvlaran/mazepath/mazegen"
)

// BenchmarkGenerate_Perfect measures carving a 201×201 spanning tree.
func BenchmarkGenerate_Perfect(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = mazegen.Generate(mazegen.Config{Rows: 201, Cols: 201, Seed: int64(i + 1)})
	}
}

// BenchmarkGenerate_Braided adds the braiding pass.
func BenchmarkGenerate_Braided(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = mazegen.Generate(mazegen.Config{Rows: 201, Cols: 201, Braiding: 0.3, Seed: int64(i + 1)})
	}
}
