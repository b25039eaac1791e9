package dfs_test

import (
	"testing"

	"github.com/katalvlaran/mazepath/dfs"
	"github.com/katalvlaran/mazepath/mazegen"
)

// BenchmarkSearch_PerfectMaze runs DFS on a generated maze without loops.
func BenchmarkSearch_PerfectMaze(b *testing.B) {
	m := mazegen.Generate(mazegen.Config{Rows: 201, Cols: 201, Seed: 7})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.Search(m.Grid, m.Start, m.End)
	}
}
