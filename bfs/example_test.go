package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
)

// ExampleSearch finds the shortest route around a blocked center cell.
func ExampleSearch() {
	g, _ := grid.ParseString(`
000
010
000`)
	res := bfs.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2})
	fmt.Println(res.Status, res.Path.Len(), res.Path)
	// Output:
	// found 5 [(0,0) (1,0) (2,0) (2,1) (2,2)]
}

// ExampleSearch_noPath shows a wall column splitting the maze in two.
func ExampleSearch_noPath() {
	g, _ := grid.ParseString(`
010
010`)
	res := bfs.Search(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 2})
	fmt.Println(res.Status, res.Found(), res.Path == nil)
	// Output:
	// no_path false true
}
