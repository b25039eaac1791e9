// Package search holds the vocabulary shared by the bfs, dfs and astar
// strategies: the Result every strategy returns, its Status, and the
// functional Options that tune a run.
//
// Failure is data, not an error: a search that exhausts its frontier reports
// StatusNoPath, and a request whose start or end is out of bounds or blocked
// reports StatusInvalidEndpoint. Neither carries a partial path.
package search
