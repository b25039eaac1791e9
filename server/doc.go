// Package server exposes maze solving over HTTP with gin.
//
// Routes:
//
//	GET  /healthz         liveness probe
//	GET  /api/algorithms  {"algorithms":["bfs","dfs","astar"]}
//	POST /api/solve       run one or all strategies on a posted or default maze
//
// Every request gets an X-Request-ID (a fresh UUID unless the client sent
// one) and one structured logrus line on completion. A missing path is a
// 200 response with found=false; malformed input is a 400 with {"error"}.
package server
