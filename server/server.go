package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/solver"
)

// DefaultMaxCells bounds the size of a posted maze.
const DefaultMaxCells = 250_000

var (
	// ErrMazeTooLarge rejects posted mazes above Config.MaxCells.
	ErrMazeTooLarge = errors.New("server: maze too large")
	// ErrBadRequest wraps undecodable request bodies.
	ErrBadRequest = errors.New("server: bad request")
)

// Config configures a Server.
type Config struct {
	Logger   *logrus.Logger
	Maze     *grid.Grid // served when a request omits "maze"; required
	MaxCells int        // 0 selects DefaultMaxCells
}

// Server wires the solve API onto a gin engine.
type Server struct {
	log      *logrus.Logger
	maze     *grid.Grid
	maxCells int
	engine   *gin.Engine
}

// New builds a Server with its routes registered.
func New(cfg Config) (*Server, error) {
	if cfg.Maze == nil {
		return nil, fmt.Errorf("server: default maze: %w", grid.ErrEmptyGrid)
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.MaxCells <= 0 {
		cfg.MaxCells = DefaultMaxCells
	}

	s := &Server{log: cfg.Logger, maze: cfg.Maze, maxCells: cfg.MaxCells}

	r := gin.New()
	r.Use(requestID(s.log), accessLog(), gin.Recovery())
	r.GET("/healthz", s.health)

	api := r.Group("/api")
	{
		api.GET("/algorithms", s.algorithms)
		api.POST("/solve", s.solve)
	}
	s.engine = r

	return s, nil
}

// Handler returns the http.Handler serving every route.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) algorithms(c *gin.Context) {
	names := make([]string, 0, 3)
	for _, st := range solver.Strategies() {
		names = append(names, st.String())
	}
	c.JSON(http.StatusOK, AlgorithmsResponse{Algorithms: names})
}

func (s *Server) solve(c *gin.Context) {
	log := loggerFrom(c)

	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.reject(c, fmt.Errorf("%w: %v", ErrBadRequest, err))
		return
	}

	g, err := s.gridFor(req.Maze)
	if err != nil {
		s.reject(c, err)
		return
	}

	strategies := solver.Strategies()
	if req.Algorithm != "" && req.Algorithm != "all" {
		st, err := solver.ParseStrategy(req.Algorithm)
		if err != nil {
			s.reject(c, err)
			return
		}
		strategies = []solver.Strategy{st}
	}

	start := cellOf(req.Start, grid.Cell{})
	end := cellOf(req.End, grid.Cell{Row: g.Rows() - 1, Col: g.Cols() - 1})

	resp := SolveResponse{
		ID:      uuid.New(),
		Rows:    g.Rows(),
		Cols:    g.Cols(),
		Start:   pair(start),
		End:     pair(end),
		Results: make([]SolveResult, 0, len(strategies)),
	}
	for _, st := range strategies {
		report, err := solver.Solve(g, start, end, st)
		if err != nil {
			s.reject(c, err)
			return
		}
		log.WithFields(logrus.Fields{
			"solve_id":  resp.ID,
			"algorithm": st.String(),
			"status":    report.Status.String(),
			"length":    report.Length,
			"expanded":  report.Expanded,
			"elapsed":   report.Elapsed.String(),
		}).Debug("solved")
		resp.Results = append(resp.Results, resultOf(report))
	}

	c.JSON(http.StatusOK, resp)
}

// gridFor parses rows, or returns the default maze when rows is empty.
func (s *Server) gridFor(rows []string) (*grid.Grid, error) {
	if len(rows) == 0 {
		return s.maze, nil
	}
	cells := 0
	for _, r := range rows {
		cells += len(r)
	}
	if cells > s.maxCells {
		return nil, fmt.Errorf("%w: %d cells, limit %d", ErrMazeTooLarge, cells, s.maxCells)
	}

	return grid.ParseRows(rows)
}

func (s *Server) reject(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}
