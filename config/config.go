// Package config loads process configuration for the mazepath binaries
// from the environment and an optional .env file, and builds their logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/solver"
)

// ErrInvalidConfig wraps every rejected configuration value.
var ErrInvalidConfig = errors.New("config: invalid value")

// AllAlgorithms selects every strategy.
const AllAlgorithms = "all"

// DefaultMaze is the built-in 10×10 maze used when no maze file is given.
const DefaultMaze = `
0100001000
0101101010
0000100010
1110111010
0000000010
0111111010
0000001010
0111101010
0000100010
0110001000`

// Default endpoints for DefaultMaze.
var (
	DefaultStart = grid.Cell{Row: 0, Col: 0}
	DefaultEnd   = grid.Cell{Row: 9, Col: 9}
)

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	MazeFile   string       // MAZE_FILE; empty selects DefaultMaze
	Start      grid.Cell    // MAZE_START "r,c"
	End        grid.Cell    // MAZE_END "r,c"
	Algorithm  string       // MAZE_ALGORITHM: bfs, dfs, astar or all
	HTTPAddr   string       // HTTP_ADDR
	GinMode    string       // GIN_MODE
	LogLevel   logrus.Level // LOG_LEVEL
	LogJSON    bool         // LOG_FORMAT=json
	DotEnvRead bool         // whether a .env file was loaded
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables already set, then
// builds a Config from the environment. Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	read := godotenv.Load(files...) == nil

	cfg, err := FromLookup(os.LookupEnv)
	cfg.DotEnvRead = read

	return cfg, err
}

// FromLookup builds a Config from lookup, applying defaults for unset keys.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}

		return def
	}

	cfg := Config{
		MazeFile:  get("MAZE_FILE", ""),
		Start:     DefaultStart,
		End:       DefaultEnd,
		Algorithm: strings.ToLower(get("MAZE_ALGORITHM", AllAlgorithms)),
		HTTPAddr:  get("HTTP_ADDR", ":8080"),
		GinMode:   get("GIN_MODE", "release"),
	}

	var err error
	if v := get("MAZE_START", ""); v != "" {
		if cfg.Start, err = ParseCell(v); err != nil {
			return cfg, fmt.Errorf("MAZE_START: %w", err)
		}
	}
	if v := get("MAZE_END", ""); v != "" {
		if cfg.End, err = ParseCell(v); err != nil {
			return cfg, fmt.Errorf("MAZE_END: %w", err)
		}
	}
	if cfg.Algorithm != AllAlgorithms {
		if _, err = solver.ParseStrategy(cfg.Algorithm); err != nil {
			return cfg, fmt.Errorf("%w: MAZE_ALGORITHM: %v", ErrInvalidConfig, err)
		}
	}
	if cfg.LogLevel, err = logrus.ParseLevel(get("LOG_LEVEL", "info")); err != nil {
		return cfg, fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalidConfig, err)
	}
	switch format := strings.ToLower(get("LOG_FORMAT", "text")); format {
	case "text":
	case "json":
		cfg.LogJSON = true
	default:
		return cfg, fmt.Errorf("%w: LOG_FORMAT %q", ErrInvalidConfig, format)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return cfg, fmt.Errorf("%w: GIN_MODE %q", ErrInvalidConfig, cfg.GinMode)
	}

	return cfg, nil
}

// ParseCell parses "r,c" into a Cell. Surrounding spaces are allowed.
func ParseCell(s string) (grid.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Cell{}, fmt.Errorf("%w: cell %q, want \"row,col\"", ErrInvalidConfig, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("%w: cell row %q", ErrInvalidConfig, parts[0])
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("%w: cell col %q", ErrInvalidConfig, parts[1])
	}

	return grid.Cell{Row: r, Col: c}, nil
}

// Strategies resolves Algorithm to the strategies to run.
func (c Config) Strategies() []solver.Strategy {
	if c.Algorithm == AllAlgorithms || c.Algorithm == "" {
		return solver.Strategies()
	}
	s, err := solver.ParseStrategy(c.Algorithm)
	if err != nil {
		return nil
	}

	return []solver.Strategy{s}
}

// Maze loads MazeFile, or parses DefaultMaze when it is empty.
func (c Config) Maze() (*grid.Grid, error) {
	if c.MazeFile == "" {
		return grid.ParseString(DefaultMaze)
	}
	f, err := os.Open(c.MazeFile)
	if err != nil {
		return nil, fmt.Errorf("config: open maze: %w", err)
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", c.MazeFile, err)
	}

	return g, nil
}

// NewLogger builds the process logger: stderr, level from LogLevel, text
// with full timestamps or JSON.
func NewLogger(c Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(c.LogLevel)
	if c.LogJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}
