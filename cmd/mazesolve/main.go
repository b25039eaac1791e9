// Command mazesolve loads or generates a maze, solves it with one or all
// strategies and prints each result, optionally in a terminal viewer or
// as PNG files.
//
// Usage:
//
//	mazesolve [-maze file | -generate RxC [-seed n] [-braid p]]
//	          [-start r,c] [-end r,c] [-algo bfs|dfs|astar|all]
//	          [-ascii] [-tui] [-png out.png]
//
// Defaults come from the environment (see package config).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/mazegen"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/solver"
)

type options struct {
	mazeFile string
	start    string
	end      string
	algo     string
	generate string
	seed     int64
	braid    float64
	ascii    bool
	tui      bool
	png      string
	cellSize int
}

func main() {
	cfg, err := config.Load()
	log := config.NewLogger(cfg)
	if err != nil {
		log.WithError(err).Fatal("configuration")
	}
	if !cfg.DotEnvRead {
		log.Debug(".env not found, using process environment")
	}

	var o options
	flag.StringVar(&o.mazeFile, "maze", cfg.MazeFile, "maze file of '0'/'1' rows (default: built-in 10x10 maze)")
	flag.StringVar(&o.start, "start", "", "start cell r,c")
	flag.StringVar(&o.end, "end", "", "end cell r,c")
	flag.StringVar(&o.algo, "algo", cfg.Algorithm, "bfs, dfs, astar or all")
	flag.StringVar(&o.generate, "generate", "", "generate a RxC maze instead of loading one")
	flag.Int64Var(&o.seed, "seed", 0, "generator seed (0 = random)")
	flag.Float64Var(&o.braid, "braid", 0.1, "generator braiding in [0,1]")
	flag.BoolVar(&o.ascii, "ascii", false, "plain ASCII glyphs instead of emoji")
	flag.BoolVar(&o.tui, "tui", false, "browse results in a terminal viewer")
	flag.StringVar(&o.png, "png", "", "write each solved maze to this PNG file")
	flag.IntVar(&o.cellSize, "cell", 12, "PNG pixels per cell")
	flag.Parse()

	if err := run(cfg, o, log); err != nil {
		log.WithError(err).Fatal("mazesolve")
	}
}

func run(cfg config.Config, o options, log *logrus.Logger) error {
	g, start, end, err := loadMaze(cfg, o)
	if err != nil {
		return err
	}

	strategies := solver.Strategies()
	if o.algo != "" && o.algo != config.AllAlgorithms {
		s, err := solver.ParseStrategy(o.algo)
		if err != nil {
			return err
		}
		strategies = []solver.Strategy{s}
	}

	log.WithFields(logrus.Fields{
		"rows":    g.Rows(),
		"cols":    g.Cols(),
		"open":    g.OpenCount(),
		"regions": len(g.Components()),
		"start":   start.String(),
		"end":     end.String(),
	}).Info("maze loaded")
	if g.Passable(start) && g.Passable(end) && !g.Connected(start, end) {
		log.Warn("start and end lie in different regions")
	}

	reports := make([]solver.Report, 0, len(strategies))
	for _, s := range strategies {
		r, err := solver.Solve(g, start, end, s)
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}

	if o.png != "" {
		if err := writePNGs(o.png, o.cellSize, g, start, end, reports, log); err != nil {
			return err
		}
	}
	if o.tui {
		return browse(g, start, end, reports)
	}

	glyphs := render.EmojiGlyphs
	if o.ascii {
		glyphs = render.ASCIIGlyphs
	}
	for _, r := range reports {
		printReport(g, start, end, r, glyphs)
	}

	return nil
}

// loadMaze resolves the grid and endpoints from flags, then config.
func loadMaze(cfg config.Config, o options) (*grid.Grid, grid.Cell, grid.Cell, error) {
	var (
		g          *grid.Grid
		start, end grid.Cell
		err        error
	)

	switch {
	case o.generate != "":
		rows, cols, perr := parseSize(o.generate)
		if perr != nil {
			return nil, start, end, perr
		}
		m := mazegen.Generate(mazegen.Config{Rows: rows, Cols: cols, Braiding: o.braid, Seed: o.seed})
		g, start, end = m.Grid, m.Start, m.End
	default:
		cfg.MazeFile = o.mazeFile
		if g, err = cfg.Maze(); err != nil {
			return nil, start, end, err
		}
		start, end = cfg.Start, cfg.End
	}

	if o.start != "" {
		if start, err = config.ParseCell(o.start); err != nil {
			return nil, start, end, fmt.Errorf("-start: %w", err)
		}
	}
	if o.end != "" {
		if end, err = config.ParseCell(o.end); err != nil {
			return nil, start, end, fmt.Errorf("-end: %w", err)
		}
	}

	return g, start, end, nil
}

// parseSize parses "RxC".
func parseSize(s string) (int, int, error) {
	r, c, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("-generate %q: want RxC", s)
	}
	rows, err := strconv.Atoi(r)
	if err != nil {
		return 0, 0, fmt.Errorf("-generate rows: %w", err)
	}
	cols, err := strconv.Atoi(c)
	if err != nil {
		return 0, 0, fmt.Errorf("-generate cols: %w", err)
	}

	return rows, cols, nil
}

func printReport(g *grid.Grid, start, end grid.Cell, r solver.Report, glyphs render.Glyphs) {
	fmt.Printf("== %s ==\n", r.Strategy.Title())
	fmt.Print(render.Text(g, r.Path, start, end, glyphs))
	ms := r.Elapsed.Seconds() * 1000
	if r.Found() {
		fmt.Printf("Path found: %d cells, %d steps, %d expanded, %.3f ms\n\n", r.Length, r.Steps, r.Expanded, ms)
		return
	}
	fmt.Printf("No path (%s): %d expanded, %.3f ms\n\n", r.Status, r.Expanded, ms)
}

// writePNGs writes one image per report; with several reports the
// strategy name is inserted before the extension.
func writePNGs(name string, cellSize int, g *grid.Grid, start, end grid.Cell, reports []solver.Report, log *logrus.Logger) error {
	for _, r := range reports {
		out := name
		if len(reports) > 1 {
			ext := filepath.Ext(name)
			out = strings.TrimSuffix(name, ext) + "-" + r.Strategy.String() + ext
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		err = render.PNG(f, g, r.Path, start, end, cellSize)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("%s: %w", out, err)
		}
		log.WithFields(logrus.Fields{"file": out, "algorithm": r.Strategy.String()}).Info("png written")
	}

	return nil
}
