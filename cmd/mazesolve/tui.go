package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/solver"
)

// browse shows one report at a time. Tab/Right/n moves forward,
// Left/p back, q or Esc quits.
func browse(g *grid.Grid, start, end grid.Cell, reports []solver.Report) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	i := 0
	draw := func() {
		screen.Clear()
		r := reports[i]
		render.Draw(screen, g, r.Path, start, end)
		status := fmt.Sprintf("%s  %s  len=%d expanded=%d  %.3fms  [%d/%d] tab:next q:quit",
			r.Strategy.Title(), r.Status, r.Length, r.Expanded, r.Elapsed.Seconds()*1000, i+1, len(reports))
		for x, ch := range []rune(status) {
			screen.SetContent(x, g.Rows()+1, ch, nil, tcell.StyleDefault)
		}
		screen.Show()
	}

	draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyRight || ev.Rune() == 'n':
				i = (i + 1) % len(reports)
				draw()
			case ev.Key() == tcell.KeyLeft || ev.Rune() == 'p':
				i = (i + len(reports) - 1) % len(reports)
				draw()
			}
		case nil:
			return nil
		}
	}
}
