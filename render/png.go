package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/mazepath/grid"
)

// Palette maps each Kind to a fill colour for PNG.
type Palette struct {
	Start, End, Path, Wall, Open color.Color
}

// DefaultPalette mirrors DefaultStyles.
var DefaultPalette = Palette{
	Start: color.RGBA{R: 0, G: 170, B: 0, A: 255},
	End:   color.RGBA{R: 220, G: 0, B: 0, A: 255},
	Path:  color.RGBA{R: 40, G: 90, B: 220, A: 255},
	Wall:  color.Black,
	Open:  color.White,
}

func (p Palette) of(k Kind) color.Color {
	switch k {
	case KindStart:
		return p.Start
	case KindEnd:
		return p.End
	case KindPath:
		return p.Path
	case KindWall:
		return p.Wall
	default:
		return p.Open
	}
}

// PNG writes a cellSize×cellSize-pixel-per-cell image of g to w. The path
// is filled cell by cell and traced with a centre line; start and end are
// drawn as discs.
func PNG(w io.Writer, g *grid.Grid, path grid.Path, start, end grid.Cell, cellSize int) error {
	if cellSize <= 0 {
		return fmt.Errorf("%w: %d", ErrCellSize, cellSize)
	}

	k := newClassifier(g, path, start, end)
	s := float64(cellSize)
	dc := gg.NewContext(g.Cols()*cellSize, g.Rows()*cellSize)
	dc.SetColor(DefaultPalette.Open)
	dc.Clear()

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			kind := k.kind(grid.Cell{Row: r, Col: c})
			if kind == KindStart || kind == KindEnd {
				kind = KindOpen
				if !g.Passable(grid.Cell{Row: r, Col: c}) {
					kind = KindWall
				}
			}
			dc.SetColor(DefaultPalette.of(kind))
			dc.DrawRectangle(float64(c)*s, float64(r)*s, s, s)
			dc.Fill()
		}
	}

	center := func(c grid.Cell) (float64, float64) {
		return float64(c.Col)*s + s/2, float64(c.Row)*s + s/2
	}

	if len(path) > 1 {
		dc.SetColor(color.Black)
		dc.SetLineWidth(s / 4)
		dc.MoveTo(center(path[0]))
		for _, c := range path[1:] {
			dc.LineTo(center(c))
		}
		dc.Stroke()
	}

	for _, m := range []struct {
		at   grid.Cell
		kind Kind
	}{{start, KindStart}, {end, KindEnd}} {
		if !g.InBounds(m.at) {
			continue
		}
		x, y := center(m.at)
		dc.SetColor(DefaultPalette.of(m.kind))
		dc.DrawCircle(x, y, s/2)
		dc.Fill()
	}

	return dc.EncodePNG(w)
}
