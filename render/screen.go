package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazepath/grid"
)

// CellWidth is the number of terminal columns per maze cell in Draw.
const CellWidth = 2

// Styles maps each Kind to a tcell style.
type Styles struct {
	Start, End, Path, Wall, Open tcell.Style
}

// DefaultStyles colours the maze like EmojiGlyphs.
var DefaultStyles = Styles{
	Start: tcell.StyleDefault.Background(tcell.ColorGreen),
	End:   tcell.StyleDefault.Background(tcell.ColorRed),
	Path:  tcell.StyleDefault.Background(tcell.ColorBlue),
	Wall:  tcell.StyleDefault.Background(tcell.ColorBlack),
	Open:  tcell.StyleDefault.Background(tcell.ColorWhite),
}

func (s Styles) of(k Kind) tcell.Style {
	switch k {
	case KindStart:
		return s.Start
	case KindEnd:
		return s.End
	case KindPath:
		return s.Path
	case KindWall:
		return s.Wall
	default:
		return s.Open
	}
}

// Draw paints g onto screen at the top-left corner using DefaultStyles,
// CellWidth columns per cell. Cells beyond the screen size are clipped.
// The caller owns Show.
func Draw(screen tcell.Screen, g *grid.Grid, path grid.Path, start, end grid.Cell) {
	DrawStyled(screen, g, path, start, end, DefaultStyles)
}

// DrawStyled is Draw with caller-supplied styles.
func DrawStyled(screen tcell.Screen, g *grid.Grid, path grid.Path, start, end grid.Cell, st Styles) {
	k := newClassifier(g, path, start, end)
	w, h := screen.Size()

	for r := 0; r < g.Rows() && r < h; r++ {
		for c := 0; c < g.Cols(); c++ {
			style := st.of(k.kind(grid.Cell{Row: r, Col: c}))
			for i := 0; i < CellWidth; i++ {
				x := c*CellWidth + i
				if x >= w {
					break
				}
				screen.SetContent(x, r, ' ', nil, style)
			}
		}
	}
}
