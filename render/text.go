package render

import (
	"strings"

	"github.com/katalvlaran/mazepath/grid"
)

// Glyphs maps each Kind to the string printed for it.
type Glyphs struct {
	Start, End, Path, Wall, Open string
}

// EmojiGlyphs are the default square glyphs.
var EmojiGlyphs = Glyphs{Start: "🟢", End: "🏁", Path: "🟦", Wall: "⬛", Open: "⬜"}

// ASCIIGlyphs suit terminals without emoji support.
var ASCIIGlyphs = Glyphs{Start: "S", End: "E", Path: "*", Wall: "#", Open: "."}

func (gl Glyphs) of(k Kind) string {
	switch k {
	case KindStart:
		return gl.Start
	case KindEnd:
		return gl.End
	case KindPath:
		return gl.Path
	case KindWall:
		return gl.Wall
	default:
		return gl.Open
	}
}

// Text renders g one line per row, overlaying path, start and end.
// A nil path draws the bare maze. Lines end in '\n'.
func Text(g *grid.Grid, path grid.Path, start, end grid.Cell, gl Glyphs) string {
	k := newClassifier(g, path, start, end)

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			b.WriteString(gl.of(k.kind(grid.Cell{Row: r, Col: c})))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
