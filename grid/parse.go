package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Parse reads a maze definition: one row per non-blank line, '0' for an open
// cell and '1' for a wall. Whitespace between glyphs is ignored so both
// "0101" and "0 1 0 1" are accepted. Rectangularity is enforced by New.
func Parse(r io.Reader) (*Grid, error) {
	var cells [][]bool
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for col, ch := range line {
			switch {
			case ch == OpenGlyph:
				row = append(row, true)
			case ch == WallGlyph:
				row = append(row, false)
			case unicode.IsSpace(ch):
				// separator
			default:
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrBadGlyph, ch, lineNo, col+1)
			}
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading maze: %w", err)
	}

	return New(cells)
}

// ParseString is Parse over an in-memory maze definition.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// ParseRows parses one string per row, as received from JSON clients.
func ParseRows(rows []string) (*Grid, error) {
	return ParseString(strings.Join(rows, "\n"))
}

// String renders g back into the '0'/'1' text format.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.open[r][c] {
				b.WriteRune(OpenGlyph)
			} else {
				b.WriteRune(WallGlyph)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
