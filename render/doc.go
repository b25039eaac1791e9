// Package render presents a maze and a solved path: as glyph text for
// terminals and logs, onto a tcell screen for interactive viewing, and as a
// PNG image.
//
// All three share one precedence when classifying a cell: start, end,
// path, wall, open. The grid is never modified.
package render
