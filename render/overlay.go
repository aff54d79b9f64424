// Package render draws grids and search progress as text or onto a tcell screen.
package render

import (
	"strings"

	"github.com/pdrpinto/tilepath"
)

// Glyph is what a single cell shows.
type Glyph int

const (
	GlyphOpenTile Glyph = iota
	GlyphWall
	GlyphClosed
	GlyphFrontier
	GlyphCurrent
	GlyphPath
	GlyphStart
	GlyphGoal
)

var glyphRunes = [...]rune{
	GlyphOpenTile: '.',
	GlyphWall:     '#',
	GlyphClosed:   'x',
	GlyphFrontier: 'o',
	GlyphCurrent:  '@',
	GlyphPath:     '*',
	GlyphStart:    'S',
	GlyphGoal:     'G',
}

// Rune is the character drawn for g.
func (g Glyph) Rune() rune { return glyphRunes[g] }

// Overlay is the search state painted over the grid. Later layers win:
// closed, frontier, current, path, then the endpoints.
type Overlay struct {
	Start, Goal tilepath.Point
	Closed      []tilepath.Point
	Open        []tilepath.Point
	Current     *tilepath.Point
	Path        []tilepath.Point
}

// FromSnapshot builds the overlay for a stepper snapshot.
func FromSnapshot(start, goal tilepath.Point, s tilepath.StepSnapshot) Overlay {
	o := Overlay{
		Start:  start,
		Goal:   goal,
		Closed: s.Closed,
		Open:   s.Open,
		Path:   s.Path,
	}
	if s.HasCurrent {
		current := s.Current
		o.Current = &current
	}
	return o
}

// Glyphs resolves every cell of g to a glyph, indexed [y][x].
func Glyphs(g tilepath.Grid, o Overlay) [][]Glyph {
	width, height := g.Width(), g.Height()
	cells := make([][]Glyph, height)
	for y := range cells {
		cells[y] = make([]Glyph, width)
		for x := range cells[y] {
			if !g.IsWalkable(x, y) {
				cells[y][x] = GlyphWall
			}
		}
	}
	paint := func(p tilepath.Point, glyph Glyph) {
		if p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height {
			cells[p.Y][p.X] = glyph
		}
	}
	for _, p := range o.Closed {
		paint(p, GlyphClosed)
	}
	for _, p := range o.Open {
		paint(p, GlyphFrontier)
	}
	if o.Current != nil {
		paint(*o.Current, GlyphCurrent)
	}
	for _, p := range o.Path {
		paint(p, GlyphPath)
	}
	paint(o.Start, GlyphStart)
	paint(o.Goal, GlyphGoal)
	return cells
}

// Text renders g with the overlay as newline separated rows.
func Text(g tilepath.Grid, o Overlay) string {
	var b strings.Builder
	for y, row := range Glyphs(g, o) {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, glyph := range row {
			b.WriteRune(glyph.Rune())
		}
	}
	return b.String()
}
