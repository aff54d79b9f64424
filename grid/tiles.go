// Package grid provides in-memory tile maps for tilepath searches: parsing
// from text rows, YAML map files and seeded random obstacle layouts.
package grid

import (
	"strings"

	"github.com/pdrpinto/tilepath"
)

// Tile characters used by Parse and String.
const (
	TileOpen    = '.'
	TileBlocked = '#'
	TileStart   = 'S'
	TileGoal    = 'G'
)

var _ tilepath.Grid = (*Tiles)(nil)

// Tiles is a dense rectangular walkability mask.
type Tiles struct {
	width, height int
	blocked       []bool
}

// New returns a fully walkable width×height grid.
func New(width, height int) *Tiles {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Tiles{
		width:   width,
		height:  height,
		blocked: make([]bool, width*height),
	}
}

// Width is the number of columns.
func (t *Tiles) Width() int { return t.width }

// Height is the number of rows.
func (t *Tiles) Height() int { return t.height }

// IsWalkable reports whether (x, y) is inside the grid and open.
func (t *Tiles) IsWalkable(x, y int) bool {
	return t.contains(x, y) && !t.blocked[y*t.width+x]
}

func (t *Tiles) contains(x, y int) bool {
	return x >= 0 && x < t.width && y >= 0 && y < t.height
}

// Set marks p blocked or walkable. Points outside the grid are ignored.
func (t *Tiles) Set(p tilepath.Point, blocked bool) {
	if t.contains(p.X, p.Y) {
		t.blocked[p.Y*t.width+p.X] = blocked
	}
}

// Block marks p as a wall.
func (t *Tiles) Block(p tilepath.Point) { t.Set(p, true) }

// Unblock opens p.
func (t *Tiles) Unblock(p tilepath.Point) { t.Set(p, false) }

// Blocked lists blocked cells in row-major order.
func (t *Tiles) Blocked() []tilepath.Point {
	var points []tilepath.Point
	for i, b := range t.blocked {
		if b {
			points = append(points, tilepath.Point{X: i % t.width, Y: i / t.width})
		}
	}
	return points
}

// Rows renders the grid as '.'/'#' rows, the inverse of Parse.
func (t *Tiles) Rows() []string {
	rows := make([]string, t.height)
	var b strings.Builder
	for y := 0; y < t.height; y++ {
		b.Reset()
		for x := 0; x < t.width; x++ {
			if t.blocked[y*t.width+x] {
				b.WriteByte(TileBlocked)
			} else {
				b.WriteByte(TileOpen)
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func (t *Tiles) String() string { return strings.Join(t.Rows(), "\n") }
