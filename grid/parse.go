package grid

import (
	"errors"
	"fmt"

	"github.com/pdrpinto/tilepath"
)

var (
	ErrEmptyMap    = errors.New("grid: map has no tiles")
	ErrRaggedRows  = errors.New("grid: rows differ in length")
	ErrUnknownTile = errors.New("grid: unknown tile")
	ErrDuplicate   = errors.New("grid: marker appears more than once")
)

// Map is a parsed tile map with optional start and goal markers.
type Map struct {
	Name  string
	Tiles *Tiles
	Start *tilepath.Point
	Goal  *tilepath.Point
}

// Parse reads rows of '.' (open), '#' (blocked), 'S' (start) and 'G' (goal).
// Start and goal cells are walkable.
func Parse(rows []string) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	width := len(rows[0])
	m := &Map{Tiles: New(width, len(rows))}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d tiles, want %d: %w", y, len(row), width, ErrRaggedRows)
		}
		for x := 0; x < len(row); x++ {
			p := tilepath.Point{X: x, Y: y}
			switch row[x] {
			case TileOpen:
			case TileBlocked:
				m.Tiles.Block(p)
			case TileStart:
				if m.Start != nil {
					return nil, fmt.Errorf("start at %v and %v: %w", *m.Start, p, ErrDuplicate)
				}
				m.Start = &p
			case TileGoal:
				if m.Goal != nil {
					return nil, fmt.Errorf("goal at %v and %v: %w", *m.Goal, p, ErrDuplicate)
				}
				m.Goal = &p
			default:
				return nil, fmt.Errorf("%q at %v: %w", row[x], p, ErrUnknownTile)
			}
		}
	}
	return m, nil
}

// MustParse is Parse for literal maps in tests and examples; it panics on error.
func MustParse(rows ...string) *Map {
	m, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return m
}
