package server

import (
	"errors"
	"math/rand"
	"time"

	"github.com/pdrpinto/tilepath"
	"github.com/pdrpinto/tilepath/grid"
)

var errNoFreeCells = errors.New("map has fewer than two walkable cells")

// session is one map with its start, goal and the stepper behind /next.
type session struct {
	tiles       *grid.Tiles
	walls       [][2]int
	start, goal tilepath.Point
	stepper     *tilepath.Stepper
}

func newSession(tiles *grid.Tiles, start, goal tilepath.Point) *session {
	return &session{
		tiles:   tiles,
		walls:   pointsToList(tiles.Blocked()),
		start:   start,
		goal:    goal,
		stepper: tilepath.NewStepper(tiles, start, goal),
	}
}

// randomSession builds a random map whose start and goal are distinct and
// kept open.
func randomSession(layout grid.RandomConfig) (*session, error) {
	if layout.Width < 1 || layout.Height < 1 || layout.Width == 1 && layout.Height == 1 {
		return nil, errNoFreeCells
	}
	seed := layout.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		layout.Seed = seed
	}
	rsrc := rand.New(rand.NewSource(seed))
	var start, goal tilepath.Point
	for {
		start = tilepath.Point{X: rsrc.Intn(layout.Width), Y: rsrc.Intn(layout.Height)}
		goal = tilepath.Point{X: rsrc.Intn(layout.Width), Y: rsrc.Intn(layout.Height)}
		if start != goal {
			break
		}
	}
	layout.Keep = append(layout.Keep, start, goal)
	return newSession(grid.Random(layout), start, goal), nil
}

// fileSession uses a loaded map, falling back to the first and last walkable
// cells when the file names no endpoints.
func fileSession(m *grid.Map) (*session, error) {
	var free []tilepath.Point
	for y := 0; y < m.Tiles.Height(); y++ {
		for x := 0; x < m.Tiles.Width(); x++ {
			if m.Tiles.IsWalkable(x, y) {
				free = append(free, tilepath.Point{X: x, Y: y})
			}
		}
	}
	if len(free) < 2 && (m.Start == nil || m.Goal == nil) {
		return nil, errNoFreeCells
	}
	start, goal := tilepath.Point{}, tilepath.Point{}
	if len(free) > 0 {
		start, goal = free[0], free[len(free)-1]
	}
	if m.Start != nil {
		start = *m.Start
	}
	if m.Goal != nil {
		goal = *m.Goal
	}
	return newSession(m.Tiles, start, goal), nil
}
