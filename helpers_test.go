package tilepath

import (
	"fmt"
	"math"
	"math/rand"
)

// asciiGrid is a test grid: '#' is blocked, anything else walkable. It panics
// when queried out of bounds so tests catch unguarded predicate calls.
type asciiGrid struct {
	rows []string
}

func gridOf(rows ...string) *asciiGrid { return &asciiGrid{rows: rows} }

func (g *asciiGrid) Width() int  { return len(g.rows[0]) }
func (g *asciiGrid) Height() int { return len(g.rows) }
func (g *asciiGrid) IsWalkable(x, y int) bool {
	if x < 0 || y < 0 || y >= len(g.rows) || x >= len(g.rows[y]) {
		panic(fmt.Sprintf("walkability queried out of bounds at (%d,%d)", x, y))
	}
	return g.rows[y][x] != '#'
}

func openGrid(width, height int) *asciiGrid {
	row := make([]byte, width)
	for i := range row {
		row[i] = '.'
	}
	rows := make([]string, height)
	for i := range rows {
		rows[i] = string(row)
	}
	return &asciiGrid{rows: rows}
}

func randomGrid(rng *rand.Rand, width, height int, density float64) *asciiGrid {
	rows := make([]string, height)
	for y := range rows {
		row := make([]byte, width)
		for x := range row {
			row[x] = '.'
			if rng.Float64() < density {
				row[x] = '#'
			}
		}
		rows[y] = string(row)
	}
	return &asciiGrid{rows: rows}
}

// pathCost validates adjacency and corner rules along path and returns its
// cost. It returns -1 if any step is illegal.
func pathCost(g Grid, path []Point) int {
	cost := 0
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		dx, dy := to.X-from.X, to.Y-from.Y
		if !Walkable(g, to) || abs(dx) > 1 || abs(dy) > 1 || (dx == 0 && dy == 0) {
			return -1
		}
		if dx != 0 && dy != 0 {
			if !Walkable(g, from.Add(dx, 0)) || !Walkable(g, from.Add(0, dy)) {
				return -1
			}
			cost += CostDiagonal
			continue
		}
		cost += CostStraight
	}
	return cost
}

// referenceCost is a plain Dijkstra over the same movement rules.
func referenceCost(g Grid, start, goal Point) (int, bool) {
	if !Walkable(g, start) || !Walkable(g, goal) {
		return 0, false
	}
	dist := map[Point]int{start: 0}
	settled := map[Point]bool{}
	for {
		best, bestDist := Point{}, math.MaxInt
		for p, d := range dist {
			if !settled[p] && d < bestDist {
				best, bestDist = p, d
			}
		}
		if bestDist == math.MaxInt {
			return 0, false
		}
		if best == goal {
			return bestDist, true
		}
		settled[best] = true
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				next := best.Add(dx, dy)
				if !Walkable(g, next) {
					continue
				}
				step := CostStraight
				if dx != 0 && dy != 0 {
					if !Walkable(g, best.Add(dx, 0)) || !Walkable(g, best.Add(0, dy)) {
						continue
					}
					step = CostDiagonal
				}
				if d, ok := dist[next]; !ok || bestDist+step < d {
					dist[next] = bestDist + step
				}
			}
		}
	}
}

func hasRepeats(path []Point) bool {
	seen := make(map[Point]bool, len(path))
	for _, p := range path {
		if seen[p] {
			return true
		}
		seen[p] = true
	}
	return false
}
