package tilepath

import "github.com/pdrpinto/tilepath/internal"

// search holds the state of one A* run. It is built fresh per call and never
// shared, which is what makes PathFinder safe for concurrent use.
type search struct {
	grid          Grid
	width, height int
	goal          searchNode

	frontier  *frontier
	visited   *visitedIndex
	arena     nodeArena
	neighbors []searchNode

	expanded int
	current  int
	state    State
	found    int
}

// newSearch validates the endpoints and seeds the frontier with start. The
// search stays Idle until its first step. It
// returns nil when either endpoint is out of bounds or blocked, before any
// search state is allocated.
func newSearch(g Grid, start, goal Point) *search {
	if !Walkable(g, start) || !Walkable(g, goal) {
		return nil
	}
	width, height := g.Width(), g.Height()
	s := &search{
		grid:      g,
		width:     width,
		height:    height,
		goal:      newNode(nil, noParent, nil, goal, 0),
		frontier:  newFrontier(),
		visited:   newVisitedIndex(width * height),
		neighbors: make([]searchNode, 0, 8),
		current:   noParent,
		found:     noParent,
		state:     Idle,
	}
	startNode := newNode(nil, noParent, &goal, start, 0)
	s.open(s.arena.add(startNode), startNode)
	return s
}

func (s *search) cell(p Point) int { return p.Y*s.width + p.X }

func (s *search) point(cell int) Point { return Point{X: cell % s.width, Y: cell / s.width} }

func (s *search) done() bool {
	return s.state == Found || s.state == Exhausted || s.state == Rejected
}

func (s *search) open(handle int, node searchNode) {
	cell := s.cell(node.loc)
	s.frontier.insert(handle, cell, node.total())
	s.visited.recordOpen(cell, node.total())
}

// step performs one iteration of the search loop: pop the best node, finish
// if it is the goal, otherwise expand and close it.
func (s *search) step() {
	if s.done() {
		return
	}
	s.state = Searching
	if s.frontier.Len() == 0 {
		s.state = Exhausted
		return
	}

	handle := s.frontier.popBest()
	current := s.arena[handle]
	s.current = handle
	s.expanded++

	if current.sameCell(s.goal) {
		s.state = Found
		s.found = handle
		return
	}

	currentCell := s.cell(current.loc)
	s.visited.forgetCost(currentCell)

	s.neighbors = expandNeighbors(s.grid, s.width, s.height, current, handle, s.goal.loc, s.neighbors[:0])
	for _, neighbor := range s.neighbors {
		cell := s.cell(neighbor.loc)
		switch s.visited.statusOf(cell) {
		case statusClosed:
			continue
		case statusOpen:
			if neighbor.total() >= s.visited.bestOpenCost(cell) {
				continue
			}
		}
		s.open(s.arena.add(neighbor), neighbor)
	}

	s.visited.close(currentCell)
}

func (s *search) path() []Point {
	if s.found == noParent {
		return nil
	}
	return internal.ReconstructPath(s.found, s.arena.parentOf, s.arena.locOf)
}

func (s *search) result() Result {
	result := Result{
		ExpandedNodes: s.expanded,
		State:         s.state,
	}
	if s.state == Found {
		result.Path = s.path()
		result.TotalCost = s.arena[s.found].direct
	}
	return result
}

func (s *search) pointsWith(status cellStatus) []Point {
	cells := s.visited.cellsWith(status)
	points := make([]Point, len(cells))
	for i, cell := range cells {
		points[i] = s.point(cell)
	}
	return points
}
