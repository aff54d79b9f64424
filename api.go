package tilepath

import (
	"context"
	"runtime"
)

// Grid is the tile map a search runs over. IsWalkable is only called for
// cells inside [0, Width()) × [0, Height()) and must not change during a search.
type Grid interface {
	Width() int
	Height() int
	IsWalkable(x, y int) bool
}

// InBounds reports whether p lies inside g.
func InBounds(g Grid, p Point) bool {
	return p.X >= 0 && p.X < g.Width() && p.Y >= 0 && p.Y < g.Height()
}

// Walkable reports whether p lies inside g and is traversable.
func Walkable(g Grid, p Point) bool {
	return InBounds(g, p) && g.IsWalkable(p.X, p.Y)
}

// State is the phase of a search.
type State int

const (
	// Idle: built but not yet stepped.
	Idle State = iota
	// Searching: at least one expansion ran and the search has not finished.
	Searching
	// Found: the goal was popped from the frontier.
	Found
	// Exhausted: the frontier emptied without reaching the goal.
	Exhausted
	// Rejected: start or goal is out of bounds or blocked; no search ran.
	Rejected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Result contains the outcome of a search
type Result struct {
	Path          []Point
	TotalCost     int
	ExpandedNodes int
	State         State
}

// Found reports whether the search reached the goal.
func (r Result) Found() bool { return r.State == Found }

// Options defines parameters for batch searches.
type Options struct {
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many searches FindPaths runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// PathFinder finds shortest paths over a grid. Every call builds its own
// search state, so one PathFinder may serve concurrent callers as long as the
// grid is not mutated meanwhile.
type PathFinder struct {
	grid Grid
}

// NewPathFinder returns a PathFinder over grid.
func NewPathFinder(grid Grid) *PathFinder {
	return &PathFinder{grid: grid}
}

// FindPath returns the cheapest route from start to goal, both inclusive, or
// nil when an endpoint is blocked or out of bounds or no route exists.
func (pf *PathFinder) FindPath(start, goal Point) []Point {
	result, _ := pf.Search(context.Background(), start, goal)
	return result.Path
}

// Search runs A* from start to goal. An unreachable or rejected goal is
// reported through Result.State, not as an error; the only error is the
// context's, checked between expansions. A search canceled before its first
// expansion reports Idle.
func (pf *PathFinder) Search(ctx context.Context, start, goal Point) (Result, error) {
	s := newSearch(pf.grid, start, goal)
	if s == nil {
		return Result{State: Rejected}, nil
	}
	for !s.done() {
		if err := ctx.Err(); err != nil {
			return Result{State: s.state, ExpandedNodes: s.expanded}, err
		}
		s.step()
	}
	return s.result(), nil
}
