package tilepath

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current    Point
	HasCurrent bool
	Open       []Point
	Closed     []Point
	Done       bool
	State      State
	Path       []Point
	TotalCost  int
	StepIndex  int
}

// Found reports whether the search finished at the goal.
func (s StepSnapshot) Found() bool { return s.State == Found }

// Stepper runs the same search as PathFinder one expansion at a time.
// A Stepper is not safe for concurrent use.
type Stepper struct {
	search    *search
	stepCount int
}

// NewStepper prepares a search from start to goal. If either endpoint is
// blocked the stepper is born done in the Rejected state.
func NewStepper(grid Grid, start, goal Point) *Stepper {
	return &Stepper{search: newSearch(grid, start, goal)}
}

// Done reports whether further calls to Step can make progress.
func (s *Stepper) Done() bool { return s.search == nil || s.search.done() }

// State reports where the search is: Idle before the first step, Searching
// while it runs, then Found, Exhausted or Rejected.
func (s *Stepper) State() State {
	if s.search == nil {
		return Rejected
	}
	return s.search.state
}

// Step advances the search by one node expansion and returns a snapshot
func (s *Stepper) Step() StepSnapshot {
	if s.search == nil {
		return StepSnapshot{Done: true, State: Rejected, StepIndex: s.stepCount}
	}
	if !s.search.done() {
		s.stepCount++
		s.search.step()
	}
	return s.snapshot()
}

// Run steps until the search is done and returns the final snapshot.
func (s *Stepper) Run() StepSnapshot {
	snapshot := s.Step()
	for !snapshot.Done {
		snapshot = s.Step()
	}
	return snapshot
}

func (s *Stepper) snapshot() StepSnapshot {
	search := s.search
	snapshot := StepSnapshot{
		Open:      search.pointsWith(statusOpen),
		Closed:    search.pointsWith(statusClosed),
		Done:      search.done(),
		State:     search.state,
		StepIndex: s.stepCount,
	}
	if search.current != noParent {
		snapshot.Current = search.arena.locOf(search.current)
		snapshot.HasCurrent = true
	}
	if search.state == Found {
		result := search.result()
		snapshot.Path = result.Path
		snapshot.TotalCost = result.TotalCost
	}
	return snapshot
}
