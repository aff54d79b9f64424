package server

import "github.com/pdrpinto/tilepath"

type snapshot struct {
	Step    int      `json:"step"`
	W       int      `json:"w"`
	H       int      `json:"h"`
	Walls   [][2]int `json:"walls"`
	Open    [][2]int `json:"open,omitempty"`
	Closed  [][2]int `json:"closed,omitempty"`
	Current *[2]int  `json:"current,omitempty"`
	Start   [2]int   `json:"start"`
	Goal    [2]int   `json:"goal"`
	Done    bool     `json:"done"`
	Found   bool     `json:"found"`
	State   string   `json:"state"`
	Cost    int      `json:"cost,omitempty"`
	Path    [][2]int `json:"path,omitempty"`
}

type pathResponse struct {
	Found    bool     `json:"found"`
	State    string   `json:"state"`
	Cost     int      `json:"cost"`
	Expanded int      `json:"expanded"`
	Path     [][2]int `json:"path,omitempty"`
}

func pair(p tilepath.Point) [2]int { return [2]int{p.X, p.Y} }

func pointsToList(points []tilepath.Point) [][2]int {
	if len(points) == 0 {
		return nil
	}
	res := make([][2]int, 0, len(points))
	for _, p := range points {
		res = append(res, pair(p))
	}
	return res
}

func (s *session) snapshotOf(step tilepath.StepSnapshot) snapshot {
	out := snapshot{
		Step:   step.StepIndex,
		W:      s.tiles.Width(),
		H:      s.tiles.Height(),
		Walls:  s.walls,
		Open:   pointsToList(step.Open),
		Closed: pointsToList(step.Closed),
		Start:  pair(s.start),
		Goal:   pair(s.goal),
		Done:   step.Done,
		Found:  step.Found(),
		State:  step.State.String(),
		Cost:   step.TotalCost,
		Path:   pointsToList(step.Path),
	}
	if step.HasCurrent {
		current := pair(step.Current)
		out.Current = &current
	}
	return out
}
