package render

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pdrpinto/tilepath"
)

// Viewer steps a search on a terminal screen. Space pauses, n single-steps
// while paused, r restarts, q or Esc quits.
type Viewer struct {
	screen      tcell.Screen
	grid        tilepath.Grid
	start, goal tilepath.Point
	interval    time.Duration

	stepper  *tilepath.Stepper
	snapshot tilepath.StepSnapshot
	paused   bool
}

// NewViewer builds a viewer stepping a search from start to goal every interval.
// A nil screen is allowed when the viewer is only driven through its commands.
func NewViewer(screen tcell.Screen, g tilepath.Grid, start, goal tilepath.Point, interval time.Duration) *Viewer {
	v := &Viewer{
		screen:   screen,
		grid:     g,
		start:    start,
		goal:     goal,
		interval: interval,
	}
	v.restart()
	return v
}

func (v *Viewer) restart() {
	v.stepper = tilepath.NewStepper(v.grid, v.start, v.goal)
	v.snapshot = tilepath.StepSnapshot{State: v.stepper.State()}
	if v.stepper.Done() {
		v.snapshot = v.stepper.Step()
	}
}

// Snapshot is the state last drawn.
func (v *Viewer) Snapshot() tilepath.StepSnapshot { return v.snapshot }

// Paused reports whether automatic stepping is suspended.
func (v *Viewer) Paused() bool { return v.paused }

// tick advances one step unless paused or finished.
func (v *Viewer) tick() {
	if !v.paused && !v.stepper.Done() {
		v.snapshot = v.stepper.Step()
	}
}

// command applies a key press and reports whether the viewer keeps running.
func (v *Viewer) command(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch r {
	case 'q':
		return false
	case ' ':
		v.paused = !v.paused
	case 'n':
		if v.paused && !v.stepper.Done() {
			v.snapshot = v.stepper.Step()
		}
	case 'r':
		v.restart()
	}
	return true
}

func (v *Viewer) status() string {
	s := v.snapshot
	line := fmt.Sprintf("step %d  %s  open %d  closed %d", s.StepIndex, s.State, len(s.Open), len(s.Closed))
	if s.Found() {
		line += fmt.Sprintf("  cost %d  length %d", s.TotalCost, len(s.Path))
	}
	if v.paused {
		line += "  [paused]"
	}
	return line
}

func (v *Viewer) draw() {
	v.screen.Clear()
	Draw(v.screen, 0, 0, v.grid, FromSnapshot(v.start, v.goal, v.snapshot))
	DrawText(v.screen, 0, v.grid.Height()+1, v.status(), tcell.StyleDefault)
	DrawText(v.screen, 0, v.grid.Height()+2, "space pause  n step  r restart  q quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
	v.screen.Show()
}

// Run drives the viewer until the user quits or ctx ends. The caller owns the
// screen's Init and Fini.
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	v.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.command(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.draw()
		case <-ticker.C:
			v.tick()
			v.draw()
		}
	}
}
