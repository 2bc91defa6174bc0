package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/term-life/input"
	"github.com/lixenwraith/term-life/world"
)

// State is the mutable session state outside the simulation
type State struct {
	Phase  Phase
	Cursor world.Pos
	Delay  time.Duration
}

// setPhase records a transition
func (g *Game) setPhase(p Phase) {
	if g.state.Phase == p {
		return
	}
	log.Printf("engine: %s -> %s", g.state.Phase, p)
	g.state.Phase = p
}

// SpeedUp shortens the delay by one step, never below the floor
func (g *Game) SpeedUp() {
	d := g.state.Delay - g.timing.DelayStep
	if d < g.timing.MinDelay {
		d = g.timing.MinDelay
	}
	if d != g.state.Delay {
		log.Printf("engine: delay %v -> %v", g.state.Delay, d)
	}
	g.state.Delay = d
}

// SpeedDown lengthens the delay by one step
func (g *Game) SpeedDown() {
	d := g.state.Delay + g.timing.DelayStep
	log.Printf("engine: delay %v -> %v", g.state.Delay, d)
	g.state.Delay = d
}

// HandleSplash leaves the splash screen on the begin key
func (g *Game) HandleSplash(b byte) input.Action {
	a := g.keys.Lookup(input.PhaseSplash, b)
	if a == input.ActionBegin {
		g.setPhase(PhaseEditing)
	}
	return a
}

// HandleEdit moves the cursor, toggles the cell under it or starts the run
func (g *Game) HandleEdit(b byte) input.Action {
	a := g.keys.Lookup(input.PhaseEdit, b)
	if d, ok := a.Direction(); ok {
		g.state.Cursor = g.sim.Grid().WrapStep(g.state.Cursor, d)
		return a
	}

	switch a {
	case input.ActionToggle:
		g.sim.Grid().Toggle(g.state.Cursor)
	case input.ActionStart:
		g.setPhase(PhaseRunning)
	}
	return a
}

// HandleRun applies one run command; ok is false when no byte was available
func (g *Game) HandleRun(b byte, ok bool) input.Action {
	if !ok {
		return input.ActionNone
	}

	a := g.keys.Lookup(input.PhaseRun, b)
	switch a {
	case input.ActionQuit:
		g.setPhase(PhaseTerminal)
	case input.ActionSpeedUp:
		g.SpeedUp()
	case input.ActionSpeedDown:
		g.SpeedDown()
	case input.ActionPause:
		g.setPhase(PhasePaused)
	}
	return a
}

// HandlePause resumes on the resume key and ignores everything else
func (g *Game) HandlePause(b byte) input.Action {
	a := g.keys.Lookup(input.PhasePause, b)
	if a == input.ActionResume {
		g.setPhase(PhaseRunning)
	}
	return a
}
