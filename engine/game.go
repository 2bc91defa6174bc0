// Package engine drives a session through splash, editing, running and paused phases.
package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/term-life/input"
	"github.com/lixenwraith/term-life/life"
	"github.com/lixenwraith/term-life/render"
	"github.com/lixenwraith/term-life/world"
)

// Console is a screen that can also be polled for input bytes
type Console interface {
	render.Sink
	// Poll returns the next byte without blocking; ok is false when none is pending
	Poll() (b byte, ok bool, err error)
}

// Sounder receives every resolved action, used for click feedback
type Sounder interface {
	Play(a input.Action)
}

// Timing paces the loops
type Timing struct {
	Delay        time.Duration // initial generation delay
	DelayStep    time.Duration
	MinDelay     time.Duration
	EditInterval time.Duration
	PollInterval time.Duration // sleep between empty polls in blocking phases
}

// Config wires a Game to its collaborators
type Config struct {
	Console  Console
	Renderer *render.Renderer
	Keys     *input.KeyTable
	Timing   Timing

	// Optional
	Clock Clock
	Sound Sounder
}

// Game owns the simulation and the session state
type Game struct {
	state    State
	sim      *life.Sim
	keys     *input.KeyTable
	renderer *render.Renderer
	console  Console
	clock    Clock
	sound    Sounder
	timing   Timing
}

// NewGame creates a session on grid, starting at the splash screen
// The cursor starts at (1,1), clamped into small grids
func NewGame(grid *world.Grid, cfg Config) *Game {
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	return &Game{
		state: State{
			Phase:  PhaseSplash,
			Cursor: world.Pos{Row: min(1, grid.Height()-1), Col: min(1, grid.Width()-1)},
			Delay:  cfg.Timing.Delay,
		},
		sim:      life.NewSim(grid),
		keys:     cfg.Keys,
		renderer: cfg.Renderer,
		console:  cfg.Console,
		clock:    clock,
		sound:    cfg.Sound,
		timing:   cfg.Timing,
	}
}

// State returns a copy of the session state
func (g *Game) State() State { return g.state }

// Sim returns the simulation
func (g *Game) Sim() *life.Sim { return g.sim }

// Run drives the session until quit or ctx cancellation, which both end with the restore frame
// Read and write errors end the session immediately, wrapped with the phase they occurred in
func (g *Game) Run(ctx context.Context) error {
	for {
		var err error
		switch g.state.Phase {
		case PhaseSplash:
			err = g.splash(ctx)
		case PhaseEditing:
			err = g.edit(ctx)
		case PhaseRunning:
			err = g.run(ctx)
		case PhasePaused:
			err = g.waitResume(ctx)
		case PhaseTerminal:
			if err := g.renderer.RestoreFrame(g.console); err != nil {
				return g.fail(err)
			}
			log.Printf("engine: session ended at generation %d", g.sim.Generation())
			return nil
		default:
			return fmt.Errorf("engine: unexpected phase %s", g.state.Phase)
		}
		if err != nil {
			return g.fail(err)
		}
	}
}

func (g *Game) fail(err error) error {
	log.Printf("engine: %s failed: %v", g.state.Phase, err)
	return fmt.Errorf("%s: %w", g.state.Phase, err)
}

// interrupted moves to the terminal phase once ctx is done
func (g *Game) interrupted(ctx context.Context) bool {
	if ctx.Err() == nil {
		return false
	}
	log.Printf("engine: interrupted: %v", context.Cause(ctx))
	g.setPhase(PhaseTerminal)
	return true
}

func (g *Game) cue(a input.Action) {
	if g.sound != nil && a != input.ActionNone {
		g.sound.Play(a)
	}
}

func (g *Game) splash(ctx context.Context) error {
	if err := g.renderer.SplashFrame(g.console); err != nil {
		return err
	}

	for g.state.Phase == PhaseSplash {
		if g.interrupted(ctx) {
			return nil
		}
		b, ok, err := g.console.Poll()
		if err != nil {
			return err
		}
		if !ok {
			g.clock.Sleep(g.timing.PollInterval)
			continue
		}
		g.cue(g.HandleSplash(b))
	}
	return nil
}

// edit handles at most one byte per frame, then redraws and sleeps
func (g *Game) edit(ctx context.Context) error {
	for {
		if g.interrupted(ctx) {
			return nil
		}
		b, ok, err := g.console.Poll()
		if err != nil {
			return err
		}
		if ok {
			g.cue(g.HandleEdit(b))
			if g.state.Phase != PhaseEditing {
				return nil
			}
		}

		if err := g.renderer.EditFrame(g.console, g.sim.Grid(), g.state.Cursor); err != nil {
			return err
		}
		g.clock.Sleep(g.timing.EditInterval)
	}
}

// run clears once, then each tick handles input before advancing and redrawing
func (g *Game) run(ctx context.Context) error {
	if err := g.renderer.ClearFrame(g.console); err != nil {
		return err
	}

	for {
		if g.interrupted(ctx) {
			return nil
		}
		b, ok, err := g.console.Poll()
		if err != nil {
			return err
		}
		g.cue(g.HandleRun(b, ok))

		switch g.state.Phase {
		case PhaseTerminal:
			return nil
		case PhasePaused:
			if err := g.waitResume(ctx); err != nil {
				return err
			}
			if g.state.Phase == PhaseTerminal {
				return nil
			}
		}

		g.sim.Advance()
		if err := g.renderer.RunFrame(g.console, g.sim.Grid(), g.sim.Generation(), g.state.Delay, g.sim.Population()); err != nil {
			return err
		}
		g.clock.Sleep(g.state.Delay)
	}
}

// waitResume shows the pause bar and blocks until resume
func (g *Game) waitResume(ctx context.Context) error {
	if err := g.renderer.PauseFrame(g.console); err != nil {
		return err
	}

	for g.state.Phase == PhasePaused {
		if g.interrupted(ctx) {
			return nil
		}
		b, ok, err := g.console.Poll()
		if err != nil {
			return err
		}
		if !ok {
			g.clock.Sleep(g.timing.PollInterval)
			continue
		}
		g.cue(g.HandlePause(b))
	}
	return nil
}
