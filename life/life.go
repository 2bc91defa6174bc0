// Package life applies Conway's B3/S23 rule to a world.Grid.
package life

import "github.com/lixenwraith/term-life/world"

// NextState returns the state of the cell at p after one generation
// Live cells survive on 2 or 3 neighbours, dead cells are born on exactly 3
func NextState(snapshot *world.Grid, p world.Pos) bool {
	n := snapshot.CountLiveNeighbors(p)
	if snapshot.Alive(p) {
		return n == 2 || n == 3
	}
	return n == 3
}

// Sim owns a grid, its next-generation buffer and the generation counter
type Sim struct {
	grid       *world.Grid
	next       *world.Grid
	generation uint64
}

// NewSim wraps grid; the grid is mutated in place by Advance
func NewSim(grid *world.Grid) *Sim {
	next, _ := world.New(grid.Width(), grid.Height())
	return &Sim{grid: grid, next: next}
}

// Advance computes the next generation from the current grid as a read-only
// snapshot, then swaps it in. All cells transition simultaneously.
func (s *Sim) Advance() {
	g := s.grid
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			p := world.Pos{Row: row, Col: col}
			s.next.Set(p, NextState(g, p))
		}
	}
	g.Swap(s.next)
	s.generation++
}

// Grid returns the live grid
func (s *Sim) Grid() *world.Grid { return s.grid }

// Generation returns the number of completed advances
func (s *Sim) Generation() uint64 { return s.generation }

// Population returns the live cell count of the current generation
func (s *Sim) Population() int { return s.grid.Population() }
