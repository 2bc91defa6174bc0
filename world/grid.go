// Package world holds the toroidal cell grid and its wrap-aware coordinate arithmetic.
package world

import (
	"fmt"
	"strings"
)

// Pos addresses a cell by row and column
// Positions handed out by a Grid are always in bounds
type Pos struct {
	Row, Col int
}

// Grid is a fixed-size toroidal boolean matrix indexed [row][col]
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// New allocates an all-dead grid
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("degenerate grid %dx%d: dimensions must be positive", width, height)
	}

	// Single backing slice keeps rows contiguous
	backing := make([]bool, width*height)
	cells := make([][]bool, height)
	for row := range cells {
		cells[row] = backing[row*width : (row+1)*width : (row+1)*width]
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p addresses a cell of the grid
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Alive returns the state of the cell at p
func (g *Grid) Alive(p Pos) bool {
	return g.cells[p.Row][p.Col]
}

// Set assigns the state of the cell at p
func (g *Grid) Set(p Pos, alive bool) {
	g.cells[p.Row][p.Col] = alive
}

// Toggle flips the cell at p
func (g *Grid) Toggle(p Pos) {
	g.cells[p.Row][p.Col] = !g.cells[p.Row][p.Col]
}

// WrapStep returns the position one step from p in direction d
// Each axis wraps independently; no cell content is read
func (g *Grid) WrapStep(p Pos, d Direction) Pos {
	dRow, dCol := d.Delta()
	return Pos{
		Row: wrap(p.Row+dRow, g.height),
		Col: wrap(p.Col+dCol, g.width),
	}
}

// wrap folds i into [0, n) for a single-step offset
func wrap(i, n int) int {
	switch {
	case i < 0:
		return n - 1
	case i >= n:
		return 0
	}
	return i
}

// CountLiveNeighbors sums the 8 wrapped neighbours of p
// On 1-wide or 1-tall grids a cell may be counted as its own neighbour
func (g *Grid) CountLiveNeighbors(p Pos) int {
	count := 0
	for _, d := range Directions {
		if g.Alive(g.WrapStep(p, d)) {
			count++
		}
	}
	return count
}

// Population returns the number of live cells
func (g *Grid) Population() int {
	n := 0
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// Clear kills every cell
func (g *Grid) Clear() {
	for _, row := range g.cells {
		clear(row)
	}
}

// Clone returns an independent copy
func (g *Grid) Clone() *Grid {
	c, _ := New(g.width, g.height)
	for row := range g.cells {
		copy(c.cells[row], g.cells[row])
	}
	return c
}

// Swap exchanges cell contents with other, which must have identical dimensions
func (g *Grid) Swap(other *Grid) {
	if g.width != other.width || g.height != other.height {
		panic(fmt.Sprintf("world: swap %dx%d with %dx%d", g.width, g.height, other.width, other.height))
	}
	g.cells, other.cells = other.cells, g.cells
}

// Equal reports whether both grids have the same size and contents
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Rows renders each grid row as a string of alive/dead glyphs
func (g *Grid) Rows(alive, dead rune) []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for r, row := range g.cells {
		sb.Reset()
		for _, a := range row {
			if a {
				sb.WriteRune(alive)
			} else {
				sb.WriteRune(dead)
			}
		}
		rows[r] = sb.String()
	}
	return rows
}

// LiveCells returns the positions of all live cells in row-major order
func (g *Grid) LiveCells() []Pos {
	var out []Pos
	for r, row := range g.cells {
		for c, a := range row {
			if a {
				out = append(out, Pos{Row: r, Col: c})
			}
		}
	}
	return out
}
