package world

import "testing"

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", w, h, err)
	}
	return g
}

func TestNewAllDead(t *testing.T) {
	g := mustGrid(t, 7, 4)

	if g.Width() != 7 || g.Height() != 4 {
		t.Fatalf("Expected 7x4, got %dx%d", g.Width(), g.Height())
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 7; c++ {
			if g.Alive(Pos{r, c}) {
				t.Errorf("Expected cell (%d,%d) dead", r, c)
			}
		}
	}
	if g.Population() != 0 {
		t.Errorf("Expected population 0, got %d", g.Population())
	}
}

func TestNewRejectsDegenerate(t *testing.T) {
	cases := []struct{ w, h int }{{0, 5}, {5, 0}, {-1, 3}, {0, 0}}
	for _, tc := range cases {
		if _, err := New(tc.w, tc.h); err == nil {
			t.Errorf("Expected error for %dx%d", tc.w, tc.h)
		}
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	g := mustGrid(t, 5, 5)
	g.Set(Pos{1, 1}, true)
	g.Set(Pos{3, 2}, true)
	before := g.Clone()

	for _, p := range []Pos{{0, 0}, {1, 1}, {4, 4}, {3, 2}} {
		g.Toggle(p)
		if g.Alive(p) == before.Alive(p) {
			t.Errorf("Expected toggle to flip %v", p)
		}
		g.Toggle(p)
		if !g.Equal(before) {
			t.Errorf("Expected grid restored after double toggle at %v", p)
		}
	}
}

func TestWrapStepEdges(t *testing.T) {
	g := mustGrid(t, 10, 6)

	tests := []struct {
		name string
		from Pos
		dir  Direction
		want Pos
	}{
		{"north wraps to bottom", Pos{0, 4}, North, Pos{5, 4}},
		{"south wraps to top", Pos{5, 4}, South, Pos{0, 4}},
		{"west wraps to right", Pos{2, 0}, West, Pos{2, 9}},
		{"east wraps to left", Pos{2, 9}, East, Pos{2, 0}},
		{"northwest corner", Pos{0, 0}, NorthWest, Pos{5, 9}},
		{"southeast corner", Pos{5, 9}, SouthEast, Pos{0, 0}},
		{"northeast corner", Pos{0, 9}, NorthEast, Pos{5, 0}},
		{"southwest corner", Pos{5, 0}, SouthWest, Pos{0, 9}},
		{"interior", Pos{3, 3}, SouthEast, Pos{4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.WrapStep(tt.from, tt.dir)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWrapStepInvertible(t *testing.T) {
	g := mustGrid(t, 5, 4)

	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			p := Pos{r, c}
			for _, d := range Directions {
				q := g.WrapStep(p, d)
				if !g.InBounds(q) {
					t.Fatalf("WrapStep(%v, %v) out of bounds: %v", p, d, q)
				}
				if back := g.WrapStep(q, d.Opposite()); back != p {
					t.Errorf("WrapStep(WrapStep(%v, %v), %v) = %v", p, d, d.Opposite(), back)
				}
			}
		}
	}
}

func TestWrapStepDegenerate(t *testing.T) {
	g := mustGrid(t, 1, 1)
	for _, d := range Directions {
		if got := g.WrapStep(Pos{0, 0}, d); got != (Pos{0, 0}) {
			t.Errorf("Expected 1x1 step %v to stay put, got %v", d, got)
		}
	}

	// Single live cell on a 1x1 grid sees itself 8 times
	g.Set(Pos{0, 0}, true)
	if n := g.CountLiveNeighbors(Pos{0, 0}); n != 8 {
		t.Errorf("Expected 8 self-neighbours on 1x1, got %d", n)
	}

	// 3x1: N and S collapse onto the cell itself
	row := mustGrid(t, 3, 1)
	if row.WrapStep(Pos{0, 1}, North) != (Pos{0, 1}) || row.WrapStep(Pos{0, 1}, South) != (Pos{0, 1}) {
		t.Error("Expected N/S to collapse on a 1-tall grid")
	}
}

func TestCountLiveNeighbors(t *testing.T) {
	g := mustGrid(t, 6, 6)

	if n := g.CountLiveNeighbors(Pos{2, 2}); n != 0 {
		t.Errorf("Expected 0 on empty grid, got %d", n)
	}

	for _, d := range Directions {
		g.Set(g.WrapStep(Pos{0, 0}, d), true)
	}
	if n := g.CountLiveNeighbors(Pos{0, 0}); n != 8 {
		t.Errorf("Expected 8 wrapped neighbours of corner, got %d", n)
	}

	// Cell itself never counts on a grid larger than 2x2
	g.Set(Pos{0, 0}, true)
	if n := g.CountLiveNeighbors(Pos{0, 0}); n != 8 {
		t.Errorf("Expected self excluded, got %d", n)
	}
}

func TestCountLiveNeighborsBounds(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {2, 1}, {1, 3}, {2, 2}, {3, 3}, {8, 5}}
	for _, s := range sizes {
		g := mustGrid(t, s.w, s.h)
		for r := 0; r < s.h; r++ {
			for c := 0; c < s.w; c++ {
				g.Set(Pos{r, c}, true)
			}
		}
		for r := 0; r < s.h; r++ {
			for c := 0; c < s.w; c++ {
				n := g.CountLiveNeighbors(Pos{r, c})
				if n < 0 || n > 8 {
					t.Errorf("%dx%d: count %d out of range at (%d,%d)", s.w, s.h, n, r, c)
				}
			}
		}
	}
}

func TestSwapAndClone(t *testing.T) {
	a := mustGrid(t, 4, 3)
	b := mustGrid(t, 4, 3)
	a.Set(Pos{1, 2}, true)

	c := a.Clone()
	c.Toggle(Pos{0, 0})
	if a.Alive(Pos{0, 0}) {
		t.Error("Expected clone to be independent")
	}

	a.Swap(b)
	if a.Population() != 0 || !b.Alive(Pos{1, 2}) {
		t.Error("Expected swap to exchange contents")
	}
}

func TestRows(t *testing.T) {
	g := mustGrid(t, 3, 2)
	g.Set(Pos{0, 1}, true)
	g.Set(Pos{1, 2}, true)

	rows := g.Rows('o', '-')
	if len(rows) != 2 || rows[0] != "-o-" || rows[1] != "--o" {
		t.Errorf("Unexpected rows %q", rows)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if d, ok := ParseDirection("North_East"); !ok || d != NorthEast {
		t.Errorf("Expected North_East to parse, got %v %v", d, ok)
	}
	if _, ok := ParseDirection("up-ish"); ok {
		t.Error("Expected unknown direction to fail")
	}
}
