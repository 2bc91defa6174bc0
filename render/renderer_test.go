package render

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/term-life/parameter"
	"github.com/lixenwraith/term-life/terminal"
	"github.com/lixenwraith/term-life/world"
)

// screenSink emulates a character screen for assertions
type screenSink struct {
	w, h     int
	cells    [][]rune
	bold     [][]bool
	x, y     int
	style    terminal.Style
	flushes  int
	clears   int
	cursorOn bool
	pending  int // writes since last flush
}

func newScreenSink(w, h int) *screenSink {
	s := &screenSink{w: w, h: h}
	s.Clear()
	s.clears = 0
	return s
}

func (s *screenSink) Clear() {
	s.cells = make([][]rune, s.h)
	s.bold = make([][]bool, s.h)
	for y := range s.cells {
		s.cells[y] = []rune(strings.Repeat(" ", s.w))
		s.bold[y] = make([]bool, s.w)
	}
	s.x, s.y = 0, 0
	s.clears++
	s.pending++
}

func (s *screenSink) ClearLine() {
	for x := range s.cells[s.y] {
		s.cells[s.y][x] = ' '
		s.bold[s.y][x] = false
	}
	s.pending++
}

func (s *screenSink) MoveTo(col, row int) { s.x, s.y = col, row; s.pending++ }

func (s *screenSink) SetStyle(st terminal.Style) { s.style = st; s.pending++ }

func (s *screenSink) WriteString(str string) {
	for _, r := range str {
		if s.y >= 0 && s.y < s.h && s.x >= 0 && s.x < s.w {
			s.cells[s.y][s.x] = r
			s.bold[s.y][s.x] = s.style.Attrs&terminal.AttrBold != 0
		}
		s.x++
	}
	s.pending++
}

func (s *screenSink) ShowCursor(v bool) { s.cursorOn = v; s.pending++ }

func (s *screenSink) Flush() error {
	s.flushes++
	s.pending = 0
	return nil
}

func (s *screenSink) row(y int) string { return string(s.cells[y]) }

func testConfig(w, h int) Config {
	return Config{
		Glyphs: Glyphs{Alive: 'o', DeadEdit: '-', DeadRun: ' ', Cursor: '@'},
		Texts: Texts{
			SplashTitle:  "Welcome",
			SplashPrompt: "Press space",
			EditBar:      "EDIT",
			PauseBar:     "PAUSED",
			RunHint:      "hint",
		},
		Layout: Layout{Margin: 1, BarRow: 0, ScreenWidth: w, ScreenHeight: h},
		CellFg: -1,
	}
}

func TestWorldPlacesRowsWithMargin(t *testing.T) {
	g, _ := world.New(4, 3)
	g.Set(world.Pos{Row: 0, Col: 0}, true)
	g.Set(world.Pos{Row: 2, Col: 3}, true)

	s := newScreenSink(6, 5)
	r := NewRenderer(testConfig(6, 5))
	r.World(s, g, '-')

	want := []string{"      ", " o--- ", " ---- ", " ---o ", "      "}
	for y, line := range want {
		if s.row(y) != line {
			t.Errorf("row %d: expected %q, got %q", y, line, s.row(y))
		}
	}
}

func TestEditFrameDrawsBarAndCursor(t *testing.T) {
	g, _ := world.New(4, 3)
	s := newScreenSink(10, 5)
	r := NewRenderer(testConfig(10, 5))

	if err := r.EditFrame(s, g, world.Pos{Row: 1, Col: 2}); err != nil {
		t.Fatalf("EditFrame: %v", err)
	}

	if s.flushes != 1 || s.pending != 0 {
		t.Errorf("Expected frame flushed once with nothing pending, got flushes=%d pending=%d", s.flushes, s.pending)
	}
	if !strings.Contains(s.row(0), "EDIT") {
		t.Errorf("Expected edit bar on row 0, got %q", s.row(0))
	}
	if s.cells[2][3] != '@' || !s.bold[2][3] {
		t.Errorf("Expected bold cursor at screen (3,2), got %q", s.cells[2][3])
	}
	if s.cells[1][1] != '-' {
		t.Errorf("Expected dead edit glyph, got %q", s.cells[1][1])
	}
}

func TestRunFrameStatusBar(t *testing.T) {
	g, _ := world.New(3, 3)
	g.Set(world.Pos{Row: 1, Col: 1}, true)
	s := newScreenSink(60, 6)
	r := NewRenderer(testConfig(60, 6))

	if err := r.RunFrame(s, g, 42, 70*time.Millisecond, 1); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}

	bar := s.row(0)
	for _, want := range []string{"Gen: 42", "Delay: 70", "hint", "Pop: 1"} {
		if !strings.Contains(bar, want) {
			t.Errorf("Expected %q in bar %q", want, bar)
		}
	}
	if strings.Index(bar, "Gen: 42") != parameter.RunBarGenCol {
		t.Errorf("Expected Gen at column %d", parameter.RunBarGenCol)
	}
	if s.cells[2][2] != 'o' || s.cells[1][1] != ' ' {
		t.Errorf("Expected run glyphs, got %q", s.row(2))
	}
}

func TestPauseFrameReplacesBar(t *testing.T) {
	g, _ := world.New(3, 3)
	s := newScreenSink(40, 6)
	r := NewRenderer(testConfig(40, 6))
	r.RunFrame(s, g, 1, 100*time.Millisecond, 0)

	r.PauseFrame(s)
	bar := s.row(0)
	if strings.Contains(bar, "Gen:") || !strings.Contains(bar, "PAUSED") {
		t.Errorf("Expected only pause text on bar, got %q", bar)
	}
	if idx := strings.Index(bar, "PAUSED"); idx != (40-6)/2 {
		t.Errorf("Expected pause text centered at %d, got %d", (40-6)/2, idx)
	}
}

func TestSplashCentered(t *testing.T) {
	s := newScreenSink(21, 10)
	r := NewRenderer(testConfig(21, 10))

	if err := r.SplashFrame(s); err != nil {
		t.Fatalf("SplashFrame: %v", err)
	}
	mid := (10 - 2) / 2
	if idx := strings.Index(s.row(mid), "Welcome"); idx != 7 {
		t.Errorf("Expected title at column 7, got %d", idx)
	}
	if !strings.Contains(s.row(mid+1), "Press space") {
		t.Errorf("Expected prompt below title, got %q", s.row(mid+1))
	}
}

func TestCenteredNeverNegative(t *testing.T) {
	r := NewRenderer(testConfig(4, 2))
	if col := r.centered("much longer than the screen"); col != 0 {
		t.Errorf("Expected 0, got %d", col)
	}
}

func TestRestoreFrame(t *testing.T) {
	s := newScreenSink(5, 5)
	s.WriteString("junk")
	r := NewRenderer(testConfig(5, 5))

	if err := r.RestoreFrame(s); err != nil {
		t.Fatalf("RestoreFrame: %v", err)
	}
	if !s.cursorOn || s.clears != 1 || s.style != terminal.StyleDefault {
		t.Errorf("Expected cleared screen, default style and visible cursor")
	}
	if strings.TrimSpace(s.row(0)) != "" {
		t.Errorf("Expected blank screen, got %q", s.row(0))
	}
}
