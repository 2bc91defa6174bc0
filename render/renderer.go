package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/term-life/parameter"
	"github.com/lixenwraith/term-life/terminal"
	"github.com/lixenwraith/term-life/world"
)

// Glyphs are the single characters drawn for cells and the edit cursor
type Glyphs struct {
	Alive    rune
	DeadEdit rune // dead cell while editing
	DeadRun  rune // dead cell while running
	Cursor   rune
}

// Texts are the fixed strings shown on the splash screen and bars
type Texts struct {
	SplashTitle  string
	SplashPrompt string
	EditBar      string
	PauseBar     string
	RunHint      string
}

// Layout places the world and bar on screen
type Layout struct {
	// Margin offsets the world from the top-left corner on both axes
	Margin int
	BarRow int

	ScreenWidth  int
	ScreenHeight int
}

// Config bundles everything a Renderer needs
type Config struct {
	Glyphs Glyphs
	Texts  Texts
	Layout Layout

	// CellFg is the palette index for cell glyphs, negative for terminal default
	CellFg int
}

// Renderer composes frames on a Sink
type Renderer struct {
	cfg       Config
	cellStyle terminal.Style
	barStyle  terminal.Style
	sb        strings.Builder
}

// NewRenderer creates a renderer for the given configuration
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{
		cfg:       cfg,
		cellStyle: terminal.Style{Fg: cfg.CellFg},
		barStyle:  terminal.StyleDefault.Bold(),
	}
}

// Config returns the renderer configuration
func (r *Renderer) Config() Config { return r.cfg }

// World draws every grid row at its absolute screen position
func (r *Renderer) World(s Sink, g *world.Grid, dead rune) {
	m := r.cfg.Layout.Margin
	alive := r.cfg.Glyphs.Alive

	s.SetStyle(r.cellStyle)
	for row := 0; row < g.Height(); row++ {
		r.sb.Reset()
		for col := 0; col < g.Width(); col++ {
			if g.Alive(world.Pos{Row: row, Col: col}) {
				r.sb.WriteRune(alive)
			} else {
				r.sb.WriteRune(dead)
			}
		}
		s.MoveTo(m, m+row)
		s.WriteString(r.sb.String())
	}
	s.SetStyle(terminal.StyleDefault)
}

// Cursor overlays the edit cursor glyph on the cell at p
func (r *Renderer) Cursor(s Sink, p world.Pos) {
	m := r.cfg.Layout.Margin
	s.MoveTo(m+p.Col, m+p.Row)
	s.SetStyle(r.barStyle)
	s.WriteString(string(r.cfg.Glyphs.Cursor))
	s.SetStyle(terminal.StyleDefault)
}

// EditBar draws the editing help line
func (r *Renderer) EditBar(s Sink) {
	r.bar(s, r.centered(r.cfg.Texts.EditBar), r.cfg.Texts.EditBar)
}

// PauseBar draws the paused notice
func (r *Renderer) PauseBar(s Sink) {
	r.bar(s, r.centered(r.cfg.Texts.PauseBar), r.cfg.Texts.PauseBar)
}

// RunBar draws generation, delay, population and the controls hint
func (r *Renderer) RunBar(s Sink, generation uint64, delay time.Duration, population int) {
	row := r.cfg.Layout.BarRow
	s.MoveTo(0, row)
	s.ClearLine()
	s.SetStyle(r.barStyle)

	s.MoveTo(parameter.RunBarGenCol, row)
	s.WriteString("Gen: " + strconv.FormatUint(generation, 10))

	s.MoveTo(parameter.RunBarDelayCol, row)
	s.WriteString("Delay: " + strconv.FormatInt(delay.Milliseconds(), 10) + "    ")

	hint := r.cfg.Texts.RunHint
	s.MoveTo(parameter.RunBarHintCol, row)
	s.WriteString(hint)

	s.MoveTo(parameter.RunBarHintCol+runewidth.StringWidth(hint)+parameter.RunBarPopGap, row)
	s.WriteString("Pop: " + strconv.Itoa(population))

	s.SetStyle(terminal.StyleDefault)
}

// Splash draws the centered welcome title and prompt on a cleared screen
func (r *Renderer) Splash(s Sink) {
	t := r.cfg.Texts
	mid := (r.cfg.Layout.ScreenHeight - 2) / 2
	if mid < 0 {
		mid = 0
	}

	s.Clear()
	s.SetStyle(r.barStyle)
	s.MoveTo(r.centered(t.SplashTitle), mid)
	s.WriteString(t.SplashTitle)
	s.MoveTo(r.centered(t.SplashPrompt), mid+1)
	s.WriteString(t.SplashPrompt)
	s.SetStyle(terminal.StyleDefault)
}

// bar clears the bar row and writes text at col in the bar style
func (r *Renderer) bar(s Sink, col int, text string) {
	row := r.cfg.Layout.BarRow
	s.MoveTo(0, row)
	s.ClearLine()
	s.SetStyle(r.barStyle)
	s.MoveTo(col, row)
	s.WriteString(text)
	s.SetStyle(terminal.StyleDefault)
}

// centered returns the column that centers text on screen, never negative
func (r *Renderer) centered(text string) int {
	col := (r.cfg.Layout.ScreenWidth - runewidth.StringWidth(text)) / 2
	if col < 0 {
		return 0
	}
	return col
}

// SplashFrame draws and flushes the splash screen
func (r *Renderer) SplashFrame(s Sink) error {
	r.Splash(s)
	return s.Flush()
}

// NoticeFrame shows a one-line notice at the top-left corner
func (r *Renderer) NoticeFrame(s Sink, text string) error {
	s.Clear()
	s.MoveTo(0, 0)
	s.WriteString(text)
	return s.Flush()
}

// EditFrame redraws the world, the help bar and the cursor marker
func (r *Renderer) EditFrame(s Sink, g *world.Grid, cursor world.Pos) error {
	r.World(s, g, r.cfg.Glyphs.DeadEdit)
	r.EditBar(s)
	r.Cursor(s, cursor)
	return s.Flush()
}

// ClearFrame blanks the screen, used when the run phase starts
func (r *Renderer) ClearFrame(s Sink) error {
	s.Clear()
	return s.Flush()
}

// RunFrame redraws the world and the status bar
func (r *Renderer) RunFrame(s Sink, g *world.Grid, generation uint64, delay time.Duration, population int) error {
	r.World(s, g, r.cfg.Glyphs.DeadRun)
	r.RunBar(s, generation, delay, population)
	return s.Flush()
}

// PauseFrame replaces the status bar with the paused notice
func (r *Renderer) PauseFrame(s Sink) error {
	r.PauseBar(s)
	return s.Flush()
}

// RestoreFrame resets colour, clears the screen and shows the cursor
func (r *Renderer) RestoreFrame(s Sink) error {
	s.SetStyle(terminal.StyleDefault)
	s.Clear()
	s.MoveTo(0, 0)
	s.ShowCursor(true)
	return s.Flush()
}
