package tcellterm

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-life/terminal"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewWithScreen(sim)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(w, h)
	s.Clear()
	s.Flush()
	t.Cleanup(s.Fini)
	return s, sim
}

func rowText(sim tcell.SimulationScreen, row, from, to int) string {
	out := make([]rune, 0, to-from)
	for x := from; x < to; x++ {
		r, _, _, _ := sim.GetContent(x, row)
		out = append(out, r)
	}
	return string(out)
}

// pollWait retries Poll until a byte arrives from the event goroutine
func pollWait(t *testing.T, s *Screen) byte {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		b, ok, err := s.Poll()
		if err != nil {
			t.Fatalf("Poll: %v", err)
		}
		if ok {
			return b
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("Expected a byte before deadline")
	return 0
}

func TestWriteStringAtCursor(t *testing.T) {
	s, sim := newSimScreen(t, 20, 5)

	s.MoveTo(2, 1)
	s.WriteString("Gen: 7")
	s.WriteString("!")
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if got := rowText(sim, 1, 2, 9); got != "Gen: 7!" {
		t.Errorf("Expected \"Gen: 7!\", got %q", got)
	}
	if r, _, _, _ := sim.GetContent(1, 1); r != ' ' {
		t.Errorf("Expected untouched cell before text, got %q", r)
	}
}

func TestClearLineAndClear(t *testing.T) {
	s, sim := newSimScreen(t, 10, 3)

	s.MoveTo(0, 0)
	s.WriteString("abcdefghij")
	s.MoveTo(0, 1)
	s.WriteString("klm")
	s.MoveTo(0, 0)
	s.ClearLine()
	s.Flush()

	if got := rowText(sim, 0, 0, 10); got != "          " {
		t.Errorf("Expected row 0 blank, got %q", got)
	}
	if got := rowText(sim, 1, 0, 3); got != "klm" {
		t.Errorf("Expected row 1 kept, got %q", got)
	}

	s.Clear()
	s.Flush()
	if got := rowText(sim, 1, 0, 3); got != "   " {
		t.Errorf("Expected cleared screen, got %q", got)
	}
}

func TestConvertStyle(t *testing.T) {
	if convertStyle(terminal.StyleDefault) != tcell.StyleDefault {
		t.Error("Expected default style to map to tcell default")
	}

	got := convertStyle(terminal.Style{Fg: 2, Attrs: terminal.AttrBold})
	want := tcell.StyleDefault.Foreground(tcell.PaletteColor(2)).Bold(true)
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestPollTranslatesKeys(t *testing.T) {
	s, sim := newSimScreen(t, 10, 3)

	if _, ok, err := s.Poll(); ok || err != nil {
		t.Fatalf("Expected nothing pending, got ok=%v err=%v", ok, err)
	}

	sim.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	if b := pollWait(t, s); b != 'p' {
		t.Errorf("Expected 'p', got %q", b)
	}

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	if b := pollWait(t, s); b != ' ' {
		t.Errorf("Expected space, got %q", b)
	}

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	if b := pollWait(t, s); b != '\r' {
		t.Errorf("Expected CR, got %q", b)
	}

	// Non-ASCII runes and named keys without a byte are dropped
	sim.InjectKey(tcell.KeyRune, 'é', tcell.ModNone)
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if b := pollWait(t, s); b != 'q' {
		t.Errorf("Expected 'q' after dropped keys, got %q", b)
	}
}

func TestSizeAndFini(t *testing.T) {
	s, _ := newSimScreen(t, 30, 12)

	w, h, err := s.Size()
	if err != nil || w != 30 || h != 12 {
		t.Errorf("Expected 30x12, got %dx%d (%v)", w, h, err)
	}

	s.Fini()
	s.Fini()

	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected event goroutine to exit after Fini")
	}
	if _, _, err := s.Poll(); err == nil {
		t.Error("Expected poll error after Fini")
	}
}
