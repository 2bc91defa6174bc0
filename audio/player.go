// Package audio plays short clicks for session actions through the system speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/term-life/input"
)

const (
	sampleRate = beep.SampleRate(44100)

	clickDuration = 30 * time.Millisecond
	noteDuration  = 60 * time.Millisecond
)

// Player mixes action cues into a single speaker stream
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player; volume is a base-2 gain (0 unchanged, -1 half)
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker, a failure leaves the player silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup drops pending cues and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Play queues the cue for a, moves and unbound keys are silent
func (p *Player) Play(a input.Action) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := p.cue(a)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// cue builds the streamer for an action, nil when the action has no sound
func (p *Player) cue(a input.Action) beep.Streamer {
	var s beep.Streamer
	switch a {
	case input.ActionToggle:
		s = beep.Take(sampleRate.N(clickDuration), NewClickGenerator(sampleRate, 880))
	case input.ActionBegin:
		s = tones(440)
	case input.ActionStart, input.ActionResume:
		s = tones(523, 784)
	case input.ActionPause:
		s = tones(784, 523)
	case input.ActionSpeedUp:
		s = tones(1046)
	case input.ActionSpeedDown:
		s = tones(392)
	case input.ActionQuit:
		s = tones(659, 523, 392)
	default:
		return nil
	}

	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   p.volume,
	}
}

// tones plays each frequency for one note length in sequence
func tones(freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		sine, err := generators.SineTone(sampleRate, f)
		if err != nil {
			// Only fails above Nyquist
			continue
		}
		notes = append(notes, beep.Take(sampleRate.N(noteDuration), &scaled{Streamer: sine, gain: 0.2}))
	}
	return beep.Seq(notes...)
}

// scaled attenuates a full-scale tone
type scaled struct {
	beep.Streamer
	gain float64
}

func (s *scaled) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = s.Streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= s.gain
		samples[i][1] *= s.gain
	}
	return n, ok
}

// ClickGenerator generates a sine burst with a fast exponential decay
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewClickGenerator creates a click generator
func NewClickGenerator(sr beep.SampleRate, freq float64) *ClickGenerator {
	return &ClickGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t / 0.008)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
