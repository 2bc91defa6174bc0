package engine

import "time"

// Clock paces the loops
type Clock interface {
	Sleep(d time.Duration)
}

// SystemClock sleeps on the wall clock
type SystemClock struct{}

// Sleep blocks the calling goroutine for d
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
