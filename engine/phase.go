package engine

// Phase is the interaction state of a session
type Phase uint8

const (
	PhaseSplash Phase = iota
	PhaseEditing
	PhaseRunning
	PhasePaused
	PhaseTerminal
)

var phaseNames = [...]string{
	PhaseSplash:   "splash",
	PhaseEditing:  "editing",
	PhaseRunning:  "running",
	PhasePaused:   "paused",
	PhaseTerminal: "terminal",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}
