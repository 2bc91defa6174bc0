package input

import "fmt"

// Phase selects which binding map applies to a byte
type Phase uint8

const (
	PhaseSplash Phase = iota
	PhaseEdit
	PhaseRun
	PhasePause
)

// phaseSections are the keymap section names, indexed by Phase
var phaseSections = [...]string{
	PhaseSplash: "splash",
	PhaseEdit:   "edit",
	PhaseRun:    "run",
	PhasePause:  "pause",
}

func (p Phase) String() string {
	if int(p) < len(phaseSections) {
		return phaseSections[p]
	}
	return "unknown"
}

// KeyTable maps input bytes to actions for each phase
type KeyTable struct {
	Splash map[byte]Action
	Edit   map[byte]Action
	Run    map[byte]Action
	Pause  map[byte]Action
}

// Lookup returns the action bound to b in phase p, ActionNone if unbound
func (kt *KeyTable) Lookup(p Phase, b byte) Action {
	m := kt.section(p)
	if m == nil {
		return ActionNone
	}
	return m[b]
}

func (kt *KeyTable) section(p Phase) map[byte]Action {
	switch p {
	case PhaseSplash:
		return kt.Splash
	case PhaseEdit:
		return kt.Edit
	case PhaseRun:
		return kt.Run
	case PhasePause:
		return kt.Pause
	}
	return nil
}

func (kt *KeyTable) setSection(p Phase, m map[byte]Action) {
	switch p {
	case PhaseSplash:
		kt.Splash = m
	case PhaseEdit:
		kt.Edit = m
	case PhaseRun:
		kt.Run = m
	case PhasePause:
		kt.Pause = m
	}
}

// Has reports whether at least one key in phase p triggers a
func (kt *KeyTable) Has(p Phase, a Action) bool {
	for _, v := range kt.section(p) {
		if v == a {
			return true
		}
	}
	return false
}

// DefaultKeyTable returns the rusty bindings: wasd/hjkl move, space toggles, p starts and pauses
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Splash: map[byte]Action{
			' ': ActionBegin,
		},
		Edit: map[byte]Action{
			'w': ActionMoveN,
			'k': ActionMoveN,
			'd': ActionMoveE,
			'l': ActionMoveE,
			's': ActionMoveS,
			'j': ActionMoveS,
			'a': ActionMoveW,
			'h': ActionMoveW,
			' ': ActionToggle,
			'p': ActionStart,
		},
		Run: map[byte]Action{
			'q': ActionQuit,
			'+': ActionSpeedUp,
			'-': ActionSpeedDown,
			'p': ActionPause,
		},
		Pause: map[byte]Action{
			' ': ActionResume,
		},
	}
}

// TidyKeyTable extends the defaults with diagonals, Enter to start and space to pause
func TidyKeyTable() *KeyTable {
	kt := DefaultKeyTable()

	kt.Edit['y'] = ActionMoveNW
	kt.Edit['u'] = ActionMoveNE
	kt.Edit['b'] = ActionMoveSW
	kt.Edit['n'] = ActionMoveSE
	delete(kt.Edit, 'p')
	kt.Edit['\r'] = ActionStart
	kt.Edit['\n'] = ActionStart

	delete(kt.Run, 'p')
	kt.Run[' '] = ActionPause
	kt.Run['='] = ActionSpeedUp
	kt.Run['_'] = ActionSpeedDown

	return kt
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{}
	for p := range phaseSections {
		src := kt.section(Phase(p))
		dst := make(map[byte]Action, len(src))
		for k, v := range src {
			dst[k] = v
		}
		out.setSection(Phase(p), dst)
	}
	return out
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries with ActionNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for p := range phaseSections {
		ov := override.section(Phase(p))
		if ov == nil {
			continue
		}
		dst := result.section(Phase(p))
		for k, v := range ov {
			if v == ActionNone {
				delete(dst, k)
			} else {
				dst[k] = v
			}
		}
	}
	return result
}

// required lists the actions a phase cannot be left without
var required = []struct {
	phase  Phase
	action Action
}{
	{PhaseSplash, ActionBegin},
	{PhaseEdit, ActionStart},
	{PhaseRun, ActionQuit},
	{PhaseRun, ActionPause},
	{PhasePause, ActionResume},
}

// Validate rejects tables that would trap the user in a phase or bind actions outside their phase
func (kt *KeyTable) Validate() error {
	for _, r := range required {
		if !kt.Has(r.phase, r.action) {
			return fmt.Errorf("keymap [%s]: no key bound to %q", r.phase, r.action)
		}
	}

	for p := range phaseSections {
		for k, a := range kt.section(Phase(p)) {
			if !allowedIn(Phase(p), a) {
				return fmt.Errorf("keymap [%s]: action %q not valid for key %q", Phase(p), a, k)
			}
		}
	}
	return nil
}

func allowedIn(p Phase, a Action) bool {
	switch p {
	case PhaseSplash:
		return a == ActionBegin
	case PhaseEdit:
		_, move := a.Direction()
		return move || a == ActionToggle || a == ActionStart
	case PhaseRun:
		return a == ActionQuit || a == ActionSpeedUp || a == ActionSpeedDown || a == ActionPause
	case PhasePause:
		return a == ActionResume
	}
	return false
}
