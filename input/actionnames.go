package input

import (
	"strings"

	"github.com/lixenwraith/term-life/world"
)

// Action is what a key means in the phase it is pressed in
type Action uint8

const (
	ActionNone Action = iota

	// Editing
	ActionMoveN
	ActionMoveNE
	ActionMoveE
	ActionMoveSE
	ActionMoveS
	ActionMoveSW
	ActionMoveW
	ActionMoveNW
	ActionToggle
	ActionStart

	// Running
	ActionQuit
	ActionSpeedUp
	ActionSpeedDown
	ActionPause

	// Splash / Paused
	ActionBegin
	ActionResume
)

// moveActions is indexed by world.Direction
var moveActions = [8]Action{
	world.North:     ActionMoveN,
	world.NorthEast: ActionMoveNE,
	world.East:      ActionMoveE,
	world.SouthEast: ActionMoveSE,
	world.South:     ActionMoveS,
	world.SouthWest: ActionMoveSW,
	world.West:      ActionMoveW,
	world.NorthWest: ActionMoveNW,
}

// MoveAction returns the cursor movement action for d
func MoveAction(d world.Direction) Action {
	return moveActions[d&7]
}

// Direction returns the cursor direction of a move action
func (a Action) Direction() (world.Direction, bool) {
	if a < ActionMoveN || a > ActionMoveNW {
		return 0, false
	}
	return world.Direction(a - ActionMoveN), true
}

// actionRegistry maps canonical action names to actions
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"toggle":     ActionToggle,
	"start":      ActionStart,
	"quit":       ActionQuit,
	"speed_up":   ActionSpeedUp,
	"speed_down": ActionSpeedDown,
	"pause":      ActionPause,
	"begin":      ActionBegin,
	"resume":     ActionResume,
}

// ActionByName resolves an action name; moves are written "move_<direction>"
func ActionByName(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if dir, ok := strings.CutPrefix(name, "move_"); ok {
		d, ok := world.ParseDirection(dir)
		if !ok {
			return ActionNone, false
		}
		return MoveAction(d), true
	}
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	if d, ok := a.Direction(); ok {
		return "move_" + d.String()
	}
	for name, v := range actionRegistry {
		if v == a {
			return name
		}
	}
	return "unknown"
}
