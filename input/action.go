package input

import "fmt"

// Action is a logical digital input.
type Action int

const (
	ActionJump Action = iota
	ActionPause
	ActionRespawn
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionJump:        "jump",
	ActionPause:       "pause",
	ActionRespawn:     "respawn",
	ActionToggleDebug: "toggle_debug",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

func (a Action) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Action) UnmarshalText(text []byte) error {
	for i, name := range actionNames {
		if name == string(text) {
			*a = Action(i)
			return nil
		}
	}
	return fmt.Errorf("unknown action %q", text)
}

// Axis is a logical analog input.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisCount
)

var axisNames = [AxisCount]string{
	AxisHorizontal: "horizontal",
}

func (a Axis) String() string {
	if a < 0 || a >= AxisCount {
		return fmt.Sprintf("axis(%d)", int(a))
	}
	return axisNames[a]
}

func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Axis) UnmarshalText(text []byte) error {
	for i, name := range axisNames {
		if name == string(text) {
			*a = Axis(i)
			return nil
		}
	}
	return fmt.Errorf("unknown axis %q", text)
}

// State is the resolved input for one tick. The simulation reads this and
// never the devices.
type State struct {
	actions [ActionCount]ActionState
	axes    [AxisCount]float64
}

// Action returns the state of a. Unknown actions are Released.
func (s State) Action(a Action) ActionState {
	if a < 0 || a >= ActionCount {
		return Released
	}
	return s.actions[a]
}

// Axis returns the value of a in [-1, 1]. Unknown axes are 0.
func (s State) Axis(a Axis) float64 {
	if a < 0 || a >= AxisCount {
		return 0
	}
	return s.axes[a]
}

// WithAction returns a copy of s with a set to st.
func (s State) WithAction(a Action, st ActionState) State {
	if a >= 0 && a < ActionCount {
		s.actions[a] = st
	}
	return s
}

// WithAxis returns a copy of s with a set to v, clamped to [-1, 1].
func (s State) WithAxis(a Axis, v float64) State {
	if a >= 0 && a < AxisCount {
		s.axes[a] = max(-1, min(1, v))
	}
	return s
}
