package input

// ActionState is the debounced state of a digital source. The order matters:
// when two bindings feed one action the greater state wins.
type ActionState uint8

const (
	Released ActionState = iota
	JustReleased
	JustPressed
	Held
)

// IsPressed reports whether the source is down this frame.
func (s ActionState) IsPressed() bool { return s == JustPressed || s == Held }

func (s ActionState) String() string {
	switch s {
	case Released:
		return "released"
	case JustReleased:
		return "just-released"
	case JustPressed:
		return "just-pressed"
	case Held:
		return "held"
	}
	return "unknown"
}

// ButtonSettings are the hysteresis thresholds for analog gamepad buttons.
type ButtonSettings struct {
	Press   float64
	Release float64
}

// AxisSettings snap raw axis values: beyond the high thresholds the value is
// saturated, inside the low ones it is zero.
type AxisSettings struct {
	PositiveHigh float64
	PositiveLow  float64
	NegativeHigh float64
	NegativeLow  float64
}

var (
	DefaultButtonSettings = ButtonSettings{Press: 0.75, Release: 0.65}
	DefaultAxisSettings   = AxisSettings{
		PositiveHigh: 0.95,
		PositiveLow:  0.05,
		NegativeHigh: -0.95,
		NegativeLow:  -0.05,
	}
)

type triggerSet map[DigitalTrigger]struct{}

// TriggerRecord accumulates device events for one frame. A trigger is never
// both just pressed and held.
type TriggerRecord struct {
	justPressed  triggerSet
	held         triggerSet
	justReleased triggerSet

	axisValues map[GamepadAxis]float64
}

func NewTriggerRecord() *TriggerRecord {
	return &TriggerRecord{
		justPressed:  make(triggerSet),
		held:         make(triggerSet),
		justReleased: make(triggerSet),
		axisValues:   make(map[GamepadAxis]float64),
	}
}

// Press records a press edge. Presses of held triggers are ignored.
func (r *TriggerRecord) Press(t DigitalTrigger) {
	if _, ok := r.held[t]; !ok {
		r.justPressed[t] = struct{}{}
	}
}

// Release drops t from the held set and records the release edge. Keys are
// matched without regard to modifiers.
func (r *TriggerRecord) Release(t DigitalTrigger) {
	for h := range r.held {
		if h == t || h.sameKey(t) {
			delete(r.held, h)
		}
	}
	r.justReleased[t] = struct{}{}
}

// UpdateGamepadButton feeds an analog button reading through the press and
// release thresholds.
func (r *TriggerRecord) UpdateGamepadButton(t DigitalTrigger, value float64, s ButtonSettings) {
	_, held := r.held[t]
	switch {
	case value > s.Press:
		if !held {
			r.Press(t)
		}
	case value < s.Release:
		if held {
			r.Release(t)
		}
	}
}

// UpdateGamepadAxis stores an axis reading after snapping it.
func (r *TriggerRecord) UpdateGamepadAxis(a GamepadAxis, value float64, s AxisSettings) {
	switch {
	case value > s.PositiveHigh:
		value = 1
	case value < s.NegativeHigh:
		value = -1
	case value > s.NegativeLow && value < s.PositiveLow:
		value = 0
	}
	r.axisValues[a] = value
}

// FinishFrame turns just pressed triggers into held ones and forgets
// releases. A trigger pressed and released in the same frame is not held.
// Call it once at the end of every frame.
func (r *TriggerRecord) FinishFrame() {
	for t := range r.justPressed {
		if r.releasedThisFrame(t) {
			continue
		}
		r.held[t] = struct{}{}
	}
	r.justPressed = make(triggerSet)
	r.justReleased = make(triggerSet)
}

// releasedThisFrame reports whether t was released since the last frame.
// Key releases carry no modifiers, so any release of the same key counts.
func (r *TriggerRecord) releasedThisFrame(t DigitalTrigger) bool {
	for rel := range r.justReleased {
		if rel == t || rel.sameKey(t) {
			return true
		}
	}
	return false
}

// State returns the state of t. A key trigger without modifiers also matches
// the key pressed with modifiers; a trigger with modifiers needs at least
// those modifiers.
func (r *TriggerRecord) State(t DigitalTrigger) ActionState {
	switch {
	case r.contains(r.held, t):
		return Held
	case r.contains(r.justPressed, t):
		return JustPressed
	case r.contains(r.justReleased, t):
		return JustReleased
	}
	return Released
}

func (r *TriggerRecord) contains(set triggerSet, t DigitalTrigger) bool {
	if _, ok := set[t]; ok {
		return true
	}
	if t.Kind != KindKey {
		return false
	}
	for other := range set {
		if other.sameKey(t) && other.Mods&t.Mods == t.Mods {
			return true
		}
	}
	return false
}

// AxisValue returns the last snapped value of a, zero if never read.
func (r *TriggerRecord) AxisValue(a GamepadAxis) float64 {
	return r.axisValues[a]
}

// Reset forgets every trigger and axis value, for example when the window
// loses focus.
func (r *TriggerRecord) Reset() {
	*r = *NewTriggerRecord()
}
