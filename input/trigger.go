// Package input turns raw device events into debounced per-frame action
// states and analog axis values. Device polling lives in the systems
// package; everything here is engine independent.
package input

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTrigger = errors.New("unknown trigger")

// TriggerKind is the device family of a digital trigger.
type TriggerKind uint8

const (
	KindKey TriggerKind = iota
	KindMouseButton
	KindGamepadButton
)

// Modifiers is the set of modifier keys held when a key was pressed.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{ModShift, "shift"},
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModSuper, "super"},
}

// DigitalTrigger is a source with a pressed/released state. Code is the
// device specific name: an ebitengine key name ("Space", "A"), a mouse button
// ("Left") or a standard gamepad button ("RightBottom").
type DigitalTrigger struct {
	Kind    TriggerKind
	Code    string
	Gamepad int
	Mods    Modifiers
}

func Key(code string) DigitalTrigger { return DigitalTrigger{Kind: KindKey, Code: code} }

func KeyWith(code string, mods Modifiers) DigitalTrigger {
	return DigitalTrigger{Kind: KindKey, Code: code, Mods: mods}
}

func MouseButton(code string) DigitalTrigger {
	return DigitalTrigger{Kind: KindMouseButton, Code: code}
}

func GamepadButton(gamepad int, code string) DigitalTrigger {
	return DigitalTrigger{Kind: KindGamepadButton, Code: code, Gamepad: gamepad}
}

func (t DigitalTrigger) String() string {
	switch t.Kind {
	case KindKey:
		var parts []string
		for _, m := range modifierNames {
			if t.Mods&m.mod != 0 {
				parts = append(parts, m.name)
			}
		}
		return strings.Join(append(parts, t.Code), "+")
	case KindMouseButton:
		return "mouse:" + t.Code
	case KindGamepadButton:
		return fmt.Sprintf("gamepad%d:%s", t.Gamepad, t.Code)
	}
	return "?"
}

// sameKey reports whether two key triggers name the same key, whatever
// modifiers were held.
func (t DigitalTrigger) sameKey(o DigitalTrigger) bool {
	return t.Kind == KindKey && o.Kind == KindKey && t.Code == o.Code
}

// GamepadAxis names one analog axis of one gamepad, using standard layout
// axis names ("LeftStickHorizontal").
type GamepadAxis struct {
	Gamepad int
	Axis    string
}

// AnalogKind selects the variant of an AnalogTrigger.
type AnalogKind uint8

const (
	// KindDigitalJoystick emulates an axis with two digital triggers.
	KindDigitalJoystick AnalogKind = iota
	KindGamepadAxis
)

// AnalogTrigger is a source with a value in [-1, 1].
type AnalogTrigger struct {
	Kind AnalogKind

	// DigitalJoystick: -1 when only Negative is pressed, 1 when only
	// Positive is pressed, no value otherwise.
	Negative DigitalTrigger
	Positive DigitalTrigger

	Axis GamepadAxis
}

func DigitalJoystick(negative, positive DigitalTrigger) AnalogTrigger {
	return AnalogTrigger{Kind: KindDigitalJoystick, Negative: negative, Positive: positive}
}

func AxisTrigger(gamepad int, axis string) AnalogTrigger {
	return AnalogTrigger{Kind: KindGamepadAxis, Axis: GamepadAxis{Gamepad: gamepad, Axis: axis}}
}
