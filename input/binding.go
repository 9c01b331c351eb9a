package input

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ActionBinding maps an action to one or two digital triggers.
type ActionBinding struct {
	Primary   DigitalTrigger  `yaml:"primary"`
	Secondary *DigitalTrigger `yaml:"secondary,omitempty"`
}

// AxisBinding maps an axis to one or two analog triggers.
type AxisBinding struct {
	Primary   AnalogTrigger  `yaml:"primary"`
	Secondary *AnalogTrigger `yaml:"secondary,omitempty"`
}

// Bindings is the full input map, loadable from YAML.
type Bindings struct {
	Actions map[Action]ActionBinding `yaml:"actions"`
	Axes    map[Axis]AxisBinding     `yaml:"axes"`
}

// DefaultBindings returns the built-in keyboard and gamepad layout.
func DefaultBindings() Bindings {
	south := GamepadButton(0, "RightBottom")
	stick := AxisTrigger(0, "LeftStickHorizontal")
	return Bindings{
		Actions: map[Action]ActionBinding{
			ActionJump:        {Primary: Key("Space"), Secondary: &south},
			ActionPause:       {Primary: Key("Escape")},
			ActionRespawn:     {Primary: Key("R")},
			ActionToggleDebug: {Primary: Key("F1")},
		},
		Axes: map[Axis]AxisBinding{
			AxisHorizontal: {
				Primary:   DigitalJoystick(Key("A"), Key("D")),
				Secondary: &stick,
			},
		},
	}
}

// ParseBindings decodes YAML bindings. Actions and axes missing from data keep
// their default binding.
func ParseBindings(data []byte) (Bindings, error) {
	var parsed Bindings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Bindings{}, fmt.Errorf("parse bindings: %w", err)
	}
	return parsed.WithDefaults(), nil
}

// WithDefaults fills actions and axes missing from b with their default
// binding.
func (b Bindings) WithDefaults() Bindings {
	def := DefaultBindings()
	if b.Actions == nil {
		b.Actions = map[Action]ActionBinding{}
	}
	if b.Axes == nil {
		b.Axes = map[Axis]AxisBinding{}
	}
	for a, binding := range def.Actions {
		if _, ok := b.Actions[a]; !ok {
			b.Actions[a] = binding
		}
	}
	for a, binding := range def.Axes {
		if _, ok := b.Axes[a]; !ok {
			b.Axes[a] = binding
		}
	}
	return b
}

// YAML encodes b in the format ParseBindings reads.
func (b Bindings) YAML() ([]byte, error) {
	return yaml.Marshal(b)
}

// triggerYAML is the on-disk form of a DigitalTrigger; exactly one of Key,
// Mouse and Button is set.
type triggerYAML struct {
	Key     string   `yaml:"key,omitempty"`
	Mouse   string   `yaml:"mouse,omitempty"`
	Button  string   `yaml:"gamepad_button,omitempty"`
	Gamepad int      `yaml:"gamepad,omitempty"`
	Mods    []string `yaml:"mods,omitempty"`
}

func (t DigitalTrigger) MarshalYAML() (interface{}, error) {
	var out triggerYAML
	switch t.Kind {
	case KindKey:
		out.Key = t.Code
		for _, m := range modifierNames {
			if t.Mods&m.mod != 0 {
				out.Mods = append(out.Mods, m.name)
			}
		}
	case KindMouseButton:
		out.Mouse = t.Code
	case KindGamepadButton:
		out.Button = t.Code
		out.Gamepad = t.Gamepad
	}
	return out, nil
}

func (t *DigitalTrigger) UnmarshalYAML(value *yaml.Node) error {
	var in triggerYAML
	if err := value.Decode(&in); err != nil {
		return err
	}

	set := 0
	for _, s := range []string{in.Key, in.Mouse, in.Button} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("line %d: %w: need exactly one of key, mouse, gamepad_button", value.Line, ErrUnknownTrigger)
	}

	switch {
	case in.Key != "":
		var mods Modifiers
		for _, name := range in.Mods {
			found := false
			for _, m := range modifierNames {
				if strings.EqualFold(name, m.name) {
					mods |= m.mod
					found = true
				}
			}
			if !found {
				return fmt.Errorf("line %d: unknown modifier %q", value.Line, name)
			}
		}
		*t = KeyWith(in.Key, mods)
	case in.Mouse != "":
		*t = MouseButton(in.Mouse)
	default:
		*t = GamepadButton(in.Gamepad, in.Button)
	}
	return nil
}

type joystickYAML struct {
	Negative DigitalTrigger `yaml:"negative"`
	Positive DigitalTrigger `yaml:"positive"`
}

type axisYAML struct {
	Gamepad int    `yaml:"gamepad,omitempty"`
	Axis    string `yaml:"axis"`
}

type analogYAML struct {
	Joystick    *joystickYAML `yaml:"joystick,omitempty"`
	GamepadAxis *axisYAML     `yaml:"gamepad_axis,omitempty"`
}

func (t AnalogTrigger) MarshalYAML() (interface{}, error) {
	if t.Kind == KindGamepadAxis {
		return analogYAML{GamepadAxis: &axisYAML{Gamepad: t.Axis.Gamepad, Axis: t.Axis.Axis}}, nil
	}
	return analogYAML{Joystick: &joystickYAML{Negative: t.Negative, Positive: t.Positive}}, nil
}

func (t *AnalogTrigger) UnmarshalYAML(value *yaml.Node) error {
	var in analogYAML
	if err := value.Decode(&in); err != nil {
		return err
	}
	switch {
	case in.Joystick != nil && in.GamepadAxis == nil:
		*t = DigitalJoystick(in.Joystick.Negative, in.Joystick.Positive)
	case in.GamepadAxis != nil && in.Joystick == nil && in.GamepadAxis.Axis != "":
		*t = AxisTrigger(in.GamepadAxis.Gamepad, in.GamepadAxis.Axis)
	default:
		return fmt.Errorf("line %d: %w: need exactly one of joystick, gamepad_axis", value.Line, ErrUnknownTrigger)
	}
	return nil
}
