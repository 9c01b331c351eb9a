package input

import (
	"errors"
	"testing"
)

func TestBinderActionTakesGreaterState(t *testing.T) {
	b := NewBinder(DefaultBindings())
	rec := b.Record()

	rec.Press(Key("Space"))
	rec.FinishFrame()
	rec.UpdateGamepadButton(GamepadButton(0, "RightBottom"), 1, DefaultButtonSettings)

	// Space is held, the gamepad button is just pressed.
	if s := b.ActionValue(ActionJump); s != Held {
		t.Errorf("ActionValue(jump) = %v, expected held", s)
	}

	rec.Release(Key("Space"))
	if s := b.ActionValue(ActionJump); s != JustPressed {
		t.Errorf("ActionValue(jump) = %v, expected just-pressed from the gamepad", s)
	}
}

func TestBinderDigitalJoystick(t *testing.T) {
	b := NewBinder(DefaultBindings())
	rec := b.Record()

	if v := b.AxisValue(AxisHorizontal); v != 0 {
		t.Errorf("idle axis = %v, expected 0", v)
	}

	rec.Press(Key("A"))
	if v := b.AxisValue(AxisHorizontal); v != -1 {
		t.Errorf("A pressed = %v, expected -1", v)
	}

	rec.Press(Key("D"))
	if v := b.AxisValue(AxisHorizontal); v != 0 {
		t.Errorf("A and D pressed = %v, expected 0", v)
	}

	rec.FinishFrame()
	rec.Release(Key("A"))
	if v := b.AxisValue(AxisHorizontal); v != 1 {
		t.Errorf("D held = %v, expected 1", v)
	}
}

func TestBinderAxisFallsBackToSecondary(t *testing.T) {
	b := NewBinder(DefaultBindings())
	rec := b.Record()
	stick := GamepadAxis{Gamepad: 0, Axis: "LeftStickHorizontal"}

	rec.UpdateGamepadAxis(stick, -0.5, DefaultAxisSettings)
	if v := b.AxisValue(AxisHorizontal); v != -0.5 {
		t.Errorf("stick only = %v, expected -0.5", v)
	}

	rec.Press(Key("D"))
	if v := b.AxisValue(AxisHorizontal); v != 1 {
		t.Errorf("keyboard and stick = %v, expected the keyboard to win", v)
	}
}

func TestBinderResolve(t *testing.T) {
	b := NewBinder(DefaultBindings())
	b.Record().Press(Key("Escape"))
	b.Record().Press(Key("A"))

	s := b.Resolve()
	if s.Action(ActionPause) != JustPressed {
		t.Errorf("pause = %v, expected just-pressed", s.Action(ActionPause))
	}
	if s.Action(ActionJump) != Released {
		t.Errorf("jump = %v, expected released", s.Action(ActionJump))
	}
	if s.Axis(AxisHorizontal) != -1 {
		t.Errorf("horizontal = %v, expected -1", s.Axis(AxisHorizontal))
	}
	if s.Action(ActionCount) != Released || s.Axis(AxisCount) != 0 {
		t.Error("out of range lookups should be neutral")
	}
}

func TestParseBindings(t *testing.T) {
	data := []byte(`
actions:
  jump:
    primary: {key: W}
    secondary: {gamepad_button: RightRight, gamepad: 1}
  respawn:
    primary: {key: R, mods: [ctrl]}
axes:
  horizontal:
    primary:
      gamepad_axis: {axis: LeftStickHorizontal}
    secondary:
      joystick:
        negative: {key: ArrowLeft}
        positive: {key: ArrowRight}
`)

	bindings, err := ParseBindings(data)
	if err != nil {
		t.Fatalf("ParseBindings() error = %v", err)
	}

	jump := bindings.Actions[ActionJump]
	if jump.Primary != Key("W") {
		t.Errorf("jump primary = %v", jump.Primary)
	}
	if jump.Secondary == nil || *jump.Secondary != GamepadButton(1, "RightRight") {
		t.Errorf("jump secondary = %v", jump.Secondary)
	}
	if got := bindings.Actions[ActionRespawn].Primary; got != KeyWith("R", ModCtrl) {
		t.Errorf("respawn primary = %v", got)
	}
	if got := bindings.Actions[ActionPause].Primary; got != Key("Escape") {
		t.Errorf("pause should keep its default, got %v", got)
	}

	horizontal := bindings.Axes[AxisHorizontal]
	if horizontal.Primary.Kind != KindGamepadAxis || horizontal.Primary.Axis.Axis != "LeftStickHorizontal" {
		t.Errorf("horizontal primary = %+v", horizontal.Primary)
	}
	if horizontal.Secondary == nil || horizontal.Secondary.Negative != Key("ArrowLeft") {
		t.Errorf("horizontal secondary = %+v", horizontal.Secondary)
	}
}

func TestParseBindingsErrors(t *testing.T) {
	tests := map[string]string{
		"two sources":  "actions:\n  jump:\n    primary: {key: W, mouse: Left}\n",
		"no source":    "actions:\n  jump:\n    primary: {}\n",
		"empty analog": "axes:\n  horizontal:\n    primary: {}\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBindings([]byte(data))
			if !errors.Is(err, ErrUnknownTrigger) {
				t.Errorf("ParseBindings() error = %v, expected ErrUnknownTrigger", err)
			}
		})
	}

	if _, err := ParseBindings([]byte("actions:\n  fly:\n    primary: {key: F}\n")); err == nil {
		t.Error("expected an error for an unknown action")
	}
}

func TestBindingsRoundTripThroughYAML(t *testing.T) {
	out, err := DefaultBindings().YAML()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	parsed, err := ParseBindings(out)
	if err != nil {
		t.Fatalf("ParseBindings() error = %v\n%s", err, out)
	}
	if got := parsed.Actions[ActionJump]; got.Primary != Key("Space") || *got.Secondary != GamepadButton(0, "RightBottom") {
		t.Errorf("jump binding = %+v", got)
	}
}
