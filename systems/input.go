package systems

import (
	"github.com/automoto/wallhop/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	keys       []ebiten.Key
)

var mouseButtons = map[ebiten.MouseButton]string{
	ebiten.MouseButtonLeft:   "Left",
	ebiten.MouseButtonRight:  "Right",
	ebiten.MouseButtonMiddle: "Middle",
}

var gamepadButtons = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom:      "RightBottom",
	ebiten.StandardGamepadButtonRightRight:       "RightRight",
	ebiten.StandardGamepadButtonRightLeft:        "RightLeft",
	ebiten.StandardGamepadButtonRightTop:         "RightTop",
	ebiten.StandardGamepadButtonFrontTopLeft:     "FrontTopLeft",
	ebiten.StandardGamepadButtonFrontTopRight:    "FrontTopRight",
	ebiten.StandardGamepadButtonFrontBottomLeft:  "FrontBottomLeft",
	ebiten.StandardGamepadButtonFrontBottomRight: "FrontBottomRight",
	ebiten.StandardGamepadButtonCenterLeft:       "CenterLeft",
	ebiten.StandardGamepadButtonCenterRight:      "CenterRight",
	ebiten.StandardGamepadButtonLeftStick:        "LeftStick",
	ebiten.StandardGamepadButtonRightStick:       "RightStick",
	ebiten.StandardGamepadButtonLeftTop:          "LeftTop",
	ebiten.StandardGamepadButtonLeftBottom:       "LeftBottom",
	ebiten.StandardGamepadButtonLeftLeft:         "LeftLeft",
	ebiten.StandardGamepadButtonLeftRight:        "LeftRight",
	ebiten.StandardGamepadButtonCenterCenter:     "CenterCenter",
}

var gamepadAxes = map[ebiten.StandardGamepadAxis]string{
	ebiten.StandardGamepadAxisLeftStickHorizontal:  "LeftStickHorizontal",
	ebiten.StandardGamepadAxisLeftStickVertical:    "LeftStickVertical",
	ebiten.StandardGamepadAxisRightStickHorizontal: "RightStickHorizontal",
	ebiten.StandardGamepadAxisRightStickVertical:   "RightStickVertical",
}

// UpdateInput polls the devices into rec. Must run before the binder
// resolves the frame's input state.
func UpdateInput(rec *input.TriggerRecord) {
	mods := currentModifiers()

	keys = inpututil.AppendJustPressedKeys(keys[:0])
	for _, k := range keys {
		rec.Press(input.KeyWith(k.String(), mods))
	}
	keys = inpututil.AppendJustReleasedKeys(keys[:0])
	for _, k := range keys {
		rec.Release(input.Key(k.String()))
	}

	for b, name := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			rec.Press(input.MouseButton(name))
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			rec.Release(input.MouseButton(name))
		}
	}

	buttonSettings := input.DefaultButtonSettings
	axisSettings := input.DefaultAxisSettings
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for b, name := range gamepadButtons {
			value := ebiten.StandardGamepadButtonValue(id, b)
			rec.UpdateGamepadButton(input.GamepadButton(int(id), name), value, buttonSettings)
		}
		for a, name := range gamepadAxes {
			value := ebiten.StandardGamepadAxisValue(id, a)
			rec.UpdateGamepadAxis(input.GamepadAxis{Gamepad: int(id), Axis: name}, value, axisSettings)
		}
	}
}

func currentModifiers() input.Modifiers {
	var mods input.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= input.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= input.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= input.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= input.ModSuper
	}
	return mods
}
