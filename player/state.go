package player

import "github.com/automoto/wallhop/physics"

// Mode is the kind of a State.
type Mode uint8

const (
	ModeAirborne Mode = iota
	ModeGrounded
	ModeSliding
)

// State is Grounded, Airborne or Sliding against a wall on Side. The zero
// value is Airborne.
type State struct {
	Mode Mode
	Side physics.Side // only meaningful while sliding
}

func Airborne() State { return State{Mode: ModeAirborne} }

func Grounded() State { return State{Mode: ModeGrounded} }

func Sliding(side physics.Side) State { return State{Mode: ModeSliding, Side: side} }

// SlidingSide returns the wall side when s is Sliding.
func (s State) SlidingSide() (physics.Side, bool) {
	return s.Side, s.Mode == ModeSliding
}

func (s State) String() string {
	switch s.Mode {
	case ModeGrounded:
		return "grounded"
	case ModeSliding:
		return "sliding-" + s.Side.String()
	}
	return "airborne"
}
