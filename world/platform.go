package world

import (
	"github.com/automoto/wallhop/physics"
	"github.com/automoto/wallhop/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FloatingPlatform moves a static body back and forth along Travel, taking
// duration seconds per leg.
type FloatingPlatform struct {
	ID     physics.BodyID
	Start  gamemath.Vec2
	Travel gamemath.Vec2

	legs [2]*gween.Tween
	leg  int
}

func NewFloatingPlatform(id physics.BodyID, start, travel gamemath.Vec2, duration float64) *FloatingPlatform {
	d := float32(duration)
	return &FloatingPlatform{
		ID:     id,
		Start:  start,
		Travel: travel,
		legs: [2]*gween.Tween{
			gween.New(0, 1, d, ease.Linear),
			gween.New(1, 0, d, ease.Linear),
		},
	}
}

// Update advances the tween by dt seconds and returns the new position.
func (f *FloatingPlatform) Update(dt float64) gamemath.Vec2 {
	t, finished := f.legs[f.leg].Update(float32(dt))
	if finished {
		f.legs[f.leg].Reset()
		f.leg = 1 - f.leg
	}
	return f.Start.Add(f.Travel.Scale(float64(t)))
}
