package physics

import "github.com/automoto/wallhop/shared/gamemath"

// MaxStepLength bounds every sub-step of MoveBody. It stays below half the
// smallest collider dimension (one tile) so no step can skip a wall.
const MaxStepLength = 0.1

// MoveBody advances b by delta in sub-steps of at most MaxStepLength and
// resolves collisions one axis at a time. isColliding must report whether the
// body footprint at a candidate position overlaps blocking geometry.
//
// A step blocked only on X stops horizontal motion and keeps sliding on Y, and
// the converse for Y. When both axes stay blocked the body returns to its last
// free position, loses all velocity and the sweep ends.
func MoveBody(b *Body, delta gamemath.Vec2, isColliding func(gamemath.Vec2) bool) CollisionSides {
	var sides CollisionSides
	if delta.IsZero() {
		return sides
	}

	toMove := delta
	step := deltaStep(toMove)

	for toMove.Len() >= step.Len() {
		last := b.Position
		b.Position = b.Position.Add(step)
		toMove = toMove.Sub(step)

		if !isColliding(b.Position) {
			continue
		}

		b.Position.X = last.X
		if !isColliding(b.Position) {
			sides |= b.horizontalSide()
			b.Velocity.X = 0
			toMove.X = 0
		} else {
			b.Position.X += step.X
			b.Position.Y = last.Y
			if !isColliding(b.Position) {
				sides |= b.verticalSide()
				b.Velocity.Y = 0
				toMove.Y = 0
			} else {
				b.Position = last
				sides |= b.horizontalSide() | b.verticalSide()
				b.Velocity = gamemath.Vec2{}
				return sides
			}
		}

		if toMove.IsZero() {
			break
		}
		step = deltaStep(toMove)
	}

	return sides
}

func deltaStep(delta gamemath.Vec2) gamemath.Vec2 {
	if delta.Len() <= MaxStepLength {
		return delta
	}
	return delta.Normalize().Scale(MaxStepLength)
}
