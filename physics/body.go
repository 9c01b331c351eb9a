// Package physics implements the kinematic collision core: a swept AABB mover
// that resolves motion per axis against the level grid and a snapshot of
// static colliders.
package physics

import (
	"github.com/automoto/wallhop/shared/gamemath"
	"github.com/automoto/wallhop/shared/leveldata"
)

// BodyID identifies a body inside one world. Zero is never assigned.
type BodyID int

// BodyKind is the closed set of body roles.
type BodyKind uint8

const (
	// Kinematic bodies are moved by MoveBody.
	Kinematic BodyKind = iota
	// Static bodies block kinematic ones and are part of the Space snapshot.
	Static
	// Sensor bodies never block anything; they only report overlaps.
	Sensor
)

func (k BodyKind) String() string {
	switch k {
	case Kinematic:
		return "kinematic"
	case Static:
		return "static"
	case Sensor:
		return "sensor"
	}
	return "unknown"
}

// Orientation selects which way the y axis points.
type Orientation uint8

const (
	// YDown is screen space: positive y points down.
	YDown Orientation = iota
	// YUp is the mathematical convention: positive y points up.
	YUp
)

// Down returns the sign a downward y velocity has.
func (o Orientation) Down() float64 {
	if o == YUp {
		return -1
	}
	return 1
}

// Body is a simulated axis-aligned box. Position is only changed by MoveBody
// and Teleport.
type Body struct {
	ID          BodyID
	Kind        BodyKind
	Position    gamemath.Vec2
	Velocity    gamemath.Vec2
	Rect        gamemath.Rect // local footprint, relative to Position
	Mask        leveldata.LevelTile
	Orientation Orientation
}

// NewBody returns a body of kind at pos with a size footprint anchored at its
// minimum corner. The mask defaults to solid tiles.
func NewBody(id BodyID, kind BodyKind, pos, size gamemath.Vec2) Body {
	return Body{
		ID:       id,
		Kind:     kind,
		Position: pos,
		Rect:     gamemath.RectFromMinSize(gamemath.Vec2{}, size),
		Mask:     leveldata.Solid,
	}
}

// WorldRect returns the footprint at the current position.
func (b *Body) WorldRect() gamemath.Rect { return b.RectAt(b.Position) }

// RectAt returns the footprint translated to pos.
func (b *Body) RectAt(pos gamemath.Vec2) gamemath.Rect { return b.Rect.Translate(pos) }

// Teleport moves the body to pos and stops it.
func (b *Body) Teleport(pos gamemath.Vec2) {
	b.Position = pos
	b.Velocity = gamemath.Vec2{}
}

func (b *Body) horizontalSide() CollisionSides {
	if b.Velocity.X > 0 {
		return Right
	}
	return Left
}

func (b *Body) verticalSide() CollisionSides {
	if b.Velocity.Y*b.Orientation.Down() > 0 {
		return Down
	}
	return Up
}
