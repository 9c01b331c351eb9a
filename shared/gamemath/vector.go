// Package gamemath holds the small value types and scalar helpers shared by
// the simulation packages. It has no dependencies on ebitengine or resolv.
package gamemath

import "math"

// Vec2 is a 2D vector in world units. One unit is one level tile.
type Vec2 struct {
	X, Y float64
}

// IVec2 addresses a world cell.
type IVec2 struct {
	X, Y int
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector pointing along v, or the zero vector
// when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Floor returns the cell containing v.
func (v Vec2) Floor() IVec2 {
	return IVec2{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

func (c IVec2) Add(o IVec2) IVec2 { return IVec2{c.X + o.X, c.Y + o.Y} }

// Vec returns the cell's minimum corner.
func (c IVec2) Vec() Vec2 { return Vec2{float64(c.X), float64(c.Y)} }
