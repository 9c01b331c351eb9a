package physics

import "strings"

// CollisionSides is the set of sides a body was blocked on during one move.
type CollisionSides uint8

const (
	Up CollisionSides = 1 << iota
	Down
	Left
	Right
)

// Has reports whether every side in o is set.
func (s CollisionSides) Has(o CollisionSides) bool { return s&o == o }

func (s CollisionSides) IsEmpty() bool { return s == 0 }

func (s CollisionSides) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, side := range []struct {
		flag CollisionSides
		name string
	}{{Up, "up"}, {Down, "down"}, {Left, "left"}, {Right, "right"}} {
		if s&side.flag != 0 {
			parts = append(parts, side.name)
		}
	}
	return strings.Join(parts, "|")
}

// Side is a horizontal side of a body, used for wall contact.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}
