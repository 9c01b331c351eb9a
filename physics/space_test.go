package physics

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/automoto/wallhop/shared/gamemath"
	"github.com/automoto/wallhop/shared/leveldata"
)

func staticBody(id BodyID, x, y, w, h float64) Body {
	return NewBody(id, Static, gamemath.V(x, y), gamemath.V(w, h))
}

func newTestSpace() *Space {
	s := NewSpace(gamemath.RectFromMinSize(gamemath.V(0, 0), gamemath.V(20, 10)))
	s.Sync([]Body{
		staticBody(10, 2, 5, 3, 1),
		staticBody(11, 8, 2, 1, 1),
		NewBody(12, Sensor, gamemath.V(0, 0), gamemath.V(1, 1)),
		staticBody(13, -5, -5, 1, 1),
	})
	return s
}

func TestSpaceSyncOnlyKeepsStaticBodies(t *testing.T) {
	s := newTestSpace()
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", s.Len())
	}
	if _, ok := s.Rect(12); ok {
		t.Error("sensor body should not be part of the snapshot")
	}
}

func TestSpaceIntersects(t *testing.T) {
	s := newTestSpace()

	tests := []struct {
		name     string
		rect     gamemath.Rect
		exclude  BodyID
		expected bool
	}{
		{"touching platform top", gamemath.RectFromMinSize(gamemath.V(4.5, 4), gamemath.V(1, 1)), 0, true},
		{"inside platform", gamemath.RectFromMinSize(gamemath.V(3, 5.2), gamemath.V(0.5, 0.5)), 0, true},
		{"empty area", gamemath.RectFromMinSize(gamemath.V(15, 8), gamemath.V(1, 1)), 0, false},
		{"excluded self", gamemath.RectFromMinSize(gamemath.V(4.5, 4), gamemath.V(1, 1)), 10, false},
		{"collider outside bounds", gamemath.RectFromMinSize(gamemath.V(-5.5, -5.5), gamemath.V(1, 1)), 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Intersects(tc.rect, tc.exclude); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSpaceOverlapping(t *testing.T) {
	s := newTestSpace()

	got := s.Overlapping(gamemath.RectFromMinSize(gamemath.V(0, 0), gamemath.V(20, 10)), 0)
	if expected := []BodyID{10, 11}; !reflect.DeepEqual(got, expected) {
		t.Errorf("Overlapping() = %v, expected %v", got, expected)
	}
}

func TestSpaceSyncMovesAndRemoves(t *testing.T) {
	s := newTestSpace()
	s.Sync([]Body{staticBody(10, 2, 8, 3, 1)})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", s.Len())
	}
	if s.Intersects(gamemath.RectFromMinSize(gamemath.V(3, 5.2), gamemath.V(0.5, 0.5)), 0) {
		t.Error("platform still found at its old position")
	}
	if !s.Intersects(gamemath.RectFromMinSize(gamemath.V(3, 8.2), gamemath.V(0.5, 0.5)), 0) {
		t.Error("platform not found at its new position")
	}
	if _, ok := s.Rect(11); ok {
		t.Error("removed collider is still in the snapshot")
	}
}

func randomRect(rng *rand.Rand) gamemath.Rect {
	size := func() float64 {
		if rng.Intn(3) == 0 {
			return 0.01 + rng.Float64()*0.05
		}
		return 0.1 + rng.Float64()*3
	}
	return gamemath.RectFromMinSize(
		gamemath.V(rng.Float64()*22-1, rng.Float64()*12-1),
		gamemath.V(size(), size()),
	)
}

func TestSpaceMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 300; i++ {
		s := NewSpace(gamemath.RectFromMinSize(gamemath.V(0, 0), gamemath.V(20, 10)))
		var bodies []Body
		for id := BodyID(1); id <= 12; id++ {
			r := randomRect(rng)
			bodies = append(bodies, staticBody(id, r.Min.X, r.Min.Y, r.Width(), r.Height()))
		}
		s.Sync(bodies)

		for j := 0; j < 20; j++ {
			query := randomRect(rng)
			var expected []BodyID
			for _, b := range bodies {
				if b.WorldRect().Intersects(query) {
					expected = append(expected, b.ID)
				}
			}

			got := s.Overlapping(query, 0)
			if len(got) != len(expected) || (len(got) > 0 && !reflect.DeepEqual(got, expected)) {
				t.Fatalf("case %d/%d: Overlapping(%v) = %v, expected %v", i, j, query, got, expected)
			}
			if hit := s.Intersects(query, 0); hit != (len(expected) > 0) {
				t.Fatalf("case %d/%d: Intersects(%v) = %v, expected %v", i, j, query, hit, !hit)
			}
		}
	}
}

func TestSpaceFindsThinColliders(t *testing.T) {
	s := NewSpace(gamemath.RectFromMinSize(gamemath.V(0, 0), gamemath.V(20, 10)))
	s.Sync([]Body{staticBody(2, 6.01, 0, 0.03, 10)})

	query := gamemath.RectFromMinSize(gamemath.V(5.5, 3), gamemath.V(1, 1))
	if !s.Intersects(query, 0) {
		t.Error("thin wall not found by Intersects")
	}
	if got := s.Overlapping(query, 0); !reflect.DeepEqual(got, []BodyID{2}) {
		t.Errorf("Overlapping() = %v, expected [2]", got)
	}

	b := unitBody(gamemath.V(4.9, 3))
	b.Velocity = gamemath.V(60, 0)
	sides := MoveBody(b, gamemath.V(1, 0), s.Colliding(b, nil))

	if sides != Right {
		t.Errorf("sides = %v, expected right", sides)
	}
	if r := b.WorldRect(); r.Max.X >= 6.01 {
		t.Errorf("body ended at %v, inside the thin wall", r)
	}
}

func TestSpaceCollidingStopsBodyOnPlatform(t *testing.T) {
	s := newTestSpace()
	b := unitBody(gamemath.V(2.5, 3.5))
	b.Velocity = gamemath.V(0, 120)

	sides := MoveBody(b, b.Velocity.Scale(dt), s.Colliding(b, nil))

	if sides != Down {
		t.Fatalf("sides = %v, expected down", sides)
	}
	if bottom := b.WorldRect().Max.Y; bottom >= 5 || bottom < 5-2*MaxStepLength {
		t.Errorf("bottom = %v, expected just above the platform at 5", bottom)
	}
}

func TestSpaceCollidingUsesGridMask(t *testing.T) {
	s := NewSpace(gamemath.RectFromMinSize(gamemath.V(0, 0), gamemath.V(4, 4)))
	grid := testGrid{{X: 1, Y: 1}: leveldata.Solid}
	b := unitBody(gamemath.V(0, 0))

	colliding := s.Colliding(b, grid)
	if !colliding(gamemath.V(0.5, 0.5)) {
		t.Error("expected the solid cell to collide")
	}
	b.Mask = leveldata.Hazard
	if colliding(gamemath.V(0.5, 0.5)) {
		t.Error("solid cell should not collide with a hazard-only mask")
	}
}

func TestWallSide(t *testing.T) {
	walls := testGrid{}.fill(0, 0, 0, 5, leveldata.Solid).fill(3, 0, 3, 5, leveldata.Solid)
	rightOnly := testGrid{}.fill(3, 0, 3, 5, leveldata.Solid)

	tests := []struct {
		name    string
		grid    Grid
		x       float64
		side    Side
		sliding bool
	}{
		{"right wall", rightOnly, 2.05, SideRight, true},
		{"left wall", walls, 1.05, SideLeft, true},
		{"left wins", testGrid{}.fill(0, 0, 0, 5, leveldata.Solid).fill(2, 0, 2, 5, leveldata.Solid), 1.05, SideLeft, true},
		{"no wall", rightOnly, 1.5, SideLeft, false},
		{"nil grid", nil, 1.05, SideLeft, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rect := gamemath.RectFromMinSize(gamemath.V(tc.x, 2), gamemath.V(0.9, 1))
			side, ok := WallSide(rect, tc.grid)
			if ok != tc.sliding || (ok && side != tc.side) {
				t.Errorf("WallSide() = %v, %v, expected %v, %v", side, ok, tc.side, tc.sliding)
			}
		})
	}
}

func TestDetectBodies(t *testing.T) {
	sensor := NewBody(5, Sensor, gamemath.V(0, 0), gamemath.V(2, 2))
	sensor.Mask = leveldata.Hazard
	grid := testGrid{{X: 2, Y: 2}: leveldata.Hazard}

	others := []Body{
		NewBody(1, Kinematic, gamemath.V(1, 1), gamemath.V(1, 1)),
		NewBody(2, Kinematic, gamemath.V(5, 5), gamemath.V(1, 1)),
		sensor,
	}

	sensed := DetectBodies(&sensor, others, grid)
	if !reflect.DeepEqual(sensed.Others, []BodyID{1}) {
		t.Errorf("Others = %v, expected [1]", sensed.Others)
	}
	if !sensed.World || !sensed.Touches(1) || sensed.Touches(2) {
		t.Errorf("unexpected sensed result %+v", sensed)
	}
}

func TestDetectStatic(t *testing.T) {
	s := newTestSpace()
	sensor := NewBody(20, Sensor, gamemath.V(7.5, 1.5), gamemath.V(1, 1))

	sensed := s.DetectStatic(&sensor, nil)
	if !sensed.Touches(11) || sensed.World {
		t.Errorf("unexpected sensed result %+v", sensed)
	}
}
