package physics

import (
	"sort"

	"github.com/automoto/wallhop/shared/gamemath"
	"github.com/solarlune/resolv"
)

const (
	// resolv works on integer cells, so world units are scaled to
	// sub-tile precision before entering the broad phase.
	broadphaseScale = 16
	broadphaseCell  = 16
	// Padding in scaled units around every stored collider and query so
	// touching rects and resolv's shrunk cell bounds never hide a candidate.
	// Colliders thinner than one scaled unit would occupy no cell without it.
	broadphasePad = 2

	tagStatic = "static"
)

// Space is the per-tick snapshot of static colliders. It is rebuilt by Sync
// before any body moves and is read-only while bodies are moved.
type Space struct {
	origin gamemath.Vec2
	bounds gamemath.Rect
	space  *resolv.Space

	objects map[BodyID]*resolv.Object
	rects   map[BodyID]gamemath.Rect
	// Colliders reaching outside bounds are checked exhaustively.
	outside map[BodyID]struct{}
	probe   *resolv.Object
}

// NewSpace returns an empty snapshot covering bounds. Colliders outside
// bounds are still found, only without the broad phase.
func NewSpace(bounds gamemath.Rect) *Space {
	w := int(bounds.Width()*broadphaseScale) + broadphaseCell
	h := int(bounds.Height()*broadphaseScale) + broadphaseCell
	s := &Space{
		origin:  bounds.Min,
		bounds:  bounds,
		space:   resolv.NewSpace(w, h, broadphaseCell, broadphaseCell),
		objects: make(map[BodyID]*resolv.Object),
		rects:   make(map[BodyID]gamemath.Rect),
		outside: make(map[BodyID]struct{}),
	}
	s.probe = resolv.NewObject(0, 0, 1, 1)
	s.space.Add(s.probe)
	return s
}

// Sync replaces the snapshot with the static bodies in bodies. Other kinds
// are ignored.
func (s *Space) Sync(bodies []Body) {
	seen := make(map[BodyID]struct{}, len(bodies))
	for i := range bodies {
		b := &bodies[i]
		if b.Kind != Static {
			continue
		}
		seen[b.ID] = struct{}{}
		s.set(b.ID, b.WorldRect())
	}

	for id, obj := range s.objects {
		if _, ok := seen[id]; !ok {
			s.space.Remove(obj)
			delete(s.objects, id)
			delete(s.rects, id)
			delete(s.outside, id)
		}
	}
}

func (s *Space) set(id BodyID, rect gamemath.Rect) {
	s.rects[id] = rect
	if s.inBounds(rect) {
		delete(s.outside, id)
	} else {
		s.outside[id] = struct{}{}
	}

	x, y, w, h := s.toBroadphase(rect, broadphasePad)
	obj, ok := s.objects[id]
	if !ok {
		obj = resolv.NewObject(x, y, w, h, tagStatic)
		obj.Data = id
		s.objects[id] = obj
		s.space.Add(obj)
		return
	}
	obj.X, obj.Y, obj.W, obj.H = x, y, w, h
	obj.Update()
}

func (s *Space) inBounds(r gamemath.Rect) bool {
	return s.bounds.Contains(r.Min) && s.bounds.Contains(r.Max)
}

func (s *Space) toBroadphase(r gamemath.Rect, pad float64) (x, y, w, h float64) {
	x = (r.Min.X-s.origin.X)*broadphaseScale - pad
	y = (r.Min.Y-s.origin.Y)*broadphaseScale - pad
	w = r.Width()*broadphaseScale + 2*pad
	h = r.Height()*broadphaseScale + 2*pad
	return x, y, w, h
}

// Len returns the number of colliders in the snapshot.
func (s *Space) Len() int { return len(s.rects) }

// Rect returns the snapshot rect of a collider.
func (s *Space) Rect(id BodyID) (gamemath.Rect, bool) {
	r, ok := s.rects[id]
	return r, ok
}

// Overlapping returns the ids of colliders intersecting rect, skipping
// exclude, in ascending order.
func (s *Space) Overlapping(rect gamemath.Rect, exclude BodyID) []BodyID {
	var ids []BodyID
	s.visit(rect, exclude, func(id BodyID) bool {
		ids = append(ids, id)
		return true
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Intersects reports whether any collider other than exclude intersects rect.
func (s *Space) Intersects(rect gamemath.Rect, exclude BodyID) bool {
	found := false
	s.visit(rect, exclude, func(BodyID) bool {
		found = true
		return false
	})
	return found
}

func (s *Space) visit(rect gamemath.Rect, exclude BodyID, fn func(BodyID) bool) {
	x, y, w, h := s.toBroadphase(rect, broadphasePad)
	s.probe.X, s.probe.Y, s.probe.W, s.probe.H = x, y, w, h
	s.probe.Update()

	if check := s.probe.Check(0, 0, tagStatic); check != nil {
		for _, obj := range check.ObjectsByTags(tagStatic) {
			id := obj.Data.(BodyID)
			if id == exclude {
				continue
			}
			if _, far := s.outside[id]; far {
				continue
			}
			if s.rects[id].Intersects(rect) && !fn(id) {
				return
			}
		}
	}

	for id := range s.outside {
		if id == exclude {
			continue
		}
		if s.rects[id].Intersects(rect) && !fn(id) {
			return
		}
	}
}

// Colliding builds the predicate MoveBody needs for b: the footprint at a
// candidate position collides with any other static collider or with a grid
// cell in the body's mask.
func (s *Space) Colliding(b *Body, grid Grid) func(gamemath.Vec2) bool {
	return func(pos gamemath.Vec2) bool {
		rect := b.RectAt(pos)
		return s.Intersects(rect, b.ID) || TouchesGrid(rect, grid, b.Mask)
	}
}
