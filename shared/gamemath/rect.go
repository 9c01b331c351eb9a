package gamemath

// Rect is an axis-aligned rectangle. Min is never greater than Max on
// either axis.
type Rect struct {
	Min, Max Vec2
}

// RectFromMinSize builds a rect from its minimum corner and size.
func RectFromMinSize(min, size Vec2) Rect {
	return Rect{Min: min, Max: min.Add(size)}
}

func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Size() Vec2 { return r.Max.Sub(r.Min) }

func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Translate moves the rect by d, keeping its size.
func (r Rect) Translate(d Vec2) Rect {
	return RectFromMinSize(r.Min.Add(d), r.Size())
}

// Intersects reports whether r and o overlap. Edges are inclusive, so
// rects that only touch intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X &&
		o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y &&
		o.Min.Y <= r.Max.Y
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Corners returns the four corners: min, (max.x, min.y), (min.x, max.y), max.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		r.Min,
		{r.Max.X, r.Min.Y},
		{r.Min.X, r.Max.Y},
		r.Max,
	}
}
