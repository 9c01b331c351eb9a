package physics

import (
	"github.com/automoto/wallhop/shared/gamemath"
	"github.com/automoto/wallhop/shared/leveldata"
)

// Grid answers which tile categories a world cell holds. *leveldata.Level
// implements it.
type Grid interface {
	TileAt(cell gamemath.IVec2) leveldata.LevelTile
}

// wallProbeDistance is how far past its side a body looks for a wall to
// slide on.
const wallProbeDistance = 0.1

// TouchesGrid reports whether any corner cell of rect carries a category in
// mask. Only the four corners are sampled, which assumes colliders are about
// one tile in size; thin obstacles between corners of larger rects are
// missed.
func TouchesGrid(rect gamemath.Rect, grid Grid, mask leveldata.LevelTile) bool {
	if grid == nil {
		return false
	}
	for _, corner := range rect.Corners() {
		if grid.TileAt(corner.Floor()).Has(mask) {
			return true
		}
	}
	return false
}

// WallSide probes just past the left and right edges of rect for solid
// cells. Left wins when both sides touch a wall.
func WallSide(rect gamemath.Rect, grid Grid) (Side, bool) {
	if grid == nil {
		return SideLeft, false
	}
	solidAt := func(x float64) bool {
		return grid.TileAt(gamemath.V(x, rect.Min.Y).Floor()).Has(leveldata.Solid) ||
			grid.TileAt(gamemath.V(x, rect.Max.Y).Floor()).Has(leveldata.Solid)
	}

	if solidAt(rect.Min.X - wallProbeDistance) {
		return SideLeft, true
	}
	if solidAt(rect.Max.X + wallProbeDistance) {
		return SideRight, true
	}
	return SideLeft, false
}
