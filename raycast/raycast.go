// Package raycast implements the closed-form grid-crossing stepper that
// finds where a ray first enters an occupied cell (§4.C). It has no
// dependency on the renderer; callers supply the two points that define a
// ray's current segment and get back a crossing point one grid line at a
// time.
package raycast

import (
	"math"

	"raygrid/config"
	vmath "raygrid/math"
	"raygrid/world"
)

// Hit is the result of casting a ray against a scene.
type Hit struct {
	// Point is the world-space position of the crossing.
	Point vmath.Vec2
	// CellX, CellY identify the cell the crossing lands in.
	CellX, CellY int
	// Tile is the tile occupying that cell.
	Tile world.Tile
	// Occupied reports whether Tile is a wall. When false, the cast ran
	// past FAR without striking anything and Point/Tile describe the
	// final step before giving up.
	Occupied bool
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// snap biases x to the next grid line strictly on the forward side of the
// motion along dx, using RaySnapEpsilon to avoid landing exactly on a
// boundary (§4.C).
func snap(x, dx float64) float64 {
	switch {
	case dx > 0:
		return math.Ceil(x + config.RaySnapEpsilon)
	case dx < 0:
		return math.Floor(x - config.RaySnapEpsilon)
	default:
		return x
	}
}

// Step advances the ray defined by p1->p2 to the next grid-line crossing
// beyond p2, returning whichever of the next vertical or horizontal
// gridline intersection is nearer to p2.
func Step(p1, p2 vmath.Vec2) vmath.Vec2 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	if dx == 0 {
		return vmath.Vec2{X: p2.X, Y: snap(p2.Y, dy)}
	}

	k := dy / dx
	nx := snap(p2.X, dx)
	vertical := vmath.Vec2{X: nx, Y: p2.Y + k*(nx-p2.X)}

	if k == 0 {
		return vertical
	}

	ny := snap(p2.Y, dy)
	horizontal := vmath.Vec2{X: p2.X + (ny-p2.Y)/k, Y: ny}

	if p2.SqrDistanceTo(horizontal) < p2.SqrDistanceTo(vertical) {
		return horizontal
	}
	return vertical
}

// HittingCell returns the grid cell on the forward side of the crossing
// from p1 to p2, per the same ε-bias Step uses.
func HittingCell(p1, p2 vmath.Vec2) (int, int) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	cx := int(math.Floor(p2.X + sign(dx)*config.RaySnapEpsilon))
	cy := int(math.Floor(p2.Y + sign(dy)*config.RaySnapEpsilon))
	return cx, cy
}

// Cast walks grid-line crossings from p1 through p2 until it lands in a
// wall cell or travels farther than config.Far from p1.
func Cast(scene *world.Scene, p1, p2 vmath.Vec2) Hit {
	origin := p1
	farSqr := config.Far * config.Far

	for {
		cx, cy := HittingCell(p1, p2)
		tile := scene.GetTileAt(cx, cy)
		if tile.IsWall() {
			return Hit{Point: p2, CellX: cx, CellY: cy, Tile: tile, Occupied: true}
		}
		if origin.SqrDistanceTo(p2) > farSqr {
			return Hit{Point: p2, CellX: cx, CellY: cy, Tile: tile, Occupied: false}
		}
		p1, p2 = p2, Step(p1, p2)
	}
}
