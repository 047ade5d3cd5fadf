package render

import (
	"math"

	"raygrid/config"
	vmath "raygrid/math"
	"raygrid/player"
	"raygrid/raycast"
	"raygrid/world"
)

// DrawWalls casts one ray per screen column, writes the per-column
// perpendicular depth into d.ZBuffer, and paints the wall strip for
// columns that struck an occupied cell (§4.D). Columns whose ray ran out
// to FAR without hitting anything get config.Far as their depth and are
// left unpainted, keeping whatever the floor/ceiling pass put there.
func DrawWalls(d *Display, scene *world.Scene, p *player.Player) {
	for x := 0; x < d.Width; x++ {
		drawWallAtColumn(d, scene, p, x)
	}
}

// drawWallAtColumn casts and paints column x. Split out so the parallel
// column-worker path (see parallel.go) can call the identical per-column
// logic the serial path uses — the two must be observationally
// indistinguishable (§5).
func drawWallAtColumn(d *Display, scene *world.Scene, p *player.Player, x int) {
	facing := vmath.Vec2{X: math.Cos(p.Direction), Y: math.Sin(p.Direction)}
	t := float64(x) / float64(d.Width)
	r := p.FovLeft.Lerp(p.FovRight, t)

	hit := raycast.Cast(scene, p.Position, r)
	if !hit.Occupied {
		d.ZBuffer[x] = config.Far
		return
	}
	v := hit.Point.Sub(p.Position)
	depth := v.Dot(facing)
	d.ZBuffer[x] = depth

	if hit.Tile.Kind == world.Empty {
		return
	}

	drawWallColumn(d, x, depth, hit, hit.Tile)
}

func drawWallColumn(d *Display, x int, depth float64, hit raycast.Hit, tile world.Tile) {
	if depth <= 0 {
		return
	}
	stripHeight := float64(d.Height) / depth
	centerY := float64(d.Height) / 2
	yTop := centerY - stripHeight/2

	shadow := 2 / depth
	if shadow > 1 {
		shadow = 1
	}

	startY := int(math.Max(0, math.Floor(yTop)))
	endY := int(math.Min(float64(d.Height-1), math.Floor(yTop+stripHeight)))

	switch tile.Kind {
	case world.SolidColor:
		c := tile.Color.Scale(shadow)
		for y := startY; y <= endY; y++ {
			d.SetPixel(x, y, c)
		}
	case world.Textured:
		u := wallTexU(hit.Point)
		tx := int(u * float64(tile.TexWidth))
		ceilStrip := math.Ceil(stripHeight)
		for y := startY; y <= endY; y++ {
			ty := int((float64(y) - yTop) * float64(tile.TexHeight) / ceilStrip)
			src := tile.At(tx, ty)
			d.SetPixel(x, y, src.Scale(shadow))
		}
	}
}

// wallTexU derives the horizontal texel coordinate from the fractional
// hit position within its cell (§4.D step 8). The axis whose fractional
// component sits on a cell boundary (within RaySnapEpsilon) identifies
// which face was struck; the other axis's fraction becomes u, mirrored
// on two of the four faces so textures aren't flipped.
func wallTexU(hit vmath.Vec2) float64 {
	const eps = 1e-6
	tx := hit.X - math.Floor(hit.X)
	ty := hit.Y - math.Floor(hit.Y)

	switch {
	case math.Abs(tx) < eps && ty > 0:
		return ty
	case math.Abs(tx-1) < eps && ty > 0:
		return 1 - ty
	case math.Abs(ty) < eps && tx > 0:
		return 1 - tx
	default:
		return tx
	}
}
