package render

import (
	"math"

	"raygrid/config"
	"raygrid/player"
	"raygrid/world"
)

// DrawFloorCeiling paints the lower half of the back buffer as floor and
// mirrors each row into the matching upper-half ceiling row (§4.E). It
// must run before DrawWalls so wall strips composite over it, and before
// the sprite pass so sprites can test against a fully painted buffer.
func DrawFloorCeiling(d *Display, scene *world.Scene, p *player.Player) {
	for y := d.Height / 2; y < d.Height; y++ {
		drawFloorCeilingRow(d, scene, p, y)
	}
}

// drawFloorCeilingRow paints floor row y and its mirrored ceiling row in
// one pass. Split out so the parallel row-worker path (parallel.go) can
// reuse the identical per-row logic the serial path uses.
func drawFloorCeilingRow(d *Display, scene *world.Scene, p *player.Player, y int) {
	halfFov := config.FOV / 2
	fovSpan := config.Near / math.Cos(halfFov)

	pz := float64(d.Height) / 2
	dirLeft := p.FovLeft.Sub(p.Position).Normalize()
	dirRight := p.FovRight.Sub(p.Position).Normalize()

	sz := d.Height - y - 1
	ap := pz - float64(sz)
	if ap == 0 {
		return
	}
	b := (fovSpan / ap) * pz / config.Near

	left := p.Position.Add(dirLeft.Mul(b))
	right := p.Position.Add(dirRight.Mul(b))

	for x := 0; x < d.Width; x++ {
		t := float64(x) / float64(d.Width)
		worldPoint := left.Lerp(right, t)
		dist := p.Position.DistanceTo(worldPoint)

		floorTile := scene.GetFloor(worldPoint)
		d.SetPixel(x, y, floorTile.Color.Scale(dist))

		ceilTile := scene.GetCeiling(worldPoint)
		d.SetPixel(x, sz, ceilTile.Color.Scale(dist))
	}
}
