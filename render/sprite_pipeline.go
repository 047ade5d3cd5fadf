package render

import (
	"math"
	"sort"

	"raygrid/config"
	"raygrid/core"
	vmath "raygrid/math"
	"raygrid/player"
	"raygrid/world"
)

// DrawSprites culls, projects, depth-sorts, and rasterizes the sprites
// queued this frame (§4.F). It must run after DrawWalls so d.ZBuffer
// holds the current frame's wall depths; sprites occluded by a nearer
// wall on every column they'd occupy leave the back buffer untouched
// (P3).
func DrawSprites(d *Display, p *player.Player, sprites []Sprite) {
	facing := vmath.Vec2{X: math.Cos(p.Direction), Y: math.Sin(p.Direction)}
	cosHalfFov := math.Cos(config.FOV / 2)
	fovSpan := p.FovLeft.DistanceTo(p.FovRight)

	visible := make([]Sprite, 0, len(sprites))
	for _, s := range sprites {
		sp := s.Position.Sub(p.Position)
		spl := sp.Length()
		if spl <= config.Near || spl >= config.Far {
			continue
		}
		dot := sp.Dot(facing) / spl
		if dot < cosHalfFov {
			continue
		}
		s.Pdist = sp.Dot(facing)
		if s.Pdist < config.Near || s.Pdist >= config.Far {
			continue
		}
		projected := p.Position.Add(sp.Normalize().Mul(config.Near / dot))
		s.T = p.FovLeft.DistanceTo(projected) / fovSpan
		visible = append(visible, s)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Pdist > visible[j].Pdist
	})

	for _, s := range visible {
		rasterizeSprite(d, s)
	}
}

func rasterizeSprite(d *Display, s Sprite) {
	cx := float64(d.Width) * s.T
	cy := float64(d.Height) / 2

	maxSize := float64(d.Height) / s.Pdist
	size := maxSize * s.Scale

	left := cx - size/2
	right := cx + size/2
	top := cy + maxSize/2 - maxSize*s.Z
	bottom := top + size

	startX := int(math.Max(0, math.Floor(left)))
	endX := int(math.Min(float64(d.Width-1), math.Ceil(right)))
	startY := int(math.Max(0, math.Floor(top)))
	endY := int(math.Min(float64(d.Height-1), math.Ceil(bottom)))

	for x := startX; x <= endX; x++ {
		if s.Pdist >= d.ZBuffer[x] {
			continue
		}
		u := (float64(x) - left) / (right - left)
		for y := startY; y <= endY; y++ {
			v := (float64(y) - top) / (bottom - top)
			src := sampleSprite(s.Image, u, v)
			d.BlendPixel(x, y, src)
		}
	}
}

func sampleSprite(img world.Tile, u, v float64) core.Color {
	switch img.Kind {
	case world.Textured:
		tx := int(u * float64(img.TexWidth))
		ty := int(v * float64(img.TexHeight))
		return img.At(tx, ty)
	default:
		return img.Color
	}
}
