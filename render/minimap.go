package render

import (
	"math"

	"raygrid/config"
	"raygrid/core"
	vmath "raygrid/math"
	"raygrid/player"
	"raygrid/world"
)

var (
	minimapBackground = core.Color{R: 0x18 / 255.0, G: 0x18 / 255.0, B: 0x18 / 255.0, A: 1}
	minimapGridLine   = core.Color{R: 0x30 / 255.0, G: 0x30 / 255.0, B: 0x30 / 255.0, A: 1}
	minimapAccent     = core.ColorMagenta
)

// DrawMinimap overlays a scaled top-down view of the grid, the player,
// its FOV wedge, and (optionally) sprite markers directly onto the back
// buffer (§4.J). It runs after the 3D view, since it is drawn as an
// opaque patch in the corner; cmd/demo draws its FPS text after it.
func DrawMinimap(d *Display, scene *world.Scene, p *player.Player, sprites []Sprite, showSprites bool) {
	cellSize := float64(d.Width) * config.MinimapCellScale
	origin := vmath.NewVec2(cellSize, float64(d.Height)*config.MinimapCellScale)

	toScreen := func(world vmath.Vec2) vmath.Vec2 {
		return vmath.NewVec2(origin.X+world.X*cellSize, origin.Y+world.Y*cellSize)
	}

	fillRect(d, origin.X, origin.Y, float64(scene.Width)*cellSize, float64(scene.Height)*cellSize, minimapBackground)

	for y := 0; y < scene.Height; y++ {
		for x := 0; x < scene.Width; x++ {
			tile := scene.GetTileAt(x, y)
			if tile.Kind != world.SolidColor {
				continue
			}
			fillRect(d, origin.X+float64(x)*cellSize, origin.Y+float64(y)*cellSize, cellSize, cellSize, tile.Color)
		}
	}

	for x := 0; x <= scene.Width; x++ {
		gx := origin.X + float64(x)*cellSize
		drawLine(d, gx, origin.Y, gx, origin.Y+float64(scene.Height)*cellSize, minimapGridLine)
	}
	for y := 0; y <= scene.Height; y++ {
		gy := origin.Y + float64(y)*cellSize
		drawLine(d, origin.X, gy, origin.X+float64(scene.Width)*cellSize, gy, minimapGridLine)
	}

	fovLeftScreen := toScreen(p.FovLeft)
	fovRightScreen := toScreen(p.FovRight)
	playerScreen := toScreen(p.Position)
	drawLine(d, fovLeftScreen.X, fovLeftScreen.Y, fovRightScreen.X, fovRightScreen.Y, minimapAccent)
	drawLine(d, playerScreen.X, playerScreen.Y, fovLeftScreen.X, fovLeftScreen.Y, minimapAccent)
	drawLine(d, playerScreen.X, playerScreen.Y, fovRightScreen.X, fovRightScreen.Y, minimapAccent)

	playerSize := config.PlayerBoxSize * cellSize
	fillRect(d, playerScreen.X-playerSize/2, playerScreen.Y-playerSize/2, playerSize, playerSize, minimapAccent)

	if showSprites {
		for _, s := range sprites {
			sp := toScreen(s.Position)
			fillRect(d, sp.X-1, sp.Y-1, 2, 2, minimapAccent)
		}
	}
}

func fillRect(d *Display, x, y, w, h float64, c core.Color) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := int(math.Ceil(x + w))
	y1 := int(math.Ceil(y + h))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d.SetPixel(px, py, c)
		}
	}
}

// drawLine is a standard integer Bresenham rasterizer; the minimap's FOV
// wedge and grid lines are its only consumers.
func drawLine(d *Display, x0, y0, x1, y1 float64, c core.Color) {
	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))

	dx := int(math.Abs(float64(ix1 - ix0)))
	dy := -int(math.Abs(float64(iy1 - iy0)))
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	err := dx + dy

	x, y := ix0, iy0
	for {
		d.SetPixel(x, y, c)
		if x == ix1 && y == iy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}
