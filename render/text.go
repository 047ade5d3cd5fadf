package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"raygrid/core"
)

// asImage aliases d.Back as an *image.RGBA with no copy, letting the
// golang.org/x/image/font rasterizer draw straight
// into the engine's own back buffer.
func (d *Display) asImage() *image.RGBA {
	return &image.RGBA{
		Pix:    d.Back,
		Stride: d.Width * 4,
		Rect:   image.Rect(0, 0, d.Width, d.Height),
	}
}

// DrawText rasterizes text at (x,y) — the baseline's left edge — using
// the x/image basicfont 7x13 bitmap face, the HUD/debug-overlay text path (§4.I,
// §4.M). There is no glyph atlas to build: basicfont.Face7x13 is a
// fixed bitmap compiled into the font package, so this draws directly,
// unlike the vertex-atlas approach a GPU text renderer needs.
func DrawText(d *Display, text string, x, y int, c core.Color) {
	r, g, b, a := c.RGBA8()
	drawer := &font.Drawer{
		Dst:  d.asImage(),
		Src:  image.NewUniform(color.RGBA{R: r, G: g, B: b, A: a}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}

// TextLineHeight is the fixed line pitch of basicfont.Face7x13, used by
// callers stacking multiple DrawText lines.
const TextLineHeight = 13
