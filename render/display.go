package render

import (
	"raygrid/config"
	"raygrid/core"
)

// Display owns the engine's two flat per-frame buffers: the RGBA8 back
// buffer and the per-column depth buffer (§3, §5 — "two flat arrays of
// known size; no interior mutability tricks needed").
type Display struct {
	Width, Height int
	// Back is row-major RGBA8, 4 bytes per pixel, alpha initialized to
	// 255 and never written by the engine (§6).
	Back []uint8
	// ZBuffer holds, per column, the perpendicular wall distance written
	// by the wall renderer, or config.Far if the ray found nothing (I1).
	ZBuffer []float64
}

// NewDisplay allocates a display sized width x height, defaulting to the
// spec's 480x270 if either is zero.
func NewDisplay(width, height int) *Display {
	if width == 0 {
		width = config.ScreenWidth
	}
	if height == 0 {
		height = config.ScreenHeight
	}
	d := &Display{
		Width:   width,
		Height:  height,
		Back:    make([]uint8, width*height*4),
		ZBuffer: make([]float64, width),
	}
	d.Clear()
	return d
}

// Clear resets the back buffer to opaque black and the z-buffer to
// config.Far, ready for a new frame's E-then-D-then-F pass.
func (d *Display) Clear() {
	for i := 0; i < len(d.Back); i += 4 {
		d.Back[i+0] = 0
		d.Back[i+1] = 0
		d.Back[i+2] = 0
		d.Back[i+3] = 255
	}
	for x := range d.ZBuffer {
		d.ZBuffer[x] = config.Far
	}
}

func (d *Display) offset(x, y int) int {
	return (y*d.Width + x) * 4
}

// SetPixel writes c's RGB into (x,y), leaving alpha at its initialized
// value untouched per §6.
func (d *Display) SetPixel(x, y int, c core.Color) {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return
	}
	o := d.offset(x, y)
	r, g, b, _ := c.RGBA8()
	d.Back[o+0] = r
	d.Back[o+1] = g
	d.Back[o+2] = b
}

// BlendPixel alpha-composites c over the existing pixel at (x,y):
// dst <- dst*(1-a) + src*a (§4.F).
func (d *Display) BlendPixel(x, y int, c core.Color) {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return
	}
	o := d.offset(x, y)
	a := c.A
	if a >= 1 {
		d.SetPixel(x, y, c)
		return
	}
	if a <= 0 {
		return
	}
	sr, sg, sb, _ := c.RGBA8()
	d.Back[o+0] = uint8(float64(d.Back[o+0])*(1-a) + float64(sr)*a)
	d.Back[o+1] = uint8(float64(d.Back[o+1])*(1-a) + float64(sg)*a)
	d.Back[o+2] = uint8(float64(d.Back[o+2])*(1-a) + float64(sb)*a)
}
