package world

import "raygrid/core"

// TileKind tags the variant held by a Tile.
type TileKind int

const (
	// Empty cells are walkable and never occlude a ray.
	Empty TileKind = iota
	// SolidColor cells shade a wall strip from a flat color.
	SolidColor
	// Textured cells sample a wall strip from an RGBA8 image.
	Textured
)

// Tile is a tagged value for one grid cell. A cell is a wall iff its Kind
// is not Empty.
type Tile struct {
	Kind TileKind

	// valid when Kind == SolidColor
	Color core.Color

	// valid when Kind == Textured
	TexWidth, TexHeight int
	Pixels              []core.Color // row-major, TexWidth*TexHeight
}

// NewSolidColorTile builds a flat-shaded wall tile.
func NewSolidColorTile(c core.Color) Tile {
	return Tile{Kind: SolidColor, Color: c}
}

// NewTexturedTile builds a textured wall tile. pixels must have
// exactly w*h entries, row-major.
func NewTexturedTile(w, h int, pixels []core.Color) Tile {
	return Tile{Kind: Textured, TexWidth: w, TexHeight: h, Pixels: pixels}
}

// IsWall reports whether the tile occupies its cell.
func (t Tile) IsWall() bool {
	return t.Kind != Empty
}

// At returns the texel at integer texel coordinates (tx,ty), clamping
// each to the texture's bounds. A tile with zero width or height returns
// black.
func (t Tile) At(tx, ty int) core.Color {
	if t.TexWidth == 0 || t.TexHeight == 0 {
		return core.ColorBlack
	}
	if tx < 0 {
		tx = 0
	} else if tx >= t.TexWidth {
		tx = t.TexWidth - 1
	}
	if ty < 0 {
		ty = 0
	} else if ty >= t.TexHeight {
		ty = t.TexHeight - 1
	}
	return t.Pixels[ty*t.TexWidth+tx]
}

// Floor/ceiling checker tones (§3, P4). "Farther = brighter" shading in
// package render deliberately amplifies these rather than correcting
// for the apparent physical inversion — see DESIGN.md.
var (
	Floor1   = core.Color{R: 0.094, G: 0.144, B: 0.144, A: 1}
	Floor2   = core.Color{R: 0.188, G: 0.238, B: 0.238, A: 1}
	Ceiling1 = core.Color{R: 0.144, G: 0.094, B: 0.094, A: 1}
	Ceiling2 = core.Color{R: 0.238, G: 0.188, B: 0.188, A: 1}
)
