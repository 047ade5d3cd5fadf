package world

import (
	"math"

	vmath "raygrid/math"
)

// Scene is a rectangular grid of tiles, stored row-major. Rows shorter
// than Width are padded with Empty (§3).
type Scene struct {
	Width, Height int
	walls         []Tile
}

// NewScene builds a width-padded grid from a ragged list of rows.
// The grid width is the longest row's length.
func NewScene(rows [][]Tile) *Scene {
	height := len(rows)
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	s := &Scene{Width: width, Height: height, walls: make([]Tile, width*height)}
	for y, row := range rows {
		for x := 0; x < width; x++ {
			if x < len(row) {
				s.walls[y*width+x] = row[x]
			}
		}
	}
	return s
}

// Contains reports whether p falls inside the grid bounds.
func (s *Scene) Contains(p vmath.Vec2) bool {
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// GetTile returns the tile at p, or Empty outside the grid.
func (s *Scene) GetTile(p vmath.Vec2) Tile {
	if !s.Contains(p) {
		return Tile{Kind: Empty}
	}
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	return s.walls[y*s.Width+x]
}

// GetTileAt returns the tile at integer cell (cx,cy), or Empty outside
// the grid. Raycasting works in cell coordinates once a crossing has
// been resolved, so this avoids re-flooring an already-integer value.
func (s *Scene) GetTileAt(cx, cy int) Tile {
	if cx < 0 || cx >= s.Width || cy < 0 || cy >= s.Height {
		return Tile{Kind: Empty}
	}
	return s.walls[cy*s.Width+cx]
}

// IsWall reports whether the cell containing p is occupied.
func (s *Scene) IsWall(p vmath.Vec2) bool {
	return s.GetTile(p).IsWall()
}

// CanRectangleFitHere reports whether the axis-aligned box centered at
// (px,py) with size (sx,sy) overlaps no wall cell. Used by player
// collision (§4.B, §4.G); bombs and particles test a single point with
// IsWall instead.
func (s *Scene) CanRectangleFitHere(px, py, sx, sy float64) bool {
	minX := int(math.Floor(px - sx/2))
	maxX := int(math.Floor(px + sx/2))
	minY := int(math.Floor(py - sy/2))
	maxY := int(math.Floor(py + sy/2))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if s.GetTileAt(x, y).IsWall() {
				return false
			}
		}
	}
	return true
}

// checker is the deterministic (⌊x⌋+⌊y⌋) mod 2 rule shared by floor and
// ceiling lookups (§3, P4).
func checker(p vmath.Vec2) int {
	cx := int(math.Floor(p.X))
	cy := int(math.Floor(p.Y))
	return ((cx+cy)%2 + 2) % 2
}

// GetFloor returns the floor tone for the world point p. Floor/ceiling
// are not stored per-cell — they're a pure function of the floored
// coordinates (§3).
func (s *Scene) GetFloor(p vmath.Vec2) Tile {
	if checker(p) == 0 {
		return NewSolidColorTile(Floor1)
	}
	return NewSolidColorTile(Floor2)
}

// GetCeiling returns the ceiling tone for the world point p.
func (s *Scene) GetCeiling(p vmath.Vec2) Tile {
	if checker(p) == 0 {
		return NewSolidColorTile(Ceiling1)
	}
	return NewSolidColorTile(Ceiling2)
}
