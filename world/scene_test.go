package world

import (
	"testing"

	vmath "raygrid/math"
)

func wallRow(n int) []Tile {
	row := make([]Tile, n)
	for i := range row {
		row[i] = NewSolidColorTile(Floor1)
	}
	return row
}

func TestSceneRaggedRowsPadWithEmpty(t *testing.T) {
	rows := [][]Tile{
		wallRow(3),
		{NewSolidColorTile(Floor1)},
	}
	s := NewScene(rows)
	if s.Width != 3 || s.Height != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", s.Width, s.Height)
	}
	if s.GetTileAt(1, 1).IsWall() {
		t.Errorf("short row should pad remaining cells with Empty")
	}
	if !s.GetTileAt(0, 1).IsWall() {
		t.Errorf("present cell in short row should be preserved")
	}
}

func TestSceneContainsAndIsWall(t *testing.T) {
	rows := [][]Tile{wallRow(2), wallRow(2)}
	s := NewScene(rows)
	if !s.Contains(vmath.NewVec2(0.5, 0.5)) {
		t.Errorf("expected point inside grid to be contained")
	}
	if s.Contains(vmath.NewVec2(-0.1, 0)) {
		t.Errorf("expected negative coordinate to be out of bounds")
	}
	if s.Contains(vmath.NewVec2(2, 0)) {
		t.Errorf("expected x==width to be out of bounds")
	}
	if !s.IsWall(vmath.NewVec2(0.5, 0.5)) {
		t.Errorf("every cell in this fixture is a wall")
	}
}

// TestGetFloorCheckerPattern is (P4): floor/ceiling tone alternates by
// (floor(x)+floor(y)) mod 2, independent of any stored tile data.
func TestGetFloorCheckerPattern(t *testing.T) {
	s := NewScene([][]Tile{wallRow(4)})
	cases := []struct {
		p    vmath.Vec2
		want Tile
	}{
		{vmath.NewVec2(0.5, 0.5), NewSolidColorTile(Floor1)},
		{vmath.NewVec2(1.5, 0.5), NewSolidColorTile(Floor2)},
		{vmath.NewVec2(0.5, 1.5), NewSolidColorTile(Floor2)},
		{vmath.NewVec2(1.5, 1.5), NewSolidColorTile(Floor1)},
	}
	for _, c := range cases {
		got := s.GetFloor(c.p)
		if got.Color != c.want.Color {
			t.Errorf("GetFloor(%v): expected %v, got %v", c.p, c.want.Color, got.Color)
		}
	}
}

func TestGetCeilingMatchesFloorParity(t *testing.T) {
	s := NewScene([][]Tile{wallRow(2)})
	p := vmath.NewVec2(0.5, 0.5)
	if s.GetCeiling(p).Color != Ceiling1 {
		t.Errorf("expected Ceiling1 at parity 0, got %v", s.GetCeiling(p).Color)
	}
}

func TestCanRectangleFitHereBoundaries(t *testing.T) {
	rows := [][]Tile{
		wallRow(3),
		{Tile{Kind: Empty}, Tile{Kind: Empty}, Tile{Kind: Empty}},
		wallRow(3),
	}
	s := NewScene(rows)

	// centered in the open middle row, small box: fits.
	if !s.CanRectangleFitHere(1.5, 1.5, 0.4, 0.4) {
		t.Errorf("small centered box should fit in the open row")
	}

	// box large enough to reach into row 0's wall cells: rejected.
	if s.CanRectangleFitHere(1.5, 1.0, 0.4, 1.0) {
		t.Errorf("box overlapping a wall row should not fit")
	}

	// box inscribed in the open cell, its edges just short of the cell edges.
	if !s.CanRectangleFitHere(1.5, 1.5, 0.9, 0.9) {
		t.Errorf("box inscribed within the open cell should fit")
	}
}

func TestGetTileOutsideGridIsEmpty(t *testing.T) {
	s := NewScene([][]Tile{wallRow(2)})
	got := s.GetTile(vmath.NewVec2(5, 5))
	if got.IsWall() {
		t.Errorf("out-of-bounds lookup should report Empty, not a wall")
	}
}
