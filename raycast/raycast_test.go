package raycast

import (
	"math"
	"testing"

	vmath "raygrid/math"
	"raygrid/world"
)

// scenarioScene builds the 7x7 grid from the spec's concrete test
// scenarios: row 0 has walls at x=2,3,4, everything else is open.
func scenarioScene() *world.Scene {
	rows := make([][]world.Tile, 7)
	wallRow := make([]world.Tile, 7)
	for x := range wallRow {
		if x >= 2 && x <= 4 {
			wallRow[x] = world.NewSolidColorTile(world.Floor1)
		} else {
			wallRow[x] = world.Tile{Kind: world.Empty}
		}
	}
	rows[0] = wallRow
	for y := 1; y < 7; y++ {
		row := make([]world.Tile, 7)
		rows[y] = row
	}
	return world.NewScene(rows)
}

// TestCastScenario1FacingEastMisses is concrete scenario 1: a ray cast
// due east from (3.5,3.5) never crosses the wall row and should run out
// to FAR without striking a wall.
func TestCastScenario1FacingEastMisses(t *testing.T) {
	scene := scenarioScene()
	p1 := vmath.NewVec2(3.5, 3.5)
	p2 := vmath.NewVec2(4.5, 3.5)
	hit := Cast(scene, p1, p2)
	if hit.Occupied {
		t.Fatalf("expected the eastward ray to miss every wall, hit cell (%d,%d)", hit.CellX, hit.CellY)
	}
}

// TestCastScenario2FacingNorthHitsWallRow is concrete scenario 2: from
// (3.5,1.5) facing north (toward row 0's wall), the ray must stop at the
// boundary y=1, landing in cell (3,0).
func TestCastScenario2FacingNorthHitsWallRow(t *testing.T) {
	scene := scenarioScene()
	p1 := vmath.NewVec2(3.5, 1.5)
	// p2 sits short of the y=1 boundary, like the near-plane points the
	// wall renderer passes in; Cast checks the cell at p2 before stepping.
	p2 := vmath.NewVec2(3.5, 1.4)
	hit := Cast(scene, p1, p2)
	if !hit.Occupied {
		t.Fatalf("expected the northward ray to hit the wall row")
	}
	if hit.CellX != 3 || hit.CellY != 0 {
		t.Fatalf("expected hit cell (3,0), got (%d,%d)", hit.CellX, hit.CellY)
	}
	dist := p1.DistanceTo(hit.Point)
	// perpendicular distance here is pure vertical travel: 1.5 -> 1.0
	if math.Abs(dist-0.5) > 1e-9 {
		t.Errorf("expected travel distance 0.5 to reach y=1, got %v", dist)
	}
}

// TestStepVerticalRay exercises the dx==0 branch directly (boundary
// behavior: ray parallel to an axis).
func TestStepVerticalRay(t *testing.T) {
	p1 := vmath.NewVec2(2.5, 2.5)
	p2 := vmath.NewVec2(2.5, 1.5)
	next := Step(p1, p2)
	if next.X != 2.5 {
		t.Errorf("vertical ray should not change x, got %v", next.X)
	}
	if next.Y != 1 {
		t.Errorf("expected next gridline at y=1, got %v", next.Y)
	}
}

// TestHittingCellCornerBias is the boundary behavior: a ray aimed exactly
// at a grid corner resolves to the cell on the forward side of both axes.
func TestHittingCellCornerBias(t *testing.T) {
	p1 := vmath.NewVec2(1.5, 1.5)
	p2 := vmath.NewVec2(2.0, 2.0)
	cx, cy := HittingCell(p1, p2)
	if cx != 2 || cy != 2 {
		t.Errorf("expected forward-biased cell (2,2), got (%d,%d)", cx, cy)
	}
}

// TestCastIdempotentUnderTinyInitialOffset is (P5): casting from two
// near-identical starting offsets along the same direction resolves to
// the same first crossing.
func TestCastIdempotentUnderTinyInitialOffset(t *testing.T) {
	scene := scenarioScene()
	origin := vmath.NewVec2(3.5, 1.5)
	dir := vmath.NewVec2(0, -1)

	a := Cast(scene, origin, origin.Add(dir.Mul(1e-7)))
	b := Cast(scene, origin, origin.Add(dir.Mul(2e-7)))

	if a.CellX != b.CellX || a.CellY != b.CellY {
		t.Errorf("expected the same first crossing cell, got (%d,%d) vs (%d,%d)", a.CellX, a.CellY, b.CellX, b.CellY)
	}
}
