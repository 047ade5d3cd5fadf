package player

import (
	"testing"

	"raygrid/config"
	vmath "raygrid/math"
	"raygrid/world"
)

// scenarioScene mirrors the spec's 7x7 fixture: row 0 has walls at
// x=2,3,4, everything else is open.
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
		rows[y] = make([]world.Tile, 7)
	}
	return world.NewScene(rows)
}

func aabbOverlapsWall(scene *world.Scene, p *Player) bool {
	return !scene.CanRectangleFitHere(p.Position.X, p.Position.Y, config.PlayerBoxSize, config.PlayerBoxSize)
}

// TestPlayerCollisionStopsAtWallBoundary is concrete scenario 6: walking
// straight into the wall row must stop the player at the collision
// boundary rather than tunneling through it, and (P2) the player's AABB
// must never overlap a wall cell.
func TestPlayerCollisionStopsAtWallBoundary(t *testing.T) {
	scene := scenarioScene()
	p := New(vmath.NewVec2(3.5, 2.0), -3.14159265358979/2)
	p.Input.Forward = true

	const dt = 1.0 / 60
	for i := 0; i < 600; i++ {
		p.Update(scene, dt)
		if aabbOverlapsWall(scene, p) {
			t.Fatalf("frame %d: player AABB at %v overlaps a wall cell", i, p.Position)
		}
	}

	if p.Position.Y < 1.25-1e-9 {
		t.Errorf("expected the player to stop with its box edge at the wall boundary (y >= 1.25), got y=%v", p.Position.Y)
	}
	if p.Position.Y > 1.25+config.PlayerSpeed*dt {
		t.Errorf("expected the player to have stopped close to the wall boundary, got y=%v", p.Position.Y)
	}
}

// TestPlayerSlidesAlongWallOnDiagonalInput exercises the axis-separated
// collision: blocking the y-axis must not also block the x-axis.
func TestPlayerSlidesAlongWallOnDiagonalInput(t *testing.T) {
	scene := scenarioScene()
	p := New(vmath.NewVec2(3.5, 1.5), -3.14159265358979/2)
	p.Input.Forward = true
	p.Input.Right = true // also turning, but X movement should still commit independently

	startX := p.Position.X
	for i := 0; i < 10; i++ {
		p.Update(scene, 1.0/60)
	}
	if p.Position.X == startX {
		t.Errorf("expected some x movement to commit independently of the blocked y-axis")
	}
}

// TestPlayerFovEndpointsRecomputeEachFrame checks that FovLeft/FovRight
// track the player's pose rather than staying fixed from construction.
func TestPlayerFovEndpointsRecomputeEachFrame(t *testing.T) {
	scene := scenarioScene()
	p := New(vmath.NewVec2(3.5, 3.5), 0)
	initialLeft := p.FovLeft
	p.Input.Right = true
	p.Update(scene, 1.0/60)
	if p.FovLeft == initialLeft {
		t.Errorf("expected FovLeft to change after turning")
	}
}
