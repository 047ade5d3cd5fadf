// Package player implements the first-person kinematics: turning,
// movement, axis-separated swept collision against the grid, and the
// per-frame recomputation of the near-clip (FOV) segment endpoints used
// by both the wall and floor/ceiling renderers.
package player

import (
	"math"

	"raygrid/config"
	vmath "raygrid/math"
	"raygrid/world"
)

// Input is the four movement edges the host reports each frame (§6).
type Input struct {
	Forward, Back, Left, Right bool
}

// Player tracks position, facing, and the derived FOV segment endpoints
// the renderer samples every column from (§3).
type Player struct {
	Position  vmath.Vec2
	Direction float64
	Velocity  vmath.Vec2
	FovLeft   vmath.Vec2
	FovRight  vmath.Vec2
	Input     Input
}

// New places a player at position facing direction (radians), with its
// FOV endpoints computed for the initial pose.
func New(position vmath.Vec2, direction float64) *Player {
	p := &Player{Position: position, Direction: direction}
	p.recomputeFov()
	return p
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Update advances the player one tick: turning, translating with
// axis-separated collision against scene, and recomputing the FOV
// endpoints (§4.G). The collision box is square, side config.PlayerBoxSize,
// centered on Position — satisfying invariant I2 (never inside a wall).
func (p *Player) Update(scene *world.Scene, dt float64) {
	angularVelocity := (boolToFloat(p.Input.Right) - boolToFloat(p.Input.Left)) * config.PlayerTurnRate
	p.Direction += angularVelocity * dt

	dir := vmath.Vec2{X: math.Cos(p.Direction), Y: math.Sin(p.Direction)}
	moveBit := boolToFloat(p.Input.Forward) - boolToFloat(p.Input.Back)
	p.Velocity = dir.Mul(config.PlayerSpeed * moveBit)

	const s = config.PlayerBoxSize
	nx := p.Position.X + p.Velocity.X*dt
	if scene.CanRectangleFitHere(nx, p.Position.Y, s, s) {
		p.Position.X = nx
	}
	ny := p.Position.Y + p.Velocity.Y*dt
	if scene.CanRectangleFitHere(p.Position.X, ny, s, s) {
		p.Position.Y = ny
	}

	p.recomputeFov()
}

// recomputeFov derives the near-clip segment endpoints from the current
// position and facing direction (§4.G step 5).
func (p *Player) recomputeFov() {
	halfFov := config.FOV / 2
	fovLen := config.Near / math.Cos(halfFov)
	p.FovLeft = p.Position.Add(vmath.SetAngle(p.Direction-halfFov, fovLen))
	p.FovRight = p.Position.Add(vmath.SetAngle(p.Direction+halfFov, fovLen))
}

// ThrowBomb returns the initial position/velocity for a bomb launched
// from the player's current pose (§4.H). The caller (game.State.ThrowBomb)
// passes them to entities.BombPool.Throw, which finds a free pool slot.
func (p *Player) ThrowBomb() (position, velocity vmath.Vec3) {
	position = vmath.NewVec3(p.Position.X, p.Position.Y, 0.6)
	dir := vmath.NewVec3(math.Cos(p.Direction), math.Sin(p.Direction), 0.5)
	velocity = dir.Normalize().Mul(config.BombThrowVelocity)
	return position, velocity
}
