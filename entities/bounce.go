// Package entities simulates the world's dynamic actors: pickup items,
// thrown bombs, and the particle bursts bombs spawn on detonation. Bombs
// and particles share one physics step — gravity, a combined-axis
// horizontal wall bounce, and a separate vertical floor/ceiling bounce —
// parameterized by each body's own gravity/damp/scale constants (§4.H).
package entities

import (
	"math"

	"raygrid/audio"
	vmath "raygrid/math"
	"raygrid/world"
)

// stepBouncingBody advances one Vector3 position/velocity pair by dt,
// applying gravity, then a horizontal step that (unlike the player's
// axis-separated slide) tests both axes together and reflects whichever
// axis actually crossed a cell boundary, then damps. A separate vertical
// step bounces pos.Z between minZ and 1.0. Both bounces fire a ricochet
// cue, post-damp, when the resulting speed exceeds 1 (§9 open question:
// the post-damp check is preserved deliberately).
func stepBouncingBody(scene *world.Scene, playerPos vmath.Vec2, pos, vel *vmath.Vec3, dt, gravity, damp, minZ float64, sound audio.Player) {
	vel.Z -= gravity * dt

	oldCX, oldCY := int(math.Floor(pos.X)), int(math.Floor(pos.Y))
	nx := pos.X + vel.X*dt
	ny := pos.Y + vel.Y*dt

	if scene.IsWall(vmath.NewVec2(nx, ny)) {
		newCX, newCY := int(math.Floor(nx)), int(math.Floor(ny))
		if newCX != oldCX {
			vel.X = -vel.X
		}
		if newCY != oldCY {
			vel.Y = -vel.Y
		}
		vel.X *= damp
		vel.Y *= damp
		if speed := math.Hypot(vel.X, vel.Y); speed > 1 {
			playRicochet(sound, playerPos, pos.XY())
		}
	} else {
		pos.X, pos.Y = nx, ny
	}

	nz := pos.Z + vel.Z*dt
	if nz < minZ || nz > 1.0 {
		vel.Z = -vel.Z
		vel.Z *= damp
		if math.Abs(vel.Z) > 1 {
			playRicochet(sound, playerPos, pos.XY())
		}
	} else {
		pos.Z = nz
	}
}

func playRicochet(sound audio.Player, playerPos, bodyPos vmath.Vec2) {
	sound.Play(audio.SoundRicochet, audio.VolumeForDistance(playerPos.DistanceTo(bodyPos)))
}
