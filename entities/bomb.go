package entities

import (
	"math"

	"raygrid/audio"
	"raygrid/config"
	vmath "raygrid/math"
	"raygrid/render"
	"raygrid/world"
)

// Bomb is a thrown projectile that bounces off walls and the floor/
// ceiling plane before detonating into particles (§3, §4.H).
type Bomb struct {
	Position vmath.Vec3
	Velocity vmath.Vec3
	Lifetime float64
}

// Active reports whether the bomb is currently simulating.
func (b Bomb) Active() bool { return b.Lifetime > 0 }

// BombPool is a fixed-capacity pool of bombs, reused by index (I4) —
// never appended to, never shrunk.
type BombPool struct {
	bombs [config.BombPoolSize]Bomb
}

// Throw activates the first inactive bomb with the given launch pose.
// Returns false if every slot is already live — a silent gameplay limit,
// not an error (§7).
func (bp *BombPool) Throw(position, velocity vmath.Vec3) bool {
	for i := range bp.bombs {
		if !bp.bombs[i].Active() {
			bp.bombs[i] = Bomb{Position: position, Velocity: velocity, Lifetime: config.BombLifetime}
			return true
		}
	}
	return false
}

// ThrowVelocity builds the launch velocity from a facing angle, matching
// the `unit(cos θ, sin θ, 0.5)·BOMB_THROW_VELOCITY` construction (§4.H).
func ThrowVelocity(direction float64) vmath.Vec3 {
	dir := vmath.NewVec3(math.Cos(direction), math.Sin(direction), 0.5)
	return dir.Normalize().Mul(config.BombThrowVelocity)
}

// Update steps every active bomb by dt: gravity, wall/floor bounces, and
// — on this frame's lifetime expiry — a blast cue plus a particle burst.
// Surviving bombs push a sprite into pool using image as their billboard.
func (bp *BombPool) Update(scene *world.Scene, playerPos vmath.Vec2, dt float64, sound audio.Player, particles *ParticlePool, sprites *render.SpritePool, image world.Tile) {
	for i := range bp.bombs {
		b := &bp.bombs[i]
		if !b.Active() {
			continue
		}

		b.Lifetime -= dt
		stepBouncingBody(scene, playerPos, &b.Position, &b.Velocity, dt, config.BombGravity, config.BombDamp, config.BombScale, sound)

		if b.Lifetime <= 0 {
			sound.Play(audio.SoundBlast, audio.VolumeForDistance(playerPos.DistanceTo(b.Position.XY())))
			particles.EmitBurst(b.Position, config.BombParticleCount)
			continue
		}

		sprites.Push(render.Sprite{
			Image:    image,
			Position: b.Position.XY(),
			Z:        b.Position.Z,
			Scale:    config.BombScale,
		})
	}
}
