package entities

import (
	"math"
	"math/rand"

	"raygrid/audio"
	"raygrid/config"
	"raygrid/core"
	vmath "raygrid/math"
	"raygrid/render"
	"raygrid/world"
)

// Particle shares Bomb's shape and bounce physics, scaled by its own
// gravity/damp/size constants (§3, §4.H).
type Particle struct {
	Position vmath.Vec3
	Velocity vmath.Vec3
	Lifetime float64
}

func (p Particle) Active() bool { return p.Lifetime > 0 }

// ParticlePool is a fixed-capacity pool, reused by index (I4).
type ParticlePool struct {
	particles [config.ParticlePoolSize]Particle
	rng       *rand.Rand
}

// NewParticlePool seeds the pool's random source. A fixed seed keeps
// bomb-burst tests deterministic; callers simulating real gameplay should
// seed from entropy instead.
func NewParticlePool(seed int64) *ParticlePool {
	return &ParticlePool{rng: rand.New(rand.NewSource(seed))}
}

// EmitBurst activates up to count inactive particles from position, each
// with a random planar angle, a mostly-upward vertical component, and a
// total speed scaled by PARTICLE_MAX_SPEED·U[0,1) (§4.H). Running out of
// free slots truncates the burst silently (§7).
func (pp *ParticlePool) EmitBurst(position vmath.Vec3, count int) {
	spawned := 0
	for i := range pp.particles {
		if spawned >= count {
			return
		}
		if pp.particles[i].Active() {
			continue
		}
		pp.particles[i] = pp.spawn(position)
		spawned++
	}
}

func (pp *ParticlePool) spawn(position vmath.Vec3) Particle {
	angle := pp.rng.Float64() * 2 * math.Pi
	vz := 0.5 + pp.rng.Float64()*0.5
	speed := config.ParticleMaxSpeed * pp.rng.Float64()
	dir := vmath.NewVec3(math.Cos(angle), math.Sin(angle), vz).Normalize()
	return Particle{
		Position: position,
		Velocity: dir.Mul(speed),
		Lifetime: config.ParticleLifetime,
	}
}

// particleColor is the fixed rgba(1, 0.5, 0.15, 1) solid-color sprite
// every particle renders as (§4.H).
var particleColor = core.Color{R: 1, G: 0.5, B: 0.15, A: 1}

// Update steps every active particle by dt and queues a sprite for each
// one still alive afterward.
func (pp *ParticlePool) Update(scene *world.Scene, playerPos vmath.Vec2, dt float64, sound audio.Player, sprites *render.SpritePool) {
	image := world.NewSolidColorTile(particleColor)
	for i := range pp.particles {
		p := &pp.particles[i]
		if !p.Active() {
			continue
		}
		p.Lifetime -= dt
		stepBouncingBody(scene, playerPos, &p.Position, &p.Velocity, dt, config.ParticleGravity, config.ParticleDamp, config.ParticleScale, sound)
		if p.Lifetime <= 0 {
			continue
		}
		sprites.Push(render.Sprite{
			Image:    image,
			Position: p.Position.XY(),
			Z:        p.Position.Z,
			Scale:    config.ParticleScale,
		})
	}
}

// Count returns the number of currently active particles, used by tests
// verifying a bomb burst actually activated entries.
func (pp *ParticlePool) Count() int {
	n := 0
	for _, p := range pp.particles {
		if p.Active() {
			n++
		}
	}
	return n
}
