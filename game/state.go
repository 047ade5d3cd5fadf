// Package game aggregates the scene, player, and entity pools into the
// single object a host's frame loop drives each tick, the role
// scene.Scene plays as aggregate root in the teacher.
package game

import (
	"raygrid/audio"
	"raygrid/core"
	"raygrid/entities"
	vmath "raygrid/math"
	"raygrid/player"
	"raygrid/render"
	"raygrid/world"
)

var (
	colorKeyYellow  = core.Color{R: 0.95, G: 0.85, B: 0.2, A: 1}
	colorBombPickup = core.Color{R: 0.5, G: 0.5, B: 0.55, A: 1}
	colorBombBody   = core.Color{R: 0.08, G: 0.08, B: 0.08, A: 1}
)

// State is the WorldState threaded through a frame: everything that
// needs to see Δt or contribute sprites this frame.
type State struct {
	Scene  *world.Scene
	Player *player.Player

	Items     []*entities.Item
	Bombs     entities.BombPool
	Particles *entities.ParticlePool
	Sprites   render.SpritePool

	// Time is the running simulation clock in seconds, driving item bob
	// phase (§4.H).
	Time float64

	Sound audio.Player

	BombImage  world.Tile
	ItemImages map[entities.ItemKind]world.Tile
}

// New builds a ready-to-run state over scene, starting the player at
// position facing direction. sound may be audio.Null{} for headless use.
func New(scene *world.Scene, position vmath.Vec2, direction float64, sound audio.Player) *State {
	if sound == nil {
		sound = audio.Null{}
	}
	return &State{
		Scene:     scene,
		Player:    player.New(position, direction),
		Particles: entities.NewParticlePool(1),
		Sound:     sound,
		ItemImages: map[entities.ItemKind]world.Tile{
			entities.Key:        world.NewSolidColorTile(colorKeyYellow),
			entities.BombPickup: world.NewSolidColorTile(colorBombPickup),
		},
		BombImage: world.NewSolidColorTile(colorBombBody),
	}
}

// SpawnItem places a new live item in the world.
func (s *State) SpawnItem(kind entities.ItemKind, position vmath.Vec2) {
	s.Items = append(s.Items, entities.NewItem(kind, position))
}

// ThrowBomb launches a bomb from the player's current pose, a no-op once
// the bomb pool is exhausted (§7).
func (s *State) ThrowBomb() bool {
	position, velocity := s.Player.ThrowBomb()
	return s.Bombs.Throw(position, velocity)
}

// Tick advances the player, every item, every bomb, and every particle
// by dt, and rebuilds the sprite pool for this frame's render pass
// (§2's E-then-D-then-F ordering starts from a freshly populated pool).
func (s *State) Tick(dt float64, in player.Input) {
	s.Player.Input = in
	s.Player.Update(s.Scene, dt)
	s.Time += dt

	s.Sprites.Reset()

	playerPos := s.Player.Position
	for _, it := range s.Items {
		it.Update(playerPos, s.Time, s.Sound, &s.Sprites, s.ItemImages[it.Kind])
	}
	s.Bombs.Update(s.Scene, playerPos, dt, s.Sound, s.Particles, &s.Sprites, s.BombImage)
	s.Particles.Update(s.Scene, playerPos, dt, s.Sound, &s.Sprites)
}
