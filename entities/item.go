package entities

import (
	"math"

	"raygrid/audio"
	"raygrid/config"
	vmath "raygrid/math"
	"raygrid/render"
	"raygrid/world"
)

// ItemKind distinguishes the two pickup types the world can place (§3).
type ItemKind int

const (
	Key ItemKind = iota
	BombPickup
)

// Item is a walk-through pickup. Once Alive is false it never becomes
// true again (P6).
type Item struct {
	Kind     ItemKind
	Alive    bool
	Position vmath.Vec2
}

// NewItem places a live item at position.
func NewItem(kind ItemKind, position vmath.Vec2) *Item {
	return &Item{Kind: kind, Alive: true, Position: position}
}

// Update checks the pickup radius against playerPos and, while still
// alive, queues a gently bobbing sprite (§4.H). time is the running
// simulation clock in seconds, driving the bob phase.
func (it *Item) Update(playerPos vmath.Vec2, time float64, sound audio.Player, sprites *render.SpritePool, image world.Tile) {
	if !it.Alive {
		return
	}

	if playerPos.SqrDistanceTo(it.Position) < config.PlayerRadius*config.PlayerRadius {
		it.Alive = false
		sound.Play(audio.SoundPickup, audio.VolumeForDistance(playerPos.DistanceTo(it.Position)))
		return
	}

	z := config.ItemBaseZ + config.ItemBobAmplitude -
		config.ItemBobAmplitude*math.Sin(config.ItemBobFrequency*math.Pi*time+it.Position.X+it.Position.Y)

	sprites.Push(render.Sprite{
		Image:    image,
		Position: it.Position,
		Z:        z,
		Scale:    config.ItemScale,
	})
}
