package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raygrid/audio"
	"raygrid/config"
	"raygrid/core"
	vmath "raygrid/math"
	"raygrid/render"
	"raygrid/world"
)

type spySound struct {
	plays map[audio.SoundID]int
}

func newSpySound() *spySound {
	return &spySound{plays: make(map[audio.SoundID]int)}
}

func (s *spySound) Play(sound audio.SoundID, volume float64) {
	s.plays[sound]++
}

func openScene(size int) *world.Scene {
	rows := make([][]world.Tile, size)
	for y := range rows {
		rows[y] = make([]world.Tile, size)
	}
	return world.NewScene(rows)
}

var pickupTile = world.NewSolidColorTile(core.ColorWhite)

// TestItemPickupMonotone is (P6): once an item goes dead, nothing can
// revive it, even if the player stays inside its radius on later frames.
func TestItemPickupMonotone(t *testing.T) {
	item := NewItem(Key, vmath.NewVec2(2, 2))
	sound := newSpySound()
	var pool render.SpritePool

	item.Update(vmath.NewVec2(10, 10), 0, sound, &pool, pickupTile)
	assert.True(t, item.Alive, "item should survive while the player is far away")

	item.Update(vmath.NewVec2(2.1, 2.1), 0, sound, &pool, pickupTile)
	assert.False(t, item.Alive, "item should die once the player enters the pickup radius")
	assert.Equal(t, 1, sound.plays[audio.SoundPickup])

	item.Update(vmath.NewVec2(2.1, 2.1), 0, sound, &pool, pickupTile)
	assert.False(t, item.Alive, "item must stay dead")
	assert.Equal(t, 1, sound.plays[audio.SoundPickup], "pickup sound must not replay for an already-dead item")
}

// TestBombLifecycleScenario5 is concrete scenario 5: a bomb thrown with
// no obstacles around it burns down its 2s lifetime, fires the blast cue
// exactly once, and activates the expected particle burst.
func TestBombLifecycleScenario5(t *testing.T) {
	scene := openScene(7)
	playerPos := vmath.NewVec2(3.5, 3.5)
	sound := newSpySound()

	var bombs BombPool
	particles := NewParticlePool(1)
	var sprites render.SpritePool

	ok := bombs.Throw(vmath.NewVec3(playerPos.X, playerPos.Y, 0.6), ThrowVelocity(0))
	require.True(t, ok, "expected a free bomb slot")

	const dt = 1.0 / 60
	ticks := int(2.0/dt) + 2
	for i := 0; i < ticks; i++ {
		sprites.Reset()
		bombs.Update(scene, playerPos, dt, sound, particles, &sprites, pickupTile)
	}

	assert.Equal(t, 1, sound.plays[audio.SoundBlast], "expected exactly one blast cue")
	assert.GreaterOrEqual(t, particles.Count(), config.BombParticleCount)
}

// TestBombPoolExhaustionIsSilent is (§7): throwing past the pool's
// capacity is a no-op, not an error.
func TestBombPoolExhaustionIsSilent(t *testing.T) {
	var bombs BombPool
	for i := 0; i < config.BombPoolSize; i++ {
		ok := bombs.Throw(vmath.Vec3{}, vmath.Vec3{})
		require.True(t, ok)
	}
	assert.False(t, bombs.Throw(vmath.Vec3{}, vmath.Vec3{}), "expected the pool to reject a throw once full")
}
