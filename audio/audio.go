// Package audio defines the sound-playback boundary the renderer calls
// into. Decoding and mixing live entirely on the host side; the engine
// only ever fires short, fire-and-forget cues (pickup, ricochet, blast)
// and never waits on them.
package audio

import "math"

// SoundID names a cue the host knows how to play. The engine treats
// these as opaque strings — it never inspects or validates them.
type SoundID string

const (
	SoundPickup   SoundID = "pickup"
	SoundRicochet SoundID = "ricochet"
	SoundBlast    SoundID = "blast"
)

// Player is the host-provided audio surface (§6). Play is fire-and-forget:
// the engine does not wait for playback to finish, and a failing or
// missing sound must never block a frame.
type Player interface {
	// Play starts sound from the beginning at the given volume in [0,1].
	// Implementations must reset playback position before starting
	// (§4.H: "set currentTime = 0 before play") so rapid repeats of the
	// same cue don't overlap a stale tail.
	Play(sound SoundID, volume float64)
}

// Null discards every Play call. Useful for headless simulation, tests,
// and as the default before a real audio backend is wired in.
type Null struct{}

func (Null) Play(SoundID, float64) {}

// VolumeForDistance is the defensive falloff rule used wherever a cue is
// tied to an emitter position: volume = clamp(1/distance, 0, 1) (§4.H).
func VolumeForDistance(distance float64) float64 {
	if distance <= 0 {
		return 1
	}
	v := 1 / distance
	if v > 1 {
		return 1
	}
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
