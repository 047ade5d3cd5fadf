package render

import (
	"math"

	"raygrid/player"
	"raygrid/world"
)

// Config tunes the frame driver's execution strategy. Parallel toggles a
// worker-pool column split for the wall and floor/ceiling passes (§5:
// "may parallelize column processing ... but must make the results
// observationally identical to serial left-to-right execution").
type Config struct {
	Parallel bool
	Workers  int
}

// DefaultConfig runs everything on the calling goroutine — the
// observationally-simplest strategy, and the one every invariant in §8
// is phrased against.
func DefaultConfig() Config {
	return Config{Parallel: false}
}

// RenderFrame runs the fixed per-frame sequence from §2/§5: floor and
// ceiling first, then walls (populating the z-buffer), then sprites
// (consuming it). Sprites must already be queued in pool for this frame.
func RenderFrame(cfg Config, d *Display, scene *world.Scene, p *player.Player, pool *SpritePool) {
	if cfg.Parallel {
		drawFloorCeilingParallel(d, scene, p, cfg.Workers)
		drawWallsParallel(d, scene, p, cfg.Workers)
	} else {
		DrawFloorCeiling(d, scene, p)
		DrawWalls(d, scene, p)
	}
	DrawSprites(d, p, pool.Slice())
}

// fpsHistorySize is the 60-sample window the FPS overlay averages over
// (§4.I).
const fpsHistorySize = 60

// FPSCounter tracks a rolling window of frame times and reports an
// integer frames-per-second reading.
type FPSCounter struct {
	samples [fpsHistorySize]float64
	count   int
	cursor  int
}

// Sample records one frame's Δt.
func (f *FPSCounter) Sample(dt float64) {
	f.samples[f.cursor] = dt
	f.cursor = (f.cursor + 1) % fpsHistorySize
	if f.count < fpsHistorySize {
		f.count++
	}
}

// FPS returns ⌊1/avg⌋ over the recorded window, or 0 if no samples have
// been recorded yet or the average is non-positive.
func (f *FPSCounter) FPS() int {
	if f.count == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < f.count; i++ {
		sum += f.samples[i]
	}
	avg := sum / float64(f.count)
	if avg <= 0 {
		return 0
	}
	// The small bias absorbs the rounding error of summing the window, so a
	// steady 1/60 s window reads 60 rather than 59.
	return int(math.Floor(1/avg + 1e-9))
}
