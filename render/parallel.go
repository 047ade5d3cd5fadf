package render

import (
	"runtime"
	"sync"

	"raygrid/player"
	"raygrid/world"
)

// workerCount resolves cfg.Workers to a usable goroutine count, falling
// back to the host's core count.
func workerCount(requested int) int {
	if requested > 0 {
		return requested
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// drawWallsParallel splits the column range across a bounded worker pool.
// Each column only ever touches its own d.ZBuffer[x] slot and its own
// pixel strip, so concurrent columns never race (§5's "must make the
// results observationally identical to serial left-to-right execution").
func drawWallsParallel(d *Display, scene *world.Scene, p *player.Player, workers int) {
	n := workerCount(workers)
	sem := make(chan struct{}, n)
	var wg sync.WaitGroup

	for x := 0; x < d.Width; x++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(col int) {
			defer wg.Done()
			defer func() { <-sem }()
			drawWallAtColumn(d, scene, p, col)
		}(x)
	}
	wg.Wait()
}

// drawFloorCeilingParallel splits floor/ceiling rows across a bounded
// worker pool the same way; each worker owns a distinct pair of rows
// (y, H-y-1), so there is no shared mutable state between goroutines.
func drawFloorCeilingParallel(d *Display, scene *world.Scene, p *player.Player, workers int) {
	n := workerCount(workers)
	sem := make(chan struct{}, n)
	var wg sync.WaitGroup

	for y := d.Height / 2; y < d.Height; y++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(row int) {
			defer wg.Done()
			defer func() { <-sem }()
			drawFloorCeilingRow(d, scene, p, row)
		}(y)
	}
	wg.Wait()
}
