// Package textures loads wall and sprite art from disk into the
// world.Tile pixel format the renderer samples directly, with no GPU
// upload step (§4.K).
package textures

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"raygrid/core"
	"raygrid/world"
)

// Loader caches decoded images by path so repeated references to the
// same texture (a wall kind reused across many grid cells) decode once.
type Loader struct {
	mu     sync.RWMutex
	cached map[string]world.Tile
}

// NewLoader returns an empty, ready-to-use Loader.
func NewLoader() *Loader {
	return &Loader{cached: make(map[string]world.Tile)}
}

// Load decodes the PNG or JPEG at path into a Textured tile, returning
// the cached tile on repeat calls with the same path.
func (l *Loader) Load(path string) (world.Tile, error) {
	l.mu.RLock()
	if t, ok := l.cached[path]; ok {
		l.mu.RUnlock()
		return t, nil
	}
	l.mu.RUnlock()

	tile, err := decodeFile(path)
	if err != nil {
		return world.Tile{}, fmt.Errorf("failed to load texture %s: %w", path, err)
	}

	l.mu.Lock()
	l.cached[path] = tile
	l.mu.Unlock()

	return tile, nil
}

// GetOrPlaceholder is the path callers actually use when building the
// world: a failed or empty path falls back to a magenta placeholder
// tile rather than aborting the load (§7), printing a warning the way
// the teacher's GetOrDefault does.
func (l *Loader) GetOrPlaceholder(path string) world.Tile {
	if path == "" {
		return Placeholder()
	}
	tile, err := l.Load(path)
	if err != nil {
		fmt.Printf("warning: %v\n", err)
		return Placeholder()
	}
	return tile
}

// Placeholder is a 1x1 magenta tile, the conventional missing-texture
// marker (§7).
func Placeholder() world.Tile {
	return world.NewTexturedTile(1, 1, []core.Color{core.ColorMagenta})
}

func decodeFile(path string) (world.Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		return world.Tile{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return world.Tile{}, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Color, w*h)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			idx := (y-bounds.Min.Y)*w + (x - bounds.Min.X)
			pixels[idx] = core.Color{
				R: float64(r) / 0xffff,
				G: float64(g) / 0xffff,
				B: float64(b) / 0xffff,
				A: float64(a) / 0xffff,
			}
		}
	}

	return world.NewTexturedTile(w, h, pixels), nil
}
