// Command demo is the host: it owns the window, reads input, decodes
// wall art from disk, drives the simulation and software renderer one
// frame at a time, and blits the result to the screen (§4.M).
package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"raygrid/audio"
	"raygrid/blit"
	"raygrid/config"
	"raygrid/core"
	"raygrid/entities"
	vmath "raygrid/math"
	"raygrid/player"
	"raygrid/render"
	"raygrid/textures"
	"raygrid/world"

	"raygrid/game"
)

// demoLayout is a small hand-authored grid: a ring of walls around an
// open floor, with two wall "kinds" (brick / stone), both textured tiles
// from the loader (or its magenta placeholder when a file is missing).
func demoLayout(brick, stone world.Tile) *world.Scene {
	const n = 10
	rows := make([][]world.Tile, n)
	for y := 0; y < n; y++ {
		row := make([]world.Tile, n)
		for x := 0; x < n; x++ {
			edge := x == 0 || y == 0 || x == n-1 || y == n-1
			switch {
			case edge && (x+y)%2 == 0:
				row[x] = brick
			case edge:
				row[x] = stone
			default:
				row[x] = world.Tile{}
			}
		}
		rows[y] = row
	}
	// Carve a couple of interior pillars so occlusion/sprite tests have
	// something to hide behind during interactive play.
	rows[3][4] = stone
	rows[6][5] = brick
	return world.NewScene(rows)
}

// audioBackend returns the sound surface the demo wires in. §4.L leaves
// a real backend as a drop-in audio.Player the host supplies; this demo
// runs headless-audio until one is chosen.
func audioBackend() audio.Player {
	return audio.Null{}
}

func main() {
	sessionID := uuid.New().String()
	fmt.Printf("[Session] %s starting\n", sessionID)

	windowConfig := core.DefaultWindowConfig()
	windowConfig.Title = "raygrid demo"
	windowConfig.Width = config.ScreenWidth * 2
	windowConfig.Height = config.ScreenHeight * 2

	window, err := core.NewWindow(windowConfig)
	if err != nil {
		fmt.Printf("[Window] failed to create: %v\n", err)
		return
	}
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		fmt.Printf("[GL] failed to initialize: %v\n", err)
		return
	}

	blitter, err := blit.New()
	if err != nil {
		fmt.Printf("[GL] blit setup failed: %v\n", err)
		return
	}
	defer blitter.Destroy()

	loader := textures.NewLoader()
	brick := loader.GetOrPlaceholder("assets/brick.png")
	stone := loader.GetOrPlaceholder("assets/stone.png")

	scene := demoLayout(brick, stone)
	state := game.New(scene, vmath.NewVec2(2.5, 2.5), 0, audioBackend())
	state.SpawnItem(entities.Key, vmath.NewVec2(7.5, 2.5))
	state.SpawnItem(entities.BombPickup, vmath.NewVec2(2.5, 7.5))

	display := render.NewDisplay(config.ScreenWidth, config.ScreenHeight)
	renderCfg := render.DefaultConfig()
	var fps render.FPSCounter

	fmt.Println("===========================================")
	fmt.Println("  raygrid demo")
	fmt.Println("===========================================")
	fmt.Println("  WASD / arrows  - move, turn")
	fmt.Println("  Space          - throw bomb")
	fmt.Println("  M              - toggle minimap")
	fmt.Println("  F              - toggle FPS overlay")
	fmt.Println("  P              - toggle parallel column rendering")
	fmt.Println("  ESC            - quit")
	fmt.Println("===========================================")

	showMinimap := true
	showFPS := true
	spaceWasDown := false
	mKeyWasDown := false
	fKeyWasDown := false
	pKeyWasDown := false

	lastFrame := time.Now()

	for !window.ShouldClose() {
		window.PollEvents()
		if window.IsKeyPressed(core.KeyEscape) {
			break
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > config.DeltaTimeClamp {
			dt = config.DeltaTimeClamp
		}

		input := player.Input{
			Forward: window.IsKeyPressed(core.KeyW) || window.IsKeyPressed(core.KeyUp),
			Back:    window.IsKeyPressed(core.KeyS) || window.IsKeyPressed(core.KeyDown),
			Left:    window.IsKeyPressed(core.KeyA) || window.IsKeyPressed(core.KeyLeft),
			Right:   window.IsKeyPressed(core.KeyD) || window.IsKeyPressed(core.KeyRight),
		}

		spaceDown := window.IsKeyPressed(core.KeySpace)
		if spaceDown && !spaceWasDown {
			if !state.ThrowBomb() {
				fmt.Println("[Pool] bomb pool exhausted, throw dropped")
			}
		}
		spaceWasDown = spaceDown

		mDown := window.IsKeyPressed(core.KeyM)
		if mDown && !mKeyWasDown {
			showMinimap = !showMinimap
		}
		mKeyWasDown = mDown

		fDown := window.IsKeyPressed(core.KeyF)
		if fDown && !fKeyWasDown {
			showFPS = !showFPS
		}
		fKeyWasDown = fDown

		pDown := window.IsKeyPressed(core.KeyP)
		if pDown && !pKeyWasDown {
			renderCfg.Parallel = !renderCfg.Parallel
			fmt.Printf("[Render] parallel columns: %v\n", renderCfg.Parallel)
		}
		pKeyWasDown = pDown

		state.Tick(dt, input)
		fps.Sample(dt)

		display.Clear()
		render.RenderFrame(renderCfg, display, state.Scene, state.Player, &state.Sprites)

		if showMinimap {
			render.DrawMinimap(display, state.Scene, state.Player, state.Sprites.Slice(), true)
		}
		if showFPS {
			render.DrawText(display, fmt.Sprintf("FPS %d", fps.FPS()), 4, 12, core.ColorWhite)
		}

		width, height := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(width), int32(height))
		blitter.Upload(display.Back, display.Width, display.Height)
		blitter.Draw()
		window.SwapBuffers()
	}

	fmt.Printf("[Session] %s exiting\n", sessionID)
}
