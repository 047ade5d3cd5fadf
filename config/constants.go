// Package config holds the tunables shared across the simulation and
// render packages — field of view, clip planes, movement speeds, and the
// entity pool parameters. Centralizing them here keeps raycast, render,
// player, and entities from importing each other just to share a number.
package config

import "math"

const (
	ScreenWidth  = 480
	ScreenHeight = 270

	FOV  = math.Pi / 2
	Near = 0.1
	Far  = 10.0

	PlayerSpeed      = 2.0
	PlayerRadius     = 0.5
	PlayerTurnRate   = 0.75 * math.Pi
	PlayerBoxSize    = 0.5
	MinimapCellScale = 0.03

	BombThrowVelocity = 5.0
	BombLifetime      = 2.0
	BombGravity       = 10.0
	BombDamp          = 0.8
	BombScale         = 0.25
	BombParticleCount = 50
	BombPoolSize      = 10

	ParticleGravity  = 10.0
	ParticleDamp     = 0.8
	ParticleScale    = 0.1
	ParticleLifetime = 1.0
	ParticleMaxSpeed = 8.0
	ParticlePoolSize = 1000

	ItemBobAmplitude = 0.07
	ItemBobFrequency = 0.7
	ItemBaseZ        = 0.25
	ItemScale        = 0.25

	// RaySnapEpsilon biases the grid-crossing snap onto the forward side of
	// a boundary, so axis-parallel rays and exact corner hits resolve to a
	// single, deterministic cell (§4.C).
	RaySnapEpsilon = 1e-6

	// DeltaTimeClamp bounds a single frame's Δt to prevent fast-moving
	// bodies tunneling through walls on a long frame stall.
	DeltaTimeClamp = 0.1
)
