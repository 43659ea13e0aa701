// Package config centralizes all tunable frontend parameters.
// Engine physics constants live in core.Tuning instead.
package config

import "time"

// Logical render resolution. The arena is 80x24 game units; the canvas
// runs at 2x vertical resolution, so logical height is in sub-pixels.
const (
	ViewWidth  = 80
	ViewHeight = 48
)

// Gameplay
const (
	PaddleSpeed  = 30.0 // Human paddle speed in game units per second
	WinningScore = 11   // First to this score wins the match
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Maximum render resolution in terminal cells. Larger terminals get a
// centered render area with a border around it.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Server tick rate
const (
	ServerTickRate = 60
	ServerTickTime = time.Second / ServerTickRate
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)
