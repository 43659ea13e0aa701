package loop

import (
	"time"

	"github.com/tomz197/pong/internal/core"
	"github.com/tomz197/pong/internal/input"
)

// Screen represents the current UI phase of a session.
type Screen int

const (
	ScreenStart    Screen = iota // Title screen
	ScreenPlaying                // Active gameplay
	ScreenPaused                 // Paused mid-match
	ScreenGameOver               // A side reached the winning score
)

// State holds everything one game session needs: the engine, the UI
// phase, and per-frame input with the previous frame kept around for
// edge-detecting toggle keys.
type State struct {
	Game   *core.Game
	Screen Screen

	Input     input.Input
	PrevInput input.Input

	Delta   time.Duration
	Running bool

	// Winner after game over: -1 left, +1 right, 0 none.
	Winner int

	InputStream *input.Stream
}

// NewState creates a session on the title screen with a fresh engine.
func NewState() *State {
	return &State{
		Game:    core.NewGame(),
		Screen:  ScreenStart,
		Running: true,
	}
}

// pressed reports a rising edge: key down this frame, up the previous one.
func pressed(now, prev bool) bool {
	return now && !prev
}
