package client

import (
	"time"

	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
)

// GameState represents the current screen for a connected client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active match
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-connection state. Each client has their own
// instance, managed by the Client.
type ClientState struct {
	Input         input.Input
	GameState     GameState
	Opponent      string // Opponent username, empty while playing against the AI
	Running       bool
	termSizeFunc  draw.TermSizeFunc
	delta         time.Duration
	shutdownTimer float64 // Countdown before auto-disconnect on shutdown
	isInactive    bool    // Whether the client is in the inactivity warning state
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStateStart,
		Running:   true,
	}
}
