// Package core implements the Pong simulation engine: fixed-substep
// physics, paddle collision, built-in AI and mode-dependent scoring.
// The engine is a single concrete Game value owned by one caller; it is
// not safe for concurrent use.
package core

// Mode selects which optional subsystems (obstacles, extra balls,
// secondary paddles) are active. Changing it forces a full reset.
type Mode int

const (
	ModeClassic        Mode = iota // Two paddles, one ball
	ModeThreeEnemies               // Adds top/bottom paddles guarding the horizontal walls
	ModeObstacles                  // Three moving blocks in the middle of the arena
	ModeMultiBall                  // Three balls in play
	ModeObstaclesMulti             // Obstacles and multi-ball combined
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModeThreeEnemies:
		return "Three Enemies"
	case ModeObstacles:
		return "Obstacles"
	case ModeMultiBall:
		return "Multi Ball"
	case ModeObstaclesMulti:
		return "Obstacles + Multi"
	default:
		return "Unknown"
	}
}

// Ball holds position and velocity for one ball in game units.
// Balls have no identity beyond their slice position; they are created
// on reset or spawn and only removed by a full reset.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Obstacle is an axis-aligned block given by center position and full
// extents W and H, with optional velocity for the moving variant.
type Obstacle struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// State is the aggregate simulation state. The renderer reads it after
// every Update; the frontend may set GW, GH and PaddleH once before the
// first Update via Game.State().
type State struct {
	GW, GH float64 // Arena size in game units, origin top-left, Y down

	LeftY, RightY float64 // Vertical paddle top edges
	PaddleH       float64

	// Legacy scalar mirror of Balls[0], refreshed at the end of every
	// Update. Readers may use either interchangeably.
	BallX, BallY   float64
	BallVX, BallVY float64

	ScoreLeft, ScoreRight int

	// Secondary horizontal paddles (three-enemies mode).
	TopX, BottomX float64 // Horizontal paddle centers
	PaddleW       float64

	Obstacles  []Obstacle
	Balls      []Ball
	BlackHoles []BlackHole

	Mode Mode
}
