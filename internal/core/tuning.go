package core

// Tuning collects the engine's physical constants. Zero values are not
// meaningful; construct with DefaultTuning and override fields as
// needed (mainly in tests).
type Tuning struct {
	MaxSubstep float64 // Largest integration step in seconds
	BallRadius float64 // Collision radius; paddles and obstacles expand by it

	Restitution     float64 // Post-hit speed scale in physical mode (>1 keeps rallies lively)
	TangentStrength float64 // Spin from contact offset
	PaddleInfluence float64 // Spin from paddle velocity
	ArcadeSpeedUp   float64 // Flat velocity multiplier per paddle hit in arcade mode

	PhysicalSpeedCap float64 // Speed cap after a physical-mode paddle hit
	ArcadeSpeedCap   float64 // Speed cap after an arcade-mode hit and the global post-hit cap

	ServeSpeedX float64 // Horizontal serve velocity after a point
	ServeSpeedY float64 // Vertical serve velocity after a point
	SpawnSpeed  float64 // Base speed for extra balls, scaled per spawn

	AISpeed          float64 // Main paddle AI speed before the ai-speed multiplier
	SecondaryAISpeed float64 // Top/bottom paddle AI speed in three-enemies mode

	StallInterval float64 // Speed mode: seconds without a score before acceleration
	StallScale    float64 // Speed mode: velocity multiplier applied per interval

	MaxFrameDT float64 // Update clamps dt to this; generous enough for long synthetic frames
}

// DefaultTuning returns the reference constants.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSubstep:       1.0 / 240.0,
		BallRadius:       0.6,
		Restitution:      1.01,
		TangentStrength:  6.0,
		PaddleInfluence:  1.5,
		ArcadeSpeedUp:    1.02,
		PhysicalSpeedCap: 90.0,
		ArcadeSpeedCap:   80.0,
		ServeSpeedX:      20.0,
		ServeSpeedY:      10.0,
		SpawnSpeed:       22.0,
		AISpeed:          25.0,
		SecondaryAISpeed: 30.0,
		StallInterval:    5.0,
		StallScale:       1.05,
		MaxFrameDT:       120.0,
	}
}
