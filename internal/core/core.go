package core

import (
	"math"

	"github.com/tomz197/pong/internal/physics"
)

// Default arena dimensions restored on every Reset.
const (
	defaultWidth   = 80.0
	defaultHeight  = 24.0
	defaultPaddleH = 5.0
	defaultPaddleW = 10.0
)

// Obstacle layout constants for the obstacle modes.
const (
	obstacleCount   = 3
	obstacleW       = 4.0
	obstacleH       = 3.0
	obstacleMinX    = 5.0 // Obstacles bounce between obstacleMinX and gw-obstacleMinX
	obstacleYMargin = 1.0
)

// Obstacle push-out constants keeping a resolved ball clear of the
// block it just left.
const (
	obstaclePushOut  = 0.61
	obstaclePushBias = 0.01
)

// Game is the simulation engine. It owns one State, advances it with
// fixed-size substeps, and exposes mutators for external paddle input.
// Single-threaded: Update must not race with the setters or itself.
type Game struct {
	st     State
	tuning Tuning

	physical  bool
	speedMode bool
	gravity   bool
	leftAI    bool
	rightAI   bool
	aiSpeed   float64

	stallTimer float64

	// Paddle positions at the end of the previous Update, used to
	// estimate paddle velocity for spin transfer. Sampled once per
	// frame, not per substep.
	prevLeftY, prevRightY float64
}

// NewGame constructs an engine with default tuning in Classic mode:
// right paddle AI-controlled, left human, physically-based bounces.
func NewGame() *Game {
	return NewGameWithTuning(DefaultTuning())
}

// NewGameWithTuning constructs an engine with explicit tuning.
func NewGameWithTuning(t Tuning) *Game {
	g := &Game{
		tuning:   t,
		physical: true,
		rightAI:  true,
		aiSpeed:  1.0,
	}
	g.Reset()
	return g
}

// Reset reinitializes the whole State for the current mode: default
// arena size, centered paddles, one served ball, mode-dependent
// obstacle and ball population, zeroed scores.
func (g *Game) Reset() {
	st := &g.st

	st.GW = defaultWidth
	st.GH = defaultHeight
	st.PaddleH = defaultPaddleH
	st.LeftY = (st.GH - st.PaddleH) / 2
	st.RightY = st.LeftY

	cx := st.GW / 2
	cy := st.GH / 2

	st.BallX = cx
	st.BallY = cy
	st.BallVX = g.tuning.ServeSpeedX
	st.BallVY = g.tuning.ServeSpeedY
	st.Balls = st.Balls[:0]
	st.Balls = append(st.Balls, Ball{X: cx, Y: cy, VX: st.BallVX, VY: st.BallVY})

	st.TopX = cx
	st.BottomX = cx
	st.PaddleW = defaultPaddleW

	st.Obstacles = st.Obstacles[:0]
	if g.hasObstacles() {
		for i := 0; i < obstacleCount; i++ {
			vy := 5.0
			if i%2 == 1 {
				vy = -5.0
			}
			st.Obstacles = append(st.Obstacles, Obstacle{
				X:  cx + float64(i-1)*10,
				Y:  cy + float64(i-1)*2,
				W:  obstacleW,
				H:  obstacleH,
				VX: float64(i-1) * 5,
				VY: vy,
			})
		}
	}

	if st.Mode == ModeMultiBall || st.Mode == ModeObstaclesMulti {
		g.SpawnBall(0.9)
		g.SpawnBall(1.1)
	}

	st.BlackHoles = st.BlackHoles[:0]
	if g.gravity {
		hole := NewBlackHole(cx, cy)
		hole.Moving = true
		hole.VX = blackHoleVX
		hole.VY = blackHoleVY
		st.BlackHoles = append(st.BlackHoles, hole)
	}

	st.ScoreLeft = 0
	st.ScoreRight = 0
	g.stallTimer = 0
	g.prevLeftY = st.LeftY
	g.prevRightY = st.RightY
}

// SpawnBall appends a ball at arena center. Direction alternates with
// the ball count and speed scales off the base spawn speed.
func (g *Game) SpawnBall(speedScale float64) {
	speed := g.tuning.SpawnSpeed * speedScale
	dir := 1.0
	if len(g.st.Balls)%2 == 1 {
		dir = -1.0
	}
	g.st.Balls = append(g.st.Balls, Ball{
		X:  g.st.GW / 2,
		Y:  g.st.GH / 2,
		VX: dir * speed,
		VY: speed * 0.5,
	})
}

// MoveLeftBy shifts the left paddle by dy. Clamping happens on the next
// Update, not immediately.
func (g *Game) MoveLeftBy(dy float64) { g.st.LeftY += dy }

// SetLeftY places the left paddle top edge at y (clamped on next Update).
func (g *Game) SetLeftY(y float64) { g.st.LeftY = y }

// MoveRightBy shifts the right paddle by dy. Exists mainly for testing;
// the right paddle is normally AI-driven.
func (g *Game) MoveRightBy(dy float64) { g.st.RightY += dy }

// SetMode switches the game mode. No-op when unchanged; otherwise the
// whole state is rebuilt via Reset.
func (g *Game) SetMode(m Mode) {
	if g.st.Mode == m {
		return
	}
	g.st.Mode = m
	g.Reset()
}

// Mode returns the active game mode.
func (g *Game) Mode() Mode { return g.st.Mode }

// SetAISpeed scales the main paddle AI speed (1 = default).
func (g *Game) SetAISpeed(m float64) { g.aiSpeed = m }

// EnableLeftAI toggles AI control of the left paddle.
func (g *Game) EnableLeftAI(on bool) { g.leftAI = on }

// EnableRightAI toggles AI control of the right paddle.
func (g *Game) EnableRightAI(on bool) { g.rightAI = on }

// LeftAI reports whether the left paddle is AI-controlled.
func (g *Game) LeftAI() bool { return g.leftAI }

// RightAI reports whether the right paddle is AI-controlled.
func (g *Game) RightAI() bool { return g.rightAI }

// SetPhysicalMode selects the bounce model: true for physically-based
// reflection with restitution, false for the legacy arcade bounce.
func (g *Game) SetPhysicalMode(on bool) { g.physical = on }

// IsPhysical reports whether the physically-based bounce model is active.
func (g *Game) IsPhysical() bool { return g.physical }

// SetSpeedMode toggles rally-stall acceleration. Disabling it also
// resets the stall accumulator.
func (g *Game) SetSpeedMode(on bool) {
	g.speedMode = on
	if !on {
		g.stallTimer = 0
	}
}

// IsSpeedMode reports whether rally-stall acceleration is active.
func (g *Game) IsSpeedMode() bool { return g.speedMode }

// SetGravity toggles the black hole. Changing it rebuilds the state so
// the hole population matches, like a mode switch.
func (g *Game) SetGravity(on bool) {
	if g.gravity == on {
		return
	}
	g.gravity = on
	g.Reset()
}

// Gravity reports whether the black hole is active.
func (g *Game) Gravity() bool { return g.gravity }

// State returns the mutable simulation state. Frontends may adjust
// arena dimensions through it before the first Update.
func (g *Game) State() *State { return &g.st }

// Balls returns the active ball set.
func (g *Game) Balls() []Ball { return g.st.Balls }

// Obstacles returns the active obstacle set.
func (g *Game) Obstacles() []Obstacle { return g.st.Obstacles }

// hasObstacles reports whether the current mode populates obstacles.
func (g *Game) hasObstacles() bool {
	return g.st.Mode == ModeObstacles || g.st.Mode == ModeObstaclesMulti
}

// Update advances the simulation by dt seconds, subdividing into
// substeps of at most Tuning.MaxSubstep for collision stability.
// Non-positive dt is ignored. Oversized dt (a debugger pause measured
// in minutes) is capped at Tuning.MaxFrameDT to bound the substep
// count; the bound is large enough that long synthetic frames advance
// in full.
func (g *Game) Update(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > g.tuning.MaxFrameDT {
		dt = g.tuning.MaxFrameDT
	}

	st := &g.st

	// Paddle velocity for spin transfer is the previous full frame's
	// movement; it is deliberately not re-estimated between substeps.
	leftVel := (st.LeftY - g.prevLeftY) / dt
	rightVel := (st.RightY - g.prevRightY) / dt

	remaining := dt
	for remaining > 1e-6 {
		step := math.Min(remaining, g.tuning.MaxSubstep)
		remaining -= step
		g.substep(step, leftVel, rightVel)
	}

	if g.speedMode {
		g.applyStall(dt)
	}

	g.runAI(dt)

	st.LeftY = physics.Clamp(st.LeftY, 0, st.GH-st.PaddleH)
	st.RightY = physics.Clamp(st.RightY, 0, st.GH-st.PaddleH)

	// Legacy scalar mirror of the primary ball.
	st.BallX = st.Balls[0].X
	st.BallY = st.Balls[0].Y
	st.BallVX = st.Balls[0].VX
	st.BallVY = st.Balls[0].VY

	g.prevLeftY = st.LeftY
	g.prevRightY = st.RightY
}

// substep advances every obstacle, black hole and ball by one fixed
// integration step and resolves all collisions and exits.
func (g *Game) substep(step, leftVel, rightVel float64) {
	st := &g.st

	if g.hasObstacles() {
		g.moveObstacles(step)
	}

	for i := range st.BlackHoles {
		st.BlackHoles[i].Update(step, st.GW, st.GH)
	}

	for i := range st.Balls {
		b := &st.Balls[i]

		// Gravity is applied to velocity before position integration.
		for j := range st.BlackHoles {
			fx, fy := st.BlackHoles[j].CalculateForce(b.X, b.Y)
			b.VX += fx * step
			b.VY += fy * step
		}

		b.X += b.VX * step
		b.Y += b.VY * step

		if st.Mode != ModeThreeEnemies {
			// Hard reflection off horizontal walls, position snapped to
			// the boundary. In three-enemies mode vertical exits are
			// judged against the secondary paddles instead.
			if b.Y < 0 {
				b.Y = 0
				b.VY = math.Abs(b.VY)
			} else if b.Y > st.GH-1 {
				b.Y = st.GH - 1
				b.VY = -math.Abs(b.VY)
			}
		}

		g.handlePaddles(b, leftVel, rightVel)

		g.handleSideExits(b)
		if st.Mode == ModeThreeEnemies {
			g.handleSecondaryWalls(b)
		}

		if g.hasObstacles() {
			g.collideObstacles(b)
		}
	}
}

// moveObstacles integrates obstacle positions and bounces them off the
// arena interior, each axis independently.
func (g *Game) moveObstacles(step float64) {
	st := &g.st
	for i := range st.Obstacles {
		o := &st.Obstacles[i]
		o.X += o.VX * step
		o.Y += o.VY * step

		hw := o.W / 2
		hh := o.H / 2
		if o.X-hw < obstacleMinX {
			o.X = obstacleMinX + hw
			o.VX = math.Abs(o.VX)
		} else if o.X+hw > st.GW-obstacleMinX {
			o.X = st.GW - obstacleMinX - hw
			o.VX = -math.Abs(o.VX)
		}
		if o.Y-hh < obstacleYMargin {
			o.Y = obstacleYMargin + hh
			o.VY = math.Abs(o.VY)
		} else if o.Y+hh > st.GH-obstacleYMargin {
			o.Y = st.GH - obstacleYMargin - hh
			o.VY = -math.Abs(o.VY)
		}
	}
}

// handleSideExits awards a point and re-centers a ball that left the
// arena horizontally without a paddle save.
func (g *Game) handleSideExits(b *Ball) {
	st := &g.st
	if b.X < -1.0 {
		st.ScoreRight++
		g.stallTimer = 0
		b.X = st.GW / 2
		b.Y = st.GH / 2
		b.VX = g.tuning.ServeSpeedX
		b.VY = g.tuning.ServeSpeedY
	} else if b.X > st.GW+1.0 {
		st.ScoreLeft++
		g.stallTimer = 0
		b.X = st.GW / 2
		b.Y = st.GH / 2
		b.VX = -g.tuning.ServeSpeedX
		b.VY = -g.tuning.ServeSpeedY
	}
}

// handleSecondaryWalls resolves vertical exits in three-enemies mode:
// a ball crossing the top or bottom wall within the covering paddle's
// span reflects; outside the span the defending side concedes the
// point and the ball is re-served toward the left player.
func (g *Game) handleSecondaryWalls(b *Ball) {
	st := &g.st
	halfW := st.PaddleW / 2

	if b.Y < 0 {
		if math.Abs(b.X-st.TopX) <= halfW {
			b.Y = 0
			b.VY = math.Abs(b.VY)
		} else {
			st.ScoreLeft++
			g.stallTimer = 0
			b.X = st.GW / 2
			b.Y = st.GH / 2
			b.VX = -g.tuning.ServeSpeedX
			b.VY = g.tuning.ServeSpeedY
		}
	} else if b.Y > st.GH-1 {
		if math.Abs(b.X-st.BottomX) <= halfW {
			b.Y = st.GH - 1
			b.VY = -math.Abs(b.VY)
		} else {
			st.ScoreLeft++
			g.stallTimer = 0
			b.X = st.GW / 2
			b.Y = st.GH / 2
			b.VX = -g.tuning.ServeSpeedX
			b.VY = -g.tuning.ServeSpeedY
		}
	}
}

// collideObstacles resolves a ball against every obstacle with
// minimum-translation-vector push-out: the ball exits along the axis of
// least penetration and the matching velocity component flips.
func (g *Game) collideObstacles(b *Ball) {
	st := &g.st
	r := g.tuning.BallRadius

	for i := range st.Obstacles {
		o := &st.Obstacles[i]
		hw := o.W/2 + r
		hh := o.H/2 + r

		dx := b.X - o.X
		dy := b.Y - o.Y
		if math.Abs(dx) >= hw || math.Abs(dy) >= hh {
			continue
		}

		penLeft := dx + hw   // Depth from the left face
		penRight := hw - dx  // Depth from the right face
		penTop := dy + hh    // Depth from the top face
		penBottom := hh - dy // Depth from the bottom face

		minPen := math.Min(math.Min(penLeft, penRight), math.Min(penTop, penBottom))
		switch minPen {
		case penLeft:
			b.X = o.X - o.W/2 - obstaclePushOut - obstaclePushBias
			b.VX = -math.Abs(b.VX)
		case penRight:
			b.X = o.X + o.W/2 + obstaclePushOut + obstaclePushBias
			b.VX = math.Abs(b.VX)
		case penTop:
			b.Y = o.Y - o.H/2 - obstaclePushOut - obstaclePushBias
			b.VY = -math.Abs(b.VY)
		default:
			b.Y = o.Y + o.H/2 + obstaclePushOut + obstaclePushBias
			b.VY = math.Abs(b.VY)
		}
	}
}

// applyStall accelerates every ball once the rally has gone on for a
// full stall interval without a score.
func (g *Game) applyStall(dt float64) {
	g.stallTimer += dt
	if g.stallTimer < g.tuning.StallInterval {
		return
	}
	g.stallTimer = 0

	st := &g.st
	for i := range st.Balls {
		b := &st.Balls[i]
		b.VX *= g.tuning.StallScale
		b.VY *= g.tuning.StallScale
		b.VX, b.VY = physics.CapSpeed(b.VX, b.VY, g.tuning.ArcadeSpeedCap)
	}
}
