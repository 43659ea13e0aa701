package core

import (
	"math"

	"github.com/tomz197/pong/internal/physics"
)

// runAI moves every AI-controlled paddle once per Update (not per
// substep). Main paddles track the nearest ball approaching their wall
// with a speed-limited step; snap-to-target is deliberately avoided so
// a fast ball can beat the paddle.
func (g *Game) runAI(dt float64) {
	st := &g.st

	if g.rightAI {
		if target, ok := g.trackBallX(false); ok {
			maxStep := g.tuning.AISpeed * g.aiSpeed * dt
			st.RightY += physics.Clamp(target-st.RightY, -maxStep, maxStep)
		}
	}
	if g.leftAI {
		if target, ok := g.trackBallX(true); ok {
			maxStep := g.tuning.AISpeed * g.aiSpeed * dt
			st.LeftY += physics.Clamp(target-st.LeftY, -maxStep, maxStep)
		}
	}

	if st.Mode == ModeThreeEnemies {
		g.runSecondaryAI(dt)
	}
}

// trackBallX finds the target paddle top for the ball closest to the
// tracked wall among balls moving toward it. Reports false when no ball
// approaches.
func (g *Game) trackBallX(left bool) (float64, bool) {
	st := &g.st
	best := math.MaxFloat64
	target := 0.0
	found := false

	for i := range st.Balls {
		b := &st.Balls[i]
		var dist float64
		if left {
			if b.VX >= 0 {
				continue
			}
			dist = b.X
		} else {
			if b.VX <= 0 {
				continue
			}
			dist = st.GW - b.X
		}
		if dist < best {
			best = dist
			target = b.Y - st.PaddleH/2
			found = true
		}
	}
	return target, found
}

// runSecondaryAI drives the top and bottom paddles in three-enemies
// mode: each tracks the nearest ball approaching its wall at a flat
// speed, then is clamped inside the arena.
func (g *Game) runSecondaryAI(dt float64) {
	st := &g.st
	maxStep := g.tuning.SecondaryAISpeed * dt

	if target, ok := g.trackBallY(true); ok {
		st.TopX += physics.Clamp(target-st.TopX, -maxStep, maxStep)
	}
	if target, ok := g.trackBallY(false); ok {
		st.BottomX += physics.Clamp(target-st.BottomX, -maxStep, maxStep)
	}

	halfW := st.PaddleW / 2
	st.TopX = physics.Clamp(st.TopX, halfW, st.GW-halfW)
	st.BottomX = physics.Clamp(st.BottomX, halfW, st.GW-halfW)
}

// trackBallY finds the x target for a horizontal paddle: the ball
// nearest its wall among balls moving toward it.
func (g *Game) trackBallY(top bool) (float64, bool) {
	st := &g.st
	best := math.MaxFloat64
	target := 0.0
	found := false

	for i := range st.Balls {
		b := &st.Balls[i]
		var dist float64
		if top {
			if b.VY >= 0 {
				continue
			}
			dist = b.Y
		} else {
			if b.VY <= 0 {
				continue
			}
			dist = st.GH - b.Y
		}
		if dist < best {
			best = dist
			target = b.X
			found = true
		}
	}
	return target, found
}
