package core

import (
	"math"

	"github.com/tomz197/pong/internal/physics"
)

// paddleThickness is the horizontal extent of the main paddles. The
// left paddle occupies x in [1,3], the right one [gw-3, gw-1]; these
// offsets are fixed by convention and not stored in State.
const paddleThickness = 2.0

// broadPhaseMargin widens the cheap x-gate in front of a paddle face
// before the narrow-phase test runs.
const broadPhaseMargin = 1.5

// paddleGeom describes one vertical paddle for collision purposes.
type paddleGeom struct {
	left, right float64 // Face x positions
	top, bottom float64 // Paddle y extent
	leftSide    bool    // True for the left paddle (normal points right)
}

// collidePaddle resolves one ball against a composite paddle: a flat
// rectangle capped by two half-ellipses centered on its left and right
// faces, both expanded by the ball radius so the ball is tested as a
// point. On hit the velocity is reflected across the contact normal and
// a tangential impulse is added from the contact offset and the
// paddle's own velocity. Reports whether a collision happened.
func collidePaddle(b *Ball, p paddleGeom, paddleVel float64, physical bool, t *Tuning) bool {
	r := t.BallRadius
	halfW := (p.right - p.left) / 2
	halfH := (p.bottom - p.top) / 2
	midY := (p.top + p.bottom) / 2

	preSpeed := physics.Length(b.VX, b.VY)

	hit := false
	switch {
	case b.X >= p.left-r && b.X <= p.right+r && b.Y >= p.top && b.Y <= p.bottom:
		// Inside the flat rectangle: purely horizontal normal, push the
		// ball just outside the face it should exit through.
		if p.leftSide {
			b.X = p.right + r + 1e-3
			b.VX, b.VY = physics.Reflect(b.VX, b.VY, 1, 0)
		} else {
			b.X = p.left - r - 1e-3
			b.VX, b.VY = physics.Reflect(b.VX, b.VY, -1, 0)
		}
		hit = true
	default:
		// Expanded end-cap ellipses on both faces.
		rx := halfW + r
		ry := halfH + r
		for _, cx := range [2]float64{p.left, p.right} {
			if !physics.PointInEllipse(b.X, b.Y, cx, midY, rx, ry) {
				continue
			}
			// Project the ball onto the ellipse boundary by normalizing
			// in ellipse space, then reflect across the true ellipse
			// normal taken from the implicit-equation gradient.
			ex := (b.X - cx) / rx
			ey := (b.Y - midY) / ry
			ex, ey = physics.Normalize(ex, ey)
			b.X = cx + ex*rx
			b.Y = midY + ey*ry

			nx, ny := physics.Normalize((b.X-cx)/(rx*rx), (b.Y-midY)/(ry*ry))
			b.VX, b.VY = physics.Reflect(b.VX, b.VY, nx, ny)
			hit = true
			break
		}
	}

	if !hit {
		return false
	}

	contactOffset := physics.Clamp((b.Y-midY)/halfH, -1, 1)
	tangential := t.TangentStrength*contactOffset + t.PaddleInfluence*paddleVel

	if physical {
		// Spin, then restore the pre-hit speed scaled by restitution so
		// the impulse changes direction, not energy (beyond the >1
		// restitution that keeps rallies alive).
		b.VY += tangential
		speed := physics.Length(b.VX, b.VY)
		if speed > 1e-6 {
			scale := preSpeed * t.Restitution / speed
			b.VX *= scale
			b.VY *= scale
		}
		b.VX, b.VY = physics.CapSpeed(b.VX, b.VY, t.PhysicalSpeedCap)
	} else {
		b.VY += 0.5 * tangential
		b.VX *= t.ArcadeSpeedUp
		b.VY *= t.ArcadeSpeedUp
		b.VX, b.VY = physics.CapSpeed(b.VX, b.VY, t.ArcadeSpeedCap)
	}

	return true
}

// leftPaddleGeom returns the collision geometry of the left paddle.
func (g *Game) leftPaddleGeom() paddleGeom {
	return paddleGeom{
		left:     1,
		right:    1 + paddleThickness,
		top:      g.st.LeftY,
		bottom:   g.st.LeftY + g.st.PaddleH,
		leftSide: true,
	}
}

// rightPaddleGeom returns the collision geometry of the right paddle.
func (g *Game) rightPaddleGeom() paddleGeom {
	return paddleGeom{
		left:   g.st.GW - 1 - paddleThickness,
		right:  g.st.GW - 1,
		top:    g.st.RightY,
		bottom: g.st.RightY + g.st.PaddleH,
	}
}

// handlePaddles runs both paddle tests for one ball during a substep.
// After a hit the horizontal velocity is forced to point away from the
// paddle (tunneling correction) and the engine-wide speed cap is
// applied again on top of the cap inside collidePaddle.
func (g *Game) handlePaddles(b *Ball, leftVel, rightVel float64) {
	lp := g.leftPaddleGeom()
	if b.X < lp.right+broadPhaseMargin {
		if collidePaddle(b, lp, leftVel, g.physical, &g.tuning) {
			b.VX = math.Abs(b.VX)
			b.VX, b.VY = physics.CapSpeed(b.VX, b.VY, g.tuning.ArcadeSpeedCap)
		}
	}

	rp := g.rightPaddleGeom()
	if b.X > rp.left-broadPhaseMargin {
		if collidePaddle(b, rp, rightVel, g.physical, &g.tuning) {
			b.VX = -math.Abs(b.VX)
			b.VX, b.VY = physics.CapSpeed(b.VX, b.VY, g.tuning.ArcadeSpeedCap)
		}
	}
}
