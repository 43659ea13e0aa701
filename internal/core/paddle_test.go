package core

import (
	"math"
	"testing"
)

func testGeomLeft() paddleGeom {
	return paddleGeom{left: 1, right: 3, top: 9.5, bottom: 14.5, leftSide: true}
}

func TestCollidePaddleRectFace(t *testing.T) {
	tun := DefaultTuning()
	b := Ball{X: 2.5, Y: 12, VX: -30, VY: 0}

	hit := collidePaddle(&b, testGeomLeft(), 0, true, &tun)

	if !hit {
		t.Fatal("ball inside the paddle rectangle did not collide")
	}
	if b.VX <= 0 {
		t.Errorf("velocity not reflected off the face: vx=%f", b.VX)
	}
	if b.X <= 3+tun.BallRadius {
		t.Errorf("ball not pushed outside the face: x=%f", b.X)
	}
}

func TestCollidePaddleCenterHitKeepsSpeed(t *testing.T) {
	tun := DefaultTuning()
	// Dead-center hit with a stationary paddle: no contact offset, no
	// paddle velocity, so the only speed change is restitution.
	b := Ball{X: 2.5, Y: 12, VX: -30, VY: 0}
	pre := math.Hypot(b.VX, b.VY)

	collidePaddle(&b, testGeomLeft(), 0, true, &tun)

	got := math.Hypot(b.VX, b.VY)
	want := pre * tun.Restitution
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("post-hit speed: got %f, want %f", got, want)
	}
}

func TestCollidePaddleEllipseCap(t *testing.T) {
	tun := DefaultTuning()
	// Just off the bottom-right corner, inside the expanded right cap
	// but outside the rectangle.
	b := Ball{X: 3.8, Y: 14.2, VX: -20, VY: -5}

	hit := collidePaddle(&b, testGeomLeft(), 0, true, &tun)

	if !hit {
		t.Fatal("ball inside the expanded cap ellipse did not collide")
	}
	// The cap normal points down-right here, so the reflected velocity
	// gains a downward component and the spin from a positive contact
	// offset keeps it positive.
	if b.VY <= 0 {
		t.Errorf("expected downward velocity off the lower cap, vy=%f", b.VY)
	}
}

func TestCollidePaddleMiss(t *testing.T) {
	tun := DefaultTuning()
	b := Ball{X: 6, Y: 2, VX: -10, VY: 0}

	if collidePaddle(&b, testGeomLeft(), 0, true, &tun) {
		t.Error("ball far from the paddle reported a collision")
	}
	if b.VX != -10 || b.VY != 0 {
		t.Errorf("miss mutated the ball: %+v", b)
	}
}

func TestCollidePaddleArcadeMode(t *testing.T) {
	tun := DefaultTuning()
	b := Ball{X: 2.5, Y: 12, VX: -30, VY: 0}
	pre := math.Hypot(b.VX, b.VY)

	collidePaddle(&b, testGeomLeft(), 0, false, &tun)

	// Dead-center arcade hit: flat multiplier, no spin.
	got := math.Hypot(b.VX, b.VY)
	want := pre * tun.ArcadeSpeedUp
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("arcade post-hit speed: got %f, want %f", got, want)
	}
}

func TestCollidePaddleVelocityTransfersSpin(t *testing.T) {
	tun := DefaultTuning()
	// Paddle moving down fast imparts downward spin even on a center hit.
	b := Ball{X: 2.5, Y: 12, VX: -30, VY: 0}

	collidePaddle(&b, testGeomLeft(), 10, true, &tun)

	if b.VY <= 0 {
		t.Errorf("moving paddle imparted no spin: vy=%f", b.VY)
	}
}

func TestHandlePaddlesForcesExitDirection(t *testing.T) {
	g := NewGame()

	b := Ball{X: 2.5, Y: 12, VX: -30, VY: 0}
	g.handlePaddles(&b, 0, 0)

	if b.VX <= 0 {
		t.Errorf("left paddle hit should force rightward velocity, vx=%f", b.VX)
	}

	st := g.State()
	b = Ball{X: st.GW - 2.5, Y: 12, VX: 30, VY: 0}
	g.handlePaddles(&b, 0, 0)

	if b.VX >= 0 {
		t.Errorf("right paddle hit should force leftward velocity, vx=%f", b.VX)
	}
}
