package physics

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance: got %f, want 5", got)
	}
	if got := DistanceSquared(0, 0, 3, 4); got != 25 {
		t.Errorf("DistanceSquared: got %f, want 25", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp above: got %f, want 3", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Errorf("Clamp below: got %f, want 0", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Errorf("Clamp inside: got %f, want 2", got)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	nx, ny := Normalize(0, 0)
	if math.IsNaN(nx) || math.IsNaN(ny) || math.IsInf(nx, 0) || math.IsInf(ny, 0) {
		t.Errorf("Normalize(0,0) not finite: (%f, %f)", nx, ny)
	}
}

func TestReflect(t *testing.T) {
	// Head-on into a wall facing +x.
	rx, ry := Reflect(-10, 3, 1, 0)
	if rx != 10 || ry != 3 {
		t.Errorf("Reflect: got (%f, %f), want (10, 3)", rx, ry)
	}
}

func TestCapSpeed(t *testing.T) {
	cx, cy := CapSpeed(30, 40, 10)
	if got := math.Hypot(cx, cy); math.Abs(got-10) > 1e-9 {
		t.Errorf("CapSpeed magnitude: got %f, want 10", got)
	}
	// Direction preserved.
	if cx <= 0 || cy <= 0 || math.Abs(cy/cx-40.0/30.0) > 1e-9 {
		t.Errorf("CapSpeed direction changed: (%f, %f)", cx, cy)
	}

	cx, cy = CapSpeed(3, 4, 10)
	if cx != 3 || cy != 4 {
		t.Errorf("CapSpeed under the cap mutated velocity: (%f, %f)", cx, cy)
	}
}

func TestPointInEllipse(t *testing.T) {
	if !PointInEllipse(1, 0, 0, 0, 2, 1) {
		t.Error("point on major axis inside ellipse reported outside")
	}
	if PointInEllipse(0, 2, 0, 0, 2, 1) {
		t.Error("point beyond minor axis reported inside")
	}
	if PointInEllipse(1, 1, 0, 0, 0, 0) {
		t.Error("degenerate ellipse contained a point")
	}
}
