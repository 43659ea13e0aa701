package core

import (
	"math"
	"testing"
)

func TestBlackHoleForceCutoff(t *testing.T) {
	b := NewBlackHole(40, 12)

	fx, fy := b.CalculateForce(40+b.Influence+1, 12)
	if fx != 0 || fy != 0 {
		t.Errorf("force beyond influence radius: (%f, %f)", fx, fy)
	}
}

func TestBlackHoleForceAttracts(t *testing.T) {
	b := NewBlackHole(40, 12)

	fx, fy := b.CalculateForce(30, 12)
	if fx <= 0 {
		t.Errorf("force should point toward the hole (+x), got fx=%f", fx)
	}
	if fy != 0 {
		t.Errorf("aligned query should have no y component, got fy=%f", fy)
	}

	want := b.Strength / 100 // Inverse square at distance 10
	if math.Abs(fx-want) > 1e-9 {
		t.Errorf("force magnitude: got %f, want %f", fx, want)
	}
}

func TestBlackHoleSingularityFloor(t *testing.T) {
	b := NewBlackHole(40, 12)

	// Distance is floored at 0.5, so the force right next to the center
	// must equal the force at exactly 0.5.
	fxNear, _ := b.CalculateForce(40-0.0001, 12)
	fxFloor, _ := b.CalculateForce(40-0.5, 12)

	if math.Abs(fxNear) > math.Abs(fxFloor)+1e-9 {
		t.Errorf("force near center %f exceeds floored force %f", fxNear, fxFloor)
	}
	if math.IsInf(fxNear, 0) || math.IsNaN(fxNear) {
		t.Errorf("force near center is not finite: %f", fxNear)
	}
}

func TestBlackHoleStationaryUpdate(t *testing.T) {
	b := NewBlackHole(40, 12)
	b.VX, b.VY = 10, 10 // Ignored while not moving

	b.Update(1.0, 80, 24)

	if b.X != 40 || b.Y != 12 {
		t.Errorf("stationary hole moved to (%f, %f)", b.X, b.Y)
	}
}

func TestBlackHolePatrolBounce(t *testing.T) {
	b := NewBlackHole(40, 12)
	b.Moving = true
	b.VX, b.VY = 50, 0

	margin := b.Radius + 5
	for i := 0; i < 100; i++ {
		b.Update(0.1, 80, 24)
		if b.X < margin-1e-9 || b.X > 80-margin+1e-9 {
			t.Fatalf("hole escaped patrol bounds at step %d: x=%f", i, b.X)
		}
	}
	if b.VX == 50 && b.X == 40 {
		t.Error("patrolling hole never moved")
	}
}
