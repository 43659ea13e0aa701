package core

import (
	"github.com/tomz197/pong/internal/physics"
)

// Default black hole parameters used when gravity is enabled on reset.
const (
	blackHoleStrength  = 60.0
	blackHoleRadius    = 1.5
	blackHoleInfluence = 18.0
	blackHoleVX        = 6.0
	blackHoleVY        = 3.0
)

// minGravityDistance floors the distance used in the inverse-square law
// so force stays finite near the center.
const minGravityDistance = 0.5

// patrolMargin is the extra wall clearance a moving black hole keeps
// beyond its cosmetic radius.
const patrolMargin = 5.0

// BlackHole is a point attractor. Strength is an inverse-square
// gravitational constant, Influence a hard cutoff radius beyond which
// the force is zero, Radius cosmetic only. When Moving is set the hole
// patrols and bounces within the arena.
type BlackHole struct {
	X, Y      float64
	VX, VY    float64
	Strength  float64
	Radius    float64
	Influence float64
	Moving    bool
}

// NewBlackHole creates a stationary black hole at (x, y) with the
// default strength, radius and influence.
func NewBlackHole(x, y float64) BlackHole {
	return BlackHole{
		X:         x,
		Y:         y,
		Strength:  blackHoleStrength,
		Radius:    blackHoleRadius,
		Influence: blackHoleInfluence,
	}
}

// CalculateForce returns the attractive force the hole exerts on the
// point (px, py). Zero outside the influence radius; the distance is
// floored near the center so the force never blows up.
func (b *BlackHole) CalculateForce(px, py float64) (fx, fy float64) {
	dx := b.X - px
	dy := b.Y - py
	dist := physics.Distance(px, py, b.X, b.Y)
	if dist > b.Influence {
		return 0, 0
	}
	if dist < minGravityDistance {
		dist = minGravityDistance
	}
	mag := b.Strength / (dist * dist)
	return dx / dist * mag, dy / dist * mag
}

// Update advances a patrolling hole and bounces it off the arena walls,
// keeping a patrolMargin clearance beyond its radius. No-op unless
// Moving is set.
func (b *BlackHole) Update(dt, boundsW, boundsH float64) {
	if !b.Moving {
		return
	}

	b.X += b.VX * dt
	b.Y += b.VY * dt

	margin := b.Radius + patrolMargin
	if b.X < margin {
		b.X = margin
		b.VX = -b.VX
	} else if b.X > boundsW-margin {
		b.X = boundsW - margin
		b.VX = -b.VX
	}
	if b.Y < margin {
		b.Y = margin
		b.VY = -b.VY
	} else if b.Y > boundsH-margin {
		b.Y = boundsH - margin
		b.VY = -b.VY
	}
}
