// Package physics provides scalar and vector helpers for the simulation.
package physics

import "math"

// minNormalLength floors vector lengths before normalization to avoid
// division by near-zero in normal and tangent computations.
const minNormalLength = 1e-6

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSquared(x1, y1, x2, y2))
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Length returns the magnitude of the vector (x, y).
func Length(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Normalize returns the unit vector of (x, y). The length is floored at
// a small epsilon so degenerate inputs yield a finite result.
func Normalize(x, y float64) (nx, ny float64) {
	l := math.Sqrt(x*x + y*y)
	if l < minNormalLength {
		l = minNormalLength
	}
	return x / l, y / l
}

// Reflect mirrors the velocity (vx, vy) across the unit normal (nx, ny).
func Reflect(vx, vy, nx, ny float64) (rx, ry float64) {
	dot := vx*nx + vy*ny
	return vx - 2*dot*nx, vy - 2*dot*ny
}

// CapSpeed rescales (vx, vy) so its magnitude does not exceed max.
func CapSpeed(vx, vy, max float64) (cx, cy float64) {
	l := math.Sqrt(vx*vx + vy*vy)
	if l <= max || l < minNormalLength {
		return vx, vy
	}
	s := max / l
	return vx * s, vy * s
}

// PointInEllipse reports whether the point (px, py) lies inside the
// ellipse centered at (cx, cy) with radii rx and ry.
func PointInEllipse(px, py, cx, cy, rx, ry float64) bool {
	if rx < minNormalLength || ry < minNormalLength {
		return false
	}
	dx := (px - cx) / rx
	dy := (py - cy) / ry
	return dx*dx+dy*dy <= 1
}
