package vmath

import "math"

// ClampToCircle projects p onto the circle of radius r around center when p lies outside it
// Returns the (possibly moved) point and whether p was outside
// A point exactly at center is never outside for r >= 0
func ClampToCircle(p, center Vec2, r float64) (Vec2, bool) {
	d := Distance(center, p)
	if d <= r {
		return p, false
	}
	return FromAngle(center, Angle(center, p), r), true
}

// CirclesOverlap reports whether the distance between a and b is strictly below reach
func CirclesOverlap(a, b Vec2, reach float64) bool {
	return Distance(a, b) < reach
}

// SampleAnnulus returns a point drawn area-uniformly from the ring [inner, outer] around center
// Degenerate rings (outer <= inner) collapse onto the inner radius
func SampleAnnulus(center Vec2, inner, outer float64, rng *FastRand) Vec2 {
	if inner < 0 {
		inner = 0
	}
	angle := rng.Float64() * 2 * math.Pi
	r := inner
	if outer > inner {
		innerSq := inner * inner
		r = math.Sqrt(innerSq + rng.Float64()*(outer*outer-innerSq))
	}
	return FromAngle(center, angle, r)
}
