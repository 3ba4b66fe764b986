package vmath

import "math"

// Vec2 is a point or displacement in arena space
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns Euclidean distance between a and b
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Angle returns the direction from origin to p in radians
func Angle(origin, p Vec2) float64 {
	return math.Atan2(p.Y-origin.Y, p.X-origin.X)
}

// FromAngle returns the point at distance r from origin along angle
func FromAngle(origin Vec2, angle, r float64) Vec2 {
	return Vec2{origin.X + math.Cos(angle)*r, origin.Y + math.Sin(angle)*r}
}

// V2Normalize returns unit vector and original length, zero-safe
// A zero vector yields (Vec2{}, 0) so callers can skip directional work
func V2Normalize(v Vec2) (Vec2, float64) {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}, 0
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}, mag
}

// ClampMagnitude limits v to maxMag while preserving direction
func ClampMagnitude(v Vec2, maxMag float64) Vec2 {
	mag := V2Mag(v)
	if mag <= maxMag || mag == 0 {
		return v
	}
	return V2Scale(v, maxMag/mag)
}

// Reflect returns v reflected off a surface with unit normal n
// v' = v - 2(v·n)n
func Reflect(v, n Vec2) Vec2 {
	d := 2 * V2Dot(v, n)
	return Vec2{v.X - d*n.X, v.Y - d*n.Y}
}

// MirrorThrough reflects p through center: 2*center - p
func MirrorThrough(p, center Vec2) Vec2 {
	return Vec2{2*center.X - p.X, 2*center.Y - p.Y}
}
