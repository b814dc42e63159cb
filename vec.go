package sesshoku

import "math"

// Vec3 is a 3D vector in world space.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is shorthand for Vec3{X: x, Y: y, Z: z}.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LengthSquared returns |v|².
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns |v|.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Normalize returns v scaled to unit length. A zero vector yields NaN
// components, which makes every later comparison false.
func (v Vec3) Normalize() Vec3 {
	return v.Scale(1 / v.Length())
}

// DistanceSquared returns the squared Euclidean distance between v and o.
func (v Vec3) DistanceSquared(o Vec3) float32 {
	return v.Sub(o).LengthSquared()
}

// AngleBetween returns the angle in radians, in [0, π], between a and b.
// It is computed in float64 as atan2(|a×b|, a·b), which stays accurate for
// nearly parallel vectors where acos of a rounded cosine does not. A
// zero-length input yields NaN.
func AngleBetween(a, b Vec3) float32 {
	ax, ay, az := float64(a.X), float64(a.Y), float64(a.Z)
	bx, by, bz := float64(b.X), float64(b.Y), float64(b.Z)
	if ax*ax+ay*ay+az*az == 0 || bx*bx+by*by+bz*bz == 0 {
		return float32(math.NaN())
	}
	cx := ay*bz - az*by
	cy := az*bx - ax*bz
	cz := ax*by - ay*bx
	dot := ax*bx + ay*by + az*bz
	return float32(math.Atan2(math.Sqrt(cx*cx+cy*cy+cz*cz), dot))
}

// Transform is the world-space placement of an entity: a position and the
// direction the entity is facing.
type Transform struct {
	Position Vec3
	Forward  Vec3
}

// NewTransform builds a Transform at position facing forward.
func NewTransform(position, forward Vec3) Transform {
	return Transform{Position: position, Forward: forward}
}
