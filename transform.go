package evergreen

import "math"

// Vec3 is a point or direction in 3-space. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length, or v unchanged if it is zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// LerpVec3 linearly interpolates between a and b by t. The a*(1-t) + b*t
// form returns a exactly at t=0 and b exactly at t=1.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	s := 1 - t
	return Vec3{a.X*s + b.X*t, a.Y*s + b.Y*t, a.Z*s + b.Z*t}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Euler is an XYZ-order Euler rotation in radians.
type Euler struct {
	X, Y, Z float64
}

// Quat is a unit quaternion orientation.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the orientation with no rotation.
var QuatIdentity = Quat{0, 0, 0, 1}

// QuatFromEuler converts an XYZ-order Euler rotation to a quaternion.
func QuatFromEuler(e Euler) Quat {
	s1, c1 := math.Sincos(e.X / 2)
	s2, c2 := math.Sincos(e.Y / 2)
	s3, c3 := math.Sincos(e.Z / 2)
	return Quat{
		X: s1*c2*c3 + c1*s2*s3,
		Y: c1*s2*c3 - s1*c2*s3,
		Z: c1*c2*s3 + s1*s2*c3,
		W: c1*c2*c3 - s1*s2*s3,
	}
}

// QuatFromAxisAngle returns the rotation of angle radians about a unit axis.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	s, c := math.Sincos(angle / 2)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// Mul returns the composition q * r: r is applied first, then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Dot returns the 4D dot product of q and r.
func (q Quat) Dot(r Quat) float64 {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// Normalize returns q scaled to unit length.
func (q Quat) Normalize() Quat {
	l := math.Sqrt(q.Dot(q))
	if l == 0 {
		return QuatIdentity
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Rotate applies the rotation q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// SameRotation reports whether q and r describe the same orientation within
// eps. q and -q are the same rotation.
func (q Quat) SameRotation(r Quat, eps float64) bool {
	return 1-math.Abs(q.Dot(r)) <= eps
}

// Slerp spherically interpolates from a to b by t along the shorter arc.
// Returns a exactly at t<=0 and b exactly at t>=1.
func Slerp(a, b Quat, t float64) Quat {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	cos := a.Dot(b)
	if cos < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		cos = -cos
	}
	if cos > 0.9995 {
		return Quat{
			lerp(a.X, b.X, t), lerp(a.Y, b.Y, t),
			lerp(a.Z, b.Z, t), lerp(a.W, b.W, t),
		}.Normalize()
	}
	theta := math.Acos(cos)
	sin := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sin
	wb := math.Sin(t*theta) / sin
	return Quat{
		a.X*wa + b.X*wb, a.Y*wa + b.Y*wb,
		a.Z*wa + b.Z*wb, a.W*wa + b.W*wb,
	}
}

// Transform is the evaluated pose of one instance for one frame.
type Transform struct {
	Position    Vec3
	Orientation Quat
	Scale       Vec3
}

// Uniform returns a Vec3 with all components set to s.
func Uniform(s float64) Vec3 { return Vec3{s, s, s} }

// Matrix composes the transform into a 4x4 matrix (translate * rotate * scale).
func (t Transform) Matrix() Mat4 {
	return Compose(t.Position, t.Orientation, t.Scale)
}

// Mat4 is a column-major 4x4 matrix. Element m[c*4+r] is column c, row r.
//
//	| m0 m4 m8  m12 |
//	| m1 m5 m9  m13 |
//	| m2 m6 m10 m14 |
//	| m3 m7 m11 m15 |
type Mat4 [16]float64

// identityMat4 is the identity matrix.
var identityMat4 = Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// Compose builds translate(p) * rotate(q) * scale(s).
func Compose(p Vec3, q Quat, s Vec3) Mat4 {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	return Mat4{
		(1 - (yy + zz)) * s.X, (xy + wz) * s.X, (xz - wy) * s.X, 0,
		(xy - wz) * s.Y, (1 - (xx + zz)) * s.Y, (yz + wx) * s.Y, 0,
		(xz + wy) * s.Z, (yz - wx) * s.Z, (1 - (xx + yy)) * s.Z, 0,
		p.X, p.Y, p.Z, 1,
	}
}

// Translation returns a pure translation matrix.
func Translation(v Vec3) Mat4 {
	m := identityMat4
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// RotationX returns a rotation of angle radians about the X axis.
func RotationX(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := identityMat4
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// RotationY returns a rotation of angle radians about the Y axis.
func RotationY(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := identityMat4
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// Scaling returns a pure scale matrix.
func Scaling(v Vec3) Mat4 {
	m := identityMat4
	m[0], m[5], m[10] = v.X, v.Y, v.Z
	return m
}

// Mul returns m * o (o applied first).
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = m[row]*o[c*4] + m[4+row]*o[c*4+1] + m[8+row]*o[c*4+2] + m[12+row]*o[c*4+3]
		}
	}
	return r
}

// TransformPoint applies m to the point v (w = 1).
func (m Mat4) TransformPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// Origin returns the translation column of m.
func (m Mat4) Origin() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}
