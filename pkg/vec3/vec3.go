// pkg/vec3/vec3.go
package vec3

import "math"

// Vec3 is a 3D vector in world space. All engine math runs on float64.
type Vec3 struct {
	X, Y, Z float64
}

// New creates a vector from its components.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

func (v Vec3) DistanceTo(o Vec3) float64 {
	return o.Sub(v).Length()
}

// Normalize returns a unit vector, or the zero vector if v has no length.
func (v Vec3) Normalize() Vec3 {
	mag := v.Length()
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Reflect mirrors v about the unit normal n: v - 2*(v·n)*n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Lerp performs component-wise linear interpolation between a and b.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Slerp interpolates between two unit direction vectors along the great
// circle between them. Falls back to normalized lerp when the directions are
// nearly parallel, and picks an arbitrary perpendicular axis when they are
// nearly opposite.
func Slerp(a, b Vec3, t float64) Vec3 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	dot := a.Dot(b)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}

	if dot > 0.9995 {
		res := Lerp(a, b, t).Normalize()
		if res.IsZero() {
			return b
		}
		return res
	}

	if dot < -0.9995 {
		// Opposite directions: rotate through a perpendicular axis
		axis := a.Cross(Vec3{Y: 1})
		if axis.LengthSq() < 1e-12 {
			axis = a.Cross(Vec3{X: 1})
		}
		axis = axis.Normalize()
		angle := math.Pi * t
		return rotateAround(a, axis, angle)
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return a.Scale(wa).Add(b.Scale(wb))
}

// rotateAround rotates v about the unit axis by angle (Rodrigues' formula).
func rotateAround(v, axis Vec3, angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return v.Scale(cos).
		Add(axis.Cross(v).Scale(sin)).
		Add(axis.Scale(axis.Dot(v) * (1 - cos)))
}
