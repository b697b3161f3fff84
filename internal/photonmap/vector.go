package photonmap

import "math"

// Vector3 represents a direction (not a position) in 3D space.
type Vector3 struct {
	X Real `json:"x" yaml:"x"`
	Y Real `json:"y" yaml:"y"`
	Z Real `json:"z" yaml:"z"`
}

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// A (near) zero vector comes back as the zero vector, never as NaN.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l < epsNorm {
		return Vector3{}
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// NormChecked is Norm for callers that cannot continue with a zero vector.
func (v Vector3) NormChecked() (Vector3, error) {
	if v.Len() < epsNorm {
		return Vector3{}, degenerate("normalize %+v", v)
	}
	return v.Norm(), nil
}

func (v Vector3) IsZero() bool { return v.Len() < epsNorm }

func reflect3(I, N Vector3) Vector3 {
	return I.Sub(N.Mul(2 * I.Dot(N)))
}
