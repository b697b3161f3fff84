package photonmap

import (
	"fmt"
	"math"
)

// Sphere is the only scene primitive. ID is stable for the scene's lifetime.
type Sphere struct {
	ID       int
	Center   Point3
	Radius   Real
	Albedo   RGB
	Specular RGB
	Metal    bool
}

// NewSphere validates the sphere and derives albedo/specular from color and the metal flag.
func NewSphere(id int, center Point3, radius Real, color RGB, metal bool) (*Sphere, error) {
	if !(radius > 0) || !isFinite(radius) {
		return nil, invalid("sphere %d radius must be > 0, got %v", id, radius)
	}
	if !color.in01() {
		return nil, invalid("sphere %d color must be in [0,1], got %+v", id, color)
	}
	albedo, specular := sphereMaterial(color, metal)
	s := &Sphere{
		ID:       id,
		Center:   center,
		Radius:   radius,
		Albedo:   albedo,
		Specular: specular,
		Metal:    metal,
	}
	return s, nil
}

func (s *Sphere) String() string {
	return fmt.Sprintf("sphere#%d{c=%+v r=%.4g metal=%v}", s.ID, s.Center, s.Radius, s.Metal)
}

// overlaps uses the placement test: squared center distance < (r1+r2)^2.
func (s *Sphere) overlaps(o *Sphere) bool {
	minDist := s.Radius + o.Radius
	return sqDist(s.Center, o.Center) < minDist*minDist
}

// contains reports whether p lies within the sphere (squared-radius test).
func (s *Sphere) contains(p Point3) bool {
	return sqDist(p, s.Center) <= s.Radius*s.Radius
}

// Normal is the outward unit normal at surface point P.
func (s *Sphere) Normal(P Point3) Vector3 {
	return P.Sub(s.Center).Norm()
}

// intersectSphere solves A t^2 + B t + C = 0 for the ray O + tD and keeps the hit
// only when it is positive and nearer than st.Dist.
// The root sign picks the far root when O is inside the sphere.
func intersectSphere(s *Sphere, D Vector3, O Point3, st TraceState) TraceState {
	sv := s.Center.Sub(O)
	A := D.Dot(D)
	if A == 0 {
		return st
	}
	B := -2 * sv.Dot(D)
	C := sv.Dot(sv) - s.Radius*s.Radius
	disc := B*B - 4*A*C
	if disc <= 0 {
		return st
	}
	sign := -1.0
	if C < -insideEps {
		sign = 1
	}
	t := (-B + sign*math.Sqrt(disc)) / (2 * A)
	if t > 0 && t < st.Dist {
		st.Dist = t
		st.Index = s.ID
		st.Sphere = s
		st.Intersects = true
	}
	return st
}
