package photonmap

import (
	"math"

	"github.com/pkg/errors"
	"pgregory.net/rand"
)

// Scene is a set of non-overlapping spheres resting on the y=0 ground plane, lit
// by a single point light. It is immutable once built.
type Scene struct {
	Spheres   []*Sphere // acceptance order
	Light     Point3
	Requested int // candidates tried
	Rejected  int // candidates dropped for overlapping

	byID map[int]*Sphere
}

// NewScene wraps an explicit sphere list. IDs must be unique.
func NewScene(light Point3, spheres ...*Sphere) (*Scene, error) {
	s := &Scene{Light: light, Requested: len(spheres), byID: make(map[int]*Sphere, len(spheres))}
	for _, sp := range spheres {
		if _, dup := s.byID[sp.ID]; dup {
			return nil, invalid("duplicate sphere id %d", sp.ID)
		}
		s.byID[sp.ID] = sp
		s.Spheres = append(s.Spheres, sp)
	}
	return s, nil
}

// BuildScene places up to cfg.MaxSpheres random spheres.
// A candidate overlapping an accepted sphere is skipped, not retried, and its
// ID (the candidate index) is simply absent from the scene.
func BuildScene(cfg SceneCfg, light Point3, rng *rand.Rand) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Scene{
		Light:     light,
		Requested: cfg.MaxSpheres,
		byID:      make(map[int]*Sphere, cfg.MaxSpheres),
	}
	for i := 0; i < cfg.MaxSpheres; i++ {
		radius := cfg.RadiusMin + rng.Float64()*(cfg.RadiusMax-cfg.RadiusMin)
		dx, dz := randomInDisk(rng)
		cand := &Sphere{
			ID:     i,
			Center: Point3{dx * cfg.PlacementRadius, radius, dz * cfg.PlacementRadius},
			Radius: radius,
		}
		if s.overlapsAny(cand) {
			s.Rejected++
			DebugLog("Rejected candidate %v", cand)
			continue
		}
		color := randomColorHSV(rng)
		cand.Metal = rng.Float64() < MetalChance
		cand.Albedo, cand.Specular = sphereMaterial(color, cand.Metal)
		s.Spheres = append(s.Spheres, cand)
		s.byID[cand.ID] = cand
	}
	Logger().Info("scene built", "requested", s.Requested, "accepted", len(s.Spheres), "rejected", s.Rejected)
	if err := s.CountErr(); err != nil {
		if cfg.Strict {
			return nil, err
		}
		Logger().Warn("scene has fewer spheres than requested", "err", err)
	}
	return s, nil
}

func (s *Scene) overlapsAny(c *Sphere) bool {
	for _, o := range s.Spheres {
		if c.overlaps(o) {
			return true
		}
	}
	return false
}

// CountErr reports a count mismatch between requested and accepted spheres.
func (s *Scene) CountErr() error {
	if len(s.Spheres) == s.Requested {
		return nil
	}
	return errors.Wrapf(ErrSceneOverfull, "accepted %d of %d spheres", len(s.Spheres), s.Requested)
}

// SphereByID looks up a sphere by its stable ID.
func (s *Scene) SphereByID(id int) (*Sphere, bool) {
	sp, ok := s.byID[id]
	return sp, ok
}

// WithLight returns a copy of the scene sharing the spheres but lit from p.
func (s *Scene) WithLight(p Point3) *Scene {
	c := *s
	c.Light = p
	return &c
}

// rotateY turns p about the Y axis through the origin.
func rotateY(p Point3, deg Real) Point3 {
	R := rotY(deg * math.Pi / 180)
	v := R.MulVec(p.Vec())
	return Point3{v.X, v.Y, v.Z}
}
