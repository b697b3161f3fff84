package photonmap

// FilterMode selects how a hit sphere tints the photon energy.
type FilterMode string

const (
	// FilterIndexTable is the fixed per-ID table: 0 -> green, 2 -> red, others pass.
	FilterIndexTable FilterMode = "index"
	// FilterMaterial tints by the sphere's own albedo, or specular for metals.
	FilterMaterial FilterMode = "material"
)

var (
	filterGreen = RGB{0, 1, 0}
	filterRed   = RGB{1, 0, 0}
)

// FilterColor models selective absorption as a component-wise minimum.
func FilterColor(c, f RGB) RGB {
	return RGB{min(c.R, f.R), min(c.G, f.G), min(c.B, f.B)}
}

// GetColor filters c by the sphere that was hit.
func GetColor(c RGB, s *Sphere, mode FilterMode) RGB {
	if s == nil {
		return c
	}
	if mode == FilterMaterial {
		if s.Metal {
			return FilterColor(c, s.Specular)
		}
		return FilterColor(c, s.Albedo)
	}
	switch s.ID {
	case 0:
		return FilterColor(c, filterGreen)
	case 2:
		return FilterColor(c, filterRed)
	}
	return FilterColor(c, White)
}

// LightDiffuse is the Lambert term between N and the direction from P to the light.
func LightDiffuse(N Vector3, P, light Point3) Real {
	L := light.Sub(P).Norm()
	return N.Dot(L)
}

// LightObject clamps the diffuse term of sphere s at P into [ambient, 1].
func LightObject(s *Sphere, P, light Point3, ambient Real) Real {
	i := LightDiffuse(s.Normal(P), P, light)
	return min(1.0, max(i, ambient))
}
