package photonmap

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"pgregory.net/rand"
)

// RGB stores color components; each should be in [0,1] for materials.
// Photon energies and radiance estimates may exceed 1.
type RGB struct {
	R Real `json:"r" yaml:"r"`
	G Real `json:"g" yaml:"g"`
	B Real `json:"b" yaml:"b"`
}

var (
	White = RGB{1, 1, 1}
	Black = RGB{}
)

func (c RGB) Add(o RGB) RGB  { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c RGB) Mul(s Real) RGB { return RGB{c.R * s, c.G * s, c.B * s} }
func (c RGB) Ch(ch int) Real {
	switch ch {
	case ChR:
		return c.R
	case ChG:
		return c.G
	default:
		return c.B
	}
}

// Max returns the peak channel.
func (c RGB) Max() Real {
	m := c.R
	if c.G > m {
		m = c.G
	}
	if c.B > m {
		m = c.B
	}
	return m
}

// clamp01 clamps each channel to [0,1].
func (c RGB) clamp01() RGB {
	return RGB{clamp(c.R, 0, 1), clamp(c.G, 0, 1), clamp(c.B, 0, 1)}
}

func (c RGB) in01() bool {
	return c == c.clamp01()
}

// randomColorHSV draws hue, saturation and value uniformly in [0,1].
func randomColorHSV(rng *rand.Rand) RGB {
	h, s, v := rng.Float64(), rng.Float64(), rng.Float64()
	c := colorful.Hsv(h*360, s, v)
	return RGB{c.R, c.G, c.B}.clamp01()
}

// sphereMaterial assigns albedo/specular by the metal coin flip.
func sphereMaterial(color RGB, metal bool) (albedo, specular RGB) {
	if metal {
		return Black, color
	}
	return color, RGB{DielectricSpec, DielectricSpec, DielectricSpec}
}
