package photonmap

import (
	"math"
	"testing"
)

func TestFilterColorProperties(t *testing.T) {
	rng := newRNG(11, 0)
	for i := 0; i < 500; i++ {
		a, b := randomColorHSV(rng), randomColorHSV(rng)
		if FilterColor(a, b) != FilterColor(b, a) {
			t.Fatalf("filter not commutative for %v %v", a, b)
		}
		if FilterColor(a, a) != a {
			t.Fatalf("filter not idempotent for %v", a)
		}
		if FilterColor(a, White) != a || FilterColor(a, Black) != Black {
			t.Fatalf("white/black identities broken for %v", a)
		}
	}
}

func TestGetColorIndexTable(t *testing.T) {
	cases := []struct {
		id   int
		want RGB
	}{
		{0, RGB{0, 1, 0}},
		{1, White},
		{2, RGB{1, 0, 0}},
		{5, White},
	}
	for _, tc := range cases {
		s := &Sphere{ID: tc.id, Radius: 1, Albedo: RGB{0.2, 0.2, 0.2}}
		if got := GetColor(White, s, FilterIndexTable); got != tc.want {
			t.Fatalf("id %d: got %v, want %v", tc.id, got, tc.want)
		}
	}
	if got := GetColor(RGB{0.5, 0.5, 0.5}, nil, FilterIndexTable); got != (RGB{0.5, 0.5, 0.5}) {
		t.Fatalf("nil sphere must not filter, got %v", got)
	}
	// red after green leaves nothing
	s0, s2 := &Sphere{ID: 0}, &Sphere{ID: 2}
	if got := GetColor(GetColor(White, s0, FilterIndexTable), s2, FilterIndexTable); got != Black {
		t.Fatalf("green then red: got %v", got)
	}
}

func TestGetColorMaterial(t *testing.T) {
	color := RGB{0.9, 0.4, 0.1}
	diel := mustSphere(t, 0, Point3{}, 1, color, false)
	metal := mustSphere(t, 1, Point3{}, 1, color, true)
	if got := GetColor(White, diel, FilterMaterial); got != color {
		t.Fatalf("dielectric: got %v, want %v", got, color)
	}
	if got := GetColor(White, metal, FilterMaterial); got != color {
		t.Fatalf("metal: got %v, want %v", got, color)
	}
	if got := GetColor(RGB{0.5, 0.5, 0.5}, diel, FilterMaterial); got != (RGB{0.5, 0.4, 0.1}) {
		t.Fatalf("dielectric min filter: got %v", got)
	}
}

func TestLightDiffuseAndObject(t *testing.T) {
	s := mustSphere(t, 0, Point3{}, 1, White, false)
	top := Point3{0, 1, 0}
	if d := LightDiffuse(Vector3{0, 1, 0}, top, Point3{0, 5, 0}); math.Abs(d-1) > 1e-12 {
		t.Fatalf("facing light: %v", d)
	}
	if d := LightDiffuse(Vector3{0, 1, 0}, top, Point3{0, -5, 0}); math.Abs(d+1) > 1e-12 {
		t.Fatalf("facing away: %v", d)
	}
	if v := LightObject(s, top, Point3{0, -5, 0}, 0.1); v != 0.1 {
		t.Fatalf("ambient floor not applied: %v", v)
	}
	if v := LightObject(s, top, Point3{0, 5, 0}, 0.1); math.Abs(v-1) > 1e-12 {
		t.Fatalf("lit top: %v", v)
	}
	side := Point3{1, 0, 0}
	v := LightObject(s, side, Point3{1, 1, 0}, 0)
	if v < 0 || v > 1e-12 {
		t.Fatalf("grazing light: %v", v)
	}
}
