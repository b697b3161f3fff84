package photonmap

import (
	"math"
	"testing"
)

func TestGatherPhotons(t *testing.T) {
	N := Vector3{0, 1, 0}
	P := Point3{0, 1, 0}
	down := Vector3{0, -1, 0}

	if got := GatherPhotons(nil, N, P, 0, SqRadius, Exposure); got != Black {
		t.Fatalf("nil map: %v", got)
	}

	pm := NewPhotonMap()
	pm.Append(Photon{Position: P, Direction: down, Energy: RGB{0, 1, 0}, SphereID: 0, Bounce: 1})
	got := GatherPhotons(pm, N, P, 0, SqRadius, Exposure)
	if want := (RGB{0, 1 / Exposure, 0}); math.Abs(got.G-want.G) > 1e-15 || got.R != 0 || got.B != 0 {
		t.Fatalf("coincident photon: got %v, want %v", got, want)
	}

	// a photon on another sphere never contributes
	if got := GatherPhotons(pm, N, P, 1, SqRadius, Exposure); got != Black {
		t.Fatalf("wrong sphere: %v", got)
	}

	// outside the gather radius
	far := NewPhotonMap()
	far.Append(Photon{Position: Point3{1, 1, 0}, Direction: down, Energy: White, SphereID: 0, Bounce: 1})
	if got := GatherPhotons(far, N, P, 0, 0.5, Exposure); got != Black {
		t.Fatalf("far photon: %v", got)
	}

	// arriving from behind the surface
	back := NewPhotonMap()
	back.Append(Photon{Position: P, Direction: Vector3{0, 1, 0}, Energy: White, SphereID: 0, Bounce: 1})
	if got := GatherPhotons(back, N, P, 0, SqRadius, Exposure); got != Black {
		t.Fatalf("back-facing photon: %v", got)
	}

	// distance falloff never goes negative, even with a radius beyond 1
	wide := NewPhotonMap()
	wide.Append(Photon{Position: Point3{1.5, 1, 0}, Direction: down, Energy: White, SphereID: 0, Bounce: 1})
	if got := GatherPhotons(wide, N, P, 0, 4, Exposure); got != Black {
		t.Fatalf("falloff went negative: %v", got)
	}

	half := NewPhotonMap()
	half.Append(Photon{Position: Point3{0.5, 1, 0}, Direction: down, Energy: White, SphereID: 0, Bounce: 1})
	got = GatherPhotons(half, N, P, 0, SqRadius, 1)
	if math.Abs(got.R-0.5) > 1e-12 {
		t.Fatalf("half distance weight: %v", got)
	}
}
