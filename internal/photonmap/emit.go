package photonmap

import (
	"context"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rand"
)

// EmitStats counts photon outcomes for one emission pass.
type EmitStats struct {
	Emitted       int // photons attempted
	Discarded     int // seed point outside the enclosure or inside sphere 0
	SeedFailures  int // seed search hit its cap
	Escaped       int // first trace found nothing
	BounceLimited int // still intersecting when the bounce limit was reached
	Stored        int // photon records in the map
}

func (s *EmitStats) count(c Category) {
	s.Emitted++
	switch c {
	case Discarded:
		s.Discarded++
	case SeedFailed:
		s.SeedFailures++
	case Escaped:
		s.Escaped++
	case BounceLimit:
		s.BounceLimited++
	}
}

func (s *EmitStats) add(o EmitStats) {
	s.Emitted += o.Emitted
	s.Discarded += o.Discarded
	s.SeedFailures += o.SeedFailures
	s.Escaped += o.Escaped
	s.BounceLimited += o.BounceLimited
	s.Stored += o.Stored
}

// seedPoint displaces the light by step along random directions until the
// candidate lies strictly below the light. Gives up after maxTries draws.
func seedPoint(light Point3, rng *rand.Rand, step Real, maxTries int) (Point3, error) {
	for tries := 0; tries < maxTries; tries++ {
		p := light.Add(randomVector(rng, 1).Norm().Mul(step))
		if p.Y < light.Y {
			return p, nil
		}
	}
	return light, errors.Wrapf(ErrSeedSearchExhausted, "after %d tries", maxTries)
}

// guarded reports whether a seed point must be discarded before tracing: outside
// the |x|,|y| enclosure or inside the first scene sphere.
func guarded(scene *Scene, cfg PhotonCfg, p Point3) bool {
	if math.Abs(p.X) > cfg.BoundX || math.Abs(p.Y) > cfg.BoundY {
		return true
	}
	return len(scene.Spheres) > 0 && scene.Spheres[0].contains(p)
}

// tracePhoton follows one photon from O along D, appending a record per bounce to buf.
func tracePhoton(scene *Scene, cfg PhotonCfg, O Point3, D Vector3, buf []Photon) ([]Photon, Category) {
	if guarded(scene, cfg, O) {
		if Debug {
			logRay("discarded", Discarded, O, D, Point3{}, 0)
		}
		return buf, Discarded
	}
	rgb := White
	bounces := 1
	st := rayTrace(scene, D, O)
	if !st.Intersects {
		if Debug {
			logRay("escaped", Escaped, O, D, Point3{}, 0)
		}
		return buf, Escaped
	}
	for st.Intersects && bounces <= cfg.Bounces {
		P := st.Point
		rgb = GetColor(rgb, st.Sphere, cfg.Filter).Mul(1 / math.Sqrt(Real(bounces)))
		buf = append(buf, Photon{
			Position:  P,
			Direction: D,
			Energy:    rgb,
			SphereID:  st.Index,
			Bounce:    bounces,
		})
		if Debug {
			logRay("stored", Stored, O, D, P, bounces)
		}
		D = reflect3(D, st.Sphere.Normal(P)).Norm()
		if D.IsZero() {
			break
		}
		// start just off the surface so the next trace cannot re-hit it at t≈0
		O = P.Add(D.Mul(bumpShift))
		st = rayTrace(scene, D, O)
		bounces++
	}
	if st.Intersects && bounces > cfg.Bounces {
		if Debug {
			logRay("too_many_bounces", BounceLimit, O, D, st.Point, bounces)
		}
		return buf, BounceLimit
	}
	return buf, Stored
}

// emitSinglePhoton draws a direction and a seed point, then traces the photon.
func emitSinglePhoton(scene *Scene, cfg PhotonCfg, rng *rand.Rand, buf []Photon) ([]Photon, Category) {
	D := randomVector(rng, 1).Norm()
	O, err := seedPoint(scene.Light, rng, cfg.SeedStep, cfg.SeedMaxTries)
	if err != nil {
		if Debug {
			logRay("seed_failed", SeedFailed, scene.Light, D, Point3{}, 0)
		}
		return buf, SeedFailed
	}
	if D.IsZero() {
		return buf, Escaped
	}
	return tracePhoton(scene, cfg, O, D, buf)
}

// EmitPhotons runs one emission pass of cfg.Count photons. Photons are split across
// workers, each with a private RNG and buffer; buffers are merged in worker order.
func EmitPhotons(ctx context.Context, scene *Scene, cfg PhotonCfg) (*PhotonMap, EmitStats, error) {
	pm := NewPhotonMap()
	var stats EmitStats
	if err := cfg.Validate(); err != nil {
		return nil, stats, err
	}
	if cfg.Count == 0 {
		return pm, stats, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Count {
		workers = cfg.Count
	}
	per, rem := cfg.Count/workers, cfg.Count%workers
	DebugLogOnce("Emission split: %d workers, %d photons each, %d extra", workers, per, rem)

	bufs := make([][]Photon, workers)
	wstats := make([]EmitStats, workers)
	var fired int64
	nextPrint := int64(imax(cfg.Count/10, 1))

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		wid := w
		n := per
		if w < rem {
			n++
		}
		g.Go(func() error {
			rng := newRNG(cfg.Seed, wid)
			buf := make([]Photon, 0, n*imax(cfg.Bounces, 1))
			for i := 0; i < n; i++ {
				if i&255 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				var cat Category
				buf, cat = emitSinglePhoton(scene, cfg, rng, buf)
				wstats[wid].count(cat)
				if f := atomic.AddInt64(&fired, 1); f%nextPrint == 0 {
					DebugLog("[PROGRESS] %.2f%%", Real(f)*100/Real(cfg.Count))
				}
			}
			bufs[wid] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stats, errors.Wrap(err, "emit photons")
	}

	for w := range bufs {
		pm.merge(bufs[w])
		stats.add(wstats[w])
	}
	stats.Stored = pm.Len()
	Logger().Info("photons emitted", "pass", pm.PassID, "emitted", stats.Emitted, "stored", stats.Stored,
		"discarded", stats.Discarded, "escaped", stats.Escaped, "bounceLimited", stats.BounceLimited)
	if stats.SeedFailures > 0 {
		Logger().Warn("photon seed search exhausted", "photons", stats.SeedFailures, "maxTries", cfg.SeedMaxTries)
	}
	return pm, stats, nil
}
