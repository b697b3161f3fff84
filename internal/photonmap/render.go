package photonmap

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// RenderMode selects the per-pixel estimate.
type RenderMode string

const (
	RenderDirect   RenderMode = "direct"   // filtered white light times the clamped Lambert term
	RenderPhotons  RenderMode = "photons"  // photon map gather only
	RenderCombined RenderMode = "combined" // sum of both
)

// Shader evaluates the radiance seen along one camera ray.
type Shader struct {
	Scene    *Scene
	Map      *PhotonMap
	Mode     RenderMode
	Filter   FilterMode
	Ambient  Real
	SqRadius Real
	Exposure Real
	Bg       RGB
}

func (sh *Shader) Shade(O Point3, D Vector3) RGB {
	st := rayTrace(sh.Scene, D, O)
	if !st.Intersects {
		return sh.Bg
	}
	P, s := st.Point, st.Sphere
	var rgb RGB
	if sh.Mode == RenderDirect || sh.Mode == RenderCombined {
		rgb = rgb.Add(GetColor(White, s, sh.Filter).Mul(LightObject(s, P, sh.Scene.Light, sh.Ambient)))
	}
	if sh.Mode == RenderPhotons || sh.Mode == RenderCombined {
		rgb = rgb.Add(GatherPhotons(sh.Map, s.Normal(P), P, s.ID, sh.SqRadius, sh.Exposure))
	}
	return rgb
}

// Render fills a Width×Height color buffer. Rows are split into bands, one per worker;
// each pixel is written by exactly one worker.
func Render(ctx context.Context, sh *Shader, cam *Camera, cfg RenderCfg) (*Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	img := NewImage(cfg.Width, cfg.Height)
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Height {
		workers = cfg.Height
	}
	per, rem := cfg.Height/workers, cfg.Height%workers

	g, gctx := errgroup.WithContext(ctx)
	y0 := 0
	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		from, to := y0, y0+n
		y0 = to
		g.Go(func() error {
			for y := from; y < to; y++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				for x := 0; x < cfg.Width; x++ {
					img.Set(x, y, sh.Shade(cam.Origin, cam.Ray(x, y, cfg.Width, cfg.Height)))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "render")
	}
	DebugLog("Rendered %dx%d mode=%s peak=%.5g", cfg.Width, cfg.Height, cfg.Mode, img.Peak())
	return img, nil
}
