package photonmap

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
)

// Frame is one light position's worth of work.
type Frame struct {
	Scene *Scene
	Map   *PhotonMap
	Stats EmitStats
	Image *Image
}

// Simulate builds the scene once, then for every frame moves the light, emits a
// fresh photon map and renders it.
func Simulate(ctx context.Context, cfg *Config) ([]Frame, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scene, err := BuildScene(cfg.Scene, cfg.Light.Position, newRNG(cfg.Scene.Seed, 0))
	if err != nil {
		return nil, err
	}
	cam, err := NewCamera(cfg.Camera)
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, 0, cfg.Render.Frames)
	for f := 0; f < cfg.Render.Frames; f++ {
		fs := scene.WithLight(rotateY(cfg.Light.Position, cfg.Light.RotateDeg*Real(f)))
		pcfg := cfg.Photons
		if pcfg.Seed != 0 {
			pcfg.Seed += uint64(f)
		}

		start := time.Now()
		pm, stats, err := EmitPhotons(ctx, fs, pcfg)
		if err != nil {
			return nil, errors.WithMessagef(err, "frame %d", f)
		}
		DebugLog("Frame %d: light=%+v photons=%d time=%s", f, fs.Light, pm.Len(), time.Since(start))

		sh := &Shader{
			Scene:    fs,
			Map:      pm,
			Mode:     cfg.Render.Mode,
			Filter:   pcfg.Filter,
			Ambient:  cfg.Light.Ambient,
			SqRadius: pcfg.SqRadius,
			Exposure: pcfg.Exposure,
			Bg:       cfg.Render.Background,
		}
		img, err := Render(ctx, sh, cam, cfg.Render)
		if err != nil {
			return nil, errors.WithMessagef(err, "frame %d", f)
		}
		frames = append(frames, Frame{Scene: fs, Map: pm, Stats: stats, Image: img})
	}
	return frames, nil
}

// Save writes the artifacts selected by the PNG, RAW, GIF and DUMP flags.
func Save(ctx context.Context, cfg *Config, frames []Frame) error {
	if len(frames) == 0 || !(PNG || RAW || GIF || DUMP) {
		return nil
	}
	sink, err := OpenSink(ctx, cfg.Output)
	if err != nil {
		return err
	}
	defer sink.Close()

	last := frames[len(frames)-1]
	if PNG {
		width := len(fmt.Sprint(len(frames) - 1))
		for k, fr := range frames {
			name := fmt.Sprintf("%s_%0*d.png", cfg.Output.PNGPrefix, width, k)
			img := fr.Image
			if err := sink.Write(ctx, name, func(w io.Writer) error {
				return EncodePNG16(w, img, cfg.Render.Gamma)
			}); err != nil {
				return err
			}
			Logger().Info("saved png", "name", name)
		}
	}
	if GIF {
		imgs := make([]*Image, len(frames))
		for k := range frames {
			imgs[k] = frames[k].Image
		}
		if err := sink.Write(ctx, cfg.Output.GIFOut, func(w io.Writer) error {
			return EncodeGIF(w, imgs, cfg.Output.GIFDelay, cfg.Render.Gamma)
		}); err != nil {
			return err
		}
		Logger().Info("saved animated gif", "name", cfg.Output.GIFOut, "frames", len(imgs))
	}
	if RAW {
		if err := sink.Write(ctx, cfg.Output.RawOut, func(w io.Writer) error {
			return WriteRawRGB64(w, last.Image)
		}); err != nil {
			return err
		}
		Logger().Info("saved raw image", "name", cfg.Output.RawOut)
	}
	if DUMP {
		if err := sink.Write(ctx, cfg.Output.DumpOut, func(w io.Writer) error {
			return WritePhotonMap(w, last.Map)
		}); err != nil {
			return err
		}
		Logger().Info("saved photon map", "name", cfg.Output.DumpOut, "pass", last.Map.PassID, "photons", last.Map.Len())
	}
	return nil
}

func Run(ctx context.Context, cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	start := time.Now()
	frames, err := Simulate(ctx, cfg)
	if err != nil {
		return err
	}
	Logger().Info("simulation done", "frames", len(frames), "elapsed", time.Since(start))
	if Debug {
		raysStats()
	}
	return Save(ctx, cfg, frames)
}
