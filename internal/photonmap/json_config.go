package photonmap

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type SceneCfg struct {
	MaxSpheres      int  `json:"maxSpheres" yaml:"maxSpheres"`
	RadiusMin       Real `json:"radiusMin" yaml:"radiusMin"`
	RadiusMax       Real `json:"radiusMax" yaml:"radiusMax"`
	PlacementRadius Real `json:"placementRadius" yaml:"placementRadius"`
	// When true, a scene with fewer accepted spheres than requested is a setup error.
	Strict bool   `json:"strict" yaml:"strict"`
	Seed   uint64 `json:"seed" yaml:"seed"` // 0 seeds from the clock
}

type LightCfg struct {
	Position  Point3 `json:"position" yaml:"position"`
	RotateDeg Real   `json:"rotateDeg" yaml:"rotateDeg"` // about Y, per frame
	Ambient   Real   `json:"ambient" yaml:"ambient"`
}

type PhotonCfg struct {
	Count        int        `json:"count" yaml:"count"`
	Bounces      int        `json:"bounces" yaml:"bounces"`
	SqRadius     Real       `json:"sqRadius" yaml:"sqRadius"`
	Exposure     Real       `json:"exposure" yaml:"exposure"`
	SeedStep     Real       `json:"seedStep" yaml:"seedStep"`
	SeedMaxTries int        `json:"seedMaxTries" yaml:"seedMaxTries"`
	BoundX       Real       `json:"boundX" yaml:"boundX"`
	BoundY       Real       `json:"boundY" yaml:"boundY"`
	Filter       FilterMode `json:"filter" yaml:"filter"`
	Workers      int        `json:"workers" yaml:"workers"` // 0 uses every CPU
	Seed         uint64     `json:"seed" yaml:"seed"`       // 0 seeds from the clock
}

type CameraCfg struct {
	Origin   Point3 `json:"origin" yaml:"origin"`
	YawDeg   Real   `json:"yawDeg" yaml:"yawDeg"`
	PitchDeg Real   `json:"pitchDeg" yaml:"pitchDeg"`
	FovDeg   Real   `json:"fovDeg" yaml:"fovDeg"`
}

type RenderCfg struct {
	Width      int        `json:"width" yaml:"width"`
	Height     int        `json:"height" yaml:"height"`
	Mode       RenderMode `json:"mode" yaml:"mode"`
	Frames     int        `json:"frames" yaml:"frames"`
	Workers    int        `json:"workers" yaml:"workers"`
	Gamma      Real       `json:"gamma" yaml:"gamma"`
	Background RGB        `json:"background" yaml:"background"`
}

type OutputCfg struct {
	// Dir is a local output directory; Bucket, when set, is a gocloud.dev blob URL
	// (file:///abs/dir, mem://) and takes precedence.
	Dir       string `json:"dir" yaml:"dir"`
	Bucket    string `json:"bucket" yaml:"bucket"`
	PNGPrefix string `json:"pngPrefix" yaml:"pngPrefix"`
	GIFOut    string `json:"gifOut" yaml:"gifOut"`
	GIFDelay  int    `json:"gifDelay" yaml:"gifDelay"`
	RawOut    string `json:"rawOut" yaml:"rawOut"`
	DumpOut   string `json:"dumpOut" yaml:"dumpOut"`
}

type Config struct {
	Scene   SceneCfg  `json:"scene" yaml:"scene"`
	Light   LightCfg  `json:"light" yaml:"light"`
	Photons PhotonCfg `json:"photons" yaml:"photons"`
	Camera  CameraCfg `json:"camera" yaml:"camera"`
	Render  RenderCfg `json:"render" yaml:"render"`
	Output  OutputCfg `json:"output" yaml:"output"`
}

// DefaultConfig returns the reference tunables; config files are merged over it.
func DefaultConfig() Config {
	return Config{
		Scene: SceneCfg{
			MaxSpheres:      SpheresMax,
			RadiusMin:       SphereRadiusMin,
			RadiusMax:       SphereRadiusMax,
			PlacementRadius: PlacementRadius,
		},
		Light: LightCfg{
			Position: Point3{0, 1, 0},
			Ambient:  AmbientFloor,
		},
		Photons: DefaultPhotonCfg(),
		Camera: CameraCfg{
			Origin: Point3{0, 1, -5},
			FovDeg: FovDeg,
		},
		Render: RenderCfg{
			Width:  ImageWidth,
			Height: ImageHeight,
			Mode:   RenderPhotons,
			Frames: 1,
			Gamma:  Gamma,
		},
		Output: OutputCfg{
			Dir:       ".",
			PNGPrefix: PNGOut,
			GIFOut:    GIFOut,
			GIFDelay:  GIFDelay,
			RawOut:    RawOut,
			DumpOut:   DumpOut,
		},
	}
}

func DefaultPhotonCfg() PhotonCfg {
	return PhotonCfg{
		Count:        PhotonCount,
		Bounces:      MaxBounces,
		SqRadius:     SqRadius,
		Exposure:     Exposure,
		SeedStep:     SeedStep,
		SeedMaxTries: SeedMaxTries,
		BoundX:       BoundX,
		BoundY:       BoundY,
		Filter:       FilterIndexTable,
	}
}

func (c SceneCfg) Validate() error {
	if c.MaxSpheres < 0 {
		return invalid("maxSpheres must be >= 0, got %d", c.MaxSpheres)
	}
	if !(c.RadiusMin > 0) {
		return invalid("radiusMin must be > 0, got %v", c.RadiusMin)
	}
	if c.RadiusMin > c.RadiusMax {
		return invalid("radius range is inverted: [%v, %v]", c.RadiusMin, c.RadiusMax)
	}
	if c.PlacementRadius < 0 || !isFinite(c.PlacementRadius) {
		return invalid("placementRadius must be >= 0, got %v", c.PlacementRadius)
	}
	return nil
}

func (c PhotonCfg) Validate() error {
	switch {
	case c.Count < 0:
		return invalid("photon count must be >= 0, got %d", c.Count)
	case c.Bounces < 0:
		return invalid("bounce limit must be >= 0, got %d", c.Bounces)
	case !(c.SqRadius > 0):
		return invalid("sqRadius must be > 0, got %v", c.SqRadius)
	case !(c.Exposure > 0):
		return invalid("exposure must be > 0, got %v", c.Exposure)
	case !(c.SeedStep > 0):
		return invalid("seedStep must be > 0, got %v", c.SeedStep)
	case c.SeedMaxTries < 1:
		return invalid("seedMaxTries must be >= 1, got %d", c.SeedMaxTries)
	case c.Filter != FilterIndexTable && c.Filter != FilterMaterial:
		return invalid("unknown photon filter %q", c.Filter)
	}
	return nil
}

func (c RenderCfg) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return invalid("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Frames < 1 {
		return invalid("frames must be >= 1, got %d", c.Frames)
	}
	if !(c.Gamma > 0) {
		return invalid("gamma must be > 0, got %v", c.Gamma)
	}
	switch c.Mode {
	case RenderDirect, RenderPhotons, RenderCombined:
	default:
		return invalid("unknown render mode %q", c.Mode)
	}
	return nil
}

func (c CameraCfg) Validate() error {
	if !(c.FovDeg > 0 && c.FovDeg < 180) {
		return invalid("fovDeg must be in (0, 180), got %v", c.FovDeg)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := c.Scene.Validate(); err != nil {
		return err
	}
	if err := c.Photons.Validate(); err != nil {
		return err
	}
	if err := c.Camera.Validate(); err != nil {
		return err
	}
	return c.Render.Validate()
}

// loadConfig reads a .json, .yaml or .yml file over DefaultConfig and validates it.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "parse %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "config %s", path)
	}
	DebugLog("Loaded config from %s: spheres=%d photons=%d bounces=%d size=(%d, %d) frames=%d",
		path, cfg.Scene.MaxSpheres, cfg.Photons.Count, cfg.Photons.Bounces, cfg.Render.Width, cfg.Render.Height, cfg.Render.Frames)
	return &cfg, nil
}
