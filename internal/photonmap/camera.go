package photonmap

import "math"

// Camera is a pinhole camera; R maps camera space (+Z forward, +Y up) to world.
// Positive pitch tilts the view down, positive yaw turns it towards +X.
type Camera struct {
	Origin Point3
	R      Mat3
	tanH   Real // tan(fov/2)
}

func NewCamera(cfg CameraCfg) (*Camera, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	const k = math.Pi / 180
	return &Camera{
		Origin: cfg.Origin,
		R:      rotFromAngles(cfg.YawDeg*k, cfg.PitchDeg*k),
		tanH:   math.Tan(cfg.FovDeg * k / 2),
	}, nil
}

// Ray returns the unit world direction through the center of pixel (px, py);
// py grows downwards. The field of view spans the image height.
func (c *Camera) Ray(px, py, w, h int) Vector3 {
	aspect := Real(w) / Real(h)
	x := (2*(Real(px)+0.5)/Real(w) - 1) * c.tanH * aspect
	y := (1 - 2*(Real(py)+0.5)/Real(h)) * c.tanH
	return c.R.MulVec(Vector3{x, y, 1}).Norm()
}
