package photonmap

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is fatal at scene setup.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrDegenerateGeometry reports a zero-length vector where a direction was required.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// ErrSceneOverfull reports that overlap rejection left fewer spheres than requested.
	ErrSceneOverfull = errors.New("scene overfull")
	// ErrSeedSearchExhausted reports a photon whose start point search hit its cap.
	ErrSeedSearchExhausted = errors.New("photon seed search exhausted")
)

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfig, format, args...)
}

func degenerate(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDegenerateGeometry, format, args...)
}
