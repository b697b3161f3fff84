package photonmap

import (
	"encoding/binary"
	"math"
)

// SphereStride is the packed size of one sphere record:
// position(3) radius(1) albedo(3) specular(3), float32 little-endian.
const SphereStride = 40

// PackSpheres lays the spheres out for a GPU structured buffer.
func PackSpheres(spheres []*Sphere) []byte {
	buf := make([]byte, len(spheres)*SphereStride)
	for i, s := range spheres {
		f := [10]float32{
			float32(s.Center.X), float32(s.Center.Y), float32(s.Center.Z),
			float32(s.Radius),
			float32(s.Albedo.R), float32(s.Albedo.G), float32(s.Albedo.B),
			float32(s.Specular.R), float32(s.Specular.G), float32(s.Specular.B),
		}
		off := i * SphereStride
		for j, v := range f {
			binary.LittleEndian.PutUint32(buf[off+j*4:], math.Float32bits(v))
		}
	}
	return buf
}
