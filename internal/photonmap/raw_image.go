package photonmap

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// WriteRawRGB64 writes the header W, H as int32 followed by W*H*3 float64, all little-endian.
func WriteRawRGB64(w io.Writer, img *Image) error {
	if img.W < 0 || img.H < 0 {
		return errors.Errorf("negative dimensions: W=%d H=%d", img.W, img.H)
	}
	if exp := img.W * img.H; len(img.Pix) != exp {
		return errors.Errorf("Pix length mismatch: got %d, expected %d (W*H)", len(img.Pix), exp)
	}
	if err := binary.Write(w, binary.LittleEndian, [2]int32{int32(img.W), int32(img.H)}); err != nil {
		return err
	}
	// RGB is three float64 fields, so the slice encodes as the flat body.
	if len(img.Pix) > 0 {
		if err := binary.Write(w, binary.LittleEndian, img.Pix); err != nil {
			return err
		}
	}
	return nil
}

// photonRecord is the fixed-size on-disk layout of a Photon.
type photonRecord struct {
	Position  [3]float64
	Direction [3]float64
	Energy    [3]float64
	SphereID  int32
	Bounce    int32
}

// WritePhotonMap dumps a photon map: 16-byte pass ID, int32 count, then one
// 80-byte record per photon, little-endian.
func WritePhotonMap(w io.Writer, pm *PhotonMap) error {
	if _, err := w.Write(pm.PassID[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(pm.Len())); err != nil {
		return err
	}
	recs := make([]photonRecord, pm.Len())
	for i, p := range pm.Photons() {
		recs[i] = photonRecord{
			Position:  [3]float64{p.Position.X, p.Position.Y, p.Position.Z},
			Direction: [3]float64{p.Direction.X, p.Direction.Y, p.Direction.Z},
			Energy:    [3]float64{p.Energy.R, p.Energy.G, p.Energy.B},
			SphereID:  int32(p.SphereID),
			Bounce:    int32(p.Bounce),
		}
	}
	if len(recs) == 0 {
		return nil
	}
	return binary.Write(w, binary.LittleEndian, recs)
}
