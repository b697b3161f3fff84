package photonmap

import "math"

// GatherPhotons estimates the photon energy reaching point P (normal N) on sphere
// sphereID. Photons on the same sphere within sqRadius of P contribute in
// proportion to how squarely they hit the surface, falling off with distance.
func GatherPhotons(pm *PhotonMap, N Vector3, P Point3, sphereID int, sqRadius, exposure Real) RGB {
	energy := Black
	if pm == nil {
		return energy
	}
	for _, i := range pm.ForSphere(sphereID) {
		ph := pm.At(i)
		d2 := sqDist(P, ph.Position)
		if d2 > sqRadius {
			continue
		}
		weight := max(0, -N.Dot(ph.Direction))
		weight *= max(0, 1-math.Sqrt(d2)) / exposure
		energy = energy.Add(ph.Energy.Mul(weight))
	}
	return energy
}
