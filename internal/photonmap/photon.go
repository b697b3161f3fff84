package photonmap

import "github.com/google/uuid"

// Photon is one recorded bounce. SphereID is a lookup key into the scene, not ownership.
type Photon struct {
	Position  Point3
	Direction Vector3 // incoming ray direction at the bounce
	Energy    RGB
	SphereID  int
	Bounce    int // 1-based bounce number
}

// PhotonMap is the append-only result of one emission pass.
// The emission pass is the only writer; readers must not run concurrently with it.
type PhotonMap struct {
	PassID   uuid.UUID
	photons  []Photon
	bySphere map[int][]int // sphere ID -> indices into photons
}

func NewPhotonMap() *PhotonMap {
	return &PhotonMap{PassID: uuid.New(), bySphere: make(map[int][]int)}
}

func (pm *PhotonMap) Len() int { return len(pm.photons) }

func (pm *PhotonMap) At(i int) Photon { return pm.photons[i] }

// Photons returns the recorded photons; callers must not modify the slice.
func (pm *PhotonMap) Photons() []Photon { return pm.photons }

// ForSphere returns indices of photons stored on sphere id.
func (pm *PhotonMap) ForSphere(id int) []int { return pm.bySphere[id] }

func (pm *PhotonMap) Append(p Photon) {
	pm.bySphere[p.SphereID] = append(pm.bySphere[p.SphereID], len(pm.photons))
	pm.photons = append(pm.photons, p)
}

// merge appends a worker's private buffer.
func (pm *PhotonMap) merge(buf []Photon) {
	if cap(pm.photons)-len(pm.photons) < len(buf) {
		grown := make([]Photon, len(pm.photons), len(pm.photons)+len(buf))
		copy(grown, pm.photons)
		pm.photons = grown
	}
	for _, p := range buf {
		pm.Append(p)
	}
}

// Reset drops every photon and starts a new pass.
func (pm *PhotonMap) Reset() {
	pm.PassID = uuid.New()
	pm.photons = nil
	pm.bySphere = make(map[int][]int)
}
