package photonmap

import (
	"sort"
	"sync"
)

type Category uint8

const (
	Stored      Category = iota // photon left at least one record and then escaped
	Escaped                     // first trace hit nothing
	Discarded                   // seed point failed the enclosure/sphere-0 guard
	SeedFailed                  // seed search exhausted its tries
	BounceLimit                 // photon was still bouncing when the limit was reached
)

var categoryNames = [...]string{"stored", "escaped", "discarded", "seed_failed", "bounce_limit"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

type RayLog struct {
	Name      string
	Category  Category
	Origin    Point3
	Direction Vector3
	Point     Point3 // hit point, if any
	Bounce    int    // bounce number (0 before the first hit)
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[string][]RayLog // map of ray name to logs
}

var cache = &RayLogCache{
	rays: make(map[string][]RayLog),
}

func logRay(name string, category Category, origin Point3, direction Vector3, point Point3, bounce int) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.rays[name] = append(cache.rays[name], RayLog{
		Name:      name,
		Category:  category,
		Origin:    origin,
		Direction: direction,
		Point:     point,
		Bounce:    bounce,
	})
}

func raysStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	names := make([]string, 0, len(cache.rays))
	for k := range cache.rays {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		Logger().Debug("ray log", "type", k, "logs", len(cache.rays[k]))
	}
}
