package photonmap

// TraceState is the result of one rayTrace call. It never outlives the call
// that produced it, so concurrent photons cannot see each other's hits.
type TraceState struct {
	Intersects bool
	Index      int  // ID of the nearest sphere, NoSphere when nothing was hit
	Dist       Real // NoHitDist when nothing was hit
	Point      Point3
	Sphere     *Sphere // nearest sphere, nil when nothing was hit
}

func newTraceState() TraceState {
	return TraceState{Index: NoSphere, Dist: NoHitDist}
}

// rayTrace returns the nearest strictly positive hit over all scene spheres.
func rayTrace(scene *Scene, D Vector3, O Point3) TraceState {
	st := newTraceState()
	for _, s := range scene.Spheres {
		st = intersectSphere(s, D, O, st)
	}
	if st.Intersects {
		st.Point = O.Add(D.Mul(st.Dist))
	}
	return st
}

// RayTrace is the exported form of rayTrace for host render loops.
func (s *Scene) RayTrace(D Vector3, O Point3) TraceState {
	return rayTrace(s, D, O)
}
