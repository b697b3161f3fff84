package photonmap

type Real = float64

// Channel indices for readability.
const (
	ChR = 0
	ChG = 1
	ChB = 2

	PhotonCount     = 1000
	MaxBounces      = 3
	SqRadius        = 0.7  // squared gather radius for the photon estimate
	Exposure        = 50.0 // divisor applied to every gathered photon
	SpheresMax      = 2
	SphereRadiusMin = 3.0
	SphereRadiusMax = 8.0
	PlacementRadius = 100.0
	SeedStep        = 0.75 // distance of the photon start point from the light
	SeedMaxTries    = 64
	BoundX          = 1.5 // |x| beyond this discards the photon seed
	BoundY          = 1.2 // |y| beyond this discards the photon seed
	AmbientFloor    = 0.1
	MetalChance     = 0.5
	DielectricSpec  = 0.04
	ImageWidth      = 320
	ImageHeight     = 240
	FovDeg          = 60.0
	Gamma           = 1.0
	GIFDelay        = 5 // 100ths of a second per frame
	PNGOut          = "frame"
	GIFOut          = "frames.gif"
	RawOut          = "frame.raw"
	DumpOut         = "photons.bin"

	// NoSphere marks an empty trace state.
	NoSphere = -1
	// NoHitDist is the "nothing hit yet" distance sentinel.
	NoHitDist = 999999.9

	// hot-loop constants reused across bounces
	insideEps = 1e-5
	epsNorm   = 1e-12
	bumpShift = 1e-6
)
