package photonmap

var (
	Debug = false // set to true for verbose debug output and the ray log
	PNG   = false // set to true to save a 16-bit PNG per frame
	RAW   = false // set to true to save the last frame as raw float64 RGB
	GIF   = false // set to true to save all frames as an animated GIF
	DUMP  = false // set to true to dump the last photon map
)
