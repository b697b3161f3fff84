package photonmap

// Image is the finished color buffer handed to the host: one RGB per pixel, row-major,
// row 0 at the top.
type Image struct {
	W, H int
	Pix  []RGB
}

func NewImage(w, h int) *Image {
	return &Image{W: w, H: h, Pix: make([]RGB, w*h)}
}

func (im *Image) At(x, y int) RGB     { return im.Pix[y*im.W+x] }
func (im *Image) Set(x, y int, c RGB) { im.Pix[y*im.W+x] = c }

// Peak returns the largest channel value in the image.
func (im *Image) Peak() Real {
	peak := 0.0
	for _, c := range im.Pix {
		if m := c.Max(); m > peak {
			peak = m
		}
	}
	return peak
}
