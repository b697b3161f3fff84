package photonmap

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
)

// EncodeGIF writes one GIF frame per image (e.g. one per light position).
// delay is in 100ths of a second; each frame is normalized by its own peak.
func EncodeGIF(w io.Writer, frames []*Image, delay int, gamma Real) error {
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for k, img := range frames {
		scale := peakScale(img)
		toByte := func(v Real) uint8 {
			return uint8(math.Round(toneMap(v, scale, gamma) * 255))
		}
		rgba := image.NewNRGBA(image.Rect(0, 0, img.W, img.H))
		for y := 0; y < img.H; y++ {
			rowOff := y * rgba.Stride
			for x := 0; x < img.W; x++ {
				c := img.At(x, y)
				p := rowOff + x*4
				rgba.Pix[p+0] = toByte(c.R)
				rgba.Pix[p+1] = toByte(c.G)
				rgba.Pix[p+2] = toByte(c.B)
				rgba.Pix[p+3] = 255
			}
		}

		// Quantize to paletted for GIF
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
		DebugLog("[GIF] frame %d/%d", k+1, len(frames))
	}
	return gif.EncodeAll(w, out)
}
