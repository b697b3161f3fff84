package photonmap

import (
	"image"
	"image/png"
	"io"
	"math"
)

// toneMap maps radiance to [0,1]: normalize by scale, clamp, then gamma.
func toneMap(v, scale, gamma Real) Real {
	if v <= 0 {
		return 0
	}
	n := clamp(v*scale, 0, 1)
	if gamma != 1 {
		n = math.Pow(n, 1.0/gamma)
	}
	return n
}

// peakScale normalizes an image by its brightest channel.
func peakScale(img *Image) Real {
	peak := img.Peak()
	if peak == 0 {
		return 1 // avoid div-by-zero; the image is black anyway
	}
	return 1.0 / peak
}

// EncodePNG16 writes img as a lossless 16-bit PNG, normalized by its peak.
func EncodePNG16(w io.Writer, img *Image, gamma Real) error {
	scale := peakScale(img)
	toU16 := func(v Real) uint16 {
		return uint16(math.Round(toneMap(v, scale, gamma) * 65535.0))
	}

	out := image.NewNRGBA64(image.Rect(0, 0, img.W, img.H))
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for y := 0; y < img.H; y++ {
		rowOff := y * out.Stride
		for x := 0; x < img.W; x++ {
			c := img.At(x, y)
			r, g, b := toU16(c.R), toU16(c.G), toU16(c.B)
			a := uint16(0xFFFF)

			p := rowOff + x*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R,G, B, A.
			out.Pix[p+0] = uint8(r >> 8)
			out.Pix[p+1] = uint8(r)
			out.Pix[p+2] = uint8(g >> 8)
			out.Pix[p+3] = uint8(g)
			out.Pix[p+4] = uint8(b >> 8)
			out.Pix[p+5] = uint8(b)
			out.Pix[p+6] = uint8(a >> 8)
			out.Pix[p+7] = uint8(a)
		}
	}

	enc := png.Encoder{CompressionLevel: png.BestCompression} // still lossless
	return enc.Encode(w, out)
}
