package photonmap

import (
	"bytes"
	"context"
	"encoding/binary"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func gradientImage(w, h int) *Image {
	img := NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, RGB{Real(x) / Real(w), Real(y) / Real(h), 2})
		}
	}
	return img
}

func TestEncodePNG16(t *testing.T) {
	img := gradientImage(5, 3)
	var buf bytes.Buffer
	if err := EncodePNG16(&buf, img, 1); err != nil {
		t.Fatal(err)
	}
	dec, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := dec.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Fatalf("decoded bounds %v", b)
	}
	// blue is the peak channel everywhere, so it maps to full scale
	_, _, bl, a := dec.At(2, 1).RGBA()
	if bl != 0xFFFF || a != 0xFFFF {
		t.Fatalf("peak pixel not at full scale: b=%x a=%x", bl, a)
	}
	if r, _, _, _ := dec.At(0, 0).RGBA(); r != 0 {
		t.Fatalf("zero channel encoded as %x", r)
	}
}

func TestToneMap(t *testing.T) {
	if v := toneMap(-1, 1, 1); v != 0 {
		t.Fatalf("negative radiance: %v", v)
	}
	if v := toneMap(4, 1, 1); v != 1 {
		t.Fatalf("overexposed radiance not clamped: %v", v)
	}
	if v := toneMap(0.25, 1, 2); v != 0.5 {
		t.Fatalf("gamma 2: %v", v)
	}
	if s := peakScale(NewImage(2, 2)); s != 1 {
		t.Fatalf("black image scale %v", s)
	}
}

func TestEncodeGIF(t *testing.T) {
	frames := []*Image{gradientImage(4, 4), gradientImage(4, 4), NewImage(4, 4)}
	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, 7, 1); err != nil {
		t.Fatal(err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 3 || len(g.Delay) != 3 || g.Delay[0] != 7 {
		t.Fatalf("got %d frames, delays %v", len(g.Image), g.Delay)
	}
}

func TestWriteRawRGB64(t *testing.T) {
	img := gradientImage(3, 2)
	var buf bytes.Buffer
	if err := WriteRawRGB64(&buf, img); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 8+3*2*3*8 {
		t.Fatalf("raw size %d", buf.Len())
	}
	var hdr [2]int32
	if err := binary.Read(&buf, binary.LittleEndian, &hdr); err != nil {
		t.Fatal(err)
	}
	if hdr != [2]int32{3, 2} {
		t.Fatalf("header %v", hdr)
	}
	pix := make([]float64, 3*2*3)
	if err := binary.Read(&buf, binary.LittleEndian, pix); err != nil {
		t.Fatal(err)
	}
	if c := img.At(1, 1); pix[3*4] != c.R || pix[3*4+1] != c.G || pix[3*4+2] != c.B {
		t.Fatalf("pixel (1,1) = %v, want %v", pix[12:15], c)
	}

	bad := &Image{W: 2, H: 2, Pix: make([]RGB, 3)}
	if err := WriteRawRGB64(io.Discard, bad); err == nil {
		t.Fatal("expected pix length mismatch")
	}
}

func TestWritePhotonMap(t *testing.T) {
	pm := NewPhotonMap()
	for i := 0; i < 4; i++ {
		pm.Append(Photon{Position: Point3{Real(i), 0, 0}, Energy: White, SphereID: i % 2, Bounce: 1})
	}
	var buf bytes.Buffer
	if err := WritePhotonMap(&buf, pm); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 16+4+80*4 {
		t.Fatalf("dump size %d", buf.Len())
	}
	if !bytes.Equal(buf.Bytes()[:16], pm.PassID[:]) {
		t.Fatal("dump does not start with the pass id")
	}
	if n := binary.LittleEndian.Uint32(buf.Bytes()[16:20]); n != 4 {
		t.Fatalf("dump count %d", n)
	}
}

func TestSinkLocal(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "out")
	sink, err := OpenSink(ctx, OutputCfg{Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer sink.Close()
	if err := sink.Write(ctx, "a.txt", func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	if err != nil || string(data) != "hello" {
		t.Fatalf("read back %q, %v", data, err)
	}
	boom := errors.New("boom")
	if err := sink.Write(ctx, "b.txt", func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped writer error, got %v", err)
	}
}

func TestSinkBucket(t *testing.T) {
	ctx := context.Background()
	for _, url := range []string{"mem://", "file://" + t.TempDir()} {
		sink, err := OpenSink(ctx, OutputCfg{Bucket: url})
		if err != nil {
			t.Fatal(err)
		}
		if err := sink.Write(ctx, "frame.raw", func(w io.Writer) error {
			return WriteRawRGB64(w, gradientImage(2, 2))
		}); err != nil {
			t.Fatalf("%s: %v", url, err)
		}
		data, err := sink.bucket.ReadAll(ctx, "frame.raw")
		if err != nil {
			t.Fatalf("%s: %v", url, err)
		}
		if len(data) != 8+2*2*3*8 {
			t.Fatalf("%s: blob size %d", url, len(data))
		}
		if err := sink.Write(ctx, "broken.raw", func(io.Writer) error { return errors.New("boom") }); err == nil {
			t.Fatalf("%s: expected error", url)
		}
		if ok, _ := sink.bucket.Exists(ctx, "broken.raw"); ok {
			t.Fatalf("%s: failed write left a blob behind", url)
		}
		if err := sink.Close(); err != nil {
			t.Fatal(err)
		}
	}
}
