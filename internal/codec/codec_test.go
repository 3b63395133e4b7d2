package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/AnyUserName/imgfit-cli/internal/fit"
)

// noiseImage fills a buffer with deterministic pseudo-noise so lossy
// encoders have real entropy to chew on.
func noiseImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	state := uint32(0x9e3779b9)
	for i := range img.Pix {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		img.Pix[i] = uint8(state)
	}
	return img
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func TestNativeQuality(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 1},
		{1, 100},
		{0.5, 51},
		{-0.5, 1},  // clamped
		{1.5, 100}, // clamped
	}
	for _, c := range cases {
		if got := nativeQuality(c.in); got != c.want {
			t.Errorf("nativeQuality(%v): got %d, want %d", c.in, got, c.want)
		}
	}
}

func TestStdDecoder(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, noiseImage(30, 20)); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	img, err := (StdDecoder{}).Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("dimensions: got %dx%d", b.Dx(), b.Dy())
	}

	if _, err := (StdDecoder{}).Decode([]byte("definitely not an image")); err == nil {
		t.Error("garbage bytes decoded without error")
	}
}

func TestJPEGQualityAffectsSize(t *testing.T) {
	img := noiseImage(120, 90)
	c := &JPEGCodec{}

	low, err := c.Encode(img, 0.05)
	if err != nil {
		t.Fatalf("encode low: %v", err)
	}
	high, err := c.Encode(img, 1)
	if err != nil {
		t.Fatalf("encode high: %v", err)
	}
	if len(high) <= len(low) {
		t.Errorf("quality 1 output (%d) not larger than quality 0.05 (%d)", len(high), len(low))
	}
}

func TestPNGIgnoresQuality(t *testing.T) {
	img := noiseImage(40, 40)
	c := &PNGCodec{}

	a, err := c.Encode(img, 0.1)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	b, err := c.Encode(img, 0.9)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("quality changed png output")
	}
}

func TestCodecClasses(t *testing.T) {
	if (&JPEGCodec{}).Class() != fit.ClassLossy {
		t.Error("jpeg should be lossy")
	}
	if (&WebPCodec{}).Class() != fit.ClassLossy {
		t.Error("webp should be lossy")
	}
	if (&PNGCodec{}).Class() != fit.ClassLossless {
		t.Error("png should be lossless")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	// jpeg and png are stdlib-backed and always present.
	if r.Get("jpeg") == nil || r.Get("png") == nil {
		t.Fatal("stdlib codecs missing from registry")
	}
	if r.Get("JPEG") == nil {
		t.Error("lookup not case-insensitive")
	}
	if r.Get("jpg") == nil {
		t.Error("jpg alias not resolved")
	}
	if r.Get("avif") != nil {
		t.Error("unknown format resolved")
	}
	if r.String() == "no codecs available" {
		t.Error("summary claims no codecs")
	}
}

func TestLanczosResampler(t *testing.T) {
	src := noiseImage(100, 80)
	before := make([]uint8, len(src.Pix))
	copy(before, src.Pix)

	out := (LanczosResampler{}).Resample(src, 50, 40)
	if b := out.Bounds(); b.Dx() != 50 || b.Dy() != 40 {
		t.Errorf("dimensions: got %dx%d", b.Dx(), b.Dy())
	}
	if !bytes.Equal(before, src.Pix) {
		t.Error("source buffer was mutated")
	}
}
