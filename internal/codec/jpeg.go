package codec

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/AnyUserName/imgfit-cli/internal/fit"
)

// JPEGCodec encodes images to JPEG using Go's standard library.
type JPEGCodec struct{}

func (c *JPEGCodec) Name() string      { return "jpeg" }
func (c *JPEGCodec) Extension() string { return "jpeg" }
func (c *JPEGCodec) Class() fit.Class  { return fit.ClassLossy }
func (c *JPEGCodec) Available() bool   { return true }

func (c *JPEGCodec) Encode(img image.Image, quality float64) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(256 * 1024) // pre-alloc 256KB — avoids repeated grow for typical photos

	err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: nativeQuality(quality)})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
