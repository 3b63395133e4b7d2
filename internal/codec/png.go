package codec

import (
	"bytes"
	"image"
	"image/png"

	"github.com/AnyUserName/imgfit-cli/internal/fit"
)

// PNGCodec encodes images to PNG using Go's standard library. PNG has
// no quality knob; output size is controlled by pixel count only, so
// the search shrinks dimensions instead.
type PNGCodec struct{}

func (c *PNGCodec) Name() string      { return "png" }
func (c *PNGCodec) Extension() string { return "png" }
func (c *PNGCodec) Class() fit.Class  { return fit.ClassLossless }
func (c *PNGCodec) Available() bool   { return true }

func (c *PNGCodec) Encode(img image.Image, _ float64) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(512 * 1024) // pre-alloc 512KB

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	err := enc.Encode(&buf, img)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
