package codec

import (
	"image"

	"github.com/disintegration/imaging"
)

// LanczosResampler resizes with Lanczos interpolation. The algorithm
// is fixed so repeated searches over the same source stay reproducible.
// It satisfies fit.Resampler.
type LanczosResampler struct{}

// Resample returns a new buffer at width x height. The source image is
// never modified.
func (LanczosResampler) Resample(img image.Image, width, height int) image.Image {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
