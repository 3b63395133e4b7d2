// Package fit implements the size-targeting search: given a decoded
// image, a byte budget and a codec, find the encoding parameters that
// land as close under the budget as possible.
//
// Lossy codecs are searched on quality with dimensions fixed; the
// lossless codec is searched on pixel dimensions with a fixed scale
// ladder. The package performs no I/O and no logging; decode and
// resample capabilities are injected so the search can be tested
// against a fake backend.
package fit

import (
	"fmt"
	"image"
	"math"
)

// Class splits codecs by what parameter controls their output size.
type Class int

const (
	// ClassLossy codecs expose a continuous quality knob; size is
	// searched at fixed dimensions.
	ClassLossy Class = iota
	// ClassLossless codecs ignore quality; size is controlled only by
	// pixel count, so the search shrinks dimensions.
	ClassLossless
)

// Codec encodes a pixel buffer into one output format.
type Codec interface {
	// Name returns the format name (e.g. "jpeg", "webp", "png").
	Name() string

	// Class reports which search strategy applies.
	Class() Class

	// Encode converts the image to bytes. Quality is in [0,1] and is
	// ignored by lossless codecs.
	Encode(img image.Image, quality float64) ([]byte, error)
}

// Decoder turns raw bytes into a pixel buffer.
type Decoder interface {
	Decode(data []byte) (image.Image, error)
}

// Resampler produces a new buffer at the given dimensions. The source
// is never mutated. The same algorithm must be used for every call so
// repeated searches are reproducible.
type Resampler interface {
	Resample(img image.Image, width, height int) image.Image
}

const (
	// qualityIterations bounds the lossy binary search. Ten halvings
	// give ~1/1024 quality resolution, below perceptual significance,
	// and cap the worst case at exactly ten encodes.
	qualityIterations = 10

	// overshootTolerance is how far past the budget the lossy fallback
	// may land before the search fails outright.
	overshootTolerance = 1.2

	// scaleStep and maxScaleSteps define the lossless scale ladder:
	// 1.00, 0.95, ... down to 1.00 − 18·0.05 = 0.10, the floor.
	scaleStep     = 0.05
	maxScaleSteps = 18
)

// Result is the winning encode attempt.
type Result struct {
	// Data is the encoded output. The caller owns it.
	Data []byte
	// Size is len(Data) in bytes.
	Size int64
	// Codec is the output format name.
	Codec string
	// Quality is the winning quality in [0,1]. Zero for lossless codecs.
	Quality float64
	// Scale is the linear scale applied to the source dimensions.
	// Always 1 for lossy codecs.
	Scale float64
	// Width and Height are the output pixel dimensions.
	Width, Height int
	// OverBudget is true when Size exceeds the target: the lossy
	// fallback inside the tolerance band, or the lossless floor.
	OverBudget bool
	// Attempts is how many encodes the search ran.
	Attempts int
}

// Fitter runs the size-targeting search. Zero shared state between
// invocations; a single Fitter may be used from multiple goroutines.
type Fitter struct {
	dec Decoder
	res Resampler
}

// New creates a Fitter with the given decode and resample capabilities.
func New(dec Decoder, res Resampler) *Fitter {
	return &Fitter{dec: dec, res: res}
}

// Process decodes data once and searches codec's parameter space for
// the largest output that still fits targetBytes. Attempts are strictly
// sequential; each one's result decides the next parameters.
func (f *Fitter) Process(data []byte, targetBytes int64, codec Codec) (*Result, error) {
	if targetBytes <= 0 {
		return nil, fmt.Errorf("imgfit: target must be positive, got %d", targetBytes)
	}

	src, err := f.dec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if codec.Class() == ClassLossless {
		return f.fitDimensions(src, targetBytes, codec)
	}
	return f.fitQuality(src, targetBytes, codec)
}

// fitQuality binary-searches quality in [0,1] at the source's intrinsic
// dimensions, keeping the best attempt that fit the budget.
func (f *Fitter) fitQuality(src image.Image, targetBytes int64, codec Codec) (*Result, error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	minQuality, maxQuality := 0.0, 1.0
	var best *Result

	for i := 0; i < qualityIterations; i++ {
		quality := (minQuality + maxQuality) / 2
		data, err := codec.Encode(src, quality)
		if err != nil {
			return nil, fmt.Errorf("%w: %s at quality %.4f: %v", ErrEncode, codec.Name(), quality, err)
		}

		if int64(len(data)) <= targetBytes {
			best = &Result{
				Data:    data,
				Size:    int64(len(data)),
				Codec:   codec.Name(),
				Quality: quality,
				Scale:   1,
				Width:   w,
				Height:  h,
			}
			minQuality = quality
		} else {
			maxQuality = quality
		}
	}

	if best != nil {
		best.Attempts = qualityIterations
		return best, nil
	}

	// Nothing fit. One last encode at the floor; accept a small
	// overshoot rather than failing a near-miss.
	data, err := codec.Encode(src, minQuality)
	if err != nil {
		return nil, fmt.Errorf("%w: %s at quality %.4f: %v", ErrEncode, codec.Name(), minQuality, err)
	}
	size := int64(len(data))
	if float64(size) > float64(targetBytes)*overshootTolerance {
		return nil, fmt.Errorf("%w: %d bytes at lowest quality, target %d", ErrUnreachableBudget, size, targetBytes)
	}
	return &Result{
		Data:       data,
		Size:       size,
		Codec:      codec.Name(),
		Quality:    minQuality,
		Scale:      1,
		Width:      w,
		Height:     h,
		OverBudget: size > targetBytes,
		Attempts:   qualityIterations + 1,
	}, nil
}

// fitDimensions walks the scale ladder down from 1.0 until the encode
// fits or the floor is reached. Best effort: the floor attempt is
// returned even when still over budget.
func (f *Fitter) fitDimensions(src image.Image, targetBytes int64, codec Codec) (*Result, error) {
	bounds := src.Bounds()
	origW, origH := bounds.Dx(), bounds.Dy()

	scale := 1.0
	w, h := origW, origH
	attempts := 1
	data, err := codec.Encode(src, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s at scale %.2f: %v", ErrEncode, codec.Name(), scale, err)
	}

	for step := 1; int64(len(data)) > targetBytes && step <= maxScaleSteps; step++ {
		// 20·scaleStep is 1.0, so deriving each rung from the step index
		// keeps the ladder exact (0.95, 0.90, … 0.10) instead of
		// accumulating float error. Resampling always starts from the
		// original buffer to avoid compounding artifacts.
		scale = float64(20-step) * scaleStep
		w = max(1, int(math.Round(float64(origW)*scale)))
		h = max(1, int(math.Round(float64(origH)*scale)))

		resampled := f.res.Resample(src, w, h)
		attempts++
		data, err = codec.Encode(resampled, 0)
		if err != nil {
			return nil, fmt.Errorf("%w: %s at scale %.2f: %v", ErrEncode, codec.Name(), scale, err)
		}
	}

	size := int64(len(data))
	return &Result{
		Data:       data,
		Size:       size,
		Codec:      codec.Name(),
		Scale:      scale,
		Width:      w,
		Height:     h,
		OverBudget: size > targetBytes,
		Attempts:   attempts,
	}, nil
}
