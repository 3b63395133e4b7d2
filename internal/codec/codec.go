// Package codec provides the decode, encode and resample capabilities
// behind the size-targeting search: stdlib JPEG and PNG, plus WebP via
// the cwebp binary when it is installed.
package codec

import (
	"github.com/AnyUserName/imgfit-cli/internal/fit"
)

// Codec is a fit.Codec that additionally knows its file extension and
// whether it can run on this machine. External codecs (cwebp) may not
// be installed.
type Codec interface {
	fit.Codec

	// Extension returns the file extension without dot.
	Extension() string

	// Available returns true if the codec is ready to use.
	Available() bool
}

// nativeQuality maps the search's [0,1] quality onto the 1-100 scale
// stdlib-style encoders expect. 0 maps to 1, 1 maps to 100.
func nativeQuality(quality float64) int {
	if quality < 0 {
		quality = 0
	}
	if quality > 1 {
		quality = 1
	}
	return 1 + int(quality*99+0.5)
}
