package fit

import "errors"

var (
	// ErrDecode is returned when the input bytes are not a decodable image.
	ErrDecode = errors.New("imgfit: input is not a decodable image")

	// ErrEncode is returned when the codec rejected valid pixel data.
	// Encoder failures are fatal; the search is not retried with
	// different parameters.
	ErrEncode = errors.New("imgfit: encode failed")

	// ErrUnreachableBudget is returned by the lossy search when even the
	// lowest quality overshoots the target by more than the tolerance.
	ErrUnreachableBudget = errors.New("imgfit: target size unreachable")
)
