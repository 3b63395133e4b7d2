package codec

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// StdDecoder decodes raw bytes with the stdlib image registry plus the
// x/image formats (bmp, tiff, webp). It satisfies fit.Decoder.
type StdDecoder struct{}

// Decode returns the pixel buffer for data, or an error when the bytes
// are not a recognized image.
func (StdDecoder) Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}
