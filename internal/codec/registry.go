package codec

import (
	"fmt"
	"strings"
)

// Registry holds all available codecs, keyed by format name.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry creates a registry, probing all codecs for availability.
func NewRegistry() *Registry {
	r := &Registry{
		codecs: make(map[string]Codec),
	}

	// Register all codecs. Only available ones will be used.
	all := []Codec{
		&WebPCodec{},
		&JPEGCodec{},
		&PNGCodec{},
	}

	for _, c := range all {
		if c.Available() {
			r.codecs[c.Name()] = c
		}
	}

	return r
}

// Get returns a codec for the given format, or nil if unavailable.
// "jpg" is accepted as an alias for "jpeg".
func (r *Registry) Get(format string) Codec {
	format = strings.ToLower(format)
	if format == "jpg" {
		format = "jpeg"
	}
	return r.codecs[format]
}

// Available returns all available format names.
func (r *Registry) Available() []string {
	var result []string
	// Maintain priority order.
	for _, f := range []string{"webp", "jpeg", "png"} {
		if _, ok := r.codecs[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// String returns a summary of available codecs.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no codecs available"
	}
	return fmt.Sprintf("codecs: %s", strings.Join(avail, ", "))
}
