package codec

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/AnyUserName/imgfit-cli/internal/fit"
)

// Atomic counter for unique temp file names across goroutines.
var tempCounter atomic.Int64

// WebPCodec encodes images to WebP by shelling out to cwebp.
// This approach avoids CGO while still producing optimized WebP.
// Install: brew install webp / apt install webp
type WebPCodec struct {
	once      sync.Once
	available bool
	cwebpPath string
}

func (c *WebPCodec) Name() string      { return "webp" }
func (c *WebPCodec) Extension() string { return "webp" }
func (c *WebPCodec) Class() fit.Class  { return fit.ClassLossy }

func (c *WebPCodec) Available() bool {
	c.once.Do(func() {
		path, err := exec.LookPath("cwebp")
		if err == nil {
			c.available = true
			c.cwebpPath = path
		}
	})
	return c.available
}

func (c *WebPCodec) Encode(img image.Image, quality float64) ([]byte, error) {
	if !c.Available() {
		return nil, fmt.Errorf("cwebp not found in PATH; install with: brew install webp")
	}

	// Write source as PNG to temp file (cwebp reads files).
	// Use atomic counter to ensure unique filenames across goroutines.
	id := tempCounter.Add(1)
	srcFile, err := os.CreateTemp("", fmt.Sprintf("imgfit_src_%d_*.png", id))
	if err != nil {
		return nil, fmt.Errorf("create temp: %w", err)
	}
	srcPath := srcFile.Name()
	dstFile, err := os.CreateTemp("", fmt.Sprintf("imgfit_dst_%d_*.webp", id))
	if err != nil {
		srcFile.Close()
		os.Remove(srcPath)
		return nil, fmt.Errorf("create temp: %w", err)
	}
	dstPath := dstFile.Name()
	dstFile.Close()
	defer os.Remove(srcPath)
	defer os.Remove(dstPath)

	if err := png.Encode(srcFile, img); err != nil {
		srcFile.Close()
		return nil, fmt.Errorf("encode temp png: %w", err)
	}
	srcFile.Close()

	// Run cwebp.
	cmd := exec.Command(c.cwebpPath,
		"-q", fmt.Sprintf("%d", nativeQuality(quality)),
		"-m", "6", // compression method (0=fast, 6=best)
		"-mt",     // multi-threaded
		"-quiet",
		srcPath,
		"-o", dstPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("cwebp: %w: %s", err, string(out))
	}

	return os.ReadFile(dstPath)
}
