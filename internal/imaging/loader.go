package imaging

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	_ "github.com/chai2010/webp" // Register WebP format decoder
	_ "golang.org/x/image/bmp"   // Register BMP format decoder
	_ "golang.org/x/image/tiff"  // Register TIFF format decoder
)

// ImageCache provides thread-safe caching of loaded images to avoid redundant
// disk reads during a batch run.
//
// The cache stores normalized *image.NRGBA images keyed by their file path.
// Once an image is loaded, subsequent Load() calls for the same path return
// the cached copy without disk I/O.
//
// ImageCache is safe for concurrent use by multiple goroutines. All methods
// use appropriate locking to prevent data races.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or
// Clear(). For long batch runs over large directories, evict images once
// their results have been collected.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*image.NRGBA
}

// NewImageCache creates and initializes a new empty image cache.
//
// The returned cache is ready for immediate use and is safe for concurrent access.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*image.NRGBA),
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF, WebP, BMP, and TIFF.
//
// Returns:
//   - *image.NRGBA: The decoded image, normalized via Normalize. Every image
//     handed out by the cache satisfies the ingestion invariant: RGB channel
//     order, 8-bit, zero-origin bounds.
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The image is cached using the exact path string provided. Different paths to
// the same file (e.g., relative vs absolute) will result in separate cache
// entries.
func (c *ImageCache) Load(path string) (*image.NRGBA, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img := Normalize(decoded)

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*image.NRGBA)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// If the path is not in the cache, this method does nothing. After eviction,
// the next Load() call for this path will read from disk.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Normalize converts any decoded image into the canonical in-memory form used
// by the rest of the pipeline: *image.NRGBA with bounds anchored at (0,0).
//
// Decoders produce a variety of concrete types (*image.YCbCr for JPEG,
// *image.Paletted for GIF, ...) with varying channel layouts. All pixel-level
// heuristics downstream index the raw NRGBA buffer directly and assume R,G,B
// byte order, so the conversion must happen exactly once, here.
//
// If the input is already a zero-origin *image.NRGBA it is returned as-is.
func Normalize(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)
	return out
}
