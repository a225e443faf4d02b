package analyzer

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"

	"github.com/vickcn/rgb-analyzer/internal/classify"
	"github.com/vickcn/rgb-analyzer/internal/colorspace"
	"github.com/vickcn/rgb-analyzer/internal/extract"
	ingest "github.com/vickcn/rgb-analyzer/internal/imaging"
	"github.com/vickcn/rgb-analyzer/internal/overlay"
)

// Options configure an Analyzer.
type Options struct {
	// Workers bounds the goroutines used by AnalyzeDir. Zero or negative
	// means runtime.NumCPU().
	Workers int

	// OverlayDir, when non-empty, makes AnalyzeDir write a debug overlay
	// image per input into this directory and record its path in the result.
	OverlayDir string

	// Verbose enables per-image progress logging.
	Verbose bool
}

// Analyzer ties the extraction, conversion, and classification stages
// together and runs them over files and directories.
//
// An Analyzer is safe for concurrent use; all pipeline stages are pure and
// the image cache is internally synchronized.
type Analyzer struct {
	cache *ingest.ImageCache
	opts  Options
}

// Result is the full analysis record for one image.
type Result struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`

	// RGB is the extracted dominant color.
	RGB extract.RGB `json:"rgb"`

	// Color holds the colorimetric descriptors derived from RGB.
	Color colorspace.Sample `json:"color"`

	// Classification is the assigned light-color category.
	Classification classify.Label `json:"classification"`

	// CCTDescription is the informational illuminant band for Color.CCT.
	CCTDescription string `json:"cct_description"`

	// RegionCount is the number of surviving candidate regions under the
	// loose masking variant (what the overlay shows).
	RegionCount int `json:"region_count"`

	// WholeStats and MaskedStats summarize the image's channels before and
	// after black/white exclusion.
	WholeStats  extract.PixelStats `json:"whole_stats"`
	MaskedStats extract.PixelStats `json:"masked_stats"`

	// Segmentation reports what the dominant-color pipeline did.
	Segmentation extract.SegmentationStats `json:"segmentation"`

	// OverlayFile is the path of the rendered overlay image, if one was
	// written.
	OverlayFile string `json:"overlay_file,omitempty"`

	ProcessedAt time.Time `json:"processed_at"`
}

// New creates an Analyzer with the given options.
func New(opts Options) *Analyzer {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Analyzer{
		cache: ingest.NewImageCache(),
		opts:  opts,
	}
}

// Analyze runs the full pipeline over an already-normalized image. name is
// recorded in the result; it is not interpreted.
func (a *Analyzer) Analyze(src *image.NRGBA, name string) *Result {
	rgb, segStats := extract.ExtractDominantColorStats(src)
	sample := colorspace.Convert(rgb.R, rgb.G, rgb.B)
	label := classify.Classify(classify.Metrics{
		Hue:        sample.Hue,
		Saturation: sample.SatHSV,
		Value:      sample.Value,
		CCT:        sample.CCT,
	})

	looseMask := extract.BuildMask(src, extract.DefaultThresholds())

	res := &Result{
		Filename:       name,
		Width:          src.Rect.Dx(),
		Height:         src.Rect.Dy(),
		RGB:            rgb,
		Color:          sample,
		Classification: label,
		CCTDescription: colorspace.CCTDescription(sample.CCT),
		RegionCount:    len(extract.CandidateRegions(src)),
		WholeStats:     extract.Stats(src, nil),
		MaskedStats:    extract.Stats(src, looseMask),
		Segmentation:   segStats,
		ProcessedAt:    time.Now(),
	}

	if a.opts.Verbose {
		log.Printf("%s: %dx%d rgb=(%d,%d,%d) label=%s regions=%d fallback=%s score=%.1f",
			name, res.Width, res.Height, rgb.R, rgb.G, rgb.B, label,
			segStats.RegionsScored, segStats.Fallback, segStats.BestScore)
	}
	return res
}

// AnalyzeFile loads, normalizes, and analyzes a single image file.
func (a *Analyzer) AnalyzeFile(path string) (*Result, error) {
	src, err := a.cache.Load(path)
	if err != nil {
		return nil, err
	}

	res := a.Analyze(src, filepath.Base(path))
	res.Path = path

	if a.opts.OverlayDir != "" {
		overlayPath, err := a.writeOverlay(src, path)
		if err != nil {
			return nil, err
		}
		res.OverlayFile = overlayPath
	}
	return res, nil
}

// AnalyzeDir analyzes every supported image directly inside dir.
//
// Images are independent, so the work is spread over Options.Workers
// goroutines; results come back in directory listing order regardless of
// completion order. Files that fail to decode are logged and skipped rather
// than aborting the batch. An empty directory yields an empty slice and no
// error; a missing directory is an error.
func (a *Analyzer) AnalyzeDir(dir string) ([]*Result, error) {
	paths, err := listImages(dir)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < a.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := a.AnalyzeFile(paths[i])
				if err != nil {
					log.Printf("skipping %s: %v", paths[i], err)
					continue
				}
				results[i] = res
				a.cache.Evict(paths[i])
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Compact out skipped entries, preserving order.
	out := results[:0]
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (a *Analyzer) writeOverlay(src *image.NRGBA, sourcePath string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	overlayPath := filepath.Join(a.opts.OverlayDir, stem+"_overlay.png")

	annotated := overlay.Render(src)
	if err := imaging.Save(annotated, overlayPath); err != nil {
		return "", fmt.Errorf("failed to save overlay for %s: %w", sourcePath, err)
	}
	return overlayPath, nil
}

// supportedExtensions lists the formats the loader registers decoders for.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
