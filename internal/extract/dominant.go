package extract

import "image"

// RGB is an 8-bit color triple in the normalized channel order.
type RGB struct {
	R, G, B uint8
}

// FallbackTier records which tier of the dominant-color fallback chain
// produced the final value.
type FallbackTier string

const (
	// FallbackNone: the top-scored region's mean was used.
	FallbackNone FallbackTier = "region"
	// FallbackMasked: no region survived; mean over mask-eligible pixels.
	FallbackMasked FallbackTier = "masked-average"
	// FallbackWhole: the mask excluded every pixel; unmasked whole-image mean.
	FallbackWhole FallbackTier = "whole-average"
)

// SegmentationStats summarizes one extraction run for observability. It
// replaces progress narration inside the algorithm: callers that want to see
// what the pipeline did read these counters instead.
type SegmentationStats struct {
	// RegionsFound is the number of candidate regions after segmentation
	// (small areas already dropped).
	RegionsFound int

	// RegionsRejected is the number removed by the filtering heuristics.
	RegionsRejected int

	// RegionsScored is the number of surviving scored regions.
	RegionsScored int

	// BestScore and BestArea describe the chosen region. Zero when the
	// fallback chain was taken.
	BestScore float64
	BestArea  int

	// Fallback names the tier that produced the returned color.
	Fallback FallbackTier
}

// ExtractDominantColor returns the single color that best represents the
// illuminated swatch in img.
//
// The tight exclusion thresholds (DominantThresholds) mask out extreme
// black/white pixels, the masked image is segmented into candidate regions,
// and the filtered survivors are scored; the top-scored region's mean color
// wins. When nothing survives, the mean over all mask-eligible pixels is
// used, and when the mask excluded every pixel the unmasked whole-image mean
// is used. The chain always terminates with a value; a fully degenerate
// image yields its own (possibly black) average rather than an error.
func ExtractDominantColor(img *image.NRGBA) RGB {
	rgb, _ := ExtractDominantColorStats(img)
	return rgb
}

// ExtractDominantColorStats is ExtractDominantColor plus the run's
// SegmentationStats.
func ExtractDominantColorStats(img *image.NRGBA) (RGB, SegmentationStats) {
	var stats SegmentationStats

	mask := BuildMask(img, DominantThresholds())
	regions := Segment(img, mask)
	scored := FilterScore(regions)

	stats.RegionsFound = len(regions)
	stats.RegionsScored = len(scored)
	stats.RegionsRejected = len(regions) - len(scored)

	if len(scored) > 0 {
		best := scored[0]
		stats.Fallback = FallbackNone
		stats.BestScore = best.Score
		stats.BestArea = best.Area
		return RGB{R: uint8(best.MeanR), G: uint8(best.MeanG), B: uint8(best.MeanB)}, stats
	}

	if rgb, ok := meanOverMask(img, mask); ok {
		stats.Fallback = FallbackMasked
		return rgb, stats
	}

	stats.Fallback = FallbackWhole
	rgb, _ := meanOverMask(img, nil)
	return rgb, stats
}

// meanOverMask computes the truncated mean color of the eligible pixels.
// A nil mask means every pixel. ok is false when no pixel was eligible.
func meanOverMask(img *image.NRGBA, mask *Mask) (RGB, bool) {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	var sumR, sumG, sumB float64
	count := 0
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			if mask != nil && !mask.At(x, y) {
				continue
			}
			sumR += float64(row[x*4])
			sumG += float64(row[x*4+1])
			sumB += float64(row[x*4+2])
			count++
		}
	}

	if count == 0 {
		return RGB{}, false
	}
	n := float64(count)
	return RGB{
		R: uint8(sumR / n),
		G: uint8(sumG / n),
		B: uint8(sumB / n),
	}, true
}

// CandidateRegions runs the loose-mask variant of the segmentation and
// filtering pipeline. This is the shared path behind the overlay renderer
// and the per-image region count: it must stay in lockstep with the
// dominant-color path, differing only in its masking thresholds.
func CandidateRegions(img *image.NRGBA) []ScoredRegion {
	mask := BuildMask(img, DefaultThresholds())
	return FilterScore(Segment(img, mask))
}
