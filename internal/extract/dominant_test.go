package extract

import (
	"image"
	"image/color"
	"testing"
)

func TestExtractDominantColor_Region(t *testing.T) {
	img := makeSwatch(120, 120,
		color.NRGBA{10, 10, 10, 255},
		color.NRGBA{230, 60, 50, 255},
		image.Rect(30, 30, 90, 90))

	rgb, stats := ExtractDominantColorStats(img)

	if stats.Fallback != FallbackNone {
		t.Fatalf("fallback = %q, want %q", stats.Fallback, FallbackNone)
	}
	if stats.RegionsScored < 1 {
		t.Errorf("regions scored = %d, want >= 1", stats.RegionsScored)
	}
	if stats.BestArea <= minRegionArea {
		t.Errorf("best area = %d, want > %d", stats.BestArea, minRegionArea)
	}
	if stats.BestScore <= 0 {
		t.Errorf("best score = %v, want > 0", stats.BestScore)
	}

	if rgb.R < 150 {
		t.Errorf("dominant R = %d, want >= 150 for a red swatch", rgb.R)
	}
	if rgb.G > 120 || rgb.B > 120 {
		t.Errorf("dominant G/B = %d/%d, want clearly red-dominant", rgb.G, rgb.B)
	}
}

func TestExtractDominantColor_MaskedFallback(t *testing.T) {
	// Uniform saturated image: eligible pixels but no edges, so no regions
	// survive and the masked average is used.
	img := makeSolid(60, 60, color.NRGBA{180, 40, 160, 255})

	rgb, stats := ExtractDominantColorStats(img)

	if stats.Fallback != FallbackMasked {
		t.Fatalf("fallback = %q, want %q", stats.Fallback, FallbackMasked)
	}
	if rgb != (RGB{R: 180, G: 40, B: 160}) {
		t.Errorf("dominant = %+v, want the uniform color back", rgb)
	}
}

func TestExtractDominantColor_WholeImageFallback(t *testing.T) {
	// Every pixel is extreme black, so the tight mask excludes everything
	// and the unmasked whole-image mean is the last resort. The chain must
	// degrade gracefully rather than error.
	img := makeSolid(60, 60, color.NRGBA{5, 5, 5, 255})

	rgb, stats := ExtractDominantColorStats(img)

	if stats.Fallback != FallbackWhole {
		t.Fatalf("fallback = %q, want %q", stats.Fallback, FallbackWhole)
	}
	if rgb != (RGB{R: 5, G: 5, B: 5}) {
		t.Errorf("dominant = %+v, want {5 5 5}", rgb)
	}
	if stats.RegionsFound != 0 || stats.RegionsScored != 0 {
		t.Errorf("stats = %+v, want no regions for an all-black image", stats)
	}
}

func TestExtractDominantColor_Truncation(t *testing.T) {
	// Channel means are truncated, not rounded. A 3:1 mix of 10 and 11
	// averages 10.25, which must come back as 10.
	img := makeSolid(2, 2, color.NRGBA{100, 10, 10, 255})
	img.SetNRGBA(1, 1, color.NRGBA{100, 11, 13, 255})

	rgb, stats := ExtractDominantColorStats(img)

	if stats.Fallback != FallbackMasked {
		t.Fatalf("fallback = %q, want %q", stats.Fallback, FallbackMasked)
	}
	if rgb.G != 10 {
		t.Errorf("G = %d, want truncated mean 10", rgb.G)
	}
	if rgb.B != 10 {
		t.Errorf("B = %d, want truncated mean 10", rgb.B)
	}
}

func TestCandidateRegions(t *testing.T) {
	img := makeSwatch(120, 120,
		color.NRGBA{10, 10, 10, 255},
		color.NRGBA{230, 60, 50, 255},
		image.Rect(30, 30, 90, 90))

	scored := CandidateRegions(img)
	if len(scored) == 0 {
		t.Fatal("expected at least one scored candidate")
	}
	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Errorf("candidates not in descending score order at %d", i)
		}
	}
}
