package colorspace

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Sample carries every colorimetric descriptor derived from one RGB triple.
//
// Hue values are degrees in [0, 360); saturation, value, and lightness are
// percentages in [0, 100]; CCT is Kelvin, clamped to be non-negative.
type Sample struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`

	Hue    float64 `json:"hue"`
	SatHSV float64 `json:"sat_hsv"`
	Value  float64 `json:"value"`

	HueHSL    float64 `json:"hue_hsl"`
	SatHSL    float64 `json:"sat_hsl"`
	Lightness float64 `json:"lightness"`

	CCT float64 `json:"cct"`
}

// Convert derives the full descriptor set for an 8-bit sRGB triple.
//
// HSV and HSL use the standard max/min/delta formulas (achromatic inputs
// yield hue 0 and saturation 0). CCT uses McCamy's approximation over CIE
// 1931 xy chromaticity; see CCT for the degenerate-input guards.
func Convert(r, g, b uint8) Sample {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}

	h, s, v := c.Hsv()
	hl, sl, l := c.Hsl()

	return Sample{
		R:         r,
		G:         g,
		B:         b,
		Hue:       h,
		SatHSV:    s * 100,
		Value:     v * 100,
		HueHSL:    hl,
		SatHSL:    sl * 100,
		Lightness: l * 100,
		CCT:       CCT(r, g, b),
	}
}

// CCT estimates the correlated color temperature of an 8-bit sRGB triple in
// Kelvin using McCamy's approximation.
//
// The channels are linearized with the sRGB piecewise gamma decoding and
// converted to CIE XYZ with the D65 sRGB matrix (both via go-colorful, which
// carries the exact constants). Chromaticity is x = X/(X+Y+Z),
// y = Y/(X+Y+Z), defined as 0 when X+Y+Z is 0, and McCamy's inverse slope
// n = (x-0.3320)/(0.1858-y) is defined as 0 when its denominator is 0. The
// cubic's output is clamped to be non-negative.
func CCT(r, g, b uint8) float64 {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	bigX, bigY, bigZ := c.Xyz()

	sum := bigX + bigY + bigZ
	var x, y float64
	if sum != 0 {
		x = bigX / sum
		y = bigY / sum
	}

	den := 0.1858 - y
	var n float64
	if den != 0 {
		n = (x - 0.3320) / den
	}

	cct := 449*n*n*n + 3525*n*n + 6823.3*n + 5520.33
	return math.Max(0, cct)
}

// CCTDescription names the conventional illuminant band a color temperature
// falls into. Purely informational; the classifier never consults it.
func CCTDescription(cct float64) string {
	switch {
	case cct < 2000:
		return "candlelight"
	case cct < 3000:
		return "incandescent"
	case cct < 3500:
		return "warm white"
	case cct < 4500:
		return "neutral white"
	case cct < 5500:
		return "natural light"
	case cct < 6500:
		return "daylight"
	case cct < 8000:
		return "cool white"
	case cct < 10000:
		return "overcast"
	default:
		return "blue sky"
	}
}
