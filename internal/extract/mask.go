package extract

import "image"

// Mask flags which pixels of an image are eligible for segmentation and
// averaging. It is a flat, row-major grid with the same dimensions as its
// source image; 255 marks an eligible pixel, 0 an excluded one.
type Mask struct {
	W, H int
	Pix  []uint8
}

// Thresholds control the near-black/near-white pixel exclusion.
//
// A pixel is near-black when all three channels fall below BlackBelow, and
// near-white when all three exceed WhiteAbove. When WhiteSpreadBelow is
// non-zero, near-white additionally requires the max-min channel spread to
// fall below it; this keeps pale-but-tinted light pixels eligible.
type Thresholds struct {
	BlackBelow       uint8
	WhiteAbove       uint8
	WhiteSpreadBelow uint8
}

// DefaultThresholds returns the loose exclusion variant (30/225, no spread
// test) used by the overlay renderer and whole-image statistics.
func DefaultThresholds() Thresholds {
	return Thresholds{BlackBelow: 30, WhiteAbove: 225}
}

// DominantThresholds returns the tight exclusion variant (20/240, white
// spread < 8) used by dominant-color extraction. Only extreme pixels are
// excluded so that faintly tinted highlights survive into segmentation.
func DominantThresholds() Thresholds {
	return Thresholds{BlackBelow: 20, WhiteAbove: 240, WhiteSpreadBelow: 8}
}

// BuildMask classifies every pixel of img against t and returns the resulting
// eligibility mask. Pure function of (img, t).
//
// The predicate is evaluated in a single pass over the raw NRGBA buffer
// rather than through image.At; on typical swatch photographs this is the
// pipeline's hottest loop.
func BuildMask(img *image.NRGBA, t Thresholds) *Mask {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	m := &Mask{W: w, H: h, Pix: make([]uint8, w*h)}

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		out := m.Pix[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			r := row[x*4]
			g := row[x*4+1]
			b := row[x*4+2]

			black := r < t.BlackBelow && g < t.BlackBelow && b < t.BlackBelow
			white := r > t.WhiteAbove && g > t.WhiteAbove && b > t.WhiteAbove
			if white && t.WhiteSpreadBelow > 0 {
				white = spread8(r, g, b) < t.WhiteSpreadBelow
			}

			if black || white {
				out[x] = 0
			} else {
				out[x] = 255
			}
		}
	}
	return m
}

// Count returns the number of eligible pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// At reports whether the pixel at (x, y) is eligible.
func (m *Mask) At(x, y int) bool {
	return m.Pix[y*m.W+x] != 0
}

func spread8(r, g, b uint8) uint8 {
	max, min := r, r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}
	return max - min
}
