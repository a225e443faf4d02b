package extract

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// ChannelStats summarizes one color channel over a pixel population.
type ChannelStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// PixelStats holds per-channel statistics for an image, optionally restricted
// to the mask-eligible pixels.
type PixelStats struct {
	R     ChannelStats `json:"r"`
	G     ChannelStats `json:"g"`
	B     ChannelStats `json:"b"`
	Count int          `json:"pixel_count"`
}

// Stats computes mean and population standard deviation per channel over the
// eligible pixels of img. A nil mask includes every pixel. An image with no
// eligible pixels yields the zero value, never an error.
func Stats(img *image.NRGBA, mask *Mask) PixelStats {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	rs := make([]float64, 0, w*h)
	gs := make([]float64, 0, w*h)
	bs := make([]float64, 0, w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			if mask != nil && !mask.At(x, y) {
				continue
			}
			rs = append(rs, float64(row[x*4]))
			gs = append(gs, float64(row[x*4+1]))
			bs = append(bs, float64(row[x*4+2]))
		}
	}

	if len(rs) == 0 {
		return PixelStats{}
	}

	return PixelStats{
		R:     ChannelStats{Mean: stat.Mean(rs, nil), StdDev: stat.PopStdDev(rs, nil)},
		G:     ChannelStats{Mean: stat.Mean(gs, nil), StdDev: stat.PopStdDev(gs, nil)},
		B:     ChannelStats{Mean: stat.Mean(bs, nil), StdDev: stat.PopStdDev(bs, nil)},
		Count: len(rs),
	}
}
