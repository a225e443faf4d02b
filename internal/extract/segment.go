package extract

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/effect"
)

// Edge detector operating points. The gradient thresholds are the standard
// Canny pair for clean, well-lit photographs; regions whose filled area does
// not exceed minRegionArea are discarded as noise before filtering.
const (
	cannyThresholdLow  = 50
	cannyThresholdHigh = 150
	minRegionArea      = 100
)

// Region is one candidate light region: a connected boundary produced by edge
// detection, together with the attributes derived from the pixels it encloses.
type Region struct {
	// Area is the number of enclosed pixels.
	Area int

	// Bounds is the axis-aligned bounding box of the boundary.
	Bounds image.Rectangle

	// Boundary holds the contour pixels in discovery order.
	Boundary []image.Point

	// MeanR, MeanG, MeanB are the mean channel values over the enclosed
	// pixels of the original (unmasked) image.
	MeanR, MeanG, MeanB float64
}

// Spread is the max-min difference between the mean channels. It acts as a
// cheap saturation proxy throughout the filtering heuristics.
func (r *Region) Spread() float64 {
	max := math.Max(r.MeanR, math.Max(r.MeanG, r.MeanB))
	min := math.Min(r.MeanR, math.Min(r.MeanG, r.MeanB))
	return max - min
}

// Brightness is the mean of the three mean channels.
func (r *Region) Brightness() float64 {
	return (r.MeanR + r.MeanG + r.MeanB) / 3
}

// Segment runs edge-based candidate segmentation over img.
//
// The mask is applied first (excluded pixels are treated as black), then the
// masked image is reduced to grayscale, smoothed with a 5x5 Gaussian kernel,
// edge-detected with a Canny operator, and closed with a 3x3 structuring
// element to bridge small gaps. External boundaries are extracted as
// 8-connected components of the closed edge map; each component is filled
// row-wise inside its bounding box to recover the enclosed pixel set.
//
// Regions whose area does not exceed 100 pixels are dropped. The returned
// slice preserves discovery order (raster scan of the edge map), which later
// serves as the tie-break for equal scores.
func Segment(img *image.NRGBA, mask *Mask) []Region {
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	gray := maskedGray(img, mask)
	blurred := gaussianBlur(gray, width, height)
	edges := cannyEdges(blurred, width, height, cannyThresholdLow, cannyThresholdHigh)
	closed := closeEdges(edges)

	var regions []Region
	for _, component := range findComponents(closed, width, height) {
		if region, ok := buildRegion(img, component); ok {
			regions = append(regions, region)
		}
	}
	return regions
}

// maskedGray converts img to a normalized grayscale grid, zeroing pixels the
// mask excludes. Luminance uses ITU-R BT.601 weights, matching the grayscale
// conversion the edge thresholds were tuned against.
func maskedGray(img *image.NRGBA, mask *Mask) [][]float64 {
	width := img.Rect.Dx()
	height := img.Rect.Dy()

	gray := make([][]float64, height)
	for y := 0; y < height; y++ {
		gray[y] = make([]float64, width)
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			if mask != nil && !mask.At(x, y) {
				continue
			}
			r := float64(row[x*4]) / 255.0
			g := float64(row[x*4+1]) / 255.0
			b := float64(row[x*4+2]) / 255.0
			gray[y][x] = 0.299*r + 0.587*g + 0.114*b
		}
	}
	return gray
}

// gaussianBlur applies a 5x5 Gaussian blur to reduce noise before edge
// detection.
//
// Uses a standard 5x5 Gaussian kernel with sigma ≈ 1.4:
//
//	1  4  7  4  1
//	4 16 26 16  4
//	7 26 41 26  7
//	4 16 26 16  4
//	1  4  7  4  1
//
// Total kernel sum = 273, used for normalization.
// Border pixels use clamped (replicated) edge values.
func gaussianBlur(img [][]float64, width, height int) [][]float64 {
	kernel := [][]float64{
		{1, 4, 7, 4, 1},
		{4, 16, 26, 16, 4},
		{7, 26, 41, 26, 7},
		{4, 16, 26, 16, 4},
		{1, 4, 7, 4, 1},
	}
	kernelSum := 273.0

	result := make([][]float64, height)
	for y := 0; y < height; y++ {
		result[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			var sum float64
			for ky := -2; ky <= 2; ky++ {
				for kx := -2; kx <= 2; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					sum += img[py][px] * kernel[ky+2][kx+2]
				}
			}
			result[y][x] = sum / kernelSum
		}
	}
	return result
}

// cannyEdges performs Canny edge detection over a blurred grayscale grid and
// returns a binary edge map (255 = edge).
//
// The stages are the classic ones: Sobel gradients, non-maximum suppression
// to thin edges to one pixel, then double-threshold hysteresis where weak
// edges survive only next to strong ones.
func cannyEdges(blurred [][]float64, width, height, thresholdLow, thresholdHigh int) *image.Gray {
	sobelX := [][]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [][]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	magnitude := make([][]float64, height)
	direction := make([][]float64, height)
	for y := 0; y < height; y++ {
		magnitude[y] = make([]float64, width)
		direction[y] = make([]float64, width)

		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					gx += blurred[py][px] * sobelX[ky+1][kx+1]
					gy += blurred[py][px] * sobelY[ky+1][kx+1]
				}
			}
			magnitude[y][x] = math.Sqrt(gx*gx + gy*gy)
			direction[y][x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression
	suppressed := make([][]float64, height)
	for y := 0; y < height; y++ {
		suppressed[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				continue
			}

			angle := direction[y][x]
			mag := magnitude[y][x]

			// Determine neighbors to compare based on gradient direction
			var n1, n2 float64
			if (angle >= -math.Pi/8 && angle < math.Pi/8) || (angle >= 7*math.Pi/8 || angle < -7*math.Pi/8) {
				n1 = magnitude[y][x-1]
				n2 = magnitude[y][x+1]
			} else if (angle >= math.Pi/8 && angle < 3*math.Pi/8) || (angle >= -7*math.Pi/8 && angle < -5*math.Pi/8) {
				n1 = magnitude[y-1][x+1]
				n2 = magnitude[y+1][x-1]
			} else if (angle >= 3*math.Pi/8 && angle < 5*math.Pi/8) || (angle >= -5*math.Pi/8 && angle < -3*math.Pi/8) {
				n1 = magnitude[y-1][x]
				n2 = magnitude[y+1][x]
			} else {
				n1 = magnitude[y-1][x-1]
				n2 = magnitude[y+1][x+1]
			}

			if mag >= n1 && mag >= n2 {
				suppressed[y][x] = mag
			}
		}
	}

	// Double threshold and edge tracking by hysteresis
	result := image.NewGray(image.Rect(0, 0, width, height))
	lowThresh := float64(thresholdLow) / 255.0
	highThresh := float64(thresholdHigh) / 255.0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			val := suppressed[y][x]
			if val >= highThresh {
				result.SetGray(x, y, color.Gray{Y: 255})
			} else if val >= lowThresh {
				// Check if connected to a strong edge
				hasStrongNeighbor := false
				for ky := -1; ky <= 1 && !hasStrongNeighbor; ky++ {
					for kx := -1; kx <= 1 && !hasStrongNeighbor; kx++ {
						py := clamp(y+ky, 0, height-1)
						px := clamp(x+kx, 0, width-1)
						if suppressed[py][px] >= highThresh {
							hasStrongNeighbor = true
						}
					}
				}
				if hasStrongNeighbor {
					result.SetGray(x, y, color.Gray{Y: 255})
				}
			}
		}
	}

	return result
}

// closeEdges applies a morphological closing (dilation then erosion, 3x3
// structuring element) to bridge small gaps in the binary edge map, then
// re-binarizes the result.
func closeEdges(edges *image.Gray) [][]bool {
	width := edges.Rect.Dx()
	height := edges.Rect.Dy()

	closed := effect.Erode(effect.Dilate(edges, 1), 1)

	out := make([][]bool, height)
	for y := 0; y < height; y++ {
		out[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			out[y][x] = closed.Pix[y*closed.Stride+x*4] > 127
		}
	}
	return out
}

// findComponents groups connected edge pixels into boundary components.
//
// Uses iterative flood-fill with 8-connectivity, scanning in raster order so
// component discovery order is deterministic. Only external boundaries are
// produced; nested contours merge into the component that encloses them when
// their edges touch, and are otherwise reported as separate candidates.
func findComponents(edges [][]bool, width, height int) [][]image.Point {
	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	var components [][]image.Point
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if edges[y][x] && !visited[y][x] {
				var component []image.Point
				floodFill(edges, visited, x, y, width, height, &component)
				components = append(components, component)
			}
		}
	}
	return components
}

// floodFill performs iterative flood-fill from a starting point.
//
// Uses a stack-based approach (not recursive) to avoid stack overflow on
// large boundaries. Marks visited pixels and appends them to the component.
func floodFill(edges, visited [][]bool, startX, startY, width, height int, component *[]image.Point) {
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !edges[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		*component = append(*component, p)

		// 8-connected neighbors
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
}

// buildRegion fills a boundary component row-wise inside its bounding box and
// derives the region attributes from the enclosed pixels of the original
// image. Returns ok=false when the filled area does not exceed minRegionArea.
func buildRegion(img *image.NRGBA, boundary []image.Point) (Region, bool) {
	if len(boundary) == 0 {
		return Region{}, false
	}

	minX, minY := boundary[0].X, boundary[0].Y
	maxX, maxY := minX, minY
	for _, p := range boundary {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// Row spans: leftmost to rightmost boundary pixel per row.
	rows := maxY - minY + 1
	spanMin := make([]int, rows)
	spanMax := make([]int, rows)
	for i := range spanMin {
		spanMin[i] = -1
	}
	for _, p := range boundary {
		i := p.Y - minY
		if spanMin[i] == -1 || p.X < spanMin[i] {
			spanMin[i] = p.X
		}
		if p.X > spanMax[i] {
			spanMax[i] = p.X
		}
	}

	area := 0
	var sumR, sumG, sumB float64
	for i := 0; i < rows; i++ {
		if spanMin[i] == -1 {
			continue
		}
		y := minY + i
		row := img.Pix[y*img.Stride:]
		for x := spanMin[i]; x <= spanMax[i]; x++ {
			sumR += float64(row[x*4])
			sumG += float64(row[x*4+1])
			sumB += float64(row[x*4+2])
			area++
		}
	}

	if area <= minRegionArea {
		return Region{}, false
	}

	n := float64(area)
	return Region{
		Area:     area,
		Bounds:   image.Rect(minX, minY, maxX+1, maxY+1),
		Boundary: boundary,
		MeanR:    sumR / n,
		MeanG:    sumG / n,
		MeanB:    sumB / n,
	}, true
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
