package overlay

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vickcn/rgb-analyzer/internal/extract"
)

// Annotation colors: surviving contours in green, the top-ranked candidate's
// box in red, every other box in blue.
var (
	contourColor = color.NRGBA{G: 255, A: 255}
	bestColor    = color.NRGBA{R: 255, A: 255}
	otherColor   = color.NRGBA{B: 255, A: 255}
)

// Render draws the candidate-region audit overlay for img.
//
// It re-runs the shared segmentation/filter/scorer pipeline (loose mask
// variant), draws every surviving contour, then a bounding rectangle and a
// "rank (area)" label per region in score order. The input image is never
// mutated; the annotated copy is returned. Purely diagnostic — the numeric
// results do not depend on this function.
func Render(img *image.NRGBA) *image.NRGBA {
	out := imaging.Clone(img)
	regions := extract.CandidateRegions(img)

	for i := range regions {
		drawBoundary(out, regions[i].Boundary)
	}

	for i := range regions {
		col := otherColor
		if i == 0 {
			col = bestColor
		}
		drawRect(out, regions[i].Bounds, col)

		label := fmt.Sprintf("%d (%d)", i+1, regions[i].Area)
		drawLabel(out, regions[i].Bounds.Min.X, regions[i].Bounds.Min.Y-10, label, col)
	}

	return out
}

func drawBoundary(img *image.NRGBA, boundary []image.Point) {
	for _, p := range boundary {
		if p.In(img.Rect) {
			img.SetNRGBA(p.X, p.Y, contourColor)
		}
	}
}

// drawRect outlines r with a two-pixel border, clipped to img.
func drawRect(img *image.NRGBA, r image.Rectangle, col color.NRGBA) {
	for t := 0; t < 2; t++ {
		box := r.Inset(-t)
		for x := box.Min.X; x < box.Max.X; x++ {
			setClipped(img, x, box.Min.Y, col)
			setClipped(img, x, box.Max.Y-1, col)
		}
		for y := box.Min.Y; y < box.Max.Y; y++ {
			setClipped(img, box.Min.X, y, col)
			setClipped(img, box.Max.X-1, y, col)
		}
	}
}

func setClipped(img *image.NRGBA, x, y int, col color.NRGBA) {
	if (image.Point{X: x, Y: y}).In(img.Rect) {
		img.SetNRGBA(x, y, col)
	}
}

// drawLabel renders text with its baseline at (x, y). Labels that would land
// above the image are pushed below the box's top edge instead.
func drawLabel(img *image.NRGBA, x, y int, text string, col color.NRGBA) {
	face := basicfont.Face7x13
	if y < face.Ascent {
		y += face.Height + 10
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
