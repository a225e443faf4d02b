package overlay

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// swatchImage builds an L-shaped bright region on a near-black backdrop. The
// L keeps the contour away from its own bounding box, so contour and box
// annotations land on distinct pixels.
func swatchImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 120, 120))
	for y := 0; y < 120; y++ {
		for x := 0; x < 120; x++ {
			img.SetNRGBA(x, y, color.NRGBA{10, 10, 10, 255})
		}
	}
	fill := func(r image.Rectangle) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetNRGBA(x, y, color.NRGBA{230, 60, 50, 255})
			}
		}
	}
	fill(image.Rect(30, 30, 60, 90))
	fill(image.Rect(30, 60, 90, 90))
	return img
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	img := swatchImage()
	before := make([]uint8, len(img.Pix))
	copy(before, img.Pix)

	Render(img)

	if !bytes.Equal(before, img.Pix) {
		t.Error("Render mutated its input image")
	}
}

func TestRender_Dimensions(t *testing.T) {
	img := swatchImage()
	out := Render(img)

	if out.Rect.Dx() != img.Rect.Dx() || out.Rect.Dy() != img.Rect.Dy() {
		t.Errorf("overlay dimensions %dx%d, want %dx%d",
			out.Rect.Dx(), out.Rect.Dy(), img.Rect.Dx(), img.Rect.Dy())
	}
}

func TestRender_DrawsAnnotations(t *testing.T) {
	img := swatchImage()
	out := Render(img)

	var contour, best int
	for y := 0; y < out.Rect.Dy(); y++ {
		for x := 0; x < out.Rect.Dx(); x++ {
			switch out.NRGBAAt(x, y) {
			case contourColor:
				contour++
			case bestColor:
				best++
			}
		}
	}

	if contour == 0 {
		t.Error("no contour pixels drawn for a clearly segmentable swatch")
	}
	if best == 0 {
		t.Error("no bounding-box pixels drawn for the top-ranked region")
	}
}

func TestRender_BlankImage(t *testing.T) {
	// No candidate regions: the overlay is just a copy.
	img := image.NewNRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.SetNRGBA(x, y, color.NRGBA{128, 128, 128, 255})
		}
	}

	out := Render(img)
	if !bytes.Equal(out.Pix, img.Pix) {
		t.Error("overlay of a region-free image should equal the input")
	}
}
