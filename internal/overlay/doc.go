// Package overlay renders the debug overlay used to audit region detection:
// surviving contours, ranked bounding boxes, and per-region area labels drawn
// on a copy of the source image.
//
// The overlay shares the extraction pipeline's segmentation, filtering, and
// scoring code so that what it shows is exactly what the dominant-color
// selector considered, modulo the looser masking thresholds used for
// visualization.
package overlay
