// Package colorspace converts an extracted RGB triple into the standard
// colorimetric descriptors the classifier decides on: HSV, HSL, and
// correlated color temperature (McCamy's approximation).
//
// All computation assumes sRGB-encoded 8-bit channels; there is no color
// management or ICC profile handling. Degenerate arithmetic (zero maxima,
// zero chromaticity denominators) yields defined zero values rather than
// errors, so every input maps to a usable Sample.
package colorspace
