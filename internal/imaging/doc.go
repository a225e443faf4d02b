// Package imaging handles image ingestion for the analyzer.
//
// It provides a thread-safe image cache and the normalization step that
// converts every decoded image into the canonical *image.NRGBA form the rest
// of the pipeline operates on. Format decoders for PNG, JPEG, GIF, WebP, BMP,
// and TIFF are registered as a side effect of importing this package.
//
// # Normalization Invariant
//
// All pixel heuristics in this repository index raw NRGBA buffers directly
// and assume R,G,B byte order with zero-origin bounds. That assumption is
// established exactly once, at load time, by Normalize. Code that obtains
// images from any other source must pass them through Normalize before
// handing them to the extraction pipeline.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Normalized images are shared between
// goroutines and must be treated as read-only.
package imaging
