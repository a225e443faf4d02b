// Package extract implements the dominant-color extraction pipeline: pixel
// masking, edge-based candidate segmentation, heuristic region filtering and
// scoring, and dominant-color selection with its fallback chain.
//
// # Pipeline
//
// The stages run in a fixed order:
//
//  1. BuildMask excludes near-black and near-white pixels (two threshold
//     presets: DefaultThresholds for overlays and statistics,
//     DominantThresholds for extraction).
//  2. Segment applies the mask, smooths, edge-detects, closes, and extracts
//     candidate regions; areas of 100 pixels or fewer are dropped.
//  3. FilterScore rejects text-box-like, whitish, black, and neutral-gray
//     regions and scores the survivors by area, spread, and brightness.
//  4. ExtractDominantColor picks the top-scored region's mean color, falling
//     back to the masked average and then the whole-image average.
//
// All entities are transient and recomputed per invocation; nothing persists
// between calls and no function here ever fails — degenerate inputs fall
// through the fallback chain to a defined value.
//
// # Concurrency
//
// Every function is a pure function of its inputs. Images are processed
// independently, so batches may run on as many goroutines as desired provided
// each *image.NRGBA is treated as read-only.
package extract
