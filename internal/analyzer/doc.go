// Package analyzer orchestrates the per-image pipeline: ingestion, dominant
// color extraction, colorimetric conversion, classification, and optional
// overlay rendering, plus batch processing over directories.
//
// Each image is processed independently with no shared mutable state beyond
// the read-through image cache, so AnalyzeDir fans the work out over a
// bounded worker pool. The orchestrator owns everything the core stages do
// not: file discovery, decode-failure reporting, and progress logging.
package analyzer
