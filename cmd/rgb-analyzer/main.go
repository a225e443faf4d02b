package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/vickcn/rgb-analyzer/internal/analyzer"
	"github.com/vickcn/rgb-analyzer/internal/report"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version":
			fmt.Printf("rgb-analyzer %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		in      string
		out     string
		workers int
		noDebug bool
		verbose bool
	)
	flag.StringVar(&in, "in", "imgData", "input directory containing swatch images")
	flag.StringVar(&out, "out", "output", "output root directory")
	flag.IntVar(&workers, "workers", 0, "number of worker goroutines (0 = number of CPUs)")
	flag.BoolVar(&noDebug, "no-overlay", false, "skip rendering debug overlay images")
	flag.BoolVar(&verbose, "v", false, "verbose per-image logging")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := run(in, out, workers, !noDebug, verbose); err != nil {
		log.Fatalf("rgb-analyzer: %v", err)
	}
}

func run(in, out string, workers int, overlays, verbose bool) error {
	if _, err := os.Stat(in); err != nil {
		return fmt.Errorf("input directory %s: %w", in, err)
	}

	// Date-stamped output tree: <out>/<yyyymmdd>/{overlays,reports}.
	dateDir := filepath.Join(out, time.Now().Format("20060102"))
	overlayDir := filepath.Join(dateDir, "overlays")
	reportDir := filepath.Join(dateDir, "reports")
	for _, dir := range []string{dateDir, overlayDir, reportDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	opts := analyzer.Options{
		Workers: workers,
		Verbose: verbose,
	}
	if overlays {
		opts.OverlayDir = overlayDir
	}

	a := analyzer.New(opts)
	results, err := a.AnalyzeDir(in)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no images found in %s", in)
	}

	date := time.Now().Format("20060102")
	xlsxPath := filepath.Join(reportDir, fmt.Sprintf("rgb_analysis_%s.xlsx", date))
	jsonPath := filepath.Join(reportDir, fmt.Sprintf("rgb_analysis_%s.json", date))

	if err := report.WriteExcel(results, xlsxPath); err != nil {
		return err
	}
	if err := report.WriteJSON(results, jsonPath); err != nil {
		return err
	}

	log.Printf("analyzed %d images", len(results))
	log.Printf("reports: %s, %s", xlsxPath, jsonPath)
	if overlays {
		log.Printf("overlays: %s", overlayDir)
	}
	return nil
}
