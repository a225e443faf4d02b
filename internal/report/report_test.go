package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/vickcn/rgb-analyzer/internal/analyzer"
	"github.com/vickcn/rgb-analyzer/internal/classify"
	"github.com/vickcn/rgb-analyzer/internal/colorspace"
	"github.com/vickcn/rgb-analyzer/internal/extract"
)

func sampleResults() []*analyzer.Result {
	return []*analyzer.Result{
		{
			Path:           "/data/in/red.png",
			Filename:       "red.png",
			Width:          120,
			Height:         120,
			RGB:            extract.RGB{R: 230, G: 60, B: 50},
			Color:          colorspace.Convert(230, 60, 50),
			Classification: classify.NeonPinkB,
			CCTDescription: "incandescent",
			RegionCount:    1,
			OverlayFile:    "/data/out/red_overlay.png",
		},
		{
			Path:           "/data/in/white.png",
			Filename:       "white.png",
			Width:          120,
			Height:         120,
			RGB:            extract.RGB{R: 250, G: 250, B: 250},
			Color:          colorspace.Convert(250, 250, 250),
			Classification: classify.IceWhite,
			CCTDescription: "cool white",
			RegionCount:    2,
		},
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteJSON(sampleResults(), path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	e := entries[0]
	if e.Filename != "red.png" || e.R != 230 || e.Classification != "neon-pink-b" {
		t.Errorf("first entry = %+v, want the red result", e)
	}
	if len(e.FeatureVector) != 7 {
		t.Fatalf("feature vector length = %d, want 7", len(e.FeatureVector))
	}
	if e.FeatureVector[0] != 230 || e.FeatureVector[3] != e.Hue || e.FeatureVector[6] != e.CCT {
		t.Errorf("feature vector %v inconsistent with entry fields", e.FeatureVector)
	}
	if entries[1].OverlayFile != "" {
		t.Errorf("overlay file = %q, want empty when none was written", entries[1].OverlayFile)
	}
}

func TestWriteJSON_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := WriteJSON(nil, path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var entries []Entry
	data, _ := os.ReadFile(path)
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestWriteExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteExcel(sampleResults(), path); err != nil {
		t.Fatalf("WriteExcel: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != sheetName {
		t.Fatalf("sheets = %v, want [%q]", sheets, sheetName)
	}

	checks := []struct {
		cell string
		want string
	}{
		{"A1", "#"},
		{"B1", "Filename"},
		{"Q1", "Classification"},
		{"A2", "1"},
		{"B2", "red.png"},
		{"C2", "RGB(230, 60, 50)"},
		{"Q2", "neon-pink-b"},
		{"R2", "red_overlay.png"},
		{"B3", "white.png"},
		{"Q3", "ice-white"},
		{"R3", ""},
	}
	for _, c := range checks {
		got, err := f.GetCellValue(sheetName, c.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", c.cell, err)
		}
		if got != c.want {
			t.Errorf("cell %s = %q, want %q", c.cell, got, c.want)
		}
	}

	// The filename column links back to the source image.
	has, target, err := f.GetCellHyperLink(sheetName, "B2")
	if err != nil {
		t.Fatalf("GetCellHyperLink: %v", err)
	}
	if !has || target != "file:///data/in/red.png" {
		t.Errorf("hyperlink = %v %q, want file:///data/in/red.png", has, target)
	}
}

func TestWriteExcel_BadPath(t *testing.T) {
	if err := WriteExcel(sampleResults(), "/nonexistent/dir/report.xlsx"); err == nil {
		t.Error("expected an error for an unwritable path")
	}
}
