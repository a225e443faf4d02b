package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/vickcn/rgb-analyzer/internal/analyzer"
)

const sheetName = "Light Color Analysis"

// headers define the spreadsheet column layout. The combined RGB/HSV/HSL
// columns carry human-readable strings; the per-component columns next to
// them carry the raw values for sorting and downstream tooling.
var headers = []string{
	"#", "Filename", "RGB", "R", "G", "B",
	"HSV", "H (hue)", "S (saturation)", "V (value)",
	"HSL", "HSL H", "HSL S", "HSL L",
	"CCT (K)", "CCT Description", "Classification", "Overlay File",
}

// WriteExcel writes a styled XLSX report: bold white-on-blue header row,
// frozen at the top, auto-sized columns, and file hyperlinks on the source
// and overlay columns.
func WriteExcel(results []*analyzer.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name report sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	widths := make([]int, len(headers))
	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
		widths[i] = len(h)
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, res := range results {
		rowNum := i + 2
		row := excelRow(i+1, res)
		for col, v := range row {
			if l := len(fmt.Sprint(v)); l > widths[col] {
				widths[col] = l
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}

		// Hyperlink the filename to the source image and the overlay column
		// to the rendered overlay, when present.
		if res.Path != "" {
			if err := linkCell(f, 2, rowNum, res.Path); err != nil {
				return err
			}
		}
		if res.OverlayFile != "" {
			if err := linkCell(f, len(headers), rowNum, res.OverlayFile); err != nil {
				return err
			}
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if w > 48 {
			w = 48
		}
		if err := f.SetColWidth(sheetName, col, col, float64(w+2)); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func excelRow(idx int, res *analyzer.Result) []interface{} {
	c := res.Color
	overlayName := ""
	if res.OverlayFile != "" {
		overlayName = filepath.Base(res.OverlayFile)
	}
	return []interface{}{
		idx,
		res.Filename,
		fmt.Sprintf("RGB(%d, %d, %d)", res.RGB.R, res.RGB.G, res.RGB.B),
		int(res.RGB.R),
		int(res.RGB.G),
		int(res.RGB.B),
		fmt.Sprintf("HSV(%.1f°, %.1f%%, %.1f%%)", c.Hue, c.SatHSV, c.Value),
		fmt.Sprintf("%.1f°", c.Hue),
		fmt.Sprintf("%.1f%%", c.SatHSV),
		fmt.Sprintf("%.1f%%", c.Value),
		fmt.Sprintf("HSL(%.1f°, %.1f%%, %.1f%%)", c.HueHSL, c.SatHSL, c.Lightness),
		fmt.Sprintf("%.1f°", c.HueHSL),
		fmt.Sprintf("%.1f%%", c.SatHSL),
		fmt.Sprintf("%.1f%%", c.Lightness),
		fmt.Sprintf("%.0f", c.CCT),
		res.CCTDescription,
		string(res.Classification),
		overlayName,
	}
}

func linkCell(f *excelize.File, col, row int, target string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}
	return f.SetCellHyperLink(sheetName, cell, "file://"+abs, "External")
}

// Entry is one image's record in the JSON report. FeatureVector carries the
// {R, G, B, hue, sat_hsv, value, cct} tuple consumed by the downstream
// statistical classifiers.
type Entry struct {
	Filename       string    `json:"filename"`
	Path           string    `json:"path"`
	R              uint8     `json:"r"`
	G              uint8     `json:"g"`
	B              uint8     `json:"b"`
	Hue            float64   `json:"hue"`
	SatHSV         float64   `json:"sat_hsv"`
	Value          float64   `json:"value"`
	HueHSL         float64   `json:"hue_hsl"`
	SatHSL         float64   `json:"sat_hsl"`
	Lightness      float64   `json:"lightness"`
	CCT            float64   `json:"cct"`
	CCTDescription string    `json:"cct_description"`
	Classification string    `json:"classification"`
	RegionCount    int       `json:"region_count"`
	OverlayFile    string    `json:"overlay_file,omitempty"`
	FeatureVector  []float64 `json:"feature_vector"`
}

// WriteJSON writes the machine-readable companion of the XLSX report.
func WriteJSON(results []*analyzer.Result, path string) error {
	entries := make([]Entry, 0, len(results))
	for _, res := range results {
		c := res.Color
		entries = append(entries, Entry{
			Filename:       res.Filename,
			Path:           res.Path,
			R:              res.RGB.R,
			G:              res.RGB.G,
			B:              res.RGB.B,
			Hue:            c.Hue,
			SatHSV:         c.SatHSV,
			Value:          c.Value,
			HueHSL:         c.HueHSL,
			SatHSL:         c.SatHSL,
			Lightness:      c.Lightness,
			CCT:            c.CCT,
			CCTDescription: res.CCTDescription,
			Classification: string(res.Classification),
			RegionCount:    res.RegionCount,
			OverlayFile:    res.OverlayFile,
			FeatureVector: []float64{
				float64(res.RGB.R), float64(res.RGB.G), float64(res.RGB.B),
				c.Hue, c.SatHSV, c.Value, c.CCT,
			},
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
