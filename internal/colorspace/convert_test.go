package colorspace

import (
	"math"
	"testing"
)

func approx(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func TestConvert_Primaries(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		hue     float64
		sat     float64
		value   float64
	}{
		{"red", 255, 0, 0, 0, 100, 100},
		{"green", 0, 255, 0, 120, 100, 100},
		{"blue", 0, 0, 255, 240, 100, 100},
		{"yellow", 255, 255, 0, 60, 100, 100},
		{"cyan", 0, 255, 255, 180, 100, 100},
		{"magenta", 255, 0, 255, 300, 100, 100},
		{"half red", 128, 0, 0, 0, 100, 50.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Convert(tt.r, tt.g, tt.b)
			if !approx(s.Hue, tt.hue, 0.01) {
				t.Errorf("hue = %v, want %v", s.Hue, tt.hue)
			}
			if !approx(s.SatHSV, tt.sat, 0.01) {
				t.Errorf("saturation = %v, want %v", s.SatHSV, tt.sat)
			}
			if !approx(s.Value, tt.value, 0.1) {
				t.Errorf("value = %v, want %v", s.Value, tt.value)
			}
		})
	}
}

func TestConvert_Achromatic(t *testing.T) {
	for _, v := range []uint8{0, 1, 128, 254, 255} {
		s := Convert(v, v, v)
		if s.Hue != 0 || s.SatHSV != 0 {
			t.Errorf("gray %d: hue/sat = %v/%v, want 0/0", v, s.Hue, s.SatHSV)
		}
		if s.HueHSL != 0 || s.SatHSL != 0 {
			t.Errorf("gray %d: HSL hue/sat = %v/%v, want 0/0", v, s.HueHSL, s.SatHSL)
		}
	}
}

func TestConvert_HueRange(t *testing.T) {
	// Sweep a coarse RGB grid: hue always lands in [0, 360), percentages
	// in [0, 100].
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				s := Convert(uint8(r), uint8(g), uint8(b))
				if s.Hue < 0 || s.Hue >= 360 {
					t.Fatalf("hue out of range for (%d,%d,%d): %v", r, g, b, s.Hue)
				}
				if s.SatHSV < 0 || s.SatHSV > 100 || s.Value < 0 || s.Value > 100 {
					t.Fatalf("HSV out of range for (%d,%d,%d): %v/%v",
						r, g, b, s.SatHSV, s.Value)
				}
				if s.Lightness < 0 || s.Lightness > 100 {
					t.Fatalf("lightness out of range for (%d,%d,%d): %v",
						r, g, b, s.Lightness)
				}
			}
		}
	}
}

func TestConvert_HSL(t *testing.T) {
	// Pure red: HSL (0, 100%, 50%).
	s := Convert(255, 0, 0)
	if !approx(s.HueHSL, 0, 0.01) || !approx(s.SatHSL, 100, 0.01) || !approx(s.Lightness, 50, 0.01) {
		t.Errorf("HSL = %v/%v/%v, want 0/100/50", s.HueHSL, s.SatHSL, s.Lightness)
	}
}

func TestCCT_White(t *testing.T) {
	// Full white is the D65 white point; McCamy lands near 6500 K.
	got := CCT(255, 255, 255)
	if !approx(got, 6505, 100) {
		t.Errorf("CCT(white) = %v, want about 6505", got)
	}
}

func TestCCT_Ordering(t *testing.T) {
	warm := CCT(255, 160, 60)
	cool := CCT(180, 200, 255)
	if warm >= 5000 {
		t.Errorf("warm orange CCT = %v, want well below 5000", warm)
	}
	if cool <= 7000 {
		t.Errorf("bluish white CCT = %v, want well above 7000", cool)
	}
	if warm >= cool {
		t.Errorf("warm (%v) should be below cool (%v)", warm, cool)
	}
}

func TestCCT_PureRedIsWarm(t *testing.T) {
	// Saturated red maps to a low temperature, which keeps it out of the
	// white-family classification bands.
	if got := CCT(255, 0, 0); got >= 3500 {
		t.Errorf("CCT(red) = %v, want < 3500", got)
	}
}

func TestCCT_NonNegative(t *testing.T) {
	colors := [][3]uint8{
		{0, 0, 0}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255},
		{255, 255, 255}, {1, 0, 0}, {0, 0, 1},
	}
	for _, c := range colors {
		if got := CCT(c[0], c[1], c[2]); got < 0 {
			t.Errorf("CCT(%v) = %v, want >= 0", c, got)
		}
	}
}

func TestCCTDescription(t *testing.T) {
	tests := []struct {
		cct  float64
		want string
	}{
		{1500, "candlelight"},
		{2700, "incandescent"},
		{3200, "warm white"},
		{4000, "neutral white"},
		{5000, "natural light"},
		{6000, "daylight"},
		{6600, "cool white"},
		{9000, "overcast"},
		{12000, "blue sky"},
	}

	for _, tt := range tests {
		if got := CCTDescription(tt.cct); got != tt.want {
			t.Errorf("CCTDescription(%v) = %q, want %q", tt.cct, got, tt.want)
		}
	}
}
