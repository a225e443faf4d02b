package classify

// Label identifies one light-color category from the closed output
// vocabulary. The set is fixed: Classify never returns a value outside the
// constants declared below.
type Label string

// White family.
const (
	IceBlueWhite Label = "ice-blue-white"
	BlueWhite    Label = "blue-white"
	GreenWhite   Label = "green-white"
	IceWhite     Label = "ice-white"
	PinkWhite    Label = "pink-white"
	NeutralWhite Label = "neutral-white"
	WarmWhite1   Label = "warm-white-1"
	WarmWhite2   Label = "warm-white-2"
)

// Saturated families.
const (
	ChampagneGold  Label = "champagne-gold"
	NeonPinkA      Label = "neon-pink-a"
	NeonPinkB      Label = "neon-pink-b"
	PeachRed       Label = "peach-red"
	Pink           Label = "pink"
	NeonPurple     Label = "neon-purple"
	Purple         Label = "purple"
	NeonBlueA      Label = "neon-blue-a"
	NeonBlueB      Label = "neon-blue-b"
	NeonBlueWhite  Label = "neon-blue-white"
	NeonGrassGreen Label = "neon-grass-green"
	NeonGreen      Label = "neon-green"
	NeonGreenWhite Label = "neon-green-white"
)

// Hue-band fallbacks.
const (
	LightRed    Label = "light-red"
	Orange      Label = "orange"
	Yellow      Label = "yellow"
	YellowGreen Label = "yellow-green"
	Blue        Label = "blue"
	BlueViolet  Label = "blue-violet"
	Magenta     Label = "magenta"
	Red         Label = "red"
)

// Unknown is retained from the source rule chain for vocabulary
// completeness. The hue-band table ends in an unconditional default, so no
// input currently reaches it.
const Unknown Label = "unknown"

// Metrics is the feature tuple the classifier decides on.
type Metrics struct {
	Hue        float64 // degrees, [0, 360)
	Saturation float64 // HSV saturation, percent
	Value      float64 // HSV value, percent
	CCT        float64 // Kelvin
}

// rule is one entry of the ordered decision list. apply reports whether the
// rule claimed the input and, if so, which label it assigned.
type rule struct {
	name  string
	apply func(Metrics) (Label, bool)
}

// rules is evaluated top to bottom with first-match-wins semantics. The
// order is load-bearing: every rule assumes all earlier rules declined, and
// the final hue-band rule is total.
var rules = []rule{
	{"white family", whiteFamily},
	{"champagne gold", champagneGold},
	{"pink-red family", pinkRedFamily},
	{"purple family", purpleFamily},
	{"blue family", blueFamily},
	{"green family", greenFamily},
	{"hue band", hueBand},
}

// Classify maps a (hue, saturation, value, CCT) tuple to exactly one label.
// It is pure and total: identical inputs always yield the identical label,
// and every input matches some rule.
func Classify(m Metrics) Label {
	for _, r := range rules {
		if label, ok := r.apply(m); ok {
			return label
		}
	}
	return Unknown
}

// whiteFamily claims low-saturation, high-value inputs and sub-branches on
// CCT: cool whites split by hue band, neutral whites pick up green/pink
// tints, everything else is warm white split by residual saturation.
func whiteFamily(m Metrics) (Label, bool) {
	if !(m.Saturation < 25 && m.Value > 75) {
		return "", false
	}

	switch {
	case m.CCT > 6500:
		switch {
		case m.Hue >= 200 && m.Hue < 230:
			return IceBlueWhite, true
		case m.Hue >= 170 && m.Hue < 200:
			return BlueWhite, true
		case m.Hue >= 100 && m.Hue < 130:
			return GreenWhite, true
		default:
			return IceWhite, true
		}
	case m.CCT >= 3500 && m.CCT <= 4500:
		switch {
		case m.Hue >= 100 && m.Hue < 130:
			return GreenWhite, true
		case m.Hue >= 300 || m.Hue < 30:
			return PinkWhite, true
		default:
			return NeutralWhite, true
		}
	default:
		if m.Saturation > 10 {
			return WarmWhite1, true
		}
		return WarmWhite2, true
	}
}

func champagneGold(m Metrics) (Label, bool) {
	cctBand := (m.CCT > 3500 && m.CCT < 4000) || m.CCT < 3000
	if cctBand && m.Hue >= 15 && m.Hue < 45 &&
		m.Saturation >= 30 && m.Saturation <= 60 && m.Value > 70 {
		return ChampagneGold, true
	}
	return "", false
}

func pinkRedFamily(m Metrics) (Label, bool) {
	inHue := (m.Hue >= 0 && m.Hue < 20) || m.Hue >= 330
	if !inHue || m.Saturation <= 30 {
		return "", false
	}

	if m.Saturation > 60 {
		if m.Hue > 10 {
			return NeonPinkA, true
		}
		return NeonPinkB, true
	}
	if m.Hue > 340 || m.Hue < 10 {
		return PeachRed, true
	}
	return Pink, true
}

func purpleFamily(m Metrics) (Label, bool) {
	if m.Hue < 270 || m.Hue >= 300 {
		return "", false
	}
	if m.Saturation < 40 {
		return NeonPurple, true
	}
	return Purple, true
}

func blueFamily(m Metrics) (Label, bool) {
	if m.Hue < 200 || m.Hue >= 250 {
		return "", false
	}
	if m.Saturation > 50 {
		if m.Hue < 220 {
			return NeonBlueA, true
		}
		return NeonBlueB, true
	}
	return NeonBlueWhite, true
}

func greenFamily(m Metrics) (Label, bool) {
	if m.Hue < 100 || m.Hue >= 160 {
		return "", false
	}
	if m.Saturation > 50 {
		if m.Hue < 120 {
			return NeonGrassGreen, true
		}
		return NeonGreen, true
	}
	return NeonGreenWhite, true
}

// hueBand is the unconditional tail of the decision list: a generic hue
// table covering everything the family rules declined.
func hueBand(m Metrics) (Label, bool) {
	switch {
	case m.Hue >= 20 && m.Hue < 40:
		if m.Saturation > 40 {
			return PeachRed, true
		}
		return LightRed, true
	case m.Hue >= 40 && m.Hue < 60:
		return Orange, true
	case m.Hue >= 60 && m.Hue < 90:
		return Yellow, true
	case m.Hue >= 90 && m.Hue < 120:
		return YellowGreen, true
	case m.Hue >= 200 && m.Hue < 240:
		return Blue, true
	case m.Hue >= 240 && m.Hue < 270:
		return BlueViolet, true
	case m.Hue >= 300 && m.Hue < 330:
		return Magenta, true
	default:
		return Red, true
	}
}
