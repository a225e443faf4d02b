package extract

import "sort"

// ScoredRegion is a Region that survived the rejection heuristics, together
// with its desirability score.
type ScoredRegion struct {
	Region
	Score float64
}

// Region filtering constants. The rejection heuristics target the photograph
// backgrounds these swatch images are taken against: white text-box panels,
// printed text, and neutral borders.
const (
	pureWhiteChannelMin = 245
	pureWhiteSpreadMax  = 8

	whitishBrightnessMin = 220
	whitishSpreadMax     = 15
	whitishAreaMin       = 1000

	pureBlackChannelMax = 10

	textBoxAspectMax     = 3
	textBoxExtentMax     = 0.3
	textBoxSpreadMax     = 15
	textBoxBrightnessLow = 50
	textBoxBrightnessHi  = 200

	neutralGraySpreadMax  = 8
	neutralGrayBrightLow  = 80
	neutralGrayBrightHigh = 180
	neutralGrayAreaMax    = 300

	// Regions larger than this bypass the shape and neutral-gray checks:
	// at that size the candidate is almost certainly the swatch itself.
	areaDominanceMin = 500
)

// FilterScore rejects regions matching the text-box/neutral-gray/extreme-tone
// heuristics and scores the survivors.
//
// The rejection checks run in a fixed order and the first match wins:
//
//  1. Extreme-white block (all mean channels > 245, spread < 8).
//  2. Whitish large block (brightness > 220, spread < 15, area > 1000).
//  3. Pure black (all mean channels < 10).
//  4. Text-box shape (aspect < 3, extent < 0.3, spread < 15,
//     brightness strictly between 50 and 200).
//  5. Neutral-gray small region (spread < 8, brightness strictly between
//     80 and 180, area < 300).
//
// Regions with area above 500 are retained regardless of checks 4-5; the
// exception is evaluated between check 3 and check 4. Keep that ordering:
// it changes outcomes for large pale regions near the boundary values.
//
// Survivors are scored as
//
//	score = area * (1 + spread/255) * brightnessWeight * saturationPenalty
//
// and returned in descending score order; ties keep discovery order.
func FilterScore(regions []Region) []ScoredRegion {
	scored := make([]ScoredRegion, 0, len(regions))
	for i := range regions {
		r := &regions[i]
		if rejectRegion(r) {
			continue
		}
		scored = append(scored, ScoredRegion{Region: *r, Score: scoreRegion(r)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func rejectRegion(r *Region) bool {
	spread := r.Spread()
	brightness := r.Brightness()

	// 1. Extreme-white block: text-box background.
	if r.MeanR > pureWhiteChannelMin && r.MeanG > pureWhiteChannelMin && r.MeanB > pureWhiteChannelMin &&
		spread < pureWhiteSpreadMax {
		return true
	}

	// 2. Whitish large block: pale UI/text panel.
	if brightness > whitishBrightnessMin && spread < whitishSpreadMax && r.Area > whitishAreaMin {
		return true
	}

	// 3. Pure black.
	if r.MeanR < pureBlackChannelMax && r.MeanG < pureBlackChannelMax && r.MeanB < pureBlackChannelMax {
		return true
	}

	// Area dominance: large regions skip the finer shape heuristics.
	if r.Area > areaDominanceMin {
		return false
	}

	// 4. Text-box shape: sparse, box-shaped, low saturation, mid brightness.
	w := r.Bounds.Dx()
	h := r.Bounds.Dy()
	long, short := w, h
	if h > w {
		long, short = h, w
	}
	if short < 1 {
		short = 1
	}
	aspect := float64(long) / float64(short)
	extent := float64(r.Area) / float64(w*h)

	if aspect < textBoxAspectMax && extent < textBoxExtentMax && spread < textBoxSpreadMax &&
		brightness > textBoxBrightnessLow && brightness < textBoxBrightnessHi {
		return true
	}

	// 5. Neutral-gray small region: border or noise.
	if spread < neutralGraySpreadMax &&
		brightness > neutralGrayBrightLow && brightness < neutralGrayBrightHigh &&
		r.Area < neutralGrayAreaMax {
		return true
	}

	return false
}

func scoreRegion(r *Region) float64 {
	spread := r.Spread()
	brightness := r.Brightness()

	brightnessWeight := 0.5
	if brightness > 50 && brightness < 230 {
		brightnessWeight = 1.0
	}

	var saturationPenalty float64
	switch {
	case spread < 10:
		saturationPenalty = 0.2
	case spread < 25:
		saturationPenalty = 0.6
	default:
		saturationPenalty = 1.0
	}

	return float64(r.Area) * (1 + spread/255.0) * brightnessWeight * saturationPenalty
}
