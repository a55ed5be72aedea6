package scoring

import "github.com/ironsheep/marker-accuracy/internal/geometry"

// AreaFractions returns each rectangle's area as a fraction of the set's
// total area, in input order. The fractions sum to 1.0 whenever the result
// is non-empty.
//
// When the total area is zero (empty input, or every rectangle degenerate)
// no entry can be normalized and the result is empty rather than a sequence
// of zeros.
func AreaFractions(rects []geometry.Rectangle) []float64 {
	total := 0
	for _, r := range rects {
		total += r.Area()
	}

	fractions := make([]float64, 0, len(rects))
	if total <= 0 {
		return fractions
	}

	for _, r := range rects {
		fractions = append(fractions, float64(r.Area())/float64(total))
	}
	return fractions
}
