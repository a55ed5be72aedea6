package scoring

import (
	"math"

	"github.com/ironsheep/marker-accuracy/internal/geometry"
)

// Pair is one matched (Z1, Z2) entry produced by a PairingStrategy.
type Pair struct {
	Z1 float64
	Z2 float64
}

// PairingStrategy decides which entries of the two area-fraction sequences
// the first scoring layer compares.
//
// The strategy is an isolated policy: the upstream pipeline pairs the
// sequences purely by extraction order, which carries no geometric meaning.
// A correspondence-based strategy (for example bipartite containment
// matching) can replace it without touching the scorers.
type PairingStrategy interface {
	Pair(z1, z2 []float64) []Pair
}

// IndexPairing pairs the sequences by position and stops at the end of the
// shorter one. Surplus entries in the longer sequence are silently dropped
// from the first layer. This reproduces the behaviour of the pipeline being
// validated and is the default strategy.
type IndexPairing struct{}

// Pair implements PairingStrategy.
func (IndexPairing) Pair(z1, z2 []float64) []Pair {
	n := len(z1)
	if len(z2) < n {
		n = len(z2)
	}

	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair{Z1: z1[i], Z2: z2[i]}
	}
	return pairs
}

// firstLayer scores each pair with P = 1 - |Z1-Z2| / max(Z1, Z2).
//
// P is a symmetric relative-similarity score in [0, 1]: 1.0 for identical
// fractions, approaching 0.0 as they diverge. The both-zero degenerate case
// has no meaningful ratio and scores 0.0.
func firstLayer(pairs []Pair, obs *Observer) []float64 {
	scores := make([]float64, 0, len(pairs))

	for i, p := range pairs {
		var score float64
		if m := math.Max(p.Z1, p.Z2); m > 0 {
			score = 1 - math.Abs(p.Z1-p.Z2)/m
		}
		obs.pairScore(i, p.Z1, p.Z2, score)
		scores = append(scores, score)
	}

	return scores
}

// secondLayer measures containment precision: for each surviving reference
// rectangle, the fraction of contained markers that are candidate rectangle
// centers rather than bare points, averaged uniformly across the rectangles
// that contain anything.
//
// Rectangles with no contained markers are skipped entirely rather than
// scored as zero; they appear in neither the sum nor the divisor. An
// unweighted mean across regions is deliberate: a region holding one marker
// counts the same as a region holding fifty.
func secondLayer(filtered, candRects []geometry.Rectangle, candPoints []geometry.Point, obs *Observer) float64 {
	var sum float64
	scored := 0

	for i, ref := range filtered {
		matches := 0
		for _, c := range candRects {
			if ref.ContainsPoint(c.Center()) {
				matches++
			}
		}

		targets := matches
		for _, p := range candPoints {
			if ref.Contains(p.X, p.Y) {
				targets++
			}
		}

		obs.regionRatio(i, ref, matches, targets)

		if targets == 0 {
			continue
		}
		sum += float64(matches) / float64(targets)
		scored++
	}

	if scored == 0 {
		return 0.0
	}
	return sum / float64(scored)
}
