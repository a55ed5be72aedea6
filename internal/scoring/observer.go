package scoring

import "github.com/ironsheep/marker-accuracy/internal/geometry"

// Observer receives structured progress events while a scoring run
// executes. It exists for diagnostics only; scoring results never depend on
// it. Any field may be nil, and a nil *Observer disables all events.
//
// Callbacks run synchronously on the scoring goroutine and must not mutate
// their arguments.
type Observer struct {
	// ExclusionDecision fires once per reference rectangle during
	// partitioning, reporting what it contained and whether it was dropped.
	ExclusionDecision func(index int, rect geometry.Rectangle, hasRect, hasPoint, excluded bool)

	// AreaFraction fires once per normalized entry of each fraction
	// sequence. The set name is "z1" for reference and "z2" for candidate.
	AreaFraction func(set string, index int, fraction float64)

	// PairScore fires once per first-layer pair with the computed score.
	PairScore func(index int, z1, z2, score float64)

	// RegionRatio fires once per surviving reference rectangle during the
	// second layer, including rectangles with zero targets.
	RegionRatio func(index int, rect geometry.Rectangle, matches, targets int)
}

func (o *Observer) exclusionDecision(index int, rect geometry.Rectangle, hasRect, hasPoint, excluded bool) {
	if o == nil || o.ExclusionDecision == nil {
		return
	}
	o.ExclusionDecision(index, rect, hasRect, hasPoint, excluded)
}

func (o *Observer) areaFractions(set string, fractions []float64) {
	if o == nil || o.AreaFraction == nil {
		return
	}
	for i, f := range fractions {
		o.AreaFraction(set, i, f)
	}
}

func (o *Observer) pairScore(index int, z1, z2, score float64) {
	if o == nil || o.PairScore == nil {
		return
	}
	o.PairScore(index, z1, z2, score)
}

func (o *Observer) regionRatio(index int, rect geometry.Rectangle, matches, targets int) {
	if o == nil || o.RegionRatio == nil {
		return
	}
	o.RegionRatio(index, rect, matches, targets)
}
