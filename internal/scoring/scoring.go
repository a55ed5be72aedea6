package scoring

import "github.com/ironsheep/marker-accuracy/internal/geometry"

// Result holds everything one scoring run produced. It is created once per
// Score call and never modified afterwards; callers aggregating across runs
// should collect Results themselves.
type Result struct {
	// Filtered is the reference set after noise exclusion, in input order.
	Filtered []geometry.Rectangle `json:"filtered_reference"`

	// Excluded is the reference rectangles dropped by the exclusion rule,
	// in input order. Filtered and Excluded partition the input exactly.
	Excluded []geometry.Rectangle `json:"excluded_reference"`

	// Z1 is the area fraction of each filtered reference rectangle.
	Z1 []float64 `json:"z1"`

	// Z2 is the area fraction of each candidate rectangle.
	Z2 []float64 `json:"z2"`

	// FirstLayerScores is the per-pair similarity P = 1 - |Z1-Z2|/max(Z1,Z2)
	// over the paired prefix of Z1 and Z2.
	FirstLayerScores []float64 `json:"first_layer_scores"`

	// SecondLayerScore is the containment precision averaged across the
	// filtered reference rectangles that contain any marker.
	SecondLayerScore float64 `json:"second_layer_score"`
}

// Scorer configures a scoring run. The zero value pairs fractions by index
// and emits no events, which matches the validated pipeline's behaviour.
type Scorer struct {
	// Pairing selects first-layer pairs from the Z1/Z2 sequences.
	// Nil means IndexPairing.
	Pairing PairingStrategy

	// Observer, when non-nil, receives progress events for diagnostics.
	Observer *Observer
}

// Score runs the full pipeline over one input set: partition, area
// fractions, first layer, second layer. Inputs are read-only; the returned
// Result is independent of them.
func (s *Scorer) Score(reference, candRects []geometry.Rectangle, candPoints []geometry.Point) *Result {
	filtered, excluded := partition(reference, candRects, candPoints, s.Observer)

	z1 := AreaFractions(filtered)
	s.Observer.areaFractions("z1", z1)
	z2 := AreaFractions(candRects)
	s.Observer.areaFractions("z2", z2)

	pairing := s.Pairing
	if pairing == nil {
		pairing = IndexPairing{}
	}

	return &Result{
		Filtered:         filtered,
		Excluded:         excluded,
		Z1:               z1,
		Z2:               z2,
		FirstLayerScores: firstLayer(pairing.Pair(z1, z2), s.Observer),
		SecondLayerScore: secondLayer(filtered, candRects, candPoints, s.Observer),
	}
}

// Score runs the pipeline with default settings. See Scorer.Score.
func Score(reference, candRects []geometry.Rectangle, candPoints []geometry.Point) *Result {
	var s Scorer
	return s.Score(reference, candRects, candPoints)
}
