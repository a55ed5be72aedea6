package scoring

import "github.com/ironsheep/marker-accuracy/internal/geometry"

// Partition splits the reference set into the rectangles that stay in
// scoring and the ones dropped by the noise-exclusion rule.
//
// A reference rectangle is excluded iff it contains at least one candidate
// point and no candidate rectangle center. A point-only hit means the
// detector flagged the region without producing a matched rectangle, which
// the pipeline treats as unreliable signal.
//
// The two return values preserve the input order and partition it exactly:
// every reference rectangle appears in exactly one of them. Empty inputs
// yield empty outputs.
func Partition(reference, candRects []geometry.Rectangle, candPoints []geometry.Point) (filtered, excluded []geometry.Rectangle) {
	return partition(reference, candRects, candPoints, nil)
}

func partition(reference, candRects []geometry.Rectangle, candPoints []geometry.Point, obs *Observer) (filtered, excluded []geometry.Rectangle) {
	filtered = make([]geometry.Rectangle, 0, len(reference))
	excluded = make([]geometry.Rectangle, 0)

	for i, ref := range reference {
		hasRect := containsAnyCenter(ref, candRects)
		hasPoint := containsAnyPoint(ref, candPoints)
		drop := hasPoint && !hasRect

		obs.exclusionDecision(i, ref, hasRect, hasPoint, drop)

		if drop {
			excluded = append(excluded, ref)
		} else {
			filtered = append(filtered, ref)
		}
	}

	return filtered, excluded
}

// containsAnyCenter reports whether any candidate rectangle's center lies
// inside ref. The first hit short-circuits; multiplicity is irrelevant here.
func containsAnyCenter(ref geometry.Rectangle, candRects []geometry.Rectangle) bool {
	for _, c := range candRects {
		if ref.ContainsPoint(c.Center()) {
			return true
		}
	}
	return false
}

// containsAnyPoint reports whether any candidate point lies inside ref.
func containsAnyPoint(ref geometry.Rectangle, candPoints []geometry.Point) bool {
	for _, p := range candPoints {
		if ref.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}
