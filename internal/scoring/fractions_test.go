package scoring

import (
	"math"
	"testing"

	"github.com/ironsheep/marker-accuracy/internal/geometry"
)

func TestAreaFractions(t *testing.T) {
	t.Parallel()

	t.Run("single rectangle is the whole", func(t *testing.T) {
		t.Parallel()
		got := AreaFractions([]geometry.Rectangle{{Width: 100, Height: 100}})
		if len(got) != 1 || got[0] != 1.0 {
			t.Errorf("AreaFractions = %v, want [1.0]", got)
		}
	})

	t.Run("fractions follow input order and sum to one", func(t *testing.T) {
		t.Parallel()
		rects := []geometry.Rectangle{
			{Width: 10, Height: 10}, // 100
			{Width: 30, Height: 10}, // 300
			{Width: 20, Height: 30}, // 600
		}
		got := AreaFractions(rects)

		want := []float64{0.1, 0.3, 0.6}
		if len(got) != len(want) {
			t.Fatalf("got %d fractions, want %d", len(got), len(want))
		}
		sum := 0.0
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Errorf("fraction[%d] = %v, want %v", i, got[i], want[i])
			}
			sum += got[i]
		}
		if math.Abs(sum-1.0) > 1e-12 {
			t.Errorf("fractions sum to %v, want 1.0", sum)
		}
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		t.Parallel()
		if got := AreaFractions(nil); len(got) != 0 {
			t.Errorf("AreaFractions(nil) = %v, want empty", got)
		}
	})

	t.Run("all-degenerate input yields empty result", func(t *testing.T) {
		t.Parallel()
		rects := []geometry.Rectangle{
			{X: 1, Y: 1, Width: 0, Height: 50},
			{X: 9, Y: 9, Width: 50, Height: 0},
		}
		// Nothing can be normalized against a zero total; entries are
		// skipped, not zeroed.
		if got := AreaFractions(rects); len(got) != 0 {
			t.Errorf("AreaFractions = %v, want empty", got)
		}
	})

	t.Run("degenerate rectangle among real ones contributes zero", func(t *testing.T) {
		t.Parallel()
		rects := []geometry.Rectangle{
			{Width: 10, Height: 10},
			{Width: 0, Height: 10},
		}
		got := AreaFractions(rects)
		if len(got) != 2 || got[0] != 1.0 || got[1] != 0.0 {
			t.Errorf("AreaFractions = %v, want [1 0]", got)
		}
	})
}
