package scoring

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a score or fraction sequence for reporting.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Max   float64 `json:"max"`
	Min   float64 `json:"min"`
}

// Summarize computes reporting statistics over a sequence. An empty
// sequence yields the zero Summary rather than NaNs.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	return Summary{
		Count: len(values),
		Mean:  stat.Mean(values, nil),
		Max:   floats.Max(values),
		Min:   floats.Min(values),
	}
}
