package report

import (
	"time"

	"github.com/ironsheep/marker-accuracy/internal/geometry"
	"github.com/ironsheep/marker-accuracy/internal/scoring"
)

// Results is the full document describing one scoring run. Its fields
// mirror the extraction output and the scoring.Result verbatim; this
// package adds no computation beyond summary statistics.
type Results struct {
	ReferenceRectangles []geometry.Rectangle `json:"reference_rectangles"`
	CandidateRectangles []geometry.Rectangle `json:"candidate_rectangles"`
	CandidatePoints     []geometry.Point     `json:"candidate_points"`
	Scores              *scoring.Result      `json:"scores"`
	Statistics          Statistics           `json:"matching_statistics"`
}

// NewResults assembles the report document for one run.
func NewResults(reference, candRects []geometry.Rectangle, candPoints []geometry.Point, scores *scoring.Result, now time.Time) Results {
	return Results{
		ReferenceRectangles: reference,
		CandidateRectangles: candRects,
		CandidatePoints:     candPoints,
		Scores:              scores,
		Statistics:          NewStatistics(len(reference), len(candRects), len(candPoints), scores, now),
	}
}

// Statistics summarises one run for quick inspection. It is embedded in
// Results and also written standalone to data/matching_statistics.json.
type Statistics struct {
	Detection DetectionSummary `json:"detection_summary"`
	Accuracy  AccuracySummary  `json:"accuracy_summary"`
	ZValues   ZValueSummary    `json:"z_values_summary"`
	Timestamp string           `json:"processing_timestamp"`
}

// DetectionSummary counts the extracted primitives and the exclusions.
type DetectionSummary struct {
	ReferenceCount int `json:"reference_rectangles_count"`
	CandidateCount int `json:"candidate_rectangles_count"`
	PointCount     int `json:"candidate_points_count"`
	ExcludedCount  int `json:"excluded_reference_count"`
}

// AccuracySummary carries both accuracy layers.
type AccuracySummary struct {
	FirstLayerScores []float64       `json:"first_layer_scores"`
	FirstLayer       scoring.Summary `json:"first_layer"`
	SecondLayer      float64         `json:"second_layer"`
}

// ZValueSummary describes the two area-fraction sequences.
type ZValueSummary struct {
	Z1 scoring.Summary `json:"z1"`
	Z2 scoring.Summary `json:"z2"`
}

// NewStatistics derives the summary block from a scoring result.
func NewStatistics(referenceCount, candidateCount, pointCount int, scores *scoring.Result, now time.Time) Statistics {
	return Statistics{
		Detection: DetectionSummary{
			ReferenceCount: referenceCount,
			CandidateCount: candidateCount,
			PointCount:     pointCount,
			ExcludedCount:  len(scores.Excluded),
		},
		Accuracy: AccuracySummary{
			FirstLayerScores: scores.FirstLayerScores,
			FirstLayer:       scoring.Summarize(scores.FirstLayerScores),
			SecondLayer:      scores.SecondLayerScore,
		},
		ZValues: ZValueSummary{
			Z1: scoring.Summarize(scores.Z1),
			Z2: scoring.Summarize(scores.Z2),
		},
		Timestamp: now.Format(time.RFC3339),
	}
}
