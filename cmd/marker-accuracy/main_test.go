package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/marker-accuracy/internal/report"
)

func TestRunOnDemoImages(t *testing.T) {
	dir := t.TempDir()

	base, compare, err := writeDemoImages(dir)
	require.NoError(t, err)

	out := filepath.Join(dir, "out")
	require.NoError(t, run(base, compare, out, 0, true))

	b, err := os.ReadFile(filepath.Join(out, "data", "matching_statistics.json"))
	require.NoError(t, err)

	var stats report.Statistics
	require.NoError(t, json.Unmarshal(b, &stats))

	// The demo pair has three reference outlines, two candidate fills, and
	// five point markers; the third reference region holds points only and
	// must be excluded.
	assert.Equal(t, 3, stats.Detection.ReferenceCount)
	assert.Equal(t, 2, stats.Detection.CandidateCount)
	assert.Equal(t, 5, stats.Detection.PointCount)
	assert.Equal(t, 1, stats.Detection.ExcludedCount)

	// The two surviving references and the two candidates are the same
	// size pairwise, so every first-layer pair scores 1.0.
	assert.Equal(t, 2, stats.Accuracy.FirstLayer.Count)
	assert.InDelta(t, 1.0, stats.Accuracy.FirstLayer.Mean, 1e-9)

	// Region one holds one candidate and one point (1/2); region two holds
	// one candidate and two points (1/3).
	assert.InDelta(t, (0.5+1.0/3.0)/2, stats.Accuracy.SecondLayer, 1e-9)

	// Debug mode writes overlays and masks.
	for _, name := range []string{
		"reference_overlay.png",
		"candidate_overlay.png",
		"reference_mask.png",
		"candidate_mask.png",
		"point_mask.png",
	} {
		_, err := os.Stat(filepath.Join(out, "images", name))
		assert.NoError(t, err, name)
	}

	_, err = os.Stat(filepath.Join(out, "analysis", "analysis_report.txt"))
	assert.NoError(t, err)
}

func TestRunMissingImage(t *testing.T) {
	dir := t.TempDir()
	err := run(filepath.Join(dir, "missing.png"), filepath.Join(dir, "also-missing.png"),
		filepath.Join(dir, "out"), 0, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base image")
}

func TestWriteDemoImages(t *testing.T) {
	dir := t.TempDir()

	base, compare, err := writeDemoImages(dir)
	require.NoError(t, err)

	for _, p := range []string{base, compare} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Greater(t, info.Size(), int64(0), p)
	}
}
