// Package report persists scoring artifacts: JSON documents, a plain-text
// analysis report, and debug overlay images. It reflects scoring results
// verbatim and performs no scoring of its own.
package report

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Subdirectories created beneath the report root.
const (
	imagesDir   = "images"
	dataDir     = "data"
	analysisDir = "analysis"
)

// Writer persists artifacts beneath a root output directory:
//
//	root/
//	  images/    debug overlays and masks
//	  data/      JSON documents
//	  analysis/  plain-text analysis report
type Writer struct {
	root string
}

// NewWriter creates the output directory tree and returns a Writer rooted
// there. Existing directories are reused.
func NewWriter(root string) (*Writer, error) {
	for _, sub := range []string{imagesDir, dataDir, analysisDir} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	return &Writer{root: root}, nil
}

// Root returns the writer's root output directory.
func (w *Writer) Root() string {
	return w.root
}

// WriteResults writes the full document to data/detection_results.json and
// its statistics block standalone to data/matching_statistics.json.
func (w *Writer) WriteResults(res Results) error {
	if err := w.writeJSON("detection_results.json", res); err != nil {
		return err
	}
	return w.writeJSON("matching_statistics.json", res.Statistics)
}

func (w *Writer) writeJSON(name string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	path := filepath.Join(w.root, dataDir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// SaveImage encodes a debug image into the images/ subdirectory. The
// format follows the file extension (PNG for all callers in this module).
func (w *Writer) SaveImage(name string, img image.Image) error {
	path := filepath.Join(w.root, imagesDir, name)
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	return nil
}

// WriteAnalysis renders the statistics as a human-readable report at
// analysis/analysis_report.txt.
func (w *Writer) WriteAnalysis(stats Statistics) error {
	var b strings.Builder
	rule := strings.Repeat("=", 72)
	sep := strings.Repeat("-", 40)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Marker Accuracy Analysis Report")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Generated: %s\n\n", stats.Timestamp)

	fmt.Fprintln(&b, "1. Detection Summary")
	fmt.Fprintln(&b, sep)
	fmt.Fprintf(&b, "Reference rectangles: %d\n", stats.Detection.ReferenceCount)
	fmt.Fprintf(&b, "Candidate rectangles: %d\n", stats.Detection.CandidateCount)
	fmt.Fprintf(&b, "Candidate points: %d\n", stats.Detection.PointCount)
	fmt.Fprintf(&b, "Excluded reference rectangles: %d\n\n", stats.Detection.ExcludedCount)

	fmt.Fprintln(&b, "2. Accuracy Analysis")
	fmt.Fprintln(&b, sep)
	fmt.Fprintln(&b, "First layer (P = 1 - |Z1 - Z2| / max(Z1, Z2)):")
	fmt.Fprintf(&b, "  Pairs scored: %d\n", stats.Accuracy.FirstLayer.Count)
	fmt.Fprintf(&b, "  Mean: %.6f\n", stats.Accuracy.FirstLayer.Mean)
	if stats.Accuracy.FirstLayer.Count > 0 {
		fmt.Fprintf(&b, "  Max: %.6f\n", stats.Accuracy.FirstLayer.Max)
		fmt.Fprintf(&b, "  Min: %.6f\n", stats.Accuracy.FirstLayer.Min)
	}
	fmt.Fprintln(&b, "Second layer (mean containment precision):")
	fmt.Fprintf(&b, "  Value: %.6f\n\n", stats.Accuracy.SecondLayer)

	fmt.Fprintln(&b, "3. Z Value Analysis")
	fmt.Fprintln(&b, sep)
	fmt.Fprintf(&b, "Z1 (reference area fractions): count %d, mean %.6f\n",
		stats.ZValues.Z1.Count, stats.ZValues.Z1.Mean)
	fmt.Fprintf(&b, "Z2 (candidate area fractions): count %d, mean %.6f\n\n",
		stats.ZValues.Z2.Count, stats.ZValues.Z2.Mean)

	fmt.Fprintln(&b, "4. Artifacts")
	fmt.Fprintln(&b, sep)
	fmt.Fprintln(&b, "images/reference_overlay.png: reference rectangles on the base image")
	fmt.Fprintln(&b, "images/candidate_overlay.png: candidate rectangles and points on the compare image")
	fmt.Fprintln(&b, "images/*_mask.png: per-class color masks")
	fmt.Fprintln(&b, "data/detection_results.json: full detection and scoring output")
	fmt.Fprintln(&b, "data/matching_statistics.json: summary statistics")

	path := filepath.Join(w.root, analysisDir, "analysis_report.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write analysis report: %w", err)
	}
	return nil
}
