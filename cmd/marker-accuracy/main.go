package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/ironsheep/marker-accuracy/internal/extraction"
	"github.com/ironsheep/marker-accuracy/internal/geometry"
	"github.com/ironsheep/marker-accuracy/internal/report"
	"github.com/ironsheep/marker-accuracy/internal/scoring"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags before flag parsing so they work
	// without the required arguments.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("marker-accuracy %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	basePath := flag.String("base", "", "path to the ground-truth annotation image")
	comparePath := flag.String("compare", "", "path to the detection output image")
	outDir := flag.String("out", "debug_output", "directory for report artifacts")
	blurRadius := flag.Float64("blur", 0, "Gaussian pre-blur radius for noisy images (0 disables)")
	debug := flag.Bool("debug", false, "log scoring decisions and write debug overlays")
	demo := flag.Bool("demo", false, "synthesize a demo image pair under -out and score it")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debugMode := *debug || os.Getenv("MARKER_ACCURACY_LOG_LEVEL") == "debug"

	if *demo {
		base, compare, err := writeDemoImages(*outDir)
		if err != nil {
			log.Fatalf("demo synthesis failed: %v", err)
		}
		*basePath = base
		*comparePath = compare
	} else if *basePath == "" || *comparePath == "" {
		fmt.Fprintln(os.Stderr, "marker-accuracy: -base and -compare are required (or use -demo)")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*basePath, *comparePath, *outDir, *blurRadius, debugMode); err != nil {
		log.Fatalf("marker-accuracy: %v", err)
	}
}

// run executes the full pipeline: load both images, extract primitives,
// score, and persist report artifacts.
func run(basePath, comparePath, outDir string, blurRadius float64, debug bool) error {
	cache := extraction.NewImageCache()

	baseImg, err := cache.Load(basePath)
	if err != nil {
		return fmt.Errorf("base image: %w", err)
	}
	compareImg, err := cache.Load(comparePath)
	if err != nil {
		return fmt.Errorf("compare image: %w", err)
	}

	ext := extraction.Extractor{BlurRadius: blurRadius}
	reference := ext.Rectangles(baseImg, extraction.ReferenceClass, extraction.DefaultReferenceMinArea)
	candRects := ext.Rectangles(compareImg, extraction.CandidateClass, extraction.DefaultCandidateMinArea)
	candPoints := ext.Points(compareImg, extraction.PointClass, extraction.DefaultPointMinArea)

	if debug {
		log.Printf("extracted %d reference rectangles, %d candidate rectangles, %d candidate points",
			len(reference), len(candRects), len(candPoints))
	}

	var scorer scoring.Scorer
	if debug {
		scorer.Observer = logObserver()
	}
	res := scorer.Score(reference, candRects, candPoints)

	writer, err := report.NewWriter(outDir)
	if err != nil {
		return err
	}

	doc := report.NewResults(reference, candRects, candPoints, res, time.Now())
	if err := writer.WriteResults(doc); err != nil {
		return err
	}
	if err := writer.WriteAnalysis(doc.Statistics); err != nil {
		return err
	}
	if debug {
		if err := writeDebugImages(writer, baseImg, compareImg, doc); err != nil {
			return err
		}
	}

	first := scoring.Summarize(res.FirstLayerScores)
	fmt.Printf("first layer accuracy: mean %.6f over %d pairs\n", first.Mean, first.Count)
	fmt.Printf("second layer accuracy: %.6f\n", res.SecondLayerScore)
	fmt.Printf("report written to %s\n", writer.Root())
	return nil
}

// logObserver narrates scoring decisions to the standard logger. This is
// diagnostics only; results never depend on it.
func logObserver() *scoring.Observer {
	return &scoring.Observer{
		ExclusionDecision: func(index int, rect geometry.Rectangle, hasRect, hasPoint, excluded bool) {
			verdict := "kept"
			if excluded {
				verdict = "excluded"
			}
			log.Printf("reference %d at (%d,%d) %dx%d: rect=%v point=%v -> %s",
				index, rect.X, rect.Y, rect.Width, rect.Height, hasRect, hasPoint, verdict)
		},
		AreaFraction: func(set string, index int, fraction float64) {
			log.Printf("%s[%d] = %.6f", set, index, fraction)
		},
		PairScore: func(index int, z1, z2, score float64) {
			log.Printf("pair %d: z1=%.6f z2=%.6f -> P=%.6f", index, z1, z2, score)
		},
		RegionRatio: func(index int, rect geometry.Rectangle, matches, targets int) {
			log.Printf("region %d: %d of %d contained markers are candidate rectangles",
				index, matches, targets)
		},
	}
}

// writeDebugImages renders overlays and per-class masks into images/.
func writeDebugImages(writer *report.Writer, baseImg, compareImg image.Image, doc report.Results) error {
	red := color.RGBA{255, 0, 0, 255}
	brown := color.RGBA{139, 69, 19, 255}
	blue := color.RGBA{0, 0, 255, 255}

	refOverlay := report.Clone(baseImg)
	report.DrawRectangles(refOverlay, doc.ReferenceRectangles, "ref", red)
	if err := writer.SaveImage("reference_overlay.png", refOverlay); err != nil {
		return err
	}

	candOverlay := report.Clone(compareImg)
	report.DrawRectangles(candOverlay, doc.CandidateRectangles, "cand", brown)
	report.DrawPoints(candOverlay, doc.CandidatePoints, "pt", blue)
	if err := writer.SaveImage("candidate_overlay.png", candOverlay); err != nil {
		return err
	}

	masks := []struct {
		name  string
		img   image.Image
		class extraction.ColorClass
	}{
		{"reference_mask.png", baseImg, extraction.ReferenceClass},
		{"candidate_mask.png", compareImg, extraction.CandidateClass},
		{"point_mask.png", compareImg, extraction.PointClass},
	}
	for _, m := range masks {
		if err := writer.SaveImage(m.name, report.MaskImage(extraction.Mask(m.img, m.class))); err != nil {
			return err
		}
	}
	return nil
}
