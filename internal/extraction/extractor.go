package extraction

import (
	"image"

	"github.com/anthonynsimon/bild/blur"

	"github.com/ironsheep/marker-accuracy/internal/geometry"
)

// Area floors used by the annotation pipeline, in square pixels. Components
// under the floor are treated as noise. Reference outlines are large by
// convention, candidate fills somewhat smaller, and point markers only need
// to beat single-pixel speckle.
const (
	DefaultReferenceMinArea = 500
	DefaultCandidateMinArea = 300
	DefaultPointMinArea     = 10
)

// Extractor turns raster annotation images into geometric primitives.
// The zero value extracts without preprocessing.
type Extractor struct {
	// BlurRadius, when positive, smooths the source with a Gaussian kernel
	// of that radius before classification. Useful for scanned or
	// recompressed annotation images; clean synthetic images don't need it.
	BlurRadius float64
}

// Rectangles extracts the bounding rectangle of every component of class cc
// whose bounding box covers at least minArea square pixels.
//
// Results are in discovery order, which downstream scoring relies on for
// positional pairing.
func (e Extractor) Rectangles(img image.Image, cc ColorClass, minArea int) []geometry.Rectangle {
	mask := Mask(e.prepare(img), cc)

	rects := make([]geometry.Rectangle, 0)
	for _, region := range components(mask) {
		minX, minY, maxX, maxY := regionBounds(region)
		r := geometry.Rectangle{
			X:      minX,
			Y:      minY,
			Width:  maxX - minX + 1,
			Height: maxY - minY + 1,
		}
		if r.Area() < minArea {
			continue
		}
		rects = append(rects, r)
	}
	return rects
}

// Points extracts the centroid of every component of class cc covering more
// than minArea pixels. The point's Area is the component's pixel count.
func (e Extractor) Points(img image.Image, cc ColorClass, minArea float64) []geometry.Point {
	mask := Mask(e.prepare(img), cc)

	points := make([]geometry.Point, 0)
	for _, region := range components(mask) {
		n := len(region)
		if float64(n) <= minArea {
			continue
		}

		var sumX, sumY int
		for _, p := range region {
			sumX += p.X
			sumY += p.Y
		}
		points = append(points, geometry.Point{
			X:    sumX / n,
			Y:    sumY / n,
			Area: float64(n),
		})
	}
	return points
}

func (e Extractor) prepare(img image.Image) image.Image {
	if e.BlurRadius > 0 {
		return blur.Gaussian(img, e.BlurRadius)
	}
	return img
}
