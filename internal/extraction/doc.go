// Package extraction turns raster annotation images into the geometric
// primitives consumed by the scoring package.
//
// The annotation convention uses color to separate marker roles: reference
// regions are outlined in red on the ground-truth image, while the detection
// image carries brown filled rectangles for matched regions and small cyan
// dots for point markers. Extraction is a three-step pipeline per marker
// class:
//
//  1. Classification: every pixel is tested against the class's HSV region
//     (hue band plus saturation/value floors), producing a binary mask.
//     An optional Gaussian pre-blur suppresses single-pixel speckle.
//  2. Grouping: 8-connected components of the mask are collected with an
//     iterative flood fill.
//  3. Measurement: each component becomes either the bounding rectangle of
//     its pixels or their centroid, with components under a minimum area
//     discarded as noise.
//
// Results are returned in discovery order (top-to-bottom, left-to-right
// scan of the component's first pixel). Downstream scoring pairs sequences
// positionally, so extraction order is load-bearing even though it has no
// geometric meaning.
//
// # Coordinate System
//
// Coordinates are pixel coordinates relative to the image's bounds origin,
// with (0, 0) at the top-left corner. Bounding rectangles span the full
// pixel extent of a component: a component covering columns 3 through 7 has
// width 5.
package extraction
