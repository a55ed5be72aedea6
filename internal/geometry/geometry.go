// Package geometry defines the primitive shapes exchanged between the
// extraction and scoring packages.
//
// All coordinates are pixel coordinates with origin (0, 0) at the top-left
// corner, X increasing rightward and Y increasing downward. Rectangles are
// axis-aligned; rotated shapes are out of scope.
package geometry

// Rectangle is an axis-aligned rectangle in pixel coordinates.
//
// (X, Y) is the top-left corner; Width and Height extend rightward and
// downward. Width and Height are never negative for rectangles produced by
// the extraction package. A zero Width or Height yields a degenerate
// rectangle with zero area that still answers containment checks along its
// remaining edge.
type Rectangle struct {
	X      int `json:"x"`      // Left edge (inclusive)
	Y      int `json:"y"`      // Top edge (inclusive)
	Width  int `json:"width"`  // Horizontal extent in pixels
	Height int `json:"height"` // Vertical extent in pixels
}

// Area returns the rectangle's area in square pixels (Width × Height).
func (r Rectangle) Area() int {
	return r.Width * r.Height
}

// Center returns the rectangle's center using integer (floor) division,
// matching the pixel-grid convention used by the extractor. The center of a
// rectangle is always contained by that rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether the coordinate (x, y) lies inside the
// rectangle's closed bounding box. Both edges are inclusive on both axes;
// there is no tolerance.
func (r Rectangle) Contains(x, y int) bool {
	return r.X <= x && x <= r.X+r.Width &&
		r.Y <= y && y <= r.Y+r.Height
}

// ContainsPoint reports whether p lies inside the rectangle's closed
// bounding box.
func (r Rectangle) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Point is a detected marker position.
//
// Area records the pixel count of the marker the point was derived from.
// It is used as a noise floor during extraction and carried through for
// reporting; the scoring math never reads it.
type Point struct {
	X    int     `json:"x"`
	Y    int     `json:"y"`
	Area float64 `json:"area"`
}
