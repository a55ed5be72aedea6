package extraction

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorClass identifies marker pixels by their position in HSV space.
//
// Hue bounds are degrees on the 0-360 color wheel. A class may wrap around
// the red end of the wheel by giving HueLo > HueHi, e.g. 340..20 covers
// both magenta-leaning and orange-leaning reds. Saturation and value floors
// reject washed-out and near-black pixels such as gray backgrounds and
// anti-aliasing fringes.
type ColorClass struct {
	Name   string  // class name used in reports and debug artifacts
	HueLo  float64 // lower hue bound in degrees, inclusive
	HueHi  float64 // upper hue bound in degrees, inclusive
	MinSat float64 // minimum saturation, 0-1
	MinVal float64 // minimum value (brightness), 0-1
}

// Marker classes of the annotation convention. Reference regions are drawn
// in red, candidate regions in brown, and point markers in cyan.
var (
	ReferenceClass = ColorClass{Name: "reference", HueLo: 340, HueHi: 20, MinSat: 0.19, MinVal: 0.19}
	CandidateClass = ColorClass{Name: "candidate", HueLo: 10, HueHi: 50, MinSat: 0.15, MinVal: 0.15}
	PointClass     = ColorClass{Name: "point", HueLo: 170, HueHi: 190, MinSat: 0.19, MinVal: 0.19}
)

// Matches reports whether c falls inside the class's HSV region.
func (cc ColorClass) Matches(c colorful.Color) bool {
	h, s, v := c.Hsv()
	if s < cc.MinSat || v < cc.MinVal {
		return false
	}
	if cc.HueLo <= cc.HueHi {
		return cc.HueLo <= h && h <= cc.HueHi
	}
	// Wraparound band across 0°.
	return h >= cc.HueLo || h <= cc.HueHi
}

// Mask builds a binary mask of the pixels matching class cc, indexed
// [y][x] relative to the image's bounds origin. Fully transparent pixels
// never match.
func Mask(img image.Image, cc ColorClass) [][]bool {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			c, ok := colorful.MakeColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
			if !ok {
				continue
			}
			mask[y][x] = cc.Matches(c)
		}
	}
	return mask
}
