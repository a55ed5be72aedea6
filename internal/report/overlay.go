package report

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/marker-accuracy/internal/geometry"
)

// Clone copies src into a mutable RGBA canvas for overlay drawing.
func Clone(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}

// DrawRectangles outlines each rectangle with a 2px border and an indexed
// label (e.g. "ref_0") above its top-left corner.
func DrawRectangles(img *image.RGBA, rects []geometry.Rectangle, prefix string, col color.RGBA) {
	for i, r := range rects {
		drawRectOutline(img, r, 2, col)
		drawLabel(img, r.X, r.Y-4, fmt.Sprintf("%s_%d", prefix, i), col)
	}
}

// DrawPoints fills a small disc at each point with an indexed label beside
// it.
func DrawPoints(img *image.RGBA, points []geometry.Point, prefix string, col color.RGBA) {
	for i, p := range points {
		drawDisc(img, p.X, p.Y, 5, col)
		drawLabel(img, p.X+8, p.Y+4, fmt.Sprintf("%s_%d", prefix, i), col)
	}
}

// MaskImage renders a binary mask as a grayscale image, white where set.
// Useful for inspecting what a color class actually captured.
func MaskImage(mask [][]bool) *image.Gray {
	height := len(mask)
	width := 0
	if height > 0 {
		width = len(mask[0])
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask[y][x] {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func drawRectOutline(img *image.RGBA, r geometry.Rectangle, thickness int, col color.RGBA) {
	for t := 0; t < thickness; t++ {
		x1, y1 := r.X+t, r.Y+t
		x2, y2 := r.X+r.Width-t, r.Y+r.Height-t
		for x := x1; x <= x2; x++ {
			img.Set(x, y1, col)
			img.Set(x, y2, col)
		}
		for y := y1; y <= y2; y++ {
			img.Set(x1, y, col)
			img.Set(x2, y, col)
		}
	}
}

func drawDisc(img *image.RGBA, cx, cy, radius int, col color.RGBA) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.Set(cx+dx, cy+dy, col)
			}
		}
	}
}

// drawLabel renders text with the fixed 7x13 face. (x, y) is the baseline
// start; text running past the image edge is clipped.
func drawLabel(img *image.RGBA, x, y int, text string, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
