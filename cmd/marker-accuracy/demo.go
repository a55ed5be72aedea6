package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// writeDemoImages synthesizes a known annotation pair under dir and returns
// the two file paths. The base image carries three reference outlines; the
// compare image carries two candidate fills and five point markers, with
// the third reference region holding points only so the exclusion rule has
// something to do.
func writeDemoImages(dir string) (basePath, comparePath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create demo directory: %w", err)
	}

	red := color.RGBA{255, 0, 0, 255}
	brown := color.RGBA{139, 69, 19, 255}
	cyan := color.RGBA{0, 255, 255, 255}

	base := newCanvas(700, 500, color.RGBA{240, 240, 240, 255})
	outlineRect(base, 50, 50, 250, 180, 4, red)
	outlineRect(base, 350, 200, 550, 330, 4, red)
	outlineRect(base, 100, 350, 300, 450, 4, red)

	compare := newCanvas(700, 500, color.RGBA{220, 220, 220, 255})
	fillRect(compare, 80, 80, 220, 150, brown)
	fillRect(compare, 380, 230, 520, 300, brown)
	fillCircle(compare, 150, 160, 8, cyan)
	fillCircle(compare, 450, 250, 6, cyan)
	fillCircle(compare, 400, 280, 7, cyan)
	fillCircle(compare, 150, 400, 9, cyan)
	fillCircle(compare, 250, 380, 5, cyan)

	basePath = filepath.Join(dir, "demo_base.png")
	comparePath = filepath.Join(dir, "demo_compare.png")

	if err := imaging.Save(base, basePath); err != nil {
		return "", "", fmt.Errorf("failed to save demo base image: %w", err)
	}
	if err := imaging.Save(compare, comparePath); err != nil {
		return "", "", fmt.Errorf("failed to save demo compare image: %w", err)
	}
	return basePath, comparePath, nil
}

func newCanvas(width, height int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, bg)
		}
	}
	return img
}

// fillRect fills the inclusive pixel span (x1,y1)-(x2,y2).
func fillRect(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			img.Set(x, y, c)
		}
	}
}

// outlineRect draws a rectangle outline of the given thickness, growing
// inward from the inclusive span (x1,y1)-(x2,y2).
func outlineRect(img *image.RGBA, x1, y1, x2, y2, thickness int, c color.Color) {
	for t := 0; t < thickness; t++ {
		for x := x1 + t; x <= x2-t; x++ {
			img.Set(x, y1+t, c)
			img.Set(x, y2-t, c)
		}
		for y := y1 + t; y <= y2-t; y++ {
			img.Set(x1+t, y, c)
			img.Set(x2-t, y, c)
		}
	}
}

// fillCircle fills a disc of the given radius centered at (cx, cy).
func fillCircle(img *image.RGBA, cx, cy, radius int, c color.Color) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}
