package extraction

import "image"

// components finds 8-connected regions of set pixels in a binary mask.
//
// Regions are returned in discovery order: the mask is scanned row by row,
// and each unvisited set pixel seeds a new region. Pixel coordinates are in
// mask index space ([y][x] with origin at 0,0).
func components(mask [][]bool) [][]image.Point {
	height := len(mask)
	if height == 0 {
		return nil
	}
	width := len(mask[0])

	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		visited[y] = make([]bool, width)
	}

	regions := make([][]image.Point, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask[y][x] && !visited[y][x] {
				regions = append(regions, floodFill(mask, visited, x, y, width, height))
			}
		}
	}
	return regions
}

// floodFill collects one connected region starting at (startX, startY).
//
// The fill is iterative (stack-based) to stay safe on large regions and
// uses 8-connectivity, so diagonal-only neighbours join the same region.
func floodFill(mask, visited [][]bool, startX, startY, width, height int) []image.Point {
	region := make([]image.Point, 0)
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y][p.X] || !mask[p.Y][p.X] {
			continue
		}

		visited[p.Y][p.X] = true
		region = append(region, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}

	return region
}

// regionBounds returns the inclusive pixel extent of a region.
// The region must be non-empty.
func regionBounds(region []image.Point) (minX, minY, maxX, maxY int) {
	minX, minY = region[0].X, region[0].Y
	maxX, maxY = minX, minY
	for _, p := range region[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}
