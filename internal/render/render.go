package render

import (
	"image"
	"image/color"
	"math"

	"github.com/redblobgames/2543-mapgen1-hexagons/internal/world"
)

// DrawMap rasterizes a generated map: every cell filled with its biome
// color, coastline edges stroked on top. cellSize is the cell circumradius
// in pixels.
func DrawMap(m *world.Map, cellSize float64) *image.RGBA {
	layout := world.Layout{
		Orientation: world.OrientationPointy,
		Size:        world.Point{X: cellSize, Y: cellSize},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, h := range m.Region.Hexes {
		for _, c := range layout.Corners(h) {
			minX = math.Min(minX, c.X)
			minY = math.Min(minY, c.Y)
			maxX = math.Max(maxX, c.X)
			maxY = math.Max(maxY, c.Y)
		}
	}

	const pad = 2.0
	layout.Origin = world.Point{X: pad - minX, Y: pad - minY}
	width := int(math.Ceil(maxX-minX+2*pad)) + 1
	height := int(math.Ceil(maxY-minY+2*pad)) + 1

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, h := range m.Region.Hexes {
		fillHex(img, layout, h, BiomeColor(m.Biomes.MustGet(h)))
	}
	for _, e := range m.Edges {
		if coast, _ := m.Coastline.Get(e); coast {
			a, b := layout.EdgeCorners(e)
			drawSegment(img, a, b, CoastlineColor)
		}
	}
	return img
}

// fillHex scans the cell's bounding box and sets every pixel whose center
// falls inside the pointy-top hexagon.
func fillHex(img *image.RGBA, layout world.Layout, h world.Hex, col color.RGBA) {
	c := layout.HexToPixel(h)
	size := layout.Size.X
	halfW := world.Sqrt3 / 2 * size

	x0 := int(math.Floor(c.X - halfW))
	x1 := int(math.Ceil(c.X + halfW))
	y0 := int(math.Floor(c.Y - size))
	y1 := int(math.Ceil(c.Y + size))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if insideHexPointy(float64(x)+0.5-c.X, float64(y)+0.5-c.Y, size) {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// insideHexPointy reports whether the offset (dx, dy) from the cell center
// lies inside a pointy-top hexagon of the given circumradius.
func insideHexPointy(dx, dy, size float64) bool {
	ax := math.Abs(dx)
	ay := math.Abs(dy)
	if ax > world.Sqrt3/2*size {
		return false
	}
	return world.Sqrt3*ay+ax <= world.Sqrt3*size
}

// drawSegment steps along the segment setting one pixel per half-pixel of
// length. Good enough for hairline coastline strokes.
func drawSegment(img *image.RGBA, a, b world.Point, col color.RGBA) {
	steps := int(math.Hypot(b.X-a.X, b.Y-a.Y)*2) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(a.X + (b.X-a.X)*t))
		y := int(math.Round(a.Y + (b.Y-a.Y)*t))
		img.SetRGBA(x, y, col)
	}
}
