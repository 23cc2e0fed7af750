package icon

import (
	"image"
	"image/color"
	"math"
)

// Pixels are sampled at their centers, so a circle with radius r covers
// the same pixels PIL's inclusive bounding-box ellipse does.
func sample(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(y) + 0.5
}

// fillCircle fills the disc of radius r around (cx, cy).
func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px, py := sample(x, y)
			dx, dy := px-cx, py-cy
			if math.Sqrt(dx*dx+dy*dy) <= r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// strokeCircle draws a ring of the given width along the inside of the
// circle of radius r around (cx, cy).
func strokeCircle(img *image.RGBA, cx, cy, r, width float64, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px, py := sample(x, y)
			dx, dy := px-cx, py-cy
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist <= r && dist > r-width {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// fillRect fills the rectangle spanning (x0, y0) to (x1, y1) inclusive.
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// fillEllipse fills the ellipse inscribed in the bounding box spanning
// (x0, y0) to (x1, y1) inclusive.
func fillEllipse(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	cx := float64(x0+x1+1) / 2
	cy := float64(y0+y1+1) / 2
	rx := float64(x1-x0+1) / 2
	ry := float64(y1-y0+1) / 2

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := sample(x, y)
			dx, dy := (px-cx)/rx, (py-cy)/ry
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

type point struct {
	x, y float64
}

// fillTriangle fills the triangle with the given vertices. Vertices are
// pixel coordinates and boundary pixels are included, so the vertex
// pixels themselves are part of the fill.
func fillTriangle(img *image.RGBA, a, b, c point, col color.RGBA) {
	minX := int(math.Floor(math.Min(a.x, math.Min(b.x, c.x))))
	maxX := int(math.Ceil(math.Max(a.x, math.Max(b.x, c.x))))
	minY := int(math.Floor(math.Min(a.y, math.Min(b.y, c.y))))
	maxY := int(math.Ceil(math.Max(a.y, math.Max(b.y, c.y))))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x), float64(y)
			d1 := edgeSign(px, py, a, b)
			d2 := edgeSign(px, py, b, c)
			d3 := edgeSign(px, py, c, a)

			hasNeg := d1 < 0 || d2 < 0 || d3 < 0
			hasPos := d1 > 0 || d2 > 0 || d3 > 0
			if !(hasNeg && hasPos) {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

func edgeSign(px, py float64, a, b point) float64 {
	return (px-b.x)*(a.y-b.y) - (a.x-b.x)*(py-b.y)
}
