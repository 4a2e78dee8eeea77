package easel

import (
	"math"
	"sort"
)

// Rasterization for committed strokes and shapes.
//
// Unlike a general-purpose renderer, the paint engine rasterizes without
// anti-aliasing: a committed stroke writes the active color's exact RGBA8
// tuple, so flood fill and the eyedropper always observe clean values.

// strokePath strokes a path onto the surface with a round brush of the
// given width. Width 1 draws hairlines.
func strokePath(s *Surface, p *Path, width int, c RGBA) {
	strokePolyline(s, p.Flatten(), width, c)
}

// fillPath fills a path onto the surface using the even-odd rule.
func fillPath(s *Surface, p *Path, c RGBA) {
	fillPolygon(s, p.Flatten(), c)
}

// strokePolyline strokes consecutive points as connected segments.
func strokePolyline(s *Surface, pts []Point, width int, c RGBA) {
	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		stampBrush(s, int(math.Round(pts[0].X)), int(math.Round(pts[0].Y)), width, c)
		return
	}
	for i := 1; i < len(pts); i++ {
		strokeSegment(s, pts[i-1], pts[i], width, c)
	}
}

// strokeSegment draws one line segment with a round brush using
// Bresenham stepping, stamping the brush at every step so thick strokes
// have no gaps regardless of slope.
func strokeSegment(s *Surface, a, b Point, width int, c RGBA) {
	x0 := int(math.Round(a.X))
	y0 := int(math.Round(a.Y))
	x1 := int(math.Round(b.X))
	y1 := int(math.Round(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		stampBrush(s, x0, y0, width, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// stampBrush writes a round brush tip of the given diameter centered at
// (cx, cy). Diameter <= 1 writes a single pixel.
func stampBrush(s *Surface, cx, cy, diameter int, c RGBA) {
	if diameter <= 1 {
		s.SetPixel(cx, cy, c)
		return
	}
	r := float64(diameter) / 2
	ri := int(math.Ceil(r))
	r2 := r * r
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx)*float64(dx)+float64(dy)*float64(dy) <= r2 {
				s.SetPixel(cx+dx, cy+dy, c)
			}
		}
	}
}

// fillPolygon fills a closed polygon using even-odd scanline crossing.
// Open polylines are implicitly closed.
func fillPolygon(s *Surface, pts []Point, c RGBA) {
	if len(pts) < 3 {
		return
	}

	minY := pts[0].Y
	maxY := pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	y0 := max(int(math.Floor(minY)), 0)
	y1 := min(int(math.Ceil(maxY)), s.height-1)

	xs := make([]float64, 0, 8)
	for y := y0; y <= y1; y++ {
		// Sample at pixel centers for stable edge classification.
		fy := float64(y) + 0.5
		xs = xs[:0]
		for i := 0; i < len(pts); i++ {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if (a.Y <= fy && b.Y > fy) || (b.Y <= fy && a.Y > fy) {
				t := (fy - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			startX := int(math.Ceil(xs[i] - 0.5))
			endX := int(math.Floor(xs[i+1] - 0.5))
			for x := startX; x <= endX; x++ {
				s.SetPixel(x, y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
