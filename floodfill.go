package easel

import "image"

// DefaultFloodFillCap bounds a single flood fill to one million pixels.
// Pathological inputs (a huge connected region on a large canvas) stop
// at the cap and keep whatever was filled so far; the result reports the
// truncation so callers can surface it.
const DefaultFloodFillCap = 1_000_000

// FloodFillResult describes the outcome of a flood fill.
type FloodFillResult struct {
	// Filled is the number of pixels that were recolored.
	Filled int

	// Bounds is the bounding box of the recolored pixels.
	Bounds image.Rectangle

	// Truncated reports that the fill stopped at the pixel cap before
	// exhausting the connected region.
	Truncated bool

	// mask flags each canvas pixel actually recolored. Bounds alone
	// over-approximates non-rectangular regions.
	mask   []bool
	stride int
}

// Covers reports whether every pixel of rect was recolored by the fill.
// Empty rectangles and fills that recolored nothing are not covered.
func (r FloodFillResult) Covers(rect image.Rectangle) bool {
	if r.mask == nil || rect.Empty() || !rect.In(r.Bounds) {
		return false
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		row := y * r.stride
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if !r.mask[row+x] {
				return false
			}
		}
	}
	return true
}

// FloodFill recolors the 4-connected region around (x, y) whose pixels
// exactly match the starting pixel's RGBA8 tuple. The fill is a no-op
// when the start is out of bounds or the target already equals the
// replacement color. At most limit pixels are filled; limit <= 0 uses
// DefaultFloodFillCap.
//
// The traversal uses an explicit stack rather than recursion so large
// regions cannot overflow the goroutine stack.
func FloodFill(s *Surface, x, y int, c RGBA, limit int) FloodFillResult {
	tr, tg, tb, ta, ok := s.pixelAt(x, y)
	if !ok {
		return FloodFillResult{}
	}
	rr, rg, rb, ra := c.bytes()
	if tr == rr && tg == rg && tb == rb && ta == ra {
		return FloodFillResult{}
	}
	if limit <= 0 {
		limit = DefaultFloodFillCap
	}

	var res FloodFillResult
	res.Bounds = image.Rect(x, y, x+1, y+1)
	res.mask = make([]bool, s.width*s.height)
	res.stride = s.width

	stack := make([]image.Point, 1, 256)
	stack[0] = image.Pt(x, y)

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pr, pg, pb, pa, ok := s.pixelAt(p.X, p.Y)
		if !ok || pr != tr || pg != tg || pb != tb || pa != ta {
			continue
		}

		i := (p.Y*s.width + p.X) * 4
		s.data[i+0] = rr
		s.data[i+1] = rg
		s.data[i+2] = rb
		s.data[i+3] = ra
		res.mask[p.Y*s.width+p.X] = true
		res.Filled++
		res.Bounds = res.Bounds.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))

		if res.Filled >= limit {
			res.Truncated = true
			Logger().Warn("flood fill truncated at pixel cap",
				"cap", limit, "x", x, "y", y)
			return res
		}

		stack = append(stack,
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X-1, p.Y),
			image.Pt(p.X, p.Y+1),
			image.Pt(p.X, p.Y-1),
		)
	}

	return res
}
