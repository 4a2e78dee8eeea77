package easel

import (
	"math"

	xdraw "golang.org/x/image/draw"
)

// Geometric transforms. Every operation returns a new surface; the input
// is never mutated. Flips and 90-degree rotations remap buffer indices
// exactly. Arbitrary-angle rotation and shear inverse-map destination
// pixels with nearest sampling, so no colors outside the source palette
// are ever introduced. Percentage scaling is the single resampled
// (smoothed) operation.

// FlipH returns the surface mirrored across the vertical axis.
func FlipH(s *Surface) *Surface {
	out := NewSurface(s.width, s.height)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			si := (y*s.width + x) * 4
			di := (y*s.width + (s.width - 1 - x)) * 4
			copy(out.data[di:di+4], s.data[si:si+4])
		}
	}
	return out
}

// FlipV returns the surface mirrored across the horizontal axis.
func FlipV(s *Surface) *Surface {
	out := NewSurface(s.width, s.height)
	rowLen := s.width * 4
	for y := 0; y < s.height; y++ {
		si := y * rowLen
		di := (s.height - 1 - y) * rowLen
		copy(out.data[di:di+rowLen], s.data[si:si+rowLen])
	}
	return out
}

// Rotate returns the surface rotated clockwise by the given angle in
// degrees. When the angle is not a multiple of 180 the output canvas
// grows to the bounding box of the rotated rectangle; newly exposed
// area is filled with bg. Multiples of 90 degrees remap pixels exactly.
func Rotate(s *Surface, degrees float64, bg RGBA) *Surface {
	deg := math.Mod(degrees, 360)
	if deg < 0 {
		deg += 360
	}

	switch deg {
	case 0:
		return s.Clone()
	case 90, 180, 270:
		return rotateQuarter(s, int(deg))
	}

	rad := deg * math.Pi / 180
	w := float64(s.width)
	h := float64(s.height)

	// Bounding box of the rotated rectangle.
	sin := math.Abs(math.Sin(rad))
	cos := math.Abs(math.Cos(rad))
	outW := int(math.Ceil(w*cos + h*sin))
	outH := int(math.Ceil(w*sin + h*cos))

	out := NewSurfaceFilled(outW, outH, bg)

	// Rotate about the center, then inverse-map each destination pixel.
	fwd := Translation(float64(outW)/2, float64(outH)/2).
		Multiply(Rotation(rad)).
		Multiply(Translation(-w/2, -h/2))
	inv := fwd.Invert()

	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			src := inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
			sx := int(math.Floor(src.X))
			sy := int(math.Floor(src.Y))
			if r, g, b, a, ok := s.pixelAt(sx, sy); ok {
				i := (y*outW + x) * 4
				out.data[i+0] = r
				out.data[i+1] = g
				out.data[i+2] = b
				out.data[i+3] = a
			}
		}
	}
	return out
}

// rotateQuarter rotates by an exact multiple of 90 degrees clockwise.
func rotateQuarter(s *Surface, deg int) *Surface {
	var out *Surface
	switch deg {
	case 90:
		out = NewSurface(s.height, s.width)
	case 270:
		out = NewSurface(s.height, s.width)
	default: // 180
		out = NewSurface(s.width, s.height)
	}

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			var dx, dy int
			switch deg {
			case 90:
				dx, dy = s.height-1-y, x
			case 180:
				dx, dy = s.width-1-x, s.height-1-y
			case 270:
				dx, dy = y, s.width-1-x
			}
			si := (y*s.width + x) * 4
			di := (dy*out.width + dx) * 4
			copy(out.data[di:di+4], s.data[si:si+4])
		}
	}
	return out
}

// Scale percentage limits matching the practical UI range.
const (
	MinScalePercent = 1
	MaxScalePercent = 800
)

// ScalePercent returns the surface resampled to xPercent x yPercent of
// its original size. Percentages are clamped to [MinScalePercent,
// MaxScalePercent]; the output size is floor(original * percent / 100)
// with a 1x1 floor.
//
// This is the one operation that does not preserve exact pixel values:
// resampling uses Catmull-Rom interpolation.
func ScalePercent(s *Surface, xPercent, yPercent float64) *Surface {
	xPercent = clampScale(xPercent)
	yPercent = clampScale(yPercent)

	outW := int(float64(s.width) * xPercent / 100)
	outH := int(float64(s.height) * yPercent / 100)
	return resample(s, outW, outH, xdraw.CatmullRom)
}

// clampScale restricts a scale percentage to the supported range.
func clampScale(pct float64) float64 {
	if math.IsNaN(pct) || pct < MinScalePercent {
		Logger().Warn("scale percent clamped", "requested", pct)
		return MinScalePercent
	}
	if pct > MaxScalePercent {
		Logger().Warn("scale percent clamped", "requested", pct)
		return MaxScalePercent
	}
	return pct
}

// resampleNearest rescales with nearest-neighbor sampling, used for
// floating-selection handle rescale where pixel identity matters more
// than smoothness.
func resampleNearest(s *Surface, width, height int) *Surface {
	return resample(s, width, height, xdraw.NearestNeighbor)
}

// resample rescales through an x/image scaler.
func resample(s *Surface, width, height int, scaler xdraw.Scaler) *Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == s.width && height == s.height {
		return s.Clone()
	}
	out := NewSurface(width, height)
	scaler.Scale(out, out.Bounds(), s, s.Bounds(), xdraw.Src, nil)
	return out
}

// Shear angle limit. Angles approach a singular transform at 90 degrees.
const maxShearDegrees = 89

// Shear returns the surface sheared by kx degrees horizontally and ky
// degrees vertically. Angles are clamped to the open range (-89, 89);
// the output canvas is enlarged so no content is clipped, with new area
// filled with bg.
func Shear(s *Surface, kxDegrees, kyDegrees float64, bg RGBA) *Surface {
	kxDegrees = clampShear(kxDegrees)
	kyDegrees = clampShear(kyDegrees)

	kx := math.Tan(kxDegrees * math.Pi / 180)
	ky := math.Tan(kyDegrees * math.Pi / 180)

	w := float64(s.width)
	h := float64(s.height)
	outW := s.width + int(math.Ceil(math.Abs(kx)*h))
	outH := s.height + int(math.Ceil(math.Abs(ky)*w))

	// Offset so negative shear factors stay on-canvas.
	ox := 0.0
	if kx < 0 {
		ox = -kx * h
	}
	oy := 0.0
	if ky < 0 {
		oy = -ky * w
	}

	fwd := Translation(ox, oy).Multiply(Shearing(kx, ky))
	inv := fwd.Invert()

	out := NewSurfaceFilled(outW, outH, bg)
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			src := inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
			sx := int(math.Floor(src.X))
			sy := int(math.Floor(src.Y))
			if r, g, b, a, ok := s.pixelAt(sx, sy); ok {
				i := (y*outW + x) * 4
				out.data[i+0] = r
				out.data[i+1] = g
				out.data[i+2] = b
				out.data[i+3] = a
			}
		}
	}
	return out
}

// clampShear restricts a shear angle to the supported open range.
func clampShear(deg float64) float64 {
	if math.IsNaN(deg) {
		return 0
	}
	if deg > maxShearDegrees {
		Logger().Warn("shear angle clamped", "requested", deg)
		return maxShearDegrees
	}
	if deg < -maxShearDegrees {
		Logger().Warn("shear angle clamped", "requested", deg)
		return -maxShearDegrees
	}
	return deg
}

// ApplyColorKey makes every pixel within the per-channel tolerance of
// the key color fully transparent, in place. Used when pasting in the
// transparent-background drawing mode.
func ApplyColorKey(s *Surface, key RGBA, tolerance uint8) {
	kr, kg, kb, _ := key.bytes()
	tol := int(tolerance)
	for i := 0; i < len(s.data); i += 4 {
		if within(s.data[i+0], kr, tol) &&
			within(s.data[i+1], kg, tol) &&
			within(s.data[i+2], kb, tol) {
			s.data[i+3] = 0
		}
	}
}

func within(v, target uint8, tol int) bool {
	d := int(v) - int(target)
	if d < 0 {
		d = -d
	}
	return d <= tol
}
