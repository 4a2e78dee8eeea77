package easel

import (
	"image"
	"testing"
)

// testPattern builds a small surface with a distinct pixel in each
// corner so orientation changes are observable.
func testPattern() *Surface {
	s := NewSurfaceFilled(4, 3, White)
	s.SetPixel(0, 0, Red)    // top-left
	s.SetPixel(3, 0, Green)  // top-right
	s.SetPixel(0, 2, Blue)   // bottom-left
	s.SetPixel(3, 2, Yellow) // bottom-right
	return s
}

func surfacesEqual(a, b *Surface) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	ad, bd := a.Data(), b.Data()
	for i := range ad {
		if ad[i] != bd[i] {
			return false
		}
	}
	return true
}

func TestFlipHTwiceIsIdentity(t *testing.T) {
	s := testPattern()
	if !surfacesEqual(FlipH(FlipH(s)), s) {
		t.Error("double horizontal flip did not restore the original")
	}
}

func TestFlipVTwiceIsIdentity(t *testing.T) {
	s := testPattern()
	if !surfacesEqual(FlipV(FlipV(s)), s) {
		t.Error("double vertical flip did not restore the original")
	}
}

func TestFlipHMovesCorners(t *testing.T) {
	out := FlipH(testPattern())
	if got := out.GetPixel(3, 0); got != Red {
		t.Errorf("top-right after flip = %+v, want Red", got)
	}
	if got := out.GetPixel(0, 0); got != Green {
		t.Errorf("top-left after flip = %+v, want Green", got)
	}
}

func TestRotate90SwapsDimensions(t *testing.T) {
	s := testPattern()
	out := Rotate(s, 90, White)

	if out.Width() != 3 || out.Height() != 4 {
		t.Fatalf("size = %dx%d, want 3x4", out.Width(), out.Height())
	}
	// Clockwise: the top-left corner moves to the top-right.
	if got := out.GetPixel(2, 0); got != Red {
		t.Errorf("rotated top-right = %+v, want Red", got)
	}
	if got := out.GetPixel(2, 3); got != Green {
		t.Errorf("rotated bottom-right = %+v, want Green", got)
	}
}

func TestRotateFourQuartersIsIdentity(t *testing.T) {
	s := testPattern()
	out := s
	for i := 0; i < 4; i++ {
		out = Rotate(out, 90, White)
	}
	if !surfacesEqual(out, s) {
		t.Error("four 90-degree rotations did not restore the original byte-for-byte")
	}
}

func TestRotate180(t *testing.T) {
	out := Rotate(testPattern(), 180, White)
	if out.Width() != 4 || out.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", out.Width(), out.Height())
	}
	if got := out.GetPixel(3, 2); got != Red {
		t.Errorf("bottom-right after 180 = %+v, want Red", got)
	}
}

func TestRotateNegativeNormalizes(t *testing.T) {
	s := testPattern()
	if !surfacesEqual(Rotate(s, -90, White), Rotate(s, 270, White)) {
		t.Error("-90 and 270 degree rotations differ")
	}
}

func TestRotateArbitraryGrowsCanvas(t *testing.T) {
	s := NewSurfaceFilled(10, 10, Red)
	out := Rotate(s, 45, White)

	if out.Width() <= 10 || out.Height() <= 10 {
		t.Errorf("rotated canvas %dx%d did not grow", out.Width(), out.Height())
	}
	// Center keeps source content; corners hold fill.
	if got := out.GetPixel(out.Width()/2, out.Height()/2); got != Red {
		t.Errorf("center = %+v, want Red", got)
	}
	if got := out.GetPixel(0, 0); got != White {
		t.Errorf("corner = %+v, want White", got)
	}
}

func TestScalePercentSize(t *testing.T) {
	s := NewSurfaceFilled(10, 10, Blue)
	out := ScalePercent(s, 200, 50)

	if out.Width() != 20 || out.Height() != 5 {
		t.Errorf("size = %dx%d, want 20x5", out.Width(), out.Height())
	}
}

func TestScalePercentClamps(t *testing.T) {
	s := NewSurfaceFilled(10, 10, Blue)

	out := ScalePercent(s, 5000, 5000)
	if out.Width() != 80 || out.Height() != 80 {
		t.Errorf("overrange scale size = %dx%d, want 80x80", out.Width(), out.Height())
	}

	out = ScalePercent(s, 0, 0)
	if out.Width() != 1 || out.Height() != 1 {
		t.Errorf("underrange scale size = %dx%d, want 1x1", out.Width(), out.Height())
	}
}

func TestResampleNearestKeepsPalette(t *testing.T) {
	s := NewSurfaceFilled(4, 4, White)
	s.FillRect(image.Rect(0, 0, 2, 4), Red)

	out := resampleNearest(s, 8, 8)

	// Nearest sampling introduces no blended colors.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got := out.GetPixel(x, y)
			if got != Red && got != White {
				t.Fatalf("pixel (%d,%d) = %+v, neither source color", x, y, got)
			}
		}
	}
}

func TestShearGrowsCanvas(t *testing.T) {
	s := NewSurfaceFilled(10, 10, Red)
	out := Shear(s, 45, 0, White)

	if out.Width() <= 10 {
		t.Errorf("sheared width = %d, want > 10", out.Width())
	}
	if out.Height() != 10 {
		t.Errorf("sheared height = %d, want 10", out.Height())
	}
	// Content survives uncut: every source pixel maps somewhere.
	reds := 0
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			if out.GetPixel(x, y) == Red {
				reds++
			}
		}
	}
	if reds < 100 {
		t.Errorf("sheared content covers %d pixels, want at least 100", reds)
	}
}

func TestShearZeroIsIdentity(t *testing.T) {
	s := testPattern()
	if !surfacesEqual(Shear(s, 0, 0, White), s) {
		t.Error("zero shear altered the surface")
	}
}

func TestApplyColorKey(t *testing.T) {
	s := NewSurfaceFilled(4, 4, White)
	s.SetPixel(1, 1, Red)

	ApplyColorKey(s, White, 0)

	if got := s.GetPixel(0, 0); got.A != 0 {
		t.Errorf("keyed pixel alpha = %v, want 0", got.A)
	}
	if got := s.GetPixel(1, 1); got != Red {
		t.Errorf("non-keyed pixel = %+v, want Red", got)
	}
}

func TestApplyColorKeyTolerance(t *testing.T) {
	s := NewSurface(2, 1)
	s.SetPixel(0, 0, RGBA{R: 250.0 / 255, G: 1, B: 1, A: 1})
	s.SetPixel(1, 0, RGBA{R: 200.0 / 255, G: 1, B: 1, A: 1})

	ApplyColorKey(s, White, 10)

	if got := s.GetPixel(0, 0); got.A != 0 {
		t.Errorf("within-tolerance pixel alpha = %v, want 0", got.A)
	}
	if got := s.GetPixel(1, 0); got.A == 0 {
		t.Error("out-of-tolerance pixel was keyed")
	}
}
