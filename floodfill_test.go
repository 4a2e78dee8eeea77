package easel

import (
	"image"
	"testing"
)

func TestFloodFillEnclosedRegion(t *testing.T) {
	s := NewSurfaceFilled(10, 10, White)
	// Black rectangle outline from (2,2) to (7,7).
	p := NewPath()
	p.Rectangle(2, 2, 5, 5)
	strokePath(s, p, 1, Black)

	res := FloodFill(s, 4, 4, Red, 0)

	if res.Truncated {
		t.Error("small fill reported truncated")
	}
	if res.Filled == 0 {
		t.Fatal("nothing filled")
	}
	// Interior recolored, outline and exterior untouched.
	if got := s.GetPixel(4, 4); got != Red {
		t.Errorf("interior = %+v, want Red", got)
	}
	if got := s.GetPixel(2, 2); got != Black {
		t.Errorf("outline corner = %+v, want Black", got)
	}
	if got := s.GetPixel(0, 0); got != White {
		t.Errorf("exterior = %+v, want White", got)
	}
}

func TestFloodFillIsFourConnected(t *testing.T) {
	s := NewSurfaceFilled(4, 4, White)
	// A diagonal of black pixels separates two white regions that touch
	// only at corners.
	for i := 0; i < 4; i++ {
		s.SetPixel(i, i, Black)
	}

	FloodFill(s, 3, 0, Red, 0)

	if got := s.GetPixel(3, 0); got != Red {
		t.Errorf("start side = %+v, want Red", got)
	}
	if got := s.GetPixel(0, 3); got != White {
		t.Errorf("fill leaked diagonally: %+v", got)
	}
}

func TestFloodFillNoopCases(t *testing.T) {
	s := NewSurfaceFilled(5, 5, White)

	res := FloodFill(s, -1, 0, Red, 0)
	if res.Filled != 0 {
		t.Errorf("out-of-bounds start filled %d pixels", res.Filled)
	}

	res = FloodFill(s, 2, 2, White, 0)
	if res.Filled != 0 {
		t.Errorf("same-color fill filled %d pixels", res.Filled)
	}
}

func TestFloodFillExactMatchOnly(t *testing.T) {
	s := NewSurfaceFilled(5, 5, White)
	almost := RGBA{R: 254.0 / 255, G: 1, B: 1, A: 1}
	s.SetPixel(2, 2, almost)

	FloodFill(s, 0, 0, Red, 0)

	// The off-by-one pixel does not match the white target tuple.
	if got := s.GetPixel(2, 2); got != almost {
		t.Errorf("near-match pixel changed: %+v", got)
	}
}

func TestFloodFillCapTruncates(t *testing.T) {
	s := NewSurfaceFilled(100, 100, White)

	res := FloodFill(s, 50, 50, Red, 40)

	if !res.Truncated {
		t.Fatal("fill over the cap not reported truncated")
	}
	if res.Filled != 40 {
		t.Errorf("Filled = %d, want exactly the cap (40)", res.Filled)
	}
}

func TestFloodFillBounds(t *testing.T) {
	s := NewSurfaceFilled(10, 10, Black)
	s.FillRect(image.Rect(3, 3, 7, 6), White)

	res := FloodFill(s, 4, 4, Red, 0)

	want := image.Rect(3, 3, 7, 6)
	if res.Bounds != want {
		t.Errorf("Bounds = %v, want %v", res.Bounds, want)
	}
	if res.Filled != 4*3 {
		t.Errorf("Filled = %d, want %d", res.Filled, 4*3)
	}
}

func TestFloodFillCoversTracksFilledPixels(t *testing.T) {
	s := NewSurfaceFilled(9, 9, White)
	s.FillRect(image.Rect(3, 3, 6, 6), Red)

	res := FloodFill(s, 0, 0, Blue, 0)

	// The bounding box spans the whole canvas, but the red block in the
	// middle was never recolored.
	if want := image.Rect(0, 0, 9, 9); res.Bounds != want {
		t.Fatalf("Bounds = %v, want %v", res.Bounds, want)
	}
	if res.Covers(image.Rect(4, 4, 5, 5)) {
		t.Error("Covers reported the unfilled block as covered")
	}
	if !res.Covers(image.Rect(0, 0, 2, 2)) {
		t.Error("Covers missed a fully recolored region")
	}
	if res.Covers(image.Rectangle{}) {
		t.Error("Covers reported an empty rectangle as covered")
	}
}
