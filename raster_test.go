package easel

import (
	"testing"
)

func TestStrokeHairline(t *testing.T) {
	s := NewSurfaceFilled(10, 10, White)
	p := NewPath()
	p.MoveTo(0, 5)
	p.LineTo(9, 5)
	strokePath(s, p, 1, Red)

	for x := 0; x < 10; x++ {
		if got := s.GetPixel(x, 5); got != Red {
			t.Errorf("pixel (%d,5) = %+v, want Red", x, got)
		}
	}
	// A hairline never bleeds into neighboring rows.
	if got := s.GetPixel(5, 4); got != White {
		t.Errorf("pixel above stroke = %+v, want White", got)
	}
	if got := s.GetPixel(5, 6); got != White {
		t.Errorf("pixel below stroke = %+v, want White", got)
	}
}

func TestStrokeExactColor(t *testing.T) {
	s := NewSurfaceFilled(20, 20, White)
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(18, 14)
	strokePath(s, p, 1, Blue)

	// No anti-aliasing: every touched pixel holds the exact stroke
	// bytes, every untouched pixel the exact background bytes.
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			got := s.GetPixel(x, y)
			if got != Blue && got != White {
				t.Fatalf("pixel (%d,%d) = %+v, neither stroke nor background", x, y, got)
			}
		}
	}
}

func TestStampBrushDiameter(t *testing.T) {
	s := NewSurfaceFilled(21, 21, White)
	stampBrush(s, 10, 10, 7, Black)

	if got := s.GetPixel(10, 10); got != Black {
		t.Errorf("center = %+v, want Black", got)
	}
	// Along the axis, radius 3.5 covers offsets up to 3.
	if got := s.GetPixel(13, 10); got != Black {
		t.Errorf("pixel at radius 3 = %+v, want Black", got)
	}
	if got := s.GetPixel(15, 10); got != White {
		t.Errorf("pixel at radius 5 = %+v, want White", got)
	}
}

func TestStampBrushSinglePixel(t *testing.T) {
	s := NewSurfaceFilled(5, 5, White)
	stampBrush(s, 2, 2, 1, Black)

	count := 0
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.GetPixel(x, y) == Black {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("diameter 1 stamped %d pixels, want 1", count)
	}
}

func TestStrokeOffCanvasIsSafe(t *testing.T) {
	s := NewSurfaceFilled(10, 10, White)
	p := NewPath()
	p.MoveTo(-20, 5)
	p.LineTo(30, 5)
	strokePath(s, p, 3, Red) // must not panic

	if got := s.GetPixel(5, 5); got != Red {
		t.Errorf("on-canvas portion = %+v, want Red", got)
	}
}

func TestFillPolygonRectangle(t *testing.T) {
	s := NewSurfaceFilled(10, 10, White)
	pts := []Point{Pt(2, 2), Pt(8, 2), Pt(8, 8), Pt(2, 8)}
	fillPolygon(s, pts, Green)

	if got := s.GetPixel(4, 4); got != Green {
		t.Errorf("interior = %+v, want Green", got)
	}
	if got := s.GetPixel(1, 4); got != White {
		t.Errorf("left of polygon = %+v, want White", got)
	}
	if got := s.GetPixel(9, 4); got != White {
		t.Errorf("right of polygon = %+v, want White", got)
	}
}

func TestFillPolygonDegenerateIsNoop(t *testing.T) {
	s := NewSurfaceFilled(5, 5, White)
	fillPolygon(s, []Point{Pt(1, 1), Pt(3, 3)}, Red)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := s.GetPixel(x, y); got != White {
				t.Fatalf("pixel (%d,%d) changed: %+v", x, y, got)
			}
		}
	}
}
