package easel

import (
	"image"
	"testing"
)

func TestViewportUnzoomedMapping(t *testing.T) {
	v := NewViewport(16)
	v.SetCanvasSize(image.Pt(100, 100))

	if got := v.ToCanvas(image.Pt(16, 16)); got != image.Pt(0, 0) {
		t.Errorf("ToCanvas(16,16) = %v, want (0,0)", got)
	}
	if got := v.ToCanvas(image.Pt(26, 36)); got != image.Pt(10, 20) {
		t.Errorf("ToCanvas(26,36) = %v, want (10,20)", got)
	}
	if got := v.ToView(image.Pt(10, 20)); got != image.Pt(26, 36) {
		t.Errorf("ToView(10,20) = %v, want (26,36)", got)
	}
}

func TestViewportZoomMapping(t *testing.T) {
	v := NewViewport(0)
	v.SetViewSize(image.Pt(200, 200))
	v.SetCanvasSize(image.Pt(400, 400))

	v.EnterZoom(image.Rect(0, 0, 100, 100))
	if !v.Zoomed() {
		t.Fatal("EnterZoom did not activate zoom")
	}
	if got := v.Zoom(); got != 2 {
		t.Fatalf("zoom = %v, want 2", got)
	}

	if got := v.ToView(image.Pt(10, 10)); got != image.Pt(20, 20) {
		t.Errorf("ToView under zoom = %v, want (20,20)", got)
	}
	if got := v.ToCanvas(image.Pt(21, 21)); got != image.Pt(10, 10) {
		t.Errorf("ToCanvas under zoom = %v, want (10,10)", got)
	}

	v.ExitZoom()
	if v.Zoomed() || v.Zoom() != 1 {
		t.Errorf("after ExitZoom: zoomed=%v zoom=%v", v.Zoomed(), v.Zoom())
	}
}

func TestViewportZoomUsesSmallerFit(t *testing.T) {
	v := NewViewport(0)
	v.SetViewSize(image.Pt(200, 100))

	// A square preview in a wide viewport: the vertical fit wins.
	v.EnterZoom(image.Rect(0, 0, 50, 50))
	if got := v.Zoom(); got != 2 {
		t.Errorf("zoom = %v, want 2", got)
	}
}

func TestViewportZoomDegenerateFallsBackToOne(t *testing.T) {
	v := NewViewport(0)
	v.SetViewSize(image.Pt(200, 200))

	v.EnterZoom(image.Rectangle{})
	if got := v.Zoom(); got != 1 {
		t.Errorf("zoom for empty preview = %v, want 1", got)
	}

	// Unknown view size is equally degenerate.
	v2 := NewViewport(0)
	v2.EnterZoom(image.Rect(0, 0, 50, 50))
	if got := v2.Zoom(); got != 1 {
		t.Errorf("zoom with no view size = %v, want 1", got)
	}
}

func TestViewportNegativeGutterUsesDefault(t *testing.T) {
	v := NewViewport(-1)
	if got := v.ToCanvas(image.Pt(DefaultGutter, DefaultGutter)); got != image.Pt(0, 0) {
		t.Errorf("ToCanvas at default gutter = %v, want (0,0)", got)
	}
}

func TestViewportHandleHitTesting(t *testing.T) {
	v := NewViewport(16)
	v.SetCanvasSize(image.Pt(100, 80))
	// Canvas occupies (16,16)-(116,96) in view space.

	tests := []struct {
		at   image.Point
		want Handle
	}{
		{image.Pt(16, 16), HandleTopLeft},
		{image.Pt(116, 96), HandleBottomRight},
		{image.Pt(66, 16), HandleTop},
		{image.Pt(16, 56), HandleLeft},
		{image.Pt(118, 98), HandleBottomRight}, // within hit radius
		{image.Pt(60, 60), HandleNone},         // middle of the canvas
		{image.Pt(200, 200), HandleNone},
	}
	for _, tt := range tests {
		if got := v.HandleAt(tt.at); got != tt.want {
			t.Errorf("HandleAt(%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestViewportSelectionHandleAt(t *testing.T) {
	v := NewViewport(16)
	sel := image.Rect(10, 10, 30, 30)
	// In view space the selection spans (26,26)-(46,46).

	if got := v.SelectionHandleAt(image.Pt(26, 26), sel); got != HandleTopLeft {
		t.Errorf("top-left = %v, want HandleTopLeft", got)
	}
	if got := v.SelectionHandleAt(image.Pt(46, 36), sel); got != HandleRight {
		t.Errorf("right mid = %v, want HandleRight", got)
	}
	if got := v.SelectionHandleAt(image.Pt(36, 36), sel); got != HandleNone {
		t.Errorf("center = %v, want HandleNone", got)
	}
}

func TestHandleAnchorIsOpposite(t *testing.T) {
	tests := []struct {
		h    Handle
		want Anchor
	}{
		{HandleTopLeft, AnchorBottomRight},
		{HandleBottomRight, AnchorTopLeft},
		{HandleTop, AnchorBottom},
		{HandleLeft, AnchorRight},
		{HandleRight, AnchorLeft},
		{HandleBottom, AnchorTop},
	}
	for _, tt := range tests {
		if got := tt.h.Anchor(); got != tt.want {
			t.Errorf("Anchor(%v) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestClampCanvasSize(t *testing.T) {
	if got := clampCanvasSize(image.Pt(10, 500)); got != image.Pt(MinCanvasSize, 500) {
		t.Errorf("clamp = %v", got)
	}
	if got := clampCanvasSize(image.Pt(300, 200)); got != image.Pt(300, 200) {
		t.Errorf("in-range size changed: %v", got)
	}
}
