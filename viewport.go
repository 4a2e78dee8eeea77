package easel

import (
	"image"
	"math"
)

const (
	// DefaultGutter is the scrollable margin around the canvas, in view
	// pixels, that keeps resize handles outside the image reachable.
	DefaultGutter = 16

	// MinCanvasSize is the floor enforced on either canvas dimension
	// during an interactive resize drag.
	MinCanvasSize = 50

	// handleHitRadius is the half-size of a handle's hit zone in view
	// pixels. Hit testing happens in view space, so the apparent target
	// size stays constant regardless of zoom.
	handleHitRadius = 6
)

// Handle identifies one of the eight resize handles (four corners plus
// four edge midpoints) around the canvas or a floating selection.
type Handle int

const (
	HandleNone Handle = iota
	HandleTopLeft
	HandleTop
	HandleTopRight
	HandleLeft
	HandleRight
	HandleBottomLeft
	HandleBottom
	HandleBottomRight
)

// Anchor returns the anchor for a resize driven by this handle: the
// corner or edge opposite the handle stays fixed.
func (h Handle) Anchor() Anchor {
	switch h {
	case HandleTopLeft:
		return AnchorBottomRight
	case HandleTop:
		return AnchorBottom
	case HandleTopRight:
		return AnchorBottomLeft
	case HandleLeft:
		return AnchorRight
	case HandleRight:
		return AnchorLeft
	case HandleBottomLeft:
		return AnchorTopRight
	case HandleBottom:
		return AnchorTop
	default:
		return AnchorTopLeft
	}
}

// Viewport converts between device/view coordinates and canvas-pixel
// coordinates under zoom and the outer scroll gutter. All coordinate
// conversions live here so tool logic never performs ad hoc scale
// arithmetic.
type Viewport struct {
	gutter int
	view   image.Point // viewport size, view pixels
	canvas image.Point // canvas size, canvas pixels
	zoom   float64
	zoomed bool
}

// NewViewport creates a viewport with the given gutter width.
// Gutter < 0 uses DefaultGutter.
func NewViewport(gutter int) *Viewport {
	if gutter < 0 {
		gutter = DefaultGutter
	}
	return &Viewport{gutter: gutter, zoom: 1}
}

// SetViewSize records the host viewport size in view pixels.
func (v *Viewport) SetViewSize(sz image.Point) { v.view = sz }

// SetCanvasSize records the canvas size in canvas pixels.
func (v *Viewport) SetCanvasSize(sz image.Point) { v.canvas = sz }

// Zoom returns the current scale factor (1 when not zoomed).
func (v *Viewport) Zoom() float64 { return v.zoom }

// Zoomed reports whether a zoom is active.
func (v *Viewport) Zoomed() bool { return v.zoomed }

// EnterZoom computes a uniform scale so the given canvas-space preview
// rectangle fills the viewport, and activates it. Degenerate inputs
// (empty preview, unknown view size, non-finite result) fall back to a
// scale of 1.
func (v *Viewport) EnterZoom(preview image.Rectangle) {
	preview = preview.Canon()
	scale := 1.0
	if preview.Dx() > 0 && preview.Dy() > 0 && v.view.X > 0 && v.view.Y > 0 {
		scale = math.Min(
			float64(v.view.X)/float64(preview.Dx()),
			float64(v.view.Y)/float64(preview.Dy()),
		)
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		scale = 1
	}
	v.zoom = scale
	v.zoomed = true
}

// ExitZoom resets the scale to 1.
func (v *Viewport) ExitZoom() {
	v.zoom = 1
	v.zoomed = false
}

// ToCanvas maps a view-space point to canvas-pixel coordinates,
// removing the gutter offset and dividing out the zoom factor.
func (v *Viewport) ToCanvas(p image.Point) image.Point {
	return image.Pt(
		int(math.Floor(float64(p.X-v.gutter)/v.zoom)),
		int(math.Floor(float64(p.Y-v.gutter)/v.zoom)),
	)
}

// ToView maps a canvas-pixel point to view-space coordinates.
func (v *Viewport) ToView(p image.Point) image.Point {
	return image.Pt(
		int(math.Round(float64(p.X)*v.zoom))+v.gutter,
		int(math.Round(float64(p.Y)*v.zoom))+v.gutter,
	)
}

// CanvasRect returns the placement of the drawable area inside the
// scrollable view, in view pixels.
func (v *Viewport) CanvasRect() image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(v.gutter, v.gutter),
		Max: v.ToView(v.canvas),
	}
}

// HandleAt hit-tests the eight canvas resize handles at a view-space
// point. Returns HandleNone on a miss.
func (v *Viewport) HandleAt(p image.Point) Handle {
	return handleAt(p, v.CanvasRect())
}

// SelectionHandleAt hit-tests the eight handles of a canvas-space
// rectangle (a floating selection's bounds) at a view-space point.
func (v *Viewport) SelectionHandleAt(p image.Point, sel image.Rectangle) Handle {
	viewRect := image.Rectangle{Min: v.ToView(sel.Min), Max: v.ToView(sel.Max)}
	return handleAt(p, viewRect)
}

// handleAt tests p against the handle positions of a view-space rect.
func handleAt(p image.Point, r image.Rectangle) Handle {
	midX := (r.Min.X + r.Max.X) / 2
	midY := (r.Min.Y + r.Max.Y) / 2
	candidates := []struct {
		h  Handle
		at image.Point
	}{
		{HandleTopLeft, r.Min},
		{HandleTop, image.Pt(midX, r.Min.Y)},
		{HandleTopRight, image.Pt(r.Max.X, r.Min.Y)},
		{HandleLeft, image.Pt(r.Min.X, midY)},
		{HandleRight, image.Pt(r.Max.X, midY)},
		{HandleBottomLeft, image.Pt(r.Min.X, r.Max.Y)},
		{HandleBottom, image.Pt(midX, r.Max.Y)},
		{HandleBottomRight, r.Max},
	}
	for _, c := range candidates {
		if abs(p.X-c.at.X) <= handleHitRadius && abs(p.Y-c.at.Y) <= handleHitRadius {
			return c.h
		}
	}
	return HandleNone
}

// clampCanvasSize applies the interactive-resize floor to a proposed
// canvas size.
func clampCanvasSize(sz image.Point) image.Point {
	if sz.X < MinCanvasSize {
		sz.X = MinCanvasSize
	}
	if sz.Y < MinCanvasSize {
		sz.Y = MinCanvasSize
	}
	return sz
}
