package easel

import (
	"image"
	"math"
)

// dragState tracks a single press-drag-release gesture.
type dragState struct {
	active bool
	start  image.Point // canvas pixels
	last   image.Point
}

// curveState is the curve tool's multi-gesture phase tracker. Phase 0
// captures the chord, phase 1 the first control point, phase 2 the
// second; the final release commits a cubic Bezier.
type curveState struct {
	phase      int
	start, end Point
	ctrl1      Point
	ctrl2      Point
}

// sprayState tracks the spray tool between ticks.
type sprayState struct {
	active bool
	pos    image.Point
}

// selGestureMode is the Select tool's press-time sub-mode.
type selGestureMode int

const (
	selIdle selGestureMode = iota
	selMarquee
	selMove
	selScale
)

// selGestureState tracks an in-progress Select-tool gesture.
type selGestureState struct {
	mode   selGestureMode
	handle Handle
	orig   image.Rectangle // floating bounds at gesture start
}

// --- event entry points --------------------------------------------------

// PointerDown handles a pointer press at view coordinates.
func (c *Controller) PointerDown(viewPt image.Point, mods Modifier) {
	p := c.vp.ToCanvas(viewPt)
	c.notifyStatus(p)

	// A floating selection's handles win over everything else.
	if c.tool == ToolSelect && c.sel.Floating() {
		if h := c.vp.SelectionHandleAt(viewPt, c.sel.Bounds()); h != HandleNone {
			c.selGesture = selGestureState{mode: selScale, handle: h, orig: c.sel.Bounds()}
			c.scalePrev = c.sel.Bounds()
			c.beginDrag(p)
			return
		}
	}

	// Canvas resize handles sit in the gutter, just outside the image.
	// A press that lands on a canvas pixel always goes to the active
	// tool, even inside a handle's hit zone.
	if !p.In(c.surface.Bounds()) && !c.sel.Floating() {
		if h := c.vp.HandleAt(viewPt); h != HandleNone {
			c.resize = &canvasResize{handle: h, size: c.surface.Size()}
			c.beginDrag(p)
			return
		}
	}

	c.beginDrag(p)

	switch {
	case c.tool.isFreehand():
		c.history.Save(c.surface)
		c.stroke = NewPath()
		c.stroke.MoveTo(float64(p.X), float64(p.Y))
		stampBrush(c.surface, p.X, p.Y, c.freehandWidth(), c.freehandColor())
		c.repaint()

	case c.tool.isShape():
		c.shapePrev = image.Rectangle{Min: p, Max: p}

	case c.tool == ToolCurve:
		c.curveDown(p)

	case c.tool == ToolFill:
		c.fillAt(p)

	case c.tool == ToolEyedropper:
		c.color = c.flattened().GetPixel(p.X, p.Y)

	case c.tool == ToolText:
		c.CommitText() // click outside a pending box commits it
		c.shapePrev = image.Rectangle{Min: p, Max: p}

	case c.tool == ToolSpray:
		c.history.Save(c.surface)
		c.spray = sprayState{active: true, pos: p}
		c.sprayBurst()
		c.repaint()

	case c.tool == ToolSelect:
		c.selectDown(p)

	case c.tool == ToolZoom:
		if c.vp.Zoomed() {
			c.vp.ExitZoom()
			c.drag = dragState{}
			c.repaint()
			return
		}
		c.zoomDrag = image.Rectangle{Min: p, Max: p}
	}
}

// PointerDrag handles pointer movement while pressed.
func (c *Controller) PointerDrag(viewPt image.Point, mods Modifier) {
	if !c.drag.active {
		c.PointerHover(viewPt)
		return
	}
	p := c.vp.ToCanvas(viewPt)
	c.notifyStatus(p)

	if c.resize != nil {
		c.resize.size = clampCanvasSize(c.resizeSizeFor(c.resize.handle, p))
		c.drag.last = p
		c.repaint()
		return
	}

	switch {
	case c.tool.isFreehand():
		if c.stroke != nil && p != c.drag.last {
			// Flush the segment immediately so strokes render in real
			// time rather than as one path at release.
			a := Pt(float64(c.drag.last.X), float64(c.drag.last.Y))
			b := Pt(float64(p.X), float64(p.Y))
			strokeSegment(c.surface, a, b, c.freehandWidth(), c.freehandColor())
			c.stroke.LineTo(b.X, b.Y)
			c.repaint()
		}

	case c.tool.isShape(), c.tool == ToolText:
		c.shapePrev = image.Rectangle{Min: c.drag.start, Max: p}.Canon()
		c.repaint()

	case c.tool == ToolCurve:
		c.curveDrag(p)
		c.repaint()

	case c.tool == ToolSpray:
		c.spray.pos = p

	case c.tool == ToolSelect:
		c.selectDrag(p, mods)

	case c.tool == ToolZoom:
		c.zoomDrag = image.Rectangle{Min: c.drag.start, Max: p}.Canon()
		c.repaint()
	}

	c.drag.last = p
}

// PointerUp handles pointer release.
func (c *Controller) PointerUp(viewPt image.Point, mods Modifier) {
	if !c.drag.active {
		return
	}
	p := c.vp.ToCanvas(viewPt)
	c.notifyStatus(p)

	if c.resize != nil {
		c.finishCanvasResize()
		c.drag = dragState{}
		return
	}

	switch {
	case c.tool.isFreehand():
		if c.stroke != nil && !c.stroke.Empty() {
			c.paths.append(newDrawnPath(c.stroke, c.freehandColor(), c.freehandWidth()))
		}
		c.stroke = nil

	case c.tool.isShape():
		c.commitShape(p, mods)

	case c.tool == ToolCurve:
		c.curveUp(p)

	case c.tool == ToolText:
		r := image.Rectangle{Min: c.drag.start, Max: p}.Canon()
		if r.Dx() >= 4 && r.Dy() >= 4 {
			c.textBox = &TextBox{Rect: r}
		}
		c.shapePrev = image.Rectangle{}

	case c.tool == ToolSpray:
		c.spray = sprayState{}

	case c.tool == ToolSelect:
		c.selectUp(p)

	case c.tool == ToolZoom:
		c.finishZoom(p)
	}

	c.drag = dragState{}
	c.repaint()
}

// PointerHover handles pointer movement with no button pressed; it only
// feeds the status listener.
func (c *Controller) PointerHover(viewPt image.Point) {
	c.notifyStatus(c.vp.ToCanvas(viewPt))
}

// KeyPress handles the editing keys the core reacts to.
func (c *Controller) KeyPress(k Key, mods Modifier) {
	switch k {
	case KeyEscape:
		c.handleEscape()
	case KeyReturn:
		c.handleReturn(mods)
	case KeyDelete:
		c.DeleteSelectionOrOverlay()
	case KeyLeft:
		c.nudgeSelection(image.Pt(-1, 0))
	case KeyRight:
		c.nudgeSelection(image.Pt(1, 0))
	case KeyUp:
		c.nudgeSelection(image.Pt(0, -1))
	case KeyDown:
		c.nudgeSelection(image.Pt(0, 1))
	}
}

func (c *Controller) handleEscape() {
	switch {
	case c.curve.phase != 0 || (c.tool == ToolCurve && c.drag.active):
		// Abort the curve preview without committing.
		c.curve = curveState{}
		c.drag = dragState{}
		c.repaint()
	case c.textBox != nil:
		c.CancelText()
	case c.tool == ToolZoom && c.drag.active:
		c.zoomDrag = image.Rectangle{}
		c.drag = dragState{}
		c.repaint()
	case c.sel.Floating() && c.sel.FromPaste():
		c.sel.Discard()
		c.repaint()
	case c.sel.Floating():
		c.CommitSelection()
	default:
		c.sel.Discard()
	}
}

func (c *Controller) handleReturn(mods Modifier) {
	if c.textBox != nil {
		if mods&ModShift != 0 {
			c.textBox.Content += "\n"
			return
		}
		c.CommitText()
		return
	}
	if c.sel.Floating() {
		c.CommitSelection()
	}
}

// nudgeSelection moves floating content by one pixel. The first nudge
// punches the source hole; repeats never clear again.
func (c *Controller) nudgeSelection(delta image.Point) {
	if !c.sel.Floating() {
		return
	}
	if !c.sel.Lifted() {
		c.history.Save(c.surface)
	}
	c.sel.MoveBy(c.surface, c.bg, delta)
	c.repaint()
}

// --- freehand ------------------------------------------------------------

// freehandWidth returns the stamp diameter for the active freehand tool.
// The pencil is fixed at 1; the eraser strokes at twice the tool size.
func (c *Controller) freehandWidth() int {
	switch c.tool {
	case ToolPencil:
		return 1
	case ToolEraser:
		return c.toolSize * 2
	default:
		return c.toolSize
	}
}

// freehandColor returns the stroke color: the eraser always paints with
// the background color.
func (c *Controller) freehandColor() RGBA {
	if c.tool == ToolEraser {
		return c.bg
	}
	return c.color
}

// --- shapes --------------------------------------------------------------

// ShapePreview returns the in-progress shape/text/marquee rectangle for
// host-side preview drawing. ok is false when no drag is in progress.
func (c *Controller) ShapePreview() (image.Rectangle, bool) {
	if c.shapePrev.Empty() {
		return image.Rectangle{}, false
	}
	return c.shapePrev, true
}

// commitShape rasterizes the dragged shape outline into the base
// surface and records a DrawnPath.
func (c *Controller) commitShape(p image.Point, mods Modifier) {
	start := c.drag.start
	end := p
	if mods&ModShift != 0 {
		end = constrainShape(c.tool, start, end)
	}
	c.shapePrev = image.Rectangle{}

	path := NewPath()
	switch c.tool {
	case ToolLine:
		path.MoveTo(float64(start.X), float64(start.Y))
		path.LineTo(float64(end.X), float64(end.Y))
	case ToolRect:
		r := image.Rectangle{Min: start, Max: end}.Canon()
		path.Rectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	case ToolRoundRect:
		r := image.Rectangle{Min: start, Max: end}.Canon()
		path.RoundedRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), 8)
	case ToolEllipse:
		r := image.Rectangle{Min: start, Max: end}.Canon()
		cx := float64(r.Min.X) + float64(r.Dx())/2
		cy := float64(r.Min.Y) + float64(r.Dy())/2
		path.Ellipse(cx, cy, float64(r.Dx())/2, float64(r.Dy())/2)
	default:
		return
	}

	c.history.Save(c.surface)
	if c.shapeFill && c.tool != ToolLine {
		fillPath(c.surface, path, c.bg)
	}
	strokePath(c.surface, path, c.toolSize, c.color)
	c.paths.append(newDrawnPath(path, c.color, c.toolSize))
}

// constrainShape applies the shift constraint: lines snap to 45-degree
// multiples, closed shapes force equal width/height.
func constrainShape(t Tool, start, end image.Point) image.Point {
	dx := end.X - start.X
	dy := end.Y - start.Y

	if t == ToolLine {
		angle := math.Atan2(float64(dy), float64(dx))
		snapped := math.Round(angle/(math.Pi/4)) * (math.Pi / 4)
		length := math.Hypot(float64(dx), float64(dy))
		return image.Pt(
			start.X+int(math.Round(length*math.Cos(snapped))),
			start.Y+int(math.Round(length*math.Sin(snapped))),
		)
	}

	side := max(abs(dx), abs(dy))
	sx, sy := 1, 1
	if dx < 0 {
		sx = -1
	}
	if dy < 0 {
		sy = -1
	}
	return image.Pt(start.X+sx*side, start.Y+sy*side)
}

// --- curve tool ----------------------------------------------------------

func (c *Controller) curveDown(p image.Point) {
	fp := Pt(float64(p.X), float64(p.Y))
	switch c.curve.phase {
	case 0:
		c.curve.start = fp
		c.curve.end = fp
	case 1:
		c.curve.ctrl1 = fp
	case 2:
		c.curve.ctrl2 = fp
	}
}

func (c *Controller) curveDrag(p image.Point) {
	fp := Pt(float64(p.X), float64(p.Y))
	switch c.curve.phase {
	case 0:
		c.curve.end = fp
	case 1:
		c.curve.ctrl1 = fp
	case 2:
		c.curve.ctrl2 = fp
	}
}

func (c *Controller) curveUp(p image.Point) {
	c.curveDrag(p)
	switch c.curve.phase {
	case 0:
		c.curve.ctrl1 = c.curve.start.Lerp(c.curve.end, 1.0/3)
		c.curve.ctrl2 = c.curve.start.Lerp(c.curve.end, 2.0/3)
		c.curve.phase = 1
	case 1:
		c.curve.phase = 2
	case 2:
		path := NewPath()
		path.MoveTo(c.curve.start.X, c.curve.start.Y)
		path.CubicTo(
			c.curve.ctrl1.X, c.curve.ctrl1.Y,
			c.curve.ctrl2.X, c.curve.ctrl2.Y,
			c.curve.end.X, c.curve.end.Y,
		)
		c.history.Save(c.surface)
		strokePath(c.surface, path, c.toolSize, c.color)
		c.paths.append(newDrawnPath(path, c.color, c.toolSize))
		c.curve = curveState{}
	}
}

// CurvePreview returns the in-progress curve path for host-side preview
// drawing, or nil when the curve tool is idle.
func (c *Controller) CurvePreview() *Path {
	if c.tool != ToolCurve {
		return nil
	}
	if c.curve.phase == 0 && !c.drag.active {
		return nil
	}
	path := NewPath()
	path.MoveTo(c.curve.start.X, c.curve.start.Y)
	switch c.curve.phase {
	case 0:
		path.LineTo(c.curve.end.X, c.curve.end.Y)
	case 1:
		path.QuadraticTo(c.curve.ctrl1.X, c.curve.ctrl1.Y, c.curve.end.X, c.curve.end.Y)
	default:
		path.CubicTo(
			c.curve.ctrl1.X, c.curve.ctrl1.Y,
			c.curve.ctrl2.X, c.curve.ctrl2.Y,
			c.curve.end.X, c.curve.end.Y,
		)
	}
	return path
}

// --- fill ----------------------------------------------------------------

// fillAt runs a flood fill at the clicked point and purges stroke
// records the filled region fully covers.
func (c *Controller) fillAt(p image.Point) {
	tr, tg, tb, ta, ok := c.surface.pixelAt(p.X, p.Y)
	if !ok {
		return
	}
	rr, rg, rb, ra := c.color.bytes()
	if tr == rr && tg == rg && tb == rb && ta == ra {
		return
	}
	c.history.Save(c.surface)
	res := FloodFill(c.surface, p.X, p.Y, c.color, c.cfg.FloodFillCap)
	c.paths.purgeCovered(res)
	c.repaint()
}

// --- spray ---------------------------------------------------------------

// SprayTick deposits one spray burst at the current pointer position.
// The host's event loop calls this on a repeating timer while the spray
// tool is pressed; it is a no-op otherwise. Deposit density and radius
// are fixed, independent of pointer speed.
func (c *Controller) SprayTick() {
	if !c.spray.active {
		return
	}
	c.sprayBurst()
	c.repaint()
}

// sprayBurst stamps a cluster of random points around the spray position.
func (c *Controller) sprayBurst() {
	radius := float64(c.cfg.SprayRadius)
	for i := 0; i < c.cfg.SprayDensity; i++ {
		// Uniform over the disc.
		ang := c.rng.Float64() * 2 * math.Pi
		r := radius * math.Sqrt(c.rng.Float64())
		x := c.spray.pos.X + int(math.Round(r*math.Cos(ang)))
		y := c.spray.pos.Y + int(math.Round(r*math.Sin(ang)))
		c.surface.SetPixel(x, y, c.color)
	}
}

// --- select tool ---------------------------------------------------------

func (c *Controller) selectDown(p image.Point) {
	if c.sel.Floating() {
		if p.In(c.sel.Bounds()) {
			c.selGesture = selGestureState{mode: selMove, orig: c.sel.Bounds()}
			return
		}
		// Click outside the floating rect commits it, then a new
		// marquee starts at the click point.
		c.CommitSelection()
	}
	c.selGesture = selGestureState{mode: selMarquee}
	c.sel.StartMarquee(image.Rectangle{Min: p, Max: p})
}

func (c *Controller) selectDrag(p image.Point, mods Modifier) {
	switch c.selGesture.mode {
	case selMarquee:
		c.sel.UpdateMarquee(image.Rectangle{Min: c.drag.start, Max: p})
		c.repaint()
	case selMove:
		delta := p.Sub(c.drag.last)
		if delta != (image.Point{}) {
			if !c.sel.Lifted() {
				c.history.Save(c.surface)
			}
			c.sel.MoveBy(c.surface, c.bg, delta)
			c.repaint()
		}
	case selScale:
		c.scalePrev = scaleRectByHandle(c.selGesture.orig, c.selGesture.handle, p, mods&ModShift != 0)
		c.repaint()
	}
}

func (c *Controller) selectUp(p image.Point) {
	switch c.selGesture.mode {
	case selMarquee:
		r := c.sel.Bounds()
		if r.Dx() > 0 && r.Dy() > 0 {
			c.sel.FloatFromBase(c.surface, r)
		} else {
			c.sel.Discard()
		}
	case selScale:
		if !c.scalePrev.Empty() && c.scalePrev != c.selGesture.orig {
			if !c.sel.Lifted() {
				c.history.Save(c.surface)
			}
			c.sel.Rescale(c.surface, c.bg, c.scalePrev)
		}
		c.scalePrev = image.Rectangle{}
	}
	c.selGesture = selGestureState{}
}

// ScalePreview returns the floating selection's proposed bounds during
// a handle drag, for host-side preview drawing.
func (c *Controller) ScalePreview() (image.Rectangle, bool) {
	if c.selGesture.mode != selScale {
		return image.Rectangle{}, false
	}
	return c.scalePrev, true
}

// scaleRectByHandle moves the dragged corner/edge of r to p while the
// opposite corner/edge stays fixed. With aspectLock, corner drags keep
// the original aspect ratio.
func scaleRectByHandle(r image.Rectangle, h Handle, p image.Point, aspectLock bool) image.Rectangle {
	out := r
	switch h {
	case HandleTopLeft:
		out.Min = p
	case HandleTop:
		out.Min.Y = p.Y
	case HandleTopRight:
		out.Max.X, out.Min.Y = p.X, p.Y
	case HandleLeft:
		out.Min.X = p.X
	case HandleRight:
		out.Max.X = p.X
	case HandleBottomLeft:
		out.Min.X, out.Max.Y = p.X, p.Y
	case HandleBottom:
		out.Max.Y = p.Y
	case HandleBottomRight:
		out.Max = p
	}
	out = out.Canon()
	if out.Dx() < 1 {
		out.Max.X = out.Min.X + 1
	}
	if out.Dy() < 1 {
		out.Max.Y = out.Min.Y + 1
	}

	if aspectLock && r.Dx() > 0 && r.Dy() > 0 && isCorner(h) {
		scale := math.Max(
			float64(out.Dx())/float64(r.Dx()),
			float64(out.Dy())/float64(r.Dy()),
		)
		w := int(math.Round(float64(r.Dx()) * scale))
		h2 := int(math.Round(float64(r.Dy()) * scale))
		// Re-anchor on the fixed corner.
		switch h {
		case HandleTopLeft:
			out = image.Rect(r.Max.X-w, r.Max.Y-h2, r.Max.X, r.Max.Y)
		case HandleTopRight:
			out = image.Rect(r.Min.X, r.Max.Y-h2, r.Min.X+w, r.Max.Y)
		case HandleBottomLeft:
			out = image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Min.Y+h2)
		case HandleBottomRight:
			out = image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Min.Y+h2)
		}
	}
	return out
}

func isCorner(h Handle) bool {
	switch h {
	case HandleTopLeft, HandleTopRight, HandleBottomLeft, HandleBottomRight:
		return true
	}
	return false
}

// --- zoom ----------------------------------------------------------------

// finishZoom enters zoom for the dragged preview rectangle, or for a
// quarter-viewport box around the click when the drag was trivial.
func (c *Controller) finishZoom(p image.Point) {
	preview := c.zoomDrag
	c.zoomDrag = image.Rectangle{}
	if preview.Dx() < 2 || preview.Dy() < 2 {
		view := c.vp.view
		if view.X < 4 || view.Y < 4 {
			return
		}
		preview = image.Rect(0, 0, view.X/4, view.Y/4).Add(
			p.Sub(image.Pt(view.X/8, view.Y/8)))
	}
	c.vp.EnterZoom(preview)
}

// ZoomPreview returns the in-progress zoom preview rectangle.
func (c *Controller) ZoomPreview() (image.Rectangle, bool) {
	if c.tool != ToolZoom || c.zoomDrag.Empty() {
		return image.Rectangle{}, false
	}
	return c.zoomDrag, true
}

// --- canvas resize -------------------------------------------------------

// resizeSizeFor computes the proposed canvas size while dragging a
// resize handle: the dragged edge follows the pointer, the opposite
// edge stays anchored.
func (c *Controller) resizeSizeFor(h Handle, p image.Point) image.Point {
	sz := c.surface.Size()
	switch h {
	case HandleRight, HandleTopRight, HandleBottomRight:
		sz.X = p.X
	case HandleLeft, HandleTopLeft, HandleBottomLeft:
		sz.X = c.surface.Width() - p.X
	}
	switch h {
	case HandleBottom, HandleBottomLeft, HandleBottomRight:
		sz.Y = p.Y
	case HandleTop, HandleTopLeft, HandleTopRight:
		sz.Y = c.surface.Height() - p.Y
	}
	return sz
}

// CanvasResizePreview returns the proposed canvas size during a
// resize-handle drag.
func (c *Controller) CanvasResizePreview() (image.Point, bool) {
	if c.resize == nil {
		return image.Point{}, false
	}
	return c.resize.size, true
}

// finishCanvasResize rebuilds the surface at the dragged size, copying
// the surviving region 1:1 from the anchor opposite the handle.
func (c *Controller) finishCanvasResize() {
	r := c.resize
	c.resize = nil
	if r.size == c.surface.Size() {
		return
	}
	c.history.Save(c.surface)
	c.surface = c.surface.ResizeAnchored(r.size.X, r.size.Y, r.handle.Anchor(), c.bg)
	c.vp.SetCanvasSize(c.surface.Size())
	c.paths.purgeOutside(c.surface.Bounds())
	// Any in-progress path cache would reference old coordinates.
	c.stroke = nil
	c.curve = curveState{}
	c.repaint()
}

// --- text tool -----------------------------------------------------------

// TextBox returns the pending text box, if any.
func (c *Controller) TextBox() (*TextBox, bool) {
	if c.textBox == nil {
		return nil, false
	}
	return c.textBox, true
}

// SetTextContent replaces the pending text box's content as the host's
// transient field changes.
func (c *Controller) SetTextContent(s string) {
	if c.textBox == nil {
		return
	}
	c.textBox.Content = s
}

// CommitText rasterizes the pending text into the base surface and
// removes the box. A box with empty content is simply dismissed.
func (c *Controller) CommitText() {
	tb := c.textBox
	c.textBox = nil
	if tb == nil {
		return
	}
	if tb.Content == "" || c.face == nil {
		return
	}
	c.history.Save(c.surface)
	drawText(c.surface, tb.Content, tb.Rect, c.color, c.face)
	c.repaint()
}

// CancelText discards the pending text box without rasterizing.
func (c *Controller) CancelText() {
	c.textBox = nil
	c.repaint()
}

// beginDrag initializes per-gesture tracking.
func (c *Controller) beginDrag(p image.Point) {
	c.drag = dragState{active: true, start: p, last: p}
}
