package easel

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math/rand/v2"

	"golang.org/x/image/font"
)

// StatusUpdate carries the values an external status bar displays.
type StatusUpdate struct {
	// Cursor is the pointer position in canvas pixels.
	Cursor image.Point

	// SelectionSize is the active marquee/selection size, zero when none.
	SelectionSize image.Point
}

// StatusFunc receives a StatusUpdate on every pointer move.
type StatusFunc func(StatusUpdate)

// TextBox is the pending text-tool entry rectangle. The transient
// editable field itself belongs to the host UI; the core only tracks the
// box and the content to rasterize on commit.
type TextBox struct {
	Rect    image.Rectangle
	Content string
}

// canvasResize tracks an in-progress resize-handle drag. During the
// drag only the proposed size updates (cheap); the surface is rebuilt
// once on release.
type canvasResize struct {
	handle Handle
	size   image.Point
}

// Controller is the façade that wires the editing core together: the
// base surface, tool state machine, selection lifecycle, undo history,
// and viewport mapping. It owns all of them exclusively; every method
// must be called from the host's single event loop.
type Controller struct {
	cfg       Config
	bg        RGBA
	color     RGBA
	toolSize  int
	tool      Tool
	shapeFill bool

	surface *Surface
	history *History
	paths   pathLog
	sel     Selection
	vp      *Viewport

	face      font.Face
	statusFn  StatusFunc
	repaintFn func()
	rng       *rand.Rand

	// Transient gesture state. Reset wholesale by undo/redo.
	drag        dragState
	stroke      *Path
	curve       curveState
	spray       sprayState
	textBox     *TextBox
	shapePrev   image.Rectangle
	zoomDrag    image.Rectangle
	resize      *canvasResize
	selGesture  selGestureState
	scalePrev   image.Rectangle
}

// NewController creates a controller with a white canvas of the given
// size (clamped to 1x1 minimum).
func NewController(width, height int, opts ...Option) *Controller {
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cfg := o.config.withDefaults()

	bg := cfg.backgroundColor()
	if o.background != nil {
		bg = *o.background
	}

	face := o.face
	if face == nil {
		var err error
		face, err = defaultFace()
		if err != nil {
			// The embedded font is known-good; a parse failure leaves the
			// text tool inert rather than failing construction.
			Logger().Warn("default font unavailable", "err", err)
		}
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	c := &Controller{
		cfg:       cfg,
		bg:        bg,
		color:     Black,
		toolSize:  cfg.ToolSize,
		tool:      ToolPencil,
		surface:   NewSurfaceFilled(width, height, bg),
		history:   NewHistory(cfg.HistoryDepth),
		vp:        NewViewport(cfg.Gutter),
		face:      face,
		statusFn:  o.statusFn,
		repaintFn: o.repaintFn,
		rng:       rng,
	}
	c.vp.SetCanvasSize(c.surface.Size())
	return c
}

// Surface returns the live base surface. The host renders it (plus the
// floating overlay) but must not mutate it directly.
func (c *Controller) Surface() *Surface { return c.surface }

// Viewport returns the coordinate mapper, for host-side rendering of
// handles, gutter and zoom.
func (c *Controller) Viewport() *Viewport { return c.vp }

// Selection returns the selection state, for host-side overlay drawing.
func (c *Controller) Selection() *Selection { return &c.sel }

// DrawnPaths returns the committed stroke records, oldest first.
func (c *Controller) DrawnPaths() []DrawnPath { return c.paths.all() }

// ActiveTool returns the active tool.
func (c *Controller) ActiveTool() Tool { return c.tool }

// SetActiveTool switches the active tool. Switching to anything other
// than Select first commits any floating selection; entering the curve
// tool resets its phase; a pending text box is committed.
func (c *Controller) SetActiveTool(t Tool) {
	if t == c.tool {
		return
	}
	Logger().Debug("tool switch", "from", c.tool.String(), "to", t.String())

	if t != ToolSelect {
		c.CommitSelection()
	}
	c.CommitText()
	c.curve = curveState{}
	c.spray = sprayState{}
	c.stroke = nil
	c.drag = dragState{}
	c.tool = t
}

// ActiveColor returns the active drawing color.
func (c *Controller) ActiveColor() RGBA { return c.color }

// SetActiveColor sets the active drawing color.
func (c *Controller) SetActiveColor(col RGBA) { c.color = col }

// BackgroundColor returns the background color.
func (c *Controller) BackgroundColor() RGBA { return c.bg }

// SetBackgroundColor sets the background color used by the eraser,
// selection holes and newly exposed canvas area.
func (c *Controller) SetBackgroundColor(col RGBA) { c.bg = col }

// ToolSize returns the active tool size in pixels.
func (c *Controller) ToolSize() int { return c.toolSize }

// SetToolSize sets the brush/stroke width. Clamped to [1, 64].
func (c *Controller) SetToolSize(px int) {
	if px < 1 {
		px = 1
	}
	if px > 64 {
		px = 64
	}
	c.toolSize = px
}

// ShapeFilled reports whether closed shapes are drawn filled.
func (c *Controller) ShapeFilled() bool { return c.shapeFill }

// SetShapeFill toggles the filled style for closed shapes: the interior
// is filled with the background color underneath the stroked outline.
// Lines are unaffected.
func (c *Controller) SetShapeFill(on bool) { c.shapeFill = on }

// SetViewSize records the host viewport size, needed for zoom fitting
// and resize-handle hit testing.
func (c *Controller) SetViewSize(sz image.Point) { c.vp.SetViewSize(sz) }

// --- document operations -------------------------------------------------

// LoadImage replaces the document with the given image. All selection,
// history and stroke state is discarded.
func (c *Controller) LoadImage(img image.Image) {
	c.sel.Discard()
	c.resetTransient()
	c.surface = FromImage(img)
	c.history = NewHistory(c.cfg.HistoryDepth)
	c.paths.clear()
	c.vp.SetCanvasSize(c.surface.Size())
	Logger().Info("document loaded", "w", c.surface.Width(), "h", c.surface.Height())
	c.repaint()
}

// LoadRGBA replaces the document from a raw RGBA8 buffer.
func (c *Controller) LoadRGBA(pix []uint8, width, height int) error {
	if width < 1 || height < 1 || len(pix) != width*height*4 {
		return fmt.Errorf("invalid buffer: %d bytes for %dx%d", len(pix), width, height)
	}
	s := NewSurface(width, height)
	copy(s.data, pix)
	c.sel.Discard()
	c.resetTransient()
	c.surface = s
	c.history = NewHistory(c.cfg.HistoryDepth)
	c.paths.clear()
	c.vp.SetCanvasSize(s.Size())
	c.repaint()
	return nil
}

// flattened returns the fully composited render: the base surface with
// any floating selection drawn over it. The eyedropper samples this, so
// picked colors reflect exactly what is visible.
func (c *Controller) flattened() *Surface {
	if !c.sel.Floating() {
		return c.surface
	}
	out := c.surface.Clone()
	out.CompositeOver(c.sel.Bitmap(), c.sel.Bounds().Min)
	return out
}

// ExportFlattened returns the composited raster for the host's encoder.
func (c *Controller) ExportFlattened() *image.RGBA {
	return c.flattened().ToImage()
}

// ExportRGBA returns the composited raster as a raw RGBA8 buffer plus
// its dimensions.
func (c *Controller) ExportRGBA() ([]uint8, int, int) {
	f := c.flattened()
	if f == c.surface {
		f = c.surface.Clone()
	}
	return f.Data(), f.Width(), f.Height()
}

// ExportPNG writes the composited raster as PNG.
func (c *Controller) ExportPNG(w io.Writer) error {
	return c.flattened().EncodePNG(w)
}

// LoadPNG replaces the document with a decoded PNG stream.
func (c *Controller) LoadPNG(r io.Reader) error {
	img, err := png.Decode(r)
	if err != nil {
		return fmt.Errorf("failed to decode png: %w", err)
	}
	c.LoadImage(img)
	return nil
}

// SetCanvasSize resizes the canvas with the given anchor policy. The
// surviving region is copied 1:1; new area is filled with the
// background color. Any floating selection is committed first.
func (c *Controller) SetCanvasSize(width, height int, anchor Anchor) {
	if width < 1 || height < 1 {
		return
	}
	c.CommitSelection()
	if width == c.surface.Width() && height == c.surface.Height() {
		return
	}
	c.history.Save(c.surface)
	c.surface = c.surface.ResizeAnchored(width, height, anchor, c.bg)
	c.vp.SetCanvasSize(c.surface.Size())
	c.paths.purgeOutside(c.surface.Bounds())
	// Geometry drawn at old coordinates must not reappear.
	c.stroke = nil
	c.curve = curveState{}
	Logger().Info("canvas resized", "w", width, "h", height)
	c.repaint()
}

// ClearCanvas fills the canvas with the background color and drops all
// committed stroke records.
func (c *Controller) ClearCanvas() {
	c.sel.Discard()
	c.history.Save(c.surface)
	c.surface.Clear(c.bg)
	c.paths.clear()
	c.repaint()
}

// Undo restores the most recent snapshot. No-op when the undo stack is
// empty. Restoring also resets transient tool and zoom state to a
// consistent baseline.
func (c *Controller) Undo() {
	snap, ok := c.history.Undo(c.surface)
	if !ok {
		return
	}
	c.applySnapshot(snap)
}

// Redo reverses the most recent undo. No-op when the redo stack is empty.
func (c *Controller) Redo() {
	snap, ok := c.history.Redo(c.surface)
	if !ok {
		return
	}
	c.applySnapshot(snap)
}

// CanUndo reports whether Undo will have an effect.
func (c *Controller) CanUndo() bool { return c.history.CanUndo() }

// CanRedo reports whether Redo will have an effect.
func (c *Controller) CanRedo() bool { return c.history.CanRedo() }

// applySnapshot installs a history snapshot and resets transient state.
func (c *Controller) applySnapshot(snap Snapshot) {
	c.surface = snap.Surface
	c.vp.SetCanvasSize(snap.Size)
	c.sel.Discard()
	// Committed-stroke records predate the restored raster.
	c.paths.clear()
	c.resetTransient()
	c.vp.ExitZoom()
	c.repaint()
}

// resetTransient drops all in-progress gesture state.
func (c *Controller) resetTransient() {
	c.drag = dragState{}
	c.stroke = nil
	c.curve = curveState{}
	c.spray = sprayState{}
	c.textBox = nil
	c.shapePrev = image.Rectangle{}
	c.zoomDrag = image.Rectangle{}
	c.resize = nil
	c.selGesture = selGestureState{}
	c.scalePrev = image.Rectangle{}
}

// --- selection / clipboard ----------------------------------------------

// CommitSelection composites any floating selection onto the base
// surface at its current position, clipped to the canvas. No-op when
// nothing floats.
func (c *Controller) CommitSelection() {
	if !c.sel.Floating() {
		c.sel.Discard()
		return
	}
	c.history.Save(c.surface)
	c.sel.Commit(c.surface)
	c.repaint()
}

// CopySelection returns a copy of the floating content, or of the
// marquee region if nothing has been lifted yet. Nil when there is no
// selection. The base surface is not modified.
func (c *Controller) CopySelection() *Surface {
	switch c.sel.Kind() {
	case SelectionFloating:
		return c.sel.Bitmap().Clone()
	case SelectionMarquee:
		return c.surface.CopyRegion(c.sel.Bounds())
	default:
		return nil
	}
}

// CutSelection returns the selection content and removes it from the
// base surface (the source hole is filled with background color).
func (c *Controller) CutSelection() *Surface {
	if c.sel.Kind() == SelectionMarquee {
		if !c.sel.FloatFromBase(c.surface, c.sel.Bounds()) {
			return nil
		}
	}
	if !c.sel.Floating() {
		return nil
	}
	bm := c.sel.Bitmap().Clone()
	if !c.sel.Lifted() {
		// The base only changes when the source hole still has to be
		// punched. Pastes and already-moved selections leave it alone.
		c.history.Save(c.surface)
		c.sel.MoveBy(c.surface, c.bg, image.Point{})
	}
	c.sel.Discard()
	c.repaint()
	return bm
}

// PasteImage introduces external content as a floating overlay at the
// canvas origin and forces the active tool to Select so move/resize
// gestures apply uniformly. Any existing floating selection is
// committed first.
func (c *Controller) PasteImage(img image.Image) {
	if img == nil {
		return
	}
	c.CommitSelection()
	c.sel.FloatBitmap(FromImage(img), image.Point{})
	c.tool = ToolSelect
	c.repaint()
}

// SelectAll lifts the whole canvas into a floating selection and
// activates the Select tool.
func (c *Controller) SelectAll() {
	c.CommitSelection()
	c.sel.FloatFromBase(c.surface, c.surface.Bounds())
	c.tool = ToolSelect
	c.repaint()
}

// DeleteSelectionOrOverlay discards an uncommitted paste, or deletes a
// lifted selection by filling its current position with the background
// color. No-op when nothing is selected.
func (c *Controller) DeleteSelectionOrOverlay() {
	switch {
	case c.sel.Floating() && c.sel.FromPaste():
		c.sel.Discard()
	case c.sel.Floating():
		c.history.Save(c.surface)
		c.sel.DeleteOnBase(c.surface, c.bg)
	default:
		c.sel.Discard()
	}
	c.repaint()
}

// --- transforms ----------------------------------------------------------

// ApplyFlipRotate flips and/or rotates the floating selection if one is
// present, else the whole canvas. Degrees may be any angle; non-180
// multiples grow the output to the rotated bounding box.
func (c *Controller) ApplyFlipRotate(flipH, flipV bool, degrees float64) {
	apply := func(s *Surface) *Surface {
		if flipH {
			s = FlipH(s)
		}
		if flipV {
			s = FlipV(s)
		}
		if degrees != 0 {
			s = Rotate(s, degrees, c.bg)
		}
		return s
	}
	c.applyToTarget(apply)
}

// ApplyStretchSkew scales by the given percentages and shears by the
// given angles, applied to the floating selection if one is present,
// else the whole canvas.
func (c *Controller) ApplyStretchSkew(scaleX, scaleY, skewX, skewY float64) {
	apply := func(s *Surface) *Surface {
		if scaleX != 100 || scaleY != 100 {
			s = ScalePercent(s, scaleX, scaleY)
		}
		if skewX != 0 || skewY != 0 {
			s = Shear(s, skewX, skewY, c.bg)
		}
		return s
	}
	c.applyToTarget(apply)
}

// applyToTarget runs a surface transform against the floating selection
// or the whole canvas.
func (c *Controller) applyToTarget(apply func(*Surface) *Surface) {
	if c.sel.Floating() {
		c.history.Save(c.surface) // the lift below may punch the hole
		c.sel.replaceBitmap(c.surface, c.bg, apply(c.sel.Bitmap()))
		c.repaint()
		return
	}
	c.history.Save(c.surface)
	c.surface = apply(c.surface)
	c.vp.SetCanvasSize(c.surface.Size())
	// Records hold pre-transform geometry.
	c.paths.clear()
	c.repaint()
}

// repaint asks the host to redraw.
func (c *Controller) repaint() {
	if c.repaintFn != nil {
		c.repaintFn()
	}
}

// notifyStatus pushes cursor and selection size to the status listener.
func (c *Controller) notifyStatus(cursor image.Point) {
	if c.statusFn == nil {
		return
	}
	c.statusFn(StatusUpdate{
		Cursor:        cursor,
		SelectionSize: c.sel.Bounds().Size(),
	})
}
