package easel

import "image"

// SelectionKind is the tag of the selection state machine. The three
// variants replace the overlapping boolean flags a selection/paste
// overlay otherwise accumulates (is-pasting, is-dragging-paste, ...),
// so impossible flag combinations cannot be represented.
type SelectionKind int

const (
	// SelectionNone means no marquee or floating content exists.
	SelectionNone SelectionKind = iota

	// SelectionMarquee means a Select-tool drag is defining a rectangle;
	// no pixels have been lifted yet.
	SelectionMarquee

	// SelectionFloating means a bitmap is lifted off the base surface and
	// displayed as an overlay, not yet merged back in.
	SelectionFloating
)

// Selection models the floating-selection/paste overlay: the lifted
// bitmap, its placement, and the exactly-once hole punched in the base
// surface when the floating content first moves.
//
// At most one selection or paste is active at a time. The lifecycle is
//
//	none -> marquee -> floating(clean) -> floating(lifted) -> committed/cancelled
//
// where "lifted" means the original source rectangle has been cleared on
// the base surface. Paste enters directly at floating with no source
// rectangle to clear.
type Selection struct {
	kind      SelectionKind
	marquee   image.Rectangle
	bitmap    *Surface
	origin    image.Point
	source    image.Rectangle
	lifted    bool
	fromPaste bool
}

// Kind returns the current state tag.
func (sel *Selection) Kind() SelectionKind { return sel.kind }

// Floating reports whether lifted content is overlaying the base.
func (sel *Selection) Floating() bool { return sel.kind == SelectionFloating }

// FromPaste reports whether the floating content came from a paste
// rather than a marquee lift.
func (sel *Selection) FromPaste() bool { return sel.fromPaste }

// Lifted reports whether the source rectangle has already been cleared
// from the base. It flips exactly once per float.
func (sel *Selection) Lifted() bool { return sel.lifted }

// Bitmap returns the floating bitmap, or nil when nothing floats.
func (sel *Selection) Bitmap() *Surface {
	if sel.kind != SelectionFloating {
		return nil
	}
	return sel.bitmap
}

// Bounds returns the rectangle of the marquee or the floating content's
// current placement. Zero rectangle when no selection exists.
func (sel *Selection) Bounds() image.Rectangle {
	switch sel.kind {
	case SelectionMarquee:
		return sel.marquee
	case SelectionFloating:
		return image.Rectangle{Min: sel.origin, Max: sel.origin.Add(sel.bitmap.Size())}
	default:
		return image.Rectangle{}
	}
}

// StartMarquee begins a marquee drag.
func (sel *Selection) StartMarquee(r image.Rectangle) {
	sel.reset()
	sel.kind = SelectionMarquee
	sel.marquee = r.Canon()
}

// UpdateMarquee replaces the marquee rectangle during a drag. No-op
// outside the marquee state.
func (sel *Selection) UpdateMarquee(r image.Rectangle) {
	if sel.kind != SelectionMarquee {
		return
	}
	sel.marquee = r.Canon()
}

// FloatFromBase captures the marquee rectangle's pixels into an owned
// bitmap and enters the floating state. The source area on the base
// surface is NOT cleared yet; that happens on the first move. Returns
// false if the clipped rectangle is empty.
func (sel *Selection) FloatFromBase(base *Surface, r image.Rectangle) bool {
	r = r.Canon().Intersect(base.Bounds())
	bm := base.CopyRegion(r)
	if bm == nil {
		sel.reset()
		return false
	}
	sel.reset()
	sel.kind = SelectionFloating
	sel.bitmap = bm
	sel.origin = r.Min
	sel.source = r
	return true
}

// FloatBitmap enters the floating state with externally supplied content
// (paste). There is no source hole to punch, so the state starts lifted.
func (sel *Selection) FloatBitmap(bm *Surface, origin image.Point) {
	if bm == nil {
		return
	}
	sel.reset()
	sel.kind = SelectionFloating
	sel.bitmap = bm
	sel.origin = origin
	sel.lifted = true
	sel.fromPaste = true
}

// MoveBy relocates floating content by delta. The first user-initiated
// move clears the original source rectangle on the base surface exactly
// once; repeated nudges never clear again.
func (sel *Selection) MoveBy(base *Surface, bg RGBA, delta image.Point) {
	if sel.kind != SelectionFloating {
		return
	}
	sel.lift(base, bg)
	sel.origin = sel.origin.Add(delta)
}

// lift punches the one-time hole for marquee-lifted content.
func (sel *Selection) lift(base *Surface, bg RGBA) {
	if sel.lifted {
		return
	}
	base.FillRect(sel.source, bg)
	sel.lifted = true
}

// Rescale resamples the floating bitmap into the given placement
// rectangle (nearest-neighbor) and moves it there. The base surface is
// never touched; handle-anchor arithmetic is the caller's concern.
func (sel *Selection) Rescale(base *Surface, bg RGBA, to image.Rectangle) {
	if sel.kind != SelectionFloating {
		return
	}
	to = to.Canon()
	if to.Dx() < 1 || to.Dy() < 1 {
		return
	}
	sel.lift(base, bg)
	sel.bitmap = resampleNearest(sel.bitmap, to.Dx(), to.Dy())
	sel.origin = to.Min
}

// Commit composites the floating bitmap onto the base surface at its
// current origin, clipped to the canvas bounds, then clears all floating
// state. Committing with nothing floating is a no-op. Returns true if a
// composite happened.
func (sel *Selection) Commit(base *Surface) bool {
	if sel.kind != SelectionFloating {
		sel.reset()
		return false
	}
	base.CompositeOver(sel.bitmap, sel.origin)
	sel.reset()
	return true
}

// Discard drops any selection state without compositing. Used for
// Escape/Delete on an uncommitted paste.
func (sel *Selection) Discard() {
	sel.reset()
}

// DeleteOnBase removes a marquee-lifted floating selection: the source
// hole is punched if it has not been already, the content's current
// placement is filled with the background color, and the selection
// state is cleared. For pasted content use Discard instead.
func (sel *Selection) DeleteOnBase(base *Surface, bg RGBA) {
	if sel.kind != SelectionFloating {
		sel.reset()
		return
	}
	sel.lift(base, bg)
	base.FillRect(sel.Bounds(), bg)
	sel.reset()
}

// reset returns the selection to the none state.
func (sel *Selection) reset() {
	*sel = Selection{}
}

// replaceBitmap swaps the floating content, keeping the placement's
// top-left corner fixed. Used by flip/rotate/stretch applied to a
// selection.
func (sel *Selection) replaceBitmap(base *Surface, bg RGBA, bm *Surface) {
	if sel.kind != SelectionFloating || bm == nil {
		return
	}
	sel.lift(base, bg)
	sel.bitmap = bm
}
