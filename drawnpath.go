package easel

import (
	"image"

	"github.com/google/uuid"
)

// DrawnPath is an immutable record of a committed vector stroke (shape,
// pencil/brush segment, or curve) in canvas-pixel space. Records stay
// valid across gutter and zoom changes because they never reference view
// coordinates.
type DrawnPath struct {
	// ID uniquely identifies the record.
	ID string

	// Geometry is the committed path. Never mutated after creation.
	Geometry *Path

	// Color is the stroke color.
	Color RGBA

	// Width is the stroke width in pixels.
	Width int
}

// newDrawnPath captures a committed stroke. The path is cloned so later
// reuse of the in-progress path cannot mutate the record.
func newDrawnPath(p *Path, c RGBA, width int) DrawnPath {
	return DrawnPath{
		ID:       uuid.NewString(),
		Geometry: p.Clone(),
		Color:    c,
		Width:    width,
	}
}

// pathLog is the ordered list of committed stroke records.
//
// Records whose bounds fall entirely inside a cleared, filled, or
// cropped-away region are purged together with that region, so a later
// redraw can never resurrect a stroke the user already painted over.
type pathLog struct {
	paths []DrawnPath
}

// append records a committed stroke.
func (l *pathLog) append(rec DrawnPath) {
	l.paths = append(l.paths, rec)
}

// purgeCovered removes records whose bounds were entirely repainted by
// the given flood fill. Testing against the filled pixel set rather
// than its bounding box keeps strokes on unfilled islands inside a
// non-rectangular fill.
func (l *pathLog) purgeCovered(res FloodFillResult) {
	kept := l.paths[:0]
	for _, rec := range l.paths {
		if res.Covers(rec.Geometry.Bounds()) {
			continue
		}
		kept = append(kept, rec)
	}
	l.paths = kept
}

// purgeOutside removes records whose bounds are not fully inside the
// canvas rectangle r. Used after a resize crop.
func (l *pathLog) purgeOutside(r image.Rectangle) {
	kept := l.paths[:0]
	for _, rec := range l.paths {
		if !rec.Geometry.Bounds().In(r) {
			continue
		}
		kept = append(kept, rec)
	}
	l.paths = kept
}

// clear drops all records.
func (l *pathLog) clear() {
	l.paths = nil
}

// all returns the recorded strokes, oldest first.
func (l *pathLog) all() []DrawnPath {
	return l.paths
}
