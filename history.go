package easel

import "image"

// DefaultHistoryDepth is the default undo depth.
const DefaultHistoryDepth = 5

// Snapshot is a full copy of the raster and its canvas size, taken
// before a mutating operation. Snapshots never alias the live surface.
type Snapshot struct {
	Surface *Surface
	Size    image.Point
}

// History is a bounded undo/redo stack of snapshots. It holds no tool
// knowledge: applying a returned snapshot (and resetting transient tool
// state) is the caller's job.
//
// Invariant: the undo and redo stacks partition the full edit history
// relative to the current state. Pushing a new snapshot clears redo.
type History struct {
	undo  []Snapshot
	redo  []Snapshot
	depth int
}

// NewHistory creates a history with the given maximum depth.
// Depth < 1 uses DefaultHistoryDepth.
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Save pushes a deep copy of the surface onto the undo stack and clears
// the redo stack. When over capacity the oldest entry is evicted.
func (h *History) Save(s *Surface) {
	h.undo = append(h.undo, snapshotOf(s))
	if len(h.undo) > h.depth {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
}

// Undo pops the most recent undo snapshot, pushing the current state
// onto the redo stack. Returns false if there is nothing to undo.
func (h *History) Undo(current *Surface) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	snap := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, snapshotOf(current))
	return snap, true
}

// Redo pops the most recent redo snapshot, pushing the current state
// onto the undo stack. Returns false if there is nothing to redo.
func (h *History) Redo(current *Surface) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	snap := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, snapshotOf(current))
	return snap, true
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// snapshotOf deep-copies a surface into a snapshot.
func snapshotOf(s *Surface) Snapshot {
	return Snapshot{Surface: s.Clone(), Size: s.Size()}
}
