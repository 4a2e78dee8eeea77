package easel

import "testing"

func TestHistoryUndoRedoRoundTrip(t *testing.T) {
	h := NewHistory(5)
	s := NewSurfaceFilled(4, 4, White)

	h.Save(s)
	s.SetPixel(1, 1, Red)

	snap, ok := h.Undo(s)
	if !ok {
		t.Fatal("Undo returned no snapshot")
	}
	if got := snap.Surface.GetPixel(1, 1); got != White {
		t.Errorf("undone pixel = %+v, want White", got)
	}

	snap, ok = h.Redo(snap.Surface)
	if !ok {
		t.Fatal("Redo returned no snapshot")
	}
	if got := snap.Surface.GetPixel(1, 1); got != Red {
		t.Errorf("redone pixel = %+v, want Red", got)
	}
}

func TestHistorySnapshotsDoNotAlias(t *testing.T) {
	h := NewHistory(5)
	s := NewSurfaceFilled(4, 4, White)

	h.Save(s)
	s.Clear(Red) // mutate after save

	snap, _ := h.Undo(s)
	if got := snap.Surface.GetPixel(0, 0); got != White {
		t.Errorf("snapshot pixel = %+v, want White (aliased live surface?)", got)
	}
}

func TestHistorySaveClearsRedo(t *testing.T) {
	h := NewHistory(5)
	s := NewSurfaceFilled(2, 2, White)

	h.Save(s)
	if _, ok := h.Undo(s); !ok {
		t.Fatal("first undo failed")
	}
	if !h.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	h.Save(s)
	if h.CanRedo() {
		t.Error("Save did not clear the redo stack")
	}
}

func TestHistoryDepthEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	s := NewSurfaceFilled(2, 2, White)

	// Save 5 distinct states; only the newest 3 survive.
	colors := []RGBA{Red, Green, Blue, Yellow, Cyan}
	for _, c := range colors {
		s.Clear(c)
		h.Save(s)
	}

	undone := 0
	for h.CanUndo() {
		var ok bool
		_, ok = h.Undo(s)
		if !ok {
			break
		}
		undone++
	}
	if undone != 3 {
		t.Errorf("undo count = %d, want 3", undone)
	}
}

func TestHistoryEmptyStacks(t *testing.T) {
	h := NewHistory(0) // falls back to the default depth
	s := NewSurfaceFilled(2, 2, White)

	if h.CanUndo() || h.CanRedo() {
		t.Error("fresh history reports available undo/redo")
	}
	if _, ok := h.Undo(s); ok {
		t.Error("Undo on empty stack returned a snapshot")
	}
	if _, ok := h.Redo(s); ok {
		t.Error("Redo on empty stack returned a snapshot")
	}
}

func TestHistorySnapshotKeepsSize(t *testing.T) {
	h := NewHistory(5)
	s := NewSurfaceFilled(7, 3, White)

	h.Save(s)
	snap, _ := h.Undo(NewSurfaceFilled(10, 10, White))
	if snap.Size.X != 7 || snap.Size.Y != 3 {
		t.Errorf("snapshot size = %v, want (7,3)", snap.Size)
	}
}
