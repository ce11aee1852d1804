package ui

import (
	"testing"

	"github.com/piwi3910/LoadPack/internal/model"
)

var box = model.NewContainer(200, 100)

func loads(n int) model.LoadList {
	var ll model.LoadList
	for i := 0; i < n; i++ {
		ll = append(ll, model.LoadSpec{Prefix: "L", Width: float64(10 * (i + 1)), Height: 10, Count: 1})
	}
	return ll
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, box, "initial"))

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	restored, ok := h.Undo(MakeSnapshot(loads(1), box, "current"))
	if !ok {
		t.Fatal("undo should succeed")
	}
	if len(restored.Loads) != 0 {
		t.Errorf("expected 0 loads after undo, got %d", len(restored.Loads))
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRestoresContainer(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, box, "before resize"))

	restored, ok := h.Undo(MakeSnapshot(nil, model.NewContainer(50, 50), "after resize"))
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.Container.Width != 200 || restored.Container.Height != 100 {
		t.Errorf("expected 200x100 container, got %gx%g", restored.Container.Width, restored.Container.Height)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, box, "empty"))
	h.Push(MakeSnapshot(loads(1), box, "one load"))

	restored, ok := h.Undo(MakeSnapshot(loads(2), box, "two loads"))
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if len(restored.Loads) != 1 {
		t.Errorf("expected 1 load, got %d", len(restored.Loads))
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if len(redone.Loads) != 2 {
		t.Errorf("expected 2 loads after redo, got %d", len(redone.Loads))
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, box, "empty"))

	if _, ok := h.Undo(MakeSnapshot(loads(1), box, "one load")); !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	h.Push(MakeSnapshot(nil, box, "new action"))
	if h.CanRedo() {
		t.Error("redo stack should be cleared after push")
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}

	for i := 0; i < 5; i++ {
		h.Push(MakeSnapshot(nil, box, ""))
	}

	if len(h.undoStack) != 3 {
		t.Errorf("expected undo stack length 3, got %d", len(h.undoStack))
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	h := NewHistory()
	current := MakeSnapshot(nil, box, "current")
	if _, ok := h.Undo(current); ok {
		t.Error("undo on empty history should return false")
	}
	if _, ok := h.Redo(current); ok {
		t.Error("redo on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, box, "a"))
	h.Push(MakeSnapshot(nil, box, "b"))
	h.Undo(MakeSnapshot(nil, box, "current"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("after clear, should not be able to undo or redo")
	}
}

func TestSnapshotCopiesLoads(t *testing.T) {
	original := loads(1)
	snap := MakeSnapshot(original, box, "test")

	original[0].Prefix = "Modified"

	if snap.Loads[0].Prefix != "L" {
		t.Error("snapshot should be independent of original slice")
	}
}

func TestSnapshotNilLoads(t *testing.T) {
	if snap := MakeSnapshot(nil, box, "nil test"); snap.Loads != nil {
		t.Error("nil loads should stay nil")
	}
}

func TestMultipleUndoRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, box, "empty"))
	h.Push(MakeSnapshot(loads(1), box, "1 load"))
	h.Push(MakeSnapshot(loads(2), box, "2 loads"))

	s := MakeSnapshot(loads(3), box, "3 loads")
	for want := 2; want >= 0; want-- {
		var ok bool
		s, ok = h.Undo(s)
		if !ok || len(s.Loads) != want {
			t.Fatalf("undo: expected %d loads, got %d", want, len(s.Loads))
		}
	}
	if h.CanUndo() {
		t.Error("should not be able to undo further")
	}

	for want := 1; want <= 3; want++ {
		var ok bool
		s, ok = h.Redo(s)
		if !ok || len(s.Loads) != want {
			t.Fatalf("redo: expected %d loads, got %d", want, len(s.Loads))
		}
	}
	if h.CanRedo() {
		t.Error("should not be able to redo further")
	}
}

func TestHistoryLabelsFollowStep(t *testing.T) {
	h := NewHistory()
	if h.UndoLabel() != "" || h.RedoLabel() != "" {
		t.Fatal("expected empty labels on new history")
	}

	h.Push(MakeSnapshot(loads(1), box, "Add Load"))
	if got := h.UndoLabel(); got != "Add Load" {
		t.Errorf("expected undo label 'Add Load', got %q", got)
	}

	if _, ok := h.Undo(MakeSnapshot(loads(2), box, "")); !ok {
		t.Fatal("expected undo to succeed")
	}
	if got := h.RedoLabel(); got != "Add Load" {
		t.Errorf("expected redo label 'Add Load', got %q", got)
	}

	if _, ok := h.Redo(MakeSnapshot(loads(1), box, "")); !ok {
		t.Fatal("expected redo to succeed")
	}
	if got := h.UndoLabel(); got != "Add Load" {
		t.Errorf("expected undo label 'Add Load' after redo, got %q", got)
	}
}
