package app

import (
	"testing"

	"contour-tools/internal/region"
	"contour-tools/pkg/geometry"
)

var selSize = geometry.Size{Width: 300, Height: 200}

func TestSelectionRectangleFlow(t *testing.T) {
	sel := NewSelection(selSize)
	if sel.Phase() != PhaseIdle {
		t.Fatalf("New selection should be idle")
	}

	sel.Press(geometry.PointInt{X: 20, Y: 30})
	if sel.Phase() != PhaseSelectingRectangle {
		t.Fatalf("Press should start a rectangle drag")
	}

	sel.Drag(geometry.PointInt{X: 100, Y: 90})
	if r, ok := sel.PendingRect(); !ok || r.Width != 80 || r.Height != 60 {
		t.Errorf("PendingRect = %+v, %v", r, ok)
	}

	sel.Release(geometry.PointInt{X: 120, Y: 110})
	r, err := sel.Commit()
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if r.Type != region.TypeRectangle {
		t.Errorf("Type = %q, want rectangle", r.Type)
	}
	if r.Points[0] != (geometry.PointInt{X: 20, Y: 30}) || r.Points[1] != (geometry.PointInt{X: 120, Y: 110}) {
		t.Errorf("Points = %v", r.Points)
	}
	if sel.Phase() != PhaseIdle {
		t.Errorf("Commit should return to idle")
	}
}

func TestSelectionRectangleInvertedDrag(t *testing.T) {
	sel := NewSelection(selSize)
	sel.Press(geometry.PointInt{X: 150, Y: 120})
	sel.Drag(geometry.PointInt{X: 50, Y: 40})
	sel.Release(geometry.PointInt{X: 50, Y: 40})

	r, err := sel.Commit()
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if r.Points[0] != (geometry.PointInt{X: 50, Y: 40}) {
		t.Errorf("Corners not normalized: %v", r.Points)
	}
}

func TestSelectionFreehandFlow(t *testing.T) {
	sel := NewSelection(selSize)
	sel.SetMode(SelectFreehand)

	sel.Press(geometry.PointInt{X: 10, Y: 10})
	sel.Press(geometry.PointInt{X: 60, Y: 15})

	if _, err := sel.Commit(); err == nil {
		t.Fatalf("Commit with 2 points should fail")
	}
	// A failed commit keeps the drawing so the user can add more points.
	if sel.Phase() != PhaseSelectingFreehand || len(sel.PendingPoints()) != 2 {
		t.Fatalf("Failed commit should not discard vertices")
	}

	sel.Press(geometry.PointInt{X: 40, Y: 70})
	r, err := sel.Commit()
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if r.Type != region.TypeFreehand || len(r.Points) != 3 {
		t.Errorf("Region = %+v", r)
	}
	if sel.Phase() != PhaseIdle {
		t.Errorf("Commit should return to idle")
	}
}

func TestSelectionCancel(t *testing.T) {
	sel := NewSelection(selSize)
	sel.SetMode(SelectFreehand)
	sel.Press(geometry.PointInt{X: 1, Y: 1})
	sel.Cancel()

	if sel.Phase() != PhaseIdle || sel.PendingPoints() != nil {
		t.Errorf("Cancel should discard the drawing")
	}
	if _, err := sel.Commit(); err == nil {
		t.Errorf("Commit while idle should fail")
	}
}

func TestSelectionModeSwitchCancels(t *testing.T) {
	sel := NewSelection(selSize)
	sel.Press(geometry.PointInt{X: 5, Y: 5})
	sel.SetMode(SelectFreehand)
	if sel.Phase() != PhaseIdle {
		t.Errorf("Mode switch should cancel the pending drag")
	}
}
