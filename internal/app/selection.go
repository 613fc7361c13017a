package app

import (
	"errors"

	"contour-tools/internal/region"
	"contour-tools/pkg/geometry"
)

var errNothingSelected = errors.New("no selection in progress")

// SelectionMode is the kind of region the user is drawing.
type SelectionMode int

const (
	SelectRectangle SelectionMode = iota
	SelectFreehand
)

// SelectionPhase is the current phase of the selection state machine.
type SelectionPhase int

const (
	PhaseIdle SelectionPhase = iota
	PhaseSelectingRectangle
	PhaseSelectingFreehand
)

// Selection is a state machine that turns discrete pointer events into
// committed regions. All coordinates are image pixel coordinates; the view
// converts from widget space before calling in. It holds no view state and
// performs no drawing.
type Selection struct {
	mode  SelectionMode
	phase SelectionPhase
	size  geometry.Size

	anchor geometry.PointInt // rectangle drag origin
	cursor geometry.PointInt // latest pointer position
	points []geometry.PointInt
}

// NewSelection creates an idle selection for an image of the given size.
func NewSelection(size geometry.Size) *Selection {
	return &Selection{size: size}
}

// Phase returns the current state machine phase.
func (s *Selection) Phase() SelectionPhase { return s.phase }

// Mode returns the active selection mode.
func (s *Selection) Mode() SelectionMode { return s.mode }

// SetMode switches the selection mode and cancels any drawing in progress.
func (s *Selection) SetMode(mode SelectionMode) {
	s.mode = mode
	s.Cancel()
}

// Press handles a pointer press. In rectangle mode it anchors a drag; in
// freehand mode each press appends a vertex.
func (s *Selection) Press(p geometry.PointInt) {
	switch s.mode {
	case SelectRectangle:
		s.phase = PhaseSelectingRectangle
		s.anchor = p
		s.cursor = p
	case SelectFreehand:
		s.phase = PhaseSelectingFreehand
		s.points = append(s.points, p)
		s.cursor = p
	}
}

// Drag handles pointer movement with the button held. Only rectangle mode
// tracks drags; freehand vertices are placed by discrete presses.
func (s *Selection) Drag(p geometry.PointInt) {
	if s.phase == PhaseSelectingRectangle {
		s.cursor = p
	}
}

// Release handles the pointer release. A rectangle drag stays pending until
// Commit so the user can adjust; freehand ignores releases.
func (s *Selection) Release(p geometry.PointInt) {
	if s.phase == PhaseSelectingRectangle {
		s.cursor = p
	}
}

// PendingRect returns the rectangle being dragged, for overlay drawing.
// The second result is false when no rectangle is in progress.
func (s *Selection) PendingRect() (geometry.RectInt, bool) {
	if s.phase != PhaseSelectingRectangle {
		return geometry.RectInt{}, false
	}
	r := geometry.BoundingBox([]geometry.PointInt{s.anchor, s.cursor})
	return r, true
}

// PendingPoints returns the freehand vertices placed so far.
func (s *Selection) PendingPoints() []geometry.PointInt {
	if s.phase != PhaseSelectingFreehand {
		return nil
	}
	return s.points
}

// Commit finalizes the current drawing into a region and returns to idle.
// Rectangle commits require a drag in progress; freehand commits require at
// least three vertices.
func (s *Selection) Commit() (region.Region, error) {
	switch s.phase {
	case PhaseSelectingRectangle:
		r, err := region.NewRectangle(s.anchor, s.cursor, s.size)
		if err != nil {
			return region.Region{}, err
		}
		s.Cancel()
		return r, nil
	case PhaseSelectingFreehand:
		r, err := region.NewFreehand(s.points, s.size)
		if err != nil {
			return region.Region{}, err
		}
		s.Cancel()
		return r, nil
	}
	return region.Region{}, errNothingSelected
}

// Cancel discards any drawing in progress and returns to idle.
func (s *Selection) Cancel() {
	s.phase = PhaseIdle
	s.points = nil
	s.anchor = geometry.PointInt{}
	s.cursor = geometry.PointInt{}
}
