// Package app provides application state, events, and selection handling for
// the GUI tools.
package app

import (
	"fmt"
	goimage "image"
	"sync"

	"contour-tools/internal/colorbar"
	"contour-tools/internal/imageio"
	"contour-tools/internal/region"
	"contour-tools/pkg/geometry"

	"gocv.io/x/gocv"
)

// EventType identifies different application events.
type EventType int

const (
	EventImageLoaded EventType = iota
	EventRegionsChanged
	EventMaskApplied
	EventSelectionChanged
	EventBoundaryDetected
	EventMarginsChanged
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the shared state of the GUI tools: the loaded image, the
// committed regions, and the colorbar detection results.
type State struct {
	mu sync.RWMutex

	// Source image
	ImagePath string
	Image     goimage.Image
	mat       gocv.Mat
	Size      geometry.Size

	// Region extraction
	Regions []region.Region
	result  gocv.Mat

	// Colorbar detection
	Selection geometry.RectInt // user-selected ROI in image coordinates
	Detected  geometry.RectInt // detected boundary in image coordinates
	Margins   colorbar.Margins
	Refined   geometry.RectInt

	Modified bool

	listeners map[EventType][]EventListener
}

// NewState creates a new application state.
func NewState() *State {
	return &State{
		mat:       gocv.NewMat(),
		result:    gocv.NewMat(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the session as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// LoadImage loads an image from disk and resets all derived state.
func (s *State) LoadImage(path string) error {
	img, err := imageio.Load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.mat.Close()
	s.result.Close()
	s.ImagePath = path
	s.Image = img
	s.mat = colorbar.ImageToMat(img)
	s.Size = geometry.Size{Width: img.Bounds().Dx(), Height: img.Bounds().Dy()}
	s.Regions = nil
	s.result = gocv.NewMat()
	s.Selection = geometry.RectInt{}
	s.Detected = geometry.RectInt{}
	s.Margins = colorbar.Margins{}
	s.Refined = geometry.RectInt{}
	s.Modified = false
	s.mu.Unlock()

	s.Emit(EventImageLoaded, path)
	return nil
}

// HasImage reports whether an image is loaded.
func (s *State) HasImage() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Image != nil
}

// AddRegion appends a committed region to the selection order.
func (s *State) AddRegion(r region.Region) {
	s.mu.Lock()
	s.Regions = append(s.Regions, r)
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventRegionsChanged, len(s.Regions))
}

// RemoveLastRegion removes the most recently committed region.
func (s *State) RemoveLastRegion() {
	s.mu.Lock()
	if len(s.Regions) == 0 {
		s.mu.Unlock()
		return
	}
	s.Regions = s.Regions[:len(s.Regions)-1]
	n := len(s.Regions)
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventRegionsChanged, n)
}

// ClearRegions discards all committed regions.
func (s *State) ClearRegions() {
	s.mu.Lock()
	s.Regions = nil
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventRegionsChanged, 0)
}

// ApplyMask builds the union mask of all regions and produces the extraction
// result with a white background.
func (s *State) ApplyMask() error {
	s.mu.Lock()
	if s.mat.Empty() {
		s.mu.Unlock()
		return fmt.Errorf("no image loaded")
	}
	if len(s.Regions) == 0 {
		s.mu.Unlock()
		return fmt.Errorf("no regions selected")
	}
	s.result.Close()
	s.result = region.Extract(s.mat, s.Size, s.Regions)
	s.mu.Unlock()

	s.Emit(EventMaskApplied, nil)
	return nil
}

// Result returns the current extraction result as a Go image, or nil if the
// mask has not been applied yet.
func (s *State) Result() goimage.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result.Empty() {
		return nil
	}
	img, err := s.result.ToImage()
	if err != nil {
		return nil
	}
	return img
}

// SaveResult writes the extraction result to disk.
func (s *State) SaveResult(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result.Empty() {
		return fmt.Errorf("no result to save")
	}
	return imageio.SaveMat(path, s.result)
}

// SaveParams writes the committed regions to a parameter file.
func (s *State) SaveParams(path string) error {
	s.mu.RLock()
	params := region.NewParams(s.Size, s.Regions)
	s.mu.RUnlock()

	return params.Save(path)
}

// LoadParams loads regions from a parameter file, replacing the current
// selection. Returns true when the recorded image size matches the loaded
// image; a mismatch is reported but not fatal.
func (s *State) LoadParams(path string) (bool, error) {
	params, err := region.LoadParams(path)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	size := s.Size
	s.mu.Unlock()

	if err := params.Validate(size); err != nil {
		return false, err
	}

	s.mu.Lock()
	s.Regions = params.Regions
	n := len(s.Regions)
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventRegionsChanged, n)
	return params.MatchesImage(size), nil
}

// DetectBoundary runs colorbar detection inside the user-selected ROI and
// stores the result in image coordinates. Margins reset to zero.
func (s *State) DetectBoundary(sel geometry.RectInt) error {
	s.mu.Lock()
	if s.mat.Empty() {
		s.mu.Unlock()
		return fmt.Errorf("no image loaded")
	}

	roi := colorbar.Crop(s.mat, sel)
	if roi.Empty() {
		s.mu.Unlock()
		return fmt.Errorf("selection outside image bounds")
	}

	found := colorbar.DetectBoundary(roi, colorbar.DefaultDetectOptions())
	roi.Close()

	s.Selection = sel
	s.Detected = geometry.NewRectInt(sel.X+found.X, sel.Y+found.Y, found.Width, found.Height)
	s.Margins = colorbar.Margins{}
	s.Refined = s.Detected
	detected := s.Detected
	s.mu.Unlock()

	s.Emit(EventBoundaryDetected, detected)
	return nil
}

// SetMargins updates the per-side margins and recomputes the refined
// rectangle against the image bounds.
func (s *State) SetMargins(m colorbar.Margins) {
	s.mu.Lock()
	s.Margins = m
	bounds := geometry.NewRectInt(0, 0, s.Size.Width, s.Size.Height)
	s.Refined = colorbar.Refine(s.Detected, m, bounds)
	refined := s.Refined
	s.mu.Unlock()

	s.Emit(EventMarginsChanged, refined)
}

// SaveBar crops the refined rectangle from the source image and writes it to
// disk.
func (s *State) SaveBar(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	crop := colorbar.Crop(s.mat, s.Refined)
	if crop.Empty() {
		return fmt.Errorf("no colorbar boundary to save")
	}
	defer crop.Close()

	return imageio.SaveMat(path, crop)
}

// BarImage returns the refined colorbar crop as a Go image for preview, or
// nil when nothing is detected.
func (s *State) BarImage() goimage.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()

	crop := colorbar.Crop(s.mat, s.Refined)
	if crop.Empty() {
		return nil
	}
	defer crop.Close()

	img, err := crop.ToImage()
	if err != nil {
		return nil
	}
	return img
}

// Close releases the OpenCV buffers held by the state.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mat.Close()
	s.result.Close()
}
