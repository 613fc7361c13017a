// Package panels provides UI panels for the application.
package panels

import (
	"contour-tools/internal/app"
	"contour-tools/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SidePanel provides the main side panel with tabbed sections and routes
// canvas input to the active tab.
type SidePanel struct {
	state     *app.State
	canvas    *canvas.ImageCanvas
	container *container.AppTabs

	regionPanel   *RegionPanel
	colorbarPanel *ColorbarPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State, cvs *canvas.ImageCanvas) *SidePanel {
	sp := &SidePanel{
		state:  state,
		canvas: cvs,
	}

	sp.regionPanel = NewRegionPanel(state, cvs)
	sp.colorbarPanel = NewColorbarPanel(state, cvs)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Regions", sp.regionPanel.Container()),
		container.NewTabItem("Colorbar", sp.colorbarPanel.Container()),
	)

	// Route canvas input to whichever tab is active.
	cvs.OnDrag(func(x, y int) {
		if sp.regionActive() {
			sp.regionPanel.HandleDrag(x, y)
		}
	})
	cvs.OnDragEnd(func(x1, y1, x2, y2 int) {
		if sp.regionActive() {
			sp.regionPanel.HandleDragEnd(x1, y1, x2, y2)
		} else {
			sp.colorbarPanel.HandleDragEnd(x1, y1, x2, y2)
		}
	})
	cvs.OnLeftClick(func(x, y int) {
		if sp.regionActive() {
			sp.regionPanel.HandleClick(x, y)
		}
	})

	return sp
}

func (sp *SidePanel) regionActive() bool {
	return sp.container.SelectedIndex() == 0
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// SetWindow sets the parent window for dialogs.
func (sp *SidePanel) SetWindow(w fyne.Window) {
	sp.regionPanel.SetWindow(w)
	sp.colorbarPanel.SetWindow(w)
}
