package panels

import (
	"fmt"
	"path/filepath"
	"strconv"

	"contour-tools/internal/app"
	"contour-tools/internal/colorbar"
	"contour-tools/pkg/colorutil"
	"contour-tools/pkg/geometry"
	"contour-tools/ui/canvas"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// ColorbarPanel drives colorbar extraction: the user drags a rough selection
// around the colorbar, the detector finds the tight boundary, and per-side
// margins fine-tune the crop.
type ColorbarPanel struct {
	state     *app.State
	canvas    *canvas.ImageCanvas
	window    fyne.Window
	container fyne.CanvasObject

	boundsLabel *widget.Label
	preview     *fynecanvas.Image
	saveBtn     *widget.Button

	topEntry    *widget.Entry
	bottomEntry *widget.Entry
	leftEntry   *widget.Entry
	rightEntry  *widget.Entry
}

// NewColorbarPanel creates a new colorbar panel.
func NewColorbarPanel(state *app.State, cvs *canvas.ImageCanvas) *ColorbarPanel {
	cp := &ColorbarPanel{
		state:  state,
		canvas: cvs,
	}

	cp.boundsLabel = widget.NewLabel("No boundary detected")
	cp.boundsLabel.Wrapping = fyne.TextWrapWord

	cp.preview = &fynecanvas.Image{FillMode: fynecanvas.ImageFillContain}
	cp.preview.SetMinSize(fyne.NewSize(200, 150))

	cp.topEntry = newMarginEntry()
	cp.bottomEntry = newMarginEntry()
	cp.leftEntry = newMarginEntry()
	cp.rightEntry = newMarginEntry()

	applyBtn := widget.NewButton("Apply Margins", cp.onApplyMargins)
	resetBtn := widget.NewButton("Reset", cp.onResetMargins)

	cp.saveBtn = widget.NewButton("Save Colorbar...", cp.onSave)
	cp.saveBtn.Disable()

	marginsForm := container.New(layout.NewFormLayout(),
		widget.NewLabel("Top:"), cp.topEntry,
		widget.NewLabel("Bottom:"), cp.bottomEntry,
		widget.NewLabel("Left:"), cp.leftEntry,
		widget.NewLabel("Right:"), cp.rightEntry,
	)

	cp.container = container.NewVBox(
		widget.NewLabel("Drag a box around the colorbar\nto detect its boundary."),
		cp.boundsLabel,
		widget.NewSeparator(),
		widget.NewLabel("Margins (px, positive shrinks):"),
		marginsForm,
		container.NewHBox(applyBtn, resetBtn),
		widget.NewSeparator(),
		cp.preview,
		cp.saveBtn,
	)

	state.On(app.EventImageLoaded, func(data interface{}) {
		cp.boundsLabel.SetText("No boundary detected")
		cp.preview.Image = nil
		cp.preview.Refresh()
		cp.saveBtn.Disable()
		cp.canvas.ClearOverlay("boundary")
	})
	state.On(app.EventBoundaryDetected, func(data interface{}) {
		cp.onResetMargins()
		cp.refreshBoundary()
	})
	state.On(app.EventMarginsChanged, func(data interface{}) {
		cp.refreshBoundary()
	})

	return cp
}

func newMarginEntry() *widget.Entry {
	e := widget.NewEntry()
	e.SetText("0")
	return e
}

// Container returns the panel container.
func (cp *ColorbarPanel) Container() fyne.CanvasObject {
	return cp.container
}

// SetWindow sets the parent window for dialogs.
func (cp *ColorbarPanel) SetWindow(w fyne.Window) {
	cp.window = w
}

// HandleDragEnd receives the completed selection drag in image coordinates
// and runs boundary detection inside it.
func (cp *ColorbarPanel) HandleDragEnd(x1, y1, x2, y2 int) {
	if !cp.state.HasImage() {
		return
	}

	sel := geometry.BoundingBox([]geometry.PointInt{{X: x1, Y: y1}, {X: x2, Y: y2}})
	if sel.Width < 2 || sel.Height < 2 {
		return
	}

	if err := cp.state.DetectBoundary(sel); err != nil {
		cp.showError(err)
	}
}

func (cp *ColorbarPanel) onApplyMargins() {
	cp.state.SetMargins(colorbar.Margins{
		Top:    entryInt(cp.topEntry),
		Bottom: entryInt(cp.bottomEntry),
		Left:   entryInt(cp.leftEntry),
		Right:  entryInt(cp.rightEntry),
	})
}

func (cp *ColorbarPanel) onResetMargins() {
	cp.topEntry.SetText("0")
	cp.bottomEntry.SetText("0")
	cp.leftEntry.SetText("0")
	cp.rightEntry.SetText("0")
	cp.state.SetMargins(colorbar.Margins{})
}

func (cp *ColorbarPanel) onSave() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) == "" {
			path += ".png"
		}
		if err := cp.state.SaveBar(path); err != nil {
			cp.showError(err)
		}
	}, cp.window)
	fd.SetFileName("colorbar.png")
	fd.Show()
}

func (cp *ColorbarPanel) refreshBoundary() {
	r := cp.state.Refined
	if r.Empty() {
		return
	}

	cp.boundsLabel.SetText(fmt.Sprintf("Boundary: x=%d y=%d %dx%d", r.X, r.Y, r.Width, r.Height))
	cp.canvas.SetOverlay("boundary", &canvas.Overlay{
		Rectangles: []canvas.OverlayRect{
			{Rect: cp.state.Detected, Color: colorutil.Yellow},
			{Rect: r, Color: colorutil.Green},
		},
	})

	cp.preview.Image = cp.state.BarImage()
	cp.preview.Refresh()
	cp.saveBtn.Enable()
}

func (cp *ColorbarPanel) showError(err error) {
	if cp.window != nil {
		dialog.ShowError(err, cp.window)
	}
}

func entryInt(e *widget.Entry) int {
	n, err := strconv.Atoi(e.Text)
	if err != nil {
		return 0
	}
	return n
}
