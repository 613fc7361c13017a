package panels

import (
	"fmt"
	"path/filepath"

	"contour-tools/internal/app"
	"contour-tools/pkg/geometry"
	"contour-tools/ui/canvas"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// RegionPanel drives region selection and extraction: the user draws
// rectangles or freehand polygons on the canvas, commits them, and applies
// the union mask.
type RegionPanel struct {
	state     *app.State
	canvas    *canvas.ImageCanvas
	window    fyne.Window
	container fyne.CanvasObject
	selection *app.Selection

	modeRadio  *widget.RadioGroup
	countLabel *widget.Label
	preview    *fynecanvas.Image
	applyBtn   *widget.Button
	saveBtn    *widget.Button
}

// NewRegionPanel creates a new region panel.
func NewRegionPanel(state *app.State, cvs *canvas.ImageCanvas) *RegionPanel {
	rp := &RegionPanel{
		state:     state,
		canvas:    cvs,
		selection: app.NewSelection(geometry.Size{}),
	}

	rp.countLabel = widget.NewLabel("Regions: 0")

	rp.preview = &fynecanvas.Image{FillMode: fynecanvas.ImageFillContain}
	rp.preview.SetMinSize(fyne.NewSize(200, 150))

	rp.modeRadio = widget.NewRadioGroup([]string{"Rectangle", "Freehand"}, func(selected string) {
		if selected == "Freehand" {
			rp.selection.SetMode(app.SelectFreehand)
		} else {
			rp.selection.SetMode(app.SelectRectangle)
		}
		rp.refreshPending()
	})
	rp.modeRadio.SetSelected("Rectangle")

	addBtn := widget.NewButton("Add Region", rp.onAddRegion)
	undoBtn := widget.NewButton("Undo Last", func() {
		rp.state.RemoveLastRegion()
	})
	clearBtn := widget.NewButton("Clear All", func() {
		rp.selection.Cancel()
		rp.state.ClearRegions()
		rp.refreshPending()
	})

	rp.applyBtn = widget.NewButton("Apply Mask", rp.onApplyMask)
	rp.saveBtn = widget.NewButton("Save Result...", rp.onSaveResult)
	rp.saveBtn.Disable()

	saveParamsBtn := widget.NewButton("Save Params...", rp.onSaveParams)
	loadParamsBtn := widget.NewButton("Load Params...", rp.onLoadParams)

	rp.container = container.NewVBox(
		widget.NewLabel("Selection tool:"),
		rp.modeRadio,
		addBtn,
		container.NewHBox(undoBtn, clearBtn),
		rp.countLabel,
		widget.NewSeparator(),
		rp.applyBtn,
		rp.preview,
		rp.saveBtn,
		widget.NewSeparator(),
		container.NewHBox(saveParamsBtn, loadParamsBtn),
	)

	state.On(app.EventImageLoaded, func(data interface{}) {
		rp.selection = app.NewSelection(state.Size)
		rp.selection.SetMode(rp.currentMode())
		rp.preview.Image = nil
		rp.preview.Refresh()
		rp.saveBtn.Disable()
		rp.refreshAll()
	})
	state.On(app.EventRegionsChanged, func(data interface{}) {
		rp.refreshAll()
	})
	state.On(app.EventMaskApplied, func(data interface{}) {
		rp.preview.Image = state.Result()
		rp.preview.Refresh()
		rp.saveBtn.Enable()
	})

	return rp
}

// Container returns the panel container.
func (rp *RegionPanel) Container() fyne.CanvasObject {
	return rp.container
}

// SetWindow sets the parent window for dialogs.
func (rp *RegionPanel) SetWindow(w fyne.Window) {
	rp.window = w
}

func (rp *RegionPanel) currentMode() app.SelectionMode {
	if rp.modeRadio.Selected == "Freehand" {
		return app.SelectFreehand
	}
	return app.SelectRectangle
}

// HandleDrag receives pointer movement from the canvas in image coordinates.
func (rp *RegionPanel) HandleDrag(x, y int) {
	if rp.selection.Mode() != app.SelectRectangle {
		return
	}
	if rp.selection.Phase() == app.PhaseIdle {
		rp.selection.Press(geometry.PointInt{X: x, Y: y})
	} else {
		rp.selection.Drag(geometry.PointInt{X: x, Y: y})
	}
	rp.refreshPending()
}

// HandleDragEnd receives the completed drag endpoints in image coordinates.
func (rp *RegionPanel) HandleDragEnd(x1, y1, x2, y2 int) {
	if rp.selection.Mode() != app.SelectRectangle {
		return
	}
	rp.selection.Release(geometry.PointInt{X: x2, Y: y2})
	rp.refreshPending()
}

// HandleClick receives left clicks in image coordinates. Freehand vertices
// are placed one click at a time.
func (rp *RegionPanel) HandleClick(x, y int) {
	if rp.selection.Mode() != app.SelectFreehand {
		return
	}
	rp.selection.Press(geometry.PointInt{X: x, Y: y})
	rp.refreshPending()
}

func (rp *RegionPanel) onAddRegion() {
	r, err := rp.selection.Commit()
	if err != nil {
		rp.showError(err)
		return
	}
	rp.state.AddRegion(r)
	rp.refreshPending()
}

func (rp *RegionPanel) onApplyMask() {
	if err := rp.state.ApplyMask(); err != nil {
		rp.showError(err)
	}
}

func (rp *RegionPanel) onSaveResult() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) == "" {
			path += ".png"
		}
		if err := rp.state.SaveResult(path); err != nil {
			rp.showError(err)
		}
	}, rp.window)
	fd.SetFileName("extracted.png")
	fd.Show()
}

func (rp *RegionPanel) onSaveParams() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) != ".json" {
			path += ".json"
		}
		if err := rp.state.SaveParams(path); err != nil {
			rp.showError(err)
		}
	}, rp.window)
	fd.SetFileName("regions.json")
	fd.Show()
}

func (rp *RegionPanel) onLoadParams() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		match, err := rp.state.LoadParams(reader.URI().Path())
		if err != nil {
			rp.showError(err)
			return
		}
		if !match {
			dialog.ShowInformation("Image size mismatch",
				"The parameter file was recorded on a different image size.\n"+
					"Regions were loaded anyway; check their placement.", rp.window)
		}
	}, rp.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fd.Show()
}

func (rp *RegionPanel) refreshAll() {
	rp.countLabel.SetText(fmt.Sprintf("Regions: %d", len(rp.state.Regions)))
	rp.canvas.SetOverlay("regions", regionsOverlay(rp.state.Regions))
}

func (rp *RegionPanel) refreshPending() {
	rp.canvas.SetOverlay("pending", pendingOverlay(rp.selection))
}

func (rp *RegionPanel) showError(err error) {
	if rp.window != nil {
		dialog.ShowError(err, rp.window)
	}
}
