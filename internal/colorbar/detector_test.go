package colorbar

import (
	"image"
	"image/color"
	"testing"

	"contour-tools/pkg/colorutil"
	"contour-tools/pkg/geometry"

	"gocv.io/x/gocv"
)

// grayCanvas builds a BGR test image filled with a neutral gray, which has
// zero saturation and so never trips the detector on its own.
func grayCanvas(w, h int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(128, 128, 128, 0), h, w, gocv.MatTypeCV8UC3)
}

func within(a, b, tol int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestDetectBoundaryEmptyInput(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	if got := DetectBoundary(empty, DefaultDetectOptions()); !got.Empty() {
		t.Errorf("Empty input should yield a zero rectangle, got %+v", got)
	}
}

func TestDetectBoundaryFallsBackToWholeROI(t *testing.T) {
	img := grayCanvas(80, 60)
	defer img.Close()

	got := DetectBoundary(img, DefaultDetectOptions())
	want := geometry.NewRectInt(0, 0, 80, 60)
	if got != want {
		t.Errorf("Unsaturated image should fall back to whole ROI, got %+v", got)
	}
}

func TestDetectBoundarySaturatedBlock(t *testing.T) {
	img := grayCanvas(120, 100)
	defer img.Close()

	block := image.Rect(20, 30, 60, 80)
	gocv.Rectangle(&img, block, color.RGBA{R: 255}, -1)

	got := DetectBoundary(img, DefaultDetectOptions())
	if !within(got.X, 20, 1) || !within(got.Y, 30, 1) ||
		!within(got.Width, 40, 1) || !within(got.Height, 50, 1) {
		t.Errorf("Detected %+v, want approximately {20 30 40 50}", got)
	}
}

func TestDetectBoundaryUnionsBlocks(t *testing.T) {
	img := grayCanvas(200, 120)
	defer img.Close()

	gocv.Rectangle(&img, image.Rect(10, 10, 50, 60), color.RGBA{B: 255}, -1)
	gocv.Rectangle(&img, image.Rect(140, 70, 190, 110), color.RGBA{G: 200}, -1)

	got := DetectBoundary(img, DefaultDetectOptions())
	if !within(got.X, 10, 1) || !within(got.Y, 10, 1) ||
		!within(got.X+got.Width, 190, 1) || !within(got.Y+got.Height, 110, 1) {
		t.Errorf("Union of both blocks expected, got %+v", got)
	}
}

func TestDetectBoundaryIgnoresSmallContours(t *testing.T) {
	img := grayCanvas(150, 100)
	defer img.Close()

	gocv.Rectangle(&img, image.Rect(40, 20, 90, 80), color.RGBA{R: 255}, -1)
	// 5x5 speck, well under the contour area floor.
	gocv.Rectangle(&img, image.Rect(120, 10, 125, 15), color.RGBA{R: 255}, -1)

	got := DetectBoundary(img, DefaultDetectOptions())
	if !within(got.X, 40, 1) || !within(got.Y, 20, 1) ||
		!within(got.Width, 50, 1) || !within(got.Height, 60, 1) {
		t.Errorf("Speck should be filtered out, got %+v", got)
	}
}

func TestCrop(t *testing.T) {
	img := grayCanvas(50, 40)
	defer img.Close()

	out := Crop(img, geometry.NewRectInt(5, 10, 20, 15))
	defer out.Close()
	if out.Cols() != 20 || out.Rows() != 15 {
		t.Errorf("Crop dims = %dx%d, want 20x15", out.Cols(), out.Rows())
	}
}

func TestCropDegenerate(t *testing.T) {
	img := grayCanvas(50, 40)
	defer img.Close()

	cases := []geometry.RectInt{
		{},
		geometry.NewRectInt(40, 30, 20, 20),
		geometry.NewRectInt(-5, 0, 10, 10),
	}
	for _, r := range cases {
		out := Crop(img, r)
		if !out.Empty() {
			t.Errorf("Crop(%+v) should be empty", r)
		}
		out.Close()
	}

	empty := gocv.NewMat()
	defer empty.Close()
	out := Crop(empty, geometry.NewRectInt(0, 0, 10, 10))
	defer out.Close()
	if !out.Empty() {
		t.Errorf("Crop of an empty image should be empty")
	}
}

func TestImageToMatChannelOrder(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{B: 200, A: 255})

	mat := ImageToMat(src)
	defer mat.Close()

	if mat.Rows() != 1 || mat.Cols() != 2 {
		t.Fatalf("Mat dims = %dx%d, want 2x1", mat.Cols(), mat.Rows())
	}
	// Pixel 0 is pure red: BGR = (0, 0, 255).
	if mat.GetUCharAt(0, 0) != 0 || mat.GetUCharAt(0, 1) != 0 || mat.GetUCharAt(0, 2) != 255 {
		t.Errorf("Red pixel stored as BGR (%d,%d,%d)",
			mat.GetUCharAt(0, 0), mat.GetUCharAt(0, 1), mat.GetUCharAt(0, 2))
	}
	if mat.GetUCharAt(0, 3) != 200 {
		t.Errorf("Blue pixel channel = %d, want 200", mat.GetUCharAt(0, 3))
	}
}

func TestSaturationAboveThresholdForPureColors(t *testing.T) {
	opts := DefaultDetectOptions()
	for _, c := range []color.RGBA{
		{R: 255}, {G: 255}, {B: 255}, {R: 255, G: 128},
	} {
		_, s, _ := colorutil.RGBToHSV(float64(c.R), float64(c.G), float64(c.B))
		if float32(s) <= opts.SatThreshold {
			t.Errorf("Saturation of %+v is %v, below threshold %v", c, s, opts.SatThreshold)
		}
	}
}
