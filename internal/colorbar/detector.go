// Package colorbar locates the colorbar block inside a user-selected
// sub-image and refines its bounding rectangle.
package colorbar

import (
	"image"

	"contour-tools/pkg/geometry"

	"gocv.io/x/gocv"
)

// DetectOptions configures the saturation-based boundary detection.
type DetectOptions struct {
	SatThreshold    float32 // saturation cutoff separating colored pixels from gray
	KernelWidth     int     // morphological close kernel width
	KernelHeight    int     // morphological close kernel height
	CloseIterations int     // close passes to bridge gaps between tick labels
	MinContourArea  float64 // contours below this area are noise
}

// DefaultDetectOptions returns the detection parameters tuned on the sample
// contour sets: saturation threshold 20, a 3x5 close kernel applied twice,
// and a 50px^2 noise floor.
func DefaultDetectOptions() DetectOptions {
	return DetectOptions{
		SatThreshold:    20,
		KernelWidth:     3,
		KernelHeight:    5,
		CloseIterations: 2,
		MinContourArea:  50,
	}
}

// DetectBoundary finds the rectangle enclosing all saturated regions of the
// ROI. The ROI is converted to HSV, its saturation channel is thresholded
// into a binary mask, the mask is morphologically closed, and the bounding
// rectangles of all sufficiently large external contours are unioned. If
// nothing survives, the whole ROI is returned; an empty ROI yields a zero
// rectangle.
func DetectBoundary(roi gocv.Mat, opts DetectOptions) geometry.RectInt {
	if roi.Empty() {
		return geometry.RectInt{}
	}

	whole := geometry.NewRectInt(0, 0, roi.Cols(), roi.Rows())

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(roi, &hsv, gocv.ColorBGRToHSV)

	channels := gocv.Split(hsv)
	defer func() {
		for i := range channels {
			channels[i].Close()
		}
	}()
	if len(channels) < 2 {
		return whole
	}

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(channels[1], &binary, opts.SatThreshold, 255, gocv.ThresholdBinary)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(opts.KernelWidth, opts.KernelHeight))
	defer kernel.Close()
	for i := 0; i < opts.CloseIterations; i++ {
		gocv.MorphologyEx(binary, &binary, gocv.MorphClose, kernel)
	}

	contours := gocv.FindContours(binary, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var found geometry.RectInt
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		if gocv.ContourArea(c) <= opts.MinContourArea {
			continue
		}
		b := gocv.BoundingRect(c)
		r := geometry.NewRectInt(b.Min.X, b.Min.Y, b.Dx(), b.Dy())
		found = found.Union(r)
	}

	if found.Empty() {
		return whole
	}
	return found
}

// Crop returns a copy of the rectangle's sub-image. Degenerate input (empty
// image or rectangle outside the image) yields an empty Mat rather than an
// error.
func Crop(img gocv.Mat, rect geometry.RectInt) gocv.Mat {
	if img.Empty() || rect.Empty() {
		return gocv.NewMat()
	}

	bounds := geometry.NewRectInt(0, 0, img.Cols(), img.Rows())
	if !bounds.ContainsRect(rect) {
		return gocv.NewMat()
	}

	region := img.Region(image.Rect(rect.X, rect.Y, rect.X+rect.Width, rect.Y+rect.Height))
	defer region.Close()
	return region.Clone()
}
