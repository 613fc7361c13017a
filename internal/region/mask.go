package region

import (
	"image"
	"image/color"

	"contour-tools/pkg/geometry"

	"gocv.io/x/gocv"
)

// BuildMask rasterizes the regions into a single-channel binary mask of the
// given size. Pixels inside any region are 255, everything else 0. Regions
// are unioned; their order does not matter here.
func BuildMask(size geometry.Size, regions []Region) gocv.Mat {
	mask := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0),
		size.Height, size.Width, gocv.MatTypeCV8UC1)

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for _, r := range regions {
		switch r.Type {
		case TypeRectangle:
			if len(r.Points) != 2 {
				continue
			}
			rect := image.Rect(r.Points[0].X, r.Points[0].Y, r.Points[1].X, r.Points[1].Y)
			gocv.Rectangle(&mask, rect, white, -1)
		case TypeFreehand:
			if len(r.Points) < minFreehandPoints {
				continue
			}
			pts := make([]image.Point, len(r.Points))
			for i, p := range r.Points {
				pts[i] = image.Pt(p.X, p.Y)
			}
			pv := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
			gocv.FillPoly(&mask, pv, white)
			pv.Close()
		}
	}

	return mask
}

// Apply copies the masked pixels of img onto a background-colored canvas, so
// everything outside the regions becomes the background color. The input is
// not modified.
func Apply(img, mask gocv.Mat, background color.RGBA) gocv.Mat {
	if img.Empty() {
		return gocv.NewMat()
	}

	result := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(background.B), float64(background.G), float64(background.R), 0),
		img.Rows(), img.Cols(), img.Type())

	if mask.Empty() {
		return result
	}
	img.CopyToWithMask(&result, mask)
	return result
}

// Extract builds the mask for the regions and applies it with a white
// background, the standard extraction output.
func Extract(img gocv.Mat, size geometry.Size, regions []Region) gocv.Mat {
	mask := BuildMask(size, regions)
	defer mask.Close()
	return Apply(img, mask, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}
