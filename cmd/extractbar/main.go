// Command extractbar detects the colorbar boundary inside an image region
// and writes the cropped colorbar to a file.
package main

import (
	"flag"
	"fmt"
	"os"

	"contour-tools/internal/colorbar"
	"contour-tools/internal/imageio"
	"contour-tools/pkg/geometry"
)

func main() {
	imagePath := flag.String("image", "", "Path to the contour plot image")
	out := flag.String("out", "colorbar.png", "Output image path")
	roi := flag.String("roi", "", "Search region as x,y,w,h (default: whole image)")
	top := flag.Int("top", 0, "Top margin (positive shrinks)")
	bottom := flag.Int("bottom", 0, "Bottom margin")
	left := flag.Int("left", 0, "Left margin")
	right := flag.Int("right", 0, "Right margin")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: extractbar -image <path> [-roi x,y,w,h] [-top N -bottom N -left N -right N] [-out path]")
		os.Exit(1)
	}

	img, err := imageio.LoadMat(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	defer img.Close()

	bounds := geometry.NewRectInt(0, 0, img.Cols(), img.Rows())

	sel := bounds
	if *roi != "" {
		var x, y, w, h int
		if _, err := fmt.Sscanf(*roi, "%d,%d,%d,%d", &x, &y, &w, &h); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -roi %q: %v\n", *roi, err)
			os.Exit(1)
		}
		sel = geometry.NewRectInt(x, y, w, h)
		if !bounds.ContainsRect(sel) {
			fmt.Fprintf(os.Stderr, "ROI %v is outside the %dx%d image\n", sel, img.Cols(), img.Rows())
			os.Exit(1)
		}
	}

	roiMat := colorbar.Crop(img, sel)
	defer roiMat.Close()

	found := colorbar.DetectBoundary(roiMat, colorbar.DefaultDetectOptions())
	detected := geometry.NewRectInt(sel.X+found.X, sel.Y+found.Y, found.Width, found.Height)
	fmt.Printf("Detected boundary: x=%d y=%d %dx%d\n",
		detected.X, detected.Y, detected.Width, detected.Height)

	margins := colorbar.Margins{Top: *top, Bottom: *bottom, Left: *left, Right: *right}
	refined := colorbar.Refine(detected, margins, bounds)
	if refined != detected {
		fmt.Printf("Refined boundary:  x=%d y=%d %dx%d\n",
			refined.X, refined.Y, refined.Width, refined.Height)
	}

	crop := colorbar.Crop(img, refined)
	defer crop.Close()

	if err := imageio.SaveMat(*out, crop); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *out)
}
