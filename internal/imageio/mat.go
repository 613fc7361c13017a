package imageio

import (
	"fmt"

	"gocv.io/x/gocv"
)

// LoadMat reads an image from disk directly into a BGR Mat.
func LoadMat(path string) (gocv.Mat, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		return mat, fmt.Errorf("failed to read image %s", path)
	}
	return mat, nil
}

// SaveMat writes a Mat to disk, choosing the format from the file extension.
func SaveMat(path string, mat gocv.Mat) error {
	if mat.Empty() {
		return fmt.Errorf("refusing to write empty image to %s", path)
	}
	if !gocv.IMWrite(path, mat) {
		return fmt.Errorf("failed to write image %s", path)
	}
	return nil
}
