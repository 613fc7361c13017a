// Command applyregions applies a saved region parameter file to one image or
// to every image in a directory, writing the extracted results.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"contour-tools/internal/imageio"
	"contour-tools/internal/region"
	"contour-tools/pkg/geometry"
)

func main() {
	paramsPath := flag.String("params", "", "Region parameter file (JSON)")
	imagePath := flag.String("image", "", "Single image to process")
	dir := flag.String("dir", "", "Process every supported image in this directory")
	outDir := flag.String("outdir", ".", "Output directory")
	suffix := flag.String("suffix", "_extracted", "Suffix appended to output file names")
	flag.Parse()

	if *paramsPath == "" || (*imagePath == "" && *dir == "") {
		fmt.Println("Usage: applyregions -params <file.json> (-image <path> | -dir <path>) [-outdir path]")
		os.Exit(1)
	}

	params, err := region.LoadParams(*paramsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load parameters: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d regions (format %s)\n", len(params.Regions), params.Version)

	var paths []string
	if *imagePath != "" {
		paths = []string{*imagePath}
	} else {
		paths, err = imageio.ListImages(*dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list %s: %v\n", *dir, err)
			os.Exit(1)
		}
		if len(paths) == 0 {
			fmt.Fprintf(os.Stderr, "No supported images in %s\n", *dir)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	processed, failed := 0, 0
	for _, path := range paths {
		if err := processImage(path, params, *outDir, *suffix); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		processed++
	}

	fmt.Printf("Done: %d processed, %d failed\n", processed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func processImage(path string, params *region.ParamsFile, outDir, suffix string) error {
	img, err := imageio.LoadMat(path)
	if err != nil {
		return err
	}
	defer img.Close()

	size := geometry.Size{Width: img.Cols(), Height: img.Rows()}
	if err := params.Validate(size); err != nil {
		return err
	}
	if !params.MatchesImage(size) {
		fmt.Printf("%s: image size %dx%d differs from recorded %dx%d\n",
			filepath.Base(path), size.Width, size.Height,
			params.ImageSize.Width, params.ImageSize.Height)
	}

	result := region.Extract(img, size, params.Regions)
	defer result.Close()

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	outPath := filepath.Join(outDir, strings.TrimSuffix(base, ext)+suffix+ext)

	if err := imageio.SaveMat(outPath, result); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", outPath)
	return nil
}
