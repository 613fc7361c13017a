package region

import (
	"encoding/json"
	"fmt"
	"os"

	"contour-tools/pkg/geometry"
)

// Version is the parameter file format version tag.
const Version = "1.0"

// ParamsFile is the serialized form of a region selection: the regions in
// selection order plus the size of the image they were drawn on.
type ParamsFile struct {
	Version     string         `json:"version"`
	Description string         `json:"description,omitempty"`
	ImageSize   *geometry.Size `json:"image_size,omitempty"`
	Regions     []Region       `json:"regions"`
}

// NewParams creates a parameter set for the given image size and regions.
func NewParams(size geometry.Size, regions []Region) *ParamsFile {
	return &ParamsFile{
		Version:   Version,
		ImageSize: &geometry.Size{Width: size.Width, Height: size.Height},
		Regions:   regions,
	}
}

// LoadParams loads a parameter file from disk.
func LoadParams(path string) (*ParamsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p ParamsFile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if p.Version == "" {
		return nil, fmt.Errorf("%s: missing version tag", path)
	}

	return &p, nil
}

// Save writes the parameter file to disk.
func (p *ParamsFile) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// MatchesImage reports whether the recorded image size matches the given
// size. A parameter set without a recorded size matches anything; callers
// treat a mismatch as a warning, not an error, since regions may still apply.
func (p *ParamsFile) MatchesImage(size geometry.Size) bool {
	if p.ImageSize == nil {
		return true
	}
	return p.ImageSize.Width == size.Width && p.ImageSize.Height == size.Height
}

// Validate checks every region against the image size.
func (p *ParamsFile) Validate(size geometry.Size) error {
	for i, r := range p.Regions {
		if err := r.Validate(size); err != nil {
			return fmt.Errorf("region %d: %w", i, err)
		}
	}
	return nil
}
