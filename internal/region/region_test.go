package region

import (
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"contour-tools/pkg/geometry"

	"gocv.io/x/gocv"
)

var testSize = geometry.Size{Width: 200, Height: 150}

func TestNewRectangleNormalizesCorners(t *testing.T) {
	r, err := NewRectangle(
		geometry.PointInt{X: 90, Y: 80},
		geometry.PointInt{X: 10, Y: 20}, testSize)
	if err != nil {
		t.Fatalf("NewRectangle failed: %v", err)
	}
	want := []geometry.PointInt{{X: 10, Y: 20}, {X: 90, Y: 80}}
	if !reflect.DeepEqual(r.Points, want) {
		t.Errorf("Points = %v, want %v", r.Points, want)
	}
}

func TestNewRectangleClipsToImage(t *testing.T) {
	r, err := NewRectangle(
		geometry.PointInt{X: -30, Y: -10},
		geometry.PointInt{X: 500, Y: 400}, testSize)
	if err != nil {
		t.Fatalf("NewRectangle failed: %v", err)
	}
	want := []geometry.PointInt{{X: 0, Y: 0}, {X: 200, Y: 150}}
	if !reflect.DeepEqual(r.Points, want) {
		t.Errorf("Points = %v, want %v", r.Points, want)
	}
}

func TestNewRectangleRejectsTinySelections(t *testing.T) {
	_, err := NewRectangle(
		geometry.PointInt{X: 10, Y: 10},
		geometry.PointInt{X: 14, Y: 60}, testSize)
	if err == nil {
		t.Errorf("4px wide rectangle should be rejected")
	}
}

func TestNewFreehandRequiresThreePoints(t *testing.T) {
	_, err := NewFreehand([]geometry.PointInt{{X: 1, Y: 1}, {X: 5, Y: 5}}, testSize)
	if err == nil {
		t.Errorf("2-point freehand region should be rejected")
	}
}

func TestRegionContains(t *testing.T) {
	rect, _ := NewRectangle(
		geometry.PointInt{X: 10, Y: 10},
		geometry.PointInt{X: 50, Y: 40}, testSize)
	if !rect.Contains(geometry.PointInt{X: 30, Y: 25}) {
		t.Errorf("Interior point should be inside rectangle")
	}
	if rect.Contains(geometry.PointInt{X: 60, Y: 25}) {
		t.Errorf("Exterior point should be outside rectangle")
	}

	tri, _ := NewFreehand([]geometry.PointInt{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100},
	}, testSize)
	if !tri.Contains(geometry.PointInt{X: 10, Y: 10}) {
		t.Errorf("Interior point should be inside triangle")
	}
	if tri.Contains(geometry.PointInt{X: 90, Y: 90}) {
		t.Errorf("Exterior point should be outside triangle")
	}
}

func TestParamsRoundTrip(t *testing.T) {
	rect, _ := NewRectangle(
		geometry.PointInt{X: 10, Y: 20}, geometry.PointInt{X: 80, Y: 90}, testSize)
	poly, _ := NewFreehand([]geometry.PointInt{
		{X: 100, Y: 10}, {X: 150, Y: 40}, {X: 120, Y: 100}, {X: 95, Y: 60},
	}, testSize)

	params := NewParams(testSize, []Region{rect, poly})
	params.Description = "two regions"

	path := filepath.Join(t.TempDir(), "regions.json")
	if err := params.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams failed: %v", err)
	}
	if loaded.Version != Version {
		t.Errorf("Version = %q, want %q", loaded.Version, Version)
	}
	if len(loaded.Regions) != 2 {
		t.Fatalf("Loaded %d regions, want 2", len(loaded.Regions))
	}
	for i := range params.Regions {
		if loaded.Regions[i].Type != params.Regions[i].Type {
			t.Errorf("Region %d type = %q, want %q",
				i, loaded.Regions[i].Type, params.Regions[i].Type)
		}
		if !reflect.DeepEqual(loaded.Regions[i].Points, params.Regions[i].Points) {
			t.Errorf("Region %d points changed in round-trip", i)
		}
	}
	if !loaded.MatchesImage(testSize) {
		t.Errorf("Loaded params should match the original image size")
	}
	if loaded.MatchesImage(geometry.Size{Width: 10, Height: 10}) {
		t.Errorf("Loaded params should not match a different image size")
	}
}

func TestLoadParamsRejectsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"regions":[]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadParams(path); err == nil {
		t.Errorf("Parameter file without a version tag should be rejected")
	}
}

func TestBuildMaskUnionsRegions(t *testing.T) {
	rect, _ := NewRectangle(
		geometry.PointInt{X: 10, Y: 10}, geometry.PointInt{X: 40, Y: 40}, testSize)
	tri, _ := NewFreehand([]geometry.PointInt{
		{X: 100, Y: 100}, {X: 140, Y: 100}, {X: 120, Y: 140},
	}, testSize)

	mask := BuildMask(testSize, []Region{rect, tri})
	defer mask.Close()

	if mask.Rows() != testSize.Height || mask.Cols() != testSize.Width {
		t.Fatalf("Mask dims = %dx%d", mask.Cols(), mask.Rows())
	}

	cases := []struct {
		x, y   int
		inside bool
	}{
		{20, 20, true},   // inside rectangle
		{120, 110, true}, // inside triangle
		{70, 70, false},  // between the regions
		{5, 5, false},    // outside both
	}
	for _, c := range cases {
		v := mask.GetUCharAt(c.y, c.x)
		if c.inside && v != 255 {
			t.Errorf("Mask at (%d,%d) = %d, want 255", c.x, c.y, v)
		}
		if !c.inside && v != 0 {
			t.Errorf("Mask at (%d,%d) = %d, want 0", c.x, c.y, v)
		}
	}
}

func TestExtractWhitensOutside(t *testing.T) {
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(10, 20, 30, 0),
		testSize.Height, testSize.Width, gocv.MatTypeCV8UC3)
	defer img.Close()

	rect, _ := NewRectangle(
		geometry.PointInt{X: 50, Y: 50}, geometry.PointInt{X: 100, Y: 100}, testSize)

	out := Extract(img, testSize, []Region{rect})
	defer out.Close()

	// Inside keeps the source pixels (BGR 10,20,30).
	if out.GetUCharAt(70, 70*3) != 10 || out.GetUCharAt(70, 70*3+2) != 30 {
		t.Errorf("Interior pixel was not copied from the source")
	}
	// Outside is white.
	for ch := 0; ch < 3; ch++ {
		if v := out.GetUCharAt(10, 10*3+ch); v != 255 {
			t.Errorf("Exterior pixel channel %d = %d, want 255", ch, v)
		}
	}
}

func TestApplyCustomBackground(t *testing.T) {
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(1, 2, 3, 0),
		20, 20, gocv.MatTypeCV8UC3)
	defer img.Close()
	mask := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0),
		20, 20, gocv.MatTypeCV8UC1)
	defer mask.Close()

	out := Apply(img, mask, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	defer out.Close()

	// All-zero mask means every pixel takes the background (BGR 7,8,9).
	if out.GetUCharAt(5, 5*3) != 7 || out.GetUCharAt(5, 5*3+1) != 8 || out.GetUCharAt(5, 5*3+2) != 9 {
		t.Errorf("Background pixel = (%d,%d,%d), want BGR (7,8,9)",
			out.GetUCharAt(5, 5*3), out.GetUCharAt(5, 5*3+1), out.GetUCharAt(5, 5*3+2))
	}
}
