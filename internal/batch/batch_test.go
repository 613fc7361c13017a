package batch

import (
	"errors"
	"strings"
	"testing"

	"contour-tools/internal/field"
	"contour-tools/internal/render"
)

func TestJobsCrossProduct(t *testing.T) {
	jobs := Jobs(Axes{
		Colormaps:    "jet,viridis",
		Positions:    "right,bottom",
		Orientations: "vertical",
		Modes:        "standard,cae_inner,cae_outer",
	})
	if len(jobs) != 2*2*1*3 {
		t.Fatalf("Expected 12 jobs, got %d", len(jobs))
	}

	seen := make(map[string]bool)
	for _, j := range jobs {
		name := j.Filename("png")
		if seen[name] {
			t.Errorf("Duplicate job %s", name)
		}
		seen[name] = true
	}
}

func TestJobsDefaultSelectors(t *testing.T) {
	jobs := Jobs(Axes{Colormaps: "representative", Positions: "all", Orientations: "all", Modes: ""})
	want := len(render.Representative()) * len(render.Positions()) * len(render.Orientations())
	if len(jobs) != want {
		t.Errorf("Expected %d jobs, got %d", want, len(jobs))
	}
	for _, j := range jobs {
		if j.Mode != field.ModeStandard {
			t.Fatalf("Empty mode selector should default to standard, got %q", j.Mode)
		}
	}
}

func TestRunCountsFailures(t *testing.T) {
	jobs := Jobs(Axes{
		Colormaps:    "jet,hot,gray",
		Positions:    "right",
		Orientations: "vertical",
		Modes:        "standard",
	})

	s := Run(jobs, func(j Job) error {
		if j.Colormap == "hot" {
			return errors.New("boom")
		}
		return nil
	})

	if s.Processed != 2 || s.Failed != 1 {
		t.Errorf("Summary = %d processed, %d failed; want 2, 1", s.Processed, s.Failed)
	}
	if len(s.Errors) != 1 || !strings.Contains(s.Errors[0].Error(), "hot") {
		t.Errorf("Errors = %v", s.Errors)
	}
}
