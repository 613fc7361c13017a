// Package batch expands selector axes into render jobs and runs them with
// per-job error accounting.
package batch

import (
	"fmt"
	"log"

	"contour-tools/internal/field"
	"contour-tools/internal/render"
)

// Job is one point in the colormap x position x orientation x mode grid.
type Job struct {
	Colormap    string
	Position    render.Position
	Orientation render.Orientation
	Mode        field.Mode
}

// Filename returns the output file name for the job.
func (j Job) Filename(ext string) string {
	return render.Filename(j.Colormap, j.Position, j.Orientation, j.Mode, ext)
}

// Axes holds the selector strings for each job axis. Each selector accepts
// "all", "representative", or a comma-separated list.
type Axes struct {
	Colormaps    string
	Positions    string
	Orientations string
	Modes        string
}

// Jobs expands the axes into the full cross product.
func Jobs(a Axes) []Job {
	colormaps := render.ExpandSelector(a.Colormaps, render.Names(), render.Representative())
	positions := render.ExpandSelector(a.Positions, positionNames(), positionNames())
	orientations := render.ExpandSelector(a.Orientations, orientationNames(), orientationNames())

	// An unset mode selector means plain contour plots, not the CAE variants.
	modes := []string{string(field.ModeStandard)}
	if a.Modes != "" {
		modes = render.ExpandSelector(a.Modes, modeNames(), []string{string(field.ModeStandard)})
	}

	jobs := make([]Job, 0, len(colormaps)*len(positions)*len(orientations)*len(modes))
	for _, cm := range colormaps {
		for _, pos := range positions {
			for _, orient := range orientations {
				for _, mode := range modes {
					jobs = append(jobs, Job{
						Colormap:    cm,
						Position:    render.Position(pos),
						Orientation: render.Orientation(orient),
						Mode:        field.Mode(mode),
					})
				}
			}
		}
	}
	return jobs
}

func positionNames() []string {
	positions := render.Positions()
	names := make([]string, len(positions))
	for i, p := range positions {
		names[i] = string(p)
	}
	return names
}

func orientationNames() []string {
	orientations := render.Orientations()
	names := make([]string, len(orientations))
	for i, o := range orientations {
		names[i] = string(o)
	}
	return names
}

func modeNames() []string {
	modes := field.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return names
}

// Summary reports the outcome of a batch run.
type Summary struct {
	Processed int
	Failed    int
	Errors    []error
}

// Run executes fn for every job in order. A failing job is logged and
// counted; the run continues with the remaining jobs.
func Run(jobs []Job, fn func(Job) error) Summary {
	var s Summary
	for _, j := range jobs {
		if err := fn(j); err != nil {
			log.Printf("batch: %s: %v", j.Filename("png"), err)
			s.Failed++
			s.Errors = append(s.Errors, fmt.Errorf("%s: %w", j.Filename("png"), err))
			continue
		}
		s.Processed++
	}
	return s
}
