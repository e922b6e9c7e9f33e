package task

import (
	"fmt"

	"ParallelMandelbrot/mandelbrot"
)

// Parameters is the wire form of the render settings: only the numeric
// fields, so it survives gob encoding (the full Settings carries function
// values that do not).
type Parameters struct {
	Boundary      float64
	Height        uint
	MaxIterations uint
	Viewport      mandelbrot.Viewport
	Width         uint
}

func ParametersFromSettings(settings mandelbrot.Settings) Parameters {
	return Parameters{
		Boundary:      settings.Boundary,
		Height:        settings.Height,
		MaxIterations: settings.MaxIterations,
		Viewport:      settings.Viewport,
		Width:         settings.Width,
	}
}

// Settings rebuilds render settings on the worker side. Classification
// stays with the coordinator; workers only evaluate escape outcomes.
func (p Parameters) Settings() mandelbrot.Settings {
	return mandelbrot.Settings{
		Boundary:      p.Boundary,
		Height:        p.Height,
		MaxIterations: p.MaxIterations,
		Viewport:      p.Viewport,
		Width:         p.Width,
	}
}

func (p *Parameters) String() string {
	output := "{Parameters "
	output += fmt.Sprintf("Boundary: %f ", p.Boundary)
	output += fmt.Sprintf("Height: %d ", p.Height)
	output += fmt.Sprintf("Max Iterations: %d ", p.MaxIterations)
	output += fmt.Sprintf("Viewport: %s ", p.Viewport.String())
	output += fmt.Sprintf("Width: %d}", p.Width)
	return output
}
