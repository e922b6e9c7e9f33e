package mandelbrot

import (
	"fmt"
	"runtime"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	Boundary      float64
	Classifier    Classifier `json:"-"`
	Height        uint
	MaxIterations uint
	Viewport      Viewport
	Width         uint
	Workers       int

	// Progress, when set, is called after each finished chunk of pixels.
	// It runs on worker goroutines and must be safe to call concurrently.
	Progress func(done uint, total uint) `json:"-"`
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Boundary: %f\n", s.Boundary)
	output += fmt.Sprintf("Height: %d\n", s.Height)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Viewport: %s\n", s.Viewport.String())
	output += fmt.Sprintf("Width: %d\n", s.Width)
	output += fmt.Sprintf("Workers: %d\n", s.Workers)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.Boundary <= 0 {
		s.Boundary = DefaultBoundary
	}
	if s.Classifier == nil {
		s.Classifier = Grayscale
	}
	if s.Height <= 0 {
		s.Height = 1080
	}
	// MaxIterations stays untouched: a budget of 0 is a valid request that
	// performs no iterations and classifies every pixel as non-escaping.
	if s.Viewport == (Viewport{}) {
		s.Viewport = DefaultView
	}
	if err := s.Viewport.Validate(); err != nil {
		return fmt.Errorf("invalid viewport %s - %s", s.Viewport.String(), err)
	}
	if s.Width <= 0 {
		s.Width = 1920
	}
	if s.Workers < 1 {
		s.Workers = runtime.NumCPU()
	}

	return nil
}
