package coordinator

import (
	"encoding/json"
	"fmt"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/picture"

	"github.com/BrugadaSyndrome/bslogger"
)

type settings struct {
	logger bslogger.Logger

	Boundary      float64
	CenterX       float64
	CenterY       float64
	Height        uint
	MaxIterations uint
	OutputFile    string
	PlaneHeight   float64
	PlaneWidth    float64
	RowsPerTask   uint
	ServerAddress string
	Width         uint
}

func NewSettings(settingsFile string) settings {
	s := settings{
		logger: bslogger.NewLogger("CoordinatorSettings", bslogger.Normal, nil),
	}
	fileBytes, err := misc.ReadFile(settingsFile)
	misc.CheckError(err, s.logger, misc.Fatal)
	misc.CheckError(json.Unmarshal(fileBytes, &s), s.logger, misc.Fatal)
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("My Address: %s\n", s.ServerAddress)
	output += fmt.Sprintf("Output File: %s\n", s.OutputFile)
	output += fmt.Sprintf("Rows Per Task: %d\n", s.RowsPerTask)
	return output
}

func (s *settings) Verify() error {
	if s.Height <= 0 {
		s.Height = 1080
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = 1000
	}
	// The viewport is configured as a center plus positive plane sizes; the
	// default frames the whole set.
	if s.PlaneWidth <= 0 || s.PlaneHeight <= 0 {
		s.CenterX = real(mandelbrot.DefaultView.Center())
		s.CenterY = imag(mandelbrot.DefaultView.Center())
		s.PlaneWidth = real(mandelbrot.DefaultView.Extent())
		s.PlaneHeight = -imag(mandelbrot.DefaultView.Extent())
	}
	if s.RowsPerTask < 1 {
		s.RowsPerTask = 1
	}
	if s.ServerAddress == "" {
		s.ServerAddress = fmt.Sprintf("%s:%s", misc.GetLocalAddress(), "51000")
	}
	if s.Width <= 0 {
		s.Width = 1920
	}
	if s.OutputFile == "" {
		s.OutputFile = picture.FileName(s.Width, s.Height, s.MaxIterations)
	}
	return nil
}

// RenderSettings resolves the configured frame into the core settings.
// Rows grow downward on the image while the imaginary axis grows upward, so
// the vertical extent is negated.
func (s *settings) RenderSettings() mandelbrot.Settings {
	return mandelbrot.Settings{
		Boundary:      s.Boundary,
		Height:        s.Height,
		MaxIterations: s.MaxIterations,
		Viewport: mandelbrot.ViewportFromCenter(
			complex(s.CenterX, s.CenterY),
			complex(s.PlaneWidth, -s.PlaneHeight),
		),
		Width: s.Width,
	}
}
