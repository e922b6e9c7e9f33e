package main

import (
	"time"

	"ParallelMandelbrot/coordinator"
	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/misc"
	"ParallelMandelbrot/picture"
	"ParallelMandelbrot/terminal"
	"ParallelMandelbrot/viewer"
	"ParallelMandelbrot/web"
	"ParallelMandelbrot/worker"

	"github.com/BrugadaSyndrome/bslogger"
)

func main() {
	parseArguments()
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)

	switch {
	case isCoordinator:
		coordinator.NewCoordinator(coordinatorSettingsFile).Wait()
	case isWorker:
		worker.NewWorker(workerSettingsFile).Wait()
	case isViewer:
		startViewer(logger)
	case isWeb:
		startWeb(logger)
	default:
		startRender(logger)
	}
}

// startRender does a local render and writes it to a png file. The viewport
// comes from flags, or from a console prompt loop when -prompt is set.
func startRender(logger bslogger.Logger) {
	settings := mandelbrot.Settings{
		Boundary:      boundary,
		Height:        height,
		MaxIterations: maxIterations,
		Viewport:      flagViewport(),
		Width:         width,
		Workers:       int(workerCount),
	}

	if isPrompt {
		prompter := terminal.NewConsolePrompter()
		promptedWidth, err := prompter.GetUint("Enter image width: ")
		misc.CheckError(err, logger, misc.Fatal)
		promptedHeight, err := prompter.GetUint("Enter image height: ")
		misc.CheckError(err, logger, misc.Fatal)
		center, err := prompter.GetComplex("Enter the center of the viewport (like -0.75+0.1i): ")
		misc.CheckError(err, logger, misc.Fatal)
		extentWidth, err := prompter.GetFloat("Enter the viewport width on the plane: ")
		misc.CheckError(err, logger, misc.Fatal)
		extentHeight, err := prompter.GetFloat("Enter the viewport height on the plane: ")
		misc.CheckError(err, logger, misc.Fatal)
		iterations, err := prompter.GetUint("Enter max number of iterations: ")
		misc.CheckError(err, logger, misc.Fatal)

		settings.Width = promptedWidth
		settings.Height = promptedHeight
		settings.MaxIterations = iterations
		settings.Viewport = mandelbrot.ViewportFromCenter(center, complex(extentWidth, -extentHeight))
	}

	renderer, err := mandelbrot.NewRenderer(settings)
	misc.CheckError(err, logger, misc.Fatal)
	settings = renderer.Settings()

	startTime := time.Now()
	buffer := renderer.Render()
	logger.Infof("Rendered %dx%d pixels at %d iterations in %s",
		settings.Width, settings.Height, settings.MaxIterations, time.Since(startTime))

	fileName := outputFile
	if fileName == "" {
		fileName = picture.FileName(settings.Width, settings.Height, settings.MaxIterations)
	}
	misc.CheckError(picture.SavePNG(fileName, buffer, settings.Width, settings.Height), logger, misc.Fatal)
	logger.Infof("Saved image to %s", fileName)
}

func startViewer(logger bslogger.Logger) {
	view := viewer.NewViewer(flagViewport(), maxIterations)
	misc.CheckError(view.Run(), logger, misc.Fatal)
}

func startWeb(logger bslogger.Logger) {
	settings := mandelbrot.Settings{
		Boundary:      boundary,
		Height:        height,
		MaxIterations: maxIterations,
		Viewport:      flagViewport(),
		Width:         width,
		Workers:       int(workerCount),
	}
	misc.CheckError(web.NewServer(settings, webAddress).Run(), logger, misc.Fatal)
}

// flagViewport resolves the center/plane-size flags. The vertical extent is
// negated because rows grow downward while the imaginary axis grows upward.
func flagViewport() mandelbrot.Viewport {
	return mandelbrot.ViewportFromCenter(complex(centerX, centerY), complex(planeWidth, -planeHeight))
}
