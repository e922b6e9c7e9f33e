package main

import (
	"flag"
)

var (
	boundary, centerX, centerY, planeWidth, planeHeight    float64
	height, maxIterations, width, workerCount              uint
	coordinatorSettingsFile, outputFile, workerSettingsFile string
	webAddress                                              string
	isCoordinator, isWorker, isViewer, isWeb, isPrompt      bool
)

func parseArguments() {
	// Local render values
	flag.Float64Var(&boundary, "boundary", 4.0, "Squared magnitude past which an orbit counts as escaped")
	flag.Float64Var(&centerX, "centerX", -0.75, "Center x value of the viewport")
	flag.Float64Var(&centerY, "centerY", 0.0, "Center y value of the viewport")
	flag.UintVar(&height, "height", 1080, "Height of resulting image")
	flag.UintVar(&maxIterations, "maxIterations", 500, "Iterations to run to verify each point")
	flag.StringVar(&outputFile, "outputFile", "", "Name of the png file to write (defaults to resolution and iteration count)")
	flag.Float64Var(&planeHeight, "planeHeight", 2.4, "Height of the viewport on the complex plane")
	flag.Float64Var(&planeWidth, "planeWidth", 2.5, "Width of the viewport on the complex plane")
	flag.BoolVar(&isPrompt, "prompt", false, "Ask for the render parameters on the console instead of using flags")
	flag.UintVar(&width, "width", 1920, "Width of resulting image")
	flag.UintVar(&workerCount, "workers", 0, "Parallel workers for the render (0 picks the cpu count)")

	// Viewer values
	flag.BoolVar(&isViewer, "viewer", false, "Explore the set interactively in the terminal")

	// Web values
	flag.BoolVar(&isWeb, "web", false, "Serve the render over http")
	flag.StringVar(&webAddress, "webAddress", "localhost:8080", "Address for the web interface")

	// Coordinator values
	flag.BoolVar(&isCoordinator, "coordinator", false, "Run as the coordinator of a distributed render")
	flag.StringVar(&coordinatorSettingsFile, "coordinatorSettings", "coordinator.json", "Json file with coordinator settings")

	// Worker values
	flag.BoolVar(&isWorker, "worker", false, "Run as a worker of a distributed render")
	flag.StringVar(&workerSettingsFile, "workerSettings", "worker.json", "Json file with worker settings")

	flag.Parse()
}
