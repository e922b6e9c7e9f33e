// Package viewer presents renders in the terminal. Every character cell
// shows two vertically stacked pixels through the upper-half block, so the
// image resolution follows the terminal size. Arrow keys pan, +/- zoom, s
// saves the current frame, q quits.
//
// The core render always runs to completion; when the viewport changes
// mid-render the stale frame is simply discarded on arrival. Cancellation
// lives here, not in the pipeline.
package viewer

import (
	"fmt"
	"sync/atomic"

	"ParallelMandelbrot/mandelbrot"
	"ParallelMandelbrot/picture"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/gdamore/tcell/v2"
)

const (
	panFraction   = 0.1
	zoomInFactor  = 0.8
	zoomOutFactor = 1.25
)

type frame struct {
	buffer     []mandelbrot.Color
	generation uint64
	height     uint
	width      uint
}

type Viewer struct {
	boundary      float64
	generation    atomic.Uint64
	logger        bslogger.Logger
	maxIterations uint
	screen        tcell.Screen
	viewport      mandelbrot.Viewport
}

func NewViewer(viewport mandelbrot.Viewport, maxIterations uint) *Viewer {
	return &Viewer{
		boundary:      mandelbrot.DefaultBoundary,
		logger:        bslogger.NewLogger("Viewer", bslogger.Normal, nil),
		maxIterations: maxIterations,
		viewport:      viewport,
	}
}

// Run owns the terminal until the user quits.
func (v *Viewer) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("unable to open screen - %s", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to initialize screen - %s", err)
	}
	v.screen = screen
	defer screen.Fini()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	frames := make(chan frame, 1)
	v.startRender(frames)

	var current frame
	for {
		select {
		case f := <-frames:
			if f.generation != v.generation.Load() {
				// A newer viewport superseded this frame while it rendered
				continue
			}
			current = f
			v.draw(f)

		case event := <-events:
			switch event := event.(type) {
			case *tcell.EventResize:
				screen.Sync()
				v.startRender(frames)

			case *tcell.EventKey:
				if v.handleKey(event, current, frames) {
					close(quit)
					return nil
				}
			}
		}
	}
}

// handleKey reacts to one key press and reports whether to quit.
func (v *Viewer) handleKey(event *tcell.EventKey, current frame, frames chan frame) bool {
	extent := v.viewport.Extent()
	center := v.viewport.Center()

	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.setViewport(center+complex(0, -panFraction*imag(extent)), extent, frames)
	case tcell.KeyDown:
		v.setViewport(center+complex(0, panFraction*imag(extent)), extent, frames)
	case tcell.KeyLeft:
		v.setViewport(center-complex(panFraction*real(extent), 0), extent, frames)
	case tcell.KeyRight:
		v.setViewport(center+complex(panFraction*real(extent), 0), extent, frames)
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			return true
		case '+', '=':
			v.setViewport(center, extent*complex(zoomInFactor, 0), frames)
		case '-', '_':
			v.setViewport(center, extent*complex(zoomOutFactor, 0), frames)
		case 's':
			v.saveFrame(current)
		}
	}
	return false
}

func (v *Viewer) setViewport(center complex128, extent complex128, frames chan frame) {
	v.viewport = mandelbrot.ViewportFromCenter(center, extent)
	v.startRender(frames)
}

// startRender kicks off a render of the current viewport at the current
// terminal size. The generation counter marks frames from older viewports
// as stale.
func (v *Viewer) startRender(frames chan frame) {
	columns, rows := v.screen.Size()
	if columns <= 0 || rows <= 0 {
		return
	}
	width, height := uint(columns), uint(rows)*2

	generation := v.generation.Add(1)
	settings := mandelbrot.Settings{
		Boundary:      v.boundary,
		Height:        height,
		MaxIterations: v.maxIterations,
		Viewport:      v.viewport,
		Width:         width,
	}

	go func() {
		renderer, err := mandelbrot.NewRenderer(settings)
		if err != nil {
			v.logger.Errorf("Unable to render frame: %s", err)
			return
		}
		frames <- frame{
			buffer:     renderer.Render(),
			generation: generation,
			height:     height,
			width:      width,
		}
	}()
}

func (v *Viewer) draw(f frame) {
	for row := uint(0); row+1 < f.height; row += 2 {
		for column := uint(0); column < f.width; column++ {
			top := f.buffer[row*f.width+column]
			bottom := f.buffer[(row+1)*f.width+column]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			v.screen.SetContent(int(column), int(row/2), '▀', nil, style)
		}
	}
	v.screen.Show()
}

func (v *Viewer) saveFrame(f frame) {
	if f.buffer == nil {
		return
	}
	fileName := picture.FileName(f.width, f.height, v.maxIterations)
	if err := picture.SavePNG(fileName, f.buffer, f.width, f.height); err != nil {
		v.logger.Errorf("Unable to save frame: %s", err)
		return
	}
	v.logger.Infof("Saved frame to %s", fileName)
}
