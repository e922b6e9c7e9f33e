package mandelbrot

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Renderer applies the pixel pipeline to every coordinate of an image:
// sample the plane through the viewport, run the escape-time evaluator on
// the sample, classify the result into a color. Pixels never depend on one
// another, so the work is fanned out across a pool of goroutines that each
// own a disjoint range of the row-major output buffer.
type Renderer struct {
	settings Settings
}

func NewRenderer(settings Settings) (Renderer, error) {
	if err := settings.Verify(); err != nil {
		return Renderer{}, err
	}
	return Renderer{settings: settings}, nil
}

func (r *Renderer) Settings() Settings {
	return r.settings
}

// Render produces the full row-major color buffer, exactly Width*Height
// entries with index = row*Width + column. The buffer contents are identical
// for any worker count because each worker computes a fixed, pre-determined
// index range and no pixel reads another pixel's state.
func (r *Renderer) Render() []Color {
	width, height := r.settings.Width, r.settings.Height
	total := width * height
	buffer := make([]Color, total)

	workers := uint(r.settings.Workers)
	if workers > total {
		workers = total
	}
	if total == 0 {
		return buffer
	}

	// Split the flattened index range [0, total) into one contiguous chunk
	// per worker, rounding up so the last chunk may come up short.
	chunk := total / workers
	if total%workers != 0 {
		chunk++
	}

	var done atomic.Uint64
	var wait sync.WaitGroup
	for start := uint(0); start < total; start += chunk {
		end := start + chunk
		if end > total {
			end = total
		}

		wait.Add(1)
		go func(start, end uint) {
			defer wait.Done()
			for i := start; i < end; i++ {
				buffer[i] = r.renderPixel(i%width, i/width)
			}
			if r.settings.Progress != nil {
				r.settings.Progress(uint(done.Add(uint64(end-start))), total)
			}
		}(start, end)
	}
	wait.Wait()

	return buffer
}

// EvaluateRow runs the evaluator over one image row on the calling
// goroutine, leaving classification to the caller. The distributed workers
// use it to process row spans handed out by the coordinator.
func (r *Renderer) EvaluateRow(row uint) ([]EscapeResult, error) {
	if row >= r.settings.Height {
		return nil, fmt.Errorf("row %d outside image of height %d", row, r.settings.Height)
	}

	outcomes := make([]EscapeResult, r.settings.Width)
	for column := uint(0); column < r.settings.Width; column++ {
		c := r.settings.Viewport.PixelToComplex(column, row, r.settings.Width, r.settings.Height)
		outcomes[column] = EscapeTime(0, MandelbrotRule(c), r.settings.Boundary, r.settings.MaxIterations)
	}
	return outcomes, nil
}

// RenderRow is EvaluateRow plus classification.
func (r *Renderer) RenderRow(row uint) ([]Color, error) {
	outcomes, err := r.EvaluateRow(row)
	if err != nil {
		return nil, err
	}

	colors := make([]Color, len(outcomes))
	for column, outcome := range outcomes {
		colors[column] = r.settings.Classifier(outcome)
	}
	return colors, nil
}

func (r *Renderer) renderPixel(column uint, row uint) Color {
	c := r.settings.Viewport.PixelToComplex(column, row, r.settings.Width, r.settings.Height)
	result := EscapeTime(0, MandelbrotRule(c), r.settings.Boundary, r.settings.MaxIterations)
	return r.settings.Classifier(result)
}

// Render is the one-call form of the pipeline: grayscale classification of
// the given viewport at the given iteration budget.
func Render(width uint, height uint, viewport Viewport, iterationMax uint) ([]Color, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("image resolution %dx%d must be positive", width, height)
	}
	renderer, err := NewRenderer(Settings{
		Height:        height,
		MaxIterations: iterationMax,
		Viewport:      viewport,
		Width:         width,
	})
	if err != nil {
		return nil, err
	}
	return renderer.Render(), nil
}
