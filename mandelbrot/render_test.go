package mandelbrot

import "testing"

func TestRenderBufferShape(t *testing.T) {
	for _, size := range []uint{1, 2, 100, 1920} {
		buffer, err := Render(size, size, DefaultView, 5)
		if err != nil {
			t.Fatalf("Render(%d, %d) failed: %s", size, size, err)
		}
		if uint(len(buffer)) != size*size {
			t.Errorf("Render(%d, %d) returned %d colors, want %d", size, size, len(buffer), size*size)
		}
	}
}

func TestRenderDeterminism(t *testing.T) {
	const width, height = 100, 80
	var first []Color

	for _, workers := range []int{1, 3, 7, 16} {
		renderer, err := NewRenderer(Settings{
			Height:        height,
			MaxIterations: 100,
			Viewport:      DefaultView,
			Width:         width,
			Workers:       workers,
		})
		if err != nil {
			t.Fatalf("NewRenderer with %d workers failed: %s", workers, err)
		}

		buffer := renderer.Render()
		if first == nil {
			first = buffer
			continue
		}
		for i := range buffer {
			if buffer[i] != first[i] {
				t.Fatalf("pixel %d differs with %d workers: %s vs %s",
					i, workers, buffer[i].String(), first[i].String())
			}
		}
	}
}

// TestRenderGolden pins the 3x3 render of the full-set frame at 50
// iterations. The values were computed once from the mapping and evaluator
// contracts; the two interior pixels on the right column never escape.
func TestRenderGolden(t *testing.T) {
	buffer, err := Render(3, 3, ViewportFromCorners(complex(-2.0, 1.2), complex(0.5, -1.2)), 50)
	if err != nil {
		t.Fatalf("Render failed: %s", err)
	}

	wantGray := []uint8{
		0, 1, 2,
		0, 6, 0,
		0, 6, 0,
	}
	for i, gray := range wantGray {
		want := Color{R: gray, G: gray, B: gray, A: 255}
		if buffer[i] != want {
			t.Errorf("pixel %d = %s, want %s", i, buffer[i].String(), want.String())
		}
	}
}

func TestRenderOutsideDisk(t *testing.T) {
	// Every sample is far outside the radius-2 disk, so every pixel escapes
	// on the very first application
	viewport := ViewportFromCenter(complex(10, 10), complex(0.5, -0.5))
	buffer, err := Render(8, 8, viewport, 20)
	if err != nil {
		t.Fatalf("Render failed: %s", err)
	}

	want := Grayscale(EscapeResult{Iteration: 0, Escaped: true})
	for i, c := range buffer {
		if c != want {
			t.Errorf("pixel %d = %s, want the iteration-0 color %s", i, c.String(), want.String())
		}
	}
}

func TestRenderZeroIterationBudget(t *testing.T) {
	buffer, err := Render(16, 16, DefaultView, 0)
	if err != nil {
		t.Fatalf("Render failed: %s", err)
	}
	for i, c := range buffer {
		if c != Black {
			t.Errorf("pixel %d = %s, want black", i, c.String())
		}
	}
}

func TestRenderInvalidGeometry(t *testing.T) {
	if _, err := Render(0, 10, DefaultView, 50); err == nil {
		t.Error("zero image width was accepted")
	}
	if _, err := Render(10, 0, DefaultView, 50); err == nil {
		t.Error("zero image height was accepted")
	}

	flat := ViewportFromCorners(complex(-1, 0), complex(1, 0))
	if _, err := Render(10, 10, flat, 50); err == nil {
		t.Error("zero-height viewport was accepted")
	}
}

func TestRenderRowMajorOrder(t *testing.T) {
	const width, height = 5, 4
	renderer, err := NewRenderer(Settings{
		Height:        height,
		MaxIterations: 50,
		Viewport:      DefaultView,
		Width:         width,
	})
	if err != nil {
		t.Fatalf("NewRenderer failed: %s", err)
	}

	buffer := renderer.Render()
	for row := uint(0); row < height; row++ {
		rowColors, err := renderer.RenderRow(row)
		if err != nil {
			t.Fatalf("RenderRow(%d) failed: %s", row, err)
		}
		for column := uint(0); column < width; column++ {
			if buffer[row*width+column] != rowColors[column] {
				t.Errorf("pixel (%d, %d) differs between Render and RenderRow", column, row)
			}
		}
	}
}

func TestEvaluateRowOutOfRange(t *testing.T) {
	renderer, err := NewRenderer(Settings{
		Height:        4,
		MaxIterations: 10,
		Viewport:      DefaultView,
		Width:         4,
	})
	if err != nil {
		t.Fatalf("NewRenderer failed: %s", err)
	}
	if _, err := renderer.EvaluateRow(4); err == nil {
		t.Error("row 4 of a 4-row image was accepted")
	}
}

func TestRenderProgress(t *testing.T) {
	updates := make(chan uint, 64)
	renderer, err := NewRenderer(Settings{
		Height:        8,
		MaxIterations: 10,
		Progress:      func(done uint, total uint) { updates <- done },
		Viewport:      DefaultView,
		Width:         8,
		Workers:       4,
	})
	if err != nil {
		t.Fatalf("NewRenderer failed: %s", err)
	}

	renderer.Render()
	close(updates)

	var last uint
	for done := range updates {
		if done > last {
			last = done
		}
	}
	if last != 64 {
		t.Errorf("final progress = %d, want 64", last)
	}
}
