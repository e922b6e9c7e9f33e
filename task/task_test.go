package task

import (
	"testing"

	"ParallelMandelbrot/mandelbrot"
)

func TestTaskSpanHandout(t *testing.T) {
	taskTodo := NewTask(7)
	taskTodo.AddSpansForRows(10, 3)

	if len(taskTodo.Spans) != 3 {
		t.Fatalf("span count = %d, want 3", len(taskTodo.Spans))
	}

	for want := uint(10); want < 13; want++ {
		span, err := taskTodo.GetNextSpan()
		if err != nil {
			t.Fatalf("GetNextSpan failed at row %d: %s", want, err)
		}
		if span.Row != want {
			t.Errorf("span row = %d, want %d", span.Row, want)
		}
		taskTodo.AddResult(Result{Row: span.Row})
	}

	if _, err := taskTodo.GetNextSpan(); err == nil {
		t.Error("a fourth span was handed out of a three-span task")
	}
	if len(taskTodo.Results) != 3 {
		t.Errorf("result count = %d, want 3", len(taskTodo.Results))
	}
}

func TestGetNextSpanRepeatsUntilResult(t *testing.T) {
	taskTodo := NewTask(0)
	taskTodo.AddSpanForRow(5)

	first, err := taskTodo.GetNextSpan()
	if err != nil {
		t.Fatalf("GetNextSpan failed: %s", err)
	}
	second, err := taskTodo.GetNextSpan()
	if err != nil {
		t.Fatalf("repeated GetNextSpan failed: %s", err)
	}
	if first != second {
		t.Errorf("span changed without a result: %s vs %s", first.String(), second.String())
	}
}

func TestParametersRoundTrip(t *testing.T) {
	settings := mandelbrot.Settings{
		Boundary:      4.0,
		Height:        1080,
		MaxIterations: 500,
		Viewport:      mandelbrot.DefaultView,
		Width:         1920,
	}

	rebuilt := ParametersFromSettings(settings).Settings()
	if rebuilt.Boundary != settings.Boundary ||
		rebuilt.Height != settings.Height ||
		rebuilt.MaxIterations != settings.MaxIterations ||
		rebuilt.Viewport != settings.Viewport ||
		rebuilt.Width != settings.Width {
		t.Errorf("parameters round trip changed the settings: %s vs %s", rebuilt.String(), settings.String())
	}
}
