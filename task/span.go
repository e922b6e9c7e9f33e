package task

import (
	"fmt"

	"ParallelMandelbrot/mandelbrot"
)

// Span names one image row to compute. The render parameters travel once
// per worker (see Parameters), not once per span.
type Span struct {
	Row uint
}

func (s *Span) String() string {
	return fmt.Sprintf("{Span Row: %d}", s.Row)
}

// Result carries one span's escape outcomes in column order. Workers send
// outcomes rather than colors so the coordinator's classifier decides the
// final image, exactly as in a local render.
type Result struct {
	Row      uint
	Outcomes []mandelbrot.EscapeResult
}

func (r *Result) String() string {
	output := "{Result "
	output += fmt.Sprintf("Row: %d ", r.Row)
	output += fmt.Sprintf("Outcome Count: %d}", len(r.Outcomes))
	return output
}
