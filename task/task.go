// Package task holds the work units exchanged between the coordinator and
// its remote workers. A task is a batch of row spans; workers walk the spans
// in order and return one color row per span.
package task

import (
	"errors"
	"fmt"
)

type Task struct {
	CurrentSpan   uint
	ID            uint
	Results       []Result
	Spans         []Span
	WorkerAddress string
}

func NewTask(id uint) Task {
	return Task{
		ID: id,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Result Count: %d ", len(t.Results))
	output += fmt.Sprintf("Span Count: %d}", len(t.Spans))
	return output
}

func (t *Task) AddSpanForRow(row uint) {
	t.Spans = append(t.Spans, Span{Row: row})
}

func (t *Task) AddSpansForRows(firstRow uint, rowCount uint) {
	for r := firstRow; r < firstRow+rowCount; r++ {
		t.AddSpanForRow(r)
	}
}

// GetNextSpan returns the span to be processed. Hand its result to AddResult
// before calling this method again.
func (t *Task) GetNextSpan() (Span, error) {
	if len(t.Results) >= len(t.Spans) {
		return Span{}, errors.New("no more spans")
	}
	return t.Spans[t.CurrentSpan], nil
}

// AddResult records a finished span and advances to the next one.
func (t *Task) AddResult(result Result) {
	t.Results = append(t.Results, result)
	t.CurrentSpan++
}
