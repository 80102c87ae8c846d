package authgen

import (
	"context"
	"fmt"
	"time"

	"github.com/synthwatch/telegen/internal/sink"
)

// Reporting cadence for the periodic status summary.
const statusEvery = 10

// EventSink is where the task hands completed batches. Writes are
// fire-and-forget for consumers; errors surface only to the supervisor.
type EventSink interface {
	Emit(v any) error
}

// Task adapts the Generator to the scheduler: one cycle generates a
// batch and streams it to the event sink.
type Task struct {
	gen  *Generator
	sink EventSink
}

// NewTask wires a generator to an event sink.
func NewTask(gen *Generator, s EventSink) *Task {
	return &Task{gen: gen, sink: s}
}

// Name identifies the task in logs and error records.
func (t *Task) Name() string {
	return "auth-log-generator"
}

// RunCycle emits one batch. Every 10th cycle a summary record follows
// the batch through the same channel.
func (t *Task) RunCycle(ctx context.Context, cycle int) error {
	events := t.gen.Batch(time.Now())

	for _, ev := range events {
		if err := t.sink.Emit(ev); err != nil {
			return err
		}
	}

	if cycle%statusEvery == 0 {
		failures := 0
		for _, ev := range events {
			if !ev.Auth.Success {
				failures++
			}
		}
		msg := fmt.Sprintf("Generated %d events (%d failures)", len(events), failures)
		if err := t.sink.Emit(sink.Status(t.Name(), msg, cycle)); err != nil {
			return err
		}
	}

	return nil
}

// ReportFailure writes an ERROR record through the event channel.
// Best-effort: if the sink itself is down the report is dropped.
func (t *Task) ReportFailure(cycle int, err error) {
	_ = t.sink.Emit(sink.Failure(t.Name(), cycle, err))
}
