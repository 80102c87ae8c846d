package metricgen

import (
	"context"

	"github.com/synthwatch/telegen/common/logging"
)

// Reporting cadence for the periodic status log (every minute at the
// default 15s push interval).
const statusEvery = 4

// Sink receives one cycle's samples as a single atomic push.
type Sink interface {
	Push(samples []Sample) error
}

// Task adapts the Generator to the scheduler: one cycle materializes a
// sparse batch and pushes it. A rejected push discards the batch; the
// next cycle re-samples rather than replaying stale values.
type Task struct {
	gen  *Generator
	sink Sink
	log  *logging.Logger
}

// NewTask wires a generator to a metric sink.
func NewTask(gen *Generator, s Sink, log *logging.Logger) *Task {
	return &Task{gen: gen, sink: s, log: log}
}

// Name identifies the task in logs.
func (t *Task) Name() string {
	return "metric-generator"
}

// RunCycle generates and pushes one batch.
func (t *Task) RunCycle(ctx context.Context, cycle int) error {
	samples, truncated := t.gen.Batch()
	if truncated {
		t.log.Warn("sample cap reached, batch truncated",
			logging.Cycle(cycle),
			logging.Samples(len(samples)),
		)
	}

	if err := t.sink.Push(samples); err != nil {
		return err
	}

	if cycle%statusEvery == 0 {
		topo := t.gen.Topology()
		t.log.Info("pushed metrics",
			logging.Cycle(cycle),
			logging.Samples(len(samples)),
			"tenants", len(topo.Tenants),
			"providers", len(topo.Providers),
		)
	}

	return nil
}
