// Package scheduler runs a generator engine as a supervised periodic
// task: compute and publish one batch, sleep, repeat. A failed cycle is
// logged and reported but never terminates the loop; only context
// cancellation stops it.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/synthwatch/telegen/common/logging"
)

// Task is one generation engine's per-cycle work: compute a batch and
// publish it to the engine's sink.
type Task interface {
	Name() string
	RunCycle(ctx context.Context, cycle int) error
}

// FailureReporter is implemented by tasks that report cycle failures
// through their own output channel in addition to the process log. The
// report is best-effort; if the channel itself is down it is dropped.
type FailureReporter interface {
	ReportFailure(cycle int, err error)
}

// Run drives the task until ctx is cancelled. Cycles are synchronous;
// the only suspension points are the end-of-cycle sleep and whatever
// blocking the task's sink call does. No cycle is retried: the next
// cycle's fresh draw is the de facto retry.
func Run(ctx context.Context, interval time.Duration, task Task, log *logging.Logger) {
	log.Info("starting periodic task",
		logging.Service(task.Name()),
		"interval", interval.String(),
	)

	for cycle := 1; ; cycle++ {
		if err := runCycle(ctx, task, cycle); err != nil {
			log.Error("cycle failed",
				logging.Service(task.Name()),
				logging.Cycle(cycle),
				logging.Error(err),
			)
			if r, ok := task.(FailureReporter); ok {
				r.ReportFailure(cycle, err)
			}
		}

		select {
		case <-ctx.Done():
			log.Info("stopping periodic task", logging.Service(task.Name()))
			return
		case <-time.After(interval):
		}
	}
}

// runCycle invokes one cycle, converting panics into errors so a single
// bad batch cannot take the generator down.
func runCycle(ctx context.Context, task Task, cycle int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in cycle: %v", r)
		}
	}()
	return task.RunCycle(ctx, cycle)
}
