// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package sorting

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var (
	sortRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algoscope_sort_runs_total",
		Help: "Total instrumented sort runs by algorithm",
	}, []string{"algorithm"})

	sortRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "algoscope_sort_run_duration_seconds",
		Help:    "Wall-clock duration of instrumented sort runs",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
	}, []string{"algorithm"})

	sortStepsRecorded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "algoscope_sort_steps_recorded",
		Help:    "Steps recorded per sort run",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"algorithm"})
)

// RunResult is the immutable bundle produced by one aggregated algorithm
// invocation. Input is the aggregator's own copy of the sequence as it
// was handed in; Output is the sorted result; Steps is the full step log.
// Duration is nil only when timing was not requested (no clock).
//
// A RunResult is created once and never mutated; the caller owns it, and
// any number of Replay calls over (Input, Steps) may proceed concurrently.
type RunResult[T cmp.Ordered] struct {
	Input    []T
	Output   []T
	Duration *time.Duration
	Steps    []Step[T]
}

// Clock supplies the timestamps the aggregator measures with. Injected so
// the aggregator stays testable against a fake; production callers use
// the system clock via Run.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock through time.Now, which carries the
// monotonic reading Go uses for subtraction.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Runner aggregates algorithm invocations. A nil Clock disables timing:
// results carry a nil Duration.
type Runner[T cmp.Ordered] struct {
	Clock Clock
}

var tracer = otel.Tracer("algoscope/sorting")

// Run invokes the algorithm over input and packages output, step log, and
// elapsed wall-clock time into a RunResult. The measurement wraps only
// the sort call itself. Run never fails: every algorithm in the set is
// total over all finite inputs, the empty sequence included.
func (r Runner[T]) Run(ctx context.Context, alg Algorithm[T], input []T) RunResult[T] {
	ctx, span := tracer.Start(ctx, "sorting.Run")
	defer span.End()

	result := RunResult[T]{Input: slices.Clone(input)}

	if r.Clock != nil {
		start := r.Clock.Now()
		sorted := alg.Sort(input)
		elapsed := r.Clock.Now().Sub(start)
		result.Output = sorted.Output
		result.Steps = sorted.Steps
		result.Duration = &elapsed
		sortRunDuration.WithLabelValues(alg.Name).Observe(elapsed.Seconds())
	} else {
		sorted := alg.Sort(input)
		result.Output = sorted.Output
		result.Steps = sorted.Steps
	}

	sortRunsTotal.WithLabelValues(alg.Name).Inc()
	sortStepsRecorded.WithLabelValues(alg.Name).Observe(float64(len(result.Steps)))
	span.SetAttributes(
		attribute.String("algorithm", alg.Name),
		attribute.Int("input_len", len(input)),
		attribute.Int("steps", len(result.Steps)),
	)

	return result
}

// Run aggregates one invocation with the system clock. See Runner.Run.
func Run[T cmp.Ordered](ctx context.Context, alg Algorithm[T], input []T) RunResult[T] {
	return Runner[T]{Clock: SystemClock{}}.Run(ctx, alg, input)
}
