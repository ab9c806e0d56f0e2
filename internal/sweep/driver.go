// Package sweep iterates the configured airfoil × angle-of-attack grid,
// invoking the external solver once per case and collecting the results
// into an ordered table.
package sweep

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/aerolab/foilbench/internal/aero"
	apperrors "github.com/aerolab/foilbench/internal/errors"
	"github.com/aerolab/foilbench/internal/logging"
	"github.com/aerolab/foilbench/internal/metrics"
	"github.com/aerolab/foilbench/internal/xfoil"
)

const tracerName = "github.com/aerolab/foilbench/internal/sweep"

// Driver runs a sweep over a case list. Cases are independent; the driver
// may run them concurrently, but each result lands in its case's slot so
// the output table order is deterministic regardless of worker count.
type Driver struct {
	solver  xfoil.Solver
	workers int
	log     logging.Logger
	metrics *metrics.SweepMetrics
	tracer  trace.Tracer
}

// Option configures a Driver during construction.
type Option func(*Driver)

// WithWorkers sets the number of concurrent solver invocations.
// Values below one are treated as one (fully sequential).
func WithWorkers(n int) Option {
	return func(d *Driver) {
		if n < 1 {
			n = 1
		}
		d.workers = n
	}
}

// WithLogger sets the driver's logger.
func WithLogger(log logging.Logger) Option {
	return func(d *Driver) { d.log = log }
}

// WithMetrics attaches Prometheus instrumentation to the driver.
func WithMetrics(m *metrics.SweepMetrics) Option {
	return func(d *Driver) { d.metrics = m }
}

// New creates a sweep driver around a solver. By default the sweep is
// sequential and unlogged.
func New(solver xfoil.Solver, opts ...Option) *Driver {
	d := &Driver{
		solver:  solver,
		workers: 1,
		log:     logging.Nop(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes the sweep and returns the result table with exactly one row
// per case, in case order.
//
// A case that fails to converge is recorded as a missing row and the sweep
// continues. Any other solver error aborts the sweep, as does context
// cancellation between cases.
//
// Parameters:
//   - ctx: The context bounding the whole sweep.
//   - cases: The (airfoil, Reynolds, alpha) combinations to solve.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer handed to the progress reporter.
//
// Returns:
//   - aero.Table: One Result per case, nil when the sweep aborted.
//   - error: The error that aborted the sweep, or nil.
func (d *Driver) Run(ctx context.Context, cases []aero.Case, reporter ProgressReporter, out io.Writer) (aero.Table, error) {
	ctx, span := d.tracer.Start(ctx, "sweep.run", trace.WithAttributes(
		attribute.Int("cases", len(cases)),
		attribute.Int("workers", d.workers),
	))
	defer span.End()

	results := make(aero.Table, len(cases))
	// Buffer for every case so a solver goroutine never blocks on a slow
	// or aborting display loop.
	progressChan := make(chan ProgressUpdate, len(cases)+1)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(cases), out)

	var completed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i, c := range cases {
		idx, cs := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			coeffs, err := d.solver.Coefficients(gctx, cs)
			elapsed := time.Since(start)

			switch {
			case err == nil:
				results[idx] = aero.Result{Case: cs, Coefficients: coeffs, Converged: true}
			case apperrors.IsConvergence(err):
				// Missing data point; the sweep continues.
				results[idx] = aero.MissingResult(cs)
			default:
				return apperrors.WrapError(err, "case %s at alpha %.1f", cs.Airfoil, cs.Alpha)
			}

			if d.metrics != nil {
				d.metrics.ObserveCase(elapsed.Seconds(), results[idx].Converged)
			}
			d.log.Debug("case finished",
				logging.String("airfoil", cs.Airfoil),
				logging.Float64("alpha", cs.Alpha),
				logging.Duration("elapsed", elapsed))

			progressChan <- ProgressUpdate{
				Case:      cs,
				Completed: int(completed.Add(1)),
				Total:     len(cases),
				Converged: results[idx].Converged,
				Duration:  elapsed,
			}
			return nil
		})
	}

	err := g.Wait()
	close(progressChan)
	displayWg.Wait()

	if err != nil {
		d.log.Error("sweep aborted", logging.Err(err))
		return nil, err
	}

	d.log.Info("sweep complete",
		logging.Int("cases", len(cases)),
		logging.Int("converged", results.ConvergedCount()))
	return results, nil
}
