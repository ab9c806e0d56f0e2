//go:generate mockgen -source=xfoil.go -destination=mocks/mock_solver.go -package=mocks

// Package xfoil adapts the external XFOIL binary to the sweep pipeline.
//
// XFOIL is driven through its interactive command interface: a command
// script is written to stdin selecting the airfoil, setting the viscous
// Reynolds number and iteration limit, accumulating a polar to a file, and
// computing a single angle of attack. The polar accumulation file is then
// parsed for the coefficients. A missing polar data line means the viscous
// solution did not converge for that case.
package xfoil

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/aerolab/foilbench/internal/aero"
	apperrors "github.com/aerolab/foilbench/internal/errors"
	"github.com/aerolab/foilbench/internal/logging"
)

// Solver computes aerodynamic coefficients for a single case. The real
// implementation shells out to XFOIL; tests substitute a mock.
type Solver interface {
	// Name identifies the solver implementation.
	Name() string
	// Coefficients computes the coefficients for one case. It returns a
	// ConvergenceError when the solver ran but produced no converged
	// solution, and a SolverError for any failure of the solver itself.
	Coefficients(ctx context.Context, c aero.Case) (aero.Coefficients, error)
}

// DefaultIterations is the viscous solution iteration limit passed to XFOIL
// per case.
const DefaultIterations = 50

// DefaultCaseTimeout bounds a single XFOIL invocation. XFOIL normally
// finishes a case in well under a second; a stuck process (e.g. waiting on
// graphics) is killed at this limit.
const DefaultCaseTimeout = 30 * time.Second

const tracerName = "github.com/aerolab/foilbench/internal/xfoil"

// RunnerOption configures a Runner during construction.
type RunnerOption func(*Runner)

// WithIterations sets the viscous iteration limit.
func WithIterations(n int) RunnerOption {
	return func(r *Runner) { r.iterations = n }
}

// WithCaseTimeout sets the per-invocation timeout.
func WithCaseTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) { r.timeout = d }
}

// WithLogger sets the runner's logger.
func WithLogger(log logging.Logger) RunnerOption {
	return func(r *Runner) { r.log = log }
}

// Runner invokes the XFOIL binary for one case at a time. A Runner is safe
// for concurrent use: every invocation runs in its own scratch directory.
type Runner struct {
	path       string
	iterations int
	timeout    time.Duration
	log        logging.Logger
	tracer     trace.Tracer
}

// NewRunner resolves the XFOIL binary and builds a Runner. A binary that
// cannot be found is a configuration error: the whole run must abort rather
// than record every case as missing.
//
// Parameters:
//   - path: The binary name or path to resolve (e.g. "xfoil").
//   - opts: Optional runner configuration.
//
// Returns:
//   - *Runner: The configured runner.
//   - error: A ConfigError when the binary cannot be resolved.
func NewRunner(path string, opts ...RunnerOption) (*Runner, error) {
	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, apperrors.NewConfigError("xfoil binary %q not found in PATH: %v", path, err)
	}

	r := &Runner{
		path:       resolved,
		iterations: DefaultIterations,
		timeout:    DefaultCaseTimeout,
		log:        logging.Nop(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Name identifies the solver implementation.
func (r *Runner) Name() string { return "XFOIL" }

// Coefficients runs XFOIL for one case and parses the resulting polar.
func (r *Runner) Coefficients(ctx context.Context, c aero.Case) (aero.Coefficients, error) {
	ctx, span := r.tracer.Start(ctx, "xfoil.case", trace.WithAttributes(
		attribute.String("airfoil", c.Airfoil),
		attribute.Float64("alpha", c.Alpha),
		attribute.Float64("reynolds", c.Reynolds),
	))
	defer span.End()

	dir, err := os.MkdirTemp("", "foilbench-xfoil-")
	if err != nil {
		return aero.Coefficients{}, apperrors.SolverError{Cause: err}
	}
	defer os.RemoveAll(dir)

	polarPath := filepath.Join(dir, "polar.txt")
	script := BuildScript(c, r.iterations, filepath.Base(polarPath))

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.path)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(script)
	output, err := cmd.CombinedOutput()

	switch ctxErr := ctx.Err(); {
	case errors.Is(ctxErr, context.DeadlineExceeded):
		return aero.Coefficients{}, apperrors.TimeoutError{Operation: "xfoil " + c.Airfoil, Limit: r.timeout}
	case errors.Is(ctxErr, context.Canceled):
		// The run is shutting down (signal or parent cancel); the killed
		// process is not a solver fault.
		return aero.Coefficients{}, ctxErr
	}
	if err != nil {
		r.log.Error("xfoil invocation failed",
			logging.String("airfoil", c.Airfoil),
			logging.Float64("alpha", c.Alpha),
			logging.Err(err))
		return aero.Coefficients{}, apperrors.SolverError{
			Cause: apperrors.WrapError(err, "running %s (output: %s)", r.path, firstLine(output)),
		}
	}

	coeffs, found, err := ParsePolarFile(polarPath, c.Alpha)
	if err != nil {
		return aero.Coefficients{}, apperrors.SolverError{Cause: err}
	}
	if !found {
		r.log.Warn("case did not converge",
			logging.String("airfoil", c.Airfoil),
			logging.Float64("alpha", c.Alpha))
		return aero.Coefficients{}, apperrors.ConvergenceError{Airfoil: c.Airfoil, Alpha: c.Alpha}
	}

	return coeffs.Round3(), nil
}

// firstLine trims solver output to its first line for error messages.
func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 120 {
		s = s[:120]
	}
	return s
}
