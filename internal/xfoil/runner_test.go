package xfoil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/aerolab/foilbench/internal/aero"
	apperrors "github.com/aerolab/foilbench/internal/errors"
)

// fakeSolverBinary writes an executable shell script standing in for the
// XFOIL binary.
func fakeSolverBinary(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "xfoil")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewRunnerMissingBinary(t *testing.T) {
	_, err := NewRunner(filepath.Join(t.TempDir(), "no-such-solver"))
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
}

// TestRunnerCanceledContext verifies that cancellation surfaces as the
// context error, not as a solver failure: a SIGINT mid-case must map to the
// canceled exit path, not the solver-error one.
func TestRunnerCanceledContext(t *testing.T) {
	runner, err := NewRunner(fakeSolverBinary(t, "sleep 5\n"))
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = runner.Coefficients(ctx, aero.Case{Airfoil: "naca0012", Reynolds: 1e6, Alpha: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	var solverErr apperrors.SolverError
	if errors.As(err, &solverErr) {
		t.Errorf("cancellation must not be classified as a solver failure: %v", err)
	}
}

// TestRunnerCaseTimeout verifies that the per-case limit produces a typed
// timeout error rather than a solver failure.
func TestRunnerCaseTimeout(t *testing.T) {
	runner, err := NewRunner(fakeSolverBinary(t, "sleep 5\n"),
		WithCaseTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	_, err = runner.Coefficients(context.Background(), aero.Case{Airfoil: "naca0012", Reynolds: 1e6, Alpha: 2})
	var timeoutErr apperrors.TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("err = %v, want TimeoutError", err)
	}
}
