// Package app wires the configuration, solver, sweep driver, and reporting
// layers into the foilbench executable.
package app

import (
	"errors"
	"flag"
	"io"

	"github.com/aerolab/foilbench/internal/config"
	"github.com/aerolab/foilbench/internal/xfoil"
)

// Application represents the foilbench application instance.
type Application struct {
	Config    config.AppConfig
	Solver    xfoil.Solver
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSolver injects a solver, bypassing the XFOIL binary lookup.
// Used by tests to run the pipeline against a stub.
func WithSolver(s xfoil.Solver) AppOption {
	return func(a *Application) { a.Solver = s }
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument vector, os.Args style (args[0] is the
//     program name).
//   - errWriter: The writer for configuration errors and usage output.
//   - opts: Optional overrides.
//
// Returns:
//   - *Application: The configured application.
//   - error: flag.ErrHelp when --help was requested, or a config error.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "foilbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
