// Package config defines the application configuration and its resolution
// chain: command-line flags take precedence over FOILBENCH_-prefixed
// environment variables, which take precedence over the built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/aerolab/foilbench/internal/errors"
)

// EnvPrefix is the prefix of all environment variable overrides.
const EnvPrefix = "FOILBENCH_"

// Default sweep parameters. The airfoil set and alpha range mirror the
// standard comparison study this tool was built for: five common NACA
// sections from -10° to 24° in 2° steps at Re = 1e6.
var DefaultAirfoils = []string{"naca0012", "naca2412", "naca4412", "naca0015", "naca23012"}

const (
	DefaultReynolds    = 1e6
	DefaultAlphaStart  = -10.0
	DefaultAlphaEnd    = 24.0
	DefaultAlphaStep   = 2.0
	DefaultIterations  = 50
	DefaultXfoilPath   = "xfoil"
	DefaultCaseTimeout = 30 * time.Second
	DefaultTimeout     = 15 * time.Minute
	DefaultWorkers     = 1
	DefaultCSVPath     = "airfoil_performance_table.csv"
	DefaultPDFPath     = "airfoil_performance_table.pdf"
)

// AppConfig holds the full runtime configuration of a sweep.
type AppConfig struct {
	// Airfoils lists the geometry identifiers to sweep.
	Airfoils []string
	// Reynolds is the chord Reynolds number, fixed across the sweep.
	Reynolds float64
	// AlphaStart, AlphaEnd, AlphaStep define the inclusive angle-of-attack
	// range in degrees.
	AlphaStart float64
	AlphaEnd   float64
	AlphaStep  float64
	// Iterations is the solver's viscous iteration limit per case.
	Iterations int
	// XfoilPath is the solver binary name or path.
	XfoilPath string
	// CaseTimeout bounds a single solver invocation.
	CaseTimeout time.Duration
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Workers is the number of concurrent solver invocations.
	Workers int
	// CSVPath and PDFPath are the persisted output locations.
	CSVPath string
	PDFPath string
	// MetricsListen, when non-empty, serves Prometheus metrics on this
	// address for the duration of the run.
	MetricsListen string
	// TUI opens the results dashboard after the sweep.
	TUI bool
	// NoColor disables colorized terminal output.
	NoColor bool
	// Quiet suppresses all non-result output.
	Quiet bool
	// Verbose enables debug logging.
	Verbose bool
}

// Alphas expands the configured range into the ascending list of angles.
// The end of the range is inclusive, so the default -10..24 step 2
// produces 18 angles.
func (c AppConfig) Alphas() []float64 {
	var alphas []float64
	// Small epsilon absorbs float accumulation at the inclusive end.
	for a := c.AlphaStart; a <= c.AlphaEnd+1e-9; a += c.AlphaStep {
		alphas = append(alphas, a)
	}
	return alphas
}

// defaultConfig returns the built-in defaults.
func defaultConfig() AppConfig {
	return AppConfig{
		Airfoils:    append([]string(nil), DefaultAirfoils...),
		Reynolds:    DefaultReynolds,
		AlphaStart:  DefaultAlphaStart,
		AlphaEnd:    DefaultAlphaEnd,
		AlphaStep:   DefaultAlphaStep,
		Iterations:  DefaultIterations,
		XfoilPath:   DefaultXfoilPath,
		CaseTimeout: DefaultCaseTimeout,
		Timeout:     DefaultTimeout,
		Workers:     DefaultWorkers,
		CSVPath:     DefaultCSVPath,
		PDFPath:     DefaultPDFPath,
	}
}

// ParseConfig builds the configuration from command-line arguments,
// environment variables, and defaults (in that precedence order), then
// validates it.
//
// Parameters:
//   - programName: The program name for usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: The writer for flag parsing errors and usage.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, or a validation error.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	airfoils := fs.String("airfoils", strings.Join(cfg.Airfoils, ","),
		"comma-separated airfoil identifiers (NACA designations or coordinate files)")
	fs.Float64Var(&cfg.Reynolds, "reynolds", cfg.Reynolds, "chord Reynolds number")
	fs.Float64Var(&cfg.AlphaStart, "alpha-start", cfg.AlphaStart, "first angle of attack in degrees")
	fs.Float64Var(&cfg.AlphaEnd, "alpha-end", cfg.AlphaEnd, "last angle of attack in degrees (inclusive)")
	fs.Float64Var(&cfg.AlphaStep, "alpha-step", cfg.AlphaStep, "angle of attack increment in degrees")
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "XFOIL viscous iteration limit per case")
	fs.StringVar(&cfg.XfoilPath, "xfoil", cfg.XfoilPath, "XFOIL binary name or path")
	fs.DurationVar(&cfg.CaseTimeout, "case-timeout", cfg.CaseTimeout, "timeout per solver invocation")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout for the whole run")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent solver invocations")
	fs.StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "output path of the results table")
	fs.StringVar(&cfg.PDFPath, "pdf", cfg.PDFPath, "output path of the plot report")
	fs.StringVar(&cfg.MetricsListen, "metrics-listen", cfg.MetricsListen,
		"address to serve Prometheus metrics on during the run (empty disables)")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "open the results dashboard after the sweep")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colorized output")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress progress and summary output")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "shorthand for -verbose")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	cfg.Airfoils = splitList(*airfoils)
	applyEnvOverrides(&cfg, fs)

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func Validate(cfg AppConfig) error {
	if len(cfg.Airfoils) == 0 {
		return apperrors.ValidationError{Field: "airfoils", Message: "at least one airfoil is required"}
	}
	for _, a := range cfg.Airfoils {
		if strings.TrimSpace(a) == "" {
			return apperrors.ValidationError{Field: "airfoils", Message: "empty airfoil identifier"}
		}
	}
	if cfg.Reynolds <= 0 {
		return apperrors.ValidationError{Field: "reynolds", Message: "must be positive"}
	}
	if cfg.AlphaStep <= 0 {
		return apperrors.ValidationError{Field: "alpha-step", Message: "must be positive"}
	}
	if cfg.AlphaEnd < cfg.AlphaStart {
		return apperrors.ValidationError{
			Field:   "alpha-end",
			Message: fmt.Sprintf("must not be below alpha-start (%g)", cfg.AlphaStart),
		}
	}
	if cfg.Iterations <= 0 {
		return apperrors.ValidationError{Field: "iterations", Message: "must be positive"}
	}
	if cfg.Workers < 1 {
		return apperrors.ValidationError{Field: "workers", Message: "must be at least 1"}
	}
	if cfg.CaseTimeout <= 0 || cfg.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "timeouts must be positive"}
	}
	return nil
}

// splitList splits a comma-separated flag value, trimming whitespace and
// dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
