package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aerolab/foilbench/internal/aero"
	"github.com/aerolab/foilbench/internal/cli"
	apperrors "github.com/aerolab/foilbench/internal/errors"
	"github.com/aerolab/foilbench/internal/logging"
	"github.com/aerolab/foilbench/internal/metrics"
	"github.com/aerolab/foilbench/internal/report"
	"github.com/aerolab/foilbench/internal/server"
	"github.com/aerolab/foilbench/internal/sweep"
	"github.com/aerolab/foilbench/internal/tui"
	"github.com/aerolab/foilbench/internal/ui"
	"github.com/aerolab/foilbench/internal/xfoil"
)

// Run executes the sweep pipeline: solve every case, persist the CSV table
// and the PDF report, and present the best-airfoil selection.
//
// Returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	cfg := a.Config

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(cfg.NoColor)

	log := logging.Nop()
	if cfg.Verbose {
		log = logging.NewDefaultLogger()
	}

	// Lifecycle: whole-run timeout plus signal cancellation
	ctx, cancelTimeout := context.WithTimeout(ctx, cfg.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	sweepMetrics := metrics.NewSweepMetrics()
	if cfg.MetricsListen != "" {
		server.New(cfg.MetricsListen, sweepMetrics, log).Start(ctx)
	}

	solver := a.Solver
	if solver == nil {
		runner, err := xfoil.NewRunner(cfg.XfoilPath,
			xfoil.WithIterations(cfg.Iterations),
			xfoil.WithCaseTimeout(cfg.CaseTimeout),
			xfoil.WithLogger(log))
		if err != nil {
			return apperrors.HandleSweepError(err, a.ErrWriter)
		}
		solver = runner
	}

	cases := aero.Cases(cfg.Airfoils, cfg.Reynolds, cfg.Alphas())

	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, out)
	}

	var reporter sweep.ProgressReporter
	progressOut := out
	if cfg.Quiet {
		progressOut = io.Discard
		reporter = sweep.NullProgressReporter{}
	} else {
		reporter = cli.CLIProgressReporter{}
	}

	driver := sweep.New(solver,
		sweep.WithWorkers(cfg.Workers),
		sweep.WithLogger(log),
		sweep.WithMetrics(sweepMetrics))

	start := time.Now()
	table, err := driver.Run(ctx, cases, reporter, progressOut)
	if err != nil {
		return apperrors.HandleSweepError(err, a.ErrWriter)
	}
	elapsed := time.Since(start)

	if err := report.WriteCSV(cfg.CSVPath, table); err != nil {
		return apperrors.HandleSweepError(err, a.ErrWriter)
	}

	best := aero.Best(table)

	// A failed plot render loses the report but not the data already
	// persisted to CSV, so it does not abort the run. The failure is still
	// reported on the error stream regardless of verbosity.
	pdfPath := cfg.PDFPath
	if err := report.WritePDF(cfg.PDFPath, table, best, cfg.Reynolds); err != nil {
		fmt.Fprintf(a.ErrWriter, "Warning: report not written: %v\n", err)
		log.Error("report render failed", logging.Err(err))
		pdfPath = ""
	}

	if !cfg.Quiet {
		presenter := cli.CLIResultPresenter{}
		presenter.PresentBestTable(best, out)
		presenter.PresentSummary(table, elapsed, cfg.CSVPath, pdfPath, out)
	}

	if cfg.TUI {
		return tui.Run(table, best, Version)
	}
	return apperrors.ExitSuccess
}
