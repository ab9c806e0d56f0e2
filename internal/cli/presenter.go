package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/aerolab/foilbench/internal/aero"
	"github.com/aerolab/foilbench/internal/format"
	"github.com/aerolab/foilbench/internal/sweep"
	"github.com/aerolab/foilbench/internal/ui"
)

// CLIProgressReporter implements sweep.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress
// bar display during the sweep.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements sweep.ProgressReporter.
var _ sweep.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for the running sweep.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan sweep.ProgressUpdate, total int, out io.Writer) {
	DisplayProgress(wg, progressChan, total, out)
}

// CLIResultPresenter renders the sweep outcome in the command-line
// interface: the per-angle best-airfoil table and the run summary.
type CLIResultPresenter struct{}

// PresentBestTable displays the best airfoil per angle of attack across the
// three selection criteria in a formatted tabular layout. Manual padding is
// used so ANSI color codes do not break the alignment.
func (CLIResultPresenter) PresentBestTable(best aero.BestChoice, out io.Writer) {
	fmt.Fprintf(out, "\n--- Best Airfoils per Angle of Attack ---\n")
	if len(best) == 0 {
		fmt.Fprintf(out, "%sNo converged results.%s\n", ui.ColorWarning(), ui.ColorReset())
		return
	}

	// Widest airfoil name across all three criteria columns
	nameLen := len("airfoil")
	for _, row := range best {
		for _, name := range []string{row.BestCLAirfoil, row.BestCDAirfoil, row.BestLDAirfoil} {
			if len(name) > nameLen {
				nameLen = len(name)
			}
		}
	}

	fmt.Fprintf(out, "%sAlpha     Highest CL%s   %sLowest CD%s%s    %sBest L/D%s\n",
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", nameLen-1),
		ui.ColorUnderline(), ui.ColorReset())

	for _, row := range best {
		fmt.Fprintf(out, "%-8s  %s%s%s%s %s   %s%s%s%s %s   %s%s%s%s %s\n",
			format.FormatAlpha(row.Alpha),
			ui.ColorPrimary(), row.BestCLAirfoil, ui.ColorReset(),
			padRight("", nameLen-len(row.BestCLAirfoil)),
			format.FormatCoefficient(row.BestCL),
			ui.ColorPrimary(), row.BestCDAirfoil, ui.ColorReset(),
			padRight("", nameLen-len(row.BestCDAirfoil)),
			format.FormatCoefficient(row.BestCD),
			ui.ColorPrimary(), row.BestLDAirfoil, ui.ColorReset(),
			padRight("", nameLen-len(row.BestLDAirfoil)),
			format.FormatRatio(row.BestLD))
	}
}

// PresentSummary displays the run totals and the output file locations.
func (CLIResultPresenter) PresentSummary(table aero.Table, duration time.Duration, csvPath, pdfPath string, out io.Writer) {
	converged := table.ConvergedCount()
	fmt.Fprintf(out, "\n--- Run Summary ---\n")
	fmt.Fprintf(out, "Cases: %d total, %s%d converged%s", len(table),
		ui.ColorSuccess(), converged, ui.ColorReset())
	if missing := len(table) - converged; missing > 0 {
		fmt.Fprintf(out, ", %s%d missing%s", ui.ColorWarning(), missing, ui.ColorReset())
	}
	fmt.Fprintf(out, " in %s%s%s.\n",
		ui.ColorInfo(), format.FormatExecutionDuration(duration), ui.ColorReset())

	if csvPath != "" {
		fmt.Fprintf(out, "%s✓ Table saved to: %s%s%s\n",
			ui.ColorSuccess(), ui.ColorPrimary(), csvPath, ui.ColorReset())
	}
	if pdfPath != "" {
		fmt.Fprintf(out, "%s✓ Report saved to: %s%s%s\n",
			ui.ColorSuccess(), ui.ColorPrimary(), pdfPath, ui.ColorReset())
	}
}

// padRight returns s extended with the given number of spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}
