package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/aerolab/foilbench/internal/config"
	"github.com/aerolab/foilbench/internal/format"
	"github.com/aerolab/foilbench/internal/ui"
)

// PrintExecutionConfig displays the sweep parameters to the user before the
// run starts.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Sweep Configuration ---\n")
	fmt.Fprintf(out, "Airfoils: %s%s%s\n",
		ui.ColorPrimary(), strings.Join(cfg.Airfoils, ", "), ui.ColorReset())
	fmt.Fprintf(out, "Reynolds number %s%s%s, angles %s%s%s to %s%s%s in %s%g°%s steps.\n",
		ui.ColorInfo(), format.FormatReynolds(cfg.Reynolds), ui.ColorReset(),
		ui.ColorInfo(), format.FormatAlpha(cfg.AlphaStart), ui.ColorReset(),
		ui.ColorInfo(), format.FormatAlpha(cfg.AlphaEnd), ui.ColorReset(),
		ui.ColorInfo(), cfg.AlphaStep, ui.ColorReset())
	fmt.Fprintf(out, "Solver: %s%s%s, %d iterations per case, timeout %s%s%s per case.\n",
		ui.ColorInfo(), cfg.XfoilPath, ui.ColorReset(),
		cfg.Iterations,
		ui.ColorWarning(), cfg.CaseTimeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %d worker(s).\n",
		ui.ColorInfo(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorInfo(), runtime.Version(), ui.ColorReset(),
		cfg.Workers)
	fmt.Fprintf(out, "\n--- Starting Sweep (%d cases) ---\n",
		len(cfg.Airfoils)*len(cfg.Alphas()))
}
