package sweep

import (
	"io"
	"sync"
	"time"

	"github.com/aerolab/foilbench/internal/aero"
)

// ProgressUpdate describes one completed solver case.
type ProgressUpdate struct {
	// Case is the case that just finished.
	Case aero.Case
	// Completed is the number of cases finished so far, including this one.
	Completed int
	// Total is the number of cases in the sweep.
	Total int
	// Converged reports whether the case produced a solution.
	Converged bool
	// Duration is the wall-clock time the solver spent on the case.
	Duration time.Duration
}

// ProgressReporter defines the interface for displaying sweep progress.
// This interface decouples the sweep driver from the presentation layer:
// the driver focuses on coordinating solver invocations while
// implementations handle the visual representation (spinner, progress bar,
// TUI messages).
type ProgressReporter interface {
	// DisplayProgress consumes progress updates from the channel until it
	// is closed. It must be called in a separate goroutine and must mark
	// the WaitGroup done on return.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving per-case updates from the driver.
	//   - total: The number of cases in the sweep.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements
// ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer) {
	f(wg, progressChan, total, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything. Useful for
// quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}
