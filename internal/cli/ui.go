package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/aerolab/foilbench/internal/format"
	"github.com/aerolab/foilbench/internal/sweep"
	"github.com/aerolab/foilbench/internal/ui"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the DisplayProgress function from a
// specific spinner implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for spinner.Spinner that implements the Spinner
// interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() {
	rs.s.Start()
}

func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as ProgressRefreshRate to synchronize with updates
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress consumes sweep progress updates and renders a spinner with
// a consolidated progress bar. It runs until the channel is closed and then
// prints a completion summary.
//
// Parameters:
//   - wg: Marked done when the display loop has finished.
//   - progressChan: Channel receiving per-case updates from the driver.
//   - total: The number of cases in the sweep.
//   - out: The writer for the completion summary.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan sweep.ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()

	if total == 0 {
		for range progressChan {
		}
		return
	}

	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()

	var completed, failures int
	for update := range progressChan {
		completed = update.Completed
		if !update.Converged {
			failures++
		}
		fraction := float64(completed) / float64(total)
		sp.UpdateSuffix(fmt.Sprintf(" [%s] %d/%d  %s %s",
			progressBar(fraction, ProgressBarWidth),
			completed, total,
			update.Case.Airfoil,
			format.FormatAlpha(update.Case.Alpha)))
	}
	sp.Stop()

	fmt.Fprintf(out, "\n%s%d/%d cases solved%s", ui.ColorSuccess(), completed-failures, total, ui.ColorReset())
	if failures > 0 {
		fmt.Fprintf(out, " (%s%d unconverged%s)", ui.ColorWarning(), failures, ui.ColorReset())
	}
	fmt.Fprintln(out)
}
