// Package format provides small display-formatting helpers shared by the
// CLI, TUI, and report layers.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise. This provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}

// FormatReynolds formats a Reynolds number in scientific notation with one
// fractional digit, e.g. "1.0e+06".
func FormatReynolds(re float64) string {
	return strconv.FormatFloat(re, 'e', 1, 64)
}

// FormatAlpha formats an angle of attack in degrees with one fractional
// digit, e.g. "-10.0°".
func FormatAlpha(alpha float64) string {
	return strconv.FormatFloat(alpha, 'f', 1, 64) + "°"
}

// FormatCoefficient formats an aerodynamic coefficient at reporting
// precision. NaN renders as "—" for tabular display.
func FormatCoefficient(v float64) string {
	if v != v {
		return "—"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// FormatRatio formats a lift-to-drag ratio with one fractional digit.
// NaN renders as "—" for tabular display.
func FormatRatio(v float64) string {
	if v != v {
		return "—"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatBytes formats a byte count with a binary unit suffix, e.g. "1.5 GiB".
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
