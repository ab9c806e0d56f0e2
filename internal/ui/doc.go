// Package ui provides terminal color themes shared by the CLI summary
// output and the TUI dashboard. The active theme honors the NO_COLOR
// environment variable (https://no-color.org/).
package ui
