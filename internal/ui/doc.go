// Package ui provides terminal UI components for the sdvxrgb CLI.
//
// This package uses Lipgloss to render one-shot command output and Bubble Tea
// for the interactive live preview.
//
// # Components
//
//   - Header: Command banner showing operation name and parameters
//   - Result: Success, warning and failure boxes
//   - RenderSnapshot: Per-strip table of resolved parameters with colour
//     swatches
//   - RenderStats, RenderComparison: Capture statistics with brightness bars
//   - WatchModel: Live preview that runs a test pattern through the active
//     snapshot and reloads when the file changes
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Config Check", "sdvxrgb check", ui.Param{Key: "Config", Value: path})
//	p.Println(ui.RenderSnapshot(snap))
//
// # Logging Integration
//
// This package expects logging to be controlled via the SDVXRGB_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly.
package ui
