// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Config file support, JSON snapshot export, watch mode
// 0.2.0 - Interactive TUI: orbit rings, focus cycling, zoom rescaling
// 0.1.0 - Initial release: Kepler-derived orbits from catalog CSVs, headless summary
