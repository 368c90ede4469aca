// Package viz renders the induction simulation in the terminal.
//
// The display is built on a Braille-cell pixel canvas with per-cell
// color, driven by a Bubble Tea program that runs one engine frame per
// tick:
//
//   - [Canvas]: colored Braille canvas with line, ellipse, and label
//     primitives
//   - [Renderer]: draws the field grid, coil, sparks, magnet, and
//     oscilloscope trace in back-to-front order
//   - [ChargeGauge]: the battery meter outside the canvas, written
//     directly by the engine each frame
//   - [Model]: the live TUI
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset charge, trace, and sparks
//	T     - Cycle color themes
//	Q     - Quit
package viz
