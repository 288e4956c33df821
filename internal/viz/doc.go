// Package viz renders the animated chain in the terminal.
//
// The live view is a Bubble Tea model driving a Braille pixel canvas:
//
//   - [Canvas]: 2x4-dot Braille cells for high-density monochrome pixels
//   - [Camera]: perspective projection with keyboard-driven rotation/zoom
//   - [Model]: the interactive application (pause, tune, record, themes)
//
// Each display tick draws the whole chain from scratch as one connected
// polyline; there is no incremental geometry update. Frames containing
// non-finite points render as an empty canvas rather than crashing.
//
// # Recording
//
// The G key toggles GIF capture of the canvas; recordings are written to
// helix.gif in the current directory.
package viz
