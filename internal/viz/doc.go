// Package viz renders force vectors on a Braille pixel canvas for terminal
// display.
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 sub-pixels per character
//   - [RenderForces]: the four output vectors (apparent wind, lift, drag,
//     resultant) drawn as arrows from a common origin, auto-scaled
//
// The canvas is also the input shape for SVG export, see the export package.
package viz
