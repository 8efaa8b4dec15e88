// Package viz renders the portfolio in a terminal.
//
// The package provides:
//
//   - [Canvas]: braille pixel canvas, 2x4 dots per cell
//   - [Surface]: a field.Surface on top of Canvas with per-cell colour
//   - [Palette]: dark and light colour schemes, with matching [Styles]
//
// Field coordinates are pixels; each terminal cell stands for [CellW] x
// [CellH] of them, so a braille dot covers a 4x4 patch.
package viz
