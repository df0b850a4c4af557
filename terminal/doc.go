// Package terminal runs the game in a character-cell terminal through tcell.
//
// The 576x480 logical surface is rasterized by render.Canvas and shown with
// upper half-block cells, two raster pixels per cell. Terminals send no key
// release, so a key counts as held until its hold timeout passes without a
// repeat.
package terminal
