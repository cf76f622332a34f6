// Package buffer implements the pure, rune-accurate text model that hosts the
// markdown formatting engine.
//
// The document is a flat string. Offsets are 0-based rune offsets and ranges
// are half-open selections over them: [Start, End). Row/column positions are
// derived on demand for rendering and vertical cursor movement.
package buffer
