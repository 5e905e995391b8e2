// Package bounds holds the small extent types that travel alongside the
// linalg values: Box (2D or 3D, interleaved min/max pairs per axis) and
// Rect (x, y, w, h).
//
// Both are plain immutable values with constructors and a String form; they
// carry no geometry beyond conversion between the two.
package bounds
