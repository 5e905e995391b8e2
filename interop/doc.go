// Package interop converts linalg values to and from the float32 layouts of
// golang.org/x/image/math/f32, the form GPU APIs and vertex buffers expect.
//
// Narrowing checks every component and reports ErrNaNInf instead of
// uploading a NaN or an overflowed infinity.
package interop
