// Package complexnum provides complex-number arithmetic for scripting hosts on
// top of Go's complex128 and math/cmplx.
//
// Operands of the field operations (Add, Sub, Mul, Div, Pow) may be float64
// or complex128 independently. Transcendental functions are available both
// as plain functions and through the by-name table Funcs, which lets a
// binding layer expose them without a switch statement.
package complexnum
