// SPDX-License-Identifier: MIT

package complexnum

import (
	"math/cmplx"
	"sort"
)

// Func is a unary complex function.
type Func func(complex128) complex128

// Funcs maps the transcendental function names used by scripting hosts to
// their implementations. Most entries forward to math/cmplx; proj is Proj.
var Funcs = map[string]Func{
	"sin":   cmplx.Sin,
	"cos":   cmplx.Cos,
	"tan":   cmplx.Tan,
	"asin":  cmplx.Asin,
	"acos":  cmplx.Acos,
	"atan":  cmplx.Atan,
	"sinh":  cmplx.Sinh,
	"cosh":  cmplx.Cosh,
	"tanh":  cmplx.Tanh,
	"asinh": cmplx.Asinh,
	"acosh": cmplx.Acosh,
	"atanh": cmplx.Atanh,
	"proj":  Proj,
	"log":   cmplx.Log,
	"exp":   cmplx.Exp,
	"sqrt":  cmplx.Sqrt,
	"conj":  Conj,
	"inv":   Inv,
	"neg":   Neg,
}

// Lookup returns the function registered under name.
// Errors: ErrUnknownFunction.
func Lookup(name string) (Func, error) {
	f, ok := Funcs[name]
	if !ok {
		return nil, complexErrorf(opLookup, ErrUnknownFunction)
	}

	return f, nil
}

// Names returns the registered function names in ascending order.
func Names() []string {
	out := make([]string, 0, len(Funcs))
	for name := range Funcs {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Sin returns the complex sine.
func Sin(z complex128) complex128 { return cmplx.Sin(z) }

// Cos returns the complex cosine.
func Cos(z complex128) complex128 { return cmplx.Cos(z) }

// Tan returns the complex tangent.
func Tan(z complex128) complex128 { return cmplx.Tan(z) }

// Asin returns the principal complex arcsine.
func Asin(z complex128) complex128 { return cmplx.Asin(z) }

// Acos returns the principal complex arccosine.
func Acos(z complex128) complex128 { return cmplx.Acos(z) }

// Atan returns the principal complex arctangent.
func Atan(z complex128) complex128 { return cmplx.Atan(z) }

// Sinh returns the complex hyperbolic sine.
func Sinh(z complex128) complex128 { return cmplx.Sinh(z) }

// Cosh returns the complex hyperbolic cosine.
func Cosh(z complex128) complex128 { return cmplx.Cosh(z) }

// Tanh returns the complex hyperbolic tangent.
func Tanh(z complex128) complex128 { return cmplx.Tanh(z) }

// Asinh returns the principal inverse hyperbolic sine.
func Asinh(z complex128) complex128 { return cmplx.Asinh(z) }

// Acosh returns the principal inverse hyperbolic cosine.
func Acosh(z complex128) complex128 { return cmplx.Acosh(z) }

// Atanh returns the principal inverse hyperbolic tangent.
func Atanh(z complex128) complex128 { return cmplx.Atanh(z) }

// Log returns the principal natural logarithm.
func Log(z complex128) complex128 { return cmplx.Log(z) }

// Exp returns e^z.
func Exp(z complex128) complex128 { return cmplx.Exp(z) }

// Sqrt returns the principal square root.
func Sqrt(z complex128) complex128 { return cmplx.Sqrt(z) }
