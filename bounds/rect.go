// SPDX-License-Identifier: MIT

package bounds

import "github.com/katalvlaran/glmath/numeric"

// Rect is a 2D rectangle given by its origin and extent.
type Rect struct {
	X, Y, W, H float64
}

// NewRect builds a Rect from up to four values (x, y, w, h); missing values
// become 0 and extra values are discarded.
func NewRect(values ...float64) Rect {
	var a [4]float64
	numeric.Fit(a[:], values)

	return Rect{X: a[0], Y: a[1], W: a[2], H: a[3]}
}

// Array returns { x, y, w, h }.
func (r Rect) Array() [4]float64 { return [4]float64{r.X, r.Y, r.W, r.H} }

// Box returns the 2D box spanned by r: { x, x+w, y, y+h }.
func (r Rect) Box() Box { return Box2(r.X, r.X+r.W, r.Y, r.Y+r.H) }

// String renders "[ x, y, w, h ]" with %g numbers.
func (r Rect) String() string {
	a := r.Array()

	return formatList(a[:])
}
