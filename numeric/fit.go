// SPDX-License-Identifier: MIT

package numeric

import "golang.org/x/exp/constraints"

// Fit copies src into dst with size adaptation and returns the number of
// values copied.
//
// Implementation:
//   - Stage 1: copy the first min(len(dst), len(src)) values.
//   - Stage 2: zero the remaining tail of dst.
//
// Behavior highlights:
//   - Values beyond len(dst) are discarded; missing values become 0.
//   - dst and src may alias; the copy is memmove-safe.
//
// Complexity:
//   - Time O(len(dst)), Space O(1).
//
// AI-Hints:
//   - Pass a sub-slice of fixed storage (e.g. v[:size]) to adapt a single
//     axis; call once per row to adapt a grid.
func Fit[T constraints.Float](dst, src []T) int {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}

	return n
}
