// SPDX-License-Identifier: MIT

package complexnum

import "fmt"

// Format renders z as "a+bi" or "a-bi" with %g for both parts.
func Format(z complex128) string {
	if imag(z) >= 0 {
		return fmt.Sprintf("%g+%gi", real(z), imag(z))
	}

	return fmt.Sprintf("%g%gi", real(z), imag(z))
}
