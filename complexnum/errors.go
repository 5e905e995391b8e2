// SPDX-License-Identifier: MIT
// Package complexnum: sentinel error set.

package complexnum

import (
	"errors"
	"fmt"
)

// ErrUnknownFunction is returned by Lookup for a name missing from Funcs.
var ErrUnknownFunction = errors.New("complexnum: unknown function")

const opLookup = "Lookup"

// complexErrorf wraps err with an operation tag, preserving it via %w.
func complexErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
