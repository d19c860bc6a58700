// SPDX-License-Identifier: MIT

package matrix

import "errors"

// ErrOutOfRange indicates that a row or column index is outside [0,4).
// At and Set return it wrapped with the offending coordinates.
var ErrOutOfRange = errors.New("matrix: index out of range")
