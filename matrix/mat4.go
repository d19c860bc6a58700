// SPDX-License-Identifier: MIT

// Package matrix - Mat4 storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep the explicit index formula i*4 + j over a flat array.
//   - At/Set return errors instead of panicking on bad indices.
//   - Value semantics: a Mat4 is copied on assignment, so handing it to a
//     caller never aliases internal state.

package matrix

import (
	"fmt"
	"strings"
)

const (
	size = 4

	ctxAt  = "At"
	ctxSet = "Set"
)

// mat4Errorf wraps err with the method tag and coordinates.
func mat4Errorf(method string, row, col int, err error) error {
	return fmt.Errorf("Mat4.%s(%d,%d): %w", method, row, col, err)
}

// Mat4 is a 4×4 row-major matrix of float64 values.
// The zero value is the zero matrix, not the identity.
type Mat4 struct {
	data [size * size]float64
}

var _ fmt.Stringer = Mat4{}

// Identity returns the 4×4 identity matrix.
func Identity() Mat4 {
	var m Mat4
	for i := 0; i < size; i++ {
		m.data[i*size+i] = 1
	}

	return m
}

// Scaling returns diag(sx, sy, sz, 1).
func Scaling(sx, sy, sz float64) Mat4 {
	m := Identity()
	m.data[0] = sx
	m.data[5] = sy
	m.data[10] = sz

	return m
}

// Shift returns the translation by (dx, dy, dz).
func Shift(dx, dy, dz float64) Mat4 {
	m := Identity()
	m.data[3] = dx
	m.data[7] = dy
	m.data[11] = dz

	return m
}

// FromRows builds a matrix from 16 row-major values.
func FromRows(v [size * size]float64) Mat4 {
	return Mat4{data: v}
}

// indexOf computes the flat offset for (row, col).
func indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= size || col < 0 || col >= size {
		return 0, mat4Errorf(method, row, col, ErrOutOfRange)
	}

	return row*size + col, nil
}

// At returns the element at (row, col).
func (m Mat4) At(row, col int) (float64, error) {
	idx, err := indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Mat4) Set(row, col int, v float64) error {
	idx, err := indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Mul returns the product m·o. Applying the result to a point equals
// applying o first and then m.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			var acc float64
			for k := 0; k < size; k++ {
				acc += m.data[i*size+k] * o.data[k*size+j]
			}
			out.data[i*size+j] = acc
		}
	}

	return out
}

// Apply transforms the point (x, y, z, 1) and returns the first three
// components. Only affine transforms are built here, so w stays 1 and no
// perspective divide is performed.
func (m Mat4) Apply(x, y, z float64) (float64, float64, float64) {
	d := &m.data

	return d[0]*x + d[1]*y + d[2]*z + d[3],
		d[4]*x + d[5]*y + d[6]*z + d[7],
		d[8]*x + d[9]*y + d[10]*z + d[11]
}

// Rows returns the row-major values.
func (m Mat4) Rows() [size * size]float64 {
	return m.data
}

// Float32 returns the values in row-major order as float32, the layout
// expected by shader uniforms uploaded with transpose enabled.
func (m Mat4) Float32() [size * size]float32 {
	var out [size * size]float32
	for i, v := range m.data {
		out[i] = float32(v)
	}

	return out
}

// String formats one bracketed row per line.
func (m Mat4) String() string {
	var sb strings.Builder
	for i := 0; i < size; i++ {
		sb.WriteString("[")
		for j := 0; j < size; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*size+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
