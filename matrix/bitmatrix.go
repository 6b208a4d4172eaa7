// SPDX-License-Identifier: MIT
// Package matrix provides the square bit matrix backing lyricwalk graphs.
//
// BitMatrix is a row-major n×n matrix of single bits packed into uint64
// words. Bit (i,j) set means "row vertex i is directly followed by column
// vertex j". There are no weights: setting a bit twice is a no-op.
package matrix

import (
	"fmt"
	"math/bits"
	"strings"
)

// wordBits is the number of columns packed into one storage word.
const wordBits = 64

// BitMatrix is a square, growable bit matrix.
// stride is the number of words per row; data holds n*stride words.
type BitMatrix struct {
	n      int      // dimension (rows == cols)
	stride int      // words per row
	data   []uint64 // flat backing storage, row-major
}

// strideFor returns the number of words needed for n columns.
func strideFor(n int) int {
	return (n + wordBits - 1) / wordBits
}

// NewBitMatrix creates an n×n zero matrix.
// Stage 1 (Validate): n must be ≥ 0 (a 0×0 matrix is valid and empty).
// Stage 2 (Prepare): allocate the packed backing slice.
// Complexity: O(n²/64) time and memory.
func NewBitMatrix(n int) (*BitMatrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewBitMatrix(%d): %w", n, ErrBadShape)
	}
	s := strideFor(n)

	return &BitMatrix{n: n, stride: s, data: make([]uint64, n*s)}, nil
}

// Size returns the matrix dimension.
// Complexity: O(1).
func (m *BitMatrix) Size() int {
	if m == nil {
		return 0
	}
	return m.n
}

// check validates (row, col) against the current dimension.
func (m *BitMatrix) check(method string, row, col int) error {
	if m == nil {
		return fmt.Errorf("BitMatrix.%s: %w", method, ErrNilMatrix)
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return fmt.Errorf("BitMatrix.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}
	return nil
}

// Set turns on bit (row, col). Setting an already-set bit is a no-op.
// Complexity: O(1).
func (m *BitMatrix) Set(row, col int) error {
	if err := m.check("Set", row, col); err != nil {
		return err
	}
	m.data[row*m.stride+col/wordBits] |= 1 << uint(col%wordBits)

	return nil
}

// Has reports whether bit (row, col) is set.
// Complexity: O(1).
func (m *BitMatrix) Has(row, col int) (bool, error) {
	if err := m.check("Has", row, col); err != nil {
		return false, err
	}
	w := m.data[row*m.stride+col/wordBits]

	return w&(1<<uint(col%wordBits)) != 0, nil
}

// Row returns the columns set in row, in ascending column order.
// The result is freshly allocated; an all-zero row yields an empty, non-nil slice.
// Complexity: O(n/64 + k) where k is the number of set bits.
func (m *BitMatrix) Row(row int) ([]int, error) {
	if err := m.check("Row", row, 0); err != nil {
		return nil, err
	}
	words := m.data[row*m.stride : (row+1)*m.stride]
	cols := make([]int, 0, m.rowCount(words))
	for wi, w := range words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			cols = append(cols, wi*wordBits+tz)
			w &= w - 1 // clear lowest set bit
		}
	}

	return cols, nil
}

// RowCount returns the number of set bits in row (the out-degree).
// Complexity: O(n/64).
func (m *BitMatrix) RowCount(row int) (int, error) {
	if err := m.check("RowCount", row, 0); err != nil {
		return 0, err
	}
	return m.rowCount(m.data[row*m.stride : (row+1)*m.stride]), nil
}

func (m *BitMatrix) rowCount(words []uint64) int {
	c := 0
	for _, w := range words {
		c += bits.OnesCount64(w)
	}
	return c
}

// Count returns the total number of set bits.
// Complexity: O(n²/64).
func (m *BitMatrix) Count() int {
	if m == nil {
		return 0
	}
	return m.rowCount(m.data)
}

// Grow enlarges the matrix to n×n, preserving every set bit at the same
// (row, col). Growing to the current size is a no-op; shrinking is ErrBadShape.
// Complexity: O(n²/64).
func (m *BitMatrix) Grow(n int) error {
	if m == nil {
		return fmt.Errorf("BitMatrix.Grow: %w", ErrNilMatrix)
	}
	if n < m.n {
		return fmt.Errorf("BitMatrix.Grow(%d) from %d: %w", n, m.n, ErrBadShape)
	}
	if n == m.n {
		return nil
	}
	s := strideFor(n)
	data := make([]uint64, n*s)
	for r := 0; r < m.n; r++ {
		copy(data[r*s:r*s+m.stride], m.data[r*m.stride:(r+1)*m.stride])
	}
	m.n, m.stride, m.data = n, s, data

	return nil
}

// Block renders the leading k×k block as rows of '0'/'1' characters,
// one row per line. k is clamped to [0, Size()].
func (m *BitMatrix) Block(k int) string {
	if m == nil {
		return ""
	}
	if k > m.n {
		k = m.n
	}
	var sb strings.Builder
	for r := 0; r < k; r++ {
		for c := 0; c < k; c++ {
			if m.data[r*m.stride+c/wordBits]&(1<<uint(c%wordBits)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String implements fmt.Stringer by rendering the full matrix.
func (m *BitMatrix) String() string {
	return m.Block(m.Size())
}
