// SPDX-License-Identifier: MIT
package ratmat

import (
	"errors"
	"math/big"
)

// Sentinel errors for matrix construction.
var (
	// ErrBadShape indicates non-positive requested dimensions.
	ErrBadShape = errors.New("ratmat: non-positive dimensions")

	// ErrRaggedRows indicates input rows of unequal length.
	ErrRaggedRows = errors.New("ratmat: ragged rows")
)

// Dense is a dense rows×cols matrix over exact rationals. The zero
// entries are materialized, so At never returns nil.
type Dense struct {
	rows, cols int
	data       [][]*big.Rat
}

// NewDense returns a zero-filled rows×cols matrix.
// Errors: ErrBadShape when either dimension is < 1.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadShape
	}
	m := &Dense{rows: rows, cols: cols, data: make([][]*big.Rat, rows)}
	for i := range m.data {
		m.data[i] = make([]*big.Rat, cols)
		for j := range m.data[i] {
			m.data[i][j] = new(big.Rat)
		}
	}
	return m, nil
}

// FromRows builds a matrix from row slices, copying every entry.
// A nil entry reads as zero.
// Errors: ErrBadShape on empty input, ErrRaggedRows on unequal rows.
func FromRows(rows [][]*big.Rat) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != m.cols {
			return nil, ErrRaggedRows
		}
		for j, v := range r {
			if v != nil {
				m.data[i][j].Set(v)
			}
		}
	}
	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.cols }

// At returns a copy of the entry at (i, j).
func (m *Dense) At(i, j int) *big.Rat { return new(big.Rat).Set(m.data[i][j]) }

// Set stores a copy of v at (i, j).
func (m *Dense) Set(i, j int, v *big.Rat) { m.data[i][j].Set(v) }

// Clone returns an independent deep copy.
func (m *Dense) Clone() *Dense {
	out, _ := NewDense(m.rows, m.cols)
	for i := range m.data {
		for j := range m.data[i] {
			out.data[i][j].Set(m.data[i][j])
		}
	}
	return out
}

// Transpose returns the cols×rows transpose.
func (m *Dense) Transpose() *Dense {
	out, _ := NewDense(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j][i].Set(m.data[i][j])
		}
	}
	return out
}

// RREF returns the reduced row echelon form of m together with the
// pivot column indices, in ascending order.
//
// Description:
//
//	Plain Gauss-Jordan over ℚ. For each column the pivot is the first
//	unused row with a nonzero entry; the pivot row is scaled to 1 and
//	eliminated from every other row. Exact arithmetic makes pivot
//	selection a pure existence question, so the result is canonical.
//
// Complexity: O(rows·cols·min(rows,cols)) rational operations.
func (m *Dense) RREF() (*Dense, []int) {
	r := m.Clone()
	var pivots []int
	row := 0
	for col := 0; col < r.cols && row < r.rows; col++ {
		sel := -1
		for i := row; i < r.rows; i++ {
			if r.data[i][col].Sign() != 0 {
				sel = i
				break
			}
		}
		if sel < 0 {
			continue
		}
		r.data[row], r.data[sel] = r.data[sel], r.data[row]
		// scale pivot row to leading 1
		inv := new(big.Rat).Inv(r.data[row][col])
		for j := col; j < r.cols; j++ {
			r.data[row][j].Mul(r.data[row][j], inv)
		}
		// eliminate the column everywhere else
		for i := 0; i < r.rows; i++ {
			if i == row || r.data[i][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(r.data[i][col])
			for j := col; j < r.cols; j++ {
				t := new(big.Rat).Mul(factor, r.data[row][j])
				r.data[i][j].Sub(r.data[i][j], t)
			}
		}
		pivots = append(pivots, col)
		row++
	}
	return r, pivots
}

// Kernel returns a basis of the right null space {x : M·x = 0} as
// column vectors (each of length Cols), one per free column, ordered by
// free column index. A full-rank-by-columns matrix yields nil.
func (m *Dense) Kernel() [][]*big.Rat {
	rref, pivots := m.RREF()
	isPivot := make([]bool, m.cols)
	for _, p := range pivots {
		isPivot[p] = true
	}
	var basis [][]*big.Rat
	for free := 0; free < m.cols; free++ {
		if isPivot[free] {
			continue
		}
		v := make([]*big.Rat, m.cols)
		for j := range v {
			v[j] = new(big.Rat)
		}
		v[free].SetInt64(1)
		for row, p := range pivots {
			v[p].Neg(rref.data[row][free])
		}
		basis = append(basis, v)
	}
	return basis
}

// LeftKernel returns a basis of {v : v·M = 0} as row vectors (each of
// length Rows), ordered deterministically. It is the Kernel of the
// transpose.
func (m *Dense) LeftKernel() [][]*big.Rat {
	return m.Transpose().Kernel()
}
