// Package ratmat provides dense matrices over exact rationals with the
// two operations singular-vector search needs: reduced row echelon form
// and left-kernel bases.
//
// Everything is exact: entries are *big.Rat, elimination uses true
// division, and there is no pivot-magnitude heuristic — the pivot is
// always the first nonzero entry of the column, which keeps results
// deterministic across runs.
//
// The API is deliberately small. Dense is a value container with
// copy-in/copy-out accessors; RREF returns a new matrix plus the pivot
// columns; LeftKernel returns a basis of {v : v·M = 0} as row vectors,
// ordered by free column.
package ratmat
