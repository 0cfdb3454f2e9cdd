/*
Package sparse implements a small sparse matrix of int32 values.
It backs the LL(1) parse table: rows are non-terminals, columns are terminals
and values are indices into a list of productions. Most (non-terminal, terminal)
combinations of a real grammar are empty, so only the occupied cells are stored.

Every cell holds either a single value or a pair of values. The second value
records a competing entry, so a table builder is able to detect LL(1)
conflicts instead of silently overwriting a cell.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), keeping
the triplets sorted in row-major order.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// NoValue is the default empty-value for matrices (min int32).
const NoValue int32 = -2147483648

// Matrix is a sparse m x n matrix of int32 values. Construct with
//
//     M := sparse.New(3, 10)     // 3 rows, 10 columns
//
// Now
//
//     M.Set(2, 3, 4711)          // set a value
//     v := M.Value(2, 3)         // returns 4711
//     M.Add(2, 3, 123)           // add a competing value
//     a, b := M.Values(2, 3)     // returns 4711, 123
//     cnt := M.ValueCount()      // still returns 1 (one position set)
//     v = M.Value(0, 0)          // returns sparse.NoValue
//
type Matrix struct {
	cells  []cell
	rowcnt int
	colcnt int
}

type cell struct {
	row, col int
	a, b     int32 // primary and competing value
}

// New creates a new sparse matrix of size m x n.
func New(m, n int) *Matrix {
	return &Matrix{
		cells:  make([]cell, 0, m),
		rowcnt: m,
		colcnt: n,
	}
}

// M returns the row count.
func (m *Matrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *Matrix) N() int {
	return m.colcnt
}

// ValueCount returns the number of occupied positions.
func (m *Matrix) ValueCount() int {
	return len(m.cells)
}

// Value returns the primary value at position (i,j), or NoValue.
func (m *Matrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the pair of values at position (i,j). Missing values are
// returned as NoValue.
func (m *Matrix) Values(i, j int) (int32, int32) {
	if k, found := m.find(i, j); found {
		return m.cells[k].a, m.cells[k].b
	}
	return NoValue, NoValue
}

// Set sets the value at position (i,j), replacing both primary and competing
// value.
func (m *Matrix) Set(i, j int, value int32) *Matrix {
	m.check(i, j)
	k, found := m.find(i, j)
	if found {
		m.cells[k].a, m.cells[k].b = value, NoValue
		return m
	}
	m.insert(k, cell{row: i, col: j, a: value, b: NoValue})
	return m
}

// Add adds a value at position (i,j). If the position is empty, value becomes
// the primary value. Otherwise it becomes the competing value, overwriting an
// earlier competitor. Add reports whether the position already held a
// value.
func (m *Matrix) Add(i, j int, value int32) bool {
	m.check(i, j)
	k, found := m.find(i, j)
	if !found {
		m.insert(k, cell{row: i, col: j, a: value, b: NoValue})
		return false
	}
	m.cells[k].b = value
	return true
}

// Each calls f for every occupied position in row-major order.
func (m *Matrix) Each(f func(i, j int, a, b int32)) {
	for _, c := range m.cells {
		f(c.row, c.col, c.a, c.b)
	}
}

// Conflicts returns the number of positions holding a competing value.
func (m *Matrix) Conflicts() int {
	cnt := 0
	for _, c := range m.cells {
		if c.b != NoValue {
			cnt++
		}
	}
	return cnt
}

// find returns the index of (i,j) in the sorted cell list, or the index where
// it would have to be inserted.
func (m *Matrix) find(i, j int) (int, bool) {
	k := sort.Search(len(m.cells), func(x int) bool {
		c := m.cells[x]
		return c.row > i || c.row == i && c.col >= j
	})
	if k < len(m.cells) && m.cells[k].row == i && m.cells[k].col == j {
		return k, true
	}
	return k, false
}

func (m *Matrix) insert(at int, c cell) {
	m.cells = append(m.cells, c)
	copy(m.cells[at+1:], m.cells[at:])
	m.cells[at] = c
}

func (m *Matrix) check(i, j int) {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.Matrix index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
}

func (c cell) String() string {
	return fmt.Sprintf("(%d,%d)=[%d,%d]", c.row, c.col, c.a, c.b)
}
