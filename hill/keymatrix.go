// KeyMatrix is the cipher key: a square real matrix in row-major flat
// storage, validated at construction and bounds-checked on access.

package hill

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// keyErrorf wraps an underlying error with KeyMatrix method context.
func keyErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("KeyMatrix.%s(%d,%d): %w", method, row, col, err)
}

// KeyMatrix is an n×n real matrix of key entries.
// n is the order and data holds n*n elements in row-major order.
// Engines replace a KeyMatrix wholesale; nothing in this package mutates
// one after construction.
type KeyMatrix struct {
	n    int       // order
	data []float64 // flat backing storage, length == n*n
}

// NewKeyMatrix creates an order×order KeyMatrix initialized to zeros.
// Orders below MinOrder return ErrBadOrder.
// Complexity: O(order²) time and memory.
func NewKeyMatrix(order int) (*KeyMatrix, error) {
	// Validate the order before allocation
	if order < MinOrder {
		return nil, ErrBadOrder
	}

	return &KeyMatrix{n: order, data: make([]float64, order*order)}, nil
}

// KeyFromRows builds a KeyMatrix from row slices. The rows must form a
// square matrix of order at least MinOrder; a ragged row set returns
// ErrNotSquare.
func KeyFromRows(rows [][]float64) (*KeyMatrix, error) {
	n := len(rows)
	if n < MinOrder {
		return nil, ErrBadOrder
	}

	k := &KeyMatrix{n: n, data: make([]float64, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNotSquare)
		}
		copy(k.data[i*n:(i+1)*n], row)
	}

	return k, nil
}

// ParseCells converts row-major cell strings into a KeyMatrix. The cell
// count must be n² for some n ≥ MinOrder, and every cell must parse as a
// real number. A malformed cell is ErrBadEntry — the engine never
// substitutes a preset for a broken custom key.
func ParseCells(cells []string) (*KeyMatrix, error) {
	n := int(math.Round(math.Sqrt(float64(len(cells)))))
	if n < MinOrder || n*n != len(cells) {
		return nil, fmt.Errorf("%d cells do not form a square matrix of order >= %d: %w",
			len(cells), MinOrder, ErrNotSquare)
	}

	k := &KeyMatrix{n: n, data: make([]float64, n*n)}
	for i, cell := range cells {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, fmt.Errorf("cell %d (%q): %w", i, cell, ErrBadEntry)
		}
		k.data[i] = v
	}

	return k, nil
}

// ParseKey parses a textual key of the form "2,1;3,4": rows separated by
// ';', cells by ','. Whitespace around cells is ignored. The row and cell
// counts must agree (square), with order at least MinOrder.
func ParseKey(s string) (*KeyMatrix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty key text: %w", ErrInvalidInput)
	}

	rowParts := strings.Split(s, ";")
	rows := make([][]float64, 0, len(rowParts))
	for i, rp := range rowParts {
		cells := strings.Split(rp, ",")
		if len(cells) != len(rowParts) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(cells), len(rowParts), ErrNotSquare)
		}
		row := make([]float64, len(cells))
		for j, cell := range cells {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d cell %d (%q): %w", i, j, cell, ErrBadEntry)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return KeyFromRows(rows)
}

// Order returns the matrix order n.
// Complexity: O(1).
func (k *KeyMatrix) Order() int {
	return k.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the calling method's context.
func (k *KeyMatrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= k.n || col < 0 || col >= k.n {
		return 0, keyErrorf(method, row, col, ErrOutOfRange)
	}

	return row*k.n + col, nil
}

// At retrieves the element at (row, col), bounds-checked.
// Complexity: O(1).
func (k *KeyMatrix) At(row, col int) (float64, error) {
	idx, err := k.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return k.data[idx], nil
}

// Set assigns v at (row, col), bounds-checked.
// Complexity: O(1).
func (k *KeyMatrix) Set(row, col int, v float64) error {
	idx, err := k.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	k.data[idx] = v

	return nil
}

// Clone returns a deep copy of the key.
// Complexity: O(n²).
func (k *KeyMatrix) Clone() *KeyMatrix {
	data := make([]float64, len(k.data))
	copy(data, k.data)

	return &KeyMatrix{n: k.n, data: data}
}

// Rows returns the entries as freshly allocated row slices, detached from
// the key's backing storage.
func (k *KeyMatrix) Rows() [][]float64 {
	rows := make([][]float64, k.n)
	for i := 0; i < k.n; i++ {
		rows[i] = make([]float64, k.n)
		copy(rows[i], k.data[i*k.n:(i+1)*k.n])
	}

	return rows
}

// IsInteger reports whether every entry sits within IntegerEps of a whole
// number — the precondition for the mod-26 cipher.
func (k *KeyMatrix) IsInteger() bool {
	for _, v := range k.data {
		if math.Abs(v-math.Round(v)) > IntegerEps {
			return false
		}
	}

	return true
}

// intEntries returns the rounded entries as row slices, or ErrNonIntegerKey
// when any entry is fractional.
func (k *KeyMatrix) intEntries() ([][]int, error) {
	if !k.IsInteger() {
		return nil, ErrNonIntegerKey
	}

	out := make([][]int, k.n)
	for i := range out {
		out[i] = make([]int, k.n)
		for j := 0; j < k.n; j++ {
			out[i][j] = int(math.Round(k.data[i*k.n+j]))
		}
	}

	return out, nil
}

// dense copies the entries into a gonum matrix for the real-valued kernels.
func (k *KeyMatrix) dense() *mat.Dense {
	data := make([]float64, len(k.data))
	copy(data, k.data)

	return mat.NewDense(k.n, k.n, data)
}

// String implements fmt.Stringer for easy debugging and demo output.
// Complexity: O(n²) for string construction.
func (k *KeyMatrix) String() string {
	var s string
	for i := 0; i < k.n; i++ {
		s += "[" // open row
		for j := 0; j < k.n; j++ {
			s += fmt.Sprintf("%g", k.data[i*k.n+j])
			if j < k.n-1 {
				s += ", "
			}
		}
		s += "]\n" // close row
	}

	return s
}
