package bitmatrix

// SquareBitMatrix is a BitMatrix constrained to n x n, with the additional
// in-place Warshall transitive closure operation (spec §4.1).
type SquareBitMatrix struct {
	*BitMatrix
}

// NewSquareBitMatrix creates an all-clear n x n matrix.
func NewSquareBitMatrix(n int) *SquareBitMatrix {
	return &SquareBitMatrix{BitMatrix: NewBitMatrix(n, n)}
}

// Size returns n.
func (m *SquareBitMatrix) Size() int { return m.Rows() }

// RemoveIndex removes both row i and column i, keeping the matrix square
// and compacting surviving indices down by one (spec §4.1/§9).
func (m *SquareBitMatrix) RemoveIndex(i int) {
	m.RemoveRow(i)
	m.RemoveColumn(i)
}

// Clone returns a deep copy, preserving the square wrapper.
func (m *SquareBitMatrix) Clone() *SquareBitMatrix {
	return &SquareBitMatrix{BitMatrix: m.BitMatrix.Clone()}
}

// TransitiveClosure implements Warshall's algorithm in place (spec §4.1):
//
//	for k in 0..n: for i,j in 0..n: M[i][j] |= M[i][k] && M[k][j]
//
// It never self-loops M[i][i] unless a genuine cycle through i forces it.
func (m *SquareBitMatrix) TransitiveClosure() {
	n := m.Size()
	for k := 0; k < n; k++ {
		kRow := m.data[k]
		for i := 0; i < n; i++ {
			if !m.data[i].test(k) {
				continue
			}
			m.data[i].orInto(kRow)
		}
	}
}
