package geometry

// MatrixProvider is the wrapper form accepted by ApplyMatrixOf: any type
// exposing a row-major matrix under a Matrix accessor.
type MatrixProvider interface {
	Matrix() [][]float64
}

// ApplyMatrix applies a row-major 3×3, 3×4 or 4×4 matrix m to v. Output
// component i is Σ_j v[j]*m[i][j], plus m[i][3] as an affine translation when
// the row has a fourth column (0 otherwise). A fourth row is ignored; no
// homogeneous division is performed, so the transform is strictly affine.
func (v Vector3) ApplyMatrix(m [][]float64) Vector3 {
	in := v.ToArray()
	var out [3]float64
	for i := 0; i < 3; i++ {
		row := m[i]
		for j := 0; j < 3; j++ {
			out[i] += in[j] * row[j]
		}
		if len(row) > 3 {
			out[i] += row[3]
		}
	}
	return FromArray(out)
}

// ApplyMatrixOf applies the matrix exposed by p, with the same dimension
// rules as ApplyMatrix.
func (v Vector3) ApplyMatrixOf(p MatrixProvider) Vector3 {
	return v.ApplyMatrix(p.Matrix())
}
