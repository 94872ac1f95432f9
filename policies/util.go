package policies

import "gonum.org/v1/gonum/mat"

// batchOf lifts a single observation into a batch of size one.
func batchOf(v *mat.VecDense) *mat.Dense {
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}
	return mat.NewDense(1, len(data), data)
}

// unbatch extracts the single row of a size-one batch.
func unbatch(m *mat.Dense) *mat.VecDense {
	_, c := m.Dims()
	row := make([]float64, c)
	mat.Row(row, 0, m)
	return mat.NewVecDense(c, row)
}
