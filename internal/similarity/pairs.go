package similarity

// DefaultThreshold is the score a pair must strictly exceed to be related.
const DefaultThreshold = 0.2

// Neighbors returns, for row i of the matrix, the indexes of every other
// item whose similarity strictly exceeds the threshold, in index order.
// Self-pairs are skipped.
func Neighbors(matrix [][]float64, i int, threshold float64) []int {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	var idx []int
	for j, sim := range matrix[i] {
		if j != i && sim > threshold {
			idx = append(idx, j)
		}
	}
	return idx
}
