package similarity

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CosineSimilarity calculates the cosine similarity between two vectors.
// TF-IDF vectors are non-negative, so the result lies between 0 and 1.
// Mismatched or zero-length vectors have similarity 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	if len(a) == 0 {
		return 0
	}

	dotProduct := floats.Dot(a, b)

	magA := math.Sqrt(floats.Dot(a, a))
	magB := math.Sqrt(floats.Dot(b, b))

	// Avoid division by zero
	if magA == 0 || magB == 0 {
		return 0
	}

	return dotProduct / (magA * magB)
}

// CosineSimilarityMatrix calculates pairwise cosine similarity for all vectors.
// The matrix is symmetric. Diagonal elements are 1.0 for non-zero vectors.
func CosineSimilarityMatrix(vectors [][]float64) [][]float64 {
	n := len(vectors)
	if n == 0 {
		return [][]float64{}
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	// Only compute upper triangle since matrix is symmetric
	for i := 0; i < n; i++ {
		matrix[i][i] = CosineSimilarity(vectors[i], vectors[i])
		for j := i + 1; j < n; j++ {
			sim := CosineSimilarity(vectors[i], vectors[j])
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}

	return matrix
}

// Round rounds a similarity score to two decimal places
func Round(sim float64) float64 {
	return math.Round(sim*100) / 100
}
