package knn

import "github.com/abhisek/modelcheck/internal/spec"

// samplePoints returns six 4-d points in three tight clusters.
func samplePoints() [][]float32 {
	return [][]float32{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{2.1, 0, 0, 0},
		{0, 0.1, 0, 0},
		{1, 0, 0.1, 0},
		{2.1, 0, 0, 0.1},
	}
}

func stringLabels(n int) *spec.StringLabels {
	l := &spec.StringLabels{}
	for i := 0; i < n; i++ {
		l.Values = append(l.Values, "zero")
	}
	return l
}

func int64Labels(n int) *spec.Int64Labels {
	return &spec.Int64Labels{Values: make([]int64, n)}
}

// validClassifier is a well-formed kd-tree classifier with string labels.
func validClassifier() *spec.ClassifierSpec {
	return &spec.ClassifierSpec{
		K:         3,
		Weighting: &spec.UniformWeighting{},
		Index: spec.IndexSpec{
			NumberOfDimensions: 4,
			Points:             samplePoints(),
			Distance:           &spec.SquaredEuclideanDistance{},
			Structure:          &spec.KDTreeIndex{LeafSize: 30},
		},
		Labels: stringLabels(6),
	}
}

// emptyClassifier is a kd-tree classifier with no reference points and
// no labels of any kind.
func emptyClassifier() *spec.ClassifierSpec {
	return &spec.ClassifierSpec{
		K:         3,
		Weighting: &spec.UniformWeighting{},
		Index: spec.IndexSpec{
			NumberOfDimensions: 4,
			Distance:           &spec.SquaredEuclideanDistance{},
			Structure:          &spec.KDTreeIndex{LeafSize: 30},
		},
	}
}
