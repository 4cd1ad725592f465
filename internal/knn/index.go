package knn

import "github.com/abhisek/modelcheck/internal/spec"

// ValidateIndex checks the index sub-document. It returns the first
// failure as a *ValidationError.
func ValidateIndex(idx *spec.IndexSpec) error {
	if idx.NumberOfDimensions <= 0 {
		return failf(MissingDimensionality, "number of dimensions must be > 0, got %d", idx.NumberOfDimensions)
	}

	for i, p := range idx.Points {
		if len(p) != idx.NumberOfDimensions {
			return failf(DimensionMismatch, "point %d has %d dimensions, index declares %d",
				i, len(p), idx.NumberOfDimensions)
		}
	}

	switch s := idx.Structure.(type) {
	case nil:
		return failf(MissingIndexStructure, "neither a linear nor a kd-tree index is selected")
	case *spec.LinearIndex:
	case *spec.KDTreeIndex:
		if s == nil {
			return failf(MissingIndexStructure, "kd-tree index is nil")
		}
		if s.LeafSize <= 0 {
			return failf(InvalidLeafSize, "kd-tree leaf size must be > 0, got %d", s.LeafSize)
		}
	}

	if idx.Distance == nil {
		return failf(MissingDistanceFunction, "no distance function is selected")
	}

	return nil
}
