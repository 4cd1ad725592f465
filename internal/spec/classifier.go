package spec

// ClassifierSpec is the nearest-neighbors classifier sub-document.
type ClassifierSpec struct {
	// K is the number of neighbors consulted per prediction.
	K int

	Weighting WeightingScheme
	Index     IndexSpec

	// Labels holds one label per reference point. Nil means neither
	// label container is populated.
	Labels LabelSet

	// Default is the label produced when no neighbors are available.
	Default DefaultLabel
}

// PointCount returns the size of the reference set.
func (c *ClassifierSpec) PointCount() int {
	return len(c.Index.Points)
}

// IndexSpec describes the similarity index over the reference set.
type IndexSpec struct {
	NumberOfDimensions int
	Points             [][]float32
	Distance           DistanceFunction
	Structure          IndexStructure
}

// WeightingScheme selects how neighbor votes are weighted.
type WeightingScheme interface {
	isWeightingScheme()
}

// UniformWeighting gives every neighbor the same vote.
type UniformWeighting struct{}

// InverseDistanceWeighting weights each vote by the inverse of its distance.
type InverseDistanceWeighting struct{}

func (*UniformWeighting) isWeightingScheme()         {}
func (*InverseDistanceWeighting) isWeightingScheme() {}

// DistanceFunction selects the metric used to compare points.
type DistanceFunction interface {
	isDistanceFunction()
}

// SquaredEuclideanDistance compares points by the sum of squared
// coordinate differences.
type SquaredEuclideanDistance struct{}

func (*SquaredEuclideanDistance) isDistanceFunction() {}

// IndexStructure selects the neighbor search strategy.
type IndexStructure interface {
	isIndexStructure()
}

// LinearIndex scans every reference point.
type LinearIndex struct{}

// KDTreeIndex partitions the reference set into a single k-d tree.
type KDTreeIndex struct {
	LeafSize int
}

func (*LinearIndex) isIndexStructure() {}
func (*KDTreeIndex) isIndexStructure() {}

// LabelSet is the per-point label container. A populated container may
// still hold zero labels.
//
// All variants of WeightingScheme, DistanceFunction, IndexStructure,
// LabelSet and DefaultLabel are pointer types.
type LabelSet interface {
	isLabelSet()
	Len() int
}

// Int64Labels holds integer class labels, one per reference point.
type Int64Labels struct {
	Values []int64
}

// StringLabels holds string class labels, one per reference point.
type StringLabels struct {
	Values []string
}

func (*Int64Labels) isLabelSet()  {}
func (*StringLabels) isLabelSet() {}

// Len returns the number of labels. A nil container has none.
func (l *Int64Labels) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Values)
}

// Len returns the number of labels. A nil container has none.
func (l *StringLabels) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Values)
}

// DefaultLabel is the fallback prediction.
type DefaultLabel interface {
	isDefaultLabel()
}

// DefaultStringLabel is a string fallback prediction.
type DefaultStringLabel struct {
	Value string
}

// DefaultInt64Label is an integer fallback prediction.
type DefaultInt64Label struct {
	Value int64
}

func (*DefaultStringLabel) isDefaultLabel() {}
func (*DefaultInt64Label) isDefaultLabel()  {}
