package spec

// Model is a decoded model document. Only the nearest-neighbors classifier
// sub-document is modeled; other model kinds decode to a nil classifier.
type Model struct {
	SpecificationVersion int
	Description          Description

	// KNearestNeighborsClassifier is nil when the document holds another
	// model kind.
	KNearestNeighborsClassifier *ClassifierSpec

	// Kind is the name of the populated model-kind field as it appears in
	// the document, e.g. "kNearestNeighborsClassifier".
	Kind string
}

// Description is the generic model interface.
type Description struct {
	Inputs               []Feature
	Outputs              []Feature
	PredictedFeatureName string
	Metadata             Metadata
}

// Metadata is free-form descriptive information.
type Metadata struct {
	ShortDescription string
	Author           string
	License          string
	VersionString    string
}

// Feature is a named, typed input or output.
type Feature struct {
	Name string
	Type FeatureType
}

// FeatureKind enumerates the feature types a description may declare.
type FeatureKind int

const (
	FeatureUnknown FeatureKind = iota
	FeatureInt64
	FeatureDouble
	FeatureString
	FeatureMultiArray
	FeatureDictionary
)

var featureKindNames = map[FeatureKind]string{
	FeatureUnknown:    "unknown",
	FeatureInt64:      "int64",
	FeatureDouble:     "double",
	FeatureString:     "string",
	FeatureMultiArray: "multiArray",
	FeatureDictionary: "dictionary",
}

func (k FeatureKind) String() string {
	if s, ok := featureKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// FeatureType is the declared type of a feature. Shape and DataType are
// only meaningful for multi-arrays.
type FeatureType struct {
	Kind     FeatureKind
	Shape    []int64
	DataType string
}

// OutputType is what the predicted output feature is declared to produce.
type OutputType int

const (
	OtherOutput OutputType = iota
	StringOutput
	Int64Output
)

func (o OutputType) String() string {
	switch o {
	case StringOutput:
		return "string"
	case Int64Output:
		return "int64"
	default:
		return "other"
	}
}
